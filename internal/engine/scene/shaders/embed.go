// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// LineVertexShader is the vertex shader for net line rendering.
//
//go:embed line.vert
var LineVertexShader string

// LineFragmentShader is the fragment shader for net line rendering.
//
//go:embed line.frag
var LineFragmentShader string
