package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/mkoren/driftnet/internal/engine/scene/shaders"
	"github.com/mkoren/driftnet/internal/engine/shader"
	"github.com/mkoren/driftnet/internal/fishnet"
	"github.com/mkoren/driftnet/pkg/math"
)

// White, mostly transparent lines.
var lineColor = [4]float32{1.0, 1.0, 1.0, 0.4}

// strand is the GPU-side mirror of one net polyline.
type strand struct {
	vao   uint32
	vbo   uint32
	count int32
	verts []float32 // packed x,y,z triples, reused on re-upload
}

// NetRenderer draws the net as a set of line strips.
type NetRenderer struct {
	// Shader
	program uint32

	// Uniform locations
	locMVP   int32
	locColor int32

	// One strand per polyline
	strands []strand
}

// NewNetRenderer creates a new net renderer.
func NewNetRenderer() (*NetRenderer, error) {
	nr := &NetRenderer{}

	program, err := shader.CompileProgram(shaders.LineVertexShader, shaders.LineFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("line shader: %w", err)
	}
	nr.program = program

	// Get uniform locations
	nr.locMVP = shader.GetUniform(program, "uMVP")
	nr.locColor = shader.GetUniform(program, "uColor")

	return nr, nil
}

// Upload creates GPU buffers for every polyline in the net. Any
// previously uploaded strands are released first.
func (nr *NetRenderer) Upload(net *fishnet.Net) {
	nr.release()

	nr.strands = make([]strand, len(net.Lines))
	for i, line := range net.Lines {
		st := &nr.strands[i]
		st.count = int32(len(line.Points))
		st.verts = make([]float32, 3*len(line.Points))
		packStrand(st.verts, line)

		gl.GenVertexArrays(1, &st.vao)
		gl.BindVertexArray(st.vao)

		gl.GenBuffers(1, &st.vbo)
		gl.BindBuffer(gl.ARRAY_BUFFER, st.vbo)
		// The net deforms every frame, so the buffer is dynamic
		gl.BufferData(gl.ARRAY_BUFFER, len(st.verts)*4, unsafe.Pointer(&st.verts[0]), gl.DYNAMIC_DRAW)

		// Position attribute
		gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
		gl.EnableVertexAttribArray(0)

		line.ClearDirty()
	}

	gl.BindVertexArray(0)
}

// Sync re-uploads the strands whose polylines changed since the last
// call. Strand count must match the uploaded net.
func (nr *NetRenderer) Sync(net *fishnet.Net) {
	if len(net.Lines) != len(nr.strands) {
		nr.Upload(net)
		return
	}

	for i, line := range net.Lines {
		if !line.Dirty() {
			continue
		}
		st := &nr.strands[i]
		packStrand(st.verts, line)

		gl.BindBuffer(gl.ARRAY_BUFFER, st.vbo)
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(st.verts)*4, unsafe.Pointer(&st.verts[0]))

		line.ClearDirty()
	}
}

// Render draws all strands with the given model-view-projection matrix.
func (nr *NetRenderer) Render(mvp math.Mat4) {
	gl.UseProgram(nr.program)

	// Set uniforms
	gl.UniformMatrix4fv(nr.locMVP, 1, false, &mvp[0])
	gl.Uniform4f(nr.locColor, lineColor[0], lineColor[1], lineColor[2], lineColor[3])

	for i := range nr.strands {
		st := &nr.strands[i]
		gl.BindVertexArray(st.vao)
		gl.DrawArrays(gl.LINE_STRIP, 0, st.count)
	}
	gl.BindVertexArray(0)
}

// packStrand packs a polyline into dst as consecutive x,y,z floats.
func packStrand(dst []float32, line *fishnet.Polyline) {
	for i, p := range line.Points {
		dst[3*i+0] = float32(p.X)
		dst[3*i+1] = float32(p.Y)
		dst[3*i+2] = float32(p.Z)
	}
}

func (nr *NetRenderer) release() {
	for i := range nr.strands {
		st := &nr.strands[i]
		if st.vao != 0 {
			gl.DeleteVertexArrays(1, &st.vao)
		}
		if st.vbo != 0 {
			gl.DeleteBuffers(1, &st.vbo)
		}
	}
	nr.strands = nil
}

// Destroy releases all resources.
func (nr *NetRenderer) Destroy() {
	nr.release()
	if nr.program != 0 {
		gl.DeleteProgram(nr.program)
		nr.program = 0
	}
}
