package fishnet

// Point is a single strand vertex.
type Point struct {
	X, Y, Z float64
}

// Polyline is one strand of the net. Z values are rewritten every
// frame; X and Y never change after construction.
type Polyline struct {
	Points []Point
	dirty  bool
}

// Dirty reports whether the points changed since the last ClearDirty.
// The renderer uses it to decide which vertex buffers to re-upload.
func (p *Polyline) Dirty() bool {
	return p.dirty
}

// ClearDirty resets the dirty flag once the points have been uploaded.
func (p *Polyline) ClearDirty() {
	p.dirty = false
}

// Net is the full set of strands plus one aggregate rotation, in
// radians per axis, applied to the whole group when rendering.
type Net struct {
	Lines            []*Polyline
	RotX, RotY, RotZ float64
}

// BuildNet creates the net's strands from the lattice: one horizontal
// strand per row, then one vertical strand per column, 2×size lines of
// size points each. Initial depths use the construction formulas (see
// wave.go), which differ between the two passes.
func BuildNet(lat *Lattice) *Net {
	size := lat.Size
	lines := make([]*Polyline, 0, 2*size)

	// Horizontal strands: a point per column.
	for i := 0; i < size; i++ {
		pts := make([]Point, size)
		for j := 0; j < size; j++ {
			c := lat.Cell(i, j)
			pts[j] = Point{X: c.X, Y: c.Y, Z: rowDepth(i, j, c.X, c.Y)}
		}
		lines = append(lines, &Polyline{Points: pts, dirty: true})
	}

	// Vertical strands: a point per row.
	for j := 0; j < size; j++ {
		pts := make([]Point, size)
		for i := 0; i < size; i++ {
			c := lat.Cell(i, j)
			pts[i] = Point{X: c.X, Y: c.Y, Z: colDepth(i, j, c.X, c.Y)}
		}
		lines = append(lines, &Polyline{Points: pts, dirty: true})
	}

	return &Net{Lines: lines}
}

// Update rewrites every strand's depth for elapsed time t and marks
// all strands dirty. X and Y stay untouched.
func (n *Net) Update(t float64) {
	for _, line := range n.Lines {
		for k := range line.Points {
			p := &line.Points[k]
			p.Z = Depth(p.X, p.Y, t)
		}
		line.dirty = true
	}
}
