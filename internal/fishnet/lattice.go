// Package fishnet holds the net geometry and its wave animation.
package fishnet

// Cell is a single lattice node: a rest position on the net plane.
// BaseZ is set at generation time and stays zero.
type Cell struct {
	X, Y, BaseZ float64
}

// Lattice is a square grid of cells centered on the origin.
type Lattice struct {
	Size    int
	Spacing float64
	cells   [][]Cell
}

// NewLattice builds a size×size lattice with the given spacing between
// neighboring cells. Cell (i, j) rests at ((j-size/2)·spacing,
// (i-size/2)·spacing) with size/2 taken as a real number, so a 25×25
// grid spans -12.5..+11.5 on both axes. Caller guarantees positive
// inputs.
func NewLattice(size int, spacing float64) *Lattice {
	half := float64(size) / 2

	cells := make([][]Cell, size)
	for i := 0; i < size; i++ {
		row := make([]Cell, size)
		for j := 0; j < size; j++ {
			row[j] = Cell{
				X: (float64(j) - half) * spacing,
				Y: (float64(i) - half) * spacing,
			}
		}
		cells[i] = row
	}

	return &Lattice{
		Size:    size,
		Spacing: spacing,
		cells:   cells,
	}
}

// Cell returns the cell at row i, column j.
func (l *Lattice) Cell(i, j int) Cell {
	return l.cells[i][j]
}
