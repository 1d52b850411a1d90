package invaders

import "fmt"

// Grid is the fixed-shape alien formation. Each cell holds a live alien or
// nil for an absent one. Cells only ever go from live to absent.
type Grid struct {
	rows, cols int
	cells      []*Alien // row-major
}

// NewGrid creates an empty rows x cols grid.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invaders: grid shape %dx%d must be non-empty", rows, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]*Alien, rows*cols),
	}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

func (g *Grid) index(row, col int) int {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		panic(fmt.Sprintf("invaders: grid cell (%d, %d) out of range %dx%d", row, col, g.rows, g.cols))
	}
	return row*g.cols + col
}

// At returns the alien at (row, col), or nil if the cell is absent.
// Panics if the cell is out of range.
func (g *Grid) At(row, col int) *Alien {
	return g.cells[g.index(row, col)]
}

// place fills a cell during wave construction.
func (g *Grid) place(row, col int, a *Alien) {
	g.cells[g.index(row, col)] = a
}

// Remove marks the cell absent and returns the alien that was there.
func (g *Grid) Remove(row, col int) *Alien {
	i := g.index(row, col)
	a := g.cells[i]
	g.cells[i] = nil
	return a
}

// Live calls fn for every live alien in row-major order.
func (g *Grid) Live(fn func(row, col int, a *Alien)) {
	for i, a := range g.cells {
		if a != nil {
			fn(i/g.cols, i%g.cols, a)
		}
	}
}

// CountAlive returns the number of live aliens.
func (g *Grid) CountAlive() int {
	n := 0
	for _, a := range g.cells {
		if a != nil {
			n++
		}
	}
	return n
}

// Cleared reports whether every cell is absent.
func (g *Grid) Cleared() bool {
	return g.CountAlive() == 0
}

// Extent returns the leftmost and rightmost live alien x.
// ok is false when no alien is alive.
func (g *Grid) Extent() (left, right float64, ok bool) {
	g.Live(func(_, _ int, a *Alien) {
		if !ok {
			left, right, ok = a.X, a.X, true
			return
		}
		left = min(left, a.X)
		right = max(right, a.X)
	})
	return left, right, ok
}

// BottomInColumn returns the lowest live alien in the column, or nil.
func (g *Grid) BottomInColumn(col int) *Alien {
	var bottom *Alien
	for row := range g.rows {
		if a := g.At(row, col); a != nil && (bottom == nil || a.Y < bottom.Y) {
			bottom = a
		}
	}
	return bottom
}

// Shooters returns the bottommost live alien of every non-empty column,
// ordered by column.
func (g *Grid) Shooters() []*Alien {
	var out []*Alien
	for col := range g.cols {
		if a := g.BottomInColumn(col); a != nil {
			out = append(out, a)
		}
	}
	return out
}

// Shift moves every live alien by (dx, dy).
func (g *Grid) Shift(dx, dy float64) {
	g.Live(func(_, _ int, a *Alien) {
		a.X += dx
		a.Y += dy
	})
}
