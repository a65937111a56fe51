package layout

// Grid divides a fixed logical canvas into equally sized cells.
type Grid struct {
	Cols, Rows int
	Canvas     Size
}

// NewGrid creates a new Grid with the specified number of columns and rows over canvas
func NewGrid(cols, rows int, canvas Size) Grid {
	return Grid{
		Cols:   max(cols, 1),
		Rows:   max(rows, 1),
		Canvas: canvas,
	}
}

// Cell returns the pixel size of a single cell.
func (g Grid) Cell() Size {
	return Size{
		Width:  g.Canvas.Width / float64(g.Cols),
		Height: g.Canvas.Height / float64(g.Rows),
	}
}

// Rect converts a grid position and span, both in cells, to a pixel rectangle.
func (g Grid) Rect(col, row, spanCols, spanRows int) Rect {
	cell := g.Cell()
	return Rect{
		Position: Point{X: float64(col) * cell.Width, Y: float64(row) * cell.Height},
		Size:     Size{Width: float64(spanCols) * cell.Width, Height: float64(spanRows) * cell.Height},
	}
}
