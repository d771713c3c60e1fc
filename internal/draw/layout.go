package draw

// Layout places a canvas inside a terminal.
type Layout struct {
	Cols, Rows int // Terminal cells covered by the canvas
	OffsetCol  int // 0-based columns to the left of the canvas
	OffsetRow  int // 0-based rows above the canvas
}

// Fit returns the largest canvas with the aspect ratio of a
// logicalWidth x logicalHeight field that fits in the terminal, centered,
// leaving reservedTop rows above it and a one-cell border on every side.
// A half-block cell is one sub-pixel wide and two tall, so sub-pixels are
// treated as square.
func Fit(termWidth, termHeight, reservedTop int, logicalWidth, logicalHeight float64) Layout {
	availCols := max(termWidth-2, 1)
	availRows := max(termHeight-reservedTop-2, 1)

	aspect := logicalWidth / logicalHeight
	cols := availCols
	rows := int(float64(cols) / aspect / 2)
	if rows > availRows {
		rows = availRows
		cols = int(float64(rows) * 2 * aspect)
	}
	cols = max(min(cols, availCols), 1)
	rows = max(rows, 1)

	return Layout{
		Cols:      cols,
		Rows:      rows,
		OffsetCol: (termWidth - cols) / 2,
		OffsetRow: reservedTop + (termHeight-reservedTop-rows)/2,
	}
}

// Apply resizes and positions the canvas to the layout.
func (l Layout) Apply(c *Canvas) {
	c.Resize(l.Cols, l.Rows)
	c.SetOffset(l.OffsetCol, l.OffsetRow)
}
