package boxel

// Reset clears every SGR attribute.
const Reset = "\x1b[0m"

// Cell is one terminal cell: an optional foreground sequence, an optional
// background sequence and a single displayable glyph.
type Cell struct {
	FG      string
	BG      string
	Content string
}

// EmptyCell returns a blank, unstyled cell.
func EmptyCell() Cell {
	return Cell{Content: " "}
}

// String renders the cell. The trailing reset is always written so a cell's
// style never reaches its neighbours.
func (c Cell) String() string {
	return c.FG + c.BG + c.Content + Reset
}

// IsEmpty reports whether the cell equals EmptyCell.
func (c Cell) IsEmpty() bool {
	return c == EmptyCell()
}
