package boxel

import "strings"

// Buffer is a fixed-size grid of cells stored row by row. Its dimensions
// never change after construction.
type Buffer struct {
	rows [][]Cell
	size Size
}

// NewBuffer creates a buffer of empty cells. Negative dimensions are
// treated as zero.
func NewBuffer(size Size) *Buffer {
	size = Size{X: max(size.X, 0), Y: max(size.Y, 0)}
	rows := make([][]Cell, size.Y)
	for y := range rows {
		rows[y] = newRow(size.X)
	}
	return &Buffer{rows: rows, size: size}
}

func newRow(width int) []Cell {
	row := make([]Cell, width)
	empty := EmptyCell()
	for x := range row {
		row[x] = empty
	}
	return row
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() Size {
	return b.size
}

// Width returns the number of columns.
func (b *Buffer) Width() int {
	return b.size.X
}

// Height returns the number of rows.
func (b *Buffer) Height() int {
	return b.size.Y
}

// InBounds returns true if the given coordinates are within the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.size.X && y >= 0 && y < b.size.Y
}

// Get returns the cell at the given coordinates.
// Returns an empty cell if out of bounds.
func (b *Buffer) Get(x, y int) Cell {
	if !b.InBounds(x, y) {
		return EmptyCell()
	}
	return b.rows[y][x]
}

// Set sets the cell at the given coordinates.
// Does nothing if out of bounds.
func (b *Buffer) Set(x, y int, c Cell) {
	if !b.InBounds(x, y) {
		return
	}
	b.rows[y][x] = c
}

// Row returns a copy of row y, or nil if y is out of range.
func (b *Buffer) Row(y int) []Cell {
	if y < 0 || y >= b.size.Y {
		return nil
	}
	row := make([]Cell, b.size.X)
	copy(row, b.rows[y])
	return row
}

// SetRow replaces row y with a copy of row. Extra cells are dropped and
// missing cells keep their previous value.
func (b *Buffer) SetRow(y int, row []Cell) {
	if y < 0 || y >= b.size.Y {
		return
	}
	copy(b.rows[y], row)
}

// Clear resets every cell to EmptyCell.
func (b *Buffer) Clear() {
	empty := EmptyCell()
	for _, row := range b.rows {
		for x := range row {
			row[x] = empty
		}
	}
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	c := &Buffer{rows: make([][]Cell, len(b.rows)), size: b.size}
	for y, row := range b.rows {
		c.rows[y] = append([]Cell(nil), row...)
	}
	return c
}

// Equal reports whether two buffers have the same size and cells.
func (b *Buffer) Equal(o *Buffer) bool {
	if b.size != o.size {
		return false
	}
	for y, row := range b.rows {
		for x, c := range row {
			if o.rows[y][x] != c {
				return false
			}
		}
	}
	return true
}

// GetLine returns the glyphs of row y without any styling.
func (b *Buffer) GetLine(y int) string {
	if y < 0 || y >= b.size.Y {
		return ""
	}
	var sb strings.Builder
	for _, c := range b.rows[y] {
		sb.WriteString(c.Content)
	}
	return sb.String()
}

// String returns the buffer content as plain text, one line per row.
// Useful for testing.
func (b *Buffer) String() string {
	lines := make([]string, b.size.Y)
	for y := range lines {
		lines[y] = b.GetLine(y)
	}
	return strings.Join(lines, "\n")
}
