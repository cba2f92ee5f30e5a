package boxel

import (
	"errors"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/ansi"
)

var (
	// ErrHeightTooSmall means a box has more content lines than rows to
	// hold them.
	ErrHeightTooSmall = errors.New("box height too small for content")

	// ErrContentTooLong means a content line is wider than the columns
	// available inside a box.
	ErrContentTooLong = errors.New("content line too long for box")
)

// BoxOptions describes one box draw. It is built per call and not retained.
type BoxOptions struct {
	// ScreenSize bounds the draw. The zero value means the buffer size;
	// a larger value is clamped to it.
	ScreenSize Size

	Position Point
	Size     Size

	Border BorderFlags
	Style  BorderStyle

	BorderColor     *Color
	BackgroundColor *Color
	TextColor       *Color

	// Content lines are placed one per interior row, starting below the
	// top border. Text that does not fit is dropped. Escape sequences and
	// control characters are removed before drawing.
	//
	// Each rune takes one cell. A double-width rune still occupies a
	// single cell, so the terminal shifts the rest of that row one column
	// right. Validate counts such runes as two columns and so rejects rows
	// that would overflow on screen.
	Content []string

	// ForceHeightTooSmall makes DrawBox report ErrHeightTooSmall after
	// drawing. It exists to exercise error handling in callers and is
	// unrelated to Validate.
	ForceHeightTooSmall bool
}

// span is the horizontal part of a box that lands on screen, in box-local
// columns [skip, skip+take) written at screen column start.
type span struct {
	skip, take, start int
}

func (o BoxOptions) screen(b *Buffer) Size {
	s := o.ScreenSize
	if s == (Size{}) {
		return b.Size()
	}
	return Size{X: min(s.X, b.Width()), Y: min(s.Y, b.Height())}
}

func (o BoxOptions) size() Size {
	return Size{X: max(o.Size.X, 0), Y: max(o.Size.Y, 0)}
}

func (o BoxOptions) span(screen Size) span {
	size := o.size()
	skip := max(0, -o.Position.X)
	start := max(o.Position.X, 0)
	take := max(0, min(size.X-skip, screen.X-start))
	return span{skip: skip, take: take, start: start}
}

// DrawBox composites a box into b. Every row the box touches is read,
// patched over the visible span and written back; cells outside the span
// keep their previous contents. Parts of the box outside the screen are
// clipped without error.
func DrawBox(b *Buffer, opts BoxOptions) error {
	screen := opts.screen(b)
	size := opts.size()
	sp := opts.span(screen)
	glyphWidth := opts.Style.Chars().Width()

	rowVisible := func(y int) bool { return y >= 0 && y < screen.Y }

	if opts.Border.Has(BorderTop) && rowVisible(opts.Position.Y) {
		drawEdge(b, opts, sp, BorderTop, opts.Position.Y, glyphWidth)
	}

	bottom := opts.Position.Y + size.Y - 1
	if opts.Border.Has(BorderBottom) && size.Y > 0 && rowVisible(bottom) {
		drawEdge(b, opts, sp, BorderBottom, bottom, glyphWidth)
	}

	template := edgeTemplate(
		ResolveEdge(opts.Border, opts.Style, BorderLeft),
		" ",
		ResolveEdge(opts.Border, opts.Style, BorderRight),
		size.X,
	)

	top := 0
	if opts.Border.Has(BorderTop) {
		top = 1
	}
	for i := 0; i < size.Y; i++ {
		if i == 0 && opts.Border.Has(BorderTop) {
			continue
		}
		if i == size.Y-1 && opts.Border.Has(BorderBottom) {
			continue
		}
		y := opts.Position.Y + i
		if !rowVisible(y) {
			continue
		}
		var line string
		if idx := i - top; idx >= 0 && idx < len(opts.Content) {
			line = opts.Content[idx]
		}
		drawMiddle(b, opts, sp, screen, template, line, y, glyphWidth)
	}

	if opts.ForceHeightTooSmall {
		return ErrHeightTooSmall
	}
	return nil
}

// edgeTemplate lays out one row of a box in box-local columns: left glyph,
// middle glyph repeated, right glyph. Widths below two keep the left glyph
// only.
func edgeTemplate(left, middle, right string, width int) []string {
	if width <= 0 {
		return nil
	}
	row := make([]string, 0, max(width, 2))
	row = append(row, left)
	for range max(width-2, 0) {
		row = append(row, middle)
	}
	row = append(row, right)
	return row[:width]
}

func drawEdge(b *Buffer, opts BoxOptions, sp span, edge BorderFlags, y, glyphWidth int) {
	if sp.take == 0 {
		return
	}
	template := edgeTemplate(
		ResolveEdge(opts.Border, opts.Style, edge|BorderLeft),
		ResolveEdge(opts.Border, opts.Style, edge),
		ResolveEdge(opts.Border, opts.Style, edge|BorderRight),
		opts.size().X,
	)

	row := b.Row(y)
	for i := range sp.take {
		glyph := template[sp.skip+i]
		c := Cell{Content: glyph}
		if opts.BorderColor != nil {
			c.FG = opts.BorderColor.FG()
		}
		if opts.BackgroundColor != nil && len(glyph) != glyphWidth {
			c.BG = opts.BackgroundColor.BG()
		}
		row[sp.start+i] = c
	}
	b.SetRow(y, row)
}

func drawMiddle(b *Buffer, opts BoxOptions, sp span, screen Size, template []string, content string, y, glyphWidth int) {
	if sp.take == 0 {
		return
	}
	size := opts.size()
	last := size.X - 1

	leftColored := opts.Border.Has(BorderLeft) && opts.Position.X >= 0
	rightColored := opts.Border.Has(BorderRight) && opts.Position.X+size.X <= screen.X

	cells := make([]Cell, size.X)
	for local, glyph := range template {
		c := Cell{Content: glyph}
		border := len(glyph) == glyphWidth
		if opts.BackgroundColor != nil && !border {
			c.BG = opts.BackgroundColor.BG()
		}
		switch {
		case border && local == 0 && leftColored, border && local == last && rightColored:
			if opts.BorderColor != nil {
				c.FG = opts.BorderColor.FG()
			}
		case !border && opts.TextColor != nil:
			c.FG = opts.TextColor.FG()
		}
		cells[local] = c
	}

	from, to := 0, size.X
	if opts.Border.Has(BorderLeft) || opts.Position.X < 0 {
		from = 1
	}
	if opts.Border.Has(BorderRight) {
		to--
	}
	overlayContent(cells[:max(to, 0)], from, content)

	row := b.Row(y)
	copy(row[sp.start:sp.start+sp.take], cells[sp.skip:sp.skip+sp.take])
	b.SetRow(y, row)
}

// overlayContent writes text into cells starting at column from, one rune
// per cell. Zero-width runes attach to the previous glyph. Text past the
// end of cells is dropped.
func overlayContent(cells []Cell, from int, text string) {
	col := from
	for _, r := range printable(text) {
		if runewidth.RuneWidth(r) == 0 && col > from {
			cells[col-1].Content += string(r)
			continue
		}
		if col >= len(cells) {
			return
		}
		cells[col].Content = string(r)
		col++
	}
}

// printable strips escape sequences and control characters from text.
func printable(text string) string {
	var sb strings.Builder
	inSeq := false
	for _, r := range text {
		switch {
		case inSeq:
			inSeq = !ansi.IsTerminator(r)
		case r == ansi.Marker:
			inSeq = true
		case unicode.IsControl(r):
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
