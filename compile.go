package boxel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/muesli/ansi"
)

// LineTerminator separates rows in a compiled frame. Raw-mode terminals do
// not translate a bare newline into a carriage return.
const LineTerminator = "\r\n"

// ErrMalformedFrame is returned by DecodeFrame for input that Compile could
// not have produced.
var ErrMalformedFrame = errors.New("malformed frame")

// Compile renders the buffer into a single string: every cell's rendering
// concatenated per row, rows joined by LineTerminator, no trailing
// terminator.
func Compile(b *Buffer) string {
	return CompileWith(b, LineTerminator)
}

// CompileWith is Compile with a caller-chosen row terminator.
func CompileWith(b *Buffer, terminator string) string {
	var sb strings.Builder
	for y, row := range b.rows {
		if y > 0 {
			sb.WriteString(terminator)
		}
		for _, c := range row {
			sb.WriteString(c.FG)
			sb.WriteString(c.BG)
			sb.WriteString(c.Content)
			sb.WriteString(Reset)
		}
	}
	return sb.String()
}

// DecodeFrame parses a frame produced by CompileWith back into a buffer.
// Rows must all decode to the same number of cells.
func DecodeFrame(frame, terminator string) (*Buffer, error) {
	if frame == "" {
		return NewBuffer(Size{}), nil
	}

	lines := strings.Split(frame, terminator)
	rows := make([][]Cell, len(lines))
	for y, line := range lines {
		row, err := decodeRow(line)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", y, err)
		}
		if y > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrMalformedFrame, y, len(row), len(rows[0]))
		}
		rows[y] = row
	}
	return &Buffer{rows: rows, size: Size{X: len(rows[0]), Y: len(rows)}}, nil
}

func decodeRow(line string) ([]Cell, error) {
	var (
		row   []Cell
		cur   Cell
		seq   strings.Builder
		inSeq bool
	)
	for _, r := range line {
		if inSeq {
			seq.WriteRune(r)
			if !ansi.IsTerminator(r) {
				continue
			}
			inSeq = false
			s := seq.String()
			switch {
			case s == Reset:
				if cur.Content == "" {
					return nil, fmt.Errorf("%w: reset without glyph", ErrMalformedFrame)
				}
				row = append(row, cur)
				cur = Cell{}
			case strings.HasPrefix(s, "\x1b[38;"):
				cur.FG = s
			case strings.HasPrefix(s, "\x1b[48;"):
				cur.BG = s
			default:
				return nil, fmt.Errorf("%w: unexpected sequence %q", ErrMalformedFrame, s)
			}
			continue
		}
		if r == ansi.Marker {
			inSeq = true
			seq.Reset()
			seq.WriteRune(r)
			continue
		}
		cur.Content += string(r)
	}
	if inSeq {
		return nil, fmt.Errorf("%w: unterminated escape sequence", ErrMalformedFrame)
	}
	if cur != (Cell{}) {
		return nil, fmt.Errorf("%w: cell without reset", ErrMalformedFrame)
	}
	return row, nil
}

// parseSGRColor extracts the RGB triple from a 24-bit color sequence as
// produced by Color.FG or Color.BG.
func parseSGRColor(seq string) (Color, bool) {
	if !strings.HasPrefix(seq, "\x1b[") || !strings.HasSuffix(seq, "m") {
		return Color{}, false
	}
	parts := strings.Split(seq[2:len(seq)-1], ";")
	if len(parts) != 5 || parts[1] != "2" || (parts[0] != "38" && parts[0] != "48") {
		return Color{}, false
	}
	var rgb [3]uint8
	for i, p := range parts[2:] {
		n, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return Color{}, false
		}
		rgb[i] = uint8(n)
	}
	return RGB(rgb[0], rgb[1], rgb[2]), true
}
