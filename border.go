package boxel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BorderStyle selects the glyph set used for a box border.
type BorderStyle uint8

const (
	BorderRounded BorderStyle = iota
	BorderSharp
	BorderBlock
	BorderThick
	BorderDouble
	BorderDotted
)

var borderStyleNames = [...]string{
	BorderRounded: "rounded",
	BorderSharp:   "sharp",
	BorderBlock:   "block",
	BorderThick:   "thick",
	BorderDouble:  "double",
	BorderDotted:  "dotted",
}

func (s BorderStyle) String() string {
	if int(s) < len(borderStyleNames) {
		return borderStyleNames[s]
	}
	return fmt.Sprintf("BorderStyle(%d)", uint8(s))
}

// ParseBorderStyle returns the style with the given name. The empty string
// is the default, rounded.
func ParseBorderStyle(name string) (BorderStyle, error) {
	if name == "" {
		return BorderRounded, nil
	}
	for i, n := range borderStyleNames {
		if strings.EqualFold(n, name) {
			return BorderStyle(i), nil
		}
	}
	return 0, fmt.Errorf("unknown border style %q", name)
}

// BorderChars holds the eight glyphs of one border style.
type BorderChars struct {
	Top         string
	Bottom      string
	Left        string
	Right       string
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
}

// Width returns the byte length of a border glyph. Cells whose content has
// a different length are treated as interior cells when painting
// backgrounds.
func (c BorderChars) Width() int {
	return len(c.Top)
}

func charsFrom(b lipgloss.Border) BorderChars {
	return BorderChars{
		Top:         b.Top,
		Bottom:      b.Bottom,
		Left:        b.Left,
		Right:       b.Right,
		TopLeft:     b.TopLeft,
		TopRight:    b.TopRight,
		BottomLeft:  b.BottomLeft,
		BottomRight: b.BottomRight,
	}
}

var dottedBorder = lipgloss.Border{
	Top:         "╌",
	Bottom:      "╌",
	Left:        "╎",
	Right:       "╎",
	TopLeft:     "┌",
	TopRight:    "┐",
	BottomLeft:  "└",
	BottomRight: "┘",
}

var borderChars = [...]BorderChars{
	BorderRounded: charsFrom(lipgloss.RoundedBorder()),
	BorderSharp:   charsFrom(lipgloss.NormalBorder()),
	BorderBlock:   charsFrom(lipgloss.InnerHalfBlockBorder()),
	BorderThick:   charsFrom(lipgloss.ThickBorder()),
	BorderDouble:  charsFrom(lipgloss.DoubleBorder()),
	BorderDotted:  charsFrom(dottedBorder),
}

// Chars returns the glyph set for s. Unknown styles fall back to rounded.
func (s BorderStyle) Chars() BorderChars {
	if int(s) < len(borderChars) {
		return borderChars[s]
	}
	return borderChars[BorderRounded]
}

// BorderFlags is a set of border edges plus the corner policy.
type BorderFlags uint8

const (
	BorderTop BorderFlags = 1 << iota
	BorderBottom
	BorderLeft
	BorderRight

	// BorderPreserveCorners keeps corner glyphs when only one of the two
	// edges meeting at a corner is requested.
	BorderPreserveCorners

	BorderNone BorderFlags = 0
	BorderAll              = BorderTop | BorderBottom | BorderLeft | BorderRight | BorderPreserveCorners
)

var borderFlagNames = []struct {
	flag BorderFlags
	name string
}{
	{BorderTop, "top"},
	{BorderBottom, "bottom"},
	{BorderLeft, "left"},
	{BorderRight, "right"},
	{BorderPreserveCorners, "corners"},
}

// Has reports whether every flag in o is set in f.
func (f BorderFlags) Has(o BorderFlags) bool {
	return f&o == o
}

// Any reports whether at least one flag in o is set in f.
func (f BorderFlags) Any(o BorderFlags) bool {
	return f&o != 0
}

func (f BorderFlags) String() string {
	switch f {
	case BorderNone:
		return "none"
	case BorderAll:
		return "all"
	}
	var parts []string
	for _, n := range borderFlagNames {
		if f.Has(n.flag) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseBorderFlags parses a "|" separated list such as "top|left|corners".
// "all" and "none" are accepted as whole words.
func ParseBorderFlags(s string) (BorderFlags, error) {
	var f BorderFlags
	for _, part := range strings.Split(s, "|") {
		part = strings.ToLower(strings.TrimSpace(part))
		switch part {
		case "", "none":
			continue
		case "all":
			f |= BorderAll
			continue
		}
		found := false
		for _, n := range borderFlagNames {
			if n.name == part {
				f |= n.flag
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown border flag %q", part)
		}
	}
	return f, nil
}

// ResolveEdge returns the glyph drawn at a border position for a box that
// requested the given flags. position names one edge (TOP, BOTTOM, LEFT,
// RIGHT) or a corner (two of them). A corner keeps its corner glyph when
// both of its edges are requested, or when corners are preserved and one of
// them is. Otherwise it falls back to the straight glyph of the first
// requested edge, then to a blank.
func ResolveEdge(requested BorderFlags, style BorderStyle, position BorderFlags) string {
	c := style.Chars()

	vertical, horizontal := BorderNone, BorderNone
	switch {
	case position.Has(BorderTop):
		vertical = BorderTop
	case position.Has(BorderBottom):
		vertical = BorderBottom
	}
	switch {
	case position.Has(BorderLeft):
		horizontal = BorderLeft
	case position.Has(BorderRight):
		horizontal = BorderRight
	}

	if vertical != BorderNone && horizontal != BorderNone {
		wantV, wantH := requested.Has(vertical), requested.Has(horizontal)
		if (wantV && wantH) || (requested.Has(BorderPreserveCorners) && (wantV || wantH)) {
			return c.corner(vertical, horizontal)
		}
		switch {
		case wantV:
			return c.edge(vertical)
		case wantH:
			return c.edge(horizontal)
		}
		return " "
	}

	for _, e := range [...]BorderFlags{vertical, horizontal} {
		if e != BorderNone {
			if requested.Has(e) {
				return c.edge(e)
			}
			return " "
		}
	}
	return " "
}

func (c BorderChars) edge(e BorderFlags) string {
	switch e {
	case BorderTop:
		return c.Top
	case BorderBottom:
		return c.Bottom
	case BorderLeft:
		return c.Left
	case BorderRight:
		return c.Right
	}
	return " "
}

func (c BorderChars) corner(vertical, horizontal BorderFlags) string {
	switch {
	case vertical == BorderTop && horizontal == BorderLeft:
		return c.TopLeft
	case vertical == BorderTop:
		return c.TopRight
	case horizontal == BorderLeft:
		return c.BottomLeft
	}
	return c.BottomRight
}
