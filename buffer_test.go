package boxel

import "testing"

func TestBuffer(t *testing.T) {
	t.Run("new buffer is blank", func(t *testing.T) {
		buf := NewBuffer(Size{X: 3, Y: 2})
		if buf.Width() != 3 || buf.Height() != 2 {
			t.Fatalf("expected 3x2, got %dx%d", buf.Width(), buf.Height())
		}
		for y := range 2 {
			for x := range 3 {
				if !buf.Get(x, y).IsEmpty() {
					t.Errorf("cell %d,%d: expected empty, got %+v", x, y, buf.Get(x, y))
				}
			}
		}
	})

	t.Run("out of bounds access is ignored", func(t *testing.T) {
		buf := NewBuffer(Size{X: 2, Y: 2})
		buf.Set(-1, 0, Cell{Content: "x"})
		buf.Set(2, 0, Cell{Content: "x"})
		buf.SetRow(5, []Cell{{Content: "x"}})
		if got := buf.Get(9, 9); !got.IsEmpty() {
			t.Errorf("expected empty cell, got %+v", got)
		}
		if buf.Row(-1) != nil {
			t.Error("expected nil row")
		}
		if !buf.Equal(NewBuffer(Size{X: 2, Y: 2})) {
			t.Error("expected buffer to be unchanged")
		}
	})

	t.Run("row is a copy", func(t *testing.T) {
		buf := NewBuffer(Size{X: 2, Y: 1})
		row := buf.Row(0)
		row[0] = Cell{Content: "x"}
		if buf.GetLine(0) != "  " {
			t.Errorf("expected row copy not to alias the buffer, got %q", buf.GetLine(0))
		}
		buf.SetRow(0, row)
		if buf.GetLine(0) != "x " {
			t.Errorf("expected %q, got %q", "x ", buf.GetLine(0))
		}
	})

	t.Run("clear resets every cell", func(t *testing.T) {
		buf := NewBuffer(Size{X: 4, Y: 2})
		DrawBox(buf, BoxOptions{Size: Size{X: 4, Y: 2}, Border: BorderAll, BackgroundColor: Red.Ptr()})
		buf.Clear()
		if !buf.Equal(NewBuffer(Size{X: 4, Y: 2})) {
			t.Errorf("expected blank buffer, got\n%s", buf)
		}
	})

	t.Run("clone is independent", func(t *testing.T) {
		buf := NewBuffer(Size{X: 2, Y: 2})
		c := buf.Clone()
		c.Set(0, 0, Cell{Content: "x"})
		if buf.Equal(c) {
			t.Error("expected clone changes not to affect the original")
		}
	})

	t.Run("negative size is empty", func(t *testing.T) {
		buf := NewBuffer(Size{X: -3, Y: 2})
		if buf.Width() != 0 || buf.Height() != 2 {
			t.Errorf("expected 0x2, got %dx%d", buf.Width(), buf.Height())
		}
	})
}

func TestCellString(t *testing.T) {
	t.Run("plain cell still resets", func(t *testing.T) {
		if got := EmptyCell().String(); got != " \x1b[0m" {
			t.Errorf("expected %q, got %q", " \x1b[0m", got)
		}
	})

	t.Run("styled cell", func(t *testing.T) {
		c := Cell{FG: Red.FG(), BG: Blue.BG(), Content: "x"}
		expected := "\x1b[38;2;255;0;0m\x1b[48;2;0;0;255mx\x1b[0m"
		if got := c.String(); got != expected {
			t.Errorf("expected %q, got %q", expected, got)
		}
	})

	t.Run("adjacent cells do not change each other", func(t *testing.T) {
		a := Cell{BG: Blue.BG(), Content: "a"}
		b := Cell{FG: Green.FG(), Content: "b"}
		joined := a.String() + b.String()
		if joined[:len(a.String())] != a.String() {
			t.Errorf("expected first cell bytes to be unchanged, got %q", joined)
		}
		if joined[len(a.String()):] != b.String() {
			t.Errorf("expected second cell bytes to be unchanged, got %q", joined)
		}
	})
}
