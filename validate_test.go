package boxel

import (
	"errors"
	"testing"
)

func TestContentArea(t *testing.T) {
	tests := []struct {
		border   BorderFlags
		size     Size
		expected Size
	}{
		{BorderAll, Size{X: 10, Y: 3}, Size{X: 8, Y: 1}},
		{BorderNone, Size{X: 10, Y: 3}, Size{X: 10, Y: 3}},
		{BorderTop | BorderLeft, Size{X: 10, Y: 3}, Size{X: 9, Y: 2}},
		{BorderAll, Size{X: 1, Y: 1}, Size{X: 0, Y: 0}},
		{BorderPreserveCorners, Size{X: 4, Y: 4}, Size{X: 4, Y: 4}},
	}
	for _, tt := range tests {
		got := BoxOptions{Border: tt.border, Size: tt.size}.ContentArea()
		if got != tt.expected {
			t.Errorf("%v %v: expected %v, got %v", tt.border, tt.size, tt.expected, got)
		}
	}
}

func TestValidate(t *testing.T) {
	base := BoxOptions{Size: Size{X: 10, Y: 4}, Border: BorderAll}

	t.Run("content that fits", func(t *testing.T) {
		o := base
		o.Content = []string{"12345678", "\x1b[31mstyled\x1b[0m"}
		if err := o.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("styled content draws at its printable width", func(t *testing.T) {
		o := base
		o.Content = []string{"\x1b[31mstyled\x1b[0m"}
		if err := o.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		buf := NewBuffer(o.Size)
		DrawBox(buf, o)
		if got := buf.GetLine(1); got != "│styled  │" {
			t.Errorf("expected %q, got %q", "│styled  │", got)
		}
	})

	t.Run("too many lines", func(t *testing.T) {
		o := base
		o.Content = []string{"a", "b", "c"}
		if err := o.Validate(); !errors.Is(err, ErrHeightTooSmall) {
			t.Errorf("expected ErrHeightTooSmall, got %v", err)
		}
	})

	t.Run("line too long", func(t *testing.T) {
		o := base
		o.Content = []string{"ok", "123456789"}
		if err := o.Validate(); !errors.Is(err, ErrContentTooLong) {
			t.Errorf("expected ErrContentTooLong, got %v", err)
		}
	})

	t.Run("wide runes count double", func(t *testing.T) {
		o := base
		o.Content = []string{"日本語日本"}
		if err := o.Validate(); !errors.Is(err, ErrContentTooLong) {
			t.Errorf("expected ErrContentTooLong, got %v", err)
		}
	})

	t.Run("forced error is not a validation error", func(t *testing.T) {
		o := base
		o.ForceHeightTooSmall = true
		if err := o.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
