package boxel

import (
	"fmt"

	"github.com/muesli/ansi"
)

// ContentArea returns the rows and columns available for content once the
// requested borders are taken out.
func (o BoxOptions) ContentArea() Size {
	size := o.size()
	rows, cols := size.Y, size.X
	if o.Border.Has(BorderTop) {
		rows--
	}
	if o.Border.Has(BorderBottom) {
		rows--
	}
	if o.Border.Has(BorderLeft) {
		cols--
	}
	if o.Border.Has(BorderRight) {
		cols--
	}
	return Size{X: max(cols, 0), Y: max(rows, 0)}
}

// Validate checks that the content fits inside the box. It returns an error
// wrapping ErrHeightTooSmall or ErrContentTooLong. Widths are measured in
// terminal columns, ignoring escape sequences.
func (o BoxOptions) Validate() error {
	area := o.ContentArea()
	if len(o.Content) > area.Y {
		return fmt.Errorf("%w: %d lines, %d rows available", ErrHeightTooSmall, len(o.Content), area.Y)
	}
	for i, line := range o.Content {
		if w := ansi.PrintableRuneWidth(line); w > area.X {
			return fmt.Errorf("%w: line %d is %d columns, %d available", ErrContentTooLong, i, w, area.X)
		}
	}
	return nil
}
