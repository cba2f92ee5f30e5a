package boxel

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// ErrUnknownDiv is returned when DivOptions.Under names an id that no
// earlier draw retained.
var ErrUnknownDiv = errors.New("unknown div")

// FrameWriter receives compiled frames. Implementations clear the display,
// draw the frame from the top-left corner and flush.
type FrameWriter interface {
	WriteFrame(frame string) error
}

// DivOptions is a box request made through a Window.
type DivOptions struct {
	// ID, when set, retains the request so later draws can refer to it.
	// A later draw with the same ID replaces the earlier entry.
	ID string

	// Under places the box relative to a retained div: Position becomes an
	// offset from that div's bottom-left corner.
	Under string

	Position Point
	Size     Size

	Border BorderFlags
	Style  BorderStyle

	BorderColor     *Color
	BackgroundColor *Color
	TextColor       *Color

	Content []string

	// Validate checks the content against the box before drawing and
	// refuses to draw when it does not fit.
	Validate bool

	// ForceHeightTooSmall is passed through to BoxOptions.
	ForceHeightTooSmall bool
}

// Window owns a fixed-size buffer, composes boxes into it and renders it
// to a FrameWriter.
type Window struct {
	size   Size
	buf    *Buffer
	out    FrameWriter
	logger *log.Logger
	divs   []DivOptions
}

// Option configures a Window.
type Option func(*Window)

// WithLogger sets the logger used for draw and render diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(w *Window) {
		w.logger = l
	}
}

// NewWindow creates a window of the given size writing to out.
func NewWindow(size Size, out FrameWriter, opts ...Option) *Window {
	w := &Window{
		size:   size,
		buf:    NewBuffer(size),
		out:    out,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Size returns the window dimensions.
func (w *Window) Size() Size {
	return w.size
}

// Buffer returns the window's buffer.
func (w *Window) Buffer() *Buffer {
	return w.buf
}

// DrawBox draws a box into the window's buffer.
func (w *Window) DrawBox(d DivOptions) error {
	if d.Under != "" {
		ref, ok := w.Div(d.Under)
		if !ok {
			w.logger.Warn("draw skipped", "id", d.ID, "under", d.Under, "error", ErrUnknownDiv)
			return fmt.Errorf("%w: %q", ErrUnknownDiv, d.Under)
		}
		d.Position = Point{
			X: ref.Position.X + d.Position.X,
			Y: ref.Position.Y + ref.Size.Y + d.Position.Y,
		}
	}

	opts := BoxOptions{
		ScreenSize:          w.size,
		Position:            d.Position,
		Size:                d.Size,
		Border:              d.Border,
		Style:               d.Style,
		BorderColor:         d.BorderColor,
		BackgroundColor:     d.BackgroundColor,
		TextColor:           d.TextColor,
		Content:             d.Content,
		ForceHeightTooSmall: d.ForceHeightTooSmall,
	}

	if d.Validate {
		if err := opts.Validate(); err != nil {
			w.logger.Warn("draw skipped", "id", d.ID, "error", err)
			return fmt.Errorf("div %q: %w", d.ID, err)
		}
	}

	err := DrawBox(w.buf, opts)
	w.retain(d)
	if err != nil {
		w.logger.Warn("draw failed", "id", d.ID, "error", err)
		return fmt.Errorf("div %q: %w", d.ID, err)
	}
	w.logger.Debug("drew box", "id", d.ID, "pos", d.Position, "size", d.Size, "border", d.Border)
	return nil
}

// retain stores d, with its resolved position, when it carries an id.
func (w *Window) retain(d DivOptions) {
	if d.ID == "" {
		return
	}
	for i := range w.divs {
		if w.divs[i].ID == d.ID {
			w.divs[i] = d
			return
		}
	}
	w.divs = append(w.divs, d)
}

// Div returns the retained request with the given id. Its Position is the
// resolved screen position.
func (w *Window) Div(id string) (DivOptions, bool) {
	for _, d := range w.divs {
		if d.ID == id {
			return d, true
		}
	}
	return DivOptions{}, false
}

// Divs returns the retained requests in the order they were first drawn.
func (w *Window) Divs() []DivOptions {
	return append([]DivOptions(nil), w.divs...)
}

// Clear resets every cell. Retained divs are kept.
func (w *Window) Clear() {
	w.buf.Clear()
}

// Frame returns the compiled buffer.
func (w *Window) Frame() string {
	return Compile(w.buf)
}

// Render writes the current frame to the window's output.
func (w *Window) Render() error {
	if err := w.out.WriteFrame(w.Frame()); err != nil {
		w.logger.Error("render failed", "error", err)
		return fmt.Errorf("failed to render: %w", err)
	}
	w.logger.Debug("rendered", "width", w.size.X, "height", w.size.Y)
	return nil
}
