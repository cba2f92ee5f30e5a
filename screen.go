package boxel

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Stream is a FrameWriter over any io.Writer. Each frame clears the screen,
// homes the cursor and is flushed in one write.
type Stream struct {
	w   *bufio.Writer
	out *termenv.Output
}

// NewStream creates a Stream writing to w.
func NewStream(w io.Writer) *Stream {
	bw := bufio.NewWriter(w)
	return &Stream{
		w:   bw,
		out: termenv.NewOutput(bw, termenv.WithProfile(termenv.TrueColor)),
	}
}

// WriteFrame clears the screen, writes frame from the top-left corner and
// flushes.
func (s *Stream) WriteFrame(frame string) error {
	s.out.ClearScreen()
	if _, err := s.out.WriteString(frame); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("failed to flush frame: %w", err)
	}
	return nil
}

// Terminal drives a real terminal: raw mode, alternate screen, size query
// and key input. It implements FrameWriter.
type Terminal struct {
	*Stream

	in    *os.File
	fd    int
	state *term.State
}

// NewTerminal creates a terminal reading keys from in and drawing to out.
// Pass nil to use os.Stdin and os.Stdout.
func NewTerminal(in, out *os.File) *Terminal {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Terminal{
		Stream: NewStream(out),
		in:     in,
		fd:     int(out.Fd()),
	}
}

// Size returns the terminal dimensions in cells.
func (t *Terminal) Size() (Size, error) {
	w, h, err := term.GetSize(t.fd)
	if err == nil {
		return Size{X: w, Y: h}, nil
	}
	w, h, ioErr := getTerminalSize(t.fd)
	if ioErr != nil {
		return Size{}, fmt.Errorf("failed to get terminal size: %w", errors.Join(err, ioErr))
	}
	return Size{X: w, Y: h}, nil
}

// EnterRawMode puts the input into raw mode, switches to the alternate
// screen and hides the cursor.
func (t *Terminal) EnterRawMode() error {
	if t.state != nil {
		return nil
	}
	state, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return fmt.Errorf("failed to set raw mode: %w", err)
	}
	t.state = state

	t.out.AltScreen()
	t.out.HideCursor()
	return t.w.Flush()
}

// ExitRawMode restores the terminal to its original state.
func (t *Terminal) ExitRawMode() error {
	if t.state == nil {
		return nil
	}
	t.out.ShowCursor()
	t.out.ExitAltScreen()
	if err := t.w.Flush(); err != nil {
		return fmt.Errorf("failed to flush: %w", err)
	}
	if err := term.Restore(int(t.in.Fd()), t.state); err != nil {
		return fmt.Errorf("failed to restore terminal: %w", err)
	}
	t.state = nil
	return nil
}

// Keys returns the keys read from the terminal input. Iteration blocks
// until a key arrives and ends at EOF.
func (t *Terminal) Keys() iter.Seq2[Key, error] {
	return ReadKeys(t.in)
}
