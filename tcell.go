package boxel

import (
	"fmt"
	"iter"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// TcellSink is a FrameWriter backed by a tcell screen. Frames are decoded
// back into cells and drawn with SetContent.
type TcellSink struct {
	screen tcell.Screen
}

// NewTcellScreen creates and initializes a tcell screen for the
// controlling terminal.
func NewTcellScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}
	return screen, nil
}

// NewTcellSink wraps an initialized screen.
func NewTcellSink(screen tcell.Screen) *TcellSink {
	return &TcellSink{screen: screen}
}

// Size returns the screen dimensions.
func (s *TcellSink) Size() Size {
	w, h := s.screen.Size()
	return Size{X: w, Y: h}
}

// WriteFrame decodes frame and shows it.
func (s *TcellSink) WriteFrame(frame string) error {
	buf, err := DecodeFrame(frame, LineTerminator)
	if err != nil {
		return fmt.Errorf("failed to decode frame: %w", err)
	}

	s.screen.Clear()
	for y := range buf.Height() {
		for x := range buf.Width() {
			c := buf.Get(x, y)
			runes := []rune(c.Content)
			if len(runes) == 0 {
				continue
			}
			s.screen.SetContent(x, y, runes[0], runes[1:], tcellStyle(c))
		}
	}
	s.screen.Show()
	return nil
}

// Keys returns key events from the screen. Resize and mouse events are
// skipped. Iteration ends when the screen is finalized.
func (s *TcellSink) Keys() iter.Seq2[Key, error] {
	return func(yield func(Key, error) bool) {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			kev, ok := ev.(*tcell.EventKey)
			if !ok {
				continue
			}
			if !yield(tcellKey(kev), nil) {
				return
			}
		}
	}
}

// Close finalizes the screen.
func (s *TcellSink) Close() {
	s.screen.Fini()
}

func tcellStyle(c Cell) tcell.Style {
	style := tcell.StyleDefault
	if fg, ok := parseSGRColor(c.FG); ok {
		style = style.Foreground(tcellColor(fg))
	}
	if bg, ok := parseSGRColor(c.BG); ok {
		style = style.Background(tcellColor(bg))
	}
	return style
}

func tcellColor(c Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

var tcellKeyNames = map[tcell.Key]string{
	tcell.KeyEnter:     "enter",
	tcell.KeyTab:       "tab",
	tcell.KeyBackspace: "backspace",
	tcell.KeyEscape:    "esc",
	tcell.KeyUp:        "up",
	tcell.KeyDown:      "down",
	tcell.KeyLeft:      "left",
	tcell.KeyRight:     "right",
	tcell.KeyHome:      "home",
	tcell.KeyEnd:       "end",
}

func tcellKey(ev *tcell.EventKey) Key {
	k := ev.Key()
	if k == tcell.KeyRune {
		return Key{Name: string(ev.Rune()), Rune: ev.Rune()}
	}
	if name, ok := tcellKeyNames[k]; ok {
		return Key{Name: name}
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return Key{Name: "ctrl+" + string(rune('a'+k-tcell.KeyCtrlA))}
	}
	return Key{Name: strings.ToLower(ev.Name())}
}
