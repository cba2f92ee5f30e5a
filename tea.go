package boxel

import (
	tea "github.com/charmbracelet/bubbletea"
)

// FrameFunc adapts a function to a FrameWriter.
type FrameFunc func(frame string) error

// WriteFrame calls f(frame).
func (f FrameFunc) WriteFrame(frame string) error {
	return f(frame)
}

// TeaModel runs a Window inside a Bubble Tea program. The program owns the
// terminal; View hands it the window's buffer with plain newlines.
type TeaModel struct {
	window *Window
	onKey  func(Key) error
	err    error
}

// NewTeaModel wraps w. onKey is called for every key except the quit keys;
// it may redraw the window. A returned error stops the program.
func NewTeaModel(w *Window, onKey func(Key) error) TeaModel {
	return TeaModel{window: w, onKey: onKey}
}

// Err returns the error that stopped the program, if any.
func (m TeaModel) Err() error {
	return m.err
}

func (m TeaModel) Init() tea.Cmd {
	return nil
}

func (m TeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		k := teaKey(msg)
		if k.IsQuit() {
			return m, tea.Quit
		}
		if m.onKey != nil {
			if err := m.onKey(k); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
	case tea.WindowSizeMsg:
		m.window.logger.Debug("terminal resized", "width", msg.Width, "height", msg.Height)
	}
	return m, nil
}

func (m TeaModel) View() string {
	return CompileWith(m.window.Buffer(), "\n")
}

func teaKey(msg tea.KeyMsg) Key {
	k := Key{Name: msg.String()}
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		k.Rune = msg.Runes[0]
	}
	return k
}
