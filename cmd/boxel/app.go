package main

import (
	"errors"
	"iter"

	"github.com/charmbracelet/log"

	"boxel"
)

var defaultSize = boxel.Size{X: 80, Y: 24}

var (
	panelBG   = boxel.RGB(40, 44, 52)
	dimText   = boxel.RGB(171, 178, 191)
	highlight = boxel.RGB(229, 192, 123)
)

// defaultLayout is the built-in demo: a full-screen frame, a ruled line,
// a movable box with a note hanging under it, and boxes that run off the
// screen edges.
func defaultLayout(size boxel.Size, forceError bool) []boxel.DivOptions {
	return []boxel.DivOptions{
		{
			ID:          "frame",
			Size:        size,
			Border:      boxel.BorderAll,
			Style:       boxel.BorderRounded,
			BorderColor: dimText.Ptr(),
			Content:     []string{"boxel", "q quits, arrows move, tab switches focus"},
		},
		{
			ID:       "rule",
			Position: boxel.Point{X: 0, Y: 3},
			Size:     boxel.Size{X: size.X, Y: 1},
			Border:   boxel.BorderTop | boxel.BorderPreserveCorners,
			Style:    boxel.BorderSharp,
		},
		{
			ID:                  "mover",
			Position:            boxel.Point{X: 4, Y: 5},
			Size:                boxel.Size{X: 26, Y: 5},
			Border:              boxel.BorderAll,
			Style:               boxel.BorderDouble,
			BorderColor:         boxel.Red.Ptr(),
			BackgroundColor:     panelBG.Ptr(),
			TextColor:           highlight.Ptr(),
			Content:             []string{"move me", "with the arrow keys", "I keep my colours"},
			ForceHeightTooSmall: forceError,
		},
		{
			ID:       "note",
			Under:    "mover",
			Position: boxel.Point{X: 2, Y: 0},
			Size:     boxel.Size{X: 22, Y: 3},
			Border:   boxel.BorderTop | boxel.BorderBottom | boxel.BorderLeft,
			Style:    boxel.BorderDotted,
			Content:  []string{"placed under mover"},
		},
		{
			ID:          "clipped",
			Position:    boxel.Point{X: -6, Y: 11},
			Size:        boxel.Size{X: 20, Y: 4},
			Border:      boxel.BorderAll,
			Style:       boxel.BorderThick,
			BorderColor: boxel.Cyan.Ptr(),
			Content:     []string{"cut off on the left"},
		},
		{
			ID:              "corner",
			Position:        boxel.Point{X: size.X - 12, Y: size.Y - 4},
			Size:            boxel.Size{X: 18, Y: 7},
			Border:          boxel.BorderAll,
			Style:           boxel.BorderBlock,
			BorderColor:     boxel.Magenta.Ptr(),
			BackgroundColor: boxel.Black.Ptr(),
			TextColor:       boxel.White.Ptr(),
			Content:         []string{"off the corner"},
		},
	}
}

type app struct {
	window *boxel.Window
	divs   []boxel.DivOptions
	focus  int
	logger *log.Logger
}

func newApp(w *boxel.Window, divs []boxel.DivOptions, logger *log.Logger) *app {
	a := &app{window: w, divs: divs, logger: logger}
	a.focus = a.nextMovable(-1)
	return a
}

// draw clears the window and draws every div in order. Failed draws are
// logged and skipped; forced height errors still leave the box drawn.
func (a *app) draw() {
	a.window.Clear()
	for _, d := range a.divs {
		err := a.window.DrawBox(d)
		switch {
		case err == nil:
		case errors.Is(err, boxel.ErrHeightTooSmall) && d.ForceHeightTooSmall:
			a.logger.Info("forced draw error", "id", d.ID, "error", err)
		default:
			a.logger.Warn("draw failed", "id", d.ID, "error", err)
		}
	}
}

// movable divs are those positioned on the screen rather than under
// another div.
func (a *app) nextMovable(from int) int {
	for i := 1; i <= len(a.divs); i++ {
		j := (from + i + len(a.divs)) % len(a.divs)
		if a.divs[j].Under == "" && a.divs[j].ID != "frame" && a.divs[j].ID != "rule" {
			return j
		}
	}
	return -1
}

// handleKey applies a key to the layout and reports whether it changed.
func (a *app) handleKey(k boxel.Key) bool {
	if k.Name == "tab" {
		a.focus = a.nextMovable(a.focus)
		a.logger.Debug("focus", "index", a.focus)
		return false
	}
	if a.focus < 0 {
		return false
	}

	var delta boxel.Point
	switch k.Name {
	case "up":
		delta.Y = -1
	case "down":
		delta.Y = 1
	case "left":
		delta.X = -1
	case "right":
		delta.X = 1
	default:
		return false
	}
	d := &a.divs[a.focus]
	d.Position = d.Position.Add(delta)
	a.logger.Debug("moved", "id", d.ID, "pos", d.Position)
	return true
}

// loop draws, renders and then redraws after every key until a quit key or
// the end of input.
func (a *app) loop(keys iter.Seq2[boxel.Key, error]) error {
	a.draw()
	if err := a.window.Render(); err != nil {
		return err
	}
	for k, err := range keys {
		if err != nil {
			return err
		}
		if k.IsQuit() {
			a.logger.Info("quit", "key", k.Name)
			return nil
		}
		if a.handleKey(k) {
			a.draw()
		}
		if err := a.window.Render(); err != nil {
			return err
		}
	}
	return nil
}
