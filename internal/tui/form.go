package tui

import (
	"fmt"

	"github.com/jesseduffield/gocui"
)

type inputKind int

const (
	inputSearch inputKind = iota
	inputAddTask
)

// inputState backs the single-line popup used for searching posts and
// adding tasks.
type inputState struct {
	kind  inputKind
	value string
}

func (s *inputState) title() string {
	switch s.kind {
	case inputAddTask:
		return "New Task (enter save, esc cancel)"
	default:
		return "Search Posts (enter apply, esc cancel)"
	}
}

type lineEditor struct {
	ui *UI
}

func (e *lineEditor) Edit(view *gocui.View, key gocui.Key, ch rune, mod gocui.Modifier) bool {
	ui := e.ui
	if ui == nil || ui.input == nil || view == nil {
		return false
	}
	value, handled := editLine(ui.input.value, key, ch, mod)
	if !handled {
		return false
	}
	ui.input.value = value
	e.render(view)
	return true
}

func (e *lineEditor) render(view *gocui.View) {
	if e.ui.input == nil || view == nil {
		return
	}
	view.Clear()
	fmt.Fprint(view, e.ui.input.value)
	view.SetCursor(len([]rune(e.ui.input.value)), 0)
}

// editLine applies one keystroke to value. Keys it does not consume, such as
// enter and escape, are left for the view keybindings.
func editLine(value string, key gocui.Key, ch rune, mod gocui.Modifier) (string, bool) {
	switch key {
	case gocui.KeyBackspace, gocui.KeyBackspace2:
		runes := []rune(value)
		if len(runes) > 0 {
			value = string(runes[:len(runes)-1])
		}
		return value, true
	case gocui.KeySpace:
		return value + " ", true
	case gocui.KeyCtrlU:
		return "", true
	}

	if ch != 0 && ch != '\n' && ch != '\r' && mod == gocui.ModNone {
		return value + string(ch), true
	}
	return value, false
}
