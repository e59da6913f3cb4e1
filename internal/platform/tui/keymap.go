package tui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/party-pascal/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to input events.
// Letters and digits are answer keys, so movement is bound to the arrows
// only and quitting to Ctrl+C.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message. ok is false for unbound keys.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (ev core.Event, ok bool) {
	switch msg.String() {
	case "ctrl+c":
		return core.Quit(), true
	case "up":
		return core.Key(core.ActionUp), true
	case "down":
		return core.Key(core.ActionDown), true
	case "left":
		return core.Key(core.ActionLeft), true
	case "right":
		return core.Key(core.ActionRight), true
	case "enter", " ", "space":
		return core.Key(core.ActionConfirm), true
	case "esc", "backspace":
		return core.Key(core.ActionBack), true
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		r := msg.Runes[0]
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return core.Choice(r), true
		}
	}
	return core.Event{}, false
}

// MapMouse translates a left-button press into a pointer event.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) (ev core.Event, ok bool) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return core.Event{}, false
	}
	return core.Pointer(msg.X, msg.Y), true
}
