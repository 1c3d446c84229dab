package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mathbreak/internal/core"
)

// KeyMap defines the key bindings for play. Letters and digits are never
// bound so they always reach the answer buffer.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Confirm key.Binding
	Erase   key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Confirm, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Confirm, k.Erase, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "move right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "answer"),
		),
		Erase: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("bksp", "erase"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game input.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a key mapper with the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKeyToFrame updates an input frame based on a key message and returns
// the arrow action pressed (ActionNone otherwise) and whether it was a quit
// request. Quit never reaches the frame; the driver handles it. Text keys,
// including enter and backspace, go to the typed stream in arrival order.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) (arrow core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionNone, true
	case key.Matches(msg, km.keys.Left):
		frame.Set(core.ActionLeft)
		return core.ActionLeft, false
	case key.Matches(msg, km.keys.Right):
		frame.Set(core.ActionRight)
		return core.ActionRight, false
	case key.Matches(msg, km.keys.Confirm):
		frame.Type(core.RuneEnter)
	case key.Matches(msg, km.keys.Erase):
		frame.Type(core.RuneBackspace)
	case msg.Type == tea.KeyRunes:
		frame.Type(msg.Runes...)
	case msg.Type == tea.KeySpace:
		frame.Type(' ')
	}
	return core.ActionNone, false
}

// HoldTracker emulates key release. Terminals only report presses and
// auto-repeats, so an arrow counts as held until no repeat has arrived for
// the release delay, and then an ActionStop is emitted.
type HoldTracker struct {
	releaseAfter int // Ticks
	held         core.Action
	remaining    int
}

// NewHoldTracker creates a tracker releasing after the given number of ticks.
func NewHoldTracker(releaseAfterTicks int) *HoldTracker {
	return &HoldTracker{
		releaseAfter: max(releaseAfterTicks, 1),
		held:         core.ActionNone,
	}
}

// Press records an arrow press or repeat.
func (h *HoldTracker) Press(a core.Action) {
	h.held = a
	h.remaining = h.releaseAfter
}

// Tick advances the release countdown and adds ActionStop to the frame once
// it expires. Call once per simulation tick before stepping the game.
func (h *HoldTracker) Tick(frame *core.InputFrame) {
	if h.held == core.ActionNone {
		return
	}
	h.remaining--
	if h.remaining > 0 {
		return
	}
	h.held = core.ActionNone
	frame.Set(core.ActionStop)
}
