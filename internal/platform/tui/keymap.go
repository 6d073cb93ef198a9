package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// GameKeys binds terminal keys to ship and session controls. It doubles
// as a help.KeyMap for the in-game help line.
type GameKeys struct {
	RotateLeft  key.Binding
	RotateRight key.Binding
	Thrust      key.Binding
	Brake       key.Binding
	Fire        key.Binding
	Hyperspace  key.Binding
	Start       key.Binding
	Pause       key.Binding
	Restart     key.Binding
	Back        key.Binding
	Quit        key.Binding
}

// DefaultGameKeys returns WASD plus arrow-key bindings.
func DefaultGameKeys() GameKeys {
	return GameKeys{
		RotateLeft:  key.NewBinding(key.WithKeys("a", "left"), key.WithHelp("a/←", "rotate left")),
		RotateRight: key.NewBinding(key.WithKeys("d", "right"), key.WithHelp("d/→", "rotate right")),
		Thrust:      key.NewBinding(key.WithKeys("w", "up"), key.WithHelp("w/↑", "thrust")),
		Brake:       key.NewBinding(key.WithKeys("s", "down"), key.WithHelp("s/↓", "brake")),
		Fire:        key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "fire")),
		Hyperspace:  key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hyperspace")),
		Start:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
		Pause:       key.NewBinding(key.WithKeys("p", "esc"), key.WithHelp("p", "pause")),
		Restart:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Back:        key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "menu")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k GameKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Thrust, k.Fire, k.Hyperspace, k.Pause, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k GameKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.RotateLeft, k.RotateRight, k.Thrust, k.Brake},
		{k.Fire, k.Hyperspace},
		{k.Start, k.Pause, k.Restart, k.Back, k.Quit},
	}
}

// keyHints renders bindings as plain "key desc" pairs for drawing into a
// screen buffer, where styled help output would break the cell grid.
func keyHints(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if b.Enabled() {
			parts = append(parts, b.Help().Key+" "+b.Help().Desc)
		}
	}
	return strings.Join(parts, "  ")
}

type boundAction struct {
	binding key.Binding
	action  core.Action
}

func (k GameKeys) actions() []boundAction {
	return []boundAction{
		{k.Quit, core.ActionQuit},
		{k.RotateLeft, core.ActionRotateLeft},
		{k.RotateRight, core.ActionRotateRight},
		{k.Thrust, core.ActionThrust},
		{k.Brake, core.ActionBrake},
		{k.Fire, core.ActionFire},
		{k.Hyperspace, core.ActionHyperspace},
		{k.Start, core.ActionStart},
		{k.Pause, core.ActionPause},
		{k.Restart, core.ActionRestart},
		{k.Back, core.ActionBack},
	}
}

// MenuKeys binds the keys shared by the pickers.
type MenuKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// DefaultMenuKeys returns arrow, WASD and vim-style navigation.
func DefaultMenuKeys() MenuKeys {
	return MenuKeys{
		Up:     key.NewBinding(key.WithKeys("up", "w", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "s", "j"), key.WithHelp("↓/j", "down")),
		Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Scores: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "scores")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k MenuKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scores, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k MenuKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Select}, {k.Back, k.Scores, k.Quit}}
}

// KeyMapper translates Bubble Tea key messages into game and menu actions.
type KeyMapper struct {
	Game GameKeys
	Menu MenuKeys
}

// NewKeyMapper returns a mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{Game: DefaultGameKeys(), Menu: DefaultMenuKeys()}
}

// MapKey returns the action bound to msg, or ActionNone. The second result
// reports a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	for _, b := range km.Game.actions() {
		if key.Matches(msg, b.binding) {
			return b.action, b.action == core.ActionQuit
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame records the action bound to msg in frame and reports a
// quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// Held reports whether an action keeps acting while its key auto-repeats.
// Terminals send no key-up events, so continuous controls are held for a
// few ticks after each press; one-shot actions are not.
func Held(a core.Action) bool {
	switch a {
	case core.ActionRotateLeft, core.ActionRotateRight, core.ActionThrust, core.ActionBrake:
		return true
	}
	return false
}

// MenuAction is a navigation step in one of the pickers.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	k := km.Menu
	switch {
	case key.Matches(msg, k.Quit):
		return MenuActionQuit
	case key.Matches(msg, k.Up):
		return MenuActionUp
	case key.Matches(msg, k.Down):
		return MenuActionDown
	case key.Matches(msg, k.Select):
		return MenuActionSelect
	case key.Matches(msg, k.Back):
		return MenuActionBack
	case key.Matches(msg, k.Scores):
		return MenuActionScoreboard
	}
	return MenuActionNone
}
