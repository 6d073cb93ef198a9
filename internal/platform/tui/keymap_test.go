package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
		quit bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionRotateLeft, false},
		{"a", runeKey('a'), core.ActionRotateLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRotateRight, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionThrust, false},
		{"s", runeKey('s'), core.ActionBrake, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire, false},
		{"h", runeKey('h'), core.ActionHyperspace, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"b", runeKey('b'), core.ActionBack, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := km.MapKey(tt.msg)
			if got != tt.want || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)", tt.msg.String(), got, quit, tt.want, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()
	if km.MapKeyToFrame(runeKey('d'), &frame) {
		t.Fatal("d is not a quit key")
	}
	km.MapKeyToFrame(runeKey('z'), &frame)
	if !frame.Has(core.ActionRotateRight) || len(frame.Actions) != 1 {
		t.Errorf("frame = %v", frame.Actions)
	}
}

func TestHeld(t *testing.T) {
	for a, want := range map[core.Action]bool{
		core.ActionRotateLeft: true,
		core.ActionThrust:     true,
		core.ActionBrake:      true,
		core.ActionFire:       false,
		core.ActionHyperspace: false,
		core.ActionStart:      false,
	} {
		if Held(a) != want {
			t.Errorf("Held(%v) = %v, want %v", a, !want, want)
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestGameKeysHelpCoversEveryAction(t *testing.T) {
	keys := DefaultGameKeys()
	listed := 0
	for _, col := range keys.FullHelp() {
		listed += len(col)
	}
	if listed != len(keys.actions()) {
		t.Errorf("full help lists %d bindings, want %d", listed, len(keys.actions()))
	}
	for _, b := range keys.actions() {
		if b.binding.Help().Desc == "" {
			t.Errorf("binding for %v has no help text", b.action)
		}
	}
}

func TestDisabledBindingIsIgnored(t *testing.T) {
	km := NewKeyMapper()
	km.Game.Hyperspace.SetEnabled(false)
	if got, _ := km.MapKey(runeKey('h')); got != core.ActionNone {
		t.Errorf("disabled hyperspace mapped to %v", got)
	}
}

func TestKeyHints(t *testing.T) {
	keys := DefaultGameKeys()
	keys.Quit.SetEnabled(false)
	got := keyHints([]key.Binding{keys.Fire, keys.Quit, keys.Pause})
	if want := "space fire  p pause"; got != want {
		t.Errorf("keyHints = %q, want %q", got, want)
	}
}
