package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/config"
)

func TestDifficultyPicker(t *testing.T) {
	tests := []struct {
		name     string
		keys     []tea.KeyMsg
		want     config.DifficultyPreset
		wantQuit bool
	}{
		{"default is normal", []tea.KeyMsg{{Type: tea.KeyEnter}}, config.DifficultyNormal, false},
		{"back out", []tea.KeyMsg{{Type: tea.KeyEsc}}, "", false},
		{"quit", []tea.KeyMsg{runeKey('q')}, "", true},
		{"top of list", []tea.KeyMsg{{Type: tea.KeyUp}, {Type: tea.KeyUp}, {Type: tea.KeyUp}, {Type: tea.KeyUp}, {Type: tea.KeyEnter}}, config.Presets[0], false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m tea.Model = NewDifficultyModel(testConfig())
			for _, k := range tt.keys {
				m, _ = m.Update(k)
			}
			d := m.(DifficultyModel)
			if d.Selected() != tt.want || d.IsQuitting() != tt.wantQuit {
				t.Errorf("got (%q, %v), want (%q, %v)", d.Selected(), d.IsQuitting(), tt.want, tt.wantQuit)
			}
			if d.View() != "" {
				t.Error("a closed picker renders nothing")
			}
		})
	}
}
