package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

func TestScoreboardPagesCycle(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	n := len(m.pages)
	if _, ok := m.pages[n-1].(runPage); !ok {
		t.Fatalf("last page is %T, want runPage", m.pages[n-1])
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := next.(ScoreboardModel).page; got != n-1 {
		t.Errorf("prev from first page = %d, want %d", got, n-1)
	}
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyTab})
	if got := next.(ScoreboardModel).page; got != 0 {
		t.Errorf("next from last page = %d, want 0", got)
	}
	if !next.(ScoreboardModel).empty {
		t.Error("a board without a store should be empty")
	}
}

func TestScoreboardShowsWaveAndSummary(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "board.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	store.SaveScore(stubGameID, 700, 3)
	store.SaveScore(stubGameID, 900, 5)

	m := NewScoreboardModel(store, 100, 30)
	for i, p := range m.pages {
		if sp, ok := p.(scorePage); ok && sp.id == stubGameID {
			m.page = i
		}
	}
	m.load()

	if m.empty {
		t.Fatal("stub page should have rows")
	}
	rows := m.table.Rows()
	if len(rows) != 2 || rows[0][1] != "900" || rows[0][2] != "5" {
		t.Errorf("rows = %v", rows)
	}
	if !strings.Contains(m.summary, "2 games") || !strings.Contains(m.summary, "furthest wave 5") {
		t.Errorf("summary = %q", m.summary)
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	back, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil || !back.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}
	quit, _ := m.Update(runeKey('q'))
	if !quit.(ScoreboardModel).IsQuitting() || quit.(ScoreboardModel).IsGoingBack() {
		t.Error("q should quit")
	}
}
