package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/audio"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids/sim"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// holdTicks is how long a continuous control stays down after a key press.
// Key auto-repeat is slower than the tick rate, so without it a held arrow
// would only act on some frames.
const holdTicks = 4

// eventSource is implemented by games that expose simulation events.
type eventSource interface {
	LastEvents() []sim.Event
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	sound      audio.Port
	keyMapper  *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	held       map[core.Action]int
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	embedded   bool // part of a larger session; back does not end the program
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game. sound may be nil.
func NewModel(game registry.Game, store *storage.Store, sound audio.Port, cfg core.RuntimeConfig) Model {
	cfg = cfg.Normalized()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if sound == nil {
		sound = audio.Null{}
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		sound:      sound,
		keyMapper:  NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		held:       make(map[core.Action]int),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, quit := m.keyMapper.MapKey(msg)
	if quit {
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionNone {
		return m, nil
	}
	if action == core.ActionBack {
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if !m.embedded {
				return m, tea.Quit
			}
		}
		return m, nil
	}

	if Held(action) {
		m.held[action] = holdTicks
		// Opposite controls cancel each other.
		switch action {
		case core.ActionRotateLeft:
			delete(m.held, core.ActionRotateRight)
		case core.ActionRotateRight:
			delete(m.held, core.ActionRotateLeft)
		case core.ActionThrust:
			delete(m.held, core.ActionBrake)
		case core.ActionBrake:
			delete(m.held, core.ActionThrust)
		}
		return m, nil
	}
	m.inputFrame.Set(action)
	return m, nil
}

// handleResize follows the terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config = m.config.Resized(msg.Width, msg.Height)
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(m.config)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	for a, n := range m.held {
		m.inputFrame.Set(a)
		if n <= 1 {
			delete(m.held, a)
		} else {
			m.held[a] = n - 1
		}
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if src, ok := m.game.(eventSource); ok {
		m.sound.Handle(src.LastEvents())
	}

	// Save score on game over (once)
	switch {
	case m.gameState.GameOver && !m.scoreSaved:
		if m.store != nil && m.gameState.Score > 0 {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.Level)
		}
		m.scoreSaved = true
	case !m.gameState.GameOver:
		m.scoreSaved = false
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".asteroids", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user asked to leave the game.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || (m.backToMenu && !m.embedded) {
		return ""
	}
	m.game.Render(m.screen)
	if m.gameState.Paused {
		m.screen.DrawTextCentered(m.screen.Height()-1, keyHints(m.keyMapper.Game.ShortHelp()))
	}
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for game. The sound port is
// initialised here; if that fails the game runs silently.
func Run(game registry.Game, store *storage.Store, sound audio.Port, cfg core.RuntimeConfig) error {
	if sound != nil {
		if err := sound.Init(); err != nil {
			sound = audio.Null{}
		}
		defer sound.Close()
	}

	p := tea.NewProgram(
		NewModel(game, store, sound, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
