package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

var presetBlurbs = map[config.DifficultyPreset]string{
	config.DifficultyEasy:   "5 lives, slow rocks, few small saucers",
	config.DifficultyNormal: "3 lives, the arcade balance",
	config.DifficultyHard:   "2 lives, fast rocks, sharpshooting saucers",
	config.DifficultyFixed:  "no speed-up as your score climbs",
}

// DifficultyModel picks a difficulty preset before a game starts.
type DifficultyModel struct {
	presets   []config.DifficultyPreset
	cursor    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	help      help.Model

	chosen config.DifficultyPreset
	done   bool
	quit   bool
}

// NewDifficultyModel starts with the normal preset highlighted.
func NewDifficultyModel(cfg core.RuntimeConfig) DifficultyModel {
	m := DifficultyModel{
		presets:   config.Presets,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
	}
	for i, p := range m.presets {
		if p == config.DifficultyNormal {
			m.cursor = i
		}
	}
	return m
}

func (m DifficultyModel) Init() tea.Cmd { return nil }

func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config = m.config.Resized(msg.Width, msg.Height)
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionUp:
			m.cursor = max(m.cursor-1, 0)
		case MenuActionDown:
			m.cursor = min(m.cursor+1, len(m.presets)-1)
		case MenuActionSelect:
			m.chosen, m.done = m.presets[m.cursor], true
			return m, tea.Quit
		case MenuActionBack:
			m.done = true
			return m, tea.Quit
		case MenuActionQuit:
			m.done, m.quit = true, true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m DifficultyModel) View() string {
	if m.done {
		return ""
	}
	rows := []string{
		menuTitleStyle.Render("A S T E R O I D S"),
		menuDimStyle.Render("choose a difficulty"),
		"",
	}
	for i, p := range m.presets {
		cursor, style := "  ", menuItemStyle
		if i == m.cursor {
			cursor, style = "> ", menuPickStyle
		}
		name := fmt.Sprintf("%s%-7s", cursor, strings.ToUpper(string(p)))
		rows = append(rows, style.Render(name)+" "+menuDimStyle.Render(presetBlurbs[p]))
	}
	rows = append(rows, "", m.help.View(m.keyMapper.Menu))
	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, body)
}

// Selected returns the chosen preset, or "" when the user backed out.
func (m DifficultyModel) Selected() config.DifficultyPreset { return m.chosen }

func (m DifficultyModel) IsQuitting() bool { return m.quit }

// RunDifficultySelector runs the picker. An empty preset means the user
// backed out or quit; quit reports which.
func RunDifficultySelector(cfg core.RuntimeConfig) (preset config.DifficultyPreset, quit bool, err error) {
	final, err := tea.NewProgram(NewDifficultyModel(cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return "", false, err
	}
	m, ok := final.(DifficultyModel)
	if !ok {
		return "", true, nil
	}
	return m.Selected(), m.IsQuitting(), nil
}
