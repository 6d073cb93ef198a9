package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

const (
	scoreboardLimit = 100
	dateLayout      = "Jan 02 15:04"
)

// boardPage is one tab of the scoreboard.
type boardPage interface {
	Title() string
	Columns() []table.Column
	Rows(*storage.Store) []table.Row
	// Summary is a one-line footer; empty hides it.
	Summary(*storage.Store) string
	Empty() string
}

// scorePage lists the best games of one mode.
type scorePage struct {
	id, title string
}

func (p scorePage) Title() string { return p.title }

func (scorePage) Columns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 10},
		{Title: "Wave", Width: 5},
		{Title: "Date", Width: 14},
	}
}

func (p scorePage) Rows(s *storage.Store) []table.Row {
	scores, err := s.TopScores(p.id, scoreboardLimit)
	if err != nil {
		return nil
	}
	rows := make([]table.Row, 0, len(scores))
	for i, e := range scores {
		wave := "-"
		if e.Wave > 0 {
			wave = strconv.Itoa(e.Wave)
		}
		rows = append(rows, table.Row{strconv.Itoa(i + 1), strconv.Itoa(e.Score), wave, e.CreatedAt.Format(dateLayout)})
	}
	return rows
}

func (p scorePage) Summary(s *storage.Store) string {
	st, err := s.Stats(p.id)
	if err != nil || st.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("%d games  avg %.0f  furthest wave %d  last %s",
		st.GamesCount, st.AvgScore, st.BestWave, st.LastPlayed.Format(dateLayout))
}

func (scorePage) Empty() string {
	return "No scores recorded yet.\nPlay a game to set a high score!"
}

// runPage lists recorded headless runs.
type runPage struct{}

func (runPage) Title() string { return "Headless runs" }

func (runPage) Columns() []table.Column {
	return []table.Column{
		{Title: "Policy", Width: 10},
		{Title: "Seed", Width: 8},
		{Title: "Eps", Width: 5},
		{Title: "Best", Width: 8},
		{Title: "Avg", Width: 8},
		{Title: "Date", Width: 14},
	}
}

func (runPage) Rows(s *storage.Store) []table.Row {
	runs, err := s.RecentRuns("", scoreboardLimit)
	if err != nil {
		return nil
	}
	rows := make([]table.Row, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, table.Row{
			r.Policy,
			strconv.FormatInt(r.Seed, 10),
			strconv.Itoa(r.Episodes),
			strconv.Itoa(r.BestScore),
			fmt.Sprintf("%.0f", r.AvgScore()),
			r.CreatedAt.Format(dateLayout),
		})
	}
	return rows
}

func (runPage) Summary(*storage.Store) string { return "" }

func (runPage) Empty() string {
	return "No runs recorded yet.\nTry: asteroids sim --record"
}

// ScoreboardKeyMap holds the scoreboard's bindings.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Back, k.Quit}
}

func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns the default scoreboard bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next page")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev page")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle   = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("245"))
	boardActiveTab  = boardTabStyle.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	boardBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreboardModel shows one page per registered mode, then the headless
// runs.
type ScoreboardModel struct {
	store   *storage.Store
	pages   []boardPage
	page    int
	table   table.Model
	empty   bool
	summary string
	keys    ScoreboardKeyMap
	help    help.Model
	width   int
	height  int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel opens the scoreboard on its first page. A nil store
// shows every page empty.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	var pages []boardPage
	for _, g := range registry.List() {
		pages = append(pages, scorePage{id: g.ID, title: g.Title})
	}
	pages = append(pages, runPage{})

	m := ScoreboardModel{
		store:  store,
		pages:  pages,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.load()
	return m
}

func (m *ScoreboardModel) load() {
	p := m.pages[m.page]

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))

	m.table = table.New(
		table.WithColumns(p.Columns()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
		table.WithStyles(styles),
	)
	m.summary = ""
	m.empty = true
	if m.store != nil {
		rows := p.Rows(m.store)
		m.table.SetRows(rows)
		m.empty = len(rows) == 0
		m.summary = p.Summary(m.store)
	}
}

func (m ScoreboardModel) Init() tea.Cmd { return nil }

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.page = (m.page + 1) % len(m.pages)
			m.load()
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.page = (m.page + len(m.pages) - 1) % len(m.pages)
			m.load()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	tabs := make([]string, len(m.pages))
	for i, p := range m.pages {
		style := boardTabStyle
		if i == m.page {
			style = boardActiveTab
		}
		tabs[i] = style.Render(p.Title())
	}

	content := m.table.View()
	if m.empty {
		content = boardDimStyle.Italic(true).Padding(1, 2).Render(m.pages[m.page].Empty())
	}

	parts := []string{
		boardTitleStyle.Render("HIGH SCORES"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		boardBoxStyle.Render(content),
	}
	if m.summary != "" {
		parts = append(parts, boardDimStyle.Render(m.summary))
	}
	parts = append(parts, "", m.help.View(m.keys))

	var b strings.Builder
	for _, line := range strings.Split(lipgloss.JoinVertical(lipgloss.Center, parts...), "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	return b.String()
}

// IsGoingBack reports that the user asked for the menu.
func (m ScoreboardModel) IsGoingBack() bool { return m.goingBack }

// IsQuitting reports that the user asked to leave entirely.
func (m ScoreboardModel) IsQuitting() bool { return m.quitting }

// RunScoreboard shows the scoreboard until the user leaves. goBack is
// false when the user quit instead.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
