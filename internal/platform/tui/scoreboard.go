package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/clipper-arcade/internal/core"
	"github.com/vovakirdan/clipper-arcade/internal/registry"
	"github.com/vovakirdan/clipper-arcade/internal/storage"
)

// maxScores is how many runs the board loads per variant.
const maxScores = 100

// ScoreSource lists stored runs and their totals. *storage.Store implements it.
type ScoreSource interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	GetGameStats(gameID string) (*storage.GameStats, error)
}

// runOrder is how the table is sorted.
type runOrder int

const (
	orderBest runOrder = iota
	orderRecent
)

func (o runOrder) String() string {
	if o == orderRecent {
		return "most recent"
	}
	return "best"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Variant key.Binding
	Sort    key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Variant, k.Sort, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Variant, k.Sort},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Variant: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "switch variant"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "best/recent"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows recorded runs for one variant at a time.
type ScoreboardModel struct {
	games     []registry.GameInfo
	current   int
	order     runOrder
	store     ScoreSource
	loadErr   error
	runs      []storage.ScoreEntry
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	config    core.RuntimeConfig
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a new scoreboard model. store may be nil.
func NewScoreboardModel(store ScoreSource, cfg core.RuntimeConfig) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		config: cfg,
	}
	m.table = m.newTable()
	m.load()
	return m
}

func (m *ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 8},
		{Title: "Stomps", Width: 7},
		{Title: "Coins", Width: 6},
		{Title: "Time", Width: 6},
		{Title: "Date", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.config.ScreenH-12)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m *ScoreboardModel) gameID() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.current].ID
}

// load fetches runs and totals for the current variant.
func (m *ScoreboardModel) load() {
	m.runs, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil && m.gameID() != "" {
		m.runs, m.loadErr = m.store.TopScores(m.gameID(), maxScores)
		if m.loadErr == nil {
			// Totals are optional; the table still works without them
			m.stats, _ = m.store.GetGameStats(m.gameID())
		}
	}
	m.refreshRows()
}

func (m *ScoreboardModel) refreshRows() {
	runs := sortRuns(m.runs, m.order)
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Stomps),
			fmt.Sprintf("%d", r.Coins),
			FormatTicks(r.Ticks, m.config.TickRate),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// sortRuns returns runs in the requested order without touching the input.
func sortRuns(runs []storage.ScoreEntry, order runOrder) []storage.ScoreEntry {
	out := append([]storage.ScoreEntry(nil), runs...)
	switch order {
	case orderRecent:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].CreatedAt.Equal(out[j].CreatedAt) {
				return out[i].ID > out[j].ID
			}
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	}
	return out
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Variant):
			if n := len(m.games); n > 0 {
				step := 1
				if s := msg.String(); s == "shift+tab" || s == "left" || s == "h" {
					step = n - 1
				}
				m.current = (m.current + step) % n
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.Sort):
			m.order = (m.order + 1) % 2
			m.refreshRows()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.table = m.newTable()
		m.refreshRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	activeTabStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	tabStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	panelStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	mutedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(1, 2)
)

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}
	width := m.config.ScreenW

	var b strings.Builder
	b.WriteString(boardTitleStyle.Render(centerText("RUN HISTORY", width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), width))
	b.WriteString("\n\n")
	if summary := m.renderSummary(); summary != "" {
		b.WriteString(centerText(summary, width))
		b.WriteString("\n")
	}
	b.WriteString(centerText(mutedStyle.Render("sorted by "+m.order.String()), width))
	b.WriteString("\n")
	b.WriteString(centerText(panelStyle.Render(m.renderTable()), width))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) renderTabs() string {
	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.current {
			tabs[i] = activeTabStyle.Render(g.Title)
		} else {
			tabs[i] = tabStyle.Render(g.Title)
		}
	}
	return strings.Join(tabs, " ")
}

// renderSummary is the one-line lifetime total for the current variant.
func (m ScoreboardModel) renderSummary() string {
	s := m.stats
	if s == nil || s.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("%d runs  best %d  avg %.0f  stomps %d  coins %d  played %s",
		s.GamesCount, s.HighScore, s.AvgScore, s.TotalStomps, s.TotalCoins,
		FormatTicks(int(s.TotalTicks), m.config.TickRate))
}

func (m ScoreboardModel) renderTable() string {
	if m.loadErr != nil {
		return errorStyle.Render("Could not load runs:\n" + m.loadErr.Error())
	}
	if len(m.runs) == 0 {
		return mutedStyle.Italic(true).Padding(1, 2).Render("No runs recorded yet.\nDodge a few lighters to set a score!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store ScoreSource, cfg core.RuntimeConfig) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("tui: scoreboard: %w", err)
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}

// FormatTicks renders a tick count as m:ss at the given tick rate.
func FormatTicks(ticks, tickRate int) string {
	if tickRate <= 0 {
		tickRate = 60
	}
	secs := ticks / tickRate
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
