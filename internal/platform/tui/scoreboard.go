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

	"github.com/vovakirdan/party-pascal/internal/registry"
	"github.com/vovakirdan/party-pascal/internal/score"
	"github.com/vovakirdan/party-pascal/internal/storage"
	"github.com/vovakirdan/party-pascal/internal/ui"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 90  // Minimum width to show the view list sidebar
	sidebarWidth       = 18  // Width of the view list sidebar
	maxRuns            = 100 // Max runs to load per view
)

// View is one page of the scoreboard.
type View int

// Scoreboard pages.
const (
	ViewCampaign View = iota
	ViewFreePlay
	ViewRecent
	ViewMinigames
	viewCount
)

var viewTitles = [viewCount]string{"Campaign", "Free play", "Recent runs", "Minigames"}

// String returns the page title.
func (v View) String() string {
	if v < 0 || v >= viewCount {
		return "?"
	}
	return viewTitles[v]
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextView key.Binding
	PrevView key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextView, k.PrevView, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextView, k.PrevView, k.Quit},
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
		NextView: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next page"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev page"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the run history viewer.
type ScoreboardModel struct {
	store       *storage.Store
	view        View
	rows        []table.Row
	loadErr     error
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		store:       store,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.load()
	return m
}

// columns returns the column set of the current page.
func (m *ScoreboardModel) columns() []table.Column {
	if m.view == ViewMinigames {
		return []table.Column{
			{Title: "Minigame", Width: 22},
			{Title: "Plays", Width: 6},
			{Title: "Best", Width: 6},
			{Title: "Avg", Width: 7},
			{Title: "Failed", Width: 7},
			{Title: "Last played", Width: 13},
		}
	}
	first := table.Column{Title: "Rank", Width: 5}
	if m.view == ViewRecent {
		first = table.Column{Title: "Mode", Width: 9}
	}
	return []table.Column{
		first,
		{Title: "Weighted", Width: 9},
		{Title: "Score", Width: 6},
		{Title: "Level", Width: 7},
		{Title: "Player", Width: 12},
		{Title: "Date", Width: 13},
	}
}

// createTable creates a new table for the current page.
func (m *ScoreboardModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
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

// load queries the rows of the current page.
func (m *ScoreboardModel) load() {
	m.table = m.createTable()
	m.rows, m.loadErr = nil, nil
	if m.store == nil {
		m.table.SetRows(nil)
		return
	}

	switch m.view {
	case ViewCampaign, ViewFreePlay:
		mode := score.ModeCampaign
		if m.view == ViewFreePlay {
			mode = score.ModeFreePlay
		}
		runs, err := m.store.TopRuns(mode, maxRuns)
		m.loadErr = err
		for i, r := range runs {
			m.rows = append(m.rows, runRow(fmt.Sprintf("#%d", i+1), r))
		}
	case ViewRecent:
		runs, err := m.store.RecentRuns(maxRuns)
		m.loadErr = err
		for _, r := range runs {
			m.rows = append(m.rows, runRow(string(r.Mode), r))
		}
	case ViewMinigames:
		stats, err := m.store.GetAllGamesStats()
		m.loadErr = err
		m.rows = statsRows(stats)
	}
	m.table.SetRows(m.rows)
	m.table.GotoTop()
}

func runRow(first string, r score.Run) table.Row {
	player := r.PlayerID
	if player == "" {
		player = "-"
	}
	return table.Row{
		first,
		fmt.Sprintf("%d", r.Weighted),
		fmt.Sprintf("%d", r.Score),
		ui.DifficultyLabel(r.Difficulty),
		player,
		r.PlayedAt.Format("Jan 02 15:04"),
	}
}

// statsRows lists minigames in campaign order, unregistered IDs last.
func statsRows(stats map[string]*storage.GameStats) []table.Row {
	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	order := func(id string) int {
		if info, ok := registry.Lookup(id); ok {
			return info.Order
		}
		return 1 << 20
	}
	sort.Slice(ids, func(i, j int) bool {
		if oi, oj := order(ids[i]), order(ids[j]); oi != oj {
			return oi < oj
		}
		return ids[i] < ids[j]
	})

	rows := make([]table.Row, 0, len(ids))
	for _, id := range ids {
		st := stats[id]
		name := id
		if info, ok := registry.Lookup(id); ok {
			name = info.Title
		}
		rows = append(rows, table.Row{
			name,
			fmt.Sprintf("%d", st.Plays),
			fmt.Sprintf("%d", st.Best),
			fmt.Sprintf("%.1f", st.AvgPoints),
			fmt.Sprintf("%d", st.Failures),
			st.LastPlayed.Format("Jan 02 15:04"),
		})
	}
	return rows
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

		case key.Matches(msg, m.keys.NextView):
			m.view = (m.view + 1) % viewCount
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.PrevView):
			m.view = (m.view + viewCount - 1) % viewCount
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.table.SetRows(m.rows)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "RUN HISTORY - " + strings.ToUpper(m.view.String())
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the page list as a sidebar next to the table.
func (m ScoreboardModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Pages\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for v := View(0); v < viewCount; v++ {
		cursor := "  "
		style := lipgloss.NewStyle()
		if v == m.view {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + v.String()))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout renders page tabs above the table.
func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, 0, viewCount)
	for v := View(0); v < viewCount; v++ {
		if v == m.view {
			tabs = append(tabs, activeTabStyle.Render(v.String()))
		} else {
			tabs = append(tabs, tabStyle.Render(" "+v.String()+" "))
		}
	}

	tabLine := strings.Join(tabs, " ")
	if lipgloss.Width(tabLine) > m.width-4 {
		tabLine = fmt.Sprintf("< %s >", m.view)
	}
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)
	switch {
	case m.loadErr != nil:
		return emptyStyle.Render("Could not read the run history:\n" + m.loadErr.Error())
	case len(m.rows) == 0:
		return emptyStyle.Render("No runs recorded yet.\nFinish a campaign to set a score!")
	}
	return m.table.View()
}

// centerText pads every line of text to be centered in width.
func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

// RunScoreboard runs the scoreboard screen until the user quits.
func RunScoreboard(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
