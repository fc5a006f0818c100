package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arcadelabs/slither/internal/store"
)

// history tabs
const (
	tabScores = iota
	tabLogins
)

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Switch},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores/logins"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "t"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for a user's score and login history.
type HistoryModel struct {
	store     *store.Store
	username  string
	tab       int
	scores    []store.ScoreEntry
	logins    []time.Time
	highScore int
	table     table.Model
	help      help.Model
	keys      HistoryKeyMap
	width     int
	height    int
	quitting  bool
}

// NewHistoryModel creates a history model and loads the user's records.
func NewHistoryModel(st *store.Store, username string, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		store:    st,
		username: username,
		keys:     DefaultHistoryKeyMap(),
		help:     h,
		width:    width,
		height:   height,
	}

	m.load()
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// load refreshes records from the store, best-effort.
func (m *HistoryModel) load() {
	if m.store == nil || m.username == "" {
		return
	}
	if scores, err := m.store.Scores(m.username); err == nil {
		m.scores = scores
	}
	if logins, err := m.store.Logins(m.username); err == nil {
		m.logins = logins
	}
	if hs, err := m.store.HighScore(m.username); err == nil {
		m.highScore = hs
	}
}

// createTable creates a table sized for the current tab and screen.
func (m *HistoryModel) createTable() table.Model {
	var columns []table.Column
	if m.tab == tabScores {
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 10},
			{Title: "Date", Width: 18},
		}
	} else {
		columns = []table.Column{
			{Title: "#", Width: 6},
			{Title: "Logged in", Width: 28},
		}
	}

	height := m.height - 8
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("22")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table for the active tab.
func (m *HistoryModel) updateTableRows() {
	var rows []table.Row
	if m.tab == tabScores {
		rows = make([]table.Row, len(m.scores))
		for i, s := range m.scores {
			rows[i] = table.Row{
				fmt.Sprintf("#%d", i+1),
				fmt.Sprintf("%d", s.Score),
				s.CreatedAt.Format("Jan 02 15:04"),
			}
		}
	} else {
		rows = make([]table.Row, len(m.logins))
		for i, at := range m.logins {
			rows[i] = table.Row{
				fmt.Sprintf("#%d", i+1),
				at.Format("Jan 02 2006 15:04:05"),
			}
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			return m, func() tea.Msg { return backToGameMsg{} }

		case key.Matches(msg, m.keys.Switch):
			m.tab = (m.tab + 1) % 2
			m.table = m.createTable()
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case backToGameMsg:
		// Standalone there is nothing to go back to.
		m.quitting = true
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	header := fmt.Sprintf("%s — best score %d", m.username, m.highScore)
	if m.username == "" {
		header = "guest — scores are not recorded"
	}
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	tabName := "SCORES"
	if m.tab == tabLogins {
		tabName = "LOGINS"
	}
	b.WriteString(hintStyle.Render(tabName))
	b.WriteString("\n")

	if (m.tab == tabScores && len(m.scores) == 0) ||
		(m.tab == tabLogins && len(m.logins) == 0) {
		empty := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(empty.Render("Nothing recorded yet."))
	} else {
		b.WriteString(m.table.View())
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// RunHistory runs the history screen standalone (the scores subcommand's
// --tui mode).
func RunHistory(st *store.Store, username string, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(st, username, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
