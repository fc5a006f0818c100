package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcadelabs/slither/internal/config"
	"github.com/arcadelabs/slither/internal/core"
	"github.com/arcadelabs/slither/internal/engine"
	"github.com/arcadelabs/slither/internal/store"
)

// Messages exchanged between session stages.
type (
	// loginDoneMsg is emitted by the login form on success. An empty
	// username means guest play.
	loginDoneMsg struct{ username string }

	// showScoresMsg asks the session to switch to the history screen.
	showScoresMsg struct{}

	// backToGameMsg asks the session to return from the history screen.
	backToGameMsg struct{}
)

// session stages
type stage int

const (
	stageLogin stage = iota
	stageGame
	stageHistory
)

// SessionModel is the root Bubble Tea model for an interactive session:
// the login form, then the game, with the history screen reachable from
// the game. The same model serves local play and SSH sessions.
type SessionModel struct {
	store    *store.Store
	gameCfg  config.GameConfig
	config   core.RuntimeConfig
	stage    stage
	login    tea.Model
	game     tea.Model
	history  tea.Model
	eng      *engine.Engine
	username string
}

// NewSessionModel creates a session starting at the login form, or
// directly in guest play when no store is available.
func NewSessionModel(st *store.Store, gameCfg config.GameConfig, cfg core.RuntimeConfig) SessionModel {
	m := SessionModel{
		store:   st,
		gameCfg: gameCfg,
		config:  cfg,
	}

	if st == nil {
		m.startGame("")
	} else {
		m.stage = stageLogin
		m.login = NewLoginModel(st, cfg.ScreenW, cfg.ScreenH)
	}
	return m
}

// startGame builds a fresh engine and game model for the given user.
func (m *SessionModel) startGame(username string) {
	m.username = username
	m.eng = engine.New(m.gameCfg, m.config.Seed)
	m.game = NewGameModel(m.eng, m.store, username, m.config)
	m.stage = stageGame
}

func (m SessionModel) Init() tea.Cmd {
	return m.active().Init()
}

// active returns the model for the current stage.
func (m SessionModel) active() tea.Model {
	switch m.stage {
	case stageLogin:
		return m.login
	case stageHistory:
		return m.history
	default:
		return m.game
	}
}

func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginDoneMsg:
		m.startGame(msg.username)
		return m, m.game.Init()

	case showScoresMsg:
		m.history = NewHistoryModel(m.store, m.username, m.config.ScreenW, m.config.ScreenH)
		m.stage = stageHistory
		return m, nil

	case backToGameMsg:
		m.stage = stageGame
		return m, tickCmd()

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}

	var cmd tea.Cmd
	switch m.stage {
	case stageLogin:
		m.login, cmd = m.login.Update(msg)
	case stageHistory:
		m.history, cmd = m.history.Update(msg)
	default:
		m.game, cmd = m.game.Update(msg)
	}
	return m, cmd
}

func (m SessionModel) View() string {
	return m.active().View()
}

// Shutdown stops the engine timer, if a game was started.
func (m SessionModel) Shutdown() {
	if m.eng != nil {
		m.eng.Stop()
	}
}

// RunSession runs the full interactive session in the local terminal.
func RunSession(st *store.Store, gameCfg config.GameConfig, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewSessionModel(st, gameCfg, cfg),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if s, ok := final.(SessionModel); ok {
		s.Shutdown()
	}
	return err
}
