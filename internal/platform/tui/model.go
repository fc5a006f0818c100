package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arcadelabs/slither/internal/core"
	"github.com/arcadelabs/slither/internal/engine"
	"github.com/arcadelabs/slither/internal/store"
)

// statusHeight is the number of terminal rows reserved below the game frame.
const statusHeight = 1

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// GameModel is the Bubble Tea model for a running game. The engine owns
// the simulation timer; this model forwards input, drains engine events,
// and repaints from the frame sink on its refresh tick.
type GameModel struct {
	eng      *engine.Engine
	sink     *FrameSink
	queue    *EventQueue
	keys     *KeyMapper
	store    *store.Store
	username string
	config   core.RuntimeConfig

	score      int
	highScore  int
	over       bool
	scoreSaved bool
	quitting   bool
}

// NewGameModel wires an engine to the UI: the event queue is registered
// as the engine's listener and the frame sink as its renderer.
func NewGameModel(eng *engine.Engine, st *store.Store, username string, cfg core.RuntimeConfig) GameModel {
	m := GameModel{
		eng:      eng,
		sink:     NewFrameSink(cfg.ScreenW, cfg.ScreenH-statusHeight),
		queue:    NewEventQueue(),
		keys:     NewKeyMapper(),
		store:    st,
		username: username,
		config:   cfg,
	}

	eng.AddListener(m.queue)
	eng.SetRenderer(m.sink)

	if st != nil && username != "" {
		if hs, err := st.HighScore(username); err == nil {
			m.highScore = hs
		}
	}

	return m
}

// Init starts the game.
func (m GameModel) Init() tea.Cmd {
	m.eng.Init()
	m.eng.Start()
	return tickCmd()
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, dir := m.keys.MapKey(msg)

	switch action {
	case GameActionQuit:
		m.eng.Stop()
		m.quitting = true
		return m, tea.Quit

	case GameActionTurn:
		m.eng.SetDirection(dir)

	case GameActionPause:
		switch m.eng.Snapshot().Phase {
		case engine.PhaseRunning:
			m.eng.Pause()
		case engine.PhasePaused:
			m.eng.Resume()
		}

	case GameActionRestart:
		if m.over {
			m.over = false
			m.scoreSaved = false
			m.score = 0
			m.eng.Init()
			m.eng.Start()
		}

	case GameActionScores:
		m.eng.Pause()
		return m, func() tea.Msg { return showScoresMsg{} }
	}

	return m, nil
}

// handleResize processes window resize events. The playfield is redrawn
// from the current snapshot so the display does not wait a full tick.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.sink.Resize(msg.Width, msg.Height-statusHeight, m.eng.Snapshot())
	return m, nil
}

// handleTick drains engine events and schedules the next repaint.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	for _, ev := range m.queue.Drain() {
		m.score = ev.Score
		if m.score > m.highScore {
			m.highScore = m.score
		}

		if ev.GameOver {
			m.over = true
			// The engine does not render the death tick; draw the final
			// frame with the game-over overlay here.
			m.sink.Draw(m.eng.Snapshot())

			if !m.scoreSaved {
				m.saveScore(ev.Score)
				m.scoreSaved = true
			}
		}
	}

	if m.quitting {
		return m, nil
	}
	return m, tickCmd()
}

// saveScore persists the final score, best-effort. Guest games and
// zero-score games are not recorded, so the capped history holds only
// games where something was scored.
func (m *GameModel) saveScore(score int) {
	if m.store == nil || m.username == "" || score <= 0 {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.AddScore(m.username, score)
}

// View renders the latest frame plus a status line.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	who := m.username
	if who == "" {
		who = "guest"
	}
	status := fmt.Sprintf(" %s   best: %d   [wasd/arrows] move  [p] pause  [r] restart  [t] scores  [q] quit",
		who, m.highScore)

	return m.sink.Latest() + "\n" + statusStyle.Render(status)
}

// Run starts a standalone game program without the login flow, for guest
// play when no profile store is available.
func Run(eng *engine.Engine, st *store.Store, username string, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewGameModel(eng, st, username, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	eng.Stop()
	return err
}
