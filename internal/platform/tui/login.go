package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arcadelabs/slither/internal/store"
)

// login form modes
type loginMode int

const (
	modeLogin loginMode = iota
	modeRegister
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("46"))

	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	blurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// LoginModel is the username/password form shown before the game.
type LoginModel struct {
	store    *store.Store
	inputs   []textinput.Model
	focus    int
	mode     loginMode
	errMsg   string
	width    int
	height   int
	quitting bool
}

func NewLoginModel(st *store.Store, width, height int) LoginModel {
	user := textinput.New()
	user.Placeholder = "username"
	user.CharLimit = 32
	user.Focus()
	user.PromptStyle = focusedStyle
	user.TextStyle = focusedStyle

	pass := textinput.New()
	pass.Placeholder = "password"
	pass.CharLimit = 64
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '*'

	return LoginModel{
		store:  st,
		inputs: []textinput.Model{user, pass},
		width:  width,
		height: height,
	}
}

func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "ctrl+g":
			return m, func() tea.Msg { return loginDoneMsg{} }

		case "ctrl+r":
			if m.mode == modeLogin {
				m.mode = modeRegister
			} else {
				m.mode = modeLogin
			}
			m.errMsg = ""
			return m, nil

		case "tab", "shift+tab", "up", "down":
			if msg.String() == "shift+tab" || msg.String() == "up" {
				m.focus--
			} else {
				m.focus++
			}
			if m.focus < 0 {
				m.focus = len(m.inputs) - 1
			}
			if m.focus >= len(m.inputs) {
				m.focus = 0
			}
			return m.applyFocus()

		case "enter":
			if m.focus < len(m.inputs)-1 {
				m.focus++
				return m.applyFocus()
			}
			return m.submit()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// applyFocus moves textinput focus to the field under the cursor.
func (m LoginModel) applyFocus() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	for i := range m.inputs {
		if i == m.focus {
			cmds = append(cmds, m.inputs[i].Focus())
			m.inputs[i].PromptStyle = focusedStyle
			m.inputs[i].TextStyle = focusedStyle
		} else {
			m.inputs[i].Blur()
			m.inputs[i].PromptStyle = blurredStyle
			m.inputs[i].TextStyle = blurredStyle
		}
	}
	return m, tea.Batch(cmds...)
}

// submit validates the form against the store and reports the outcome.
func (m LoginModel) submit() (tea.Model, tea.Cmd) {
	username := strings.TrimSpace(m.inputs[0].Value())
	password := m.inputs[1].Value()

	if username == "" || password == "" {
		m.errMsg = "username and password are required"
		return m, nil
	}
	if m.store == nil {
		m.errMsg = "no profile store available; press ctrl+g to play as guest"
		return m, nil
	}

	var err error
	if m.mode == modeRegister {
		err = m.store.Register(username, password)
	} else {
		err = m.store.Authenticate(username, password)
	}

	switch {
	case err == nil:
		//nolint:errcheck // Login history is best-effort
		m.store.RecordLogin(username)
		return m, func() tea.Msg { return loginDoneMsg{username: username} }

	case errors.Is(err, store.ErrUserExists):
		m.errMsg = "that username is taken"
	case errors.Is(err, store.ErrBadCredentials):
		m.errMsg = "wrong username or password"
	default:
		m.errMsg = err.Error()
	}
	return m, nil
}

func (m LoginModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "SLITHER — sign in"
	if m.mode == modeRegister {
		title = "SLITHER — new player"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	for i := range m.inputs {
		b.WriteString(m.inputs[i].View())
		b.WriteRune('\n')
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errStyle.Render(m.errMsg))
		b.WriteRune('\n')
	}

	action := "log in"
	toggle := "register"
	if m.mode == modeRegister {
		action = "register"
		toggle = "log in"
	}
	b.WriteString("\n")
	b.WriteString(hintStyle.Render(fmt.Sprintf(
		"[enter] %s  [ctrl+r] switch to %s  [ctrl+g] play as guest  [esc] quit",
		action, toggle)))

	form := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 3).
		Render(b.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, form)
}
