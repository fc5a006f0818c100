// Package tui provides the Bubble Tea integration for the snake platform.
// It handles the terminal UI loop, input mapping, the login form, and the
// score history screen. The engine runs its own tick timer; the UI refreshes
// on its own cadence and pulls the latest frame from a FrameSink.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// refreshRate is the UI repaint rate, independent of the simulation tick.
const refreshRate = 30

// TickMsg is sent to trigger a UI refresh.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends refresh messages.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/refreshRate, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
