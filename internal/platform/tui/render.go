package tui

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/arcadelabs/slither/internal/core"
)

var (
	styleMu    sync.Mutex
	styleCache = map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
	}
)

// styleFor returns a lipgloss style for an ANSI 256-color code, caching
// styles so repeated frames reuse them.
func styleFor(c core.Color) lipgloss.Style {
	styleMu.Lock()
	defer styleMu.Unlock()
	if s, ok := styleCache[c]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(int(c))))
	styleCache[c] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape
// sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if startColor == core.ColorDefault {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(styleFor(startColor).Render(run.String()))
			}
		}
	}
	return sb.String()
}
