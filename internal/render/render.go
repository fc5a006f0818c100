// Package render projects simulation state onto a screen buffer. The
// renderer is a stateless (state -> cells) projector: it owns no mutable
// state beyond the sprite table built at startup.
package render

import (
	"fmt"

	"github.com/arcadelabs/slither/internal/core"
	"github.com/arcadelabs/slither/internal/engine"
)

// Each grid cell spans two terminal columns so the board looks square.
const cellW = 2

// hudHeight is the status line plus its separator.
const hudHeight = 2

// Renderer draws engine state frames into a core.Screen.
type Renderer struct {
	sprites *Sprites
}

// New creates a renderer with the default sprite table.
func New() *Renderer {
	return &Renderer{sprites: LoadSprites()}
}

// Draw projects st onto dst. The destination is cleared first; the board
// is centered horizontally below the HUD.
func (r *Renderer) Draw(st engine.State, dst *core.Screen) {
	dst.Clear()

	r.drawHUD(st, dst)

	offX := (dst.Width() - st.Cols*cellW) / 2
	offY := hudHeight + 1

	r.drawGrid(st, dst, offX, offY)
	r.drawFood(st, dst, offX, offY)
	r.drawSnake(st, dst, offX, offY)

	switch st.Phase {
	case engine.PhasePaused:
		r.drawOverlay(dst, "Paused", "press p to continue")
	case engine.PhaseEnded:
		r.drawOverlay(dst, "Game Over", fmt.Sprintf("final score: %d", st.Score))
	}
}

func (r *Renderer) drawHUD(st engine.State, dst *core.Screen) {
	hud := fmt.Sprintf(" Score: %d   Length: %d   Tick: %dms", st.Score, len(st.Snake), st.IntervalMs)
	dst.DrawText(0, 0, hud, core.ColorBrightWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorDimGray)
}

// drawGrid draws the border box and a dim dot lattice. Purely cosmetic
// and order-independent; everything else is drawn on top.
func (r *Renderer) drawGrid(st engine.State, dst *core.Screen, offX, offY int) {
	dst.DrawBox(offX-1, offY-1, st.Cols*cellW+2, st.Rows+2, core.ColorGray)

	for y := 0; y < st.Rows; y++ {
		for x := 0; x < st.Cols; x++ {
			dst.Set(offX+x*cellW, offY+y, '·', core.ColorDimGray)
		}
	}
}

func (r *Renderer) drawFood(st engine.State, dst *core.Screen, offX, offY int) {
	glyph, color, visible := FoodGlyph(r.sprites, st.Food.Kind, st.Food.Growth)
	if !visible {
		return
	}
	dst.Set(offX+st.Food.Cell.X*cellW, offY+st.Food.Cell.Y, glyph, color)
}

func (r *Renderer) drawSnake(st engine.State, dst *core.Screen, offX, offY int) {
	n := len(st.Snake)
	for i := n - 1; i >= 0; i-- {
		seg := st.Snake[i]
		x := offX + seg.X*cellW
		y := offY + seg.Y

		if i == 0 {
			// Head sprite rotated to the applied travel direction,
			// fixed bright intensity.
			dst.Set(x, y, r.sprites.Head(st.Dir), core.ColorBrightWhite)
			dst.Set(x+1, y, ' ', core.ColorDefault)
			continue
		}

		shade := BodyShade(i, n)
		color := BodyColor(i, n)
		dst.Set(x, y, shade, color)
		dst.Set(x+1, y, shade, color)
	}
}

// bodyT maps a body index to the gradient parameter: 0 just behind the
// head, 1 at the tail. Linear and continuous in i so frames can be
// asserted exactly at any index and length.
func bodyT(i, length int) float64 {
	if length <= 1 {
		return 0
	}
	return float64(i) / float64(length-1)
}

// BodyShade returns the fill rune for body segment i of a snake of the
// given length. The shade decays from solid near the head to light near
// the tail, standing in for the source's glow-blur falloff.
func BodyShade(i, length int) rune {
	t := bodyT(i, length)
	switch {
	case t < 0.25:
		return '█'
	case t < 0.5:
		return '▓'
	case t < 0.75:
		return '▒'
	default:
		return '░'
	}
}

// BodyColor returns the gradient color for body segment i: brightest
// green just behind the head, darkest at the tail.
func BodyColor(i, length int) core.Color {
	return core.GreenRamp(bodyT(i, length))
}

// FoodGlyph returns the drawable for food of the given kind at the given
// spawn-in growth. Growth 0 is an invisible point; the glyph then scales
// up in fixed buckets and the color (glow) brightens toward the kind's
// full color at growth 1.
func FoodGlyph(s *Sprites, k engine.Kind, growth float64) (glyph rune, color core.Color, visible bool) {
	full := s.Food(k)
	switch {
	case growth <= 0:
		return 0, core.ColorDefault, false
	case growth < 1.0/3:
		return '·', core.ColorDimGray, true
	case growth < 2.0/3:
		return '•', core.ColorGray, true
	case growth < 1:
		return full.Rune, core.ColorGray, true
	default:
		return full.Rune, full.Color, true
	}
}

func (r *Renderer) drawOverlay(dst *core.Screen, line1, line2 string) {
	w := core.Max(len(line1), len(line2)) + 4
	h := 5
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2

	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			dst.Set(xx, yy, ' ', core.ColorDefault)
		}
	}
	dst.DrawBox(x, y, w, h, core.ColorBrightWhite)
	dst.DrawTextCentered(y+1, line1, core.ColorBrightWhite)
	dst.DrawTextCentered(y+3, line2, core.ColorGray)
}
