package render

import (
	"github.com/arcadelabs/slither/internal/core"
	"github.com/arcadelabs/slither/internal/engine"
)

// Sprite is an opaque drawable handle: one glyph plus its color.
type Sprite struct {
	Rune  rune
	Color core.Color
}

// Sprites is the asset table built once at startup. The renderer only
// needs "given a food kind, get a drawable" plus the four head
// orientations; how the glyphs were chosen is not its concern.
type Sprites struct {
	food map[engine.Kind]Sprite
	head map[engine.Direction]rune
}

// LoadSprites builds the drawable table for all food kinds and the head.
func LoadSprites() *Sprites {
	return &Sprites{
		food: map[engine.Kind]Sprite{
			engine.KindApple:  {Rune: '@', Color: core.ColorBrightRed},
			engine.KindMouse:  {Rune: 'm', Color: core.ColorGray},
			engine.KindFrog:   {Rune: 'w', Color: core.ColorBrightGreen},
			engine.KindChick:  {Rune: 'v', Color: core.ColorBrightYellow},
			engine.KindFish:   {Rune: 'x', Color: core.ColorBrightCyan},
			engine.KindRabbit: {Rune: 'b', Color: core.ColorBrightWhite},
		},
		head: map[engine.Direction]rune{
			engine.DirUp:    '▲',
			engine.DirRight: '▶',
			engine.DirDown:  '▼',
			engine.DirLeft:  '◀',
		},
	}
}

// Food returns the full-size drawable for a food kind.
func (s *Sprites) Food(k engine.Kind) Sprite {
	if sp, ok := s.food[k]; ok {
		return sp
	}
	return Sprite{Rune: '*', Color: core.ColorWhite}
}

// Head returns the head glyph rotated to the given travel direction.
func (s *Sprites) Head(d engine.Direction) rune {
	if r, ok := s.head[d]; ok {
		return r
	}
	return '▶'
}
