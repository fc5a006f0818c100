package engine

// Kind identifies a food sprite variant.
type Kind int

const (
	KindApple Kind = iota
	KindMouse
	KindFrog
	KindChick
	KindFish
	KindRabbit

	kindCount = 6
)

func (k Kind) String() string {
	switch k {
	case KindApple:
		return "apple"
	case KindMouse:
		return "mouse"
	case KindFrog:
		return "frog"
	case KindChick:
		return "chick"
	case KindFish:
		return "fish"
	case KindRabbit:
		return "rabbit"
	}
	return "unknown"
}

// Food is the current collectible: a grid cell, a sprite kind, and the
// spawn-in animation scalar. Growth runs from 0 (just spawned) to 1
// (full size) in fixed per-tick increments.
type Food struct {
	Cell   Cell
	Kind   Kind
	Growth float64
}
