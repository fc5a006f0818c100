package engine

// Listener receives engine notifications. Callbacks are invoked outside
// the engine's internal lock, in command or tick order, so implementations
// may call back into the engine.
type Listener interface {
	// ScoreChanged fires on Init (with 0) and on every food eaten.
	ScoreChanged(score int)

	// GameOver fires exactly once per game, when a tick detects a
	// terminal collision. Boundary and self collisions are not
	// distinguished.
	GameOver(score int)
}

// Renderer consumes one frame per tick. The engine calls Draw after every
// state change that produces a visible frame (Init and each advance).
type Renderer interface {
	Draw(st State)
}

// event is a queued notification collected while the engine lock is held.
type event struct {
	gameOver bool
	score    int
}

// fire delivers queued events to all listeners, preserving order.
func (e *Engine) fire(events []event) {
	for _, ev := range events {
		for _, l := range e.listeners {
			if ev.gameOver {
				l.GameOver(ev.score)
			} else {
				l.ScoreChanged(ev.score)
			}
		}
	}
}
