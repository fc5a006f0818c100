package engine

// Phase is the engine lifecycle state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseEnded:
		return "ended"
	}
	return "unknown"
}

// State is an immutable copy of the simulation state, handed to the
// renderer each tick and used by determinism tests.
type State struct {
	Cols, Rows int
	Snake      []Cell // head first
	Dir        Direction
	Food       Food
	Score      int
	IntervalMs int
	Phase      Phase
}

// stateLocked builds a State copy. Caller must hold e.mu.
func (e *Engine) stateLocked() State {
	snake := make([]Cell, len(e.snake))
	copy(snake, e.snake)
	return State{
		Cols:       e.cfg.Grid.Cols,
		Rows:       e.cfg.Grid.Rows,
		Snake:      snake,
		Dir:        e.dir,
		Food:       e.food,
		Score:      e.score,
		IntervalMs: int(e.interval.Milliseconds()),
		Phase:      e.phase,
	}
}

// Snapshot returns a copy of the current simulation state.
func (e *Engine) Snapshot() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stateLocked()
}
