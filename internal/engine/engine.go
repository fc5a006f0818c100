// Package engine implements the snake simulation: a discrete-time grid
// game advanced one tick at a time by an engine-owned timer.
//
// The engine is driven by six public commands (Init, Start, Pause, Resume,
// Stop, SetDirection) and notifies the host through a Listener (score
// changed, game over) and a Renderer (one frame per tick). All state is
// guarded by a single mutex; commands and tick callbacks never interleave
// mid-mutation, and a cancelled timer can never fire a stale tick.
package engine

import (
	"math/rand"
	"sync"
	"time"

	"github.com/arcadelabs/slither/internal/config"
)

// Cell is an integer grid coordinate. The origin is top-left; x grows
// right and y grows down.
type Cell struct {
	X, Y int
}

// Engine owns the authoritative game state and the tick timer.
type Engine struct {
	mu        sync.Mutex
	cfg       config.GameConfig
	rng       *rand.Rand
	listeners []Listener
	renderer  Renderer

	snake    []Cell // head at index 0
	dir      Direction
	pending  Direction // buffered input, applied at the next tick boundary
	food     Food
	score    int
	interval time.Duration
	phase    Phase

	timer    *time.Timer
	timerGen uint64 // bumped on cancel; stale callbacks check it and bail
}

// New creates an engine with the given configuration and RNG seed.
// The returned engine is in phase Idle with an empty board; call Init
// (or Start) to spawn the snake.
func New(cfg config.GameConfig, seed int64) *Engine {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Engine{
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(seed)),
		interval: time.Duration(cfg.Speed.InitialIntervalMs) * time.Millisecond,
		phase:    PhaseIdle,
	}
}

// AddListener registers a listener for score and game-over events.
func (e *Engine) AddListener(l Listener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, l)
}

// SetRenderer sets the frame consumer. Pass nil to run headless.
func (e *Engine) SetRenderer(r Renderer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.renderer = r
}

// Init resets everything to spawn defaults: a snake of the configured
// length centered on the grid heading right, score 0 (ScoreChanged(0) is
// fired), fresh food, phase Idle. One frame is rendered.
func (e *Engine) Init() {
	e.mu.Lock()
	e.stopTimerLocked()
	e.resetLocked()
	st := e.stateLocked()
	r := e.renderer
	e.mu.Unlock()

	e.fire([]event{{score: 0}})
	if r != nil {
		r.Draw(st)
	}
}

// SetDirection buffers d as the pending direction for the next tick.
// The exact reversal of the currently applied direction is silently
// ignored, as is any call while the game is not running. Multiple calls
// within one tick window overwrite each other; only the latest pending
// direction before the tick boundary is honored.
func (e *Engine) SetDirection(d Direction) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.phase != PhaseRunning {
		return
	}
	if d == e.dir.Opposite() {
		return
	}
	e.pending = d
}

// Start begins the game. From Idle it re-runs Init semantics and starts
// the tick timer; from Paused it resumes without resetting state. It is a
// no-op while Running or after the game has Ended.
func (e *Engine) Start() {
	e.mu.Lock()
	var events []event
	var st State
	var r Renderer

	switch e.phase {
	case PhaseRunning, PhaseEnded:
		e.mu.Unlock()
		return
	case PhaseIdle:
		e.resetLocked()
		events = append(events, event{score: 0})
		st = e.stateLocked()
		r = e.renderer
	}

	e.phase = PhaseRunning
	e.scheduleLocked()
	e.mu.Unlock()

	e.fire(events)
	if r != nil {
		r.Draw(st)
	}
}

// Pause suspends the game, cancelling the pending tick before returning.
// No tick effect is observable after Pause returns. Idempotent.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.phase != PhaseRunning {
		return
	}
	e.stopTimerLocked()
	e.phase = PhasePaused
}

// Resume restarts the timer at the current interval. No-op unless Paused.
func (e *Engine) Resume() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.phase != PhasePaused {
		return
	}
	e.phase = PhaseRunning
	e.scheduleLocked()
}

// Stop cancels the timer and forces a non-running phase. Used on logout
// and teardown; it does not fire GameOver.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopTimerLocked()
	if e.phase == PhaseRunning || e.phase == PhasePaused {
		e.phase = PhaseEnded
	}
}

// resetLocked restores spawn defaults. Caller must hold e.mu.
func (e *Engine) resetLocked() {
	cols, rows := e.cfg.Grid.Cols, e.cfg.Grid.Rows
	cx, cy := cols/2, rows/2

	n := e.cfg.Snake.StartLength
	e.snake = make([]Cell, n)
	for i := 0; i < n; i++ {
		e.snake[i] = Cell{X: cx - i, Y: cy}
	}
	e.dir = DirRight
	e.pending = DirRight
	e.score = 0
	e.interval = time.Duration(e.cfg.Speed.InitialIntervalMs) * time.Millisecond
	e.phase = PhaseIdle
	e.spawnFoodLocked()
}

// spawnFoodLocked places fresh food by rejection sampling. If every retry
// lands on the snake (grid nearly full), the last sampled cell is accepted
// anyway rather than failing.
func (e *Engine) spawnFoodLocked() {
	var c Cell
	for i := 0; i < e.cfg.Food.SpawnRetries; i++ {
		c = Cell{X: e.rng.Intn(e.cfg.Grid.Cols), Y: e.rng.Intn(e.cfg.Grid.Rows)}
		if !e.snakeAtLocked(c) {
			break
		}
	}
	e.food = Food{
		Cell:   c,
		Kind:   Kind(e.rng.Intn(kindCount)),
		Growth: 0,
	}
}

func (e *Engine) snakeAtLocked(c Cell) bool {
	for _, seg := range e.snake {
		if seg == c {
			return true
		}
	}
	return false
}

// scheduleLocked arms the tick timer at the current interval.
// Caller must hold e.mu.
func (e *Engine) scheduleLocked() {
	gen := e.timerGen
	e.timer = time.AfterFunc(e.interval, func() {
		e.tick(gen)
	})
}

// stopTimerLocked cancels the pending tick. Bumping the generation makes
// any already-fired callback a no-op, so no stale tick mutates state after
// a cancel. Caller must hold e.mu.
func (e *Engine) stopTimerLocked() {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.timerGen++
}

// tick is the timer callback: validate, advance, reschedule, notify.
func (e *Engine) tick(gen uint64) {
	e.mu.Lock()
	if gen != e.timerGen || e.phase != PhaseRunning {
		e.mu.Unlock()
		return
	}

	events, render := e.advanceLocked()
	if e.phase == PhaseRunning {
		e.scheduleLocked()
	}
	st := e.stateLocked()
	r := e.renderer
	e.mu.Unlock()

	e.fire(events)
	if render && r != nil {
		r.Draw(st)
	}
}

// advanceLocked performs one simulation step. Caller must hold e.mu.
// Returns the events to fire and whether a frame should be rendered.
func (e *Engine) advanceLocked() ([]event, bool) {
	// 1. The buffered input becomes the applied direction.
	e.dir = e.pending

	// 2. New head position.
	dx, dy := e.dir.Delta()
	head := e.snake[0]
	newHead := Cell{X: head.X + dx, Y: head.Y + dy}

	// 3. Boundary or self collision ends the game with the score frozen.
	// The tail cell counts: the new head is checked against every existing
	// cell before the tail pop.
	if newHead.X < 0 || newHead.X >= e.cfg.Grid.Cols ||
		newHead.Y < 0 || newHead.Y >= e.cfg.Grid.Rows ||
		e.snakeAtLocked(newHead) {
		e.phase = PhaseEnded
		e.stopTimerLocked()
		return []event{{gameOver: true, score: e.score}}, false
	}

	// 4. Push the new head.
	e.snake = append([]Cell{newHead}, e.snake...)

	var events []event
	if newHead == e.food.Cell {
		// 5. Eat: score up, fresh food, speed up from the next tick on.
		// The tail is kept, so the snake grows by one.
		e.score += e.cfg.Scoring.PerFood
		events = append(events, event{score: e.score})
		e.spawnFoodLocked()

		floor := time.Duration(e.cfg.Speed.MinIntervalMs) * time.Millisecond
		if e.interval > floor {
			e.interval -= time.Duration(e.cfg.Speed.StepMs) * time.Millisecond
			if e.interval < floor {
				e.interval = floor
			}
		}
	} else {
		// 6. No eat: pop the tail, length unchanged.
		e.snake = e.snake[:len(e.snake)-1]
	}

	// 7. Advance the spawn-in animation.
	if e.food.Growth < 1 {
		e.food.Growth += e.cfg.Food.GrowthStep
		if e.food.Growth > 1 {
			e.food.Growth = 1
		}
	}

	return events, true
}
