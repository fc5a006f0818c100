package tui

import "sync"

// Event is a game notification queued for the UI.
type Event struct {
	GameOver bool
	Score    int
}

// EventQueue implements engine.Listener by buffering notifications for
// the UI to drain on its refresh tick. Listener callbacks run on the
// engine's timer goroutine, so the queue is the handoff point.
type EventQueue struct {
	mu     sync.Mutex
	events []Event
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

func (q *EventQueue) ScoreChanged(score int) {
	q.mu.Lock()
	q.events = append(q.events, Event{Score: score})
	q.mu.Unlock()
}

func (q *EventQueue) GameOver(score int) {
	q.mu.Lock()
	q.events = append(q.events, Event{GameOver: true, Score: score})
	q.mu.Unlock()
}

// Drain returns all queued events in arrival order and empties the queue.
func (q *EventQueue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.events
	q.events = nil
	return out
}
