package tui

import (
	"sync"

	"github.com/arcadelabs/slither/internal/core"
	"github.com/arcadelabs/slither/internal/engine"
	"github.com/arcadelabs/slither/internal/render"
)

// FrameSink receives frames from the engine's tick goroutine and holds
// the most recent styled frame for the UI to display. The engine pushes,
// the Bubble Tea model pulls on its own refresh cadence.
type FrameSink struct {
	mu     sync.Mutex
	raster *render.Renderer
	screen *core.Screen
	latest string
}

func NewFrameSink(width, height int) *FrameSink {
	return &FrameSink{
		raster: render.New(),
		screen: core.NewScreen(core.Max(width, 1), core.Max(height, 1)),
	}
}

// Draw implements engine.Renderer. Called from the engine's timer
// goroutine after each simulated tick.
func (f *FrameSink) Draw(st engine.State) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.raster.Draw(st, f.screen)
	f.latest = RenderScreen(f.screen)
}

// Latest returns the most recently rendered frame, or "" if the engine
// has not drawn yet.
func (f *FrameSink) Latest() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.latest
}

// Resize changes the raster dimensions. The next frame is drawn at the
// new size; the current frame is redrawn from the given state so the
// display does not wait a full tick.
func (f *FrameSink) Resize(width, height int, st engine.State) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.screen.Resize(core.Max(width, 1), core.Max(height, 1))
	f.raster.Draw(st, f.screen)
	f.latest = RenderScreen(f.screen)
}
