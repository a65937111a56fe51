// Package engine turns elapsed playback time into dashboard frames.
package engine

import (
	"context"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/roffe/scadaplayer/pkg/interpolate"
	"github.com/roffe/scadaplayer/pkg/layout"
	"github.com/roffe/scadaplayer/pkg/logfile"
	"github.com/roffe/scadaplayer/pkg/surface"
	"github.com/roffe/scadaplayer/pkg/widgets"
)

// Logical canvas size the dashboard is drawn on before scaling.
const (
	DefaultWidth  = 1920
	DefaultHeight = 1080
)

// Presenter hands out the surface for a frame and publishes it once drawn.
type Presenter interface {
	// Begin returns the surface to draw the next frame on and its physical size.
	Begin() (surface.Surface, layout.Size)
	Present(frame int, elapsed time.Duration) error
}

type Option func(*Engine)

// WithSpeed scales playback time. One record is shown per second of
// playback time; values <= 0 are ignored.
func WithSpeed(speed float64) Option {
	return func(e *Engine) {
		if speed > 0 && !math.IsInf(speed, 0) {
			e.speed = speed
		}
	}
}

// WithInterpolation toggles blending between consecutive records.
func WithInterpolation(enabled bool) Option {
	return func(e *Engine) {
		e.interpolate = enabled
	}
}

// WithCanvasSize sets the logical size the dashboard is drawn at.
func WithCanvasSize(size layout.Size) Option {
	return func(e *Engine) {
		if size.Width > 0 && size.Height > 0 {
			e.canvas = size
		}
	}
}

type Engine struct {
	meta      *logfile.Metadata
	records   logfile.Records
	dashboard widgets.Widget

	speed       float64
	interpolate bool
	canvas      layout.Size

	mu      sync.Mutex
	cancel  context.CancelFunc
	stopped bool
}

func New(meta *logfile.Metadata, records logfile.Records, dashboard widgets.Widget, opts ...Option) *Engine {
	e := &Engine{
		meta:        meta,
		records:     records,
		dashboard:   dashboard,
		speed:       1,
		interpolate: true,
		canvas:      layout.NewSize(DefaultWidth, DefaultHeight),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Records() logfile.Records { return e.records }
func (e *Engine) Canvas() layout.Size      { return e.canvas }

// Cursor splits playback time into a record index and the fraction of the
// way towards the following record. Playback loops over the records.
func (e *Engine) Cursor(elapsed time.Duration) (index int, frac float64) {
	n := len(e.records)
	if n == 0 {
		return 0, 0
	}
	seconds := max(elapsed, 0).Seconds() * e.speed
	whole := math.Floor(seconds)
	frac = seconds - whole
	index = int(math.Mod(whole, float64(n)))
	return index, frac
}

// Frame derives the record shown at elapsed. ok is false when there are no
// records.
func (e *Engine) Frame(elapsed time.Duration) (index int, current logfile.Record, ok bool) {
	n := len(e.records)
	switch {
	case n == 0:
		return 0, logfile.Record{}, false
	case n == 1:
		return 0, e.records[0], true
	}
	index, frac := e.Cursor(elapsed)
	if !e.interpolate {
		return index, e.records[index], true
	}
	next := (index + 1) % n
	return index, interpolate.Record(e.records[index], e.records[next], frac), true
}

// Render updates the dashboard for elapsed and draws it onto s, scaled from
// the logical canvas to physical.
func (e *Engine) Render(s surface.Surface, physical layout.Size, elapsed time.Duration) {
	if index, current, ok := e.Frame(elapsed); ok {
		e.dashboard.Update(e.meta, e.records, index, current)
	}
	surface.Scoped(s, func() {
		s.Scale(physical.Width/e.canvas.Width, physical.Height/e.canvas.Height)
		e.dashboard.Draw(s, e.canvas)
	})
}

// Run renders a frame every time sched fires until ctx is done, Stop is
// called, the scheduler runs out of frames or p fails.
func (e *Engine) Run(ctx context.Context, sched Scheduler, p Presenter) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	e.mu.Lock()
	e.cancel = cancel
	e.stopped = false
	e.mu.Unlock()

	// the scheduler may fire from its own goroutine
	var (
		mu      sync.Mutex
		frame   int
		tickErr error
		tick    FrameFunc
	)
	tick = func(elapsed time.Duration) {
		if ctx.Err() != nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		s, size := p.Begin()
		e.Render(s, size, elapsed)
		if err := p.Present(frame, elapsed); err != nil {
			tickErr = fmt.Errorf("present frame %d: %w", frame, err)
			cancel()
			return
		}
		frame++
		if !e.isStopped() {
			sched.RequestFrame(tick)
		}
	}

	log.Printf("playing %d records at %gx", len(e.records), e.speed)
	sched.RequestFrame(tick)
	err := sched.Run(ctx)

	mu.Lock()
	defer mu.Unlock()
	log.Printf("playback ended after %d frames", frame)
	if tickErr != nil {
		return tickErr
	}
	return err
}

// Stop ends a running playback. It is safe to call from a frame callback
// and from other goroutines.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopped = true
	if e.cancel != nil {
		e.cancel()
	}
}

func (e *Engine) isStopped() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stopped
}
