package engine

import (
	"context"
	"sync"
	"time"
)

// FrameFunc renders the frame at elapsed playback time.
type FrameFunc func(elapsed time.Duration)

// Scheduler fires a requested FrameFunc once per frame. A callback must
// request the next frame itself to keep the animation going; Run returns
// once ctx is done or no frame is pending.
type Scheduler interface {
	RequestFrame(fn FrameFunc)
	Run(ctx context.Context) error
}

// Pending holds the callback registered for the next frame. Schedulers
// embed it.
type Pending struct {
	mu sync.Mutex
	fn FrameFunc
}

func (p *Pending) RequestFrame(fn FrameFunc) {
	p.mu.Lock()
	p.fn = fn
	p.mu.Unlock()
}

// Take removes and returns the pending callback, nil when there is none.
func (p *Pending) Take() FrameFunc {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn := p.fn
	p.fn = nil
	return fn
}

// TickerScheduler fires frames from a wall clock ticker.
type TickerScheduler struct {
	Pending
	interval time.Duration
	now      func() time.Time
}

var _ Scheduler = (*TickerScheduler)(nil)

func NewTickerScheduler(fps int) *TickerScheduler {
	if fps <= 0 {
		fps = 30
	}
	return &TickerScheduler{
		interval: time.Second / time.Duration(fps),
		now:      time.Now,
	}
}

func (t *TickerScheduler) Interval() time.Duration { return t.interval }

func (t *TickerScheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	start := t.now()

	for {
		fn := t.Take()
		if fn == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			fn(t.now().Sub(start))
		}
	}
}

// StepScheduler advances a virtual clock by a fixed step per frame, as fast
// as frames are rendered.
type StepScheduler struct {
	Pending
	step   time.Duration
	frames int
}

var _ Scheduler = (*StepScheduler)(nil)

// NewStepScheduler fires frames at 0, step, 2*step... up to frames frames.
// frames <= 0 runs until the context is done.
func NewStepScheduler(step time.Duration, frames int) *StepScheduler {
	return &StepScheduler{step: step, frames: frames}
}

func (s *StepScheduler) Run(ctx context.Context) error {
	for i := 0; s.frames <= 0 || i < s.frames; i++ {
		if ctx.Err() != nil {
			return nil
		}
		fn := s.Take()
		if fn == nil {
			return nil
		}
		fn(time.Duration(i) * s.step)
	}
	return nil
}
