package viewer

import (
	"context"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"github.com/roffe/scadaplayer/pkg/engine"
)

// ticker is the part of *fyne.Animation the scheduler drives.
type ticker interface {
	Start()
	Stop()
}

func fyneTicker(tick func()) ticker {
	an := fyne.NewAnimation(time.Second, func(float32) {
		tick()
	})
	an.Curve = fyne.AnimationLinear
	an.RepeatCount = fyne.AnimationRepeatForever
	return an
}

// AnimationScheduler fires frames from the fyne animation loop, which ticks
// in step with the display refresh.
type AnimationScheduler struct {
	engine.Pending

	newTicker func(tick func()) ticker
	now       func() time.Time

	mu    sync.Mutex
	start time.Time
	done  chan struct{}
	once  sync.Once
}

var _ engine.Scheduler = (*AnimationScheduler)(nil)

func NewAnimationScheduler() *AnimationScheduler {
	return &AnimationScheduler{
		newTicker: fyneTicker,
		now:       time.Now,
		done:      make(chan struct{}),
	}
}

func (s *AnimationScheduler) Run(ctx context.Context) error {
	s.mu.Lock()
	s.start = s.now()
	s.mu.Unlock()

	an := s.newTicker(s.tick)
	an.Start()
	defer an.Stop()

	select {
	case <-ctx.Done():
	case <-s.done:
	}
	return nil
}

func (s *AnimationScheduler) tick() {
	fn := s.Take()
	if fn == nil {
		s.once.Do(func() { close(s.done) })
		return
	}
	s.mu.Lock()
	elapsed := s.now().Sub(s.start)
	s.mu.Unlock()
	fn(elapsed)
}
