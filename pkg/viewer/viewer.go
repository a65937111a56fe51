// Package viewer shows playback in a desktop window.
package viewer

import (
	"context"
	"image"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/roffe/scadaplayer/pkg/capture"
	"github.com/roffe/scadaplayer/pkg/colors"
	"github.com/roffe/scadaplayer/pkg/engine"
	"github.com/roffe/scadaplayer/pkg/layout"
	"github.com/roffe/scadaplayer/pkg/surface"
	"github.com/roffe/scadaplayer/pkg/surface/raster"
)

const AppID = "com.roffe.scadaplayer"

// Frames is an engine.Presenter that alternates between two raster
// surfaces so the frame on screen is never the one being drawn.
type Frames struct {
	mu      sync.Mutex
	buffers [2]*raster.Surface
	next    int
	size    layout.Size
	show    func(image.Image)
}

var _ engine.Presenter = (*Frames)(nil)

func NewFrames(width, height int, show func(image.Image)) *Frames {
	return &Frames{
		buffers: [2]*raster.Surface{raster.New(width, height), raster.New(width, height)},
		size:    layout.NewSize(float64(width), float64(height)),
		show:    show,
	}
}

func (f *Frames) Begin() (surface.Surface, layout.Size) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.buffers[f.next]
	s.Reset()
	s.Clear(colors.Background)
	return s, f.size
}

func (f *Frames) Present(frame int, elapsed time.Duration) error {
	f.mu.Lock()
	img := f.buffers[f.next].Image()
	f.next = 1 - f.next
	f.mu.Unlock()
	f.show(img)
	return nil
}

// Viewer is a window that displays frames rendered by an engine.
type Viewer struct {
	app    fyne.App
	win    fyne.Window
	image  *canvas.Image
	frames *Frames
}

func New(a fyne.App, title string, width, height int) *Viewer {
	v := &Viewer{
		app:   a,
		win:   a.NewWindow(title),
		image: canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, width, height))),
	}
	v.image.FillMode = canvas.ImageFillContain
	v.image.ScaleMode = canvas.ImageScaleSmooth
	v.frames = NewFrames(width, height, v.show)

	v.win.SetContent(v.image)
	v.win.Resize(fyne.NewSize(float32(width)/2, float32(height)/2))
	v.win.SetPadded(false)
	return v
}

func (v *Viewer) show(img image.Image) {
	v.image.Image = img
	v.image.Refresh()
}

// Play runs e in the window until the window is closed, ctx is done or e
// stops. A nil sched follows the display refresh. It must be called from
// the main goroutine.
func (v *Viewer) Play(ctx context.Context, e *engine.Engine, sched engine.Scheduler) error {
	if sched == nil {
		sched = NewAnimationScheduler()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	v.win.SetOnClosed(cancel)
	v.win.Canvas().SetOnTypedKey(v.keyHandler(e))

	errCh := make(chan error, 1)
	go func() {
		err := e.Run(ctx, sched, v.frames)
		if err != nil {
			log.Printf("playback: %v", err)
		}
		errCh <- err
		v.app.Quit()
	}()

	v.win.ShowAndRun()
	cancel()
	return <-errCh
}

func (v *Viewer) keyHandler(e *engine.Engine) func(ev *fyne.KeyEvent) {
	return func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyEscape, fyne.KeyQ:
			e.Stop()
		case fyne.KeyF12:
			filename, err := capture.Screenshot(v.win.Canvas(), ".")
			if err != nil {
				log.Printf("screenshot: %v", err)
				return
			}
			log.Printf("screenshot saved to %s", filename)
		}
	}
}
