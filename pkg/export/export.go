// Package export renders playback offscreen into numbered PNG frames.
package export

import (
	"context"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/roffe/scadaplayer/pkg/capture"
	"github.com/roffe/scadaplayer/pkg/colors"
	"github.com/roffe/scadaplayer/pkg/engine"
	"github.com/roffe/scadaplayer/pkg/layout"
	"github.com/roffe/scadaplayer/pkg/surface"
	"github.com/roffe/scadaplayer/pkg/surface/raster"
	"golang.org/x/sync/errgroup"
)

// Exporter is an engine.Presenter that draws on a raster surface and hands
// a copy of every finished frame to a bounded pool of PNG encoders.
type Exporter struct {
	dir     string
	surface *raster.Surface
	size    layout.Size

	errg *errgroup.Group
	ctx  context.Context

	frames int
}

var _ engine.Presenter = (*Exporter)(nil)

// New prepares dir for a fresh export: it is created if needed and frames
// left by an earlier export are removed. workers <= 0 uses one encoder per CPU.
func New(ctx context.Context, dir string, width, height, workers int) (*Exporter, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", width, height)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}
	removed, err := Clean(dir)
	if err != nil {
		return nil, err
	}
	if removed > 0 {
		log.Printf("removed %d stale frames from %s", removed, dir)
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	errg, gctx := errgroup.WithContext(ctx)
	errg.SetLimit(workers)

	return &Exporter{
		dir:     dir,
		surface: raster.New(width, height),
		size:    layout.NewSize(float64(width), float64(height)),
		errg:    errg,
		ctx:     gctx,
	}, nil
}

// Clean removes previously exported frames from dir.
func Clean(dir string) (int, error) {
	matches, err := filepath.Glob(filepath.Join(dir, capture.FramePattern))
	if err != nil {
		return 0, err
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil {
			return 0, fmt.Errorf("failed to remove stale frame: %w", err)
		}
	}
	return len(matches), nil
}

func (e *Exporter) Dir() string { return e.dir }

func (e *Exporter) Begin() (surface.Surface, layout.Size) {
	e.surface.Reset()
	e.surface.Clear(colors.Background)
	return e.surface, e.size
}

// Present queues the frame for encoding. It blocks while every encoder is
// busy and fails once an earlier frame could not be written.
func (e *Exporter) Present(frame int, elapsed time.Duration) error {
	if e.ctx.Err() != nil {
		return context.Cause(e.ctx)
	}
	img := cloneRGBA(e.surface.Image())
	filename := capture.FrameName(e.dir, frame)
	e.errg.Go(func() error {
		return capture.WritePNG(filename, img)
	})
	e.frames++
	if e.frames%100 == 0 {
		log.Printf("exported %d frames (%s)", e.frames, elapsed)
	}
	return nil
}

// Wait blocks until every queued frame is written and returns the first
// encoder error.
func (e *Exporter) Wait() (int, error) {
	if err := e.errg.Wait(); err != nil {
		return e.frames, fmt.Errorf("failed to write frame: %w", err)
	}
	return e.frames, nil
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	dst := &image.RGBA{
		Pix:    make([]uint8, len(src.Pix)),
		Stride: src.Stride,
		Rect:   src.Rect,
	}
	copy(dst.Pix, src.Pix)
	return dst
}
