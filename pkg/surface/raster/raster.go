// Package raster implements surface.Surface on top of an in-memory RGBA
// image using rasterx for paths and the Go mono fonts for text.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"log"
	"math"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/roffe/scadaplayer/pkg/surface"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	fontDPI    = 72
	faceTTL    = 10 * time.Minute
	maxFaces   = 64
	miterLimit = 4
)

type faceKey struct {
	size float64
	bold bool
}

var (
	fontsOnce        sync.Once
	regular, bold    *opentype.Font
	errFontsUnusable error
)

func loadFonts() {
	fontsOnce.Do(func() {
		var err error
		if regular, err = opentype.Parse(gomono.TTF); err != nil {
			errFontsUnusable = err
			return
		}
		if bold, err = opentype.Parse(gomonobold.TTF); err != nil {
			errFontsUnusable = err
		}
	})
}

type point struct{ x, y float64 }

type state struct {
	m         rasterx.Matrix2D
	fill      color.Color
	stroke    color.Color
	lineWidth float64
	font      surface.Font
	align     surface.TextAlign
}

// Surface rasterizes drawing calls into an *image.RGBA.
type Surface struct {
	img *image.RGBA

	filler  *rasterx.Filler
	stroker *rasterx.Stroker

	state state
	stack []state

	path   [][]point
	closed []bool

	faces *ttlcache.Cache[faceKey, font.Face]
}

var _ surface.Surface = (*Surface)(nil)

// New allocates a width x height surface cleared to transparent black.
func New(width, height int) *Surface {
	loadFonts()
	width, height = max(width, 1), max(height, 1)
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	s := &Surface{
		img:     img,
		filler:  rasterx.NewFiller(width, height, scanner),
		stroker: rasterx.NewStroker(width, height, scanner),
		faces: ttlcache.New[faceKey, font.Face](
			ttlcache.WithTTL[faceKey, font.Face](faceTTL),
			ttlcache.WithCapacity[faceKey, font.Face](maxFaces),
		),
	}
	s.Reset()
	return s
}

// Reset drops the state stack and returns to the identity transform.
func (s *Surface) Reset() {
	s.stack = s.stack[:0]
	s.path, s.closed = nil, nil
	s.state = state{
		m:         rasterx.Identity,
		fill:      color.Black,
		stroke:    color.Black,
		lineWidth: 1,
		font:      surface.Font{Size: 10},
	}
}

// Clear fills the whole image with c, ignoring the transform.
func (s *Surface) Clear(c color.Color) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Image returns the backing image. It is reused between frames.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

func (s *Surface) Bounds() image.Rectangle {
	return s.img.Bounds()
}

func (s *Surface) Save() {
	s.stack = append(s.stack, s.state)
}

func (s *Surface) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.state = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

func (s *Surface) Translate(x, y float64) {
	s.state.m = s.state.m.Translate(x, y)
}

func (s *Surface) Scale(sx, sy float64) {
	s.state.m = s.state.m.Scale(sx, sy)
}

func (s *Surface) SetFillColor(c color.Color)       { s.state.fill = c }
func (s *Surface) SetStrokeColor(c color.Color)     { s.state.stroke = c }
func (s *Surface) SetLineWidth(w float64)           { s.state.lineWidth = w }
func (s *Surface) SetFont(f surface.Font)           { s.state.font = f }
func (s *Surface) SetTextAlign(a surface.TextAlign) { s.state.align = a }

// scale is the mean axis scale of the current transform, used for line
// widths and font sizes.
func (s *Surface) scale() float64 {
	m := s.state.m
	return (math.Hypot(m.A, m.B) + math.Hypot(m.C, m.D)) / 2
}

func (s *Surface) FillRect(x, y, w, h float64) {
	m := s.state.m
	if m.B == 0 && m.C == 0 {
		x0, y0 := m.Transform(x, y)
		x1, y1 := m.Transform(x+w, y+h)
		r := image.Rect(
			int(math.Round(x0)), int(math.Round(y0)),
			int(math.Round(x1)), int(math.Round(y1)),
		).Canon()
		draw.Draw(s.img, r, image.NewUniform(s.state.fill), image.Point{}, draw.Over)
		return
	}
	s.filler.Clear()
	s.filler.SetColor(s.state.fill)
	s.filler.Start(s.toFixed(x, y))
	s.filler.Line(s.toFixed(x+w, y))
	s.filler.Line(s.toFixed(x+w, y+h))
	s.filler.Line(s.toFixed(x, y+h))
	s.filler.Stop(true)
	s.filler.Draw()
}

func (s *Surface) toFixed(x, y float64) fixed.Point26_6 {
	return rasterx.ToFixedP(s.state.m.Transform(x, y))
}

func (s *Surface) BeginPath() {
	s.path = s.path[:0]
	s.closed = s.closed[:0]
}

func (s *Surface) MoveTo(x, y float64) {
	dx, dy := s.state.m.Transform(x, y)
	s.path = append(s.path, []point{{dx, dy}})
	s.closed = append(s.closed, false)
}

func (s *Surface) LineTo(x, y float64) {
	if len(s.path) == 0 {
		s.MoveTo(x, y)
		return
	}
	dx, dy := s.state.m.Transform(x, y)
	last := len(s.path) - 1
	s.path[last] = append(s.path[last], point{dx, dy})
}

func (s *Surface) ClosePath() {
	if len(s.closed) > 0 {
		s.closed[len(s.closed)-1] = true
	}
}

func (s *Surface) Stroke() {
	width := s.state.lineWidth * s.scale()
	if width <= 0 {
		return
	}
	s.stroker.Clear()
	s.stroker.SetStroke(fixed.Int26_6(width*64), miterLimit<<6, rasterx.ButtCap, nil, rasterx.FlatGap, rasterx.MiterClip)
	s.stroker.SetColor(s.state.stroke)
	if s.trace(s.stroker) {
		s.stroker.Draw()
	}
}

func (s *Surface) Fill() {
	s.filler.Clear()
	s.filler.SetColor(s.state.fill)
	if s.trace(s.filler) {
		s.filler.Draw()
	}
}

// trace feeds the current path to a and reports whether anything drawable
// was added.
func (s *Surface) trace(a rasterx.Adder) bool {
	drawn := false
	for i, sub := range s.path {
		if len(sub) < 2 {
			continue
		}
		a.Start(rasterx.ToFixedP(sub[0].x, sub[0].y))
		for _, p := range sub[1:] {
			a.Line(rasterx.ToFixedP(p.x, p.y))
		}
		a.Stop(s.closed[i])
		drawn = true
	}
	return drawn
}

func (s *Surface) face(f surface.Font) font.Face {
	key := faceKey{size: math.Round(f.Size*s.scale()*4) / 4, bold: f.Bold}
	if key.size <= 0 {
		return nil
	}
	if item := s.faces.Get(key); item != nil {
		return item.Value()
	}
	if errFontsUnusable != nil {
		return nil
	}
	src := regular
	if f.Bold {
		src = bold
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    key.size,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("font face %.2f: %v", key.size, err)
		return nil
	}
	s.faces.Set(key, face, ttlcache.DefaultTTL)
	return face
}

func (s *Surface) FillText(text string, x, y, maxWidth float64) {
	face := s.face(s.state.font)
	if face == nil || text == "" {
		return
	}
	if maxWidth > 0 {
		text = clip(face, text, fixed.Int26_6(maxWidth*s.scale()*64))
	}
	dx, dy := s.state.m.Transform(x, y)
	advance := font.MeasureString(face, text)
	switch s.state.align {
	case surface.AlignCenter:
		dx -= float64(advance) / 128
	case surface.AlignRight:
		dx -= float64(advance) / 64
	}
	d := font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(s.state.fill),
		Face: face,
		Dot:  rasterx.ToFixedP(dx, dy),
	}
	d.DrawString(text)
}

// clip drops trailing runes until text fits in limit.
func clip(face font.Face, text string, limit fixed.Int26_6) string {
	if font.MeasureString(face, text) <= limit {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		if font.MeasureString(face, string(runes)) <= limit {
			break
		}
	}
	return string(runes)
}
