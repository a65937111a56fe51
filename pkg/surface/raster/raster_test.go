package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/roffe/scadaplayer/pkg/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = color.RGBA{R: 255, A: 255}
	black = color.RGBA{A: 255}
)

func TestFillRect(t *testing.T) {
	s := New(100, 50)
	s.Clear(black)
	s.SetFillColor(red)
	s.FillRect(10, 10, 20, 20)

	img := s.Image()
	assert.Equal(t, red, img.RGBAAt(15, 15))
	assert.Equal(t, black, img.RGBAAt(5, 5))
	assert.Equal(t, black, img.RGBAAt(31, 15))
}

func TestTransformStack(t *testing.T) {
	s := New(100, 100)
	s.Clear(black)
	s.SetFillColor(red)

	surface.Scoped(s, func() {
		s.Translate(50, 50)
		s.Scale(2, 2)
		s.FillRect(0, 0, 10, 10)
	})
	s.FillRect(0, 0, 5, 5)

	img := s.Image()
	assert.Equal(t, red, img.RGBAAt(65, 65))
	assert.Equal(t, black, img.RGBAAt(45, 45))
	assert.Equal(t, red, img.RGBAAt(2, 2))
	assert.Equal(t, black, img.RGBAAt(7, 7))

	// unmatched Restore is ignored
	s.Restore()
	s.FillRect(90, 0, 5, 5)
	assert.Equal(t, red, img.RGBAAt(92, 2))
}

func TestStroke(t *testing.T) {
	s := New(100, 50)
	s.Clear(black)
	s.SetStrokeColor(red)
	s.SetLineWidth(4)
	s.BeginPath()
	s.MoveTo(0, 25)
	s.LineTo(100, 25)
	s.Stroke()

	img := s.Image()
	assert.Greater(t, img.RGBAAt(50, 25).R, uint8(200))
	assert.Equal(t, black, img.RGBAAt(50, 5))
}

func TestFill(t *testing.T) {
	s := New(100, 100)
	s.Clear(black)
	s.SetFillColor(red)
	s.BeginPath()
	s.MoveTo(10, 10)
	s.LineTo(90, 10)
	s.LineTo(50, 90)
	s.ClosePath()
	s.Fill()

	img := s.Image()
	assert.Greater(t, img.RGBAAt(50, 30).R, uint8(200))
	assert.Equal(t, black, img.RGBAAt(5, 95))
}

func TestFillText(t *testing.T) {
	tests := []struct {
		name  string
		align surface.TextAlign
		x     float64
		inX   int // a column that must contain ink
	}{
		{name: "left", align: surface.AlignLeft, x: 10, inX: 15},
		{name: "center", align: surface.AlignCenter, x: 100, inX: 100},
		{name: "right", align: surface.AlignRight, x: 190, inX: 185},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(200, 40)
			s.Clear(black)
			s.SetFillColor(color.White)
			s.SetFont(surface.Font{Size: 20, Bold: true})
			s.SetTextAlign(tt.align)
			s.FillText("WWW", tt.x, 30, 0)
			assert.True(t, columnHasInk(s.Image(), tt.inX), "no ink at x=%d", tt.inX)
		})
	}
}

func TestFillTextClipped(t *testing.T) {
	s := New(200, 40)
	s.Clear(black)
	s.SetFillColor(color.White)
	s.SetFont(surface.Font{Size: 20})
	s.FillText("WWWWWWWWWWWWWWWW", 0, 30, 40)

	img := s.Image()
	assert.True(t, columnHasInk(img, 5))
	for x := 45; x < 200; x++ {
		require.False(t, columnHasInk(img, x), "ink past clip width at x=%d", x)
	}
}

func TestClip(t *testing.T) {
	loadFonts()
	s := New(10, 10)
	face := s.face(surface.Font{Size: 10})
	require.NotNil(t, face)
	assert.Equal(t, "", clip(face, "abc", 0))
	assert.Equal(t, "abc", clip(face, "abc", 1<<20))
}

func columnHasInk(img *image.RGBA, x int) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		if img.RGBAAt(x, y).R > 0 {
			return true
		}
	}
	return false
}
