// Package surface defines the immediate mode 2D drawing contract widgets
// render onto.
package surface

import "image/color"

type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

func (a TextAlign) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "unknown"
	}
}

// Font selects the monospace face used by FillText.
type Font struct {
	Size float64
	Bold bool
}

// Surface is a stateful drawing target. Coordinates are transformed by the
// current translation and scale; Save and Restore push and pop the whole
// drawing state. Text is drawn with y at the baseline.
type Surface interface {
	Save()
	Restore()
	Translate(x, y float64)
	Scale(sx, sy float64)

	SetFillColor(c color.Color)
	SetStrokeColor(c color.Color)
	SetLineWidth(w float64)
	SetFont(f Font)
	SetTextAlign(a TextAlign)

	FillRect(x, y, w, h float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	Stroke()
	Fill()

	// FillText draws text, clipped to maxWidth when maxWidth > 0.
	FillText(text string, x, y, maxWidth float64)
}

// Scoped saves the drawing state, runs fn and restores the state on every
// exit path, including a panic in fn.
func Scoped(s Surface, fn func()) {
	s.Save()
	defer s.Restore()
	fn()
}
