// Package titled wraps a widget with a title band and a border.
package titled

import (
	"strings"

	"github.com/roffe/scadaplayer/pkg/colors"
	"github.com/roffe/scadaplayer/pkg/layout"
	"github.com/roffe/scadaplayer/pkg/logfile"
	"github.com/roffe/scadaplayer/pkg/surface"
	"github.com/roffe/scadaplayer/pkg/widgets"
)

const (
	// BandHeight is the height of the title band above the inner widget.
	BandHeight = 20

	titleSize     = 12
	titleBaseline = 15
)

type Widget struct {
	title string
	inner widgets.Widget
}

var _ widgets.Widget = (*Widget)(nil)

// New wraps inner. A nil inner is drawn as a placeholder.
func New(title string, inner widgets.Widget) *Widget {
	if inner == nil {
		inner = widgets.Base{}
	}
	return &Widget{title: title, inner: inner}
}

func (w *Widget) Title() string         { return w.title }
func (w *Widget) Inner() widgets.Widget { return w.inner }

func (w *Widget) Update(meta *logfile.Metadata, records logfile.Records, index int, current logfile.Record) {
	w.inner.Update(meta, records, index, current)
}

func (w *Widget) Draw(s surface.Surface, size layout.Size) {
	s.SetFillColor(colors.Background)
	s.FillRect(0, 0, size.Width, size.Height)

	s.SetFont(surface.Font{Size: titleSize, Bold: true})
	s.SetTextAlign(surface.AlignCenter)
	s.SetFillColor(colors.Foreground)
	s.FillText(strings.ToUpper(w.title), size.Width/2, titleBaseline, size.Width)

	s.SetLineWidth(1)
	s.SetStrokeColor(colors.Foreground)
	s.BeginPath()
	s.MoveTo(0, 0)
	s.LineTo(size.Width, 0)
	s.LineTo(size.Width, size.Height)
	s.LineTo(0, size.Height)
	s.ClosePath()
	s.MoveTo(0, BandHeight)
	s.LineTo(size.Width, BandHeight)
	s.Stroke()

	inner := layout.NewSize(size.Width, max(size.Height-BandHeight, 0))
	surface.Scoped(s, func() {
		s.Translate(0, BandHeight)
		w.inner.Draw(s, inner)
	})
}
