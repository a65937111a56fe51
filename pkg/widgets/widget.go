package widgets

import (
	"github.com/roffe/scadaplayer/pkg/colors"
	"github.com/roffe/scadaplayer/pkg/layout"
	"github.com/roffe/scadaplayer/pkg/logfile"
	"github.com/roffe/scadaplayer/pkg/surface"
)

// Widget is a drawable unit of the dashboard. Draw works in the widget's own
// coordinate space with the origin at its top-left corner; the caller is
// responsible for translating to the widget position beforehand.
type Widget interface {
	// Update refreshes display state from the current frame. index is the
	// position of the sample current was derived from.
	Update(meta *logfile.Metadata, records logfile.Records, index int, current logfile.Record)
	// Draw renders the widget into an area of the given size. It must not
	// mutate widget state.
	Draw(s surface.Surface, size layout.Size)
}

// Base is the placeholder widget. Embed it to inherit the no-op Update.
type Base struct{}

var _ Widget = Base{}

func (Base) Update(*logfile.Metadata, logfile.Records, int, logfile.Record) {}

// Draw fills the area with the debug colour.
func (Base) Draw(s surface.Surface, size layout.Size) {
	s.SetFillColor(colors.Debug)
	s.FillRect(0, 0, size.Width, size.Height)
}
