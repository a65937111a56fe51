package dashboard

import (
	"fmt"

	"github.com/roffe/scadaplayer/pkg/colors"
	"github.com/roffe/scadaplayer/pkg/layout"
	"github.com/roffe/scadaplayer/pkg/logfile"
	"github.com/roffe/scadaplayer/pkg/surface"
	"github.com/roffe/scadaplayer/pkg/widgets"
	"github.com/roffe/scadaplayer/pkg/widgets/boxinfo"
	"github.com/roffe/scadaplayer/pkg/widgets/compass"
	"github.com/roffe/scadaplayer/pkg/widgets/gauge"
	"github.com/roffe/scadaplayer/pkg/widgets/titled"
)

// Logical canvas the dashboard is laid out on.
const (
	Cols   = 12
	Rows   = 8
	Width  = 1920
	Height = 1080
)

var (
	AirTemperature = widgets.GaugeConfig{
		Title:     "Air temperature",
		Min:       -20,
		Max:       40,
		Unit:      "°C",
		Precision: 1,
		Source:    airTemperature,
	}
	PitchAngle = widgets.GaugeConfig{
		Title:     "Pitch angle",
		Min:       0,
		Max:       90,
		Unit:      "°",
		Precision: 1,
		Source:    pitchAngle,
	}
	ActivePower = widgets.GaugeConfig{
		Title:         "Active power",
		Min:           0,
		Max:           2000,
		Unit:          "kW",
		ShortTickStep: 100,
		LongTickStep:  500,
		Source:        activePower,
	}
	WindSpeed = widgets.GaugeConfig{
		Title:     "Wind speed",
		Min:       0,
		Max:       25,
		Unit:      "m.s⁻¹",
		Precision: 1,
		Source:    windSpeed,
	}
)

// Item is a titled widget pinned to a grid rectangle.
type Item struct {
	Widget *titled.Widget
	Rect   layout.Rect
}

type Config struct {
	DebugGrid bool
}

type Option func(*Config)

// WithDebugGrid overlays every cell boundary under the items.
func WithDebugGrid(enabled bool) Option {
	return func(c *Config) {
		c.DebugGrid = enabled
	}
}

type Dashboard struct {
	cfg   Config
	grid  layout.Grid
	items []Item
}

var _ widgets.Widget = (*Dashboard)(nil)

func New(opts ...Option) (*Dashboard, error) {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	d := &Dashboard{
		cfg:  cfg,
		grid: layout.NewGrid(Cols, Rows, layout.NewSize(Width, Height)),
	}

	d.add(0, 0, 2, 1, titled.New("Metadata", boxinfo.New(metadataLabels, metadataSetter())))
	d.add(0, 1, 2, 1, titled.New("Scada info", boxinfo.New(scadaLabels, scadaSetter())))
	for _, g := range []struct {
		col, row int
		cfg      widgets.GaugeConfig
	}{
		{0, 2, AirTemperature},
		{0, 4, PitchAngle},
		{2, 4, ActivePower},
		{4, 4, WindSpeed},
	} {
		w, err := gauge.New(g.cfg)
		if err != nil {
			return nil, fmt.Errorf("%s gauge: %w", g.cfg.Title, err)
		}
		d.add(g.col, g.row, 2, 2, titled.New(g.cfg.Title, w))
	}
	d.add(2, 0, 4, 4, titled.New("Compass", compass.New()))

	return d, nil
}

func (d *Dashboard) add(col, row, spanCols, spanRows int, w *titled.Widget) {
	d.items = append(d.items, Item{
		Widget: w,
		Rect:   d.grid.Rect(col, row, spanCols, spanRows),
	})
}

func (d *Dashboard) Items() []Item {
	return d.items
}

func (d *Dashboard) Grid() layout.Grid {
	return d.grid
}

func (d *Dashboard) Update(meta *logfile.Metadata, records logfile.Records, index int, current logfile.Record) {
	for _, item := range d.items {
		item.Widget.Update(meta, records, index, current)
	}
}

func (d *Dashboard) Draw(s surface.Surface, size layout.Size) {
	s.SetFillColor(colors.Background)
	s.FillRect(0, 0, size.Width, size.Height)

	if d.cfg.DebugGrid {
		d.drawGrid(s)
	}

	for _, item := range d.items {
		surface.Scoped(s, func() {
			s.Translate(item.Rect.Position.X, item.Rect.Position.Y)
			item.Widget.Draw(s, item.Rect.Size)
		})
	}
}

func (d *Dashboard) drawGrid(s surface.Surface) {
	cell := d.grid.Cell()
	s.SetLineWidth(1)
	s.SetStrokeColor(colors.Grid)
	s.BeginPath()
	for x := 0; x < d.grid.Cols; x++ {
		s.MoveTo(float64(x)*cell.Width, 0)
		s.LineTo(float64(x)*cell.Width, d.grid.Canvas.Height)
	}
	for y := 0; y < d.grid.Rows; y++ {
		s.MoveTo(0, float64(y)*cell.Height)
		s.LineTo(d.grid.Canvas.Width, float64(y)*cell.Height)
	}
	s.Stroke()
}
