package gauge

import (
	"errors"
	"math"
	"strconv"

	"github.com/roffe/scadaplayer/pkg/colors"
	"github.com/roffe/scadaplayer/pkg/common"
	"github.com/roffe/scadaplayer/pkg/layout"
	"github.com/roffe/scadaplayer/pkg/logfile"
	"github.com/roffe/scadaplayer/pkg/surface"
	"github.com/roffe/scadaplayer/pkg/widgets"
)

var ErrDegenerateRange = errors.New("gauge range is empty (max == min)")

const (
	needleWidth = 3
	readoutSize = 12
	// distance of the readout baseline from the bottom edge
	readoutOffset = 15
)

type tick struct {
	sin, cos float64
	long     bool
}

// Gauge is a 270 degree dial with a line needle and a numeric readout.
type Gauge struct {
	cfg widgets.GaugeConfig

	value float64
	text  string

	phase, sweep float64
	ticks        []tick
}

var _ widgets.Widget = (*Gauge)(nil)

func New(cfg widgets.GaugeConfig) (*Gauge, error) {
	if cfg.Max == cfg.Min {
		return nil, ErrDegenerateRange
	}
	if cfg.ShortTickStep == 0 {
		cfg.ShortTickStep = widgets.DefaultShortTickStep
	}
	if cfg.LongTickStep == 0 {
		cfg.LongTickStep = widgets.DefaultLongTickStep
	}
	cfg.Precision = max(cfg.Precision, 0)

	g := &Gauge{
		cfg:   cfg,
		sweep: common.Pi15,
		phase: common.DialPhase(common.Pi15),
	}

	// tick angles depend on the range only, precompute them
	span := cfg.Max - cfg.Min
	for i := 0; float64(i) <= span; i++ {
		var long bool
		switch {
		case cfg.LongTickStep > 0 && i%cfg.LongTickStep == 0:
			long = true
		case cfg.ShortTickStep > 0 && i%cfg.ShortTickStep == 0:
		default:
			continue
		}
		sin, cos := math.Sincos(g.phase + float64(i)/span*g.sweep)
		g.ticks = append(g.ticks, tick{sin: sin, cos: cos, long: long})
	}

	g.SetValue(cfg.Min)
	return g, nil
}

func (g *Gauge) Config() widgets.GaugeConfig { return g.cfg }

func (g *Gauge) Value() float64 { return g.value }

// Readout is the text shown under the dial.
func (g *Gauge) Readout() string { return g.text }

func (g *Gauge) SetValue(value float64) {
	g.value = value
	buf := strconv.AppendFloat(make([]byte, 0, 16), value, 'f', g.cfg.Precision, 64)
	g.text = string(append(buf, g.cfg.Unit...))
}

// Phase is the needle angle at Min, Sweep the angular travel up to Max.
func (g *Gauge) Phase() float64 { return g.phase }
func (g *Gauge) Sweep() float64 { return g.sweep }

// NeedleAngle maps the current value onto the dial. Values outside
// [Min, Max] extrapolate past the end stops.
func (g *Gauge) NeedleAngle() float64 {
	return g.phase + (g.value-g.cfg.Min)/(g.cfg.Max-g.cfg.Min)*g.sweep
}

func (g *Gauge) Update(_ *logfile.Metadata, _ logfile.Records, _ int, current logfile.Record) {
	if g.cfg.Source != nil {
		g.SetValue(g.cfg.Source(current))
	}
}

func (g *Gauge) Draw(s surface.Surface, size layout.Size) {
	center := size.Center()
	radius := min(center.X, center.Y)
	outer := common.OuterTickRadius * radius

	s.SetLineWidth(1)
	s.SetStrokeColor(colors.Foreground)
	s.BeginPath()
	for _, t := range g.ticks {
		inner := common.ShortTickRadius * radius
		if t.long {
			inner = common.LongTickRadius * radius
		}
		s.MoveTo(center.X+inner*t.cos, center.Y+inner*t.sin)
		s.LineTo(center.X+outer*t.cos, center.Y+outer*t.sin)
	}
	s.Stroke()

	sin, cos := math.Sincos(g.NeedleAngle())
	needle := common.NeedleRadius * radius
	s.SetLineWidth(needleWidth)
	s.SetStrokeColor(colors.Needle)
	s.BeginPath()
	s.MoveTo(center.X, center.Y)
	s.LineTo(center.X+needle*cos, center.Y+needle*sin)
	s.Stroke()

	s.SetFont(surface.Font{Size: readoutSize, Bold: true})
	s.SetTextAlign(surface.AlignCenter)
	s.SetFillColor(colors.Foreground)
	s.FillText(g.text, center.X, size.Height-readoutOffset, size.Width)
}
