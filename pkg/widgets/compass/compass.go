package compass

import (
	"image/color"
	"math"
	"strconv"

	"github.com/roffe/scadaplayer/pkg/colors"
	"github.com/roffe/scadaplayer/pkg/common"
	"github.com/roffe/scadaplayer/pkg/layout"
	"github.com/roffe/scadaplayer/pkg/logfile"
	"github.com/roffe/scadaplayer/pkg/surface"
	"github.com/roffe/scadaplayer/pkg/widgets"
)

const (
	ticks        = 360
	longTickStep = 5
	// half the angular width of a needle triangle, radians
	needleSpread = 0.1

	labelSize = 16
	valueSize = 20
)

var tickSin, tickCos [ticks]float64

func init() {
	for i := 0; i < ticks; i++ {
		tickSin[i], tickCos[i] = math.Sincos(float64(i) * common.PiDiv180)
	}
}

// Compass shows the wind direction on the outer ring and the nacelle
// direction on the inner ring.
type Compass struct {
	wind, nacelle float64
}

var _ widgets.Widget = (*Compass)(nil)

func New() *Compass {
	return &Compass{}
}

func (c *Compass) WindDirection() float64    { return c.wind }
func (c *Compass) NacelleDirection() float64 { return c.nacelle }

func (c *Compass) SetDirections(wind, nacelle float64) {
	c.wind, c.nacelle = wind, nacelle
}

func (c *Compass) Update(_ *logfile.Metadata, _ logfile.Records, _ int, current logfile.Record) {
	c.wind = current.WindDirection
	c.nacelle = current.NacelleDirection
}

// Angle converts a bearing in degrees, clockwise from up, to a surface angle.
func Angle(degrees float64) float64 {
	return degrees*common.PiDiv180 - common.PiHalf
}

func (c *Compass) Draw(s surface.Surface, size layout.Size) {
	center := size.Center()
	radius := min(center.X, center.Y)
	outer := common.OuterTickRadius * radius

	s.SetLineWidth(1)
	s.SetStrokeColor(colors.Foreground)
	s.BeginPath()
	for i := 0; i < ticks; i++ {
		inner := common.ShortTickRadius * radius
		if i%longTickStep == 0 {
			inner = common.LongTickRadius * radius
		}
		s.MoveTo(center.X+inner*tickCos[i], center.Y+inner*tickSin[i])
		s.LineTo(center.X+outer*tickCos[i], center.Y+outer*tickSin[i])
	}
	s.Stroke()

	needle(s, center, Angle(c.wind), common.WindTipRadius*radius, common.WindBaseRadius*radius, colors.Wind)
	needle(s, center, Angle(c.nacelle), common.NacelleTipRadius*radius, common.NacelleBaseRadius*radius, colors.Nacelle)

	s.SetTextAlign(surface.AlignCenter)
	s.SetFont(surface.Font{Size: labelSize})
	s.SetFillColor(colors.Nacelle)
	s.FillText("Nacelle direction:", center.X, center.Y-50, size.Width)
	s.SetFillColor(colors.Wind)
	s.FillText("Wind direction:", center.X, center.Y+50, size.Width)

	s.SetFont(surface.Font{Size: valueSize, Bold: true})
	s.SetFillColor(colors.Nacelle)
	s.FillText(FormatBearing(c.nacelle), center.X, center.Y-20, size.Width)
	s.SetFillColor(colors.Wind)
	s.FillText(FormatBearing(c.wind), center.X, center.Y+80, size.Width)
}

// needle fills a triangle with its tip at tip on the bearing and its base
// spread around the bearing at base.
func needle(s surface.Surface, center layout.Point, angle, tip, base float64, c color.Color) {
	sin, cos := math.Sincos(angle)
	sinL, cosL := math.Sincos(angle - needleSpread)
	sinR, cosR := math.Sincos(angle + needleSpread)
	s.SetFillColor(c)
	s.BeginPath()
	s.MoveTo(center.X+tip*cos, center.Y+tip*sin)
	s.LineTo(center.X+base*cosL, center.Y+base*sinL)
	s.LineTo(center.X+base*cosR, center.Y+base*sinR)
	s.ClosePath()
	s.Fill()
}

// FormatBearing renders degrees with one decimal and a degree sign.
func FormatBearing(degrees float64) string {
	return string(strconv.AppendFloat(nil, degrees, 'f', 1, 64)) + "°"
}
