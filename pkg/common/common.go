package common

import "math"

const (
	Pi15     = math.Pi * 1.5 // 270° needle sweep
	PiHalf   = math.Pi / 2
	PiDiv180 = math.Pi / 180
	TwoPi    = math.Pi * 2

	OneHalf = 1.0 / 2.0 // 0.5

	// Radii as fractions of a dial radius.
	NeedleRadius      = 0.60
	LongTickRadius    = 0.70
	ShortTickRadius   = 0.75
	OuterTickRadius   = 0.80
	NacelleTipRadius  = 0.68
	NacelleBaseRadius = 0.60
	WindTipRadius     = 0.82
	WindBaseRadius    = 0.90
)

// DialPhase is the start angle of a dial sweep, placing the gap at the bottom.
func DialPhase(sweep float64) float64 {
	return (TwoPi-sweep)*OneHalf + PiHalf
}
