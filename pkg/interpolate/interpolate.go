package interpolate

import (
	"github.com/roffe/scadaplayer/pkg/logfile"
)

// Lerp linearly interpolates between a and b. t == 0 yields a exactly.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Record interpolates every numeric field of two samples. The timestamp is
// taken from a.
func Record(a, b logfile.Record, t float64) logfile.Record {
	return logfile.Record{
		Timestamp:        a.Timestamp,
		WindSpeed:        Lerp(a.WindSpeed, b.WindSpeed, t),
		WindDirection:    Lerp(a.WindDirection, b.WindDirection, t),
		AirTemperature:   Lerp(a.AirTemperature, b.AirTemperature, t),
		NacelleDirection: Lerp(a.NacelleDirection, b.NacelleDirection, t),
		ActivePower:      Lerp(a.ActivePower, b.ActivePower, t),
		PitchAngle:       Lerp(a.PitchAngle, b.PitchAngle, t),
	}
}
