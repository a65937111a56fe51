package logfile

import (
	"time"
)

// Column names of a SCADA telemetry table.
const (
	ColTimestamp        = "timestamp"
	ColWindSpeed        = "wind_speed"
	ColWindDirection    = "wind_direction"
	ColAirTemperature   = "air_temperature"
	ColNacelleDirection = "nacelle_direction"
	ColActivePower      = "active_power"
	ColPitchAngle       = "pitch_angle"
)

// Columns lists every column a telemetry table must carry.
var Columns = []string{
	ColTimestamp,
	ColWindSpeed,
	ColWindDirection,
	ColAirTemperature,
	ColNacelleDirection,
	ColActivePower,
	ColPitchAngle,
}

// Record is one telemetry sample.
type Record struct {
	Timestamp        time.Time
	WindSpeed        float64
	WindDirection    float64
	AirTemperature   float64
	NacelleDirection float64
	ActivePower      float64
	PitchAngle       float64
}

// Metadata describes the turbine the telemetry belongs to. Every field is optional.
type Metadata struct {
	Farm         *string  `json:"farm" yaml:"farm"`
	Turbine      *string  `json:"turbine" yaml:"turbine"`
	TurbineModel *string  `json:"turbine_model" yaml:"turbine_model"`
	NominalPower *float64 `json:"nominal_power" yaml:"nominal_power"`
}

// Records is a telemetry sequence ordered by timestamp.
type Records []Record

func (r Records) Len() int {
	return len(r)
}

func (r Records) Start() time.Time {
	if len(r) > 0 {
		return r[0].Timestamp
	}
	return time.Time{}
}

func (r Records) End() time.Time {
	if len(r) > 0 {
		return r[len(r)-1].Timestamp
	}
	return time.Time{}
}

// Length is the time spanned by the sequence.
func (r Records) Length() time.Duration {
	if len(r) > 0 {
		return r.End().Sub(r.Start())
	}
	return 0
}
