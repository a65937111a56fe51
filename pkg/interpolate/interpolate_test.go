package interpolate_test

import (
	"testing"
	"time"

	"github.com/roffe/scadaplayer/pkg/interpolate"
	"github.com/roffe/scadaplayer/pkg/logfile"
	"github.com/stretchr/testify/assert"
)

func TestLerp(t *testing.T) {
	tests := []struct {
		name    string
		a, b, t float64
		want    float64
	}{
		{name: "start", a: 10, b: 12, t: 0, want: 10},
		{name: "midpoint", a: 10, b: 12, t: 0.5, want: 11},
		{name: "end", a: 10, b: 12, t: 1, want: 12},
		{name: "descending", a: 40, b: -20, t: 0.25, want: 25},
		{name: "extrapolate", a: 0, b: 10, t: 1.5, want: 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, interpolate.Lerp(tt.a, tt.b, tt.t), 1e-12)
		})
	}
}

func TestRecord(t *testing.T) {
	ts := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	a := logfile.Record{
		Timestamp:        ts,
		WindSpeed:        10,
		WindDirection:    100,
		AirTemperature:   -5,
		NacelleDirection: 90,
		ActivePower:      1000,
		PitchAngle:       0,
	}
	b := logfile.Record{
		Timestamp:        ts.Add(time.Second),
		WindSpeed:        12,
		WindDirection:    110,
		AirTemperature:   5,
		NacelleDirection: 100,
		ActivePower:      2000,
		PitchAngle:       10,
	}

	got := interpolate.Record(a, b, 0.5)
	assert.Equal(t, ts, got.Timestamp)
	assert.Equal(t, 11.0, got.WindSpeed)
	assert.Equal(t, 105.0, got.WindDirection)
	assert.Equal(t, 0.0, got.AirTemperature)
	assert.Equal(t, 95.0, got.NacelleDirection)
	assert.Equal(t, 1500.0, got.ActivePower)
	assert.Equal(t, 5.0, got.PitchAngle)

	assert.Equal(t, a, interpolate.Record(a, b, 0))
}
