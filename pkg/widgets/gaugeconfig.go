package widgets

import "github.com/roffe/scadaplayer/pkg/logfile"

// GaugeConfig describes a radial gauge. The zero values of ShortTickStep and
// LongTickStep select the defaults of 1 and 5, a negative step hides that
// class of ticks.
type GaugeConfig struct {
	Title         string
	Min, Max      float64
	Unit          string
	Precision     int // decimals in the readout
	ShortTickStep int
	LongTickStep  int

	// Source picks the displayed value from the current record. A nil
	// Source leaves the value untouched on update.
	Source func(logfile.Record) float64
}

const (
	DefaultShortTickStep = 1
	DefaultLongTickStep  = 5
)
