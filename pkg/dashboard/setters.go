package dashboard

import (
	"strconv"
	"time"

	"github.com/roffe/scadaplayer/pkg/logfile"
	"github.com/roffe/scadaplayer/pkg/widgets/boxinfo"
)

const notAvailable = "N/A"

var (
	metadataLabels = []string{"Farm", "Turbine", "Turbine model", "Nominal power"}
	scadaLabels    = []string{"Start", "End", "Records count", "Current record", "Timestamp"}
)

func airTemperature(r logfile.Record) float64 { return r.AirTemperature }
func pitchAngle(r logfile.Record) float64     { return r.PitchAngle }
func activePower(r logfile.Record) float64    { return r.ActivePower }
func windSpeed(r logfile.Record) float64      { return r.WindSpeed }

func metadataSetter() boxinfo.ValuesFunc {
	values := make([]string, len(metadataLabels))
	var buf []byte
	return func(meta *logfile.Metadata, _ logfile.Records, _ int, _ logfile.Record) []string {
		if meta == nil {
			meta = &logfile.Metadata{}
		}
		values[0] = stringOrNA(meta.Farm)
		values[1] = stringOrNA(meta.Turbine)
		values[2] = stringOrNA(meta.TurbineModel)
		values[3] = notAvailable
		if meta.NominalPower != nil {
			buf = strconv.AppendFloat(buf[:0], *meta.NominalPower, 'g', -1, 64)
			buf = append(buf, " kW"...)
			values[3] = string(buf)
		}
		return values
	}
}

func scadaSetter() boxinfo.ValuesFunc {
	values := make([]string, len(scadaLabels))
	return func(_ *logfile.Metadata, records logfile.Records, index int, current logfile.Record) []string {
		if len(records) == 0 {
			values[0], values[1] = notAvailable, notAvailable
		} else {
			values[0] = formatTimestamp(records.Start())
			values[1] = formatTimestamp(records.End())
		}
		values[2] = strconv.Itoa(len(records))
		values[3] = strconv.Itoa(index + 1)
		values[4] = formatTimestamp(current.Timestamp)
		return values
	}
}

func stringOrNA(s *string) string {
	if s == nil {
		return notAvailable
	}
	return *s
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
