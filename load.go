package main

import (
	"fmt"
	"log"
	"time"

	"github.com/roffe/scadaplayer/pkg/config"
	"github.com/roffe/scadaplayer/pkg/dashboard"
	"github.com/roffe/scadaplayer/pkg/engine"
	"github.com/roffe/scadaplayer/pkg/logfile"
	"github.com/spf13/cobra"
)

// newEngine loads the telemetry named on the command line and wires it to a
// fresh dashboard.
func newEngine(cmd *cobra.Command, filename string, c *config.Config) (*engine.Engine, error) {
	flags := cmd.Flags()
	metaFile, _ := flags.GetString("metadata")
	startStr, _ := flags.GetString("start")
	endStr, _ := flags.GetString("end")

	start, err := parseBound(startStr)
	if err != nil {
		return nil, fmt.Errorf("--start: %w", err)
	}
	end, err := parseBound(endStr)
	if err != nil {
		return nil, fmt.Errorf("--end: %w", err)
	}

	var meta *logfile.Metadata
	if metaFile != "" {
		if meta, err = logfile.LoadMetadata(metaFile); err != nil {
			return nil, fmt.Errorf("failed to load metadata: %w", err)
		}
	}

	records, err := logfile.LoadCSV(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load telemetry: %w", err)
	}
	records = records.Window(start, end)
	if !start.IsZero() || !end.IsZero() {
		log.Printf("%d records in window [%s, %s)", records.Len(), startStr, endStr)
	}

	d, err := dashboard.New(dashboard.WithDebugGrid(c.DebugGrid))
	if err != nil {
		return nil, err
	}
	return engine.New(meta, records, d,
		engine.WithSpeed(c.Speed),
		engine.WithInterpolation(c.Interpolate),
	), nil
}

func parseBound(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, s)
}
