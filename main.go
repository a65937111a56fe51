package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/roffe/scadaplayer/pkg/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

// flag name per config key
var flagKeys = map[string]string{
	config.KeyWidth:       "width",
	config.KeyHeight:      "height",
	config.KeyFPS:         "fps",
	config.KeySpeed:       "speed",
	config.KeyInterpolate: "interpolate",
	config.KeyDebugGrid:   "debug-grid",
	config.KeyOut:         "out",
	config.KeyFrames:      "frames",
}

var rootCmd = &cobra.Command{
	Use:   "scadaplayer",
	Short: "scadaplayer - wind turbine SCADA replay",
	Long: `scadaplayer replays wind turbine SCADA telemetry on an animated
dashboard, either in a window or rendered to numbered PNG frames.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default ./scadaplayer.yaml)")
	pf.Int("width", 1920, "output width in pixels")
	pf.Int("height", 1080, "output height in pixels")
	pf.Float64("speed", 1, "playback speed in records per second")
	pf.Bool("interpolate", true, "blend between consecutive records")
	pf.Bool("debug-grid", false, "draw the layout grid")
	pf.String("metadata", "", "turbine metadata file (.json, .yaml)")
	pf.String("start", "", "skip records before this RFC 3339 timestamp")
	pf.String("end", "", "skip records from this RFC 3339 timestamp on")
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	l := config.NewLoader()
	for key, name := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := l.BindFlag(key, f); err != nil {
				return err
			}
		}
	}
	c, err := l.Load(cfgFile)
	if err != nil {
		return err
	}
	if file := l.ConfigFile(); file != "" {
		log.Printf("using config file %s", file)
	}
	cfg = c
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
