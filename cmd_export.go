package main

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/roffe/scadaplayer/pkg/config"
	"github.com/roffe/scadaplayer/pkg/engine"
	"github.com/roffe/scadaplayer/pkg/export"
	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <scada.csv>",
	Short: "Render playback to numbered PNG frames",
	Long: `Render playback offscreen to scadaplayer_000000000.png,
scadaplayer_000000001.png, ... in the output directory. Frames from an
earlier export are removed first. By default one pass over the records is
rendered.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	f := exportCmd.Flags()
	f.String("out", "frames", "output directory")
	f.Int("fps", config.DefaultExportFPS, "frames per second of playback time")
	f.Int("frames", 0, "number of frames, 0 renders every record once")
	f.Int("workers", 0, "concurrent PNG encoders, 0 uses one per CPU")
	f.Bool("open", false, "open the output directory when done")
	rootCmd.AddCommand(exportCmd)
}

// frameCount is the number of frames one pass over n records takes.
func frameCount(n int, speed float64, fps int) int {
	if n == 0 {
		return 1
	}
	return max(int(math.Ceil(float64(n)/speed*float64(fps))), 1)
}

func runExport(cmd *cobra.Command, args []string) error {
	e, err := newEngine(cmd, args[0], cfg)
	if err != nil {
		return err
	}
	workers, _ := cmd.Flags().GetInt("workers")
	openDir, _ := cmd.Flags().GetBool("open")

	fps := cfg.ExportFPS()
	frames := cfg.Frames
	if frames == 0 {
		frames = frameCount(e.Records().Len(), cfg.Speed, fps)
	}

	ex, err := export.New(cmd.Context(), cfg.Out, cfg.Width, cfg.Height, workers)
	if err != nil {
		return err
	}
	start := time.Now()
	runErr := e.Run(cmd.Context(), engine.NewStepScheduler(time.Second/time.Duration(fps), frames), ex)
	n, waitErr := ex.Wait()
	if runErr != nil {
		return runErr
	}
	if waitErr != nil {
		return waitErr
	}
	log.Printf("wrote %d frames to %s in %s", n, ex.Dir(), time.Since(start).Round(time.Millisecond))

	if openDir {
		if err := open.Run(ex.Dir()); err != nil {
			return fmt.Errorf("failed to open %s: %w", ex.Dir(), err)
		}
	}
	return nil
}
