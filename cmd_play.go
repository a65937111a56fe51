package main

import (
	"fyne.io/fyne/v2/app"
	"github.com/roffe/scadaplayer/pkg/engine"
	"github.com/roffe/scadaplayer/pkg/theme"
	"github.com/roffe/scadaplayer/pkg/viewer"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play <scada.csv>",
	Short: "Replay telemetry in a window",
	Long: `Replay telemetry in a window. Playback loops until the window is
closed or Esc is pressed; F12 saves a screenshot.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().Int("fps", 0, "frame rate, 0 follows the display refresh")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	e, err := newEngine(cmd, args[0], cfg)
	if err != nil {
		return err
	}

	a := app.NewWithID(viewer.AppID)
	a.Settings().SetTheme(&theme.ScadaTheme{})
	v := viewer.New(a, "scadaplayer - "+args[0], cfg.Width, cfg.Height)

	var sched engine.Scheduler
	if cfg.FPS > 0 {
		sched = engine.NewTickerScheduler(cfg.FPS)
	}
	return v.Play(cmd.Context(), e, sched)
}
