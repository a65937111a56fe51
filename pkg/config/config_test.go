package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/roffe/scadaplayer/pkg/config"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(filename, []byte(body), 0o644))
	return filename
}

func TestDefaults(t *testing.T) {
	cfg, err := config.NewLoader().Load("")
	require.NoError(t, err)
	assert.Equal(t, &config.Config{
		Width:       1920,
		Height:      1080,
		Speed:       1,
		Interpolate: true,
		Out:         "frames",
	}, cfg)
	assert.Equal(t, config.DefaultExportFPS, cfg.ExportFPS())
	cfg.FPS = 12
	assert.Equal(t, 12, cfg.ExportFPS())
}

func TestPrecedence(t *testing.T) {
	filename := writeFile(t, "custom.yaml", "width: 1280\nheight: 720\nspeed: 4\ndebug_grid: true\nout: /tmp/frames\n")
	t.Setenv("SCADAPLAYER_SPEED", "2.5")
	t.Setenv("SCADAPLAYER_INTERPOLATE", "false")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("width", 1920, "")
	fs.Int("height", 1080, "")
	require.NoError(t, fs.Parse([]string{"--width=640"}))

	l := config.NewLoader()
	require.NoError(t, l.BindFlag(config.KeyWidth, fs.Lookup("width")))
	require.NoError(t, l.BindFlag(config.KeyHeight, fs.Lookup("height")))
	cfg, err := l.Load(filename)
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Width, "explicit flag beats file")
	assert.Equal(t, 720, cfg.Height, "file beats unset flag default")
	assert.Equal(t, 2.5, cfg.Speed, "env beats file")
	assert.False(t, cfg.Interpolate)
	assert.True(t, cfg.DebugGrid)
	assert.Equal(t, "/tmp/frames", cfg.Out)
	assert.Equal(t, filename, l.ConfigFile())
}

func TestBindUnknownFlag(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	assert.Error(t, config.NewLoader().BindFlag(config.KeyFPS, fs.Lookup("fps")))
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		contains string
	}{
		{
			name:     "missing explicit file",
			filename: filepath.Join(t.TempDir(), "nope.yaml"),
			contains: "error reading config file",
		},
		{
			name:     "malformed yaml",
			filename: writeFile(t, "bad.yaml", "width: [1, 2\n"),
			contains: "error reading config file",
		},
		{
			name:     "zero speed",
			filename: writeFile(t, "speed.yaml", "speed: 0\n"),
			contains: "speed must be positive",
		},
		{
			name:     "bad size",
			filename: writeFile(t, "size.yaml", "width: -1\n"),
			contains: "invalid output size",
		},
		{
			name:     "negative frames",
			filename: writeFile(t, "frames.yaml", "frames: -3\n"),
			contains: "frames must not be negative",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.NewLoader().Load(tt.filename)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}
