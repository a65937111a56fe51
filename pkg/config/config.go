// Package config resolves playback settings from defaults, an optional
// config file, SCADAPLAYER_ environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix        = "SCADAPLAYER"
	FileName         = "scadaplayer"
	DefaultExportFPS = 30
)

// Keys
const (
	KeyWidth       = "width"
	KeyHeight      = "height"
	KeyFPS         = "fps"
	KeySpeed       = "speed"
	KeyInterpolate = "interpolate"
	KeyDebugGrid   = "debug_grid"
	KeyOut         = "out"
	KeyFrames      = "frames"
)

// Config is the resolved settings. FPS 0 lets the viewer follow the display
// refresh and makes export use DefaultExportFPS.
type Config struct {
	Width       int     `mapstructure:"width"`
	Height      int     `mapstructure:"height"`
	FPS         int     `mapstructure:"fps"`
	Speed       float64 `mapstructure:"speed"`
	Interpolate bool    `mapstructure:"interpolate"`
	DebugGrid   bool    `mapstructure:"debug_grid"`
	Out         string  `mapstructure:"out"`
	Frames      int     `mapstructure:"frames"`
}

// Loader wraps its own viper instance so several can coexist in tests.
type Loader struct {
	v *viper.Viper
}

func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return &Loader{v: v}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyWidth, 1920)
	v.SetDefault(KeyHeight, 1080)
	v.SetDefault(KeyFPS, 0)
	v.SetDefault(KeySpeed, 1.0)
	v.SetDefault(KeyInterpolate, true)
	v.SetDefault(KeyDebugGrid, false)
	v.SetDefault(KeyOut, "frames")
	v.SetDefault(KeyFrames, 0)
}

// BindFlag ties key to a command line flag. Flag values only win over the
// file and environment when the flag was set explicitly.
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("bind %s: no such flag", key)
	}
	if err := l.v.BindPFlag(key, flag); err != nil {
		return fmt.Errorf("bind %s: %w", key, err)
	}
	return nil
}

// Load reads filename, or scadaplayer.yaml from the working directory and
// the user config directory when filename is empty. A missing default file
// is not an error.
func (l *Loader) Load(filename string) (*Config, error) {
	if filename != "" {
		l.v.SetConfigFile(filename)
	} else {
		l.v.SetConfigName(FileName)
		l.v.SetConfigType("yaml")
		l.v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			l.v.AddConfigPath(filepath.Join(dir, FileName))
		}
	}
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if filename != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}
	return &cfg, nil
}

// ExportFPS is the frame rate used when rendering to files.
func (c *Config) ExportFPS() int {
	if c.FPS > 0 {
		return c.FPS
	}
	return DefaultExportFPS
}

// ConfigFile returns the file the settings were read from, if any.
func (l *Loader) ConfigFile() string {
	return l.v.ConfigFileUsed()
}

func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid output size %dx%d", c.Width, c.Height)
	}
	if c.Speed <= 0 {
		return fmt.Errorf("speed must be positive, got %g", c.Speed)
	}
	if c.FPS < 0 {
		return fmt.Errorf("fps must not be negative, got %d", c.FPS)
	}
	if c.Frames < 0 {
		return fmt.Errorf("frames must not be negative, got %d", c.Frames)
	}
	return nil
}
