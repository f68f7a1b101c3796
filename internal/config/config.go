// Package config loads the playground configuration with viper: defaults,
// an optional YAML file and VECTORGRID_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g.
// VECTORGRID_GRID_SPACING=20.
const EnvPrefix = "VECTORGRID"

// Config is the top-level configuration.
type Config struct {
	Window      WindowConfig      `mapstructure:"window" yaml:"window"`
	Grid        GridConfig        `mapstructure:"grid" yaml:"grid"`
	Resultant   ResultantConfig   `mapstructure:"resultant" yaml:"resultant"`
	Interaction InteractionConfig `mapstructure:"interaction" yaml:"interaction"`
	Display     DisplayConfig     `mapstructure:"display" yaml:"display"`
	Script      ScriptConfig      `mapstructure:"script" yaml:"script"`
	Logger      LoggerConfig      `mapstructure:"logger" yaml:"logger"`
}

// WindowConfig sets the window title and canvas size.
type WindowConfig struct {
	Title  string `mapstructure:"title" yaml:"title"`
	Width  int    `mapstructure:"width" yaml:"width"`
	Height int    `mapstructure:"height" yaml:"height"`
}

// GridConfig sets the grid cell size in pixels.
type GridConfig struct {
	Spacing float64 `mapstructure:"spacing" yaml:"spacing"`
}

// ResultantConfig sets the resultant origin. Negative values mean the canvas
// center.
type ResultantConfig struct {
	OriginX float64 `mapstructure:"origin_x" yaml:"origin_x"`
	OriginY float64 `mapstructure:"origin_y" yaml:"origin_y"`
}

// InteractionConfig tunes pointer handling.
type InteractionConfig struct {
	StickyGrab   bool    `mapstructure:"sticky_grab" yaml:"sticky_grab"`
	DragDeadZone float64 `mapstructure:"drag_dead_zone" yaml:"drag_dead_zone"`
}

// DisplayConfig holds overlay and capture settings.
type DisplayConfig struct {
	ShowFPS       bool   `mapstructure:"show_fps" yaml:"show_fps"`
	ScreenshotDir string `mapstructure:"screenshot_dir" yaml:"screenshot_dir"`
	Debug         bool   `mapstructure:"debug" yaml:"debug"`
}

// ScriptConfig points at an optional JSON test script.
type ScriptConfig struct {
	Path       string `mapstructure:"path" yaml:"path"`
	ExitOnDone bool   `mapstructure:"exit_on_done" yaml:"exit_on_done"`
}

// LoggerConfig configures the zap logger.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// SetDefaults registers every default value on v.
func SetDefaults(v *viper.Viper) {
	// -- Window --
	v.SetDefault("window.title", "Grid Coordinate System")
	v.SetDefault("window.width", 880)
	v.SetDefault("window.height", 880)

	// -- Grid --
	v.SetDefault("grid.spacing", 40.0)

	// -- Resultant --
	v.SetDefault("resultant.origin_x", -1.0)
	v.SetDefault("resultant.origin_y", -1.0)

	// -- Interaction --
	v.SetDefault("interaction.sticky_grab", false)
	v.SetDefault("interaction.drag_dead_zone", 0.0)

	// -- Display --
	v.SetDefault("display.show_fps", false)
	v.SetDefault("display.screenshot_dir", "screenshots")
	v.SetDefault("display.debug", false)

	// -- Script --
	v.SetDefault("script.path", "")
	v.SetDefault("script.exit_on_done", false)

	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "vectorgrid")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)
}

// NewDefaultConfig returns the configuration with only defaults applied.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// Defaults are static; this cannot fail.
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// Load prepares v with defaults and environment overrides, reads cfgFile (or
// ./vectorgrid.yaml when empty and present) and unmarshals the result. A
// missing default file is not an error.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("vectorgrid")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Grid.Spacing <= 0 {
		return fmt.Errorf("grid.spacing must be positive, got %v", c.Grid.Spacing)
	}
	if c.Interaction.DragDeadZone < 0 {
		return fmt.Errorf("interaction.drag_dead_zone must not be negative, got %v", c.Interaction.DragDeadZone)
	}
	switch c.Logger.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logger.format must be \"console\" or \"json\", got %q", c.Logger.Format)
	}
	return nil
}

// Origin returns the configured resultant origin and whether one is set.
func (c *Config) Origin() (x, y float64, ok bool) {
	if c.Resultant.OriginX < 0 || c.Resultant.OriginY < 0 {
		return 0, 0, false
	}
	return c.Resultant.OriginX, c.Resultant.OriginY, true
}
