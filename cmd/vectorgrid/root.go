package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/phanxgames/vectorgrid"
	"github.com/phanxgames/vectorgrid/canvas"
	"github.com/phanxgames/vectorgrid/internal/config"
	"github.com/phanxgames/vectorgrid/internal/observability"
)

// runCanvas opens the window. Tests replace it.
var runCanvas = canvas.Run

// newRootCmd builds the command tree. Log output goes to logOut.
func newRootCmd(logOut io.Writer) *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "vectorgrid",
		Short: "Draw vectors on a Cartesian grid and watch their sum.",
		Long: `vectorgrid opens a grid window. Press and drag on empty space to draw a
vector, drag an endpoint to move it, and press the X button (or Delete) to
remove the selected vector. The purple arrow from the origin is the resultant.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}

			logger := observability.NewLogger(cfg.Logger, zapcore.AddSync(logOut))
			defer observability.Sync(logger)
			logger.Info("Starting vectorgrid", zap.String("version", Version))

			rc, err := buildRunConfig(cfg, logger)
			if err != nil {
				logger.Error("invalid run configuration", zap.Error(err))
				return err
			}
			return runCanvas(rc)
		},
	}
	cmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	cmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./vectorgrid.yaml)")

	flags := cmd.Flags()
	flags.Int("width", 0, "canvas width in pixels")
	flags.Int("height", 0, "canvas height in pixels")
	flags.Float64("spacing", 0, "grid cell size in pixels")
	flags.String("script", "", "JSON test script to play back")
	flags.Bool("exit-on-done", false, "quit when the script finishes")
	flags.Bool("show-fps", false, "draw the FPS counter")
	flags.Bool("sticky-grab", false, "keep dragging the grasped node after the pointer leaves it")
	flags.String("log-level", "", "log level (debug, info, warn, error)")

	bind := map[string]string{
		"window.width":            "width",
		"window.height":           "height",
		"grid.spacing":            "spacing",
		"script.path":             "script",
		"script.exit_on_done":     "exit-on-done",
		"display.show_fps":        "show-fps",
		"interaction.sticky_grab": "sticky-grab",
		"logger.level":            "log-level",
	}
	for key, name := range bind {
		// Only flags the user actually set override file and env values.
		f := flags.Lookup(name)
		cobra.CheckErr(v.BindPFlag(key, f))
	}

	cmd.AddCommand(newVersionCmd())
	return cmd
}

// buildRunConfig translates the loaded configuration into canvas settings,
// loading the test script if one is configured.
func buildRunConfig(cfg *config.Config, logger *zap.Logger) (canvas.RunConfig, error) {
	rc := canvas.RunConfig{
		Title:            cfg.Window.Title,
		Width:            cfg.Window.Width,
		Height:           cfg.Window.Height,
		Spacing:          cfg.Grid.Spacing,
		ShowFPS:          cfg.Display.ShowFPS,
		StickyGrab:       cfg.Interaction.StickyGrab,
		DragDeadZone:     cfg.Interaction.DragDeadZone,
		ScreenshotDir:    cfg.Display.ScreenshotDir,
		ExitOnScriptDone: cfg.Script.ExitOnDone,
		Debug:            cfg.Display.Debug,
		Logger:           logger,
	}
	if x, y, ok := cfg.Origin(); ok {
		rc.Origin = &vectorgrid.Vec2{X: x, Y: y}
	}
	if cfg.Script.Path != "" {
		runner, err := canvas.LoadTestScriptFile(cfg.Script.Path)
		if err != nil {
			return canvas.RunConfig{}, fmt.Errorf("script %s: %w", cfg.Script.Path, err)
		}
		rc.Script = runner
	}
	return rc, nil
}
