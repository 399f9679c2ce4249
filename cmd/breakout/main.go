// breakout is a brick-breaking arcade game for the terminal.
//
// Usage:
//
//	breakout play                  - Play in the terminal
//	breakout render --out f.png    - Simulate headlessly and save a PNG frame
//	breakout trace --out t.csv     - Simulate headlessly and record every frame
//	breakout config                - Print the effective configuration
//
// Global flags:
//
//	--config <path> - Custom breakout YAML config
//	--fps <rate>    - Set tick rate (default: 60)
//	--log <path>    - Write logs to a file
//	--debug         - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/binocular-breakout/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagFPS     int
	flagLogPath string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - bounce the ball, clear the wall",
	Long: `Breakout is a brick-breaking arcade game. Steer the paddle with the
mouse or the arrow keys and clear all fifty bricks without dropping the ball.

Available commands:
  play     - Play in the terminal
  render   - Run the simulation headlessly and save a PNG frame
  trace    - Run the simulation headlessly and record a CSV trace
  config   - Print the effective configuration

Examples:
  breakout play
  breakout play --keyboard
  breakout render --frames 120 --out frame.png
  breakout trace --frames 600 --out trace.csv
  breakout config --config ./my-breakout.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom breakout config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the command logger. Logs go to the --log file when set,
// otherwise to fallback. The returned closer releases the file.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	w := fallback
	closer := func() error { return nil }

	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", flagLogPath, err)
		}
		w = f
		closer = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

// loadConfig resolves the breakout config from --config and the default
// search locations.
func loadConfig(logger *log.Logger) (config.BreakoutConfig, error) {
	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return config.BreakoutConfig{}, err
	}
	logger.Debug("config loaded",
		"path", flagConfig,
		"canvas", fmt.Sprintf("%gx%g", cfg.Canvas.Width, cfg.Canvas.Height),
		"time_scaled", cfg.Physics.TimeScaled,
		"mouse_precedence", cfg.Input.MousePrecedence,
	)
	return cfg, nil
}
