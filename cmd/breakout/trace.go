package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/binocular-breakout/internal/config"
	"github.com/vovakirdan/binocular-breakout/internal/games/breakout"
	"github.com/vovakirdan/binocular-breakout/internal/trace"
)

var (
	flagTraceFrames int
	flagTraceOut    string
	flagTraceMouseX float64
)

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Simulate headlessly and record a CSV trace",
	Long: `Run the simulation without a terminal and write one CSV row per
update: frame number, paddle x, ball position and velocity, score, bricks
left and the paused/game over flags. The run stops early when the round ends.

Examples:
  breakout trace --frames 600 --out trace.csv
  breakout trace --mouse-x 0 --out miss.csv`,
	Args: cobra.NoArgs,
	Run:  runTrace,
}

func init() {
	traceCmd.Flags().IntVar(&flagTraceFrames, "frames", 600, "Maximum number of updates to simulate")
	traceCmd.Flags().StringVarP(&flagTraceOut, "out", "o", "trace.csv", "Output CSV path")
	traceCmd.Flags().Float64Var(&flagTraceMouseX, "mouse-x", -1, "Pointer x for the whole run (negative = canvas center)")
}

func runTrace(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	cfg, err := loadConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := writeTrace(cfg, flagTraceFrames, flagTraceMouseX, flagTraceOut, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// writeTrace runs a fresh game and records it to path.
func writeTrace(cfg config.BreakoutConfig, frames int, mouseX float64, path string, logger *log.Logger) error {
	game := breakout.New(cfg)
	if mouseX >= 0 {
		game.SetInput(breakout.MousePatch(mouseX))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	n, err := trace.Run(game, frames, cfg.Physics.BaseFrameMillis, trace.NewRecorder(f))
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	state := game.State()
	logger.Info("trace written",
		"path", path,
		"frames", n,
		"score", state.Score,
		"won", state.Won(),
		"lost", state.Lost(),
	)
	return nil
}
