package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/binocular-breakout/internal/config"
	"github.com/vovakirdan/binocular-breakout/internal/games/breakout"
	"github.com/vovakirdan/binocular-breakout/internal/render"
)

var (
	flagFrames int
	flagOut    string
	flagMouseX float64
	flagPaused bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Simulate headlessly and save a PNG frame",
	Long: `Run the simulation for a number of frames without a terminal and
save the final frame as a PNG image at canvas resolution.

Examples:
  breakout render --out start.png --frames 0
  breakout render --frames 120 --out frame.png
  breakout render --frames 60 --mouse-x 120 --paused --out paused.png`,
	Args: cobra.NoArgs,
	Run:  runRender,
}

func init() {
	renderCmd.Flags().IntVar(&flagFrames, "frames", 60, "Number of updates to simulate")
	renderCmd.Flags().StringVarP(&flagOut, "out", "o", "frame.png", "Output PNG path")
	renderCmd.Flags().Float64Var(&flagMouseX, "mouse-x", -1, "Pointer x for the whole run (negative = canvas center)")
	renderCmd.Flags().BoolVar(&flagPaused, "paused", false, "Pause before capturing the frame")
}

func runRender(cmd *cobra.Command, args []string) {
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

	if err := renderFrame(cfg, flagFrames, flagMouseX, flagPaused, flagOut, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// simulate advances a fresh game by frames updates at the nominal frame
// time, with the pointer pinned at mouseX when it is not negative.
func simulate(cfg config.BreakoutConfig, frames int, mouseX float64) *breakout.Game {
	game := breakout.New(cfg)
	if mouseX >= 0 {
		game.SetInput(breakout.MousePatch(mouseX))
	}
	for i := 0; i < frames; i++ {
		game.Update(cfg.Physics.BaseFrameMillis)
	}
	return game
}

// renderFrame simulates and writes the resulting frame to path.
func renderFrame(cfg config.BreakoutConfig, frames int, mouseX float64, paused bool, path string, logger *log.Logger) error {
	game := simulate(cfg, frames, mouseX)
	if paused && !game.State().Paused {
		game.TogglePause()
	}

	raster := render.NewRaster(int(cfg.Canvas.Width), int(cfg.Canvas.Height))
	renderer, err := render.New(raster)
	if err != nil {
		return err
	}
	state := game.State()
	renderer.Render(state)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := raster.WritePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	logger.Info("frame rendered",
		"path", path,
		"frames", game.Frames(),
		"score", state.Score,
		"game_over", state.GameOver,
	)
	return nil
}
