package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/binocular-breakout/internal/core"
	"github.com/vovakirdan/binocular-breakout/internal/games/breakout"
	"github.com/vovakirdan/binocular-breakout/internal/platform/tui"
)

var (
	flagKeyboard   bool
	flagTimeScaled bool
	flagNoMenu     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a round of breakout in the terminal.

Controls:
  Mouse        - Paddle follows the pointer
  Left/H/A     - Move paddle left
  Right/L/D    - Move paddle right
  Space/P      - Pause / resume
  R            - Start a fresh round
  Tab          - Toggle the stats panel
  ?            - Toggle full help
  Q/Ctrl+C     - Quit

By default the pointer position always wins over the arrow keys, so the
paddle stays under the mouse. Use --keyboard to let the keys move the
paddle until the mouse moves again.

Examples:
  breakout play
  breakout play --keyboard --no-menu
  breakout play --fps 30 --time-scaled
  breakout play --log breakout.log --debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagKeyboard, "keyboard", false, "Let arrow keys move the paddle between mouse moves")
	playCmd.Flags().BoolVar(&flagTimeScaled, "time-scaled", false, "Scale movement by elapsed time instead of per tick")
	playCmd.Flags().BoolVar(&flagNoMenu, "no-menu", false, "Skip the start menu")
}

func runPlay(cmd *cobra.Command, args []string) {
	// The TUI owns the terminal; without --log nothing is printed.
	logger, closeLog, err := newLogger(io.Discard)
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

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	selection := tui.StartSelection{
		Keyboard:   flagKeyboard || !cfg.Input.MousePrecedence,
		TimeScaled: flagTimeScaled || cfg.Physics.TimeScaled,
	}
	if !flagNoMenu {
		chosen, menuErr := tui.RunStartMenu(selection, runtime)
		if menuErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", menuErr)
			os.Exit(1)
		}
		// User quit from the menu
		if chosen == nil {
			return
		}
		selection = *chosen
	}
	cfg.Input.MousePrecedence = !selection.Keyboard
	cfg.Physics.TimeScaled = selection.TimeScaled
	logger.Debug("settings chosen", "keyboard", selection.Keyboard, "time_scaled", selection.TimeScaled)

	if runErr := tui.Run(breakout.New(cfg), runtime, logger); runErr != nil {
		logger.Error("game stopped", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
