package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/platform/canvas"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the board in a desktop window at one pixel per board unit.

Controls:
  Arrows/WASD - Steer
  R           - Restart (after game over)
  Q/Esc       - Quit`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("snake", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := newGame(logger)
	if err != nil {
		return err
	}
	return canvas.Run(game, logger)
}
