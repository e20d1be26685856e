package main

import (
	"fmt"
	"log/slog"
	"os"

	"galtetris/tetris"
	"galtetris/window"

	"github.com/charmbracelet/log"
)

func main() {
	logger := slog.New(log.NewWithOptions(os.Stderr, log.Options{
		Level:           log.InfoLevel,
		ReportTimestamp: true,
		Prefix:          "galtetris",
	}))

	game, err := tetris.NewGame(tetris.DefaultConfig(), &tetris.Options{Logger: logger})
	if err != nil {
		log.Fatal("unable to create game", "error", err)
	}
	if err := window.Run(window.New(logger, game)); err != nil {
		log.Fatal("unable to run window", "error", err)
	}
	if game.Over() {
		fmt.Println("Game Over! Score:", game.Score())
	}
}
