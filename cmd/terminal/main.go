package main

import (
	"fmt"
	"log/slog"
	"os"

	"galtetris/client"
	"galtetris/tetris"

	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

const (
	hideCursor = "\033[2J\033[?25l" // also clear screen
	showCursor = "\033[?25h"
)

func main() {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		log.Fatal("stdin is not a terminal")
	}
	// anything below error would draw over the board.
	logger := slog.New(log.NewWithOptions(os.Stderr, log.Options{
		Level:  log.ErrorLevel,
		Prefix: "galtetris",
	}))

	game, err := tetris.NewGame(tetris.DefaultConfig(), &tetris.Options{Logger: logger})
	if err != nil {
		log.Fatal("unable to create game", "error", err)
	}
	c, err := client.New(logger, game, nil)
	if err != nil {
		log.Fatal("unable to start client", "error", err)
	}

	fmt.Print(hideCursor)
	c.Start()
	c.Close()
	fmt.Print(showCursor)

	if game.Over() {
		fmt.Printf("\r\nGame Over! Score: %d\r\n", game.Score())
	}
}
