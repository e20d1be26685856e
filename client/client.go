package client

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"galtetris/tetris"

	"github.com/eiannone/keyboard"
)

// defaultFrame is how often the screen is redrawn and gravity advanced.
const defaultFrame = 50 * time.Millisecond

type tetrisGame interface {
	Action(tetris.Action)
	Advance(time.Duration)
	Read() *tetris.Snapshot
	Over() bool
}

type renderer interface {
	game(*tetris.Snapshot)
	reset()
}

type Client struct {
	tetris tetrisGame
	render renderer
	logger *slog.Logger
	kbCh   <-chan keyboard.KeyEvent
	ticker tetris.Ticker
	frame  time.Duration
}

type Options struct {
	// Writer is where the game is drawn. Defaults to os.Stdout.
	Writer io.Writer
	// Frame is the time between redraws. Defaults to 50ms.
	Frame time.Duration
}

// New opens the keyboard and prepares the renderer for g.
// Close has to be called to give the terminal back.
func New(l *slog.Logger, g *tetris.Game, o *Options) (*Client, error) {
	if o == nil {
		o = &Options{}
	}
	var w io.Writer = os.Stdout
	if o.Writer != nil {
		w = o.Writer
	}
	frame := defaultFrame
	if o.Frame > 0 {
		frame = o.Frame
	}
	r, err := newRender(l, w, g.Config())
	if err != nil {
		return nil, fmt.Errorf("failed to load renderer: %w", err)
	}
	kb, err := keyboard.GetKeys(20)
	if err != nil {
		return nil, fmt.Errorf("failed to open keyboard: %w", err)
	}
	return &Client{
		tetris: g,
		render: r,
		logger: l,
		kbCh:   kb,
		ticker: tetris.NewTicker(frame),
		frame:  frame,
	}, nil
}

// Start draws the game and blocks until it's over or the player quits.
func (c *Client) Start() {
	c.render.reset()
	c.render.game(c.tetris.Read())
	var wg sync.WaitGroup
	wg.Add(1)
	go c.listen(&wg)
	wg.Wait()
}

// Close stops the frame ticker and releases the keyboard.
func (c *Client) Close() {
	c.ticker.Stop()
	if err := keyboard.Close(); err != nil {
		c.logger.Error("unable to close keyboard", slog.String("error", err.Error()))
	}
}

// listen is the only goroutine touching the game: key presses and frame
// ticks are handled one at a time.
func (c *Client) listen(wg *sync.WaitGroup) {
	defer wg.Done()
	c.ticker.Reset(c.frame)
	for {
		select {
		case event, ok := <-c.kbCh:
			if !ok {
				c.logger.Error("keyboard events channel closed unexpectedly")
				return
			}
			if event.Err != nil {
				c.logger.Error("keysEvents error", slog.String("error", event.Err.Error()))
				return
			}
			if isQuit(event) {
				c.logger.Debug("player quit")
				return
			}
			a, ok := actionFor(event)
			if !ok {
				continue
			}
			c.tetris.Action(a)
		case <-c.ticker.C():
			c.tetris.Advance(c.frame)
		}
		c.render.game(c.tetris.Read())
		if c.tetris.Over() {
			return
		}
	}
}

func isQuit(event keyboard.KeyEvent) bool {
	return event.Key == keyboard.KeyCtrlC || event.Key == keyboard.KeyEsc || event.Rune == 'q'
}

func actionFor(event keyboard.KeyEvent) (tetris.Action, bool) {
	switch {
	case event.Key == keyboard.KeyArrowLeft || event.Rune == 'a':
		return tetris.MoveLeft, true
	case event.Key == keyboard.KeyArrowRight || event.Rune == 'd':
		return tetris.MoveRight, true
	case event.Key == keyboard.KeyArrowDown || event.Rune == 's':
		return tetris.MoveDown, true
	case event.Key == keyboard.KeyArrowUp || event.Rune == 'w':
		return tetris.RotateRight, true
	case event.Key == keyboard.KeySpace:
		return tetris.DropDown, true
	}
	return "", false
}
