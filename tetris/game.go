package tetris

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Ticker is the frame clock of the terminal client. Every tick advances the
// game by one frame and redraws it. NewTicker wraps a time.Ticker, tests use
// a MockTicker to step frames by hand.
type Ticker interface {
	C() <-chan time.Time
	Reset(time.Duration)
	Stop()
}

type wrappedTicker struct {
	ticker *time.Ticker
}

// NewTicker returns a Ticker backed by a time.Ticker.
func NewTicker(d time.Duration) Ticker {
	return &wrappedTicker{ticker: time.NewTicker(d)}
}

func (t *wrappedTicker) C() <-chan time.Time   { return t.ticker.C }
func (t *wrappedTicker) Stop()                 { t.ticker.Stop() }
func (t *wrappedTicker) Reset(d time.Duration) { t.ticker.Reset(d) }

// Game is a single play session. It ties a Board to the clock: front ends
// forward the player's actions and the time elapsed between frames, the
// Game turns elapsed time into gravity drops.
type Game struct {
	ID uuid.UUID

	cfg     Config
	board   *Board
	gravity *Gravity
	logger  *slog.Logger
}

// NewGame validates the config and starts a session with a fresh board.
func NewGame(cfg Config, o *Options) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}
	opts := Options{}
	if o != nil {
		opts = *o
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	id := uuid.New()
	opts.Logger = opts.Logger.With(slog.String("game", id.String()))
	opts.Logger.Info("new game", slog.Int("rows", cfg.Rows), slog.Int("cols", cfg.Cols))

	return &Game{
		ID:      id,
		cfg:     cfg,
		board:   NewBoard(cfg, &opts),
		gravity: NewGravity(cfg.FallInterval),
		logger:  opts.Logger,
	}, nil
}

// Action applies a player's input to the board.
func (g *Game) Action(a Action) {
	g.board.Apply(a)
}

// Advance lets dt go by. Once enough time has accumulated the piece falls
// one row, possibly locking it.
func (g *Game) Advance(dt time.Duration) {
	if g.board.GameOver() {
		return
	}
	if g.gravity.Advance(dt) {
		g.board.Drop()
	}
}

// Read returns a copy of the board state.
func (g *Game) Read() *Snapshot { return g.board.Snapshot() }

func (g *Game) Over() bool     { return g.board.GameOver() }
func (g *Game) Score() int     { return g.board.Score() }
func (g *Game) Config() Config { return g.cfg }
