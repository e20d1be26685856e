// Package window draws the game in a desktop window with ebiten.
package window

import (
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"galtetris/tetris"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var bindings = []struct {
	key    ebiten.Key
	action tetris.Action
}{
	{ebiten.KeyArrowLeft, tetris.MoveLeft},
	{ebiten.KeyArrowRight, tetris.MoveRight},
	{ebiten.KeyArrowDown, tetris.MoveDown},
	{ebiten.KeyArrowUp, tetris.RotateRight},
	{ebiten.KeySpace, tetris.DropDown},
}

// Game implements ebiten.Game on top of a tetris session.
type Game struct {
	tetris *tetris.Game
	cfg    tetris.Config
	logger *slog.Logger

	// pressed reports whether a key went down this tick.
	pressed func(ebiten.Key) bool
	// tick is the time between two Update calls.
	tick  time.Duration
	title string
	// finished is set once a game over frame has been drawn.
	finished bool
}

// rect is one square of a frame.
type rect struct {
	x, y, size float32
	color      color.Color
	filled     bool
}

func New(l *slog.Logger, g *tetris.Game) *Game {
	return &Game{
		tetris:  g,
		cfg:     g.Config(),
		logger:  l,
		pressed: inpututil.IsKeyJustPressed,
		tick:    time.Second / time.Duration(ebiten.TPS()),
	}
}

// Run opens the window and blocks until the game is over or the window is
// closed.
func Run(g *Game) error {
	ebiten.SetWindowSize(g.cfg.Width(), g.cfg.Height())
	ebiten.SetWindowTitle(title(0))
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("failed to run game: %w", err)
	}
	return nil
}

// Update returns ebiten.Termination on the tick after the game over frame
// has been drawn, so the last board stays on screen until the window closes.
func (g *Game) Update() error {
	if g.finished {
		g.logger.Info("window closed on game over", slog.Int("score", g.tetris.Score()))
		return ebiten.Termination
	}
	for _, b := range bindings {
		if g.pressed(b.key) {
			g.tetris.Action(b.action)
		}
	}
	g.tetris.Advance(g.tick)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.Background)
	rects, t := g.render(g.tetris.Read())
	for _, r := range rects {
		if r.filled {
			vector.DrawFilledRect(screen, r.x, r.y, r.size, r.size, r.color, false)
			continue
		}
		vector.StrokeRect(screen, r.x, r.y, r.size, r.size, 1, r.color, false)
	}
	if t != "" {
		ebiten.SetWindowTitle(t)
	}
}

// render turns a snapshot into the squares of a frame, in drawing order. It
// returns the new window title, empty when the score didn't change since
// the last frame.
func (g *Game) render(s *tetris.Snapshot) ([]rect, string) {
	var rects []rect
	// the stack first, every cell with its grid line.
	for r, row := range s.Cells {
		for c, cell := range row {
			x, y, size := cellRect(r, c, g.cfg.CellSize)
			if cell.Filled {
				rects = append(rects, rect{x: x, y: y, size: size, color: cell.Color, filled: true})
			}
			rects = append(rects, rect{x: x, y: y, size: size, color: g.cfg.GridLine})
		}
	}
	// then the falling piece on top, without grid lines. Cells above the
	// board are off screen.
	for _, c := range s.Piece.Cells() {
		if c[0] < 0 {
			continue
		}
		x, y, size := cellRect(c[0], c[1], g.cfg.CellSize)
		rects = append(rects, rect{x: x, y: y, size: size, color: s.Piece.Color, filled: true})
	}

	g.finished = s.GameOver
	t := title(s.Score)
	if t == g.title {
		return rects, ""
	}
	g.title = t
	return rects, t
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Width(), g.cfg.Height()
}

// cellRect returns the top left corner and side of the square drawn for
// the cell at row, col.
func cellRect(row, col, cellSize int) (x, y, size float32) {
	return float32(col * cellSize), float32(row * cellSize), float32(cellSize)
}

func title(score int) string {
	return fmt.Sprintf("Gal Tetris - Score: %d", score)
}
