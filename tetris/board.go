// Package tetris contains the logic of the game: a fixed grid of cells,
// the falling piece and the rules that move, rotate, lock and clear them.
package tetris

import (
	"image/color"
	"io"
	"log/slog"
	"math/rand/v2"
)

// Cell is a square of the grid. An empty cell has no color.
type Cell struct {
	Filled bool
	Color  color.Color
}

type Action string

const (
	MoveLeft    Action = "left"     // Moves the piece one column to the left.
	MoveRight   Action = "right"    // Moves the piece one column to the right.
	MoveDown    Action = "down"     // Moves the piece one row down, locking it if it can't.
	DropDown    Action = "drop"     // Drops the piece down the stack and locks it.
	RotateRight Action = "rotatecw" // Rotates the piece clockwise.
)

// Randomizer picks the shape and color of every new piece.
// *rand.Rand satisfies it.
type Randomizer interface {
	IntN(n int) int
}

type Options struct {
	Logger *slog.Logger
	Rand   Randomizer
}

// Board is the playfield. It owns the grid and the falling piece and it is
// not safe for concurrent use.
type Board struct {
	cfg    Config
	logger *slog.Logger
	rand   Randomizer

	// Columns are 0 > Cols-1 left to right.
	// Rows are 0 > Rows-1 top to bottom.
	grid     [][]Cell
	piece    *Piece
	score    int
	gameOver bool
}

// NewBoard returns an empty board with its first piece already spawned.
// The config is expected to be valid, see Config.Validate.
func NewBoard(cfg Config, o *Options) *Board {
	if o == nil {
		o = &Options{}
	}
	b := &Board{
		cfg:    cfg,
		logger: o.Logger,
		rand:   o.Rand,
		grid:   emptyGrid(cfg.Rows, cfg.Cols),
	}
	if b.logger == nil {
		b.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if b.rand == nil {
		b.rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	b.spawn()
	return b
}

// Valid reports whether the current piece fits the board when shifted by
// offsetX columns and offsetY rows and drawn with shape. A nil shape means
// the piece's own shape.
//
// Cells above the board (row < 0) are never checked against the grid, that
// lets a piece spawn partially outside the visible area.
//
//	.	0 1 2 3 4 5 6 7 8 9			0 1 2
//	0	X X X X X X X X X X		0	O O O
//	1	X X X X X X X X X X		1	X O X
//	2	X X X X O O O X X X
//	3	X X X X X C X X X X		C collides with the piece moved 1 down.
func (b *Board) Valid(offsetX, offsetY int, shape [][]bool) bool {
	if shape == nil {
		shape = b.piece.Shape
	}
	for iy, y := range shape {
		for ix, filled := range y {
			if !filled {
				continue
			}
			col := b.piece.X + ix + offsetX
			row := b.piece.Y + iy + offsetY
			if col < 0 || col >= b.cfg.Cols || row >= b.cfg.Rows {
				return false
			}
			if row >= 0 && b.grid[row][col].Filled {
				return false
			}
		}
	}
	return true
}

// Move shifts the piece dx columns if it fits.
func (b *Board) Move(dx int) {
	if b.gameOver {
		return
	}
	if b.Valid(dx, 0, nil) {
		b.piece.X += dx
	}
}

// Drop moves the piece one row down. When it can't go any lower it is
// locked into the board.
func (b *Board) Drop() {
	if b.gameOver {
		return
	}
	if b.Valid(0, 1, nil) {
		b.piece.Y++
		return
	}
	b.lock()
}

// Rotate rotates the piece clockwise if the rotated shape fits where the
// piece is. There are no wall kicks.
func (b *Board) Rotate() {
	if b.gameOver {
		return
	}
	r := rotated(b.piece.Shape)
	if b.Valid(0, 0, r) {
		b.piece.Shape = r
	}
}

// HardDrop moves the piece down as far as it goes and locks it.
func (b *Board) HardDrop() {
	if b.gameOver {
		return
	}
	b.piece.Y += b.dropDownDelta()
	b.lock()
}

// Apply runs the operation bound to a logical input.
// Unknown actions are ignored.
func (b *Board) Apply(a Action) {
	switch a {
	case MoveLeft:
		b.Move(-1)
	case MoveRight:
		b.Move(1)
	case MoveDown:
		b.Drop()
	case DropDown:
		b.HardDrop()
	case RotateRight:
		b.Rotate()
	}
}

func (b *Board) Rows() int      { return b.cfg.Rows }
func (b *Board) Cols() int      { return b.cfg.Cols }
func (b *Board) Score() int     { return b.score }
func (b *Board) GameOver() bool { return b.gameOver }

// Cell returns the cell at row, col of the grid. It doesn't include the
// falling piece.
func (b *Board) Cell(row, col int) Cell { return b.grid[row][col] }

// Piece returns a copy of the falling piece.
func (b *Board) Piece() Piece { return b.piece.copy() }

// dropDownDelta returns how many rows the piece can fall before it hits
// the stack or the floor.
func (b *Board) dropDownDelta() int {
	var d int
	for b.Valid(0, d+1, nil) {
		d++
	}
	return d
}

// lock writes the piece into the grid, clears full rows and spawns the
// next piece. Cells still above the board are dropped.
func (b *Board) lock() {
	for _, c := range b.piece.Cells() {
		row, col := c[0], c[1]
		if row < 0 {
			continue
		}
		b.grid[row][col] = Cell{Filled: true, Color: b.piece.Color}
	}
	cleared := b.clearLines()
	b.logger.Debug("piece locked",
		slog.Int("x", b.piece.X),
		slog.Int("y", b.piece.Y),
		slog.Int("cleared", cleared),
		slog.Int("score", b.score),
	)
	b.spawn()
	// the game is over when the new piece doesn't fit where it spawns.
	if !b.Valid(0, 0, nil) {
		b.gameOver = true
		b.logger.Info("game over", slog.Int("score", b.score))
	}
}

// clearLines removes every full row and adds one empty row on top for each
// of them, keeping the order of the rows left. It returns the rows removed.
func (b *Board) clearLines() int {
	kept := make([][]Cell, 0, len(b.grid))
	for _, row := range b.grid {
		if !isFull(row) {
			kept = append(kept, row)
		}
	}
	cleared := len(b.grid) - len(kept)
	if cleared == 0 {
		return 0
	}
	b.grid = append(emptyGrid(cleared, b.cfg.Cols), kept...)
	b.score += cleared
	return cleared
}

// spawn replaces the current piece with a new one at the top center.
func (b *Board) spawn() {
	shape := b.cfg.Shapes[b.rand.IntN(len(b.cfg.Shapes))]
	c := b.cfg.Palette[b.rand.IntN(len(b.cfg.Palette))]
	b.piece = newPiece(b.cfg.Cols/2-1, shape, c)
}

func isFull(row []Cell) bool {
	for _, c := range row {
		if !c.Filled {
			return false
		}
	}
	return true
}

func emptyGrid(rows, cols int) [][]Cell {
	g := make([][]Cell, rows)
	for i := range g {
		g[i] = make([]Cell, cols)
	}
	return g
}
