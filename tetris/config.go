package tetris

import (
	"errors"
	"fmt"
	"image/color"
	"time"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Index of each tetromino in DefaultConfig().Shapes.
const (
	I = iota
	Z
	S
	T
	L
	J
	O
)

// Config holds everything that used to be a package level constant: the
// board size, the theme and the shapes pieces are drawn from. It is passed
// by value and never mutated by the game.
type Config struct {
	Rows     int
	Cols     int
	CellSize int // pixels

	// Palette is the set of colors a piece can be painted with.
	Palette []color.RGBA
	// Shapes are the tetromino matrices. true is a filled cell.
	Shapes [][][]bool

	Background color.RGBA
	GridLine   color.RGBA

	// FallInterval is how much time has to go by before gravity pulls the
	// current piece down one row.
	FallInterval time.Duration
}

/*
.	Shapes

.	I			Z			S			T

.	O O O O		O O X		X O O		O O O
.				X O O		O O X		X O X

.	L			J			O

.	O O O		O O O		O O
.	O X X		X X O		O O
*/
func DefaultConfig() Config {
	return Config{
		Rows:     20,
		Cols:     10,
		CellSize: 30,
		Palette: []color.RGBA{
			{R: 255, G: 20, B: 147, A: 255},  // deep pink
			{R: 255, G: 192, B: 203, A: 255}, // pink
			{R: 255, G: 105, B: 180, A: 255}, // hot pink
			{R: 238, G: 130, B: 238, A: 255}, // violet
			{R: 221, G: 160, B: 221, A: 255}, // plum
			{R: 255, G: 182, B: 193, A: 255}, // light pink
			{R: 255, G: 99, B: 71, A: 255},   // tomato
		},
		Shapes: [][][]bool{
			{{true, true, true, true}},
			{{true, true, false}, {false, true, true}},
			{{false, true, true}, {true, true, false}},
			{{true, true, true}, {false, true, false}},
			{{true, true, true}, {true, false, false}},
			{{true, true, true}, {false, false, true}},
			{{true, true}, {true, true}},
		},
		Background:   color.RGBA{R: 255, G: 182, B: 193, A: 255},
		GridLine:     color.RGBA{R: 255, G: 105, B: 180, A: 255},
		FallInterval: 500 * time.Millisecond,
	}
}

// Validate checks the config can drive a game.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("board must be at least 1x1, got %dx%d: %w", c.Rows, c.Cols, ErrInvalidConfig)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("cell size must be positive, got %d: %w", c.CellSize, ErrInvalidConfig)
	}
	if len(c.Palette) == 0 {
		return fmt.Errorf("palette is empty: %w", ErrInvalidConfig)
	}
	if len(c.Shapes) == 0 {
		return fmt.Errorf("no shapes defined: %w", ErrInvalidConfig)
	}
	for i, s := range c.Shapes {
		if err := c.validShape(s); err != nil {
			return fmt.Errorf("shape %d: %w", i, err)
		}
	}
	if c.FallInterval <= 0 {
		return fmt.Errorf("fall interval must be positive, got %s: %w", c.FallInterval, ErrInvalidConfig)
	}
	return nil
}

// Width is the pixel width of the playfield.
func (c Config) Width() int { return c.Cols * c.CellSize }

// Height is the pixel height of the playfield.
func (c Config) Height() int { return c.Rows * c.CellSize }

func (c Config) validShape(s [][]bool) error {
	if len(s) == 0 || len(s[0]) == 0 {
		return fmt.Errorf("empty matrix: %w", ErrInvalidConfig)
	}
	filled := false
	for _, r := range s {
		if len(r) != len(s[0]) {
			return fmt.Errorf("matrix is not rectangular: %w", ErrInvalidConfig)
		}
		for _, v := range r {
			filled = filled || v
		}
	}
	if !filled {
		return fmt.Errorf("matrix has no filled cell: %w", ErrInvalidConfig)
	}
	// pieces spawn at column Cols/2-1, row 0, and both orientations have to
	// fit the board from there.
	//
	// .	0 1 2 3		.	0 1 2 3
	// 0	X O O O O	0	X O X X
	// .				1	X O X X
	// .				2	X O X X
	// .				3	X O X X
	x := c.Cols/2 - 1
	if x < 0 {
		return fmt.Errorf("no spawn column on a %d column board: %w", c.Cols, ErrInvalidConfig)
	}
	long := max(len(s), len(s[0]))
	if x+long > c.Cols {
		return fmt.Errorf("matrix doesn't fit at spawn column %d: %w", x, ErrInvalidConfig)
	}
	if long > c.Rows {
		return fmt.Errorf("matrix is taller than the board: %w", ErrInvalidConfig)
	}
	return nil
}
