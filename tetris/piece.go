package tetris

import "image/color"

// Piece is the falling tetromino.
type Piece struct {
	// X is the column and Y the row of the top left corner of the Shape.
	// Row 0 is the top of the board and rows grow downwards. Y can be
	// negative while the piece is still above the visible grid.
	X, Y  int
	Shape [][]bool
	Color color.Color
}

/*
.	Spawn Location (O)			.	Shape

.	0 1 2 3 4 5 6 7 8 9		.	0 1

0	X X X X O O X X X X		0	O O

1	X X X X O O X X X X		1	O O
*/
func newPiece(x int, shape [][]bool, c color.Color) *Piece {
	return &Piece{
		X:     x,
		Shape: copyShape(shape),
		Color: c,
	}
}

// Rotate turns the shape 90° clockwise. It doesn't check for collisions,
// the Board does that before committing a rotation.
func (p *Piece) Rotate() {
	p.Shape = rotated(p.Shape)
}

// Cells returns the board position (row, col) of every filled cell.
func (p *Piece) Cells() [][2]int {
	var cells [][2]int
	for iy, y := range p.Shape {
		for ix, x := range y {
			if x {
				cells = append(cells, [2]int{p.Y + iy, p.X + ix})
			}
		}
	}
	return cells
}

func (p *Piece) copy() Piece {
	if p == nil {
		return Piece{}
	}
	return Piece{
		X:     p.X,
		Y:     p.Y,
		Shape: copyShape(p.Shape),
		Color: p.Color,
	}
}

// rotated returns the shape rotated clockwise, the transpose of the matrix
// with its rows reversed. An R x C shape becomes C x R.
//
//	O O O		X O
//	X O X	>	O O
//				X O
func rotated(shape [][]bool) [][]bool {
	if len(shape) == 0 {
		return nil
	}
	rows, cols := len(shape), len(shape[0])
	out := make([][]bool, cols)
	for i := range out {
		out[i] = make([]bool, rows)
		for j := range out[i] {
			out[i][j] = shape[rows-1-j][i]
		}
	}
	return out
}

func copyShape(shape [][]bool) [][]bool {
	out := make([][]bool, len(shape))
	for i := range shape {
		out[i] = make([]bool, len(shape[i]))
		copy(out[i], shape[i])
	}
	return out
}
