package tetris

// Snapshot is a copy of the board state that's safe to hand to a renderer.
// Changing it doesn't affect the board.
type Snapshot struct {
	Cells    [][]Cell
	Piece    Piece
	Score    int
	GameOver bool
}

// Snapshot returns a copy of the current board state.
func (b *Board) Snapshot() *Snapshot {
	cells := make([][]Cell, len(b.grid))
	for i := range b.grid {
		cells[i] = make([]Cell, len(b.grid[i]))
		copy(cells[i], b.grid[i])
	}
	return &Snapshot{
		Cells:    cells,
		Piece:    b.piece.copy(),
		Score:    b.score,
		GameOver: b.gameOver,
	}
}

// Overlay returns the grid with the falling piece drawn on top of it.
// Piece cells above the grid are left out.
func (s *Snapshot) Overlay() [][]Cell {
	out := make([][]Cell, len(s.Cells))
	for i := range s.Cells {
		out[i] = make([]Cell, len(s.Cells[i]))
		copy(out[i], s.Cells[i])
	}
	for _, c := range s.Piece.Cells() {
		row, col := c[0], c[1]
		if row < 0 || row >= len(out) || col < 0 || col >= len(out[row]) {
			continue
		}
		out[row][col] = Cell{Filled: true, Color: s.Piece.Color}
	}
	return out
}
