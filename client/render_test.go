package client

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"galtetris/tetris"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	cfg := tetris.DefaultConfig()
	b := tetris.NewTestBoard(tetris.O)
	td := &templateData{Config: cfg, Snapshot: b.Snapshot()}

	bg := "\x1b[48;2;255;182;193m  \x1b[0m"
	piece := "\x1b[48;2;255;20;147m[]\x1b[0m"

	got := stack(td)
	require.Len(t, got, 20)
	// .	0 1 2 3 4 5 6 7 8 9
	// 0	X X X X O O X X X X
	want := strings.Repeat(bg, 4) + piece + piece + strings.Repeat(bg, 4)
	assert.Equal(t, want, got[0])
	assert.Equal(t, want, got[1])
	assert.Equal(t, strings.Repeat(bg, 10), got[19])

	t.Run("no snapshot renders nothing", func(t *testing.T) {
		assert.Nil(t, stack(&templateData{Config: cfg}))
	})
}

func TestBorder(t *testing.T) {
	td := &templateData{Config: tetris.DefaultConfig()}
	assert.Equal(t, "+--------------------+", border(td))
}

func TestStatus(t *testing.T) {
	td := &templateData{
		Config:   tetris.DefaultConfig(),
		Snapshot: &tetris.Snapshot{Score: 12},
	}
	out := status(td)
	assert.Contains(t, out, "Score: 12")
	assert.NotContains(t, out, "Game Over")
	assert.NotContains(t, strings.ReplaceAll(out, "\r\n", ""), "\n", "raw mode needs carriage returns")

	td.Snapshot.GameOver = true
	assert.Contains(t, status(td), "Game Over")
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	r, err := newRender(slog.New(slog.NewTextHandler(io.Discard, nil)), &buf, tetris.DefaultConfig())
	require.NoError(t, err)

	r.reset()
	assert.Equal(t, clearScreen, buf.String())

	buf.Reset()
	b := tetris.NewTestBoard(tetris.T)
	b.HardDrop()
	r.game(b.Snapshot())

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, resetPos))
	assert.Equal(t, 20, strings.Count(out, "\r\n  |"))
	assert.Equal(t, 2, strings.Count(out, "  +--------------------+"))
	assert.Contains(t, out, fmt.Sprintf("Score: %d", b.Score()))
	assert.Contains(t, out, "q quit")
}
