package client

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"galtetris/tetris"

	"github.com/eiannone/keyboard"
	"github.com/stretchr/testify/assert"
)

type mockTetris struct {
	actions  []tetris.Action
	advanced []time.Duration
	overAt   int // game over after this many actions, 0 never
}

func (m *mockTetris) Action(a tetris.Action)  { m.actions = append(m.actions, a) }
func (m *mockTetris) Advance(d time.Duration) { m.advanced = append(m.advanced, d) }
func (m *mockTetris) Read() *tetris.Snapshot  { return &tetris.Snapshot{GameOver: m.Over()} }
func (m *mockTetris) Over() bool              { return m.overAt > 0 && len(m.actions) >= m.overAt }

type mockRender struct {
	frames int
	resets int
}

func (m *mockRender) game(*tetris.Snapshot) { m.frames++ }
func (m *mockRender) reset()                { m.resets++ }

func newTestClient(tts *mockTetris) (*Client, chan keyboard.KeyEvent, *tetris.MockTicker, *mockRender) {
	kCh := make(chan keyboard.KeyEvent)
	ticker := tetris.NewMockTicker()
	render := &mockRender{}
	return &Client{
		tetris: tts,
		render: render,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		kbCh:   kCh,
		ticker: ticker,
		frame:  50 * time.Millisecond,
	}, kCh, ticker, render
}

func start(cl *Client) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		cl.Start()
		close(done)
	}()
	return done
}

func wait(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for the client to stop")
	}
}

func TestClient(t *testing.T) {
	tts := &mockTetris{}
	cl, kCh, ticker, render := newTestClient(tts)
	done := start(cl)

	// every send blocks until the previous event has been handled.
	kCh <- keyboard.KeyEvent{Key: keyboard.KeyArrowLeft}
	kCh <- keyboard.KeyEvent{Rune: 'd'}
	kCh <- keyboard.KeyEvent{Key: keyboard.KeyArrowDown}
	kCh <- keyboard.KeyEvent{Key: keyboard.KeyArrowUp}
	kCh <- keyboard.KeyEvent{Key: keyboard.KeySpace}
	kCh <- keyboard.KeyEvent{Rune: 'x'}
	ticker.Tick()
	ticker.Tick()
	kCh <- keyboard.KeyEvent{Rune: 'q'}
	wait(t, done)

	assert.Equal(t, []tetris.Action{
		tetris.MoveLeft,
		tetris.MoveRight,
		tetris.MoveDown,
		tetris.RotateRight,
		tetris.DropDown,
	}, tts.actions)
	assert.Equal(t, []time.Duration{50 * time.Millisecond, 50 * time.Millisecond}, tts.advanced)
	assert.True(t, ticker.IsReset())
	assert.Equal(t, 1, render.resets)
	// the first frame plus one per action and tick, unknown keys don't redraw.
	assert.Equal(t, 8, render.frames)
}

func TestClientStops(t *testing.T) {
	t.Run("on game over", func(t *testing.T) {
		tts := &mockTetris{overAt: 1}
		cl, kCh, _, render := newTestClient(tts)
		done := start(cl)
		kCh <- keyboard.KeyEvent{Key: keyboard.KeySpace}
		wait(t, done)
		assert.Equal(t, 2, render.frames)
	})

	t.Run("on ctrl+c", func(t *testing.T) {
		cl, kCh, _, _ := newTestClient(&mockTetris{})
		done := start(cl)
		kCh <- keyboard.KeyEvent{Key: keyboard.KeyCtrlC}
		wait(t, done)
	})

	t.Run("on keyboard error", func(t *testing.T) {
		cl, kCh, _, _ := newTestClient(&mockTetris{})
		done := start(cl)
		kCh <- keyboard.KeyEvent{Err: errors.New("boom")}
		wait(t, done)
	})

	t.Run("when the keyboard channel closes", func(t *testing.T) {
		cl, kCh, _, _ := newTestClient(&mockTetris{})
		done := start(cl)
		close(kCh)
		wait(t, done)
	})
}

func TestActionFor(t *testing.T) {
	tests := []struct {
		event  keyboard.KeyEvent
		want   tetris.Action
		wantOK bool
	}{
		{keyboard.KeyEvent{Key: keyboard.KeyArrowLeft}, tetris.MoveLeft, true},
		{keyboard.KeyEvent{Rune: 'a'}, tetris.MoveLeft, true},
		{keyboard.KeyEvent{Key: keyboard.KeyArrowRight}, tetris.MoveRight, true},
		{keyboard.KeyEvent{Rune: 'd'}, tetris.MoveRight, true},
		{keyboard.KeyEvent{Key: keyboard.KeyArrowDown}, tetris.MoveDown, true},
		{keyboard.KeyEvent{Rune: 's'}, tetris.MoveDown, true},
		{keyboard.KeyEvent{Key: keyboard.KeyArrowUp}, tetris.RotateRight, true},
		{keyboard.KeyEvent{Rune: 'w'}, tetris.RotateRight, true},
		{keyboard.KeyEvent{Key: keyboard.KeySpace}, tetris.DropDown, true},
		{keyboard.KeyEvent{Rune: 'z'}, "", false},
	}
	for _, tt := range tests {
		got, ok := actionFor(tt.event)
		assert.Equal(t, tt.wantOK, ok, "%+v", tt.event)
		assert.Equal(t, tt.want, got, "%+v", tt.event)
	}
}
