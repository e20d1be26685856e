package tetris

import (
	"sync"
	"time"
)

// MockTicker is a mock implementation of the Ticker interface.
type MockTicker struct {
	ch          chan time.Time
	stop, reset bool
	mu          sync.Mutex
}

func NewMockTicker() *MockTicker          { return &MockTicker{ch: make(chan time.Time)} }
func (m *MockTicker) C() <-chan time.Time { return m.ch }
func (m *MockTicker) Tick()               { m.ch <- time.Now() }
func (m *MockTicker) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stop = true
}
func (m *MockTicker) Reset(time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reset = true
}
func (m *MockTicker) IsReset() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reset
}
func (m *MockTicker) IsStop() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stop
}

// SequenceRand is a Randomizer that returns its values in order, wrapping
// around at the end. Every value is taken modulo n.
type SequenceRand struct {
	Values []int
	next   int
}

func (s *SequenceRand) IntN(n int) int {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v % n
}

// NewTestBoard returns a board with the default config where every piece
// has the given shape and the first color of the palette.
func NewTestBoard(shape int) *Board {
	return NewBoard(DefaultConfig(), &Options{Rand: &SequenceRand{Values: []int{shape, 0}}})
}
