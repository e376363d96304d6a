package gpio

import (
	"errors"
	"math/rand"
	"sync"
)

// ErrScriptDone is returned by a Fake once its scripted readings are
// exhausted.
var ErrScriptDone = errors.New("gpio: script exhausted")

// Fake replays a fixed sequence of readings. It is the test double for
// the watcher loop.
type Fake struct {
	mu     sync.Mutex
	script []bool
	pos    int
}

func NewFake(script []bool) *Fake {
	return &Fake{script: script}
}

func (f *Fake) Read() (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pos >= len(f.script) {
		return false, ErrScriptDone
	}
	v := f.script[f.pos]
	f.pos++
	return v, nil
}

func (f *Fake) Close() error { return nil }

// Sim is an endless input that flips level at random, for running the
// watcher without hardware.
type Sim struct {
	mu    sync.Mutex
	level bool
}

func NewSim() *Sim { return &Sim{} }

func (s *Sim) Read() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rand.Intn(20) == 0 {
		s.level = !s.level
	}
	return s.level, nil
}

func (s *Sim) Close() error { return nil }
