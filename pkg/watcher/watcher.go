// Package watcher turns raw pin readings into edge transition events.
package watcher

import (
	"context"
	"fmt"
	"time"

	"github.com/mwalther/curvewatch/pkg/gpio"
)

type Kind string

const (
	Activated   Kind = "activated"
	Deactivated Kind = "deactivated"
)

// Event is one edge transition on a watched input.
type Event struct {
	Pin       string    `json:"pin"`
	Kind      Kind      `json:"kind"`
	Reading   bool      `json:"reading"`
	Timestamp time.Time `json:"timestamp"`
}

// Handler receives each event as it happens. A handler error stops the
// watcher.
type Handler func(Event) error

type Watcher struct {
	name     string
	pin      gpio.Reader
	interval time.Duration
	handle   Handler
}

// New builds a watcher over pin. interval paces the poll loop; 0 means
// poll as fast as the reader allows.
func New(name string, pin gpio.Reader, interval time.Duration, handle Handler) *Watcher {
	return &Watcher{name: name, pin: pin, interval: interval, handle: handle}
}

// Run polls the input until ctx is cancelled or a read fails. The
// previous level starts low, so a pin that is already high produces an
// activated event on the first poll.
func (w *Watcher) Run(ctx context.Context) error {
	prev := false
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		reading, err := w.pin.Read()
		if err != nil {
			return fmt.Errorf("read pin %s: %w", w.name, err)
		}
		if reading != prev {
			prev = reading
			kind := Deactivated
			if reading {
				kind = Activated
			}
			ev := Event{Pin: w.name, Kind: kind, Reading: reading, Timestamp: time.Now()}
			if err := w.handle(ev); err != nil {
				return err
			}
		}

		if w.interval > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(w.interval):
			}
		}
	}
}
