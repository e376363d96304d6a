// Package gpio provides digital input reading with hardware
// abstraction: a periph-backed pin for real hardware, a random
// simulator for desktop runs, and a scripted fake for tests.
package gpio

// Reader reads the level of a single digital input line.
type Reader interface {
	// Read returns the current logic level, true for high.
	Read() (bool, error)

	// Close releases the underlying resources.
	Close() error
}
