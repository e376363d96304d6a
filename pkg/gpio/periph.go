package gpio

import (
	"fmt"

	pgpio "periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

type periphReader struct {
	pin pgpio.PinIO
}

// Open configures the named pin (e.g. "GPIO8") as an input and returns
// a reader for it.
func Open(name string) (Reader, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("host init: %w", err)
	}
	pin := gpioreg.ByName(name)
	if pin == nil {
		return nil, fmt.Errorf("no such pin %q", name)
	}
	if err := pin.In(pgpio.PullNoChange, pgpio.NoEdge); err != nil {
		return nil, fmt.Errorf("configure %s as input: %w", name, err)
	}
	return &periphReader{pin: pin}, nil
}

func (r *periphReader) Read() (bool, error) {
	return bool(r.pin.Read()), nil
}

func (r *periphReader) Close() error {
	return r.pin.Halt()
}
