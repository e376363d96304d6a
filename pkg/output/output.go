package output

import "github.com/mwalther/curvewatch/pkg/watcher"

type Output interface {
	Publish(watcher.Event) error
	Close() error
}

// concrete outputs are in subpackages
