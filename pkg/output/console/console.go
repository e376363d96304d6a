package console

import (
	"fmt"
	"time"

	"github.com/mwalther/curvewatch/pkg/output"
	"github.com/mwalther/curvewatch/pkg/watcher"
)

type ConsoleOutput struct{}

func NewConsole() output.Output { return &ConsoleOutput{} }

func (c *ConsoleOutput) Publish(e watcher.Event) error {
	fmt.Printf("%s pin=%s input %s reading=%t\n", e.Timestamp.Format(time.RFC3339), e.Pin, e.Kind, e.Reading)
	return nil
}

func (c *ConsoleOutput) Close() error { return nil }
