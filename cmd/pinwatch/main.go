package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mwalther/curvewatch/pkg/config"
	"github.com/mwalther/curvewatch/pkg/gpio"
	"github.com/mwalther/curvewatch/pkg/output"
	"github.com/mwalther/curvewatch/pkg/output/console"
	"github.com/mwalther/curvewatch/pkg/output/mqtt"
	"github.com/mwalther/curvewatch/pkg/watcher"
)

func main() {
	cfg, err := config.LoadPinwatch(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	reader, err := openReader(cfg.GPIO)
	if err != nil {
		log.Fatal(err)
	}
	defer reader.Close()

	outs, err := initOutputs(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		for _, o := range outs {
			if err := o.Close(); err != nil {
				log.Printf("close output: %v", err)
			}
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println("pin is ready")

	w := watcher.New(cfg.GPIO.Pin, reader, time.Duration(cfg.GPIO.PollIntervalMs)*time.Millisecond, func(ev watcher.Event) error {
		for _, o := range outs {
			if err := o.Publish(ev); err != nil {
				log.Printf("publish: %v", err)
			}
		}
		return nil
	})

	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
	log.Println("shutting down")
}

func openReader(cfg config.GPIOConfig) (gpio.Reader, error) {
	switch cfg.Type {
	case "periph", "":
		return gpio.Open(cfg.Pin)
	case "simulation":
		return gpio.NewSim(), nil
	default:
		return nil, fmt.Errorf("unknown gpio type %q", cfg.Type)
	}
}

func initOutputs(cfg config.Config) ([]output.Output, error) {
	outs := make([]output.Output, 0, len(cfg.Outputs))
	for _, oc := range cfg.Outputs {
		switch oc.Type {
		case "console":
			outs = append(outs, console.NewConsole())
		case "mqtt":
			mc := config.MQTTConfig{}
			if oc.MQTT != nil {
				mc = *oc.MQTT
			}
			o, err := mqtt.NewMQTT(mc)
			if err != nil {
				return nil, err
			}
			outs = append(outs, o)
		default:
			return nil, fmt.Errorf("unknown output type %q", oc.Type)
		}
	}
	return outs, nil
}
