package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/mwalther/curvewatch/pkg/chart"
	"github.com/mwalther/curvewatch/pkg/render"
)

type MQTTConfig struct {
	Server   string `json:"server"`
	Username string `json:"username"`
	Password string `json:"password"`
	ClientID string `json:"client_id"`
	Topic    string `json:"topic"`
}

type OutputConfig struct {
	Type string      `json:"type"`
	MQTT *MQTTConfig `json:"mqtt,omitempty"`
}

type GPIOConfig struct {
	Pin            string `json:"pin"`
	Type           string `json:"type"` // periph|simulation
	PollIntervalMs int    `json:"poll_interval_ms"`
}

type PlotConfig struct {
	Input     string  `json:"input"`
	Kind      string  `json:"kind"`
	Format    string  `json:"format"`
	Output    string  `json:"output"`
	OmegaStep float64 `json:"omega_step"`
	ServeAddr string  `json:"serve_addr,omitempty"`
}

type Config struct {
	GPIO    GPIOConfig     `json:"gpio"`
	Outputs []OutputConfig `json:"outputs"`
	Plot    PlotConfig     `json:"plot"`
}

func DefaultConfig() Config {
	return Config{
		GPIO: GPIOConfig{
			Pin:            "GPIO8",
			Type:           "periph",
			PollIntervalMs: 10,
		},
		Outputs: []OutputConfig{{Type: "console"}},
		Plot: PlotConfig{
			Input:     "raw_data.txt",
			Kind:      chart.KindTorque,
			Format:    render.FormatHTML,
			Output:    "curve.html",
			OmegaStep: chart.DefaultOmegaStep,
		},
	}
}

// LoadPinwatch loads the pinwatch configuration from a JSON file
// (optional) and flags. Flags override values present in the JSON file.
func LoadPinwatch(args []string) (Config, error) {
	fs := flag.NewFlagSet("pinwatch", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfgPath := fs.String("config", "", "Path to JSON config file")
	flagPin := fs.String("pin", "", "Input pin name (e.g. GPIO8)")
	flagGPIOType := fs.String("gpio-type", "", "gpio type: periph|simulation")
	flagPollInterval := fs.Int("poll-interval-ms", -1, "Poll interval in ms (0 = spin)")
	flagOutputs := fs.String("outputs", "", "Comma-separated outputs (console,mqtt)")
	flagMQTTServer := fs.String("mqtt-server", "", "MQTT server (tcp://host:port)")
	flagMQTTUser := fs.String("mqtt-user", "", "MQTT username")
	flagMQTTPass := fs.String("mqtt-pass", "", "MQTT password")
	flagClientID := fs.String("mqtt-client-id", "", "MQTT client id")
	flagTopic := fs.String("mqtt-topic", "", "MQTT topic (may contain a %s pin formatter)")

	cfg, err := parseWithFile(fs, args, cfgPath)
	if err != nil {
		return cfg, err
	}

	if *flagPin != "" {
		cfg.GPIO.Pin = *flagPin
	}
	if *flagGPIOType != "" {
		cfg.GPIO.Type = *flagGPIOType
	}
	if *flagPollInterval != -1 {
		cfg.GPIO.PollIntervalMs = *flagPollInterval
	}
	if *flagOutputs != "" {
		parts := parseCSV(*flagOutputs)
		outs := make([]OutputConfig, 0, len(parts))
		for _, p := range parts {
			outs = append(outs, OutputConfig{Type: p})
		}
		cfg.Outputs = outs
	}
	// Apply MQTT flags to all mqtt outputs; if none exist, create one.
	if *flagMQTTServer != "" || *flagMQTTUser != "" || *flagMQTTPass != "" || *flagClientID != "" || *flagTopic != "" {
		applied := false
		for i := range cfg.Outputs {
			if strings.ToLower(cfg.Outputs[i].Type) == "mqtt" {
				if cfg.Outputs[i].MQTT == nil {
					cfg.Outputs[i].MQTT = &MQTTConfig{}
				}
				applyMQTTFlags(cfg.Outputs[i].MQTT, *flagMQTTServer, *flagMQTTUser, *flagMQTTPass, *flagClientID, *flagTopic)
				applied = true
			}
		}
		if !applied {
			out := OutputConfig{Type: "mqtt", MQTT: &MQTTConfig{}}
			applyMQTTFlags(out.MQTT, *flagMQTTServer, *flagMQTTUser, *flagMQTTPass, *flagClientID, *flagTopic)
			cfg.Outputs = append(cfg.Outputs, out)
		}
	}

	if cfg.GPIO.Pin == "" {
		return cfg, errors.New("pin must not be empty")
	}
	if cfg.GPIO.PollIntervalMs < 0 {
		return cfg, errors.New("poll-interval-ms must be >= 0")
	}
	if len(cfg.Outputs) == 0 {
		return cfg, errors.New("at least one output is required")
	}
	return cfg, nil
}

// LoadCurveplot loads the curveplot configuration from a JSON file
// (optional) and flags. Flags override values present in the JSON file.
func LoadCurveplot(args []string) (Config, error) {
	fs := flag.NewFlagSet("curveplot", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfgPath := fs.String("config", "", "Path to JSON config file")
	flagInput := fs.String("input", "", "Path to raw data file")
	flagKind := fs.String("kind", "", "Chart kind: torque|speed|accel")
	flagScale := fs.Float64("scale", math.NaN(), "Omega per step on the torque x-axis")
	flagFormat := fs.String("format", "", "Output format: html|png")
	flagOut := fs.String("out", "", "Output file path")
	flagServe := fs.String("serve", "", "Serve the chart over HTTP at this address instead of writing a file")

	cfg, err := parseWithFile(fs, args, cfgPath)
	if err != nil {
		return cfg, err
	}

	if *flagInput != "" {
		cfg.Plot.Input = *flagInput
	}
	if *flagKind != "" {
		cfg.Plot.Kind = *flagKind
	}
	if !math.IsNaN(*flagScale) {
		cfg.Plot.OmegaStep = *flagScale
	}
	if *flagFormat != "" {
		cfg.Plot.Format = *flagFormat
	}
	if *flagOut != "" {
		cfg.Plot.Output = *flagOut
	}
	if *flagServe != "" {
		cfg.Plot.ServeAddr = *flagServe
	}

	switch cfg.Plot.Kind {
	case chart.KindTorque, chart.KindSpeed, chart.KindAcceleration:
	default:
		return cfg, fmt.Errorf("unknown chart kind %q", cfg.Plot.Kind)
	}
	switch cfg.Plot.Format {
	case render.FormatHTML, render.FormatPNG:
	default:
		return cfg, fmt.Errorf("unknown output format %q", cfg.Plot.Format)
	}
	if cfg.Plot.OmegaStep <= 0 {
		return cfg, errors.New("scale must be > 0")
	}
	if cfg.Plot.Input == "" {
		return cfg, errors.New("input must not be empty")
	}
	return cfg, nil
}

func parseWithFile(fs *flag.FlagSet, args []string, cfgPath *string) (Config, error) {
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg := DefaultConfig()
	if *cfgPath != "" {
		b, err := os.ReadFile(*cfgPath)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}
	return cfg, nil
}

func applyMQTTFlags(m *MQTTConfig, server, user, pass, clientID, topic string) {
	if server != "" {
		m.Server = server
	}
	if user != "" {
		m.Username = user
	}
	if pass != "" {
		m.Password = pass
	}
	if clientID != "" {
		m.ClientID = clientID
	}
	if topic != "" {
		m.Topic = topic
	}
}

func parseCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
