package config

import (
	"encoding/json"
	"testing"
)

func TestUnmarshalConfigJSON(t *testing.T) {
	js := `{
        "gpio": { "pin": "GPIO21", "type": "simulation", "poll_interval_ms": 5 },
        "outputs": [
            {"type": "console"},
            {"type": "mqtt", "mqtt": {"server": "tcp://broker:1883", "client_id": "pinwatch-1", "topic": "pinwatch/%s"}}
        ],
        "plot": { "input": "speeds.txt", "kind": "speed", "format": "png", "output": "speed.png", "omega_step": 2.5 }
    }`

	var cfg Config
	if err := json.Unmarshal([]byte(js), &cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if cfg.GPIO.Pin != "GPIO21" || cfg.GPIO.Type != "simulation" || cfg.GPIO.PollIntervalMs != 5 {
		t.Fatalf("gpio: %+v", cfg.GPIO)
	}
	if len(cfg.Outputs) != 2 {
		t.Fatalf("outputs len: %d", len(cfg.Outputs))
	}
	if cfg.Outputs[0].Type != "console" || cfg.Outputs[0].MQTT != nil {
		t.Fatalf("output0: %+v", cfg.Outputs[0])
	}
	m := cfg.Outputs[1].MQTT
	if m == nil || m.Server != "tcp://broker:1883" || m.ClientID != "pinwatch-1" || m.Topic != "pinwatch/%s" {
		t.Fatalf("output1 mqtt: %+v", m)
	}
	if cfg.Plot.Kind != "speed" || cfg.Plot.OmegaStep != 2.5 {
		t.Fatalf("plot: %+v", cfg.Plot)
	}
}
