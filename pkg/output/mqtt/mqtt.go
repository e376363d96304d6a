package mqtt

import (
	"encoding/json"
	"fmt"
	"strings"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/mwalther/curvewatch/pkg/config"
	"github.com/mwalther/curvewatch/pkg/output"
	"github.com/mwalther/curvewatch/pkg/watcher"
)

const (
	// defaults
	DefaultServer   = "tcp://localhost:1883"
	DefaultClientID = "pinwatch-client"
	DefaultTopic    = "pinwatch/%s"
)

type MQTTOutput struct {
	client mqtt.Client
	topic  string
}

func NewMQTT(cfg config.MQTTConfig) (output.Output, error) {
	if cfg.Server == "" {
		cfg.Server = DefaultServer
	}
	if cfg.ClientID == "" {
		cfg.ClientID = DefaultClientID
	}
	if cfg.Topic == "" {
		cfg.Topic = DefaultTopic
	}
	opts := mqtt.NewClientOptions().AddBroker(cfg.Server).SetClientID(cfg.ClientID)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}
	client := mqtt.NewClient(opts)
	token := client.Connect()
	if token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect: %w", token.Error())
	}
	return &MQTTOutput{client: client, topic: cfg.Topic}, nil
}

func (m *MQTTOutput) Publish(e watcher.Event) error {
	// a %s formatter in the topic takes the pin name
	topic := m.topic
	if strings.Contains(topic, "%s") {
		topic = fmt.Sprintf(topic, e.Pin)
	}
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	token := m.client.Publish(topic, 0, false, b)
	token.Wait()
	return token.Error()
}

func (m *MQTTOutput) Close() error {
	if m.client != nil {
		m.client.Disconnect(250)
	}
	return nil
}
