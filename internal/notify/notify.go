// Package notify broadcasts fleet lifecycle events to live dashboard
// consumers. Publishing is fire-and-forget: the fleet core never blocks
// or fails on a broker problem.
package notify

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"
)

// Event kinds emitted by the fleet core.
const (
	KindVehicleStatus = "vehicle.status"
	KindDriverStatus  = "driver.status"
	KindTripStatus    = "trip.status"
)

// Event describes one entity status transition.
type Event struct {
	Kind     string    `json:"kind"`
	EntityID string    `json:"entityId"`
	Status   string    `json:"status"`
	At       time.Time `json:"at"`
}

// Publisher receives lifecycle events.
type Publisher interface {
	Publish(event Event)
}

// NopPublisher discards all events. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(Event) {}

// MQTTPublisher publishes events as JSON to an MQTT topic.
type MQTTPublisher struct {
	client mqtt.Client
	topic  string
}

// NewMQTTPublisher connects to the broker and returns a publisher on the
// given topic.
func NewMQTTPublisher(brokerURL, clientID, topic string) (*MQTTPublisher, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(brokerURL).
		SetClientID(clientID).
		SetConnectTimeout(10 * time.Second).
		SetAutoReconnect(true)

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		return nil, fmt.Errorf("mqtt connect to %s timed out", brokerURL)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect to %s: %w", brokerURL, err)
	}

	return &MQTTPublisher{client: client, topic: topic}, nil
}

// Publish sends the event at QoS 0 without waiting for delivery.
func (p *MQTTPublisher) Publish(event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.WithError(err).Warn("failed to encode fleet event")
		return
	}
	p.client.Publish(p.topic, 0, false, payload)
}

// Close disconnects from the broker.
func (p *MQTTPublisher) Close() {
	p.client.Disconnect(250)
}
