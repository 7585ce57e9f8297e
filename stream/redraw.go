package stream

import (
	"encoding/json"
	"log"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// AckMessage indicates that a frame has been displayed by the device.
type AckMessage struct {
	Type  string `json:"type"`
	AckID uint8  `json:"ackID"`
}

// RedrawProvider turns frame acknowledgements from an ledrx device into
// redraw triggers, so the pump only sends a frame when the device is
// ready to show one. Acks that arrive while no frame is waiting are
// dropped; a device that acks faster than frames are generated never
// causes a frame to be repeated.
type RedrawProvider struct {
	client mqtt.Client
	topic  string
	c      chan struct{}
}

// NewRedrawProvider creates a RedrawProvider listening on the given ack
// topic.
func NewRedrawProvider(client mqtt.Client, topic string) *RedrawProvider {
	p := new(RedrawProvider)
	p.client = client
	p.topic = topic
	p.c = make(chan struct{}, 1)
	return p
}

// Subscribe starts listening for acks.
func (p *RedrawProvider) Subscribe() error {
	token := p.client.Subscribe(p.topic, 0, p.handleAck)
	token.Wait()
	return token.Error()
}

// Unsubscribe stops listening; the trigger channel simply goes quiet.
func (p *RedrawProvider) Unsubscribe() error {
	token := p.client.Unsubscribe(p.topic)
	token.Wait()
	return token.Error()
}

func (p *RedrawProvider) handleAck(client mqtt.Client, msg mqtt.Message) {
	var ack AckMessage
	if err := json.Unmarshal(msg.Payload(), &ack); err != nil {
		log.Printf("Bad ack on %s: %v", msg.Topic(), err)
		return
	}
	if ack.Type != "ack" {
		return
	}

	select {
	case p.c <- struct{}{}:
	default:
		// Nobody is waiting for a frame; absorb the ack.
	}
}

// Triggers returns the redraw trigger channel, one event per ack.
func (p *RedrawProvider) Triggers() <-chan struct{} {
	return p.c
}
