package stream

import (
	"context"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/matt-g-everett/ledanim/pump"
)

// Setup describes the stream a canvas publishes to.
type Setup struct {
	Topic string
	QOS   byte
}

// Canvas binds an MQTT client to the topic an ledrx device listens on.
// A canvas belongs to at most one pump run at a time.
type Canvas struct {
	client mqtt.Client
	topic  string
	qos    byte
}

// Topic returns the stream topic the canvas publishes to.
func (c *Canvas) Topic() string {
	return c.topic
}

// Renderer paints frames by publishing them over MQTT. It implements
// pump.Painter with the number of payload bytes published as the
// per-frame value.
type Renderer struct {
	client mqtt.Client
}

// NewRenderer creates a Renderer that publishes through client.
func NewRenderer(client mqtt.Client) *Renderer {
	r := new(Renderer)
	r.client = client
	return r
}

// CreateCanvas validates setup and binds a canvas for it.
func (r *Renderer) CreateCanvas(setup Setup) (*Canvas, error) {
	if setup.Topic == "" {
		return nil, &pump.ConfigError{Msg: "canvas needs a stream topic"}
	}
	if setup.QOS > 2 {
		return nil, &pump.ConfigError{Msg: "canvas QOS must be 0, 1 or 2"}
	}

	return &Canvas{client: r.client, topic: setup.Topic, qos: setup.QOS}, nil
}

// Paint sends a frame as binary over MQTT to an ledrx device, waiting
// for the broker to take delivery. It returns the payload size in
// bytes.
func (r *Renderer) Paint(ctx context.Context, canvas *Canvas, f *Frame) (int, error) {
	b, err := f.MarshalBinary()
	if err != nil {
		return 0, err
	}

	token := canvas.client.Publish(canvas.topic, canvas.qos, false, b)
	select {
	case <-token.Done():
		if err := token.Error(); err != nil {
			return 0, err
		}
	case <-ctx.Done():
		return 0, ctx.Err()
	}

	return len(b), nil
}
