package stream

import (
	"fmt"
	"time"
)

// Config is the YAML configuration for the transmitter.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		QOS      byte   `yaml:"qos"`
		Topics   struct {
			Stream string `yaml:"stream"`
			Ack    string `yaml:"ack"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`

	Strip struct {
		NumPixels int `yaml:"numPixels"`
	} `yaml:"strip"`

	Animation struct {
		Name       string `yaml:"name"`
		Frames     int    `yaml:"frames"`
		PeriodMs   int    `yaml:"periodMs"`
		SyncToAcks bool   `yaml:"syncToAcks"`
	} `yaml:"animation"`

	Api struct {
		Addr string `yaml:"addr"`
	} `yaml:"api"`
}

// Validate fills in defaults and rejects configurations that cannot
// run.
func (c *Config) Validate() error {
	if c.Mqtt.URL == "" {
		return fmt.Errorf("stream: mqtt url is required")
	}
	if c.Mqtt.Topics.Stream == "" {
		return fmt.Errorf("stream: mqtt stream topic is required")
	}
	if c.Animation.SyncToAcks && c.Mqtt.Topics.Ack == "" {
		return fmt.Errorf("stream: syncing to acks needs an ack topic")
	}
	if c.Animation.Frames < 0 {
		return fmt.Errorf("stream: animation frame count must not be negative")
	}

	if c.Strip.NumPixels == 0 {
		c.Strip.NumPixels = 500
	}
	if c.Strip.NumPixels < 0 {
		return fmt.Errorf("stream: strip must have at least one pixel")
	}
	if c.Animation.Name == "" {
		c.Animation.Name = "gradienttrail"
	}
	if c.Animation.PeriodMs == 0 {
		c.Animation.PeriodMs = 33
	}
	if c.Animation.PeriodMs < 0 {
		return fmt.Errorf("stream: animation period must be positive")
	}

	return nil
}

// Period returns the pacing period between frames.
func (c *Config) Period() time.Duration {
	return time.Duration(c.Animation.PeriodMs) * time.Millisecond
}
