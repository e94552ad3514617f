// Copyright 2021 Clayton Craft <clayton@craftyguy.net>
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml"

	"gitlab.com/postmarketOS/gnss_nmea/internal/nmea"
	"gitlab.com/postmarketOS/gnss_nmea/internal/render"
)

type Config struct {
	Socket     string `toml:"socket"`
	OwnerGroup string `toml:"group"`
	// Source is "stdin" or the path of a file or device to read sentences
	// from, one per line.
	Source string `toml:"source"`
	Format string `toml:"format"`
	// Types restricts the shared sentence kinds, empty shares all of them.
	Types []string `toml:"types"`

	MQTTBroker   string `toml:"mqtt_broker"`
	MQTTTopic    string `toml:"mqtt_topic"`
	MQTTClientID string `toml:"mqtt_client_id"`

	WebSocketListen string `toml:"websocket_listen"`

	format render.Format `toml:"-"`
}

const (
	DefaultSocket       = "/var/run/nmea_share.sock"
	DefaultSource       = "stdin"
	DefaultMQTTTopic    = "nmea"
	DefaultMQTTClientID = "nmea-share"
)

func Parse(file string) (c *Config, err error) {
	contents, err := os.ReadFile(file)
	if err != nil {
		err = fmt.Errorf("config.Parse(): %w", err)
		return
	}

	c = &Config{}

	if err = toml.Unmarshal(contents, c); err != nil {
		err = fmt.Errorf("config.Parse(): %w", err)
		return
	}

	if err = c.setDefaults(); err != nil {
		err = fmt.Errorf("config.Parse(): %w", err)
	}

	return
}

func (c *Config) setDefaults() error {
	if c.Socket == "" {
		c.Socket = DefaultSocket
	}
	if c.Source == "" {
		c.Source = DefaultSource
	}
	if c.MQTTTopic == "" {
		c.MQTTTopic = DefaultMQTTTopic
	}
	if c.MQTTClientID == "" {
		c.MQTTClientID = DefaultMQTTClientID
	}
	format, err := render.ParseFormat(c.Format)
	if err != nil {
		return err
	}
	c.format = format
	if _, err := c.Kinds(); err != nil {
		return err
	}
	return nil
}

// OutputFormat returns the encoding of shared records, as validated by
// Parse.
func (c *Config) OutputFormat() render.Format {
	return c.format
}

// Kinds returns the set of sentence kinds to share, nil meaning all.
func (c *Config) Kinds() (map[nmea.Type]bool, error) {
	if len(c.Types) == 0 {
		return nil, nil
	}
	kinds := make(map[nmea.Type]bool, len(c.Types))
	for _, name := range c.Types {
		name = strings.ToUpper(strings.TrimSpace(name))
		t, err := nmea.ParseType(name)
		if err != nil || t.String() != name {
			return nil, fmt.Errorf("unsupported sentence type %q in types", name)
		}
		kinds[t] = true
	}
	return kinds, nil
}
