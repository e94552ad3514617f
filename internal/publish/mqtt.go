// Copyright 2021 Clayton Craft <clayton@craftyguy.net>
// SPDX-License-Identifier: GPL-3.0-or-later

package publish

import (
	"fmt"
	"strings"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"gitlab.com/postmarketOS/gnss_nmea/internal/nmea"
)

// publisher is the part of mqtt.Client used here.
type publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// MQTT publishes each decoded record to <topic>/<kind>, e.g. "nmea/gga".
type MQTT struct {
	client publisher
	topic  string
	close  func(quiesce uint)
}

func DialMQTT(broker string, clientID string, topic string) (*MQTT, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetAutoReconnect(true)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("publish.DialMQTT(): %w", token.Error())
	}

	return &MQTT{client: client, topic: topic, close: client.Disconnect}, nil
}

func (m *MQTT) Topic(kind nmea.Type) string {
	return strings.TrimSuffix(m.topic, "/") + "/" + strings.ToLower(kind.String())
}

func (m *MQTT) Publish(kind nmea.Type, payload []byte) error {
	token := m.client.Publish(m.Topic(kind), 0, false, payload)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish.MQTT.Publish(): %w", err)
	}
	return nil
}

func (m *MQTT) Close() {
	if m.close != nil {
		m.close(250)
	}
}
