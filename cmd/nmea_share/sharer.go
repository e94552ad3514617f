// Copyright 2021 Clayton Craft <clayton@craftyguy.net>
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"bytes"
	"log"

	"gitlab.com/postmarketOS/gnss_nmea/internal/nmea"
	"gitlab.com/postmarketOS/gnss_nmea/internal/render"
)

type recordPublisher interface {
	Publish(kind nmea.Type, payload []byte) error
}

// sharer decodes sentences and hands the encoded records to every sink.
type sharer struct {
	// kinds to share, nil shares all
	kinds     map[nmea.Type]bool
	format    render.Format
	broadcast chan<- []byte
	mqtt      recordPublisher
}

// handle returns whether line was decoded and shared. Failures are logged,
// a single bad sentence never stops sharing.
func (s *sharer) handle(line []byte) bool {
	sentence, err := nmea.Parse(string(line))
	if err != nil {
		log.Printf("dropping %q: %s\n", line, nmea.ErrorString(err))
		return false
	}

	kind := sentence.Type()
	if s.kinds != nil && !s.kinds[kind] {
		return false
	}

	var buf bytes.Buffer
	if err := render.Encode(&buf, sentence, s.format); err != nil {
		log.Printf("encoding %s: %s\n", kind, err)
		return false
	}
	s.broadcast <- buf.Bytes()

	if s.mqtt != nil {
		payload, err := render.Marshal(sentence, s.format)
		if err != nil {
			log.Printf("encoding %s: %s\n", kind, err)
			return true
		}
		if err := s.mqtt.Publish(kind, payload); err != nil {
			// not fatal, the client reconnects on its own
			log.Printf("publishing %s: %s\n", kind, err)
		}
	}

	return true
}
