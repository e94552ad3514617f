// Copyright 2021 Clayton Craft <clayton@craftyguy.net>
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"gitlab.com/postmarketOS/gnss_nmea/internal/nmea"
)

type Format int

const (
	Text Format = iota
	JSON
	YAML
)

func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	}
	return "unknown"
}

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return Text, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return Text, fmt.Errorf("render.ParseFormat(): unknown format %q", s)
}

// envelope tags the record with its kind, the record itself carries none.
type envelope struct {
	Type nmea.Type     `json:"type" yaml:"type"`
	Data nmea.Sentence `json:"data" yaml:"data"`
}

// Marshal encodes s in the given format. JSON is a single line without a
// trailing newline, YAML and text end with one.
func Marshal(s nmea.Sentence, f Format) (out []byte, err error) {
	switch f {
	case Text:
		out = []byte(nmea.Format(s))
	case JSON:
		out, err = json.Marshal(envelope{Type: s.Type(), Data: s})
	case YAML:
		out, err = yaml.Marshal(envelope{Type: s.Type(), Data: s})
	default:
		err = fmt.Errorf("render.Marshal(): unknown format %d", f)
	}
	if err != nil {
		err = fmt.Errorf("render.Marshal(): %w", err)
	}
	return
}

// Encode writes s to w. Consecutive records are separated the way each
// format expects: JSON one per line, YAML as documents, text by a blank
// line.
func Encode(w io.Writer, s nmea.Sentence, f Format) error {
	out, err := Marshal(s, f)
	if err != nil {
		return err
	}

	switch f {
	case JSON:
		out = append(out, '\n')
	case YAML:
		out = append([]byte("---\n"), out...)
	case Text:
		out = append(out, '\n')
	}

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("render.Encode(): %w", err)
	}
	return nil
}
