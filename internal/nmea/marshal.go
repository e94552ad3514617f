// Copyright 2021 Clayton Craft <clayton@craftyguy.net>
// SPDX-License-Identifier: GPL-3.0-or-later

package nmea

import (
	"encoding/json"
	"math"
)

// Enumerations encode as their names in JSON and YAML.

func (t Type) MarshalText() ([]byte, error)          { return []byte(t.String()), nil }
func (d Direction) MarshalText() ([]byte, error)     { return []byte(d.String()), nil }
func (u SpeedUnits) MarshalText() ([]byte, error)    { return []byte(u.String()), nil }
func (u DistanceUnits) MarshalText() ([]byte, error) { return []byte(u.String()), nil }
func (s Status) MarshalText() ([]byte, error)        { return []byte(s.String()), nil }
func (m Mode) MarshalText() ([]byte, error)          { return []byte(m.String()), nil }
func (q FixQuality) MarshalText() ([]byte, error)    { return []byte(q.String()), nil }
func (m SelectionMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }
func (f FixType) MarshalText() ([]byte, error)       { return []byte(f.String()), nil }

// MarshalJSON writes unreported satellite values as null, JSON has no NaN.
func (s Satellite) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		PRN       int      `json:"prn"`
		Elevation *float64 `json:"elevation"`
		Azimuth   *float64 `json:"azimuth"`
		SNR       *float64 `json:"snr"`
	}{
		PRN:       s.PRN,
		Elevation: reported(s.Elevation),
		Azimuth:   reported(s.Azimuth),
		SNR:       reported(s.SNR),
	})
}

func reported(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}
