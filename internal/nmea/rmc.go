// Copyright 2021 Clayton Craft <clayton@craftyguy.net>
// SPDX-License-Identifier: GPL-3.0-or-later

package nmea

import (
	"fmt"
	"time"
)

// RMC is Recommended Minimum Specific GNSS Data.
type RMC struct {
	Talker            string             `json:"talker" yaml:"talker"`
	Time              UTCTime            `json:"time" yaml:"time"`
	Status            Status             `json:"status" yaml:"status"`
	Latitude          *Latitude          `json:"latitude,omitempty" yaml:"latitude,omitempty"`
	Longitude         *Longitude         `json:"longitude,omitempty" yaml:"longitude,omitempty"`
	Speed             *Speed             `json:"speed,omitempty" yaml:"speed,omitempty"`
	Course            *Course            `json:"course,omitempty" yaml:"course,omitempty"`
	Date              *UTCDate           `json:"date,omitempty" yaml:"date,omitempty"`
	MagneticVariation *MagneticVariation `json:"magnetic_variation,omitempty" yaml:"magnetic_variation,omitempty"`
	Mode              *Mode              `json:"mode,omitempty" yaml:"mode,omitempty"`
}

// RMC fields (NMEA 0183 v2.3):
//
//	0: talker+type
//	1: time (hhmmss.ss)
//	2: status (A=valid, V=invalid)
//	3,4: latitude, N/S
//	5,6: longitude, E/W
//	7: speed over ground (knots)
//	8: course over ground (deg)
//	9: date (ddmmyy)
//	10,11: magnetic variation, E/W
//	12: mode, absent before v2.3
func ParseRMC(sample string) (RMC, error) {
	t, err := prepare(sample, TypeRMC)
	if err != nil {
		return RMC{}, err
	}
	if err := t.need(11); err != nil {
		return RMC{}, err
	}

	status, err := ParseStatus(t.list[2])
	if err != nil {
		return RMC{}, err
	}

	return RMC{
		Talker:            talker(t.list[0], TypeRMC),
		Time:              ParseUTCTime(t.list[1]),
		Status:            status,
		Latitude:          ParseLatitude(t.list[3], t.list[4]),
		Longitude:         ParseLongitude(t.list[5], t.list[6]),
		Speed:             ParseSpeed(t.list[7], Knots),
		Course:            ParseCourse(t.list[8]),
		Date:              ParseUTCDate(t.list[9]),
		MagneticVariation: ParseMagneticVariation(t.list[10], t.list[11]),
		Mode:              ParseMode(t.opt(12)),
	}, nil
}

// Timestamp returns the fix time as a time.Time.
func (r RMC) Timestamp() (time.Time, error) {
	if r.Date == nil {
		return time.Time{}, fmt.Errorf("nmea/RMC.Timestamp: %w", InvalidUTCDate)
	}
	return Timestamp(*r.Date, r.Time)
}
