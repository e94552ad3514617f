// Copyright 2021 Clayton Craft <clayton@craftyguy.net>
// SPDX-License-Identifier: GPL-3.0-or-later

package nmea

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ZDA is Time & Date. Missing date and zone fields decode as 0.
type ZDA struct {
	Talker           string  `json:"talker" yaml:"talker"`
	Time             UTCTime `json:"time" yaml:"time"`
	Day              int     `json:"day" yaml:"day"`
	Month            int     `json:"month" yaml:"month"`
	Year             int     `json:"year" yaml:"year"`
	LocalZoneHours   int     `json:"local_zone_hours" yaml:"local_zone_hours"`
	LocalZoneMinutes int     `json:"local_zone_minutes" yaml:"local_zone_minutes"`

	// set when the hours token carries a '-', which "-00" loses
	zoneNegative bool
}

func ParseZDA(sample string) (ZDA, error) {
	t, err := prepare(sample, TypeZDA)
	if err != nil {
		return ZDA{}, err
	}
	if err := t.need(1); err != nil {
		return ZDA{}, err
	}

	return ZDA{
		Talker:           talker(t.list[0], TypeZDA),
		Time:             ParseUTCTime(t.list[1]),
		Day:              intOrZero(t.opt(2)),
		Month:            intOrZero(t.opt(3)),
		Year:             intOrZero(t.opt(4)),
		LocalZoneHours:   intOrZero(t.opt(5)),
		LocalZoneMinutes: intOrZero(t.opt(6)),
		zoneNegative:     strings.HasPrefix(strings.TrimSpace(t.opt(5)), "-"),
	}, nil
}

// Timestamp returns the UTC date and time of the sentence. Fractional
// seconds are dropped.
func (z ZDA) Timestamp() (time.Time, error) {
	if z.Month < 1 || z.Month > 12 || z.Day < 1 || z.Day > 31 {
		return time.Time{}, fmt.Errorf("nmea/ZDA.Timestamp: %d-%d-%d: %w", z.Year, z.Month, z.Day, InvalidUTCDate)
	}
	hour, errH := strconv.Atoi(z.Time.Hours)
	minute, errM := strconv.Atoi(z.Time.Minutes)
	sec, errS := strconv.Atoi(z.Time.Seconds)
	if errH != nil || errM != nil || errS != nil {
		return time.Time{}, fmt.Errorf("nmea/ZDA.Timestamp: %q: %w", z.Time.String(), InvalidUTCTime)
	}
	return time.Date(z.Year, time.Month(z.Month), z.Day, hour, minute, sec, 0, time.UTC), nil
}

// Zone returns the local time zone offset as a fixed zone. The minutes take
// the sign of the hours, including a decoded "-00".
func (z ZDA) Zone() *time.Location {
	hours, sign := z.LocalZoneHours, "+"
	if hours < 0 || z.zoneNegative {
		sign = "-"
		if hours < 0 {
			hours = -hours
		}
	}
	offset := hours*3600 + z.LocalZoneMinutes*60
	if sign == "-" {
		offset = -offset
	}
	return time.FixedZone(fmt.Sprintf("UTC%s%02d:%02d", sign, hours, z.LocalZoneMinutes), offset)
}
