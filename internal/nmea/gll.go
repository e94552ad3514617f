// Copyright 2021 Clayton Craft <clayton@craftyguy.net>
// SPDX-License-Identifier: GPL-3.0-or-later

package nmea

// GLL is Geographic Position, Latitude/Longitude.
type GLL struct {
	Talker    string     `json:"talker" yaml:"talker"`
	Latitude  *Latitude  `json:"latitude,omitempty" yaml:"latitude,omitempty"`
	Longitude *Longitude `json:"longitude,omitempty" yaml:"longitude,omitempty"`
	Time      UTCTime    `json:"time" yaml:"time"`
	Status    Status     `json:"status" yaml:"status"`
	Mode      *Mode      `json:"mode,omitempty" yaml:"mode,omitempty"`
}

// GLL fields:
//
//	0: talker+type
//	1,2: latitude, N/S
//	3,4: longitude, E/W
//	5: time
//	6: status (A/V)
//	7: mode, NMEA 2.3 and later only
func ParseGLL(sample string) (GLL, error) {
	t, err := prepare(sample, TypeGLL)
	if err != nil {
		return GLL{}, err
	}
	if err := t.need(6); err != nil {
		return GLL{}, err
	}

	status, err := ParseStatus(t.list[6])
	if err != nil {
		return GLL{}, err
	}

	return GLL{
		Talker:    talker(t.list[0], TypeGLL),
		Latitude:  ParseLatitude(t.list[1], t.list[2]),
		Longitude: ParseLongitude(t.list[3], t.list[4]),
		Time:      ParseUTCTime(t.list[5]),
		Status:    status,
		Mode:      ParseMode(t.opt(7)),
	}, nil
}
