// Copyright 2021 Clayton Craft <clayton@craftyguy.net>
// SPDX-License-Identifier: GPL-3.0-or-later

package nmea

// GGA is Global Positioning System Fix Data.
type GGA struct {
	Talker          string           `json:"talker" yaml:"talker"`
	Time            UTCTime          `json:"time" yaml:"time"`
	Latitude        *Latitude        `json:"latitude,omitempty" yaml:"latitude,omitempty"`
	Longitude       *Longitude       `json:"longitude,omitempty" yaml:"longitude,omitempty"`
	FixQuality      FixQuality       `json:"fix_quality" yaml:"fix_quality"`
	NumSatellites   int              `json:"num_satellites" yaml:"num_satellites"`
	HDOP            float64          `json:"hdop" yaml:"hdop"`
	Altitude        *Altitude        `json:"altitude,omitempty" yaml:"altitude,omitempty"`
	GeoidSeparation *GeoidSeparation `json:"geoid_separation,omitempty" yaml:"geoid_separation,omitempty"`
	AgeOfDgps       *AgeOfDgps       `json:"age_of_dgps,omitempty" yaml:"age_of_dgps,omitempty"`
	DgpsStationID   *DgpsStationID   `json:"dgps_station_id,omitempty" yaml:"dgps_station_id,omitempty"`
}

// GGA fields:
//
//	0: talker+type
//	1: time (hhmmss.ss)
//	2,3: latitude, N/S
//	4,5: longitude, E/W
//	6: fix quality (0-8)
//	7: satellites in use
//	8: HDOP
//	9,10: altitude, units
//	11,12: geoid separation, units
//	13: age of DGPS data
//	14: DGPS station id
//
// An empty satellite count or HDOP decodes as 0.
func ParseGGA(sample string) (GGA, error) {
	t, err := prepare(sample, TypeGGA)
	if err != nil {
		return GGA{}, err
	}
	if err := t.need(14); err != nil {
		return GGA{}, err
	}

	quality, err := ParseFixQuality(t.list[6])
	if err != nil {
		return GGA{}, err
	}

	return GGA{
		Talker:          talker(t.list[0], TypeGGA),
		Time:            ParseUTCTime(t.list[1]),
		Latitude:        ParseLatitude(t.list[2], t.list[3]),
		Longitude:       ParseLongitude(t.list[4], t.list[5]),
		FixQuality:      quality,
		NumSatellites:   intOrZero(t.list[7]),
		HDOP:            floatOrZero(t.list[8]),
		Altitude:        ParseAltitude(t.list[9], t.list[10]),
		GeoidSeparation: ParseGeoidSeparation(t.list[11], t.list[12]),
		AgeOfDgps:       ParseAgeOfDgps(t.list[13]),
		DgpsStationID:   ParseDgpsStationID(t.list[14]),
	}, nil
}
