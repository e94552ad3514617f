// Copyright 2021 Clayton Craft <clayton@craftyguy.net>
// SPDX-License-Identifier: GPL-3.0-or-later

package nmea

// GSV is GNSS Satellites in View. One sentence holds up to four of the
// satellites of a cycle; sentences are not combined.
type GSV struct {
	Talker           string      `json:"talker" yaml:"talker"`
	TotalMessages    int         `json:"total_messages" yaml:"total_messages"`
	MessageNumber    int         `json:"message_number" yaml:"message_number"`
	SatellitesInView int         `json:"satellites_in_view" yaml:"satellites_in_view"`
	Satellites       []Satellite `json:"satellites" yaml:"satellites"`
}

const gsvGroup = 4

// GSV fields:
//
//	0: talker+type
//	1: total number of messages in the cycle
//	2: message number
//	3: satellites in view
//	4..: groups of PRN, SNR, elevation, azimuth
//
// Groups with an empty PRN are skipped, a trailing partial group is ignored.
func ParseGSV(sample string) (GSV, error) {
	t, err := prepare(sample, TypeGSV)
	if err != nil {
		return GSV{}, err
	}
	if err := t.need(3); err != nil {
		return GSV{}, err
	}

	gsv := GSV{
		Talker:           talker(t.list[0], TypeGSV),
		TotalMessages:    intOrZero(t.list[1]),
		MessageNumber:    intOrZero(t.list[2]),
		SatellitesInView: intOrZero(t.list[3]),
		Satellites:       []Satellite{},
	}

	for i := 4; i+gsvGroup-1 < t.len(); i += gsvGroup {
		if sat := ParseSatellite(t.list[i], t.list[i+1], t.list[i+2], t.list[i+3]); sat != nil {
			gsv.Satellites = append(gsv.Satellites, *sat)
		}
	}

	return gsv, nil
}
