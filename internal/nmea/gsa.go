// Copyright 2021 Clayton Craft <clayton@craftyguy.net>
// SPDX-License-Identifier: GPL-3.0-or-later

package nmea

// GSA is GNSS DOP and Active Satellites. Satellites carry only a PRN, the
// other values are NaN.
type GSA struct {
	Talker        string        `json:"talker" yaml:"talker"`
	SelectionMode SelectionMode `json:"selection_mode" yaml:"selection_mode"`
	FixType       FixType       `json:"fix_type" yaml:"fix_type"`
	Satellites    []Satellite   `json:"satellites" yaml:"satellites"`
	DOP           *DOP          `json:"dop,omitempty" yaml:"dop,omitempty"`
}

const (
	gsaFirstPRN = 3
	gsaLastPRN  = 14
	gsaDOP      = 15
)

// GSA fields:
//
//	0: talker+type
//	1: selection mode (M/A)
//	2: fix type (1/2/3)
//	3-14: PRNs of satellites used, up to 12
//	15,16,17: PDOP, HDOP, VDOP
func ParseGSA(sample string) (GSA, error) {
	t, err := prepare(sample, TypeGSA)
	if err != nil {
		return GSA{}, err
	}
	if err := t.need(2); err != nil {
		return GSA{}, err
	}

	selection, err := ParseSelectionMode(t.list[1])
	if err != nil {
		return GSA{}, err
	}
	fix, err := ParseFixType(t.list[2])
	if err != nil {
		return GSA{}, err
	}

	gsa := GSA{
		Talker:        talker(t.list[0], TypeGSA),
		SelectionMode: selection,
		FixType:       fix,
		Satellites:    []Satellite{},
	}

	for i := gsaFirstPRN; i <= gsaLastPRN && i < t.len(); i++ {
		if sat := ParseSatellite(t.list[i], "", "", ""); sat != nil {
			gsa.Satellites = append(gsa.Satellites, *sat)
		}
	}

	if t.len() >= gsaDOP+3 {
		gsa.DOP = ParseDOP(t.list[gsaDOP], t.list[gsaDOP+1], t.list[gsaDOP+2])
	}

	return gsa, nil
}
