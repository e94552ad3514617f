// Copyright 2021 Clayton Craft <clayton@craftyguy.net>
// SPDX-License-Identifier: GPL-3.0-or-later

package nmea

import (
	"fmt"
	"strings"
)

// Parse identifies the kind of sample and decodes it. Only the identifier
// field (up to the first ',' or '*') is searched for the sentence code, so
// a code appearing in the data fields is never matched.
func Parse(sample string) (Sentence, error) {
	id := sample
	if i := strings.IndexAny(id, ",*"); i >= 0 {
		id = id[:i]
	}

	kind, err := ParseType(id)
	if err != nil {
		return nil, fmt.Errorf("nmea.Parse: %w", UnsupportedType)
	}

	var s Sentence
	switch kind {
	case TypeGGA:
		s, err = ParseGGA(sample)
	case TypeGLL:
		s, err = ParseGLL(sample)
	case TypeGSA:
		s, err = ParseGSA(sample)
	case TypeGSV:
		s, err = ParseGSV(sample)
	case TypeRMC:
		s, err = ParseRMC(sample)
	case TypeVTG:
		s, err = ParseVTG(sample)
	case TypeZDA:
		s, err = ParseZDA(sample)
	default:
		return nil, fmt.Errorf("nmea.Parse: %s: %w", kind, UnsupportedType)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
