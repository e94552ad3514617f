// Copyright 2021 Clayton Craft <clayton@craftyguy.net>
// SPDX-License-Identifier: GPL-3.0-or-later

package nmea

import (
	"errors"
	"fmt"
)

// ParseError is the error taxonomy returned by every decoding step. Values
// may be wrapped with context, use errors.Is to test for them.
type ParseError int

const (
	InvalidDirection ParseError = iota
	InvalidFormat
	MissingFields
	UnknownError
	UnsupportedType
	InvalidLatitude
	InvalidLongitude
	InvalidSpeed
	InvalidCourse
	InvalidUTCDate
	InvalidUTCTime
	InvalidMagneticVariation
	InvalidMode
)

var parseErrorNames = map[ParseError]string{
	InvalidDirection:         "Invalid Direction",
	InvalidFormat:            "Invalid Format",
	MissingFields:            "Missing Fields",
	UnknownError:             "Unknown Error",
	UnsupportedType:          "Unsupported Type",
	InvalidLatitude:          "Invalid Latitude",
	InvalidLongitude:         "Invalid Longitude",
	InvalidSpeed:             "Invalid Speed",
	InvalidCourse:            "Invalid Course",
	InvalidUTCDate:           "Invalid UTC Date",
	InvalidUTCTime:           "Invalid UTC Time",
	InvalidMagneticVariation: "Invalid Magnetic Variation",
	InvalidMode:              "Invalid Mode",
}

func (e ParseError) String() string {
	if name, ok := parseErrorNames[e]; ok {
		return name
	}
	return "--"
}

func (e ParseError) Error() string {
	return e.String()
}

// ErrorString returns the taxonomy name of err when it is (or wraps) a
// ParseError, and err.Error() otherwise.
func ErrorString(err error) string {
	if err == nil {
		return ""
	}
	var pe ParseError
	if errors.As(err, &pe) {
		return pe.String()
	}
	return err.Error()
}

// errToken reports a required token that is missing from the sentence.
func errToken(kind Type, index int, count int) error {
	return fmt.Errorf("nmea/%s: token %d of %d: %w", kind, index, count, MissingFields)
}
