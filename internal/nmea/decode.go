// Copyright 2021 Clayton Craft <clayton@craftyguy.net>
// SPDX-License-Identifier: GPL-3.0-or-later

package nmea

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Field decoders. Optional values come back as nil pointers when the token
// is empty or cannot be decoded; only numeric parsing and the single letter
// or digit codes that have no "absent" state return errors.

// ParseNumeric parses a floating point token.
func ParseNumeric(token string) (float64, error) {
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, fmt.Errorf("nmea.ParseNumeric: %q: %w", token, MissingFields)
	}
	return v, nil
}

// ParseCoordinate returns the numeric token divided by 100, so ddmm.mmmm
// becomes dd.mmmmmm. Minutes are not converted to fractional degrees.
func ParseCoordinate(token string) (float64, error) {
	v, err := ParseNumeric(token)
	if err != nil {
		return 0, err
	}
	return v / 100.0, nil
}

func parseLatitudeDirection(token string) (Direction, error) {
	switch token {
	case "N":
		return North, nil
	case "S":
		return South, nil
	}
	return 0, InvalidDirection
}

func parseLongitudeDirection(token string) (Direction, error) {
	switch token {
	case "E":
		return East, nil
	case "W":
		return West, nil
	}
	return 0, InvalidDirection
}

func parseCoordinatePair(value, direction string, hemisphere func(string) (Direction, error)) *Coordinate {
	if value == "" || direction == "" {
		return nil
	}
	deg, err := ParseCoordinate(value)
	if err != nil {
		return nil
	}
	dir, err := hemisphere(direction)
	if err != nil {
		return nil
	}
	return &Coordinate{Degrees: deg, Direction: dir}
}

func ParseLatitude(value, direction string) *Latitude {
	return parseCoordinatePair(value, direction, parseLatitudeDirection)
}

func ParseLongitude(value, direction string) *Longitude {
	return parseCoordinatePair(value, direction, parseLongitudeDirection)
}

// ParseMagneticVariation decodes a variation with an E/W hemisphere the same
// way as a longitude, so the value is divided by 100 as well.
func ParseMagneticVariation(value, direction string) *MagneticVariation {
	return parseCoordinatePair(value, direction, parseLongitudeDirection)
}

// ParseSpeed decodes a speed token given in knots and returns it converted
// to units.
func ParseSpeed(token string, units SpeedUnits) *Speed {
	if token == "" {
		return nil
	}
	v, err := ParseNumeric(token)
	if err != nil {
		return nil
	}
	switch units {
	case MetersPerSecond:
		v *= KnotsToMetersPerSecond
	case KilometersPerHour:
		v *= KnotsToKilometersPerHour
	}
	return &Speed{Value: v, Unit: units}
}

// parseSpeedIn tags a token that is already expressed in units.
func parseSpeedIn(token string, units SpeedUnits) *Speed {
	if token == "" {
		return nil
	}
	v, err := ParseNumeric(token)
	if err != nil {
		return nil
	}
	return &Speed{Value: v, Unit: units}
}

func ParseCourse(token string) *Course {
	if token == "" {
		return nil
	}
	v, err := ParseNumeric(token)
	if err != nil {
		return nil
	}
	return &Course{Degrees: v}
}

func parseDistanceUnits(token string) (DistanceUnits, error) {
	switch token {
	case "M":
		return Meters, nil
	case "KM":
		return Kilometers, nil
	case "FT":
		return Feet, nil
	}
	return 0, UnsupportedType
}

func parseDistance(value, units string) *Measure[DistanceUnits] {
	if value == "" || units == "" {
		return nil
	}
	v, err := ParseNumeric(value)
	if err != nil {
		return nil
	}
	u, err := parseDistanceUnits(units)
	if err != nil {
		return nil
	}
	return &Measure[DistanceUnits]{Value: v, Unit: u}
}

func ParseAltitude(value, units string) *Altitude {
	return parseDistance(value, units)
}

func ParseGeoidSeparation(value, units string) *GeoidSeparation {
	return parseDistance(value, units)
}

func ParseAgeOfDgps(token string) *AgeOfDgps {
	if token == "" {
		return nil
	}
	v, err := ParseNumeric(token)
	if err != nil {
		return nil
	}
	return &AgeOfDgps{Seconds: v}
}

func ParseDgpsStationID(token string) *DgpsStationID {
	if token == "" {
		return nil
	}
	v, err := ParseNumeric(token)
	if err != nil {
		return nil
	}
	id := DgpsStationID(int(v))
	return &id
}

// ParseMode decodes the first letter of a mode indicator. Letters other
// than A, D, E and N yield nil.
func ParseMode(token string) *Mode {
	if token == "" {
		return nil
	}
	var m Mode
	switch token[0] {
	case 'A':
		m = ModeAutonomous
	case 'D':
		m = ModeDifferential
	case 'E':
		m = ModeEstimated
	case 'N':
		m = ModeNotValid
	default:
		return nil
	}
	return &m
}

func ParseStatus(token string) (Status, error) {
	if token != "" {
		switch token[0] {
		case 'A':
			return StatusValid, nil
		case 'V':
			return StatusInvalid, nil
		}
	}
	return 0, fmt.Errorf("nmea.ParseStatus: %q: %w", token, InvalidMode)
}

func ParseFixQuality(token string) (FixQuality, error) {
	if len(token) == 1 && token[0] >= '0' && token[0] <= '8' {
		return FixQuality(token[0] - '0'), nil
	}
	return 0, fmt.Errorf("nmea.ParseFixQuality: %q: %w", token, InvalidMode)
}

func ParseSelectionMode(token string) (SelectionMode, error) {
	switch token {
	case "M":
		return SelectionManual, nil
	case "A":
		return SelectionAutomatic, nil
	}
	return 0, fmt.Errorf("nmea.ParseSelectionMode: %q: %w", token, InvalidMode)
}

func ParseFixType(token string) (FixType, error) {
	switch token {
	case "1":
		return FixNone, nil
	case "2":
		return Fix2D, nil
	case "3":
		return Fix3D, nil
	}
	return 0, fmt.Errorf("nmea.ParseFixType: %q: %w", token, InvalidMode)
}

// ParseDOP returns nil unless all three values are present and numeric.
func ParseDOP(pdop, hdop, vdop string) *DOP {
	if pdop == "" || hdop == "" || vdop == "" {
		return nil
	}
	p, errP := ParseNumeric(pdop)
	h, errH := ParseNumeric(hdop)
	v, errV := ParseNumeric(vdop)
	if errP != nil || errH != nil || errV != nil {
		return nil
	}
	return &DOP{PDOP: p, HDOP: h, VDOP: v}
}

// ParseSatellite requires a numeric PRN. The remaining values are NaN when
// blank or not numeric.
func ParseSatellite(prn, snr, elevation, azimuth string) *Satellite {
	if prn == "" {
		return nil
	}
	id, err := ParseNumeric(prn)
	if err != nil {
		return nil
	}
	return &Satellite{
		PRN:       int(id),
		SNR:       numericOrNaN(snr),
		Elevation: numericOrNaN(elevation),
		Azimuth:   numericOrNaN(azimuth),
	}
}

func numericOrNaN(token string) float64 {
	v, err := ParseNumeric(token)
	if err != nil {
		return math.NaN()
	}
	return v
}

// slice2 returns the two characters of s starting at i, fewer when s is
// shorter.
func slice2(s string, i int) string {
	if i >= len(s) {
		return ""
	}
	end := i + 2
	if end > len(s) {
		end = len(s)
	}
	return strings.Clone(s[i:end])
}

// ParseUTCTime splits hhmmss[.ss] into its components. Short input gives
// short or empty components rather than an error.
func ParseUTCTime(token string) UTCTime {
	return UTCTime{
		Hours:   slice2(token, 0),
		Minutes: slice2(token, 2),
		Seconds: slice2(token, 4),
	}
}

// ParseUTCDate splits ddmmyy, nil when the token is shorter than 6 characters.
func ParseUTCDate(token string) *UTCDate {
	if len(token) < 6 {
		return nil
	}
	return &UTCDate{
		Day:   slice2(token, 0),
		Month: slice2(token, 2),
		Year:  slice2(token, 4),
	}
}

// ParseType finds a known sentence code anywhere in token, checking codes
// in dispatch priority order.
func ParseType(token string) (Type, error) {
	for _, t := range types {
		if strings.Contains(token, t.String()) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("nmea.ParseType: %q: %w", token, UnsupportedType)
}

// intOrZero parses an integer count, 0 when empty or not numeric.
func intOrZero(token string) int {
	v, err := ParseNumeric(token)
	if err != nil {
		return 0
	}
	return int(v)
}

func floatOrZero(token string) float64 {
	v, err := ParseNumeric(token)
	if err != nil {
		return 0
	}
	return v
}
