// Copyright 2021 Clayton Craft <clayton@craftyguy.net>
// SPDX-License-Identifier: GPL-3.0-or-later

package nmea

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Type identifies one of the supported sentence kinds.
type Type int

const (
	TypeGGA Type = iota // Global Positioning System Fix Data
	TypeGLL             // Geographic Position, Latitude/Longitude
	TypeGSA             // GNSS DOP and Active Satellites
	TypeGSV             // GNSS Satellites in View
	TypeRMC             // Recommended Minimum Specific GNSS Data
	TypeVTG             // Track Made Good and Ground Speed
	TypeZDA             // Time & Date
)

// types lists the sentence codes in dispatch priority order.
var types = []Type{TypeGGA, TypeGLL, TypeGSA, TypeGSV, TypeRMC, TypeVTG, TypeZDA}

func (t Type) String() string {
	switch t {
	case TypeGGA:
		return "GGA"
	case TypeGLL:
		return "GLL"
	case TypeGSA:
		return "GSA"
	case TypeGSV:
		return "GSV"
	case TypeRMC:
		return "RMC"
	case TypeVTG:
		return "VTG"
	case TypeZDA:
		return "ZDA"
	}
	return "--"
}

type Direction int

const (
	North Direction = iota
	South
	East
	West
)

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	}
	return "--"
}

// Unit is implemented by the unit enumerations usable in a Measure.
type Unit interface {
	comparable
	fmt.Stringer
	// base is the size of one unit expressed in the family's base unit.
	base() float64
}

type SpeedUnits int

const (
	MetersPerSecond SpeedUnits = iota
	KilometersPerHour
	Knots
)

// Knots to m/s and km/h factors as used when decoding speed fields.
const (
	KnotsToMetersPerSecond   = 0.514444444
	KnotsToKilometersPerHour = 1.85
)

func (u SpeedUnits) String() string {
	switch u {
	case MetersPerSecond:
		return "m/s"
	case KilometersPerHour:
		return "km/h"
	case Knots:
		return "knots"
	}
	return "--"
}

func (u SpeedUnits) base() float64 {
	switch u {
	case KilometersPerHour:
		return 1 / 3.6
	case Knots:
		return 1852.0 / 3600.0
	}
	return 1
}

type DistanceUnits int

const (
	Meters DistanceUnits = iota
	Kilometers
	Feet
)

func (u DistanceUnits) String() string {
	switch u {
	case Meters:
		return "m"
	case Kilometers:
		return "km"
	case Feet:
		return "ft"
	}
	return "--"
}

func (u DistanceUnits) base() float64 {
	switch u {
	case Kilometers:
		return 1000
	case Feet:
		return 0.3048
	}
	return 1
}

// Measure is a value tagged with the unit it is expressed in. The value is
// never normalized, use In to convert.
type Measure[U Unit] struct {
	Value float64 `json:"value" yaml:"value"`
	Unit  U       `json:"unit" yaml:"unit"`
}

// In returns the value converted to unit u.
func (m Measure[U]) In(u U) float64 {
	if m.Unit == u {
		return m.Value
	}
	return m.Value * m.Unit.base() / u.base()
}

func (m Measure[U]) String() string {
	return fmt.Sprintf("%g %s", m.Value, m.Unit)
}

type (
	Speed           = Measure[SpeedUnits]
	Altitude        = Measure[DistanceUnits]
	GeoidSeparation = Measure[DistanceUnits]
)

// Coordinate is an unsigned angle and the hemisphere it lies in.
type Coordinate struct {
	Degrees   float64   `json:"degrees" yaml:"degrees"`
	Direction Direction `json:"direction" yaml:"direction"`
}

type (
	Latitude          = Coordinate
	Longitude         = Coordinate
	MagneticVariation = Coordinate
)

// Value returns the signed angle in degrees, negative south and west.
func (c Coordinate) Value() float64 {
	if c.Direction == South || c.Direction == West {
		return -c.Degrees
	}
	return c.Degrees
}

func (c Coordinate) Radians() float64 {
	return c.Value() * math.Pi / 180.0
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%g %s", c.Degrees, c.Direction)
}

type Course struct {
	Degrees float64 `json:"degrees" yaml:"degrees"`
}

func (c Course) Radians() float64 {
	return c.Degrees * math.Pi / 180.0
}

func (c Course) String() string {
	return fmt.Sprintf("%g", c.Degrees)
}

// UTCTime holds the hour, minute and second digits of a hhmmss[.ss] field.
// Fractional seconds are not kept.
type UTCTime struct {
	Hours   string `json:"hours" yaml:"hours"`
	Minutes string `json:"minutes" yaml:"minutes"`
	Seconds string `json:"seconds" yaml:"seconds"`
}

// Valid reports whether all three components are present.
func (t UTCTime) Valid() bool {
	return t.Hours != "" && t.Minutes != "" && t.Seconds != ""
}

func (t UTCTime) String() string {
	if !t.Valid() {
		return "--:--:--"
	}
	return fmt.Sprintf("%s:%s:%s", t.Hours, t.Minutes, t.Seconds)
}

// UTCDate holds the day, month and two digit year of a ddmmyy field.
type UTCDate struct {
	Day   string `json:"day" yaml:"day"`
	Month string `json:"month" yaml:"month"`
	Year  string `json:"year" yaml:"year"`
}

func (d UTCDate) String() string {
	return fmt.Sprintf("%s/%s/%s", d.Day, d.Month, d.Year)
}

// Timestamp combines a date and a time of day into a UTC time.Time. Two
// digit years are placed in 2000-2099.
func Timestamp(d UTCDate, t UTCTime) (time.Time, error) {
	day, errD := strconv.Atoi(d.Day)
	month, errM := strconv.Atoi(d.Month)
	year, errY := strconv.Atoi(d.Year)
	if errD != nil || errM != nil || errY != nil || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("nmea.Timestamp: %q: %w", d.String(), InvalidUTCDate)
	}

	hour, errH := strconv.Atoi(t.Hours)
	minute, errMin := strconv.Atoi(t.Minutes)
	sec, errS := strconv.Atoi(t.Seconds)
	if errH != nil || errMin != nil || errS != nil || hour > 23 || minute > 59 || sec > 60 {
		return time.Time{}, fmt.Errorf("nmea.Timestamp: %q: %w", t.String(), InvalidUTCTime)
	}

	return time.Date(2000+year, time.Month(month), day, hour, minute, sec, 0, time.UTC), nil
}

type AgeOfDgps struct {
	Seconds float64 `json:"seconds" yaml:"seconds"`
}

func (a AgeOfDgps) Minutes() float64 {
	return a.Seconds / 60.0
}

type DgpsStationID int

// Satellite is a satellite entry of a GSA or GSV sentence. Elevation,
// Azimuth and SNR are NaN when the receiver did not report them.
type Satellite struct {
	PRN       int     `json:"prn" yaml:"prn"`
	Elevation float64 `json:"elevation" yaml:"elevation"`
	Azimuth   float64 `json:"azimuth" yaml:"azimuth"`
	SNR       float64 `json:"snr" yaml:"snr"`
}

func (s Satellite) String() string {
	return fmt.Sprintf("PRN: %d, SNR: %g, Elevation: %g, Azimuth: %g", s.PRN, s.SNR, s.Elevation, s.Azimuth)
}

// DOP holds the position, horizontal and vertical dilution of precision.
type DOP struct {
	PDOP float64 `json:"pdop" yaml:"pdop"`
	HDOP float64 `json:"hdop" yaml:"hdop"`
	VDOP float64 `json:"vdop" yaml:"vdop"`
}

func (d DOP) String() string {
	return fmt.Sprintf("PDOP: %g, HDOP: %g, VDOP: %g", d.PDOP, d.HDOP, d.VDOP)
}

type Status int

const (
	StatusValid Status = iota
	StatusInvalid
)

func (s Status) String() string {
	switch s {
	case StatusValid:
		return "Valid"
	case StatusInvalid:
		return "Invalid"
	}
	return "--"
}

// Mode is the positioning system mode indicator (NMEA 2.3 and later). Only
// Autonomous, Differential, Estimated and NotValid are produced by decoding.
type Mode int

const (
	ModeAutonomous Mode = iota
	ModeDifferential
	ModeEstimated
	ModeManualInput
	ModeSimulation
	ModeNotValid
	ModePrecise
	ModeRTKFixed
	ModeRTKFloat
	ModeUncalibrated
)

func (m Mode) String() string {
	switch m {
	case ModeAutonomous:
		return "Autonomous"
	case ModeDifferential:
		return "Differential"
	case ModeEstimated:
		return "Estimated"
	case ModeManualInput:
		return "Manual Input"
	case ModeSimulation:
		return "Simulation"
	case ModeNotValid:
		return "Not Valid"
	case ModePrecise:
		return "Precise"
	case ModeRTKFixed:
		return "RTK Fixed"
	case ModeRTKFloat:
		return "RTK Float"
	case ModeUncalibrated:
		return "Uncalibrated"
	}
	return "--"
}

type FixQuality int

const (
	FixInvalid FixQuality = iota
	FixGPS
	FixDGPS
	FixPPS
	FixRealTimeKinematic
	FixFloatRTK
	FixEstimated
	FixManualInput
	FixSimulation
)

func (q FixQuality) String() string {
	switch q {
	case FixInvalid:
		return "Invalid"
	case FixGPS:
		return "GPS"
	case FixDGPS:
		return "DGPS"
	case FixPPS:
		return "PPS"
	case FixRealTimeKinematic:
		return "Real Time Kinematic"
	case FixFloatRTK:
		return "Float RTK"
	case FixEstimated:
		return "Estimated"
	case FixManualInput:
		return "Manual Input"
	case FixSimulation:
		return "Simulation"
	}
	return "--"
}

// SelectionMode is GSA mode 1, manual or automatic 2D/3D selection.
type SelectionMode int

const (
	SelectionManual SelectionMode = iota
	SelectionAutomatic
)

func (m SelectionMode) String() string {
	switch m {
	case SelectionManual:
		return "Manual"
	case SelectionAutomatic:
		return "Automatic"
	}
	return "--"
}

// FixType is GSA mode 2.
type FixType int

const (
	FixNone FixType = iota
	Fix2D
	Fix3D
)

func (f FixType) String() string {
	switch f {
	case FixNone:
		return "None"
	case Fix2D:
		return "2D"
	case Fix3D:
		return "3D"
	}
	return "--"
}
