// Copyright 2021 Clayton Craft <clayton@craftyguy.net>
// SPDX-License-Identifier: GPL-3.0-or-later

package nmea

import (
	"fmt"
	"strings"
)

const absent = "--"

// Format renders s as "Label: value" lines for humans. The layout is not a
// stable machine format.
func Format(s Sentence) string {
	f := &formatter{}
	s.Accept(f)
	return f.String()
}

type formatter struct {
	strings.Builder
}

func (f *formatter) line(label string, value any) {
	fmt.Fprintf(f, "%s: %v\n", label, value)
}

func (f *formatter) header(kind Type, talker string) {
	f.line("Type", kind)
	if talker != "" {
		f.line("Talker", talker)
	}
}

func (f *formatter) satellites(sats []Satellite) {
	f.WriteString("Satellites:\n")
	for _, s := range sats {
		fmt.Fprintf(f, "  %s\n", s)
	}
}

// opt renders a possibly absent value.
func opt[T fmt.Stringer](v *T) string {
	if v == nil {
		return absent
	}
	return (*v).String()
}

func (f *formatter) VisitGGA(s GGA) {
	f.header(TypeGGA, s.Talker)
	f.line("UTC Time", s.Time)
	f.line("Latitude", opt(s.Latitude))
	f.line("Longitude", opt(s.Longitude))
	f.line("Fix Quality", s.FixQuality)
	f.line("Number of Satellites", s.NumSatellites)
	f.line("HDOP", s.HDOP)
	f.line("Altitude", opt(s.Altitude))
	f.line("Geoid Separation", opt(s.GeoidSeparation))
	age := absent
	if s.AgeOfDgps != nil {
		age = fmt.Sprintf("%g", s.AgeOfDgps.Seconds)
	}
	f.line("Age of DGPS", age)
	station := absent
	if s.DgpsStationID != nil {
		station = fmt.Sprintf("%d", *s.DgpsStationID)
	}
	f.line("DGPS Station ID", station)
}

func (f *formatter) VisitGLL(s GLL) {
	f.header(TypeGLL, s.Talker)
	f.line("Latitude", opt(s.Latitude))
	f.line("Longitude", opt(s.Longitude))
	f.line("UTC Time", s.Time)
	f.line("Status", s.Status)
	f.line("Mode", opt(s.Mode))
}

func (f *formatter) VisitGSA(s GSA) {
	f.header(TypeGSA, s.Talker)
	f.line("Selection Mode", s.SelectionMode)
	f.line("Fix Type", s.FixType)
	f.satellites(s.Satellites)
	f.line("DOP", opt(s.DOP))
}

func (f *formatter) VisitGSV(s GSV) {
	f.header(TypeGSV, s.Talker)
	f.line("Total Messages", s.TotalMessages)
	f.line("Message Number", s.MessageNumber)
	f.line("Satellites in View", s.SatellitesInView)
	f.satellites(s.Satellites)
}

func (f *formatter) VisitRMC(s RMC) {
	f.header(TypeRMC, s.Talker)
	f.line("Status", s.Status)
	date := "--/--/--"
	if s.Date != nil {
		date = s.Date.String()
	}
	f.line("UTC Date", date)
	f.line("UTC Time", s.Time)
	f.line("Latitude", opt(s.Latitude))
	f.line("Longitude", opt(s.Longitude))
	f.line("Speed", opt(s.Speed))
	f.line("Course", opt(s.Course))
	f.line("Magnetic Variation", opt(s.MagneticVariation))
	f.line("Mode", opt(s.Mode))
}

func (f *formatter) VisitVTG(s VTG) {
	f.header(TypeVTG, s.Talker)
	f.line("Course True", opt(s.CourseTrue))
	f.line("Course Magnetic", opt(s.CourseMagnetic))
	f.line("Speed", opt(s.SpeedKnots))
	f.line("Speed", opt(s.SpeedKmh))
	f.line("Mode", opt(s.Mode))
}

func (f *formatter) VisitZDA(s ZDA) {
	f.header(TypeZDA, s.Talker)
	f.line("UTC Time", s.Time)
	f.line("Day", s.Day)
	f.line("Month", s.Month)
	f.line("Year", s.Year)
	f.line("Local Zone Hours", s.LocalZoneHours)
	f.line("Local Zone Minutes", s.LocalZoneMinutes)
}
