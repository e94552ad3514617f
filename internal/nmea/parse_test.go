// Copyright 2021 Clayton Craft <clayton@craftyguy.net>
// SPDX-License-Identifier: GPL-3.0-or-later

package nmea

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_GGA(t *testing.T) {
	s, err := Parse("$GNGGA,062735.00,3150.788156,N,11711.922383,E,1,12,2.0,90.0,M,,M,,*55")
	require.NoError(t, err)
	require.Equal(t, TypeGGA, s.Type())

	gga, ok := s.(GGA)
	require.True(t, ok)
	assert.Equal(t, "GN", gga.Talker)
	assert.Equal(t, UTCTime{Hours: "06", Minutes: "27", Seconds: "35"}, gga.Time)
	require.NotNil(t, gga.Latitude)
	assert.InDelta(t, 31.50788156, gga.Latitude.Degrees, 1e-9)
	assert.Equal(t, North, gga.Latitude.Direction)
	require.NotNil(t, gga.Longitude)
	assert.InDelta(t, 117.11922383, gga.Longitude.Degrees, 1e-9)
	assert.Equal(t, East, gga.Longitude.Direction)
	assert.Equal(t, FixGPS, gga.FixQuality)
	assert.Equal(t, 12, gga.NumSatellites)
	assert.InDelta(t, 2.0, gga.HDOP, 1e-9)
	require.NotNil(t, gga.Altitude)
	assert.Equal(t, Altitude{Value: 90.0, Unit: Meters}, *gga.Altitude)
	assert.Nil(t, gga.GeoidSeparation)
	assert.Nil(t, gga.AgeOfDgps)
	assert.Nil(t, gga.DgpsStationID)
}

func TestParseGGA_Defaults(t *testing.T) {
	gga, err := ParseGGA(line("GPGGA,123519,4807.038,N,01131.000,E,2,,,545.4,FT,-46.9,M,2.5,0031"))
	require.NoError(t, err)
	assert.Equal(t, FixDGPS, gga.FixQuality)
	assert.Equal(t, 0, gga.NumSatellites)
	assert.Equal(t, 0.0, gga.HDOP)
	require.NotNil(t, gga.Altitude)
	assert.Equal(t, Feet, gga.Altitude.Unit)
	require.NotNil(t, gga.GeoidSeparation)
	assert.InDelta(t, -46.9, gga.GeoidSeparation.Value, 1e-9)
	require.NotNil(t, gga.AgeOfDgps)
	assert.InDelta(t, 2.5, gga.AgeOfDgps.Seconds, 1e-9)
	require.NotNil(t, gga.DgpsStationID)
	assert.Equal(t, DgpsStationID(31), *gga.DgpsStationID)
}

func TestParseGGA_Errors(t *testing.T) {
	_, err := ParseGGA(line("GPGGA,123519,4807.038,N,01131.000,E,9,08,0.9,545.4,M,46.9,M,,"))
	assert.ErrorIs(t, err, InvalidMode)

	_, err = ParseGGA(line("GPGGA,123519,4807.038,N,01131.000"))
	assert.ErrorIs(t, err, MissingFields)

	_, err = ParseGGA(line("GPRMC,123519,A,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W"))
	assert.ErrorIs(t, err, UnsupportedType)

	_, err = ParseGGA("$GNGGA,062735.00,3150.788156,N,11711.922383,E,1,12,2.0,90.0,M,,M,,*54")
	assert.ErrorIs(t, err, InvalidFormat)
}

func TestParse_GLL(t *testing.T) {
	s, err := Parse("$GNGLL,3150.788156,N,11711.922383,E,062735.00,A,A*76")
	require.NoError(t, err)
	gll, ok := s.(GLL)
	require.True(t, ok)
	require.NotNil(t, gll.Latitude)
	assert.InDelta(t, 31.50788156, gll.Latitude.Value(), 1e-9)
	assert.Equal(t, "06:27:35", gll.Time.String())
	assert.Equal(t, StatusValid, gll.Status)
	require.NotNil(t, gll.Mode)
	assert.Equal(t, ModeAutonomous, *gll.Mode)
}

func TestParseGLL_PreV23(t *testing.T) {
	gll, err := ParseGLL("$GPGLL,4916.45,N,12311.12,W,225444,A*31")
	require.NoError(t, err)
	assert.Nil(t, gll.Mode)
	require.NotNil(t, gll.Longitude)
	assert.InDelta(t, -123.1112, gll.Longitude.Value(), 1e-9)

	_, err = ParseGLL("$GPGLL,4916.45,N,12311.12,W,225444,X,A*45")
	assert.ErrorIs(t, err, InvalidMode)

	_, err = ParseGLL(line("GPGLL,4916.45,N,12311.12,W,225444"))
	assert.ErrorIs(t, err, MissingFields)
}

func TestParse_GSA(t *testing.T) {
	s, err := Parse("$GNGSA,A,3,86,74,85,75,84,,,,,,,,1.96,1.36,1.42*1F")
	require.NoError(t, err)
	gsa, ok := s.(GSA)
	require.True(t, ok)
	assert.Equal(t, SelectionAutomatic, gsa.SelectionMode)
	assert.Equal(t, Fix3D, gsa.FixType)

	var prns []int
	for _, sat := range gsa.Satellites {
		prns = append(prns, sat.PRN)
		assert.True(t, math.IsNaN(sat.SNR))
	}
	assert.Equal(t, []int{86, 74, 85, 75, 84}, prns)
	require.NotNil(t, gsa.DOP)
	assert.Equal(t, DOP{PDOP: 1.96, HDOP: 1.36, VDOP: 1.42}, *gsa.DOP)
}

func TestParseGSA_Variants(t *testing.T) {
	gsa, err := ParseGSA("$GPGSA,M,2,04,05,,09,12,,,,,,,,2.5,1.3,2.1*32")
	require.NoError(t, err)
	assert.Equal(t, SelectionManual, gsa.SelectionMode)
	assert.Equal(t, Fix2D, gsa.FixType)
	assert.Len(t, gsa.Satellites, 4)
	require.NotNil(t, gsa.DOP)

	gsa, err = ParseGSA("$GPGSA,A,3,04,05,09*14")
	require.NoError(t, err)
	assert.Len(t, gsa.Satellites, 3)
	assert.Nil(t, gsa.DOP)

	_, err = ParseGSA(line("GPGSA,X,3,04"))
	assert.ErrorIs(t, err, InvalidMode)
	_, err = ParseGSA(line("GPGSA,A,0,04"))
	assert.ErrorIs(t, err, InvalidMode)
	_, err = ParseGSA(line("GPGSA,A"))
	assert.ErrorIs(t, err, MissingFields)
}

func TestParse_GSV(t *testing.T) {
	s, err := Parse("$GPGSV,4,1,14,05,03,036,,16,36,309,29,18,11,139,,20,20,087,12*77")
	require.NoError(t, err)
	gsv, ok := s.(GSV)
	require.True(t, ok)
	assert.Equal(t, 4, gsv.TotalMessages)
	assert.Equal(t, 1, gsv.MessageNumber)
	assert.Equal(t, 14, gsv.SatellitesInView)
	require.Len(t, gsv.Satellites, 4)

	first := gsv.Satellites[0]
	assert.Equal(t, 5, first.PRN)
	assert.Equal(t, 3.0, first.SNR)
	assert.Equal(t, 36.0, first.Elevation)
	assert.True(t, math.IsNaN(first.Azimuth))
	assert.Equal(t, Satellite{PRN: 16, SNR: 36, Elevation: 309, Azimuth: 29}, gsv.Satellites[1])
}

func TestParseGSV_Groups(t *testing.T) {
	tables := []struct {
		in   string
		prns []int
	}{
		// 13 group tokens: 3 groups, the second has no PRN, "11" is a partial group
		{"$GPGSV,3,3,10,07,,,22,,45,120,,30,12,088,41,11*54", []int{7, 30}},
		// 9 group tokens: 2 groups, the second has no PRN
		{"$GNGSV,2,2,07,10,,45,120,,30,,,*7C", []int{10}},
		{line("GPGSV,1,1,00"), nil},
		{line("GPGSV,1,1,01,04,1"), nil},
	}

	for _, table := range tables {
		gsv, err := ParseGSV(table.in)
		require.NoError(t, err, "%q", table.in)
		var prns []int
		for _, sat := range gsv.Satellites {
			prns = append(prns, sat.PRN)
		}
		assert.Equal(t, table.prns, prns, "%q", table.in)
	}

	_, err := ParseGSV(line("GPGSV,1,1"))
	assert.ErrorIs(t, err, MissingFields)
}

func TestParse_RMC(t *testing.T) {
	s, err := Parse("$GNRMC,211041.00,A,4024.98796,N,00340.22512,W,0.027,,010218,,,D*7B")
	require.NoError(t, err)
	rmc, ok := s.(RMC)
	require.True(t, ok)
	assert.Equal(t, "21:10:41", rmc.Time.String())
	assert.Equal(t, StatusValid, rmc.Status)
	require.NotNil(t, rmc.Latitude)
	assert.InDelta(t, 40.2498796, rmc.Latitude.Value(), 1e-9)
	assert.Equal(t, North, rmc.Latitude.Direction)
	require.NotNil(t, rmc.Longitude)
	assert.InDelta(t, -3.4022512, rmc.Longitude.Value(), 1e-9)
	assert.Equal(t, West, rmc.Longitude.Direction)
	require.NotNil(t, rmc.Speed)
	assert.Equal(t, Speed{Value: 0.027, Unit: Knots}, *rmc.Speed)
	assert.Nil(t, rmc.Course)
	require.NotNil(t, rmc.Date)
	assert.Equal(t, UTCDate{Day: "01", Month: "02", Year: "18"}, *rmc.Date)
	assert.Nil(t, rmc.MagneticVariation)
	require.NotNil(t, rmc.Mode)
	assert.Equal(t, ModeDifferential, *rmc.Mode)

	ts, err := rmc.Timestamp()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2018, time.February, 1, 21, 10, 41, 0, time.UTC), ts)
}

func TestParseRMC_PreV23(t *testing.T) {
	rmc, err := ParseRMC("$GPRMC,123519,A,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W*6A")
	require.NoError(t, err)
	assert.Nil(t, rmc.Mode)
	require.NotNil(t, rmc.Course)
	assert.InDelta(t, 84.4, rmc.Course.Degrees, 1e-9)
	require.NotNil(t, rmc.MagneticVariation)
	assert.InDelta(t, -0.031, rmc.MagneticVariation.Value(), 1e-9)
}

func TestParseRMC_MagneticVariation(t *testing.T) {
	rmc, err := ParseRMC(line("GPRMC,123519,A,4807.038,N,01131.000,E,022.4,084.4,230394,0311.5,W,A"))
	require.NoError(t, err)
	require.NotNil(t, rmc.MagneticVariation)
	assert.Equal(t, West, rmc.MagneticVariation.Direction)
	assert.InDelta(t, 3.115, rmc.MagneticVariation.Degrees, 1e-9)
	assert.InDelta(t, -3.115, rmc.MagneticVariation.Value(), 1e-9)
	require.NotNil(t, rmc.Mode)
	assert.Equal(t, ModeAutonomous, *rmc.Mode)

	rmc, err = ParseRMC(line("GPRMC,123519,A,4807.038,N,01131.000,E,022.4,084.4,230394,0311.5,N,A"))
	require.NoError(t, err)
	assert.Nil(t, rmc.MagneticVariation)
}

func TestParseRMC_NoFix(t *testing.T) {
	rmc, err := ParseRMC("$GPRMC,0815,V,,,,,,,,,,N*5F")
	require.NoError(t, err)
	assert.Equal(t, StatusInvalid, rmc.Status)
	assert.False(t, rmc.Time.Valid())
	assert.Nil(t, rmc.Latitude)
	assert.Nil(t, rmc.Speed)
	assert.Nil(t, rmc.Date)
	require.NotNil(t, rmc.Mode)
	assert.Equal(t, ModeNotValid, *rmc.Mode)

	_, err = rmc.Timestamp()
	assert.ErrorIs(t, err, InvalidUTCDate)

	_, err = ParseRMC(line("GPRMC,0815,,,,,,,,,,,N"))
	assert.ErrorIs(t, err, InvalidMode)
	_, err = ParseRMC(line("GPRMC,0815,A,,,,,,"))
	assert.ErrorIs(t, err, MissingFields)
}

func TestParse_VTG(t *testing.T) {
	s, err := Parse("$GNVTG,054.7,T,034.4,M,005.5,N,010.2,K,A*3B")
	require.NoError(t, err)
	vtg, ok := s.(VTG)
	require.True(t, ok)
	require.NotNil(t, vtg.CourseTrue)
	assert.InDelta(t, 54.7, vtg.CourseTrue.Degrees, 1e-9)
	require.NotNil(t, vtg.CourseMagnetic)
	assert.InDelta(t, 34.4, vtg.CourseMagnetic.Degrees, 1e-9)
	require.NotNil(t, vtg.SpeedKnots)
	assert.Equal(t, Speed{Value: 5.5, Unit: Knots}, *vtg.SpeedKnots)
	require.NotNil(t, vtg.SpeedKmh)
	assert.Equal(t, Speed{Value: 10.2, Unit: KilometersPerHour}, *vtg.SpeedKmh)
	require.NotNil(t, vtg.Mode)
	assert.Equal(t, ModeAutonomous, *vtg.Mode)
}

func TestParseVTG_Empty(t *testing.T) {
	vtg, err := ParseVTG("$GPVTG,,T,,M,0.00,N,0.00,K,N*2C")
	require.NoError(t, err)
	assert.Nil(t, vtg.CourseTrue)
	assert.Nil(t, vtg.CourseMagnetic)
	require.NotNil(t, vtg.SpeedKnots)
	assert.Equal(t, 0.0, vtg.SpeedKnots.Value)

	vtg, err = ParseVTG(line("GPVTG,054.7,T,034.4,M,005.5,N,010.2,K"))
	require.NoError(t, err)
	assert.Nil(t, vtg.Mode)

	_, err = ParseVTG(line("GPVTG,054.7,T,034.4"))
	assert.ErrorIs(t, err, MissingFields)
}

func TestParse_ZDA(t *testing.T) {
	s, err := Parse("$GNZDA,201530.00,04,07,2002,00,00*7E")
	require.NoError(t, err)
	zda, ok := s.(ZDA)
	require.True(t, ok)
	assert.Equal(t, ZDA{
		Talker: "GN",
		Time:   UTCTime{Hours: "20", Minutes: "15", Seconds: "30"},
		Day:    4,
		Month:  7,
		Year:   2002,
	}, zda)

	ts, err := zda.Timestamp()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2002, time.July, 4, 20, 15, 30, 0, time.UTC), ts)
}

func TestParseZDA_Defaults(t *testing.T) {
	zda, err := ParseZDA("$GPZDA,201530.00,04,07*4C")
	require.NoError(t, err)
	assert.Equal(t, 4, zda.Day)
	assert.Equal(t, 7, zda.Month)
	assert.Equal(t, 0, zda.Year)
	assert.Equal(t, 0, zda.LocalZoneHours)

	zda, err = ParseZDA("$GPZDA,201530.00,04,07,2002,-05,30*4B")
	require.NoError(t, err)
	assert.Equal(t, -5, zda.LocalZoneHours)
	assert.Equal(t, 30, zda.LocalZoneMinutes)
	_, offset := time.Date(2002, time.July, 4, 0, 0, 0, 0, zda.Zone()).Zone()
	assert.Equal(t, -(5*3600 + 30*60), offset)
	assert.Equal(t, "UTC-05:30", zda.Zone().String())

	zda, err = ParseZDA(line("GPZDA,201530.00,04,07,2002,-00,30"))
	require.NoError(t, err)
	assert.Equal(t, 0, zda.LocalZoneHours)
	_, offset = time.Date(2002, time.July, 4, 0, 0, 0, 0, zda.Zone()).Zone()
	assert.Equal(t, -30*60, offset)
	assert.Equal(t, "UTC-00:30", zda.Zone().String())

	zda, err = ParseZDA(line("GPZDA,201530.00,04,07,2002,00,30"))
	require.NoError(t, err)
	_, offset = time.Date(2002, time.July, 4, 0, 0, 0, 0, zda.Zone()).Zone()
	assert.Equal(t, 30*60, offset)

	zda, err = ParseZDA(line("GPZDA,201530.00,,,"))
	require.NoError(t, err)
	_, err = zda.Timestamp()
	assert.ErrorIs(t, err, InvalidUTCDate)

	_, err = ParseZDA(line("GPZDA"))
	assert.ErrorIs(t, err, MissingFields)
}

func TestParse_Unsupported(t *testing.T) {
	tables := []string{
		"$GPTXT,01,01,02,ANTSTATUS=OK*3B",
		// sentence codes in data fields are not considered
		"$GPXYZ,GGA,1,2*22",
		"",
		"garbage",
	}

	for _, table := range tables {
		s, err := Parse(table)
		assert.Nil(t, s, "%q", table)
		assert.ErrorIs(t, err, UnsupportedType, "%q", table)
		assert.Equal(t, "Unsupported Type", ErrorString(err))
	}
}

func TestParse_InvalidFormat(t *testing.T) {
	tables := []string{
		"$GNVTG,054.7,T,034.4,M,005.5,N,010.2,K,A*3C",
		"$GNVTG,054.7,T,034.4,M,005.5,N,010.2,K,A",
		"$GNVTG,054.7,T,034.4,M,005.5,N,010.2,K,A*",
	}

	for _, table := range tables {
		s, err := Parse(table)
		assert.Nil(t, s, "%q", table)
		assert.ErrorIs(t, err, InvalidFormat, "%q", table)
	}
}
