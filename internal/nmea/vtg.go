// Copyright 2021 Clayton Craft <clayton@craftyguy.net>
// SPDX-License-Identifier: GPL-3.0-or-later

package nmea

// VTG is Track Made Good and Ground Speed.
type VTG struct {
	Talker         string  `json:"talker" yaml:"talker"`
	CourseTrue     *Course `json:"course_true,omitempty" yaml:"course_true,omitempty"`
	CourseMagnetic *Course `json:"course_magnetic,omitempty" yaml:"course_magnetic,omitempty"`
	SpeedKnots     *Speed  `json:"speed_knots,omitempty" yaml:"speed_knots,omitempty"`
	SpeedKmh       *Speed  `json:"speed_kmh,omitempty" yaml:"speed_kmh,omitempty"`
	Mode           *Mode   `json:"mode,omitempty" yaml:"mode,omitempty"`
}

// VTG fields, with unit letters at 2, 4, 6 and 8:
//
//	0: talker+type
//	1: course, true
//	3: course, magnetic
//	5: speed (knots)
//	7: speed (km/h)
//	9: mode, absent before v2.3
func ParseVTG(sample string) (VTG, error) {
	t, err := prepare(sample, TypeVTG)
	if err != nil {
		return VTG{}, err
	}
	if err := t.need(7); err != nil {
		return VTG{}, err
	}

	return VTG{
		Talker:         talker(t.list[0], TypeVTG),
		CourseTrue:     ParseCourse(t.list[1]),
		CourseMagnetic: ParseCourse(t.list[3]),
		SpeedKnots:     ParseSpeed(t.list[5], Knots),
		SpeedKmh:       parseSpeedIn(t.list[7], KilometersPerHour),
		Mode:           ParseMode(t.opt(9)),
	}, nil
}
