// Copyright 2021 Clayton Craft <clayton@craftyguy.net>
// SPDX-License-Identifier: GPL-3.0-or-later

package nmea

import "strings"

// Sentence is a decoded record, one of GGA, GLL, GSA, GSV, RMC, VTG or ZDA.
// The set is closed: the interface cannot be implemented outside this
// package.
type Sentence interface {
	Type() Type
	// Accept calls the Visitor method matching the record kind.
	Accept(v Visitor)
	sentence()
}

// Visitor has one method per sentence kind. Adding a kind adds a method
// here, so every Visitor must handle it before the code compiles again.
type Visitor interface {
	VisitGGA(GGA)
	VisitGLL(GLL)
	VisitGSA(GSA)
	VisitGSV(GSV)
	VisitRMC(RMC)
	VisitVTG(VTG)
	VisitZDA(ZDA)
}

func (GGA) Type() Type { return TypeGGA }
func (GLL) Type() Type { return TypeGLL }
func (GSA) Type() Type { return TypeGSA }
func (GSV) Type() Type { return TypeGSV }
func (RMC) Type() Type { return TypeRMC }
func (VTG) Type() Type { return TypeVTG }
func (ZDA) Type() Type { return TypeZDA }

func (s GGA) Accept(v Visitor) { v.VisitGGA(s) }
func (s GLL) Accept(v Visitor) { v.VisitGLL(s) }
func (s GSA) Accept(v Visitor) { v.VisitGSA(s) }
func (s GSV) Accept(v Visitor) { v.VisitGSV(s) }
func (s RMC) Accept(v Visitor) { v.VisitRMC(s) }
func (s VTG) Accept(v Visitor) { v.VisitVTG(s) }
func (s ZDA) Accept(v Visitor) { v.VisitZDA(s) }

func (GGA) sentence() {}
func (GLL) sentence() {}
func (GSA) sentence() {}
func (GSV) sentence() {}
func (RMC) sentence() {}
func (VTG) sentence() {}
func (ZDA) sentence() {}

// talker returns what precedes the sentence code in the identifier, e.g.
// "GN" for "$GNGGA".
func talker(id string, kind Type) string {
	id = strings.TrimPrefix(id, "$")
	if i := strings.Index(id, kind.String()); i >= 0 {
		return strings.Clone(id[:i])
	}
	return ""
}
