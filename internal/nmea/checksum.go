// Copyright 2021 Clayton Craft <clayton@craftyguy.net>
// SPDX-License-Identifier: GPL-3.0-or-later

package nmea

import "fmt"

// Checksum returns the XOR of all bytes in s as two uppercase hex digits.
func Checksum(s string) string {
	var sum uint8
	for i := 0; i < len(s); i++ {
		sum ^= s[i]
	}

	return fmt.Sprintf("%02X", sum)
}

// IsValidSample reports whether sample carries a checksum section and that
// checksum matches the body. A leading '$' is not part of the body.
func IsValidSample(sample string) bool {
	parts := Split(sample, '*')
	if len(parts) < 2 || parts[1] == "" {
		return false
	}

	body := parts[0]
	if len(body) > 0 && body[0] == '$' {
		body = body[1:]
	}

	return Checksum(body) == parts[1]
}

// prepare runs the checks shared by every sentence builder and returns the
// tokens of a sample identified as kind.
func prepare(sample string, kind Type) (tokens, error) {
	if !IsValidSample(sample) {
		return tokens{}, fmt.Errorf("nmea/%s: checksum: %w", kind, InvalidFormat)
	}

	list := Tokenize(sample)
	if len(list) == 0 {
		return tokens{}, fmt.Errorf("nmea/%s: %w", kind, UnknownError)
	}

	t, err := ParseType(list[0])
	if err != nil {
		return tokens{}, err
	}
	if t != kind {
		return tokens{}, fmt.Errorf("nmea/%s: identifier %q is %s: %w", kind, list[0], t, UnsupportedType)
	}

	return tokens{kind: kind, list: list}, nil
}
