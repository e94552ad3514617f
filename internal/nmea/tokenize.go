// Copyright 2021 Clayton Craft <clayton@craftyguy.net>
// SPDX-License-Identifier: GPL-3.0-or-later

package nmea

import "strings"

// Split returns every run of text between occurrences of sep, empty runs
// included. For k separators there are always k+1 tokens.
func Split(text string, sep byte) []string {
	tokens := make([]string, 0, strings.Count(text, string(sep))+1)
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == sep {
			tokens = append(tokens, text[start:i])
			start = i + 1
		}
	}

	return append(tokens, text[start:])
}

// Tokenize drops the checksum section of sample and splits the remaining
// body on commas. Token 0 is the sentence identifier, '$' included.
func Tokenize(sample string) []string {
	return Split(Split(sample, '*')[0], ',')
}

// tokens is a bounds checked view of a tokenized sentence.
type tokens struct {
	kind Type
	list []string
}

func (t tokens) len() int {
	return len(t.list)
}

// at returns the token at i, or MissingFields when the sentence is too short.
func (t tokens) at(i int) (string, error) {
	if i < 0 || i >= len(t.list) {
		return "", errToken(t.kind, i, len(t.list))
	}
	return t.list[i], nil
}

// opt returns the token at i, or "" when the sentence is too short.
func (t tokens) opt(i int) string {
	if i < 0 || i >= len(t.list) {
		return ""
	}
	return t.list[i]
}

// need checks that the indices up to and including i exist.
func (t tokens) need(i int) error {
	_, err := t.at(i)
	return err
}
