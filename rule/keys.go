/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package rule

import "strings"

const (
	// StrokeSeparator separates the strokes of a multi-stroke key sequence.
	StrokeSeparator = "/"

	// BankSplit separates key tokens within a stroke. A leading or trailing
	// split marks keys as belonging to the right or left bank.
	BankSplit = "-"
)

// Stroke is one chord of simultaneously pressed keys.
type Stroke struct {
	// Tokens are the hyphen-delimited key atoms, in input order.
	Tokens []string

	// LeadingSplit is set for strokes written with a leading hyphen, such as "-T".
	LeadingSplit bool

	// TrailingSplit is set for strokes written with a trailing hyphen, such as "S-".
	TrailingSplit bool
}

// String returns the stroke in RTFCRE form.
func (s Stroke) String() string {
	var sb strings.Builder
	if s.LeadingSplit {
		sb.WriteString(BankSplit)
	}
	sb.WriteString(strings.Join(s.Tokens, BankSplit))
	if s.TrailingSplit {
		sb.WriteString(BankSplit)
	}
	return sb.String()
}

// Keys returns the key characters of the stroke without separators.
func (s Stroke) Keys() string {
	return strings.Join(s.Tokens, "")
}

// KeySequence is an ordered sequence of one or more strokes.
type KeySequence []Stroke

// String returns the sequence in RTFCRE form.
func (k KeySequence) String() string {
	strokes := make([]string, len(k))
	for i, s := range k {
		strokes[i] = s.String()
	}
	return strings.Join(strokes, StrokeSeparator)
}

// Keys returns every key character in order, without stroke or bank separators.
func (k KeySequence) Keys() string {
	var sb strings.Builder
	for _, s := range k {
		sb.WriteString(s.Keys())
	}
	return sb.String()
}
