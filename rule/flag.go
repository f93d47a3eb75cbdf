/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package rule

import (
	"fmt"
	"strings"
)

// Flag is a rule flag as read from the flags array.
type Flag uint8

const (
	// Ref marks a rule used only inside other rules. It is never matched directly.
	Ref Flag = iota

	// Strk marks an exact match for a single complete stroke.
	Strk

	// Word marks an exact match for a single complete word.
	Word

	// Rare marks a rule that applies to few words and may cause false positives.
	Rare

	// Inversion marks a rule whose child keys are out of steno order.
	Inversion

	// Linked marks a rule that uses keys from two strokes.
	Linked

	numFlags
)

var flagNames = [numFlags]string{
	Ref:       "REF",
	Strk:      "STRK",
	Word:      "WORD",
	Rare:      "RARE",
	Inversion: "INV",
	Linked:    "LINK",
}

var flagDescriptions = [numFlags]string{
	Ref:       "reference only",
	Strk:      "whole stroke",
	Word:      "whole word",
	Rare:      "rare",
	Inversion: "inversion",
	Linked:    "linked strokes",
}

// String returns the flag as it appears in a rule file.
func (f Flag) String() string {
	if f < numFlags {
		return flagNames[f]
	}
	return fmt.Sprintf("Flag(%d)", uint8(f))
}

// Description returns a short human-readable meaning of the flag.
func (f Flag) Description() string {
	if f < numFlags {
		return flagDescriptions[f]
	}
	return ""
}

// ParseFlag returns the flag named by s. Names are case-sensitive.
func ParseFlag(s string) (Flag, error) {
	for f, name := range flagNames {
		if name == s {
			return Flag(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFlag, s)
}

// AllFlags returns every flag in canonical order.
func AllFlags() []Flag {
	flags := make([]Flag, 0, numFlags)
	for f := Flag(0); f < numFlags; f++ {
		flags = append(flags, f)
	}
	return flags
}

// FlagSet holds at most one of each Flag.
type FlagSet uint8

// NewFlagSet returns a set containing the given flags.
func NewFlagSet(flags ...Flag) FlagSet {
	var s FlagSet
	for _, f := range flags {
		s = s.With(f)
	}
	return s
}

// Has reports whether f is in the set.
func (s FlagSet) Has(f Flag) bool {
	return s&(1<<f) != 0
}

// With returns a copy of the set with f added.
func (s FlagSet) With(f Flag) FlagSet {
	return s | 1<<f
}

// Len returns the number of flags in the set.
func (s FlagSet) Len() int {
	n := 0
	for f := Flag(0); f < numFlags; f++ {
		if s.Has(f) {
			n++
		}
	}
	return n
}

// List returns the flags in canonical order.
func (s FlagSet) List() []Flag {
	var flags []Flag
	for f := Flag(0); f < numFlags; f++ {
		if s.Has(f) {
			flags = append(flags, f)
		}
	}
	return flags
}

// Strings returns the flag names in canonical order.
func (s FlagSet) Strings() []string {
	var names []string
	for _, f := range s.List() {
		names = append(names, f.String())
	}
	return names
}

// String returns the flag names joined with commas.
func (s FlagSet) String() string {
	return strings.Join(s.Strings(), ",")
}
