/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validator

import (
	"fmt"

	"github.com/4hrue2kd83f/spectra-lexer/rule"
)

// conflicts lists flag pairs a rule may not carry together.
var conflicts = [][2]rule.Flag{
	{rule.Strk, rule.Word},
}

// ValidateFlags checks raw flag names against the vocabulary and returns the flag set.
// Every problem is reported; the returned set holds the flags that were valid.
// Diagnostics carry no position; callers fill in where the flags came from.
func ValidateFlags(names []string) (rule.FlagSet, Diagnostics) {
	var (
		set   rule.FlagSet
		diags Diagnostics
	)

	for _, name := range names {
		f, err := rule.ParseFlag(name)
		if err != nil {
			diags = append(diags, Newf(rule.ErrUnknownFlag, "%q is not one of %v", name, rule.AllFlags()))
			continue
		}
		if set.Has(f) {
			diags = append(diags, Newf(rule.ErrDuplicateFlag, "%s given more than once", f))
			continue
		}
		set = set.With(f)
	}

	for _, pair := range conflicts {
		if set.Has(pair[0]) && set.Has(pair[1]) {
			diags = append(diags, Newf(rule.ErrConflictingFlags, "%s and %s are mutually exclusive", pair[0], pair[1]))
		}
	}

	return set, diags
}

// Newf returns an error-severity diagnostic of the given kind.
func Newf(kind error, format string, args ...any) Diagnostic {
	return Diagnostic{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}
