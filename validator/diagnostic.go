/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator provides rule diagnostics, flag validation and rule set lint checks.
package validator

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Severity ranks a diagnostic.
type Severity int

const (
	// Error diagnostics prevent a rule set from loading.
	Error Severity = iota

	// Warning diagnostics are reported but never block loading.
	Warning
)

// String returns the severity name.
func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}
	return "error"
}

// Diagnostic describes one problem found in a rule file.
type Diagnostic struct {
	// FilePath is the path to the file containing the problem.
	FilePath string
	// RuleID is the id of the offending rule, if any.
	RuleID string
	// Line is the 1-based line of the problem, or 0 when unknown.
	Line int
	// Column is the 1-based column of the problem, or 0 when unknown.
	Column int
	// Kind is one of the rule.Err* sentinels.
	Kind error
	// Message describes what's wrong.
	Message string
	// Severity is Error unless stated otherwise.
	Severity Severity
}

// Error implements the error interface.
func (d Diagnostic) Error() string {
	var sb strings.Builder
	if d.FilePath != "" {
		sb.WriteString(d.FilePath)
		if d.Line > 0 {
			fmt.Fprintf(&sb, ":%d", d.Line)
			if d.Column > 0 {
				fmt.Fprintf(&sb, ":%d", d.Column)
			}
		}
		sb.WriteString(": ")
	} else if d.Line > 0 {
		fmt.Fprintf(&sb, "line %d: ", d.Line)
	}
	if d.Severity == Warning {
		sb.WriteString("warning: ")
	}
	if d.RuleID != "" {
		fmt.Fprintf(&sb, "rule %q: ", d.RuleID)
	}
	if d.Kind != nil {
		sb.WriteString(d.Kind.Error())
	}
	if d.Message != "" {
		if d.Kind != nil {
			sb.WriteString(": ")
		}
		sb.WriteString(d.Message)
	}
	return sb.String()
}

// Unwrap returns the diagnostic kind so errors.Is matches rule.Err* sentinels.
func (d Diagnostic) Unwrap() error {
	return d.Kind
}

// Diagnostics is a batch of diagnostics reported together.
type Diagnostics []Diagnostic

// Error implements the error interface, one diagnostic per line.
func (ds Diagnostics) Error() string {
	lines := make([]string, len(ds))
	for i, d := range ds {
		lines[i] = d.Error()
	}
	return strings.Join(lines, "\n")
}

// Unwrap exposes every diagnostic to errors.Is and errors.As.
func (ds Diagnostics) Unwrap() []error {
	errs := make([]error, len(ds))
	for i, d := range ds {
		errs[i] = d
	}
	return errs
}

// Errors returns only the error-severity diagnostics.
func (ds Diagnostics) Errors() Diagnostics {
	return ds.filter(Error)
}

// Warnings returns only the warning-severity diagnostics.
func (ds Diagnostics) Warnings() Diagnostics {
	return ds.filter(Warning)
}

func (ds Diagnostics) filter(sev Severity) Diagnostics {
	var out Diagnostics
	for _, d := range ds {
		if d.Severity == sev {
			out = append(out, d)
		}
	}
	return out
}

// Sort orders diagnostics by file, line, column and rule id.
func (ds Diagnostics) Sort() {
	slices.SortStableFunc(ds, func(a, b Diagnostic) int {
		return cmp.Or(
			cmp.Compare(a.FilePath, b.FilePath),
			cmp.Compare(a.Line, b.Line),
			cmp.Compare(a.Column, b.Column),
			cmp.Compare(a.RuleID, b.RuleID),
		)
	})
}

// Err returns ds as an error if it holds any error-severity diagnostic, or nil.
func (ds Diagnostics) Err() error {
	if errs := ds.Errors(); len(errs) > 0 {
		return errs
	}
	return nil
}
