/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validator

import (
	"fmt"
	"slices"
	"strings"

	"github.com/4hrue2kd83f/spectra-lexer/rule"
)

// Lint checks a resolved rule set for problems that do not prevent loading.
// Returns warnings for:
// - compound rules whose keys are not exactly the keys of their children
// - REF rules that no other rule references
func Lint(set *rule.Set) Diagnostics {
	var diags Diagnostics
	referenced := make(map[string]bool)

	for _, r := range set.All() {
		for _, c := range r.Connections {
			referenced[c.Target] = true
		}
		if r.IsCompound() {
			if msg := keyCoverage(set, r); msg != "" {
				diags = append(diags, warning(r, rule.ErrKeyCoverage, msg))
			}
		}
	}

	for _, r := range set.WithFlag(rule.Ref) {
		if !referenced[r.ID] {
			diags = append(diags, warning(r, rule.ErrUnusedReferenceRule, "rule is flagged REF but never referenced"))
		}
	}

	diags.Sort()
	return diags
}

// keyCoverage compares the parent's key characters with the sum of its children's.
// Returns an empty string when they match.
func keyCoverage(set *rule.Set, r *rule.Rule) string {
	counts := make(map[rune]int)
	for _, k := range r.Keys.Keys() {
		counts[k]++
	}
	for _, c := range r.Connections {
		child, ok := set.Get(c.Target)
		if !ok {
			continue
		}
		for _, k := range child.Keys.Keys() {
			counts[k]--
		}
	}

	var extra, missing []string
	for k, n := range counts {
		switch {
		case n > 0:
			extra = append(extra, strings.Repeat(string(k), n))
		case n < 0:
			missing = append(missing, strings.Repeat(string(k), -n))
		}
	}
	if len(extra) == 0 && len(missing) == 0 {
		return ""
	}
	slices.Sort(extra)
	slices.Sort(missing)

	var parts []string
	if len(extra) > 0 {
		parts = append(parts, fmt.Sprintf("keys not covered by child rules: %s", strings.Join(extra, "")))
	}
	if len(missing) > 0 {
		parts = append(parts, fmt.Sprintf("child rules use keys the rule lacks: %s", strings.Join(missing, "")))
	}
	return strings.Join(parts, "; ")
}

func warning(r *rule.Rule, kind error, msg string) Diagnostic {
	return Diagnostic{
		FilePath: r.FilePath,
		RuleID:   r.ID,
		Line:     int(r.Line) + 1,
		Column:   int(r.Column) + 1,
		Kind:     kind,
		Message:  msg,
		Severity: Warning,
	}
}
