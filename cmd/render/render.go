/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides shared rendering functions for CLI output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/4hrue2kd83f/spectra-lexer/rule"
)

// Row holds computed display values for a single rule.
type Row struct {
	ID      string   `json:"id"`
	Keys    string   `json:"keys"`
	Letters string   `json:"letters"`
	Alt     string   `json:"alt,omitempty"`
	Flags   []string `json:"flags,omitempty"`
	Info    string   `json:"info,omitempty"`
	Caption string   `json:"caption"`
	File    string   `json:"file,omitempty"`
	Line    int      `json:"line,omitempty"`
}

// ComputeRows builds display rows for rules, keeping their order.
func ComputeRows(rules []*rule.Rule) []Row {
	rows := make([]Row, 0, len(rules))
	for _, r := range rules {
		row := Row{
			ID:      r.ID,
			Keys:    r.Keys.String(),
			Letters: r.Letters,
			Flags:   r.Flags.Strings(),
			Info:    r.Info,
			Caption: r.Caption(),
			File:    r.FilePath,
		}
		if r.FilePath != "" {
			row.Line = int(r.Line) + 1
		}
		if r.Pattern.HasAlt {
			row.Alt = r.Pattern.Alt
		}
		rows = append(rows, row)
	}
	return rows
}

// ColumnWidths calculates the max width needed for each column.
func ColumnWidths(rows []Row) (id, keys, letters int) {
	id, keys, letters = 2, 4, 7 // minimums for headers
	for _, r := range rows {
		id = max(id, len(r.ID))
		keys = max(keys, len(r.Keys))
		letters = max(letters, len(r.Letters))
	}
	return
}

// Table renders rows as an aligned table with a header line.
func Table(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}
	idW, keysW, lettersW := ColumnWidths(rows)
	line := func(id, keys, letters, flags string) error {
		_, err := fmt.Fprintln(w, strings.TrimRight(
			fmt.Sprintf("%-*s  %-*s  %-*s  %s", idW, id, keysW, keys, lettersW, letters, flags), " "))
		return err
	}

	if err := line("ID", "KEYS", "LETTERS", "FLAGS"); err != nil {
		return err
	}
	for _, r := range rows {
		if err := line(r.ID, r.Keys, r.Letters, strings.Join(r.Flags, ",")); err != nil {
			return err
		}
	}
	return nil
}

// JSON renders rows as an indented JSON array.
func JSON(w io.Writer, rows []Row) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// RuleMap renders a rule and every rule it references as an indented tree.
// Each child line shows the span of the parent's letters it covers.
func RuleMap(w io.Writer, set *rule.Set, r *rule.Rule) error {
	if _, err := fmt.Fprintf(w, "%s  %s\n", r.ID, r.Caption()); err != nil {
		return err
	}
	return ruleMapChildren(w, set, r, 1)
}

func ruleMapChildren(w io.Writer, set *rule.Set, parent *rule.Rule, depth int) error {
	for _, c := range parent.Connections {
		child, ok := set.Get(c.Target)
		if !ok {
			continue
		}
		letters := []rune(parent.Letters)
		span := string(letters[c.Start : c.Start+c.Length])
		if _, err := fmt.Fprintf(w, "%s%q [%d:%d] %s  %s\n",
			strings.Repeat("  ", depth), span, c.Start, c.Start+c.Length, child.ID, child.Caption()); err != nil {
			return err
		}
		if err := ruleMapChildren(w, set, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// FlagLegend lists each flag in the set with its description.
func FlagLegend(w io.Writer, flags rule.FlagSet) error {
	for _, f := range flags.List() {
		if _, err := fmt.Fprintf(w, "  %-4s  %s\n", f, toTitleCase(f.Description())); err != nil {
			return err
		}
	}
	return nil
}

// toTitleCase converts a string to Title Case.
func toTitleCase(s string) string {
	caser := cases.Title(language.English)
	return caser.String(s)
}
