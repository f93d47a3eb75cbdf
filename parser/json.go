/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sourcegraph/conc/iter"

	"github.com/4hrue2kd83f/spectra-lexer/fs"
	"github.com/4hrue2kd83f/spectra-lexer/internal/cson"
	"github.com/4hrue2kd83f/spectra-lexer/rule"
	"github.com/4hrue2kd83f/spectra-lexer/validator"
)

// Positions of the fields in a rule body.
const (
	keysField = iota
	patternField
	flagsField
	infoField

	minFields = 2
	maxFields = 4
)

// RuleFileParser parses comment-augmented JSON rule files.
type RuleFileParser struct{}

// NewRuleFileParser creates a new rule file parser.
func NewRuleFileParser() *RuleFileParser {
	return &RuleFileParser{}
}

// entry is one top-level member of the rule object.
type entry struct {
	id    string
	key   *node
	value *node
}

// parsed is the outcome of parsing one entry.
type parsed struct {
	rule  *rule.Rule
	diags validator.Diagnostics
}

// Parse parses rule file data and returns unresolved rules in file order.
// Comments are stripped first. Every per-rule problem is collected; if any
// is found the returned error is a validator.Diagnostics and no rules are returned.
func (p *RuleFileParser) Parse(data []byte, opts Options) ([]*rule.Rule, error) {
	clean := cson.ToJSON(data)

	// Unmarshal reports the offset of a syntax error; the node tree keeps
	// positions and duplicate keys.
	var probe any
	if err := json.Unmarshal(clean, &probe); err != nil {
		return nil, validator.Diagnostics{syntaxDiagnostic(clean, err, opts.FilePath)}
	}

	root, err := decodeTree(clean)
	if err != nil {
		return nil, validator.Diagnostics{syntaxDiagnostic(clean, err, opts.FilePath)}
	}

	entries, diags := collectEntries(root, opts.FilePath)

	var results []parsed
	parseOne := func(e *entry) parsed {
		r, ds := parseEntry(*e, opts)
		return parsed{rule: r, diags: ds}
	}
	if opts.Parallel {
		results = iter.Map(entries, parseOne)
	} else {
		results = make([]parsed, len(entries))
		for i := range entries {
			results[i] = parseOne(&entries[i])
		}
	}

	rules := make([]*rule.Rule, 0, len(results))
	for _, res := range results {
		diags = append(diags, res.diags...)
		if res.rule != nil {
			rules = append(rules, res.rule)
		}
	}

	if len(diags) > 0 {
		diags.Sort()
		return nil, diags
	}
	return rules, nil
}

// ParseFile parses a rule file and returns unresolved rules in file order.
func (p *RuleFileParser) ParseFile(filesystem fs.FileSystem, path string, opts Options) ([]*rule.Rule, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	opts.FilePath = path
	rules, err := p.Parse(data, opts)
	if err != nil {
		var diags validator.Diagnostics
		if errors.As(err, &diags) {
			return nil, diags
		}
		return nil, fmt.Errorf("failed to parse file %s: %w", path, err)
	}
	return rules, nil
}

// collectEntries lists the members of the root object, reporting duplicate ids.
// Later definitions of a duplicate id are dropped.
func collectEntries(obj *node, filePath string) ([]entry, validator.Diagnostics) {
	if obj.kind != objectNode {
		return nil, validator.Diagnostics{{
			FilePath: filePath,
			Line:     obj.line,
			Column:   obj.column,
			Kind:     rule.ErrMalformedFile,
			Message:  fmt.Sprintf("root must be an object, got %s", describe(obj)),
		}}
	}

	var (
		entries []entry
		diags   validator.Diagnostics
	)
	seen := make(map[string]*node, len(obj.content)/2)
	for i := 0; i+1 < len(obj.content); i += 2 {
		key, value := obj.content[i], obj.content[i+1]
		if first, ok := seen[key.value]; ok {
			diags = append(diags, validator.Diagnostic{
				FilePath: filePath,
				RuleID:   key.value,
				Line:     key.line,
				Column:   key.column,
				Kind:     rule.ErrDuplicateID,
				Message:  fmt.Sprintf("%q is already defined at line %d", key.value, first.line),
			})
			continue
		}
		seen[key.value] = key
		entries = append(entries, entry{id: key.value, key: key, value: value})
	}
	return entries, diags
}

// parseEntry turns one rule body into a Rule. Independent problems in the keys,
// pattern and flags are all reported.
func parseEntry(e entry, opts Options) (*rule.Rule, validator.Diagnostics) {
	var diags validator.Diagnostics
	report := func(n *node, kind error, format string, args ...any) {
		diags = append(diags, validator.Diagnostic{
			FilePath: opts.FilePath,
			RuleID:   e.id,
			Line:     n.line,
			Column:   n.column,
			Kind:     kind,
			Message:  fmt.Sprintf(format, args...),
		})
	}
	reportSyntax := func(n *node, err error) {
		var se *SyntaxError
		if errors.As(err, &se) {
			report(n, se.Kind, "%s (offset %d in %q)", se.Message, se.Offset, n.value)
			return
		}
		report(n, rule.ErrMalformedRuleBody, "%v", err)
	}

	body := e.value
	if body.kind != arrayNode {
		report(body, rule.ErrMalformedRuleBody, "rule body must be an array of %d to %d values, got %s", minFields, maxFields, describe(body))
		return nil, diags
	}
	fields := body.content
	if len(fields) < minFields || len(fields) > maxFields {
		report(body, rule.ErrMalformedRuleBody, "rule body has %d values, want %d to %d", len(fields), minFields, maxFields)
		return nil, diags
	}

	r := &rule.Rule{
		ID:       e.id,
		FilePath: opts.FilePath,
		Line:     uint32(max(e.key.line-1, 0)),
		Column:   uint32(max(e.key.column-1, 0)),
	}

	if keysNode := fields[keysField]; !isString(keysNode) {
		report(keysNode, rule.ErrMalformedRuleBody, "keys must be a string, got %s", describe(keysNode))
	} else {
		keys, errs := ParseKeys(keysNode.value, opts.alphabet())
		for _, err := range errs {
			reportSyntax(keysNode, err)
		}
		r.Keys = keys
	}

	if patternNode := fields[patternField]; !isString(patternNode) {
		report(patternNode, rule.ErrMalformedRuleBody, "pattern must be a string, got %s", describe(patternNode))
	} else {
		pattern, err := ParsePattern(patternNode.value)
		if err != nil {
			reportSyntax(patternNode, err)
		}
		r.Pattern = pattern
	}

	flagsNode, infoNode := optionalFields(fields[flagsField:], opts.TypeDirectedFields, report)

	if flagsNode != nil {
		var names []string
		for i, f := range flagsNode.content {
			if !isString(f) {
				report(f, rule.ErrMalformedRuleBody, "flag %d must be a string, got %s", i, describe(f))
				continue
			}
			names = append(names, f.value)
		}
		flags, flagDiags := validator.ValidateFlags(names)
		for _, d := range flagDiags {
			report(flagsNode, d.Kind, "%s", d.Message)
		}
		r.Flags = flags
	}

	if infoNode != nil {
		// Info is free text with no further structure.
		r.Info = infoNode.value
	}

	if len(diags) > 0 {
		return nil, diags
	}
	return r, nil
}

// optionalFields picks the flags array and info string out of the fields after the pattern.
// Positional parsing requires flags before info; type-directed parsing also accepts a lone info string.
func optionalFields(rest []*node, typeDirected bool, report func(*node, error, string, ...any)) (flags, info *node) {
	if len(rest) == 0 {
		return nil, nil
	}

	if !typeDirected {
		if rest[0].kind != arrayNode {
			report(rest[0], rule.ErrMalformedRuleBody, "flags must be an array, got %s", describe(rest[0]))
		} else {
			flags = rest[0]
		}
		if len(rest) > 1 {
			if !isString(rest[1]) {
				report(rest[1], rule.ErrMalformedRuleBody, "info must be a string, got %s", describe(rest[1]))
			} else {
				info = rest[1]
			}
		}
		return flags, info
	}

	for _, n := range rest {
		switch {
		case n.kind == arrayNode && flags == nil && info == nil:
			flags = n
		case isString(n) && info == nil:
			info = n
		default:
			report(n, rule.ErrMalformedRuleBody, "unexpected %s after the pattern", describe(n))
		}
	}
	return flags, info
}

func isString(n *node) bool {
	return n.kind == stringNode
}

// describe names the JSON kind of a node for messages.
func describe(n *node) string {
	switch n.kind {
	case objectNode:
		return "object"
	case arrayNode:
		return "array"
	case stringNode:
		return "string"
	case numberNode:
		return "number " + n.value
	case boolNode:
		return "boolean " + n.value
	case nullNode:
		return "null"
	}
	return "unexpected value"
}

// syntaxDiagnostic converts a JSON decoding error into a file-level diagnostic.
func syntaxDiagnostic(data []byte, err error, filePath string) validator.Diagnostic {
	d := validator.Diagnostic{
		FilePath: filePath,
		Kind:     rule.ErrMalformedFile,
		Message:  err.Error(),
	}
	var se *json.SyntaxError
	if errors.As(err, &se) {
		d.Line, d.Column = position(data, se.Offset)
	}
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) {
		d.Line, d.Column = position(data, te.Offset)
	}
	return d
}

// position converts a byte offset into a 1-based line and column.
func position(data []byte, offset int64) (int, int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	before := data[:offset]
	line := bytes.Count(before, []byte("\n")) + 1
	col := int(offset) - bytes.LastIndexByte(before, '\n')
	return line, col
}
