/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"strings"

	"github.com/4hrue2kd83f/spectra-lexer/rule"
)

// ParseKeys parses an RTFCRE keys string such as "KP-T/-S" into strokes.
// Strokes are separated by '/', key tokens within a stroke by '-'. A single
// leading or trailing '-' marks the bank split and is kept on the stroke.
// Every token character must appear in alphabet; an empty alphabet means
// DefaultKeyAlphabet. All problems in the string are reported.
func ParseKeys(s, alphabet string) (rule.KeySequence, []error) {
	if alphabet == "" {
		alphabet = DefaultKeyAlphabet
	}
	if s == "" {
		return nil, []error{syntaxErrorf(rule.ErrMalformedKeySequence, 0, "keys are empty")}
	}

	var (
		seq  rule.KeySequence
		errs []error
	)
	offset := 0
	for _, raw := range strings.Split(s, rule.StrokeSeparator) {
		stroke, strokeErrs := parseStroke(raw, offset, alphabet)
		errs = append(errs, strokeErrs...)
		seq = append(seq, stroke)
		offset += len(raw) + len(rule.StrokeSeparator)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return seq, nil
}

func parseStroke(raw string, offset int, alphabet string) (rule.Stroke, []error) {
	if raw == "" {
		return rule.Stroke{}, []error{syntaxErrorf(rule.ErrMalformedKeySequence, offset, "empty stroke")}
	}

	var stroke rule.Stroke
	body := raw
	if strings.HasPrefix(body, rule.BankSplit) {
		stroke.LeadingSplit = true
		body = body[len(rule.BankSplit):]
	}
	if body != "" && strings.HasSuffix(body, rule.BankSplit) {
		stroke.TrailingSplit = true
		body = body[:len(body)-len(rule.BankSplit)]
	}
	if body == "" {
		return rule.Stroke{}, []error{syntaxErrorf(rule.ErrMalformedKeySequence, offset, "stroke %q has no keys", raw)}
	}
	if stroke.LeadingSplit && stroke.TrailingSplit {
		return rule.Stroke{}, []error{syntaxErrorf(rule.ErrMalformedKeySequence, offset, "stroke %q is split on both sides", raw)}
	}

	var errs []error
	tokenOffset := offset
	if stroke.LeadingSplit {
		tokenOffset += len(rule.BankSplit)
	}
	for _, token := range strings.Split(body, rule.BankSplit) {
		if token == "" {
			errs = append(errs, syntaxErrorf(rule.ErrMalformedKeySequence, tokenOffset, "empty key token in stroke %q", raw))
		}
		for i, r := range token {
			if !strings.ContainsRune(alphabet, r) {
				errs = append(errs, syntaxErrorf(rule.ErrMalformedKeySequence, tokenOffset+i, "invalid key %q in stroke %q", r, raw))
			}
		}
		stroke.Tokens = append(stroke.Tokens, token)
		tokenOffset += len(token) + len(rule.BankSplit)
	}

	return stroke, errs
}
