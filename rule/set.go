/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package rule

import (
	"fmt"
	"iter"
	"slices"
)

// Set is an immutable collection of resolved rules indexed by id.
// Rules obtained from a Set must not be modified; the Set is safe for concurrent readers.
type Set struct {
	rules map[string]*Rule
	ids   []string
}

// NewSet freezes resolved rules into a Set.
// It fails if an id appears twice or any rule was not resolved.
func NewSet(rules []*Rule) (*Set, error) {
	s := &Set{
		rules: make(map[string]*Rule, len(rules)),
		ids:   make([]string, 0, len(rules)),
	}
	for _, r := range rules {
		if _, exists := s.rules[r.ID]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, r.ID)
		}
		if !r.Resolved {
			return nil, fmt.Errorf("%w: %q", ErrUnresolved, r.ID)
		}
		s.rules[r.ID] = r
		s.ids = append(s.ids, r.ID)
	}
	slices.Sort(s.ids)
	return s, nil
}

// Get returns the rule with the given id.
func (s *Set) Get(id string) (*Rule, bool) {
	r, ok := s.rules[id]
	return r, ok
}

// Len returns the number of rules.
func (s *Set) Len() int {
	return len(s.ids)
}

// IDs returns every rule id in sorted order.
func (s *Set) IDs() []string {
	return slices.Clone(s.ids)
}

// All iterates over the rules in id order.
func (s *Set) All() iter.Seq2[string, *Rule] {
	return func(yield func(string, *Rule) bool) {
		for _, id := range s.ids {
			if !yield(id, s.rules[id]) {
				return
			}
		}
	}
}

// Rules returns every rule in id order.
func (s *Set) Rules() []*Rule {
	rules := make([]*Rule, 0, len(s.ids))
	for _, id := range s.ids {
		rules = append(rules, s.rules[id])
	}
	return rules
}

// Matchable returns the rules a lexer may match directly, in id order.
// REF rules are excluded.
func (s *Set) Matchable() []*Rule {
	var rules []*Rule
	for _, id := range s.ids {
		if r := s.rules[id]; r.MatchMode() != MatchNone {
			rules = append(rules, r)
		}
	}
	return rules
}

// WithFlag returns the rules carrying f, in id order.
func (s *Set) WithFlag(f Flag) []*Rule {
	var rules []*Rule
	for _, id := range s.ids {
		if r := s.rules[id]; r.Flags.Has(f) {
			rules = append(rules, r)
		}
	}
	return rules
}
