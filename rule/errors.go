/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package rule

import "errors"

// Sentinel errors for rule file problems. Diagnostics wrap exactly one of these.
var (
	// ErrMalformedFile indicates the file is not a JSON object of rules.
	ErrMalformedFile = errors.New("malformed rule file")

	// ErrMalformedRuleBody indicates a rule body with the wrong arity or value kinds.
	ErrMalformedRuleBody = errors.New("malformed rule body")

	// ErrMalformedKeySequence indicates a keys string that is not valid steno.
	ErrMalformedKeySequence = errors.New("malformed key sequence")

	// ErrUnterminatedReference indicates an unmatched parenthesis in a pattern.
	ErrUnterminatedReference = errors.New("unterminated reference")

	// ErrNestedReference indicates a reference opened inside another reference.
	ErrNestedReference = errors.New("nested reference")

	// ErrEmptyReference indicates a reference with no target id.
	ErrEmptyReference = errors.New("empty reference")

	// ErrUnknownFlag indicates a flag outside the fixed vocabulary.
	ErrUnknownFlag = errors.New("unknown flag")

	// ErrDuplicateFlag indicates the same flag given twice on one rule.
	ErrDuplicateFlag = errors.New("duplicate flag")

	// ErrConflictingFlags indicates mutually exclusive flags on one rule.
	ErrConflictingFlags = errors.New("conflicting flags")

	// ErrDuplicateID indicates a rule id defined more than once.
	ErrDuplicateID = errors.New("duplicate rule id")

	// ErrUnknownReferenceTarget indicates a reference to a rule id that does not exist.
	ErrUnknownReferenceTarget = errors.New("unknown reference target")

	// ErrCyclicReference indicates rules that reference each other in a loop.
	ErrCyclicReference = errors.New("cyclic reference")

	// ErrKeyCoverage indicates a compound rule whose keys differ from its children's keys.
	// It is only ever reported as a warning.
	ErrKeyCoverage = errors.New("key coverage mismatch")

	// ErrUnusedReferenceRule indicates a REF rule that no other rule references.
	// It is only ever reported as a warning.
	ErrUnusedReferenceRule = errors.New("unused reference rule")

	// ErrUnresolved indicates a rule reached assembly without resolved letters.
	ErrUnresolved = errors.New("unresolved rule")
)
