/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser provides steno rule file parsing.
package parser

import (
	"fmt"

	"github.com/4hrue2kd83f/spectra-lexer/fs"
	"github.com/4hrue2kd83f/spectra-lexer/rule"
)

// DefaultKeyAlphabet lists every character allowed in a key token:
// left bank, vowels and asterisk, right bank, and number-key digits.
const DefaultKeyAlphabet = "#STKPWHRAO*EUFRPBLGTSDZ0123456789"

// Options configures rule parsing.
type Options struct {
	// KeyAlphabet overrides DefaultKeyAlphabet when not empty.
	KeyAlphabet string

	// TypeDirectedFields accepts an info string without a flags array,
	// dispatching optional fields on their JSON kind instead of their position.
	TypeDirectedFields bool

	// Parallel parses rule bodies concurrently.
	Parallel bool

	// FilePath is recorded on rules and diagnostics.
	FilePath string
}

func (o Options) alphabet() string {
	if o.KeyAlphabet != "" {
		return o.KeyAlphabet
	}
	return DefaultKeyAlphabet
}

// Parser parses steno rule files.
type Parser interface {
	// Parse parses rule file data and returns unresolved rules in file order.
	Parse(data []byte, opts Options) ([]*rule.Rule, error)

	// ParseFile parses a rule file and returns unresolved rules in file order.
	ParseFile(filesystem fs.FileSystem, path string, opts Options) ([]*rule.Rule, error)
}

// SyntaxError reports a problem at a byte offset inside a keys or pattern string.
type SyntaxError struct {
	// Kind is one of the rule.Err* sentinels.
	Kind error
	// Offset is the byte offset of the problem within the string.
	Offset int
	// Message describes what's wrong.
	Message string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v at offset %d: %s", e.Kind, e.Offset, e.Message)
}

// Unwrap returns the error kind.
func (e *SyntaxError) Unwrap() error {
	return e.Kind
}

func syntaxErrorf(kind error, offset int, format string, args ...any) *SyntaxError {
	return &SyntaxError{Kind: kind, Offset: offset, Message: fmt.Sprintf(format, args...)}
}
