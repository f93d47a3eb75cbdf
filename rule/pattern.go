/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package rule

// SegmentKind indicates the kind of pattern segment.
type SegmentKind int

const (
	// Literal is text contributed directly to the letters.
	Literal SegmentKind = iota

	// Reference is replaced by the resolved letters of its target: (id)
	Reference

	// AliasedReference contributes its own text while recording its target: (text|id)
	AliasedReference
)

// String returns the segment kind name.
func (k SegmentKind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Reference:
		return "reference"
	case AliasedReference:
		return "aliased reference"
	default:
		return "unknown"
	}
}

// Segment is one piece of a parsed pattern.
type Segment struct {
	Kind SegmentKind

	// Text is the literal text, or the alias text of an aliased reference.
	Text string

	// Target is the referenced rule id. Empty for literals.
	Target string

	// Offset is the byte offset of the segment within the pattern string.
	Offset int
}

// IsReference reports whether the segment points at another rule.
func (s Segment) IsReference() bool {
	return s.Kind == Reference || s.Kind == AliasedReference
}

// Pattern is the parsed form of a rule's pattern string.
type Pattern struct {
	Segments []Segment

	// Alt is alternate display text for diagrams. Only meaningful when HasAlt is set.
	Alt    string
	HasAlt bool
}

// Targets returns the rule ids referenced by the pattern, in order, with repeats.
func (p Pattern) Targets() []string {
	var targets []string
	for _, seg := range p.Segments {
		if seg.IsReference() {
			targets = append(targets, seg.Target)
		}
	}
	return targets
}

// IsEmpty reports whether the pattern has no segments at all.
func (p Pattern) IsEmpty() bool {
	return len(p.Segments) == 0
}
