// Package selector assembles CSS selectors from caller-supplied fragments.
//
// A selector is built as a value: every fragment call returns a new Selector
// and never mutates its receiver, so intermediate values can be stored,
// reused and combined freely. The package does not parse or validate CSS
// syntax - fragment content is rendered verbatim.
package selector

import (
	"fmt"
	"strings"
)

// Selector is a single selector term or a combination of two selectors.
// String renders the CSS form and may be called any number of times with
// identical output.
type Selector interface {
	fmt.Stringer

	// appendTo writes the CSS form into sb. Keeping it unexported seals the
	// interface to the two variants defined here.
	appendTo(sb *strings.Builder)
}

// Simple is a selector term composed of tag, id, class, attribute,
// pseudo-class and pseudo-element fragments. The zero value is an empty
// term ready for use.
type Simple struct {
	tag           string
	id            string
	classes       []string
	attrs         []string
	pseudoClasses []string
	pseudoElement string
}

// Combined joins two selectors with a combinator. Construct with Combine.
type Combined struct {
	left       Selector
	combinator string
	right      Selector
}

// String renders fragments in the canonical order: tag, id, classes,
// attributes, pseudo-classes, pseudo-element. Fragments of the same group
// are concatenated without separators and the attribute group is wrapped
// once in brackets.
func (s Simple) String() string {
	var sb strings.Builder
	s.appendTo(&sb)
	return sb.String()
}

func (s Simple) appendTo(sb *strings.Builder) {
	sb.WriteString(s.tag)
	if s.id != "" {
		sb.WriteByte('#')
		sb.WriteString(s.id)
	}
	for _, c := range s.classes {
		sb.WriteByte('.')
		sb.WriteString(c)
	}
	if len(s.attrs) > 0 {
		sb.WriteByte('[')
		for _, a := range s.attrs {
			sb.WriteString(a)
		}
		sb.WriteByte(']')
	}
	for _, p := range s.pseudoClasses {
		sb.WriteByte(':')
		sb.WriteString(p)
	}
	if s.pseudoElement != "" {
		sb.WriteString("::")
		sb.WriteString(s.pseudoElement)
	}
}

// String renders "left combinator right" with a single space on each side
// of the combinator. The descendant combinator is itself a space, so the
// rendered form carries three spaces there - this matches how stylesheet
// authors write nested descendant chains and round-trips through Combine.
func (c Combined) String() string {
	var sb strings.Builder
	c.appendTo(&sb)
	return sb.String()
}

func (c Combined) appendTo(sb *strings.Builder) {
	if c.left == nil || c.right == nil {
		return
	}
	c.left.appendTo(sb)
	sb.WriteByte(' ')
	sb.WriteString(c.combinator)
	sb.WriteByte(' ')
	c.right.appendTo(sb)
}
