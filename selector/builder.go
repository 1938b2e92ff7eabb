package selector

import (
	"errors"
	"fmt"
)

// Build-order violations are reported at the offending call, never deferred
// to String. On error the returned value equals the receiver, so the last
// valid selector stays usable.
var (
	ErrDuplicateTag      = errors.New("tag is already set")
	ErrDuplicateID       = errors.New("id is already set")
	ErrDuplicateElement  = errors.New("pseudo-element is already set")
	ErrInvalidOrder      = errors.New("fragment violates canonical selector order")
	ErrInvalidCombinator = errors.New("unsupported combinator")
)

// Fragment groups in canonical order. A fragment may only be added while no
// fragment of a later group is present.
const (
	groupNone = iota
	groupTag
	groupID
	groupClass
	groupAttr
	groupPseudoClass
	groupPseudoElement
)

// group reports the most advanced fragment group present in s.
func (s Simple) group() int {
	switch {
	case s.pseudoElement != "":
		return groupPseudoElement
	case len(s.pseudoClasses) > 0:
		return groupPseudoClass
	case len(s.attrs) > 0:
		return groupAttr
	case len(s.classes) > 0:
		return groupClass
	case s.id != "":
		return groupID
	case s.tag != "":
		return groupTag
	}
	return groupNone
}

// Element starts a new selector with a tag name.
func Element(name string) Simple { return Simple{tag: name} }

// ID starts a new selector with an id fragment.
func ID(name string) Simple { return Simple{id: name} }

// Class starts a new selector with a class fragment.
func Class(name string) Simple { return Simple{classes: []string{name}} }

// Attr starts a new selector with a raw attribute fragment. The caller
// supplies the full bracket-free content, e.g. `href$=".png"`.
func Attr(raw string) Simple { return Simple{attrs: []string{raw}} }

// PseudoClass starts a new selector with a pseudo-class fragment.
func PseudoClass(name string) Simple { return Simple{pseudoClasses: []string{name}} }

// PseudoElement starts a new selector with a pseudo-element fragment.
func PseudoElement(name string) Simple { return Simple{pseudoElement: name} }

// Element returns a copy of s with the tag name set.
func (s Simple) Element(name string) (Simple, error) {
	if s.tag != "" {
		return s, fmt.Errorf("element %q: %w", name, ErrDuplicateTag)
	}
	if s.group() > groupTag {
		return s, fmt.Errorf("element %q: %w", name, ErrInvalidOrder)
	}
	s.tag = name
	return s, nil
}

// ID returns a copy of s with the id set.
func (s Simple) ID(name string) (Simple, error) {
	if s.id != "" {
		return s, fmt.Errorf("id %q: %w", name, ErrDuplicateID)
	}
	if s.group() > groupID {
		return s, fmt.Errorf("id %q: %w", name, ErrInvalidOrder)
	}
	s.id = name
	return s, nil
}

// Class returns a copy of s with a class fragment appended. Classes render
// in the order they were added.
func (s Simple) Class(name string) (Simple, error) {
	if s.group() > groupClass {
		return s, fmt.Errorf("class %q: %w", name, ErrInvalidOrder)
	}
	s.classes = append(s.classes[:len(s.classes):len(s.classes)], name)
	return s, nil
}

// Attr returns a copy of s with a raw attribute fragment appended.
func (s Simple) Attr(raw string) (Simple, error) {
	if s.group() > groupAttr {
		return s, fmt.Errorf("attr %q: %w", raw, ErrInvalidOrder)
	}
	s.attrs = append(s.attrs[:len(s.attrs):len(s.attrs)], raw)
	return s, nil
}

// PseudoClass returns a copy of s with a pseudo-class fragment appended.
func (s Simple) PseudoClass(name string) (Simple, error) {
	if s.group() > groupPseudoClass {
		return s, fmt.Errorf("pseudo-class %q: %w", name, ErrInvalidOrder)
	}
	s.pseudoClasses = append(s.pseudoClasses[:len(s.pseudoClasses):len(s.pseudoClasses)], name)
	return s, nil
}

// PseudoElement returns a copy of s with the pseudo-element set.
func (s Simple) PseudoElement(name string) (Simple, error) {
	if s.pseudoElement != "" {
		return s, fmt.Errorf("pseudo-element %q: %w", name, ErrDuplicateElement)
	}
	s.pseudoElement = name
	return s, nil
}

// Combinators accepted by Combine.
var combinators = map[string]struct{}{
	" ": {}, // descendant
	"+": {}, // adjacent sibling
	"~": {}, // general sibling
	">": {}, // child
}

// Combine joins two selectors with a combinator. Nesting depth is not
// limited - either operand may itself be a Combined.
func Combine(left Selector, combinator string, right Selector) (Combined, error) {
	if left == nil || right == nil {
		return Combined{}, errors.New("combine: missing operand")
	}
	if _, ok := combinators[combinator]; !ok {
		return Combined{}, fmt.Errorf("combine %q: %w", combinator, ErrInvalidCombinator)
	}
	return Combined{left: left, combinator: combinator, right: right}, nil
}
