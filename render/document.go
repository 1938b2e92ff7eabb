// Package render builds CSS selectors from YAML selector documents and
// writes the result in one of several output formats.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"github.com/maruel/natural"
	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"

	"cssel/selector"
)

// Document is a parsed selector document: a list of named selector entries.
type Document struct {
	Selectors []Entry `yaml:"selectors"`
}

// Entry is a single named selector description.
type Entry struct {
	Name string `yaml:"name"`
	Node Node   `yaml:",inline"`
}

// Node describes one selector. It is either a fragment node (any of the
// fragment fields set) or a combine node - never both.
type Node struct {
	Element       string       `yaml:"element,omitempty"`
	ID            string       `yaml:"id,omitempty"`
	Classes       []string     `yaml:"classes,omitempty"`
	Attrs         []string     `yaml:"attrs,omitempty"`
	PseudoClasses []string     `yaml:"pseudo_classes,omitempty"`
	PseudoElement string       `yaml:"pseudo_element,omitempty"`
	Combine       *CombineNode `yaml:"combine,omitempty"`
}

// CombineNode joins two selector nodes with a combinator. Operands may nest
// further combine nodes without depth limit.
type CombineNode struct {
	Left       Node   `yaml:"left"`
	Combinator string `yaml:"combinator"`
	Right      Node   `yaml:"right"`
}

// Rendered is one built selector ready for output.
type Rendered struct {
	Name     string `json:"name"`
	Selector string `json:"selector"`
}

// LoadDocument parses a selector document. Unknown fields are rejected so
// typos in documents surface immediately.
func LoadDocument(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode selector document: %w", err)
	}
	if len(doc.Selectors) == 0 {
		return nil, errors.New("selector document has no entries")
	}
	return &doc, nil
}

func (n Node) hasFragments() bool {
	return n.Element != "" || n.ID != "" || len(n.Classes) > 0 ||
		len(n.Attrs) > 0 || len(n.PseudoClasses) > 0 || n.PseudoElement != ""
}

// build constructs a selector from the node, applying fragments in the
// canonical order the builder expects.
func (n Node) build() (selector.Selector, error) {
	if n.Combine != nil {
		if n.hasFragments() {
			return nil, errors.New("combine entry cannot carry selector fragments")
		}
		left, err := n.Combine.Left.build()
		if err != nil {
			return nil, fmt.Errorf("left operand: %w", err)
		}
		right, err := n.Combine.Right.build()
		if err != nil {
			return nil, fmt.Errorf("right operand: %w", err)
		}
		return selector.Combine(left, n.Combine.Combinator, right)
	}

	if !n.hasFragments() {
		return nil, errors.New("empty selector entry")
	}

	var (
		s   selector.Simple
		err error
	)
	if n.Element != "" {
		if s, err = s.Element(n.Element); err != nil {
			return nil, err
		}
	}
	if n.ID != "" {
		if s, err = s.ID(n.ID); err != nil {
			return nil, err
		}
	}
	for _, c := range n.Classes {
		if s, err = s.Class(c); err != nil {
			return nil, err
		}
	}
	for _, a := range n.Attrs {
		if s, err = s.Attr(a); err != nil {
			return nil, err
		}
	}
	for _, p := range n.PseudoClasses {
		if s, err = s.PseudoClass(p); err != nil {
			return nil, err
		}
	}
	if n.PseudoElement != "" {
		if s, err = s.PseudoElement(n.PseudoElement); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Build renders every entry of the document. Problems are collected across
// all entries and reported together - nothing is returned when any entry
// fails, so a partially built document never reaches output.
func (d *Document) Build() ([]Rendered, error) {
	var (
		out  []Rendered
		errs error
	)
	for i, e := range d.Selectors {
		if e.Name == "" {
			errs = multierr.Append(errs, fmt.Errorf("entry %d: missing name", i+1))
			continue
		}
		sel, err := e.Node.build()
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("entry %q: %w", e.Name, err))
			continue
		}
		out = append(out, Rendered{Name: e.Name, Selector: sel.String()})
	}
	if errs != nil {
		return nil, errs
	}
	return out, nil
}

// SortNatural orders rendered selectors by entry name using natural string
// ordering, so "item2" sorts before "item10".
func SortNatural(rs []Rendered) {
	sort.Slice(rs, func(i, j int) bool {
		return natural.Less(rs[i].Name, rs[j].Name)
	})
}
