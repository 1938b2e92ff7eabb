package selector_test

import (
	"errors"
	"testing"

	"cssel/selector"
)

// chain applies fragment calls in order, failing the test on the first
// builder error. Keeps happy-path rendering tests readable.
func chain(t *testing.T, s selector.Simple, calls ...func(selector.Simple) (selector.Simple, error)) selector.Simple {
	t.Helper()
	var err error
	for i, call := range calls {
		if s, err = call(s); err != nil {
			t.Fatalf("call %d: unexpected builder error: %v", i, err)
		}
	}
	return s
}

func TestSimple_Rendering(t *testing.T) {
	tests := []struct {
		name string
		sel  func(t *testing.T) selector.Selector
		want string
	}{
		{
			name: "element only",
			sel: func(t *testing.T) selector.Selector {
				return selector.Element("div")
			},
			want: "div",
		},
		{
			name: "element attr pseudo-class",
			sel: func(t *testing.T) selector.Selector {
				return chain(t, selector.Element("a"),
					func(s selector.Simple) (selector.Simple, error) { return s.Attr(`href$=".png"`) },
					func(s selector.Simple) (selector.Simple, error) { return s.PseudoClass("focus") },
				)
			},
			want: `a[href$=".png"]:focus`,
		},
		{
			name: "id with classes",
			sel: func(t *testing.T) selector.Selector {
				return chain(t, selector.ID("main"),
					func(s selector.Simple) (selector.Simple, error) { return s.Class("container") },
					func(s selector.Simple) (selector.Simple, error) { return s.Class("editable") },
				)
			},
			want: "#main.container.editable",
		},
		{
			name: "classes keep call order",
			sel: func(t *testing.T) selector.Selector {
				return chain(t, selector.Class("a"),
					func(s selector.Simple) (selector.Simple, error) { return s.Class("b") },
					func(s selector.Simple) (selector.Simple, error) { return s.Class("c") },
				)
			},
			want: ".a.b.c",
		},
		{
			name: "attributes concatenate inside single brackets",
			sel: func(t *testing.T) selector.Selector {
				return chain(t, selector.Attr("a"),
					func(s selector.Simple) (selector.Simple, error) { return s.Attr("b") },
				)
			},
			want: "[ab]",
		},
		{
			name: "pseudo-classes keep call order",
			sel: func(t *testing.T) selector.Selector {
				return chain(t, selector.Element("li"),
					func(s selector.Simple) (selector.Simple, error) { return s.PseudoClass("nth-of-type(even)") },
					func(s selector.Simple) (selector.Simple, error) { return s.PseudoClass("hover") },
				)
			},
			want: "li:nth-of-type(even):hover",
		},
		{
			name: "all fragment groups",
			sel: func(t *testing.T) selector.Selector {
				return chain(t, selector.Element("input"),
					func(s selector.Simple) (selector.Simple, error) { return s.ID("search") },
					func(s selector.Simple) (selector.Simple, error) { return s.Class("wide") },
					func(s selector.Simple) (selector.Simple, error) { return s.Attr(`type="text"`) },
					func(s selector.Simple) (selector.Simple, error) { return s.PseudoClass("enabled") },
					func(s selector.Simple) (selector.Simple, error) { return s.PseudoElement("placeholder") },
				)
			},
			want: `input#search.wide[type="text"]:enabled::placeholder`,
		},
		{
			name: "pseudo-element only",
			sel: func(t *testing.T) selector.Selector {
				return selector.PseudoElement("first-line")
			},
			want: "::first-line",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := tt.sel(t)
			if got := sel.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSimple_StringIsIdempotent(t *testing.T) {
	sel := chain(t, selector.Element("a"),
		func(s selector.Simple) (selector.Simple, error) { return s.Attr(`href$=".png"`) },
		func(s selector.Simple) (selector.Simple, error) { return s.PseudoClass("focus") },
	)

	first := sel.String()
	for i := 0; i < 5; i++ {
		if got := sel.String(); got != first {
			t.Fatalf("String() call %d = %q, want %q", i+2, got, first)
		}
	}
}

func TestSimple_DuplicateFragments(t *testing.T) {
	t.Run("duplicate tag", func(t *testing.T) {
		_, err := selector.Element("div").Element("span")
		if !errors.Is(err, selector.ErrDuplicateTag) {
			t.Errorf("expected ErrDuplicateTag, got %v", err)
		}
	})

	t.Run("duplicate id", func(t *testing.T) {
		_, err := selector.ID("main").ID("other")
		if !errors.Is(err, selector.ErrDuplicateID) {
			t.Errorf("expected ErrDuplicateID, got %v", err)
		}
	})

	t.Run("duplicate pseudo-element", func(t *testing.T) {
		_, err := selector.PseudoElement("before").PseudoElement("after")
		if !errors.Is(err, selector.ErrDuplicateElement) {
			t.Errorf("expected ErrDuplicateElement, got %v", err)
		}
	})
}

func TestSimple_OrderValidation(t *testing.T) {
	tests := []struct {
		name string
		call func() (selector.Simple, error)
	}{
		{
			name: "id after class",
			call: func() (selector.Simple, error) { return selector.Class("container").ID("main") },
		},
		{
			name: "tag after id",
			call: func() (selector.Simple, error) { return selector.ID("main").Element("div") },
		},
		{
			name: "class after attribute",
			call: func() (selector.Simple, error) { return selector.Attr("checked").Class("on") },
		},
		{
			name: "attribute after pseudo-class",
			call: func() (selector.Simple, error) { return selector.PseudoClass("hover").Attr("checked") },
		},
		{
			name: "pseudo-class after pseudo-element",
			call: func() (selector.Simple, error) { return selector.PseudoElement("after").PseudoClass("hover") },
		},
		{
			name: "tag after pseudo-element",
			call: func() (selector.Simple, error) { return selector.PseudoElement("after").Element("p") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.call(); !errors.Is(err, selector.ErrInvalidOrder) {
				t.Errorf("expected ErrInvalidOrder, got %v", err)
			}
		})
	}
}

func TestSimple_ErrorLeavesReceiverUsable(t *testing.T) {
	sel := chain(t, selector.Element("div"),
		func(s selector.Simple) (selector.Simple, error) { return s.Class("box") },
	)

	// Violating call returns the prior value unchanged.
	got, err := sel.ID("main")
	if !errors.Is(err, selector.ErrInvalidOrder) {
		t.Fatalf("expected ErrInvalidOrder, got %v", err)
	}
	if got.String() != "div.box" {
		t.Errorf("returned value = %q, want %q", got.String(), "div.box")
	}

	// And the receiver itself still renders and still accepts valid calls.
	if sel.String() != "div.box" {
		t.Errorf("receiver = %q, want %q", sel.String(), "div.box")
	}
	next, err := sel.Class("wide")
	if err != nil {
		t.Fatalf("valid call after error failed: %v", err)
	}
	if next.String() != "div.box.wide" {
		t.Errorf("next = %q, want %q", next.String(), "div.box.wide")
	}
}

func TestSimple_InterleavedChainsAreIndependent(t *testing.T) {
	a := selector.Element("div")
	b := selector.Element("span")

	a, err := a.Class("left")
	if err != nil {
		t.Fatal(err)
	}
	b, err = b.Class("right")
	if err != nil {
		t.Fatal(err)
	}
	a, err = a.Class("wide")
	if err != nil {
		t.Fatal(err)
	}
	b, err = b.PseudoClass("hover")
	if err != nil {
		t.Fatal(err)
	}

	if got := a.String(); got != "div.left.wide" {
		t.Errorf("chain a = %q, want %q", got, "div.left.wide")
	}
	if got := b.String(); got != "span.right:hover" {
		t.Errorf("chain b = %q, want %q", got, "span.right:hover")
	}
}

func TestSimple_BranchedChainsDoNotAlias(t *testing.T) {
	base, err := selector.Element("p").Class("note")
	if err != nil {
		t.Fatal(err)
	}

	// Two chains branch off the same intermediate value. Appending to one
	// must never show up in the other.
	left, err := base.Class("first")
	if err != nil {
		t.Fatal(err)
	}
	right, err := base.Class("second")
	if err != nil {
		t.Fatal(err)
	}

	if got := left.String(); got != "p.note.first" {
		t.Errorf("left = %q, want %q", got, "p.note.first")
	}
	if got := right.String(); got != "p.note.second" {
		t.Errorf("right = %q, want %q", got, "p.note.second")
	}
	if got := base.String(); got != "p.note" {
		t.Errorf("base = %q, want %q", got, "p.note")
	}
}

func TestCombine(t *testing.T) {
	div := selector.Element("div")
	span := selector.Element("span")

	sel, err := selector.Combine(div, "+", span)
	if err != nil {
		t.Fatalf("Combine() error = %v", err)
	}
	if got := sel.String(); got != "div + span" {
		t.Errorf("String() = %q, want %q", got, "div + span")
	}
}

func TestCombine_AllCombinators(t *testing.T) {
	tests := []struct {
		combinator string
		want       string
	}{
		{">", "ul > li"},
		{"+", "ul + li"},
		{"~", "ul ~ li"},
		{" ", "ul   li"}, // descendant: the combinator itself is a space
	}

	for _, tt := range tests {
		t.Run(tt.combinator, func(t *testing.T) {
			sel, err := selector.Combine(selector.Element("ul"), tt.combinator, selector.Element("li"))
			if err != nil {
				t.Fatalf("Combine() error = %v", err)
			}
			if got := sel.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCombine_Nested(t *testing.T) {
	tr := chain(t, selector.Element("tr"),
		func(s selector.Simple) (selector.Simple, error) { return s.PseudoClass("nth-of-type(even)") },
	)
	td := chain(t, selector.Element("td"),
		func(s selector.Simple) (selector.Simple, error) { return s.PseudoClass("nth-of-type(even)") },
	)

	inner, err := selector.Combine(tr, " ", td)
	if err != nil {
		t.Fatalf("Combine() error = %v", err)
	}
	if got := inner.String(); got != "tr:nth-of-type(even)   td:nth-of-type(even)" {
		t.Errorf("String() = %q, want %q", got, "tr:nth-of-type(even)   td:nth-of-type(even)")
	}

	outer, err := selector.Combine(selector.Element("table"), "~", inner)
	if err != nil {
		t.Fatalf("Combine() error = %v", err)
	}
	want := "table ~ tr:nth-of-type(even)   td:nth-of-type(even)"
	if got := outer.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	// Combined rendering is an idempotent read as well.
	if outer.String() != want {
		t.Error("second String() call differs")
	}
}

func TestCombine_InvalidCombinator(t *testing.T) {
	for _, bad := range []string{"", ">>", "-", "  ", "div"} {
		t.Run("combinator "+bad, func(t *testing.T) {
			_, err := selector.Combine(selector.Element("a"), bad, selector.Element("b"))
			if !errors.Is(err, selector.ErrInvalidCombinator) {
				t.Errorf("expected ErrInvalidCombinator, got %v", err)
			}
		})
	}
}

func TestCombine_MissingOperand(t *testing.T) {
	if _, err := selector.Combine(nil, "+", selector.Element("b")); err == nil {
		t.Error("expected error for nil left operand")
	}
	if _, err := selector.Combine(selector.Element("a"), "+", nil); err == nil {
		t.Error("expected error for nil right operand")
	}
}
