package render_test

import (
	"strings"
	"testing"

	"cssel/render"
)

func TestExplain_ReconstructsInput(t *testing.T) {
	inputs := []string{
		"div",
		"#main.container.editable",
		`a[href$=".png"]:focus`,
		"tr:nth-of-type(even)   td:nth-of-type(even)",
		"div + span",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			tokens := render.Explain(in)
			if len(tokens) == 0 {
				t.Fatal("expected tokens")
			}
			var sb strings.Builder
			for _, tok := range tokens {
				sb.WriteString(tok.Value)
			}
			if sb.String() != in {
				t.Errorf("token values reconstruct %q, want %q", sb.String(), in)
			}
		})
	}
}

func TestExplain_Empty(t *testing.T) {
	if tokens := render.Explain(""); len(tokens) != 0 {
		t.Errorf("expected no tokens for empty input, got %v", tokens)
	}
}

func TestFormatTokens(t *testing.T) {
	out := render.FormatTokens(render.Explain("div"))
	if !strings.Contains(out, "(div)") {
		t.Errorf("formatted tokens missing value: %q", out)
	}
	if render.FormatTokens(nil) != "" {
		t.Error("expected empty string for no tokens")
	}
}
