package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gosimple/slug"

	"cssel/config"
	"cssel/misc"
)

// Write outputs rendered selectors in the requested format.
func Write(w io.Writer, format config.OutputFmt, goPackage string, rs []Rendered) error {
	switch format {
	case config.OutputFmtText:
		return writeText(w, rs)
	case config.OutputFmtJSON:
		return writeJSON(w, rs)
	case config.OutputFmtGoSrc:
		return writeGoSource(w, goPackage, rs)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func writeText(w io.Writer, rs []Rendered) error {
	for _, r := range rs {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", r.Name, r.Selector); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, rs []Rendered) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rs)
}

// writeGoSource emits a Go file with one string constant per selector, so
// stylesheet-facing code can reference selectors without hardcoded strings.
func writeGoSource(w io.Writer, pkg string, rs []Rendered) error {
	if pkg == "" {
		pkg = "styles"
	}

	if _, err := fmt.Fprintf(w, "// Code generated by %s. DO NOT EDIT.\n\npackage %s\n\nconst (\n", misc.GetAppName(), pkg); err != nil {
		return err
	}

	seen := make(map[string]string, len(rs))
	for _, r := range rs {
		ident := Identifier(r.Name)
		if prev, dup := seen[ident]; dup {
			return fmt.Errorf("entries %q and %q map to the same constant name %s", prev, r.Name, ident)
		}
		seen[ident] = r.Name
		if _, err := fmt.Fprintf(w, "\t%s = %q\n", ident, r.Selector); err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(w, ")\n")
	return err
}

// Identifier derives an exported Go constant name from an entry name.
func Identifier(name string) string {
	var sb strings.Builder
	for _, part := range strings.Split(slug.Make(name), "-") {
		if part == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(part)
		sb.WriteRune(unicode.ToUpper(r))
		sb.WriteString(part[size:])
	}
	out := sb.String()
	if out == "" {
		return "Unnamed"
	}
	if r, _ := utf8.DecodeRuneInString(out); unicode.IsDigit(r) {
		out = "Sel" + out
	}
	return out
}
