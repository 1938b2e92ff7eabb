package render

import (
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Token is a single lexical token of a rendered selector.
type Token struct {
	Type  string
	Value string
}

// Explain tokenizes a rendered selector with the CSS lexer. It is a
// diagnostic over builder output only - building a selector never parses
// anything.
func Explain(s string) []Token {
	l := css.NewLexer(parse.NewInputString(s))

	var out []Token
	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			return out
		}
		out = append(out, Token{Type: tt.String(), Value: string(data)})
	}
}

// FormatTokens renders a token list as a single line for logging.
func FormatTokens(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.Type + "(" + t.Value + ")"
	}
	return strings.Join(parts, " ")
}
