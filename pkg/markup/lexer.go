// Package markup is a minimal scanner that isolates <tag:args>...</tag> spans and
// drives a tag registry to build a component tree.
package markup

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

var (
	// LexerRules splits markup into tags and text. A quoted argument may contain '>'.
	LexerRules = []lexer.SimpleRule{
		{Name: "CloseTag", Pattern: `</[A-Za-z_][A-Za-z0-9_.\-]*>`},
		{Name: "OpenTag", Pattern: `<[A-Za-z_][A-Za-z0-9_.\-]*(?::(?:'[^']*'|"[^"]*"|[^>])*)?/?>`},
		{Name: "Text", Pattern: `[^<]+`},
		// a '<' that does not start a tag is literal text
		{Name: "Char", Pattern: `<`},
	}

	MarkupLexer = lexer.MustSimple(LexerRules)

	symOpenTag  = MarkupLexer.Symbols()["OpenTag"]
	symCloseTag = MarkupLexer.Symbols()["CloseTag"]
)

// splitOpenTag breaks "<name:args/>" into its parts. A trailing '/' before '>' marks a
// self-closing tag.
func splitOpenTag(token string) (name string, raw string, selfClosing bool) {
	inner := token[1 : len(token)-1]
	if strings.HasSuffix(inner, "/") {
		selfClosing = true
		inner = inner[:len(inner)-1]
	}

	name, raw, _ = strings.Cut(inner, ":")
	return name, raw, selfClosing
}

func closeTagName(token string) string {
	return token[2 : len(token)-1]
}
