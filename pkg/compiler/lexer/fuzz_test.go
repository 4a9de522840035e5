package lexer_test

import (
	"strings"
	"testing"
	"unicode"

	"github.com/agenthands/minijava/pkg/compiler/lexer"
)

func FuzzTokenize(f *testing.F) {
	f.Add("")
	f.Add("123")
	f.Add("if(x<10){}")
	f.Add("// comment\n42")
	f.Add("a && b & c")
	f.Add("/* unterminated")
	f.Add("class A { int[] v; }\r\n\t@#\xff")

	f.Fuzz(func(t *testing.T, src string) {
		toks := lexer.Tokenize(src)
		if len(toks) == 0 {
			t.Fatal("no tokens")
		}

		last := toks[len(toks)-1]
		if last.Kind != lexer.KindEOF || last.Text != "" {
			t.Fatalf("last token is %v, want EOF", last)
		}

		prevEnd, prevLine, prevCol := -1, 0, 0
		for i, tok := range toks {
			if i < len(toks)-1 && tok.Kind == lexer.KindEOF {
				t.Fatalf("EOF at index %d before end", i)
			}
			if tok.Kind != lexer.KindEOF && tok.Text == "" {
				t.Fatalf("empty lexeme for %v", tok)
			}
			if tok.Offset < prevEnd {
				t.Fatalf("token overlaps its predecessor at %v", tok)
			}
			if tok.Line < prevLine || (tok.Line == prevLine && tok.Column < prevCol) {
				t.Fatalf("position went backwards at %v", tok)
			}
			if !strings.HasPrefix(src[tok.Offset:], tok.Text) {
				t.Fatalf("lexeme %q not found at offset %d", tok.Text, tok.Offset)
			}
			if tok.Kind == lexer.KindError && len([]rune(tok.Text)) != 1 {
				t.Fatalf("error token %q is not a single character", tok.Text)
			}

			// Gaps between tokens only hold whitespace or comment text.
			if prevEnd >= 0 {
				gap := src[prevEnd:tok.Offset]
				if strings.TrimFunc(gap, unicode.IsSpace) != "" && !strings.Contains(gap, "/") {
					t.Fatalf("characters dropped between tokens: %q", gap)
				}
			}
			prevEnd, prevLine, prevCol = tok.Offset+len(tok.Text), tok.Line, tok.Column
		}
	})
}
