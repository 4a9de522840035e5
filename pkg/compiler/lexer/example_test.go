package lexer_test

import (
	"fmt"

	"github.com/agenthands/minijava/pkg/compiler/lexer"
)

func ExampleScanner_Next() {
	s := lexer.NewScanner("if (a && b) x = 1;")
	for {
		tok := s.Next()
		fmt.Println(tok)
		if tok.Kind == lexer.KindEOF {
			break
		}
	}
	// Output:
	// IF "if" 1:1
	// LPAREN "(" 1:4
	// ID "a" 1:5
	// AND "&&" 1:7
	// ID "b" 1:10
	// RPAREN ")" 1:11
	// ID "x" 1:13
	// EQUALS "=" 1:15
	// INTEGER_LITERAL "1" 1:17
	// SEMICOLON ";" 1:18
	// EOF "" 1:19
}

func ExampleTokenize() {
	for _, tok := range lexer.Tokenize("// count\nint n; # n") {
		fmt.Println(tok.Kind, tok.Pos())
	}
	// Output:
	// INT 2:1
	// ID 2:5
	// SEMICOLON 2:6
	// ERROR 2:8
	// ID 2:10
	// EOF 2:11
}
