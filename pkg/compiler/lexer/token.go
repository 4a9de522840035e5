package lexer

import (
	"fmt"
	"strconv"
)

// Kind represents the type of token identified by the scanner.
type Kind uint8

const (
	// Keywords
	KindClass Kind = iota
	KindPublic
	KindStatic
	KindVoid
	KindMain
	KindString
	KindExtends
	KindReturn
	KindInt
	KindBoolean
	KindIf
	KindElse
	KindWhile
	KindPrint
	KindLength
	KindTrue
	KindFalse
	KindThis
	KindNew

	// Identifiers and literals
	KindID
	KindIntegerLiteral

	// Operators
	KindAnd      // &&
	KindLessThan // <
	KindPlus     // +
	KindMinus    // -
	KindTimes    // *
	KindNot      // !
	KindEquals   // =
	KindDot      // .

	// Delimiters
	KindLParen    // (
	KindRParen    // )
	KindLBrace    // {
	KindRBrace    // }
	KindLBracket  // [
	KindRBracket  // ]
	KindSemicolon // ;
	KindComma     // ,

	KindEOF
	KindError

	kindCount
)

var kindNames = [kindCount]string{
	KindClass:          "CLASS",
	KindPublic:         "PUBLIC",
	KindStatic:         "STATIC",
	KindVoid:           "VOID",
	KindMain:           "MAIN",
	KindString:         "STRING",
	KindExtends:        "EXTENDS",
	KindReturn:         "RETURN",
	KindInt:            "INT",
	KindBoolean:        "BOOLEAN",
	KindIf:             "IF",
	KindElse:           "ELSE",
	KindWhile:          "WHILE",
	KindPrint:          "PRINT",
	KindLength:         "LENGTH",
	KindTrue:           "TRUE",
	KindFalse:          "FALSE",
	KindThis:           "THIS",
	KindNew:            "NEW",
	KindID:             "ID",
	KindIntegerLiteral: "INTEGER_LITERAL",
	KindAnd:            "AND",
	KindLessThan:       "LESS_THAN",
	KindPlus:           "PLUS",
	KindMinus:          "MINUS",
	KindTimes:          "TIMES",
	KindNot:            "NOT",
	KindEquals:         "EQUALS",
	KindDot:            "DOT",
	KindLParen:         "LPAREN",
	KindRParen:         "RPAREN",
	KindLBrace:         "LBRACE",
	KindRBrace:         "RBRACE",
	KindLBracket:       "LBRACKET",
	KindRBracket:       "RBRACKET",
	KindSemicolon:      "SEMICOLON",
	KindComma:          "COMMA",
	KindEOF:            "EOF",
	KindError:          "ERROR",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, kindCount)
	for k, name := range kindNames {
		m[name] = Kind(k)
	}
	return m
}()

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// ParseKind maps a kind name as produced by String back to its Kind.
func ParseKind(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

// IsKeyword reports whether k is one of the reserved-word kinds.
func (k Kind) IsKeyword() bool {
	return k <= KindNew
}

// Position is a location in the source. Offset is a 0-based byte offset,
// Line and Column are 1-based and Column counts runes.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// Token is a classified lexeme. Text is a slice of the scanned source and is
// empty for EOF.
type Token struct {
	Kind   Kind
	Text   string
	Offset int
	Line   int
	Column int
}

// Pos returns the position of the token's first character.
func (t Token) Pos() Position {
	return Position{Offset: t.Offset, Line: t.Line, Column: t.Column}
}

// String renders the token as KIND "lexeme" line:column.
func (t Token) String() string {
	return fmt.Sprintf("%s %q %d:%d", t.Kind, t.Text, t.Line, t.Column)
}

// ErrorCount returns the number of ERROR tokens in toks.
func ErrorCount(toks []Token) int {
	n := 0
	for _, t := range toks {
		if t.Kind == KindError {
			n++
		}
	}
	return n
}
