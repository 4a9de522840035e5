package lexer

import (
	"iter"
	"slices"
	"unicode"
)

// Scanner performs lexical analysis on MiniJava source.
type Scanner struct {
	cur cursor
}

// NewScanner creates a new scanner for the given source.
func NewScanner(source string) *Scanner {
	s := &Scanner{}
	s.cur.reset(source)
	return s
}

// Reset re-initializes the scanner with new source for pool reuse.
func (s *Scanner) Reset(source string) {
	s.cur.reset(source)
}

// Next returns the next token from the source. Once the source is exhausted
// every call returns EOF at the end position.
func (s *Scanner) Next() Token {
	for s.cur.ch != eof {
		// 1. Skip whitespace and comments, then look again
		if unicode.IsSpace(s.cur.ch) {
			s.skipWhitespace()
			continue
		}
		if s.cur.ch == '/' && (s.cur.peek(1) == '/' || s.cur.peek(1) == '*') {
			s.skipComment()
			continue
		}

		start := s.cur.mark()
		ch := s.cur.ch

		// 2. Numbers and identifiers
		if isDigit(ch) {
			return s.scanInteger()
		}
		if isLetter(ch) {
			return s.scanIdentifier()
		}

		// 3. Operators and delimiters. Anything unmatched, a lone '&'
		// included, becomes a one-character ERROR token.
		kind := KindError
		switch ch {
		case '&':
			if s.cur.peek(1) == '&' {
				s.cur.advance()
				kind = KindAnd
			}
		case '(':
			kind = KindLParen
		case ')':
			kind = KindRParen
		case '{':
			kind = KindLBrace
		case '}':
			kind = KindRBrace
		case '[':
			kind = KindLBracket
		case ']':
			kind = KindRBracket
		case ';':
			kind = KindSemicolon
		case ',':
			kind = KindComma
		case '.':
			kind = KindDot
		case '+':
			kind = KindPlus
		case '-':
			kind = KindMinus
		case '*':
			kind = KindTimes
		case '!':
			kind = KindNot
		case '<':
			kind = KindLessThan
		case '=':
			kind = KindEquals
		}
		s.cur.advance()
		return s.token(kind, start)
	}

	return Token{Kind: KindEOF, Offset: s.cur.pos, Line: s.cur.line, Column: s.cur.col}
}

// Tokenize scans the whole source and returns every token up to and
// including EOF.
func (s *Scanner) Tokenize() []Token {
	return slices.Collect(s.All())
}

// All yields tokens from the current position. The sequence ends after EOF.
func (s *Scanner) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok := s.Next()
			if !yield(tok) || tok.Kind == KindEOF {
				return
			}
		}
	}
}

// Tokenize is shorthand for NewScanner(source).Tokenize().
func Tokenize(source string) []Token {
	return NewScanner(source).Tokenize()
}

func (s *Scanner) token(kind Kind, start Position) Token {
	return Token{
		Kind:   kind,
		Text:   s.cur.src[start.Offset:s.cur.pos],
		Offset: start.Offset,
		Line:   start.Line,
		Column: start.Column,
	}
}

func (s *Scanner) skipWhitespace() {
	for unicode.IsSpace(s.cur.ch) {
		s.cur.advance()
	}
}

// skipComment consumes a // or /* comment. A line comment stops before the
// newline. An unterminated block comment runs to end of input.
func (s *Scanner) skipComment() {
	switch s.cur.peek(1) {
	case '/':
		for s.cur.ch != '\n' && s.cur.ch != eof {
			s.cur.advance()
		}
	case '*':
		s.cur.advance() // Skip '/'
		s.cur.advance() // Skip '*'
		for s.cur.ch != eof && !(s.cur.ch == '*' && s.cur.peek(1) == '/') {
			s.cur.advance()
		}
		if s.cur.ch == '*' {
			s.cur.advance()
			s.cur.advance()
		}
	}
}

func (s *Scanner) scanInteger() Token {
	start := s.cur.mark()
	for isDigit(s.cur.ch) {
		s.cur.advance()
	}
	return s.token(KindIntegerLiteral, start)
}

func (s *Scanner) scanIdentifier() Token {
	start := s.cur.mark()
	for isLetter(s.cur.ch) || isDigit(s.cur.ch) {
		s.cur.advance()
	}
	tok := s.token(KindID, start)
	tok.Kind = Lookup(tok.Text)
	return tok
}

func isDigit(ch rune) bool {
	return ch != eof && unicode.IsDigit(ch)
}

// isLetter reports whether ch may start an identifier.
func isLetter(ch rune) bool {
	return ch == '_' || (ch != eof && unicode.IsLetter(ch))
}
