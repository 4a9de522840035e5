package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agenthands/minijava/pkg/compiler/lexer"
)

func TestKindString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind lexer.Kind
		want string
	}{
		{lexer.KindClass, "CLASS"},
		{lexer.KindString, "STRING"},
		{lexer.KindNew, "NEW"},
		{lexer.KindID, "ID"},
		{lexer.KindIntegerLiteral, "INTEGER_LITERAL"},
		{lexer.KindAnd, "AND"},
		{lexer.KindLessThan, "LESS_THAN"},
		{lexer.KindComma, "COMMA"},
		{lexer.KindEOF, "EOF"},
		{lexer.KindError, "ERROR"},
		{lexer.Kind(200), "Kind(200)"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.kind.String())
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	for k := lexer.KindClass; k <= lexer.KindError; k++ {
		got, ok := lexer.ParseKind(k.String())
		assert.True(t, ok, k.String())
		assert.Equal(t, k, got)
	}

	_, ok := lexer.ParseKind("Kind(200)")
	assert.False(t, ok)
	_, ok = lexer.ParseKind("class")
	assert.False(t, ok)
}

func TestIsKeyword(t *testing.T) {
	t.Parallel()

	for _, k := range lexer.Keywords() {
		assert.True(t, k.IsKeyword(), k.String())
	}
	assert.False(t, lexer.KindID.IsKeyword())
	assert.False(t, lexer.KindEOF.IsKeyword())
	assert.False(t, lexer.KindAnd.IsKeyword())
}

func TestTokenString(t *testing.T) {
	t.Parallel()

	toks := lexer.Tokenize("x\n&&")
	assert.Equal(t, `ID "x" 1:1`, toks[0].String())
	assert.Equal(t, `AND "&&" 2:1`, toks[1].String())
	assert.Equal(t, `EOF "" 2:3`, toks[2].String())
	assert.Equal(t, "2:1", toks[1].Pos().String())
	assert.Equal(t, lexer.Position{Offset: 2, Line: 2, Column: 1}, toks[1].Pos())
}

func TestErrorCount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, lexer.ErrorCount(lexer.Tokenize("int x;")))
	assert.Equal(t, 3, lexer.ErrorCount(lexer.Tokenize("# x & $")))
}
