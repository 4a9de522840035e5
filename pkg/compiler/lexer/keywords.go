package lexer

import "maps"

// keywords maps reserved spellings to their kinds. Matching is exact and
// case-sensitive.
//
// The "System.out.println" entry can never match: scanIdentifier stops at the
// first '.', so the scanner emits ID DOT ID DOT ID for it and a parser has to
// recognise PRINT from that sequence. The entry is kept so Lookup agrees with
// the reserved-word list of the language.
var keywords = map[string]Kind{
	"class":              KindClass,
	"public":             KindPublic,
	"static":             KindStatic,
	"void":               KindVoid,
	"main":               KindMain,
	"String":             KindString,
	"extends":            KindExtends,
	"return":             KindReturn,
	"int":                KindInt,
	"boolean":            KindBoolean,
	"if":                 KindIf,
	"else":               KindElse,
	"while":              KindWhile,
	"System.out.println": KindPrint,
	"length":             KindLength,
	"true":               KindTrue,
	"false":              KindFalse,
	"this":               KindThis,
	"new":                KindNew,
}

// Lookup returns the keyword kind for ident, or KindID if it is not reserved.
func Lookup(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return KindID
}

// Keywords returns a copy of the reserved-word table.
func Keywords() map[string]Kind {
	return maps.Clone(keywords)
}
