package tape

import "unicode/utf8"

type lexer struct {
	input string

	offset int

	line   int
	column int
}

func newLexer(input string) *lexer {
	return &lexer{input: input, line: 1}
}

// next returns the next command in the input together with its position,
// skipping every rune that is not one of the eight command characters.
// ok is false once the input is exhausted.
func (l *lexer) next() (op Op, pos Position, ok bool) {
	for l.offset < len(l.input) {
		r, w := utf8.DecodeRuneInString(l.input[l.offset:])
		l.offset += w

		if r == '\n' {
			l.line++
			l.column = 0
			continue
		}
		l.column++

		if op, ok := OpForRune(r); ok {
			return op, Position{Line: l.line, Column: l.column}, true
		}
	}
	return 0, Position{}, false
}
