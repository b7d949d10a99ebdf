// Package keybind parses the keybinding configuration language into
// key-to-command bindings. The language is line oriented:
//
//	# move around
//	map j cursor_down
//	map k cursor_up
//	map G bottom
//	map q quit
//
// Keys and commands are opaque tokens to this package; the application
// decides what a key looks like and what a command means.
package keybind

// tokenKind classifies lexer output.
type tokenKind int

const (
	tokenWord tokenKind = iota
	tokenNewline
	tokenEOF
)

// token is one lexeme with the line it started on.
type token struct {
	kind tokenKind
	text string
	line int
}

// lexer splits input into words, newlines and end-of-input. Comments
// run from '#' to end of line and are dropped.
type lexer struct {
	input string
	pos   int
	line  int
}

func newLexer(input string) *lexer {
	return &lexer{input: input, line: 1}
}

// next returns the following token.
func (l *lexer) next() token {
	// Skip horizontal whitespace and comments.
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case ' ', '\t', '\r':
			l.pos++
		case '#':
			for l.pos < len(l.input) && l.input[l.pos] != '\n' {
				l.pos++
			}
		default:
			goto scan
		}
	}

scan:
	if l.pos >= len(l.input) {
		return token{kind: tokenEOF, line: l.line}
	}

	if l.input[l.pos] == '\n' {
		t := token{kind: tokenNewline, line: l.line}
		l.pos++
		l.line++
		return t
	}

	start := l.pos
	for l.pos < len(l.input) && !isWordBreak(l.input[l.pos]) {
		l.pos++
	}
	return token{kind: tokenWord, text: l.input[start:l.pos], line: l.line}
}

func isWordBreak(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '#'
}
