package keybind

import (
	"fmt"
	"os"
	"strings"
)

// Binding maps one key to one command. The command may contain spaces;
// everything after the key on a map line is joined into a single
// opaque string.
type Binding struct {
	Key     string
	Command string
}

// ParseError reports a syntax error with its line number.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("keybind: line %d: %s", e.Line, e.Message)
}

// parser is a recursive-descent parser over the lexer's token stream.
//
//	config   = { line } EOF
//	line     = [ mapping ] NEWLINE
//	mapping  = "map" WORD WORD { WORD }
type parser struct {
	lex *lexer
	tok token
}

func newParser(input string) *parser {
	p := &parser{lex: newLexer(input)}
	p.advance()
	return p
}

func (p *parser) advance() {
	p.tok = p.lex.next()
}

// Parse parses the whole document.
func Parse(input string) ([]Binding, error) {
	p := newParser(input)
	var bindings []Binding

	for p.tok.kind != tokenEOF {
		if p.tok.kind == tokenNewline {
			p.advance()
			continue
		}
		b, err := p.mapping()
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, b)
	}
	return bindings, nil
}

// ParseFile reads and parses a binding file.
func ParseFile(path string) ([]Binding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}

// mapping parses one "map KEY COMMAND..." line including its terminator.
func (p *parser) mapping() (Binding, error) {
	if p.tok.kind != tokenWord || p.tok.text != "map" {
		return Binding{}, &ParseError{
			Line:    p.tok.line,
			Message: fmt.Sprintf("expected %q directive, found %q", "map", p.tok.text),
		}
	}
	line := p.tok.line
	p.advance()

	if p.tok.kind != tokenWord {
		return Binding{}, &ParseError{Line: line, Message: "map: missing key"}
	}
	key := p.tok.text
	p.advance()

	var words []string
	for p.tok.kind == tokenWord {
		words = append(words, p.tok.text)
		p.advance()
	}
	if len(words) == 0 {
		return Binding{}, &ParseError{
			Line:    line,
			Message: fmt.Sprintf("map %s: missing command", key),
		}
	}

	// Consume the line terminator.
	if p.tok.kind == tokenNewline {
		p.advance()
	}

	return Binding{Key: key, Command: strings.Join(words, " ")}, nil
}

// Bindings is the resolved key-to-command table.
type Bindings map[string]string

// NewBindings builds the lookup table. Later bindings for the same key
// win, matching how users override defaults by appending lines.
func NewBindings(list []Binding) Bindings {
	m := make(Bindings, len(list))
	for _, b := range list {
		m[b.Key] = b.Command
	}
	return m
}

// Lookup returns the command bound to key.
func (m Bindings) Lookup(key string) (string, bool) {
	cmd, ok := m[key]
	return cmd, ok
}
