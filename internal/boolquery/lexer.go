package boolquery

import (
	"strings"
	"unicode"
)

// tokenType represents the type of a lexical token.
type tokenType int

const (
	tokenEOF tokenType = iota
	tokenIdent
	tokenLParen
	tokenRParen
	tokenAnd
	tokenOr
	tokenNot
	tokenBad
)

// token represents a lexical token.
type token struct {
	typ   tokenType
	value string
}

// lexer tokenizes a placeholder-substituted query string.
// Quoted phrases are replaced before lexing, so a quote character
// reaching the lexer is a syntax error.
type lexer struct {
	input string
	pos   int
}

func newLexer(input string) *lexer {
	return &lexer{input: input}
}

// next returns the next token from the input.
func (l *lexer) next() token {
	l.skipWhitespace()

	if l.pos >= len(l.input) {
		return token{typ: tokenEOF}
	}

	ch := l.input[l.pos]
	switch ch {
	case '(':
		l.pos++
		return token{typ: tokenLParen, value: "("}
	case ')':
		l.pos++
		return token{typ: tokenRParen, value: ")"}
	}

	if isTermChar(ch) {
		return l.readTerm()
	}

	l.pos++
	return token{typ: tokenBad, value: string(ch)}
}

func (l *lexer) skipWhitespace() {
	for l.pos < len(l.input) && unicode.IsSpace(rune(l.input[l.pos])) {
		l.pos++
	}
}

func (l *lexer) readTerm() token {
	start := l.pos
	for l.pos < len(l.input) && isTermChar(l.input[l.pos]) {
		l.pos++
	}
	value := l.input[start:l.pos]

	switch strings.ToUpper(value) {
	case "AND":
		return token{typ: tokenAnd, value: value}
	case "OR":
		return token{typ: tokenOr, value: value}
	case "NOT":
		return token{typ: tokenNot, value: value}
	}

	return token{typ: tokenIdent, value: value}
}

// isTermChar accepts the characters that may appear in a bare search
// token. Beyond identifier characters this covers technology names
// such as "c++", "c#" and ".net".
func isTermChar(ch byte) bool {
	r := rune(ch)
	return unicode.IsLetter(r) || unicode.IsDigit(r) ||
		ch == '_' || ch == '-' || ch == '.' || ch == '+' || ch == '#'
}
