package boolquery

import (
	"fmt"
	"regexp"
	"strings"
)

// ParseError describes a malformed boolean query. It is a user-facing,
// non-fatal condition: the caller should display the message and must
// not proceed to evaluation.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string {
	return "invalid boolean query: " + e.Msg
}

// quotedRe matches a non-empty quoted phrase span.
var quotedRe = regexp.MustCompile(`"([^"]+)"`)

// NeedsParse reports whether the raw query uses the boolean grammar.
// Queries without AND/OR/NOT tokens and without a quote character can
// take the single-term fast path via Single.
func NeedsParse(raw string) bool {
	if strings.ContainsRune(raw, '"') {
		return true
	}
	for _, f := range strings.Fields(raw) {
		switch f {
		case "AND", "OR", "NOT":
			return true
		}
	}
	return false
}

// Single constructs a query holding one Term with the lowercased raw
// text. It is the fast path for queries that NeedsParse rejects, and
// is evaluated under exactly the same term-matching policy as a
// parsed tree.
func Single(raw string) *Query {
	q := &Query{
		Root:    &Expr{Kind: ExprTerm, Text: strings.ToLower(strings.TrimSpace(raw))},
		Phrases: map[string]string{},
	}
	q.compile()
	return q
}

// Parse turns a raw query string into an evaluable Query.
//
// Quoted phrases are first replaced with fresh QUOTED_PHRASE_<n>
// placeholders, recorded in the phrase table; the placeholder counter
// starts at zero on every call so tables never leak across queries.
// The remainder is parsed as a boolean expression with OR binding
// loosest, then AND, then NOT, with parenthesized grouping. Any
// non-operator token becomes a Term leaf.
func Parse(raw string) (*Query, error) {
	phrases := map[string]string{}
	counter := 0
	processed := quotedRe.ReplaceAllStringFunc(raw, func(m string) string {
		placeholder := fmt.Sprintf("QUOTED_PHRASE_%d", counter)
		counter++
		phrases[placeholder] = m[1 : len(m)-1]
		return placeholder
	})

	if strings.ContainsRune(processed, '"') {
		return nil, &ParseError{Msg: "unterminated quoted phrase"}
	}

	p := &parser{lexer: newLexer(processed)}
	p.advance()

	root, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, &ParseError{Msg: "empty query"}
	}
	if p.current.typ != tokenEOF {
		return nil, &ParseError{Msg: fmt.Sprintf("unexpected %q", p.current.value)}
	}

	q := &Query{Root: root, Phrases: phrases}
	q.compile()
	return q, nil
}

// parser is a recursive-descent parser over the token stream.
type parser struct {
	lexer   *lexer
	current token
}

func (p *parser) advance() {
	p.current = p.lexer.next()
}

// parseOr handles OR expressions (lowest precedence).
func (p *parser) parseOr() (*Expr, error) {
	first, err := p.parseAnd()
	if err != nil || first == nil {
		return first, err
	}

	children := []*Expr{first}
	for p.current.typ == tokenOr {
		p.advance()
		next, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		if next == nil {
			return nil, &ParseError{Msg: "expression expected after OR"}
		}
		children = append(children, next)
	}

	if len(children) == 1 {
		return first, nil
	}
	return &Expr{Kind: ExprOr, Children: children}, nil
}

// parseAnd handles AND expressions.
func (p *parser) parseAnd() (*Expr, error) {
	first, err := p.parseNot()
	if err != nil || first == nil {
		return first, err
	}

	children := []*Expr{first}
	for p.current.typ == tokenAnd {
		p.advance()
		next, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		if next == nil {
			return nil, &ParseError{Msg: "expression expected after AND"}
		}
		children = append(children, next)
	}

	if len(children) == 1 {
		return first, nil
	}
	return &Expr{Kind: ExprAnd, Children: children}, nil
}

// parseNot handles NOT expressions. NOT is right-associative.
func (p *parser) parseNot() (*Expr, error) {
	if p.current.typ == tokenNot {
		p.advance()
		child, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		if child == nil {
			return nil, &ParseError{Msg: "expression expected after NOT"}
		}
		return &Expr{Kind: ExprNot, Children: []*Expr{child}}, nil
	}
	return p.parsePrimary()
}

// parsePrimary handles grouping and bare terms.
func (p *parser) parsePrimary() (*Expr, error) {
	switch p.current.typ {
	case tokenLParen:
		p.advance()
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if inner == nil {
			return nil, &ParseError{Msg: "empty parentheses"}
		}
		if p.current.typ != tokenRParen {
			return nil, &ParseError{Msg: "unbalanced parentheses"}
		}
		p.advance()
		return inner, nil

	case tokenIdent:
		e := &Expr{Kind: ExprTerm, Text: p.current.value}
		p.advance()
		return e, nil

	case tokenRParen:
		return nil, &ParseError{Msg: "unbalanced parentheses"}

	case tokenBad:
		return nil, &ParseError{Msg: fmt.Sprintf("unexpected character %q", p.current.value)}

	case tokenEOF:
		return nil, nil

	default:
		return nil, &ParseError{Msg: fmt.Sprintf("unexpected %q", p.current.value)}
	}
}
