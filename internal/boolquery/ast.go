// Package boolquery parses and evaluates boolean search queries.
//
// A query is a boolean expression over search terms, for example
// `python AND (django OR flask)`. Quoted multi-word phrases are
// extracted to placeholder tokens before the grammar runs, so the
// boolean grammar never sees whitespace inside an atom. The parsed
// query is immutable and safe for concurrent evaluation against any
// number of documents.
package boolquery

import "strings"

// ExprKind identifies the variant of an expression node.
type ExprKind int

const (
	// ExprTerm is a leaf holding one literal search token or a
	// quoted-phrase placeholder.
	ExprTerm ExprKind = iota

	// ExprAnd is true iff every child is true.
	ExprAnd

	// ExprOr is true iff at least one child is true.
	ExprOr

	// ExprNot negates its single child.
	ExprNot
)

// Expr is a node in the expression tree. The variant set is closed:
// Term, And, Or, Not. And/Or carry an ordered child list; the grammar
// emits two or more children but a single-child node is still evaluated
// as the identity of the operation.
type Expr struct {
	// Kind selects the variant.
	Kind ExprKind

	// Text is the term text. Only set for ExprTerm.
	Text string

	// Children are the operands. And/Or hold one or more, Not holds
	// exactly one, Term holds none.
	Children []*Expr

	// match is the precompiled term matcher, set by Query.compile.
	match *termMatcher
}

// String renders the expression in infix form, mainly for diagnostics.
func (e *Expr) String() string {
	if e == nil {
		return ""
	}
	switch e.Kind {
	case ExprTerm:
		return e.Text
	case ExprNot:
		return "NOT " + e.Children[0].String()
	case ExprAnd, ExprOr:
		op := " AND "
		if e.Kind == ExprOr {
			op = " OR "
		}
		parts := make([]string, len(e.Children))
		for i, c := range e.Children {
			parts[i] = c.String()
		}
		return "(" + strings.Join(parts, op) + ")"
	}
	return ""
}

// Query is the result of one parse: the expression tree plus the
// phrase table recorded while extracting quoted phrases. Both belong
// exclusively to this parse and are read-only afterwards.
type Query struct {
	// Root is the top of the expression tree.
	Root *Expr

	// Phrases maps placeholder tokens (QUOTED_PHRASE_<n>) to the
	// original phrase text with spaces and case preserved.
	Phrases map[string]string
}
