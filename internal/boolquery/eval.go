package boolquery

import (
	"regexp"
	"strings"
)

// placeholderRe recognizes the placeholder naming pattern regardless
// of the case the grammar preserved.
var placeholderRe = regexp.MustCompile(`(?i)^quoted_phrase_\d+$`)

// termMatcher is the precompiled matching state for one Term leaf.
// Matching for a term tries three tiers in strict order, first success
// wins:
//
//  1. a placeholder resolved through the phrase table matches the
//     lowercased phrase as a literal substring (deliberately not
//     word-bounded: a phrase is an exact run of characters);
//  2. the lowercased term matches on a word boundary;
//  3. the lowercased term matches as an unanchored substring.
//
// An unmatched placeholder skips tier 1 and falls through, yielding
// "no match" rather than an error.
type termMatcher struct {
	term   string
	phrase string
	word   *regexp.Regexp
}

func newTermMatcher(text string, phrases map[string]string) *termMatcher {
	m := &termMatcher{term: strings.ToLower(text)}

	if placeholderRe.MatchString(text) {
		if phrase, ok := phrases[strings.ToUpper(text)]; ok {
			m.phrase = strings.ToLower(phrase)
		}
	}

	m.word = regexp.MustCompile(`\b` + regexp.QuoteMeta(m.term) + `\b`)
	return m
}

// matches evaluates the three-tier policy against normalized text.
func (m *termMatcher) matches(text string) bool {
	if m.phrase != "" && strings.Contains(text, m.phrase) {
		return true
	}
	if m.word.MatchString(text) {
		return true
	}
	return strings.Contains(text, m.term)
}

// compile walks the tree attaching a matcher to every Term leaf so
// evaluation does no regexp work per document.
func (q *Query) compile() {
	var walk func(e *Expr)
	walk = func(e *Expr) {
		if e == nil {
			return
		}
		if e.Kind == ExprTerm {
			e.match = newTermMatcher(e.Text, q.Phrases)
			return
		}
		for _, c := range e.Children {
			walk(c)
		}
	}
	walk(q.Root)
}

// Match reports whether the normalized document text satisfies the
// query. It is pure, total over any well-formed tree, and safe to call
// concurrently.
func (q *Query) Match(text string) bool {
	return eval(q.Root, text)
}

// eval walks the tree. And and Or short-circuit; a single-child node
// degenerates to its child's verdict.
func eval(e *Expr, text string) bool {
	if e == nil {
		return false
	}
	switch e.Kind {
	case ExprTerm:
		m := e.match
		if m == nil {
			m = newTermMatcher(e.Text, nil)
		}
		return m.matches(text)

	case ExprAnd:
		for _, c := range e.Children {
			if !eval(c, text) {
				return false
			}
		}
		return true

	case ExprOr:
		for _, c := range e.Children {
			if eval(c, text) {
				return true
			}
		}
		return false

	case ExprNot:
		return !eval(e.Children[0], text)
	}
	return false
}
