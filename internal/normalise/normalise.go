// Package normalise turns raw document text into the canonical search
// surface the query evaluator matches against.
//
// Normalisation compensates for missing word separators in source
// documents: CamelCase compounds are split, adjacent token pairs are
// re-merged as bigrams, and long tokens are halved, so a query for
// either "machinelearning" or "machine learning" hits text written in
// either form. The pipeline is a pure function of its input, but it is
// not idempotent: the bigram and half-split steps change the token
// composition, so normalising already-normalised text yields different
// augmentation. The engine never re-normalises its own output.
package normalise

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	camelRe  = regexp.MustCompile(`([a-z])([A-Z])`)
	emailRe  = regexp.MustCompile(`\S+@\S+`)
	urlRe    = regexp.MustCompile(`https?://\S+|www\.\S+`)
	quotedRe = regexp.MustCompile(`"([^"]+)"`)
	symbolRe = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
)

// longTokenLen is the length above which a token is additionally
// emitted as two halves, letting a query for one half of a compound
// word hit merged tokens like "machinelearning".
const longTokenLen = 8

// Normalise canonicalises text into the searchable form. The steps run
// in a fixed order; the ordering is a correctness requirement (phrase
// capture must precede quote stripping, token repair must precede
// symbol stripping).
func Normalise(text string) string {
	// Split CamelCase compounds, then fold case.
	text = camelRe.ReplaceAllString(text, "$1 $2")
	text = strings.ToLower(text)

	// Rewrite the ".net" technology suffix before symbol stripping
	// destroys it, then drop emails and URLs entirely.
	text = repairDotNet(text)
	text = emailRe.ReplaceAllString(text, "")
	text = urlRe.ReplaceAllString(text, "")

	// Append the space-free form of every quoted phrase still present,
	// so both the spaced and unspaced spellings survive.
	var b strings.Builder
	b.WriteString(text)
	for _, m := range quotedRe.FindAllStringSubmatch(text, -1) {
		b.WriteByte(' ')
		b.WriteString(strings.ReplaceAll(m[1], " ", ""))
	}
	text = b.String()

	// Strip quotes, then replace remaining symbols with spaces.
	text = strings.ReplaceAll(text, `"`, "")
	text = symbolRe.ReplaceAllString(text, " ")

	words := strings.Fields(text)

	b.Reset()
	b.WriteString(text)

	// Adjacent-pair bigrams over the pre-augmentation token sequence.
	for i := 0; i+1 < len(words); i++ {
		b.WriteByte(' ')
		b.WriteString(words[i])
		b.WriteString(words[i+1])
	}

	// Halve long tokens so either half matches as a fragment.
	for _, tok := range words {
		r := []rune(tok)
		if len(r) > longTokenLen {
			mid := len(r) / 2
			b.WriteByte(' ')
			b.WriteString(string(r[:mid]))
			b.WriteByte(' ')
			b.WriteString(string(r[mid:]))
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// repairDotNet rewrites the literal suffix ".net" to " dotnet " when it
// stands alone: not preceded by a word character or "@", not followed
// by a word character or another dot. This keeps "ASP.net" untouched
// while rescuing bare ".net" from the symbol-stripping step. The input
// is already lowercased.
func repairDotNet(text string) string {
	const pat = ".net"

	var b strings.Builder
	i := 0
	for {
		j := strings.Index(text[i:], pat)
		if j < 0 {
			b.WriteString(text[i:])
			break
		}
		j += i
		end := j + len(pat)

		prevOK := true
		if j > 0 {
			r, _ := utf8.DecodeLastRuneInString(text[:j])
			prevOK = !isWordRune(r) && r != '@'
		}
		nextOK := true
		if end < len(text) {
			r, _ := utf8.DecodeRuneInString(text[end:])
			nextOK = !isWordRune(r) && r != '.'
		}

		b.WriteString(text[i:j])
		if prevOK && nextOK {
			b.WriteString(" dotnet ")
		} else {
			b.WriteString(pat)
		}
		i = end
	}
	return b.String()
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
