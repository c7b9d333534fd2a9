package normalise

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalise_CamelCaseSplit(t *testing.T) {
	got := Normalise("HuggingFace")

	assert.Equal(t, "hugging face huggingface", got)
}

func TestNormalise_Lowercases(t *testing.T) {
	got := Normalise("PYTHON")

	assert.Equal(t, "python", got)
}

func TestNormalise_BigramsMergeAdjacentWords(t *testing.T) {
	got := Normalise("machine learning")

	assert.Contains(t, got, "machine learning")
	assert.Contains(t, got, "machinelearning")
}

func TestNormalise_LongTokensEmitHalves(t *testing.T) {
	got := Normalise("internationalization")
	tokens := strings.Fields(got)

	assert.Contains(t, tokens, "internationalization")
	assert.Contains(t, tokens, "internatio")
	assert.Contains(t, tokens, "nalization")
}

func TestNormalise_ShortTokensNotHalved(t *testing.T) {
	got := Normalise("golang")

	assert.Equal(t, "golang", got)
}

func TestNormalise_HalvesAreRuneBased(t *testing.T) {
	got := Normalise("über-qualifiziert")
	tokens := strings.Fields(got)

	// "qualifiziert" has 12 runes; its halves split at rune 6.
	assert.Contains(t, tokens, "qualif")
	assert.Contains(t, tokens, "iziert")
}

func TestNormalise_DotNetRepair(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, got string)
	}{
		{
			name:  "standalone dot net",
			input: "experienced in .NET development",
			check: func(t *testing.T, got string) {
				assert.Contains(t, strings.Fields(got), "dotnet")
			},
		},
		{
			name:  "leading dot net",
			input: ".net developer",
			check: func(t *testing.T, got string) {
				assert.Contains(t, strings.Fields(got), "dotnet")
			},
		},
		{
			name:  "suffix of another token untouched",
			input: "ASP.net apps",
			check: func(t *testing.T, got string) {
				assert.NotContains(t, got, "dotnet")
			},
		},
		{
			name:  "domain name untouched",
			input: "see hire.network today",
			check: func(t *testing.T, got string) {
				assert.NotContains(t, got, "dotnet")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, Normalise(tt.input))
		})
	}
}

func TestNormalise_StripsEmails(t *testing.T) {
	got := Normalise("contact ann@example.com today")

	assert.NotContains(t, got, "@")
	assert.NotContains(t, got, "example")
	assert.Contains(t, got, "contact")
	assert.Contains(t, got, "today")
}

func TestNormalise_StripsURLs(t *testing.T) {
	got := Normalise("portfolio at https://ann.dev/work and www.ann.dev please")

	assert.NotContains(t, got, "http")
	assert.NotContains(t, got, "www")
	assert.NotContains(t, got, "ann")
}

func TestNormalise_QuotedPhraseKeepsBothSpellings(t *testing.T) {
	got := Normalise(`skilled in "Machine Learning" daily`)

	assert.Contains(t, got, "machine learning")
	assert.Contains(t, got, "machinelearning")
	assert.NotContains(t, got, `"`)
}

func TestNormalise_SymbolsBecomeSpaces(t *testing.T) {
	got := Normalise("node.js / react")

	assert.Contains(t, got, "node js")
	assert.NotContains(t, got, "/")
	assert.NotContains(t, got, ".")
}

func TestNormalise_UnderscoreSurvives(t *testing.T) {
	got := Normalise("snake_case")

	assert.Contains(t, strings.Fields(got), "snake_case")
}

func TestNormalise_CollapsesWhitespace(t *testing.T) {
	got := Normalise("a\n\n b\t  c")

	assert.NotContains(t, got, "  ")
	assert.False(t, strings.HasPrefix(got, " "))
	assert.False(t, strings.HasSuffix(got, " "))
}

func TestNormalise_Empty(t *testing.T) {
	assert.Equal(t, "", Normalise(""))
	assert.Equal(t, "", Normalise("   \t\n"))
}
