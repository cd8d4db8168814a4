// Package categorizer assigns categories to transaction descriptions with
// keyword rules. The statistical fallback model is not implemented yet, so
// unmatched descriptions end up in the "uncategorized" bucket.
package categorizer

import (
	"strings"
	"unicode"

	"github.com/ryanuber/go-glob"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Uncategorized is the fallback bucket for descriptions without a keyword match.
const Uncategorized = "uncategorized"

const (
	methodRule = "rule"
	methodStub = "tfidf_stub"

	ruleConfidence = 0.82
	stubConfidence = 0.5
)

// CategoryKeywords is one category with its ordered keyword list. Callers
// pass categories as an ordered slice so that the first-match tie-break is
// deterministic.
type CategoryKeywords struct {
	Category string
	Keywords []string
}

// Result is the outcome of a categorization.
type Result struct {
	Category   string  `json:"category" example:"groceries"`
	Confidence float64 `json:"confidence" example:"0.82"`
	Method     string  `json:"method" example:"rule"`
}

var titleCaser = cases.Title(language.English)

// CleanText strips everything but letters from the input, lowercases it and
// collapses whitespace to single spaces.
func CleanText(input string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, input)

	return strings.Join(strings.Fields(mapped), " ")
}

// Merchant derives a normalized merchant name from a raw description.
func Merchant(description string) string {
	return titleCaser.String(CleanText(description))
}

// Categorize returns the first category with a case-insensitive keyword
// match in the description. It always returns a result.
func Categorize(description string, categories []CategoryKeywords) Result {
	cleaned := CleanText(description)

	for _, category := range categories {
		for _, keyword := range category.Keywords {
			if glob.Glob("*"+strings.ToLower(keyword)+"*", cleaned) {
				return Result{
					Category:   category.Category,
					Confidence: ruleConfidence,
					Method:     methodRule,
				}
			}
		}
	}

	// Placeholder for the TF-IDF model: return the generic bucket until a
	// model is trained.
	return Result{
		Category:   Uncategorized,
		Confidence: stubConfidence,
		Method:     methodStub,
	}
}
