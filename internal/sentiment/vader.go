package sentiment

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"

	"github.com/spacesedan/tubemood/internal/models"
)

// Per-comment classification thresholds. Distinct from the verdict
// thresholds in the report package.
const (
	PositiveThreshold = 0.05
	NegativeThreshold = -0.05
)

var analyzer = govader.NewSentimentIntensityAnalyzer()

func RemoveLinks(input string) string {
	linkPattern := regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text

	urlPattern := regexp.MustCompile(`https?://\S+|www\.\S+`)
	input = urlPattern.ReplaceAllString(input, "")

	return input
}

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// StripMarkup flattens any markdown in a comment body and drops bare
// URLs, neither of which carries sentiment the lexicon should see.
func StripMarkup(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plain := tagPattern.ReplaceAllString(string(output), " ")
	plain = strings.Join(strings.Fields(plain), " ")

	return RemoveLinks(plain)
}

// CollapseSpacedLetters removes a whitespace run that sits between two
// single-letter tokens, undoing the "T O P" spacing machine translation
// sometimes produces. All boundary checks are made against the input
// string, so a whole spaced-out word collapses in one pass and the
// function is idempotent.
func CollapseSpacedLetters(s string) string {
	r := []rune(s)
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(r); {
		if !unicode.IsSpace(r[i]) {
			b.WriteRune(r[i])
			i++
			continue
		}

		j := i
		for j < len(r) && unicode.IsSpace(r[j]) {
			j++
		}

		prevSingle := i > 0 && isWordRune(r[i-1]) && (i < 2 || !isWordRune(r[i-2]))
		nextSingle := j < len(r) && isWordRune(r[j]) && (j+1 >= len(r) || !isWordRune(r[j+1]))
		if prevSingle && nextSingle {
			i = j
			continue
		}

		b.WriteString(string(r[i:j]))
		i = j
	}

	return b.String()
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Score returns the VADER compound polarity of text in [-1, 1].
func Score(text string) float64 {
	return analyzer.PolarityScores(StripMarkup(text)).Compound
}

// Classify maps a compound score onto the three-way category.
func Classify(score float64) models.Category {
	switch {
	case score >= PositiveThreshold:
		return models.CategoryPositive
	case score <= NegativeThreshold:
		return models.CategoryNegative
	default:
		return models.CategoryNeutral
	}
}
