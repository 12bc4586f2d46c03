package processing

import (
	"context"
	"log/slog"

	"github.com/spacesedan/tubemood/internal/models"
	"github.com/spacesedan/tubemood/internal/sentiment"
)

// Translator renders text into the common target language.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// Analyzer runs the per-comment pipeline: translate, normalize, score,
// classify. It holds no state between calls.
type Analyzer struct {
	translator Translator
}

func NewAnalyzer(translator Translator) *Analyzer {
	return &Analyzer{translator: translator}
}

// AnalyzeComment returns the compound score, category and final
// (translated, normalized) form of one comment body. Translation
// failure is recovered by scoring the original text; it is never
// surfaced to the caller.
func (a *Analyzer) AnalyzeComment(ctx context.Context, text string) (float64, models.Category, string) {
	translated, err := a.translator.Translate(ctx, text)
	if err != nil || translated == "" {
		if err != nil {
			slog.Debug("[Analyzer] Translation failed, using original text",
				slog.String("error", err.Error()))
		}
		translated = text
	}

	finalText := sentiment.CollapseSpacedLetters(translated)
	score := sentiment.Score(finalText)

	return score, sentiment.Classify(score), finalText
}
