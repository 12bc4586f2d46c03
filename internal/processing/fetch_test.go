package processing

import (
	"context"
	"errors"
	"testing"

	"github.com/spacesedan/tubemood/internal/models"
	"github.com/spacesedan/tubemood/internal/sentiment"
)

type stubTranslator struct {
	out string
	err error
}

func (s stubTranslator) Translate(_ context.Context, text string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if s.out == "" {
		return text, nil
	}
	return s.out, nil
}

type stubSource struct {
	comments []models.RawComment
	err      error
}

func (s stubSource) TopLevelComments(_ context.Context, _ string, _ int64) ([]models.RawComment, error) {
	return s.comments, s.err
}

func TestAnalyzeCommentTranslates(t *testing.T) {
	analyzer := NewAnalyzer(stubTranslator{out: "I love this"})

	score, category, final := analyzer.AnalyzeComment(context.Background(), "original text")
	if final != "I love this" {
		t.Errorf("final text = %q, want translated form", final)
	}
	if score <= 0 {
		t.Errorf("score = %v, want positive", score)
	}
	if category != models.CategoryPositive {
		t.Errorf("category = %v, want Positive", category)
	}
}

func TestAnalyzeCommentFallsBackOnError(t *testing.T) {
	analyzer := NewAnalyzer(stubTranslator{err: errors.New("service unavailable")})

	score, category, final := analyzer.AnalyzeComment(context.Background(), "just some words")
	if final != "just some words" {
		t.Errorf("final text = %q, want the untranslated input", final)
	}
	if got := sentiment.Classify(score); got != category {
		t.Errorf("category %v does not match score %v", category, score)
	}
}

type emptyTranslator struct{}

func (emptyTranslator) Translate(_ context.Context, _ string) (string, error) {
	return "", nil
}

func TestAnalyzeCommentFallsBackOnEmptyTranslation(t *testing.T) {
	analyzer := NewAnalyzer(emptyTranslator{})

	_, _, final := analyzer.AnalyzeComment(context.Background(), "decent enough")
	if final != "decent enough" {
		t.Errorf("final text = %q, want the untranslated input", final)
	}
}

func TestAnalyzeCommentNormalizesSpacedLetters(t *testing.T) {
	analyzer := NewAnalyzer(stubTranslator{out: "T O P video"})

	_, _, final := analyzer.AnalyzeComment(context.Background(), "whatever")
	if final != "TOP video" {
		t.Errorf("final text = %q, want spaced letters collapsed", final)
	}
}

func TestFetchBuildsTableInOrder(t *testing.T) {
	source := stubSource{comments: []models.RawComment{
		{Author: "alice", Text: "What a wonderful, amazing video!"},
		{Author: "bob", Text: "meh"},
		{Author: "carol", Text: "Awful. Worst thing I have ever seen."},
	}}
	fetcher := NewFetcher(source, NewAnalyzer(stubTranslator{}))

	table, err := fetcher.Fetch(context.Background(), "abc12345678", 40)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table) != 3 {
		t.Fatalf("table length = %d, want 3", len(table))
	}

	wantAuthors := []string{"alice", "bob", "carol"}
	for i, record := range table {
		if record.Author != wantAuthors[i] {
			t.Errorf("record %d author = %q, want %q", i, record.Author, wantAuthors[i])
		}
		if record.Original != source.comments[i].Text {
			t.Errorf("record %d original = %q, want %q", i, record.Original, source.comments[i].Text)
		}
		if got := sentiment.Classify(record.Score); got != record.Category {
			t.Errorf("record %d category %v does not match score %v", i, record.Category, record.Score)
		}
	}

	if table[0].Category != models.CategoryPositive {
		t.Errorf("first record category = %v, want Positive", table[0].Category)
	}
	if table[2].Category != models.CategoryNegative {
		t.Errorf("last record category = %v, want Negative", table[2].Category)
	}
}

func TestFetchFailsWholesale(t *testing.T) {
	source := stubSource{err: errors.New("comments are disabled")}
	fetcher := NewFetcher(source, NewAnalyzer(stubTranslator{}))

	table, err := fetcher.Fetch(context.Background(), "abc12345678", 40)
	if err == nil {
		t.Fatal("expected an error")
	}
	if table != nil {
		t.Errorf("expected no partial table, got %d records", len(table))
	}
}
