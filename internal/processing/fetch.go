package processing

import (
	"context"
	"log/slog"
	"time"

	"github.com/spacesedan/tubemood/internal/models"
)

// CommentSource fetches a single page of top-level comments for a
// video.
type CommentSource interface {
	TopLevelComments(ctx context.Context, videoID string, maxResults int64) ([]models.RawComment, error)
}

// Fetcher pulls comments from a source and runs each through the
// analyzer, producing the result table for one video.
type Fetcher struct {
	source   CommentSource
	analyzer *Analyzer
}

func NewFetcher(source CommentSource, analyzer *Analyzer) *Fetcher {
	return &Fetcher{source: source, analyzer: analyzer}
}

// Fetch returns the analyzed table for videoID, preserving API response
// order. A source failure fails the fetch as a whole; no partial table
// is returned and nothing is retried.
func (f *Fetcher) Fetch(ctx context.Context, videoID string, maxResults int64) (models.ResultTable, error) {
	start := time.Now()

	raw, err := f.source.TopLevelComments(ctx, videoID, maxResults)
	if err != nil {
		return nil, err
	}

	table := make(models.ResultTable, 0, len(raw))
	for _, comment := range raw {
		score, category, translated := f.analyzer.AnalyzeComment(ctx, comment.Text)
		table = append(table, models.CommentRecord{
			Author:     comment.Author,
			Original:   comment.Text,
			Translated: translated,
			Score:      score,
			Category:   category,
		})
	}

	slog.Info("[Fetcher] Analyzed comments",
		slog.String("video_id", videoID),
		slog.Int("count", len(table)),
		slog.Duration("elapsed", time.Since(start)))

	return table, nil
}
