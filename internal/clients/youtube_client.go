package clients

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/spacesedan/tubemood/internal/models"
)

type YouTubeClient struct {
	service *youtube.Service
}

func NewYouTubeClient(ctx context.Context, apiKey string) (*YouTubeClient, error) {
	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &YouTubeClient{service: service}, nil
}

// TopLevelComments fetches a single page of up to maxResults top-level
// comment threads for videoID, bodies in plain text. Any API failure
// (bad ID, comments disabled, quota) fails the call as a whole.
func (y *YouTubeClient) TopLevelComments(ctx context.Context, videoID string, maxResults int64) ([]models.RawComment, error) {
	slog.Info("[YouTubeClient] Fetching comment threads",
		slog.String("video_id", videoID),
		slog.Int64("max_results", maxResults))
	start := time.Now()

	response, err := y.service.CommentThreads.List([]string{"snippet"}).
		VideoId(videoID).
		MaxResults(maxResults).
		TextFormat("plainText").
		Context(ctx).
		Do()
	if err != nil {
		slog.Error("[YouTubeClient] Comment thread request failed",
			slog.String("video_id", videoID),
			slog.Duration("elapsed", time.Since(start)),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to fetch comments for %s: %w", videoID, err)
	}

	comments := make([]models.RawComment, 0, len(response.Items))
	for _, item := range response.Items {
		snippet := item.Snippet.TopLevelComment.Snippet
		comments = append(comments, models.RawComment{
			Author: snippet.AuthorDisplayName,
			Text:   snippet.TextDisplay,
		})
	}

	slog.Info("[YouTubeClient] Comment threads fetched",
		slog.Int("count", len(comments)),
		slog.Duration("elapsed", time.Since(start)))

	return comments, nil
}
