package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spacesedan/tubemood/config"
	"github.com/spacesedan/tubemood/internal/clients"
	"github.com/spacesedan/tubemood/internal/export"
	"github.com/spacesedan/tubemood/internal/logging"
	"github.com/spacesedan/tubemood/internal/models"
	"github.com/spacesedan/tubemood/internal/processing"
	"github.com/spacesedan/tubemood/internal/report"
	"github.com/spacesedan/tubemood/internal/videoid"
)

const (
	maxResults = 100
	targetLang = "en"
)

func main() {
	config.LoadEnv()
	logging.InitLogger()

	cfg, err := config.FromEnv(false)
	if err != nil {
		slog.Error("Configuration error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	yt, err := clients.NewYouTubeClient(ctx, cfg.YouTubeAPIKey)
	if err != nil {
		slog.Error("Failed to initialize YouTube client", slog.String("error", err.Error()))
		os.Exit(1)
	}

	analyzer := processing.NewAnalyzer(clients.NewTranslateClient(targetLang))
	fetcher := processing.NewFetcher(yt, analyzer)

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("Enter a YouTube link or video ID (empty line to quit): ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		input := strings.TrimSpace(line)
		if input == "" {
			return
		}

		videoID, err := videoid.Extract(input)
		if err != nil {
			fmt.Println("That doesn't look like a YouTube link. Try again.")
			continue
		}

		fmt.Println("⏳ Analyzing comments... This can take a minute.")

		table, err := fetcher.Fetch(ctx, videoID, maxResults)
		if err != nil || len(table) == 0 {
			fmt.Println("Couldn't fetch comments (either there are none, or access is restricted).")
			continue
		}

		summary := report.Summarize(table)
		fmt.Println()
		fmt.Println(report.Text(summary, table))

		writeArtifacts(videoID, table)
	}
}

// writeArtifacts saves the chart image and the CSV export next to the
// working directory and prints their paths.
func writeArtifacts(videoID string, table models.ResultTable) {
	chartPath := fmt.Sprintf("report_%s.png", videoID)
	csvPath := fmt.Sprintf("report_%s.csv", videoID)

	chartPNG, err := report.RenderCharts(table)
	if err != nil {
		slog.Error("Failed to render charts", slog.String("error", err.Error()))
	} else if err := os.WriteFile(chartPath, chartPNG, 0644); err != nil {
		slog.Error("Failed to write chart image", slog.String("error", err.Error()))
	} else {
		fmt.Printf("Charts saved to %s\n", chartPath)
	}

	csvBytes, err := export.CLIRecords(table)
	if err != nil {
		slog.Error("Failed to build CSV export", slog.String("error", err.Error()))
		return
	}
	if err := os.WriteFile(csvPath, csvBytes, 0644); err != nil {
		slog.Error("Failed to write CSV export", slog.String("error", err.Error()))
		return
	}
	fmt.Printf("Detailed table saved to %s\n", csvPath)
}
