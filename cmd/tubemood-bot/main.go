package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/spacesedan/tubemood/config"
	"github.com/spacesedan/tubemood/internal/clients"
	"github.com/spacesedan/tubemood/internal/export"
	"github.com/spacesedan/tubemood/internal/logging"
	"github.com/spacesedan/tubemood/internal/processing"
	"github.com/spacesedan/tubemood/internal/report"
	"github.com/spacesedan/tubemood/internal/videoid"
)

const (
	// Fewer comments than the CLI so the bot answers faster.
	maxResults = 40
	targetLang = "en"

	greeting   = "Hi! 👋\nSend me a YouTube video link and I will analyze its comments."
	notALink   = "That doesn't look like a YouTube link. Try again."
	inProgress = "⏳ Analyzing comments... This can take a minute."
	fetchFail  = "Couldn't fetch comments (either there are none, or access is restricted)."
)

func main() {
	config.LoadEnv()
	logging.InitLogger()

	cfg, err := config.FromEnv(true)
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

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		slog.Error("Failed to initialize Telegram bot", slog.String("error", err.Error()))
		os.Exit(1)
	}

	analyzer := processing.NewAnalyzer(clients.NewTranslateClient(targetLang))
	fetcher := processing.NewFetcher(yt, analyzer)

	slog.Info("🤖 Bot started", slog.String("username", bot.Self.UserName))

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := bot.GetUpdatesChan(u)

	// One update at a time, handled to completion.
	for update := range updates {
		if update.Message == nil || update.Message.Text == "" {
			continue
		}
		handleMessage(ctx, bot, fetcher, update.Message)
	}
}

func handleMessage(ctx context.Context, bot *tgbotapi.BotAPI, fetcher *processing.Fetcher, msg *tgbotapi.Message) {
	if msg.IsCommand() {
		if msg.Command() == "start" {
			replyTo(bot, msg, greeting)
		}
		return
	}

	videoID, err := videoid.Extract(strings.TrimSpace(msg.Text))
	if err != nil {
		replyTo(bot, msg, notALink)
		return
	}

	status, err := replyTo(bot, msg, inProgress)
	if err != nil {
		slog.Error("[Bot] Failed to send status message", slog.String("error", err.Error()))
		return
	}

	table, err := fetcher.Fetch(ctx, videoID, maxResults)
	if err != nil || len(table) == 0 {
		edit := tgbotapi.NewEditMessageText(msg.Chat.ID, status.MessageID, fetchFail)
		if _, err := bot.Send(edit); err != nil {
			slog.Error("[Bot] Failed to edit status message", slog.String("error", err.Error()))
		}
		return
	}

	summary := report.Summarize(table)
	reply := tgbotapi.NewMessage(msg.Chat.ID, report.HTML(summary))
	reply.ParseMode = tgbotapi.ModeHTML
	if _, err := bot.Send(reply); err != nil {
		slog.Error("[Bot] Failed to send summary", slog.String("error", err.Error()))
	}

	if chartPNG, err := report.RenderCharts(table); err != nil {
		slog.Error("[Bot] Failed to render charts", slog.String("error", err.Error()))
	} else {
		photo := tgbotapi.NewPhoto(msg.Chat.ID, tgbotapi.FileBytes{Name: "charts.png", Bytes: chartPNG})
		if _, err := bot.Send(photo); err != nil {
			slog.Error("[Bot] Failed to send chart photo", slog.String("error", err.Error()))
		}
	}

	if csvBytes, err := export.BotRecords(table); err != nil {
		slog.Error("[Bot] Failed to build CSV export", slog.String("error", err.Error()))
	} else {
		doc := tgbotapi.NewDocument(msg.Chat.ID, tgbotapi.FileBytes{
			Name:  fmt.Sprintf("report_%s.csv", videoID),
			Bytes: csvBytes,
		})
		doc.Caption = "📂 Detailed table"
		if _, err := bot.Send(doc); err != nil {
			slog.Error("[Bot] Failed to send CSV document", slog.String("error", err.Error()))
		}
	}

	if _, err := bot.Request(tgbotapi.NewDeleteMessage(msg.Chat.ID, status.MessageID)); err != nil {
		slog.Warn("[Bot] Failed to delete status message", slog.String("error", err.Error()))
	}
}

func replyTo(bot *tgbotapi.BotAPI, msg *tgbotapi.Message, text string) (tgbotapi.Message, error) {
	reply := tgbotapi.NewMessage(msg.Chat.ID, text)
	reply.ReplyToMessageID = msg.MessageID
	return bot.Send(reply)
}
