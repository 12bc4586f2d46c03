// Package report derives aggregate statistics and rendered summaries
// from an analyzed comment table. Summaries are recomputed from the
// table on every call, never cached.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spacesedan/tubemood/internal/models"
)

// Verdict thresholds for the whole comment set. Deliberately stricter
// than the per-comment classification thresholds in the sentiment
// package.
const VerdictThreshold = 0.1

type Verdict string

const (
	VerdictPositive Verdict = "Positive"
	VerdictNegative Verdict = "Negative"
	VerdictMixed    Verdict = "Mixed"
)

// Summary is the aggregate view of one result table.
type Summary struct {
	Total    int
	AvgScore float64
	Verdict  Verdict
	Counts   map[models.Category]int
}

// Percentage returns the share of cat in the summarized table.
func (s Summary) Percentage(cat models.Category) float64 {
	return float64(s.Counts[cat]) / float64(s.Total) * 100
}

// Summarize computes the aggregate statistics for table. The table
// must be non-empty; callers guard.
func Summarize(table models.ResultTable) Summary {
	s := Summary{
		Total:  len(table),
		Counts: make(map[models.Category]int),
	}

	var sum float64
	for _, record := range table {
		sum += record.Score
		s.Counts[record.Category]++
	}
	s.AvgScore = sum / float64(s.Total)

	switch {
	case s.AvgScore > VerdictThreshold:
		s.Verdict = VerdictPositive
	case s.AvgScore < -VerdictThreshold:
		s.Verdict = VerdictNegative
	default:
		s.Verdict = VerdictMixed
	}

	return s
}

// TopExtremes returns the n most positive and n most negative records,
// each sorted from strongest to weakest. Ties keep table order.
func TopExtremes(table models.ResultTable, n int) (positive, negative []models.CommentRecord) {
	byScore := make([]models.CommentRecord, len(table))
	copy(byScore, table)
	sort.SliceStable(byScore, func(i, j int) bool {
		return byScore[i].Score > byScore[j].Score
	})

	if n > len(byScore) {
		n = len(byScore)
	}

	positive = byScore[:n]
	negative = make([]models.CommentRecord, n)
	for i := 0; i < n; i++ {
		negative[i] = byScore[len(byScore)-1-i]
	}

	return positive, negative
}

var verdictLabels = map[Verdict]string{
	VerdictPositive: "👍 Positive",
	VerdictNegative: "👎 Negative",
	VerdictMixed:    "😐 Mixed",
}

// Text renders the console report: aggregates plus the five most
// positive and five most negative comments.
func Text(s Summary, table models.ResultTable) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📊 Analysis report\n")
	fmt.Fprintf(&b, "Total comments: %d\n", s.Total)
	fmt.Fprintf(&b, "Rating: %.2f (-1..1)\n", s.AvgScore)
	fmt.Fprintf(&b, "Verdict: %s\n\n", verdictLabels[s.Verdict])

	for _, cat := range []models.Category{models.CategoryPositive, models.CategoryNeutral, models.CategoryNegative} {
		fmt.Fprintf(&b, "%s: %d (%.1f%%)\n", cat, s.Counts[cat], s.Percentage(cat))
	}

	positive, negative := TopExtremes(table, 5)

	b.WriteString("\nTop positive comments:\n")
	writeExtremes(&b, positive)
	b.WriteString("\nTop negative comments:\n")
	writeExtremes(&b, negative)

	return b.String()
}

func writeExtremes(b *strings.Builder, records []models.CommentRecord) {
	for _, record := range records {
		fmt.Fprintf(b, "  [%+.2f] %s: %s\n", record.Score, record.Author, truncate(record.Translated, 80))
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}

// HTML renders the summary message the bot sends, matching Telegram's
// HTML parse mode.
func HTML(s Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📊 <b>Analysis report:</b>\n")
	fmt.Fprintf(&b, "Total comments: %d\n", s.Total)
	fmt.Fprintf(&b, "Rating: %.2f (-1..1)\n", s.AvgScore)
	fmt.Fprintf(&b, "Verdict: %s\n\n", verdictLabels[s.Verdict])
	fmt.Fprintf(&b, "💚 Positive comments: %d (%.1f%%)\n",
		s.Counts[models.CategoryPositive], s.Percentage(models.CategoryPositive))
	fmt.Fprintf(&b, "❤️ Negative comments: %d (%.1f%%)\n",
		s.Counts[models.CategoryNegative], s.Percentage(models.CategoryNegative))

	return b.String()
}
