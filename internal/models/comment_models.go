package models

// Category is the per-comment sentiment bucket.
type Category string

const (
	CategoryPositive Category = "Positive"
	CategoryNeutral  Category = "Neutral"
	CategoryNegative Category = "Negative"
)

// RawComment is one top-level comment as returned by the video API,
// before any analysis.
type RawComment struct {
	Author string `json:"author"`
	Text   string `json:"text"`
}

// CommentRecord is one analyzed comment. Records are never mutated
// after they are appended to a ResultTable.
type CommentRecord struct {
	Author     string   `json:"author"`
	Original   string   `json:"original"`
	Translated string   `json:"translated"`
	Score      float64  `json:"score"`
	Category   Category `json:"category"`
}

// ResultTable is the analyzed comment set for one video, in API
// response order.
type ResultTable []CommentRecord
