package domain

import "time"

// CategoryScore holds the raw left/center/right points of one category at one
// moment. Exports that predate a side default it to 50.
type CategoryScore struct {
	Left   float64 `json:"left"`
	Center float64 `json:"center"`
	Right  float64 `json:"right"`
}

// ScoreHistoryRecord is one political-score snapshot for one user. Scores
// holds only the categories present in the source record.
type ScoreHistoryRecord struct {
	ID        string                     `json:"id"`
	UserID    string                     `json:"userId"`
	CreatedAt *time.Time                 `json:"createdAt"`
	Scores    map[Category]CategoryScore `json:"scores"`
}

// ScoreBucket is one (day, category) cell of the aggregated score timeline.
// Left, Center and Right are proportions of the per-bucket total; they sum to
// 1.0, or are all zero when the bucket total is zero.
type ScoreBucket struct {
	Date     time.Time `json:"date"`
	Category Category  `json:"category"`
	Left     float64   `json:"left"`
	Center   float64   `json:"center"`
	Right    float64   `json:"right"`
	Total    float64   `json:"total"`
}
