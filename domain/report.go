package domain

import "time"

// IssueWatchCount is the per-issue view tally inside a user report, joined
// with issue metadata when the issue is known.
type IssueWatchCount struct {
	IssueID    string   `json:"issueId"`
	IssueTitle string   `json:"issueTitle"`
	Category   Category `json:"category"`
	WatchCount int      `json:"watchCount"`
}

// CategoryWatchCount is the per-category view tally inside a user report.
type CategoryWatchCount struct {
	Category   Category `json:"category"`
	WatchCount int      `json:"watchCount"`
}

// DailyWatchCount is the per-day view tally inside a user report.
type DailyWatchCount struct {
	Date       time.Time `json:"date"`
	WatchCount int       `json:"watchCount"`
}

// PerspectiveCount tallies events per three-way perspective; Perspective is
// "unknown" for events without one.
type PerspectiveCount struct {
	Perspective string `json:"perspective"`
	Count       int    `json:"count"`
}

// PerspectiveCoverage is the watch-weighted share of one perspective across
// the media sources covering a user's watched issues.
type PerspectiveCoverage struct {
	Perspective string  `json:"perspective"`
	Weight      float64 `json:"weight"`
}

// KeywordExposure is the watch-weighted footprint of one keyword across a
// user's watched issues.
type KeywordExposure struct {
	Keyword    string `json:"keyword"`
	WatchTotal int    `json:"watchTotal"`
	IssueCount int    `json:"issueCount"`
}

// UserReport is the recent-window activity summary for one user.
type UserReport struct {
	UserID           string                `json:"userId"`
	WindowStart      time.Time             `json:"windowStart"`
	WindowEnd        time.Time             `json:"windowEnd"`
	WatchesByIssue   []IssueWatchCount     `json:"watchesByIssue"`
	WatchesByCat     []CategoryWatchCount  `json:"watchesByCategory"`
	WatchesByDay     []DailyWatchCount     `json:"watchesByDay"`
	EvaluationCounts []PerspectiveCount    `json:"evaluationCounts"`
	CommentLikes     []PerspectiveCount    `json:"commentLikeCounts"`
	MediaCoverage    []PerspectiveCoverage `json:"mediaCoverage"`
	Keywords         []KeywordExposure     `json:"keywords"`
}
