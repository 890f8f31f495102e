package domain

import "time"

// IssueSource is one media outlet listed as covering an issue. Perspective is
// the leaning embedded in the export; the media sources collection holds the
// authoritative declaration.
type IssueSource struct {
	MediaID     string              `json:"mediaId"`
	Name        string              `json:"name"`
	Perspective DeclaredPerspective `json:"perspective"`
}

// Issue is one record of the issues collection.
type Issue struct {
	ID               string             `json:"id"`
	Title            string             `json:"title"`
	Category         Category           `json:"category"`
	Keywords         []string           `json:"keywords"`
	Sources          []IssueSource      `json:"sources"`
	CoverageSpectrum map[string]float64 `json:"coverageSpectrum,omitempty"`
	CreatedAt        *time.Time         `json:"createdAt"`
	UpdatedAt        *time.Time         `json:"updatedAt"`
}

// IssueEvaluation is one user's perspective pick on one issue.
type IssueEvaluation struct {
	ID          string      `json:"id"`
	UserID      string      `json:"userId"`
	IssueID     string      `json:"issueId"`
	Perspective Perspective `json:"perspective"`
	EvaluatedAt *time.Time  `json:"evaluatedAt"`
}

// IssueComment is one record of the issue comments collection.
type IssueComment struct {
	ID          string      `json:"id"`
	IssueID     string      `json:"issueId"`
	UserID      string      `json:"userId"`
	Content     string      `json:"content"`
	Perspective Perspective `json:"perspective"`
	CreatedAt   *time.Time  `json:"createdAt"`
}

// IssueEvaluationSummary is the per-issue evaluation breakdown.
// TotalCount = LeftCount + CenterCount + RightCount.
type IssueEvaluationSummary struct {
	IssueID     string            `json:"issueId"`
	IssueTitle  string            `json:"issueTitle"`
	LeftCount   int               `json:"leftCount"`
	CenterCount int               `json:"centerCount"`
	RightCount  int               `json:"rightCount"`
	TotalCount  int               `json:"totalCount"`
	Recent      []IssueEvaluation `json:"recent,omitempty"`
}
