package domain

import "time"

// WatchHistoryRecord is one issue view event.
type WatchHistoryRecord struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	IssueID   string     `json:"issueId"`
	WatchedAt *time.Time `json:"watchedAt"`
}

// CommentLike is one comment-like event. Perspective is the leaning of the
// liked comment, recorded on the like at write time.
type CommentLike struct {
	ID          string      `json:"id"`
	UserID      string      `json:"userId"`
	CommentID   string      `json:"commentId"`
	Perspective Perspective `json:"perspective"`
	LikedAt     *time.Time  `json:"likedAt"`
}
