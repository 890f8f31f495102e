package port

import (
	"context"

	"insight-api/domain"
)

// CollectionRepository exposes one accessor per collection. Accessors never
// return a Go error: unreadable or empty sources degrade to a table whose
// Status says why (missing file, malformed content, empty array).
type CollectionRepository interface {
	Users(ctx context.Context) domain.Table[domain.User]
	ScoreHistory(ctx context.Context) domain.Table[domain.ScoreHistoryRecord]
	Topics(ctx context.Context) domain.Table[domain.Topic]
	TopicSubscriptions(ctx context.Context) domain.Table[domain.TopicSubscription]
	Issues(ctx context.Context) domain.Table[domain.Issue]
	IssueEvaluations(ctx context.Context) domain.Table[domain.IssueEvaluation]
	IssueComments(ctx context.Context) domain.Table[domain.IssueComment]
	MediaSources(ctx context.Context) domain.Table[domain.MediaSource]
	WatchHistory(ctx context.Context) domain.Table[domain.WatchHistoryRecord]
	CommentLikes(ctx context.Context) domain.Table[domain.CommentLike]
}

// CollectionCache is the injected memoization layer for loaded tables. Values
// are whole tables keyed by file name; invalidation is manual.
type CollectionCache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
	Invalidate(key string)
	Purge()
}
