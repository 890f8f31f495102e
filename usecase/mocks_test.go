package usecase

import (
	"context"
	"time"

	"insight-api/domain"
)

// stubRepo serves fixed tables; unset tables come back LoadMissing.
type stubRepo struct {
	users         *domain.Table[domain.User]
	scoreHistory  *domain.Table[domain.ScoreHistoryRecord]
	topics        *domain.Table[domain.Topic]
	subscriptions *domain.Table[domain.TopicSubscription]
	issues        *domain.Table[domain.Issue]
	evaluations   *domain.Table[domain.IssueEvaluation]
	comments      *domain.Table[domain.IssueComment]
	media         *domain.Table[domain.MediaSource]
	watches       *domain.Table[domain.WatchHistoryRecord]
	likes         *domain.Table[domain.CommentLike]
}

func table[T any](t *domain.Table[T]) domain.Table[T] {
	if t == nil {
		return domain.Table[T]{Records: []T{}, Status: domain.LoadMissing, Reason: "collection not stubbed"}
	}
	return *t
}

func ok[T any](records ...T) *domain.Table[T] {
	return &domain.Table[T]{Records: records, Status: domain.LoadOK}
}

func failed[T any](status domain.LoadStatus, reason string) *domain.Table[T] {
	return &domain.Table[T]{Records: []T{}, Status: status, Reason: reason}
}

func (r *stubRepo) Users(context.Context) domain.Table[domain.User] {
	return table(r.users)
}

func (r *stubRepo) ScoreHistory(context.Context) domain.Table[domain.ScoreHistoryRecord] {
	return table(r.scoreHistory)
}

func (r *stubRepo) Topics(context.Context) domain.Table[domain.Topic] {
	return table(r.topics)
}

func (r *stubRepo) TopicSubscriptions(context.Context) domain.Table[domain.TopicSubscription] {
	return table(r.subscriptions)
}

func (r *stubRepo) Issues(context.Context) domain.Table[domain.Issue] {
	return table(r.issues)
}

func (r *stubRepo) IssueEvaluations(context.Context) domain.Table[domain.IssueEvaluation] {
	return table(r.evaluations)
}

func (r *stubRepo) IssueComments(context.Context) domain.Table[domain.IssueComment] {
	return table(r.comments)
}

func (r *stubRepo) MediaSources(context.Context) domain.Table[domain.MediaSource] {
	return table(r.media)
}

func (r *stubRepo) WatchHistory(context.Context) domain.Table[domain.WatchHistoryRecord] {
	return table(r.watches)
}

func (r *stubRepo) CommentLikes(context.Context) domain.Table[domain.CommentLike] {
	return table(r.likes)
}

func ts(value string) *time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	t = t.UTC()
	return &t
}
