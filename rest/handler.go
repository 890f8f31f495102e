package rest

import (
	"context"
	"log/slog"
	"time"

	"insight-api/domain"
	"insight-api/port"
)

// Usecase surfaces the handlers depend on. Kept narrow so handler tests can
// stub them without touching the collection layer.

type ScoreTimelineUsecase interface {
	Execute(ctx context.Context, from, to *time.Time) domain.Table[domain.ScoreBucket]
}

type TopicSubscriberUsecase interface {
	Execute(ctx context.Context) domain.Table[domain.TopicCount]
	Top(ctx context.Context, n int) domain.Table[domain.TopicCount]
}

type MediaSupportUsecase interface {
	Execute(ctx context.Context, mediaIDs []string) (domain.Table[domain.MediaSupportPoint], error)
}

type RecentIssuesUsecase interface {
	Execute(ctx context.Context, limit int) domain.Table[domain.Issue]
}

type IssueEvaluationUsecase interface {
	Execute(ctx context.Context, issueID string) (*domain.IssueEvaluationSummary, error)
}

type PreferenceDistributionUsecase interface {
	Execute(ctx context.Context) (*domain.PreferenceDistribution, error)
}

type ActiveUsersUsecase interface {
	Execute(ctx context.Context, limit int) domain.Table[domain.UserActivity]
}

type UserJourneyUsecase interface {
	Execute(ctx context.Context, userID string) (domain.Table[domain.ScoreBucket], error)
}

type UserReportUsecase interface {
	Execute(ctx context.Context, userID string, windowDays int) (*domain.UserReport, error)
}

// Handler contains all HTTP handlers for the insight API.
type Handler struct {
	scoreTimeline   ScoreTimelineUsecase
	topicSubs       TopicSubscriberUsecase
	mediaSupport    MediaSupportUsecase
	recentIssues    RecentIssuesUsecase
	issueEvals      IssueEvaluationUsecase
	preferenceDist  PreferenceDistributionUsecase
	activeUsers     ActiveUsersUsecase
	userJourney     UserJourneyUsecase
	userReport      UserReportUsecase
	collectionCache port.CollectionCache
	log             *slog.Logger
}

type HandlerDeps struct {
	ScoreTimeline   ScoreTimelineUsecase
	TopicSubs       TopicSubscriberUsecase
	MediaSupport    MediaSupportUsecase
	RecentIssues    RecentIssuesUsecase
	IssueEvals      IssueEvaluationUsecase
	PreferenceDist  PreferenceDistributionUsecase
	ActiveUsers     ActiveUsersUsecase
	UserJourney     UserJourneyUsecase
	UserReport      UserReportUsecase
	CollectionCache port.CollectionCache
	Logger          *slog.Logger
}

// NewHandler creates a new Handler.
func NewHandler(deps HandlerDeps) *Handler {
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		scoreTimeline:   deps.ScoreTimeline,
		topicSubs:       deps.TopicSubs,
		mediaSupport:    deps.MediaSupport,
		recentIssues:    deps.RecentIssues,
		issueEvals:      deps.IssueEvals,
		preferenceDist:  deps.PreferenceDist,
		activeUsers:     deps.ActiveUsers,
		userJourney:     deps.UserJourney,
		userReport:      deps.UserReport,
		collectionCache: deps.CollectionCache,
		log:             log,
	}
}
