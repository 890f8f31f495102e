package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"insight-api/domain"
	"insight-api/logger"
	"insight-api/port"
	otelutil "insight-api/utils/otel"
)

const (
	// DefaultReportWindowDays is the report window when the caller gives none.
	DefaultReportWindowDays = 30
	// maxReportKeywords caps the keyword exposure list.
	maxReportKeywords = 20
)

// UserReportUsecase assembles one user's recent-activity report: what they
// watched, how they evaluated, which leanings the covering media carried.
type UserReportUsecase struct {
	repo port.CollectionRepository
	log  *slog.Logger
	now  func() time.Time
}

func NewUserReportUsecase(repo port.CollectionRepository, log *slog.Logger) *UserReportUsecase {
	if log == nil {
		log = slog.Default()
	}
	return &UserReportUsecase{repo: repo, log: log, now: time.Now}
}

// Execute builds the report for the trailing windowDays ending now. A window
// below one day falls back to DefaultReportWindowDays. Unknown user IDs
// yield domain.ErrUserNotFound.
func (u *UserReportUsecase) Execute(ctx context.Context, userID string, windowDays int) (*domain.UserReport, error) {
	ctx = logger.WithAggregation(ctx, "user_report")
	start := time.Now()
	defer func() {
		otelutil.RecordAggregationDuration(ctx, "user_report", time.Since(start).Seconds())
	}()

	if windowDays < 1 {
		windowDays = DefaultReportWindowDays
	}

	users := u.repo.Users(ctx)
	if !users.Loaded() {
		return nil, &domain.RepositoryError{Op: "load users", Err: errors.New(users.Reason)}
	}
	known := false
	for _, user := range users.Records {
		if user.ID == userID {
			known = true
			break
		}
	}
	if !known {
		known = u.hasActivity(ctx, userID)
	}
	if !known {
		return nil, domain.ErrUserNotFound
	}

	windowEnd := u.now().UTC()
	windowStart := windowEnd.AddDate(0, 0, -windowDays)
	report := &domain.UserReport{
		UserID:      userID,
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
	}

	issuesByID := make(map[string]domain.Issue)
	for _, issue := range u.repo.Issues(ctx).Records {
		issuesByID[issue.ID] = issue
	}

	watchCounts := make(map[string]int)
	dayCounts := make(map[time.Time]int)
	orphanWatches := 0
	for _, watch := range u.repo.WatchHistory(ctx).Records {
		if watch.UserID != userID || watch.WatchedAt == nil {
			continue
		}
		at := watch.WatchedAt.UTC()
		if at.Before(windowStart) || at.After(windowEnd) {
			continue
		}
		if _, ok := issuesByID[watch.IssueID]; !ok {
			orphanWatches++
			continue
		}
		watchCounts[watch.IssueID]++
		dayCounts[truncateToDay(at)]++
	}
	if orphanWatches > 0 {
		u.log.Warn("dropped watch events referencing unknown issues",
			"userId", userID, "count", orphanWatches)
	}

	report.WatchesByIssue = issueWatchCounts(watchCounts, issuesByID)
	report.WatchesByCat = categoryWatchCounts(watchCounts, issuesByID)
	report.WatchesByDay = dailyWatchCounts(dayCounts)
	report.EvaluationCounts = u.evaluationCounts(ctx, userID, windowStart, windowEnd)
	report.CommentLikes = u.commentLikeCounts(ctx, userID, windowStart, windowEnd)
	report.MediaCoverage = u.mediaCoverage(ctx, watchCounts, issuesByID)
	report.Keywords = keywordExposure(watchCounts, issuesByID)

	return report, nil
}

// hasActivity widens the unknown-user check beyond the users export: a user
// with records in any activity collection still gets a report.
func (u *UserReportUsecase) hasActivity(ctx context.Context, userID string) bool {
	for _, watch := range u.repo.WatchHistory(ctx).Records {
		if watch.UserID == userID {
			return true
		}
	}
	for _, eval := range u.repo.IssueEvaluations(ctx).Records {
		if eval.UserID == userID {
			return true
		}
	}
	for _, like := range u.repo.CommentLikes(ctx).Records {
		if like.UserID == userID {
			return true
		}
	}
	return false
}

func issueWatchCounts(watchCounts map[string]int, issuesByID map[string]domain.Issue) []domain.IssueWatchCount {
	records := make([]domain.IssueWatchCount, 0, len(watchCounts))
	for issueID, count := range watchCounts {
		issue := issuesByID[issueID]
		records = append(records, domain.IssueWatchCount{
			IssueID:    issueID,
			IssueTitle: issue.Title,
			Category:   issue.Category,
			WatchCount: count,
		})
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].WatchCount != records[j].WatchCount {
			return records[i].WatchCount > records[j].WatchCount
		}
		return records[i].IssueID < records[j].IssueID
	})
	return records
}

func categoryWatchCounts(watchCounts map[string]int, issuesByID map[string]domain.Issue) []domain.CategoryWatchCount {
	byCategory := make(map[domain.Category]int)
	for issueID, count := range watchCounts {
		byCategory[issuesByID[issueID].Category] += count
	}
	records := make([]domain.CategoryWatchCount, 0, len(byCategory))
	for category, count := range byCategory {
		records = append(records, domain.CategoryWatchCount{Category: category, WatchCount: count})
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].WatchCount != records[j].WatchCount {
			return records[i].WatchCount > records[j].WatchCount
		}
		return records[i].Category < records[j].Category
	})
	return records
}

func dailyWatchCounts(dayCounts map[time.Time]int) []domain.DailyWatchCount {
	records := make([]domain.DailyWatchCount, 0, len(dayCounts))
	for day, count := range dayCounts {
		records = append(records, domain.DailyWatchCount{Date: day, WatchCount: count})
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
	return records
}

func (u *UserReportUsecase) evaluationCounts(ctx context.Context, userID string, from, to time.Time) []domain.PerspectiveCount {
	counts := make(map[string]int)
	for _, eval := range u.repo.IssueEvaluations(ctx).Records {
		if eval.UserID != userID || eval.EvaluatedAt == nil {
			continue
		}
		at := eval.EvaluatedAt.UTC()
		if at.Before(from) || at.After(to) {
			continue
		}
		counts[perspectiveLabel(eval.Perspective)]++
	}
	return perspectiveCounts(counts)
}

func (u *UserReportUsecase) commentLikeCounts(ctx context.Context, userID string, from, to time.Time) []domain.PerspectiveCount {
	counts := make(map[string]int)
	for _, like := range u.repo.CommentLikes(ctx).Records {
		if like.UserID != userID || like.LikedAt == nil {
			continue
		}
		at := like.LikedAt.UTC()
		if at.Before(from) || at.After(to) {
			continue
		}
		counts[perspectiveLabel(like.Perspective)]++
	}
	return perspectiveCounts(counts)
}

func perspectiveLabel(p domain.Perspective) string {
	if p.Valid() {
		return string(p)
	}
	return unknownSlice
}

// perspectiveCounts fixes the output order: left, center, right, unknown.
func perspectiveCounts(counts map[string]int) []domain.PerspectiveCount {
	records := make([]domain.PerspectiveCount, 0, 4)
	for _, p := range domain.Perspectives() {
		records = append(records, domain.PerspectiveCount{Perspective: string(p), Count: counts[string(p)]})
	}
	records = append(records, domain.PerspectiveCount{Perspective: unknownSlice, Count: counts[unknownSlice]})
	return records
}

// mediaCoverage weighs each covering source's declared bucket by the user's
// watch count on the covered issue, normalized to a total weight of one.
func (u *UserReportUsecase) mediaCoverage(ctx context.Context, watchCounts map[string]int, issuesByID map[string]domain.Issue) []domain.PerspectiveCoverage {
	declaredByMedia := make(map[string]domain.DeclaredPerspective)
	for _, media := range u.repo.MediaSources(ctx).Records {
		declaredByMedia[media.ID] = media.Perspective
	}

	weights := make(map[string]float64)
	total := 0.0
	for issueID, count := range watchCounts {
		sources := issuesByID[issueID].Sources
		if len(sources) == 0 {
			continue
		}
		// Each issue contributes its watch count once, split evenly across
		// the sources covering it.
		perSource := float64(count) / float64(len(sources))
		for _, source := range sources {
			declared, ok := declaredByMedia[source.MediaID]
			if !ok {
				declared = source.Perspective
			}
			label := unknownSlice
			if bucket, ok := declared.Bucket(); ok {
				label = string(bucket)
			}
			weights[label] += perSource
			total += perSource
		}
	}

	records := make([]domain.PerspectiveCoverage, 0, 4)
	for _, p := range domain.Perspectives() {
		weight := weights[string(p)]
		if total > 0 {
			weight /= total
		}
		records = append(records, domain.PerspectiveCoverage{Perspective: string(p), Weight: weight})
	}
	unknown := weights[unknownSlice]
	if total > 0 {
		unknown /= total
	}
	records = append(records, domain.PerspectiveCoverage{Perspective: unknownSlice, Weight: unknown})
	return records
}

func keywordExposure(watchCounts map[string]int, issuesByID map[string]domain.Issue) []domain.KeywordExposure {
	type exposure struct {
		watchTotal int
		issueCount int
	}
	byKeyword := make(map[string]*exposure)
	for issueID, count := range watchCounts {
		for _, keyword := range issuesByID[issueID].Keywords {
			e, ok := byKeyword[keyword]
			if !ok {
				e = &exposure{}
				byKeyword[keyword] = e
			}
			e.watchTotal += count
			e.issueCount++
		}
	}

	records := make([]domain.KeywordExposure, 0, len(byKeyword))
	for keyword, e := range byKeyword {
		records = append(records, domain.KeywordExposure{
			Keyword:    keyword,
			WatchTotal: e.watchTotal,
			IssueCount: e.issueCount,
		})
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].WatchTotal != records[j].WatchTotal {
			return records[i].WatchTotal > records[j].WatchTotal
		}
		return records[i].Keyword < records[j].Keyword
	})
	if len(records) > maxReportKeywords {
		records = records[:maxReportKeywords]
	}
	return records
}
