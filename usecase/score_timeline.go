package usecase

import (
	"context"
	"sort"
	"time"

	"insight-api/domain"
	"insight-api/logger"
	"insight-api/port"
	otelutil "insight-api/utils/otel"
)

// ScoreTimelineUsecase aggregates political score history into per-day,
// per-category spectrum proportions.
type ScoreTimelineUsecase struct {
	repo port.CollectionRepository
}

func NewScoreTimelineUsecase(repo port.CollectionRepository) *ScoreTimelineUsecase {
	return &ScoreTimelineUsecase{repo: repo}
}

type bucketKey struct {
	date     time.Time
	category domain.Category
}

// Execute filters score history to the inclusive [from, to] date range, sums
// each side per (day, category) bucket and normalizes the sums into
// proportions of the bucket total. Records without a timestamp are excluded.
// A nil bound leaves that side of the range open.
func (u *ScoreTimelineUsecase) Execute(ctx context.Context, from, to *time.Time) domain.Table[domain.ScoreBucket] {
	ctx = logger.WithAggregation(ctx, "score_timeline")
	start := time.Now()
	defer func() {
		otelutil.RecordAggregationDuration(ctx, "score_timeline", time.Since(start).Seconds())
	}()

	history := u.repo.ScoreHistory(ctx)
	if !history.Loaded() {
		return domain.Table[domain.ScoreBucket]{
			Records: []domain.ScoreBucket{},
			Status:  history.Status,
			Reason:  history.Reason,
		}
	}

	sums := make(map[bucketKey]*domain.ScoreBucket)
	for _, record := range history.Records {
		if record.CreatedAt == nil {
			continue
		}
		day := truncateToDay(*record.CreatedAt)
		if from != nil && day.Before(truncateToDay(*from)) {
			continue
		}
		if to != nil && day.After(truncateToDay(*to)) {
			continue
		}
		for category, score := range record.Scores {
			key := bucketKey{date: day, category: category}
			bucket, ok := sums[key]
			if !ok {
				bucket = &domain.ScoreBucket{Date: day, Category: category}
				sums[key] = bucket
			}
			bucket.Left += score.Left
			bucket.Center += score.Center
			bucket.Right += score.Right
		}
	}

	buckets := make([]domain.ScoreBucket, 0, len(sums))
	for _, bucket := range sums {
		bucket.Total = bucket.Left + bucket.Center + bucket.Right
		if bucket.Total > 0 {
			bucket.Left /= bucket.Total
			bucket.Center /= bucket.Total
			bucket.Right /= bucket.Total
		}
		buckets = append(buckets, *bucket)
	}

	sort.Slice(buckets, func(i, j int) bool {
		if !buckets[i].Date.Equal(buckets[j].Date) {
			return buckets[i].Date.Before(buckets[j].Date)
		}
		return buckets[i].Category < buckets[j].Category
	})

	return domain.Table[domain.ScoreBucket]{Records: buckets, Status: history.Status}
}

// truncateToDay reduces a timestamp to its UTC calendar day.
func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
