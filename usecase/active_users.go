package usecase

import (
	"context"
	"sort"

	"insight-api/domain"
	"insight-api/port"
)

// ActiveUsersUsecase lists users by their most recent score-history
// activity.
type ActiveUsersUsecase struct {
	repo port.CollectionRepository
}

func NewActiveUsersUsecase(repo port.CollectionRepository) *ActiveUsersUsecase {
	return &ActiveUsersUsecase{repo: repo}
}

// Execute groups score history per user and returns up to limit users
// ordered by last activity descending, users without any timestamped record
// last, ties on user ID ascending. A limit below one falls back to
// DefaultRecentLimit.
func (u *ActiveUsersUsecase) Execute(ctx context.Context, limit int) domain.Table[domain.UserActivity] {
	if limit < 1 {
		limit = DefaultRecentLimit
	}

	history := u.repo.ScoreHistory(ctx)
	if !history.Loaded() {
		return domain.Table[domain.UserActivity]{
			Records: []domain.UserActivity{},
			Status:  history.Status,
			Reason:  history.Reason,
		}
	}

	byUser := make(map[string]*domain.UserActivity)
	for _, record := range history.Records {
		if record.UserID == "" {
			continue
		}
		activity, ok := byUser[record.UserID]
		if !ok {
			activity = &domain.UserActivity{UserID: record.UserID}
			byUser[record.UserID] = activity
		}
		activity.RecordCount++
		if record.CreatedAt == nil {
			continue
		}
		if activity.LastActiveAt == nil || record.CreatedAt.After(*activity.LastActiveAt) {
			activity.LastActiveAt = record.CreatedAt
		}
	}

	records := make([]domain.UserActivity, 0, len(byUser))
	for _, activity := range byUser {
		records = append(records, *activity)
	}
	sort.Slice(records, func(i, j int) bool {
		return newerFirst(records[i].LastActiveAt, records[j].LastActiveAt, records[i].UserID, records[j].UserID)
	})

	if len(records) > limit {
		records = records[:limit]
	}
	return domain.Table[domain.UserActivity]{Records: records, Status: history.Status}
}
