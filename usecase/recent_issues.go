package usecase

import (
	"context"
	"sort"
	"time"

	"insight-api/domain"
	"insight-api/port"
)

// DefaultRecentLimit caps recency listings when the caller gives no limit.
const DefaultRecentLimit = 20

// RecentIssuesUsecase lists issues by creation time, newest first.
type RecentIssuesUsecase struct {
	repo port.CollectionRepository
}

func NewRecentIssuesUsecase(repo port.CollectionRepository) *RecentIssuesUsecase {
	return &RecentIssuesUsecase{repo: repo}
}

// Execute returns up to limit issues ordered by createdAt descending. Issues
// without a timestamp sort last; ties break on issue ID ascending. A limit
// below one falls back to DefaultRecentLimit.
func (u *RecentIssuesUsecase) Execute(ctx context.Context, limit int) domain.Table[domain.Issue] {
	if limit < 1 {
		limit = DefaultRecentLimit
	}

	issues := u.repo.Issues(ctx)
	if !issues.Loaded() {
		return domain.Table[domain.Issue]{
			Records: []domain.Issue{},
			Status:  issues.Status,
			Reason:  issues.Reason,
		}
	}

	records := make([]domain.Issue, len(issues.Records))
	copy(records, issues.Records)
	sort.Slice(records, func(i, j int) bool {
		return newerFirst(records[i].CreatedAt, records[j].CreatedAt, records[i].ID, records[j].ID)
	})

	if len(records) > limit {
		records = records[:limit]
	}
	return domain.Table[domain.Issue]{Records: records, Status: issues.Status}
}

// newerFirst orders timestamps descending with nils last, falling back to
// ascending ID comparison.
func newerFirst(a, b *time.Time, idA, idB string) bool {
	switch {
	case a != nil && b != nil:
		if !a.Equal(*b) {
			return a.After(*b)
		}
	case a != nil:
		return true
	case b != nil:
		return false
	}
	return idA < idB
}
