package usecase

import (
	"context"
	"errors"
	"sort"

	"insight-api/domain"
	"insight-api/port"
)

// UserJourneyUsecase traces one user's political score evolution over their
// full history.
type UserJourneyUsecase struct {
	repo port.CollectionRepository
}

func NewUserJourneyUsecase(repo port.CollectionRepository) *UserJourneyUsecase {
	return &UserJourneyUsecase{repo: repo}
}

// Execute returns one normalized spectrum point per (snapshot, category) of
// the user's score history, ordered by time ascending then category. Records
// without a timestamp are excluded. Unknown user IDs yield
// domain.ErrUserNotFound.
func (u *UserJourneyUsecase) Execute(ctx context.Context, userID string) (domain.Table[domain.ScoreBucket], error) {
	empty := domain.Table[domain.ScoreBucket]{Records: []domain.ScoreBucket{}}

	users := u.repo.Users(ctx)
	if !users.Loaded() {
		return empty, &domain.RepositoryError{Op: "load users", Err: errors.New(users.Reason)}
	}
	known := false
	for _, user := range users.Records {
		if user.ID == userID {
			known = true
			break
		}
	}
	if !known {
		return empty, domain.ErrUserNotFound
	}

	history := u.repo.ScoreHistory(ctx)
	if !history.Loaded() {
		empty.Status = history.Status
		empty.Reason = history.Reason
		return empty, nil
	}

	points := []domain.ScoreBucket{}
	for _, record := range history.Records {
		if record.UserID != userID || record.CreatedAt == nil {
			continue
		}
		at := record.CreatedAt.UTC()
		for category, score := range record.Scores {
			point := domain.ScoreBucket{
				Date:     at,
				Category: category,
				Left:     score.Left,
				Center:   score.Center,
				Right:    score.Right,
				Total:    score.Left + score.Center + score.Right,
			}
			if point.Total > 0 {
				point.Left /= point.Total
				point.Center /= point.Total
				point.Right /= point.Total
			}
			points = append(points, point)
		}
	}

	sort.Slice(points, func(i, j int) bool {
		if !points[i].Date.Equal(points[j].Date) {
			return points[i].Date.Before(points[j].Date)
		}
		return points[i].Category < points[j].Category
	})

	return domain.Table[domain.ScoreBucket]{Records: points, Status: history.Status}, nil
}
