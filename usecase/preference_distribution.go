package usecase

import (
	"context"
	"errors"

	"insight-api/domain"
	"insight-api/port"
)

// unknownSlice labels users without a recognizable declared preference.
const unknownSlice = "unknown"

// PreferenceDistributionUsecase breaks the user base down by declared
// political preference.
type PreferenceDistributionUsecase struct {
	repo port.CollectionRepository
}

func NewPreferenceDistributionUsecase(repo port.CollectionRepository) *PreferenceDistributionUsecase {
	return &PreferenceDistributionUsecase{repo: repo}
}

// Execute counts users per five-way declared preference. Users with an empty
// or unrecognized value fall into the "unknown" slice; every declared value
// appears even at zero.
func (u *PreferenceDistributionUsecase) Execute(ctx context.Context) (*domain.PreferenceDistribution, error) {
	users := u.repo.Users(ctx)
	if !users.Loaded() {
		return nil, &domain.RepositoryError{Op: "load users", Err: errors.New(users.Reason)}
	}

	declared := []domain.DeclaredPerspective{
		domain.DeclaredLeft,
		domain.DeclaredCenterLeft,
		domain.DeclaredCenter,
		domain.DeclaredCenterRight,
		domain.DeclaredRight,
	}

	counts := make(map[string]int, len(declared)+1)
	for _, user := range users.Records {
		if _, ok := user.PoliticalPreference.Bucket(); !ok {
			counts[unknownSlice]++
			continue
		}
		counts[string(user.PoliticalPreference)]++
	}

	dist := &domain.PreferenceDistribution{TotalUsers: users.Len()}
	for _, pref := range declared {
		dist.Counts = append(dist.Counts, domain.PreferenceCount{
			Preference: string(pref),
			UserCount:  counts[string(pref)],
		})
	}
	dist.Counts = append(dist.Counts, domain.PreferenceCount{
		Preference: unknownSlice,
		UserCount:  counts[unknownSlice],
	})

	return dist, nil
}
