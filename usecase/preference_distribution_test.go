package usecase

import (
	"context"
	"errors"
	"testing"

	"insight-api/domain"
)

func TestPreferenceDistributionCountsAllSlices(t *testing.T) {
	repo := &stubRepo{
		users: ok(
			domain.User{ID: "u1", PoliticalPreference: domain.DeclaredLeft},
			domain.User{ID: "u2", PoliticalPreference: domain.DeclaredCenterLeft},
			domain.User{ID: "u3", PoliticalPreference: domain.DeclaredCenterLeft},
			domain.User{ID: "u4", PoliticalPreference: domain.DeclaredRight},
			domain.User{ID: "u5"},
			domain.User{ID: "u6", PoliticalPreference: "moderate"},
		),
	}
	u := NewPreferenceDistributionUsecase(repo)

	dist, err := u.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if dist.TotalUsers != 6 {
		t.Errorf("TotalUsers = %d, want 6", dist.TotalUsers)
	}

	want := map[string]int{
		"left":         1,
		"center_left":  2,
		"center":       0,
		"center_right": 0,
		"right":        1,
		"unknown":      2,
	}
	if len(dist.Counts) != len(want) {
		t.Fatalf("got %d slices, want %d", len(dist.Counts), len(want))
	}
	for _, slice := range dist.Counts {
		if slice.UserCount != want[slice.Preference] {
			t.Errorf("%s = %d, want %d", slice.Preference, slice.UserCount, want[slice.Preference])
		}
	}
}

func TestPreferenceDistributionUsersUnreadable(t *testing.T) {
	repo := &stubRepo{
		users: failed[domain.User](domain.LoadMissing, "no such file"),
	}
	u := NewPreferenceDistributionUsecase(repo)

	_, err := u.Execute(context.Background())
	if err == nil {
		t.Fatal("expected an error for an unreadable users collection")
	}
	var repoErr *domain.RepositoryError
	if !errors.As(err, &repoErr) {
		t.Errorf("error type = %T, want *domain.RepositoryError", err)
	}
}
