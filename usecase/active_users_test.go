package usecase

import (
	"context"
	"testing"

	"insight-api/domain"
)

func TestActiveUsersOrdersByLastActivity(t *testing.T) {
	repo := &stubRepo{
		scoreHistory: ok(
			scoreRecord("h1", "u1", "2025-06-01T00:00:00Z", nil),
			scoreRecord("h2", "u1", "2025-06-05T00:00:00Z", nil),
			scoreRecord("h3", "u2", "2025-06-03T00:00:00Z", nil),
			scoreRecord("h4", "u3", "", nil),
		),
	}
	u := NewActiveUsersUsecase(repo)

	result := u.Execute(context.Background(), 0)

	if len(result.Records) != 3 {
		t.Fatalf("got %d users, want 3", len(result.Records))
	}
	if result.Records[0].UserID != "u1" || result.Records[0].RecordCount != 2 {
		t.Errorf("records[0] = %+v, want u1 with 2 records", result.Records[0])
	}
	if got := result.Records[0].LastActiveAt; got == nil || !got.Equal(*ts("2025-06-05T00:00:00Z")) {
		t.Errorf("u1 LastActiveAt = %v, want 2025-06-05", got)
	}
	if result.Records[1].UserID != "u2" {
		t.Errorf("records[1] = %s, want u2", result.Records[1].UserID)
	}
	if result.Records[2].UserID != "u3" || result.Records[2].LastActiveAt != nil {
		t.Errorf("records[2] = %+v, want u3 with nil LastActiveAt last", result.Records[2])
	}
}

func TestActiveUsersAppliesLimit(t *testing.T) {
	repo := &stubRepo{
		scoreHistory: ok(
			scoreRecord("h1", "u1", "2025-06-01T00:00:00Z", nil),
			scoreRecord("h2", "u2", "2025-06-02T00:00:00Z", nil),
			scoreRecord("h3", "u3", "2025-06-03T00:00:00Z", nil),
		),
	}
	u := NewActiveUsersUsecase(repo)

	result := u.Execute(context.Background(), 2)

	if len(result.Records) != 2 {
		t.Fatalf("got %d users, want 2", len(result.Records))
	}
	if result.Records[0].UserID != "u3" {
		t.Errorf("records[0] = %s, want u3", result.Records[0].UserID)
	}
}

func TestActiveUsersPropagatesLoadFailure(t *testing.T) {
	repo := &stubRepo{
		scoreHistory: failed[domain.ScoreHistoryRecord](domain.LoadMissing, "no such file"),
	}
	u := NewActiveUsersUsecase(repo)

	result := u.Execute(context.Background(), 0)

	if result.Status != domain.LoadMissing {
		t.Errorf("status = %v, want missing", result.Status)
	}
}
