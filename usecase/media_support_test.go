package usecase

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insight-api/domain"
)

func mediaSupportRepo() *stubRepo {
	return &stubRepo{
		media: ok(
			domain.MediaSource{ID: "m1", Name: "Daily Left", Perspective: domain.DeclaredCenterLeft},
			domain.MediaSource{ID: "m2", Name: "Right Post", Perspective: domain.DeclaredRight},
		),
		issues: ok(
			domain.Issue{
				ID: "i1",
				Sources: []domain.IssueSource{
					{MediaID: "m1", Name: "Daily Left", Perspective: domain.DeclaredCenterLeft},
					{MediaID: "m2", Name: "Right Post", Perspective: domain.DeclaredRight},
				},
			},
		),
		evaluations: ok(
			domain.IssueEvaluation{ID: "e1", UserID: "u1", IssueID: "i1", Perspective: domain.PerspectiveLeft, EvaluatedAt: ts("2025-06-01T10:00:00Z")},
			domain.IssueEvaluation{ID: "e2", UserID: "u2", IssueID: "i1", Perspective: domain.PerspectiveLeft, EvaluatedAt: ts("2025-06-02T10:00:00Z")},
			domain.IssueEvaluation{ID: "e3", UserID: "u3", IssueID: "i1", Perspective: domain.PerspectiveRight, EvaluatedAt: ts("2025-06-01T15:00:00Z")},
			domain.IssueEvaluation{ID: "e4", UserID: "u4", IssueID: "i1", Perspective: domain.PerspectiveCenter, EvaluatedAt: ts("2025-06-03T10:00:00Z")},
		),
	}
}

func TestMediaSupportAccumulatesMatchingEvaluations(t *testing.T) {
	u := NewMediaSupportUsecase(mediaSupportRepo(), slog.New(slog.DiscardHandler))

	result, err := u.Execute(context.Background(), []string{"m1", "m2"})
	require.NoError(t, err)
	require.Equal(t, domain.LoadOK, result.Status)
	require.Len(t, result.Records, 3)

	// Ordered by evaluation time across media.
	assert.Equal(t, "m1", result.Records[0].MediaID)
	assert.Equal(t, 1, result.Records[0].CumulativeSupport)
	assert.Equal(t, domain.PerspectiveLeft, result.Records[0].Perspective)

	assert.Equal(t, "m2", result.Records[1].MediaID)
	assert.Equal(t, 1, result.Records[1].CumulativeSupport)

	assert.Equal(t, "m1", result.Records[2].MediaID)
	assert.Equal(t, 2, result.Records[2].CumulativeSupport, "center_left media gains support from left evaluations only")
}

func TestMediaSupportCurveNeverDecreases(t *testing.T) {
	u := NewMediaSupportUsecase(mediaSupportRepo(), slog.New(slog.DiscardHandler))

	result, err := u.Execute(context.Background(), []string{"m1"})
	require.NoError(t, err)

	last := 0
	for _, point := range result.Records {
		require.Equal(t, "m1", point.MediaID)
		assert.Equal(t, last+1, point.CumulativeSupport)
		last = point.CumulativeSupport
	}
}

func TestMediaSupportEmptySelectionMeansAllMedia(t *testing.T) {
	u := NewMediaSupportUsecase(mediaSupportRepo(), slog.New(slog.DiscardHandler))

	all, err := u.Execute(context.Background(), nil)
	require.NoError(t, err)
	explicit, err := u.Execute(context.Background(), []string{"m1", "m2"})
	require.NoError(t, err)

	assert.Equal(t, explicit.Records, all.Records)
}

func TestMediaSupportFallsBackToEmbeddedSourcePerspective(t *testing.T) {
	repo := mediaSupportRepo()
	repo.media = ok(
		domain.MediaSource{ID: "m1", Name: "Daily Left", Perspective: domain.DeclaredPerspective("??")},
	)
	u := NewMediaSupportUsecase(repo, slog.New(slog.DiscardHandler))

	result, err := u.Execute(context.Background(), []string{"m1"})
	require.NoError(t, err)

	// The issue's own source entry declares center_left, so left evaluations
	// still count.
	require.Len(t, result.Records, 2)
	assert.Equal(t, domain.PerspectiveLeft, result.Records[0].Perspective)
	assert.Equal(t, 2, result.Records[1].CumulativeSupport)
}

func TestMediaSupportCountsEachPerspectiveCurveSeparately(t *testing.T) {
	// One media with no usable declared leaning can ride the embedded source
	// perspective, which may differ between issues. Each (media, perspective)
	// curve must still grow by exactly one per event.
	repo := mediaSupportRepo()
	repo.media = ok(
		domain.MediaSource{ID: "m1", Name: "Daily", Perspective: domain.DeclaredPerspective("??")},
	)
	repo.issues = ok(
		domain.Issue{ID: "i1", Sources: []domain.IssueSource{{MediaID: "m1", Perspective: domain.DeclaredLeft}}},
		domain.Issue{ID: "i2", Sources: []domain.IssueSource{{MediaID: "m1", Perspective: domain.DeclaredRight}}},
	)
	repo.evaluations = ok(
		domain.IssueEvaluation{ID: "e1", IssueID: "i1", Perspective: domain.PerspectiveLeft, EvaluatedAt: ts("2025-06-01T10:00:00Z")},
		domain.IssueEvaluation{ID: "e2", IssueID: "i2", Perspective: domain.PerspectiveRight, EvaluatedAt: ts("2025-06-01T12:00:00Z")},
		domain.IssueEvaluation{ID: "e3", IssueID: "i1", Perspective: domain.PerspectiveLeft, EvaluatedAt: ts("2025-06-02T10:00:00Z")},
	)
	u := NewMediaSupportUsecase(repo, slog.New(slog.DiscardHandler))

	result, err := u.Execute(context.Background(), []string{"m1"})
	require.NoError(t, err)

	last := make(map[domain.Perspective]int)
	for _, point := range result.Records {
		require.Equal(t, "m1", point.MediaID)
		assert.Equal(t, last[point.Perspective]+1, point.CumulativeSupport)
		last[point.Perspective] = point.CumulativeSupport
	}
	assert.Equal(t, 2, last[domain.PerspectiveLeft])
	assert.Equal(t, 1, last[domain.PerspectiveRight])
}

func TestMediaSupportUnknownMediaID(t *testing.T) {
	u := NewMediaSupportUsecase(mediaSupportRepo(), slog.New(slog.DiscardHandler))

	_, err := u.Execute(context.Background(), []string{"m1", "nope"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMediaSourceNotFound))
}

func TestMediaSupportSkipsEvaluationsWithoutTimestamp(t *testing.T) {
	repo := mediaSupportRepo()
	repo.evaluations = ok(
		domain.IssueEvaluation{ID: "e1", IssueID: "i1", Perspective: domain.PerspectiveLeft},
	)
	u := NewMediaSupportUsecase(repo, slog.New(slog.DiscardHandler))

	result, err := u.Execute(context.Background(), []string{"m1"})
	require.NoError(t, err)
	assert.Empty(t, result.Records)
}

func TestMediaSupportPropagatesMediaLoadFailure(t *testing.T) {
	repo := mediaSupportRepo()
	repo.media = failed[domain.MediaSource](domain.LoadMissing, "no such file")
	u := NewMediaSupportUsecase(repo, slog.New(slog.DiscardHandler))

	result, err := u.Execute(context.Background(), []string{"m1"})
	require.NoError(t, err)
	assert.Equal(t, domain.LoadMissing, result.Status)
	assert.Empty(t, result.Records)
}
