package usecase

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"insight-api/domain"
	"insight-api/logger"
	"insight-api/port"
	otelutil "insight-api/utils/otel"
)

// MediaSupportUsecase builds cumulative support curves for selected media
// sources. A media source gains one support point whenever a user evaluates
// an issue it covers with the same perspective bucket the source declares.
type MediaSupportUsecase struct {
	repo port.CollectionRepository
	log  *slog.Logger
}

func NewMediaSupportUsecase(repo port.CollectionRepository, log *slog.Logger) *MediaSupportUsecase {
	if log == nil {
		log = slog.Default()
	}
	return &MediaSupportUsecase{repo: repo, log: log}
}

type supportEvent struct {
	mediaID      string
	evaluationID string
	perspective  domain.Perspective
	at           time.Time
}

// Execute returns the support curves for the given media IDs. Each curve is
// a sequence of points ordered by evaluation time whose CumulativeSupport
// grows by one per contributing evaluation. An unknown media ID yields
// domain.ErrMediaSourceNotFound.
func (u *MediaSupportUsecase) Execute(ctx context.Context, mediaIDs []string) (domain.Table[domain.MediaSupportPoint], error) {
	ctx = logger.WithAggregation(ctx, "media_support")
	start := time.Now()
	defer func() {
		otelutil.RecordAggregationDuration(ctx, "media_support", time.Since(start).Seconds())
	}()

	empty := domain.Table[domain.MediaSupportPoint]{Records: []domain.MediaSupportPoint{}}

	media := u.repo.MediaSources(ctx)
	if !media.Loaded() {
		empty.Status = media.Status
		empty.Reason = media.Reason
		return empty, nil
	}

	byID := make(map[string]domain.MediaSource, media.Len())
	for _, m := range media.Records {
		byID[m.ID] = m
	}

	// No IDs means every media source.
	if len(mediaIDs) == 0 {
		mediaIDs = make([]string, 0, len(byID))
		for id := range byID {
			mediaIDs = append(mediaIDs, id)
		}
	}

	requested := make(map[string]bool, len(mediaIDs))
	selected := make(map[string]domain.Perspective, len(mediaIDs))
	for _, id := range mediaIDs {
		source, ok := byID[id]
		if !ok {
			return empty, &domain.RepositoryError{Op: "resolve media source", Err: domain.ErrMediaSourceNotFound}
		}
		requested[id] = true
		bucket, ok := source.Perspective.Bucket()
		if !ok {
			mctx := logger.WithMediaID(ctx, id)
			logger.NewContextLogger(u.log).WithContext(mctx).Warn("media source declares no recognizable perspective")
			continue
		}
		selected[id] = bucket
	}

	issues := u.repo.Issues(ctx)
	evaluations := u.repo.IssueEvaluations(ctx)
	if !issues.Loaded() || !evaluations.Loaded() {
		failed := issues
		if issues.Loaded() {
			empty.Status = evaluations.Status
			empty.Reason = evaluations.Reason
		} else {
			empty.Status = failed.Status
			empty.Reason = failed.Reason
		}
		return empty, nil
	}

	issuesByID := make(map[string]domain.Issue, issues.Len())
	for _, issue := range issues.Records {
		issuesByID[issue.ID] = issue
	}

	var events []supportEvent
	orphans := 0
	for _, eval := range evaluations.Records {
		if eval.EvaluatedAt == nil {
			continue
		}
		issue, ok := issuesByID[eval.IssueID]
		if !ok {
			orphans++
			continue
		}
		for _, source := range issue.Sources {
			if !requested[source.MediaID] {
				continue
			}
			bucket, ok := selected[source.MediaID]
			if !ok {
				// Media record declares no usable leaning; fall back to the
				// perspective embedded in the issue's source entry.
				if bucket, ok = source.Perspective.Bucket(); !ok {
					continue
				}
			}
			if eval.Perspective == bucket {
				events = append(events, supportEvent{
					mediaID:      source.MediaID,
					evaluationID: eval.ID,
					perspective:  bucket,
					at:           eval.EvaluatedAt.UTC(),
				})
			}
		}
	}

	if orphans > 0 {
		u.log.Warn("evaluations reference unknown issues", "count", orphans)
	}

	// Equal timestamps keep the evaluation record order.
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].at.Before(events[j].at)
	})

	type curveKey struct {
		mediaID     string
		perspective domain.Perspective
	}
	running := make(map[curveKey]int, len(selected))
	points := make([]domain.MediaSupportPoint, 0, len(events))
	for _, event := range events {
		key := curveKey{mediaID: event.mediaID, perspective: event.perspective}
		running[key]++
		points = append(points, domain.MediaSupportPoint{
			MediaID:           event.mediaID,
			MediaName:         byID[event.mediaID].Name,
			Date:              event.at,
			Perspective:       event.perspective,
			CumulativeSupport: running[key],
		})
	}

	return domain.Table[domain.MediaSupportPoint]{Records: points, Status: domain.LoadOK}, nil
}
