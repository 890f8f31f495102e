package gateway

import (
	"time"

	"insight-api/domain"
	"insight-api/mongoexport"
)

// Field extraction helpers for mongoexport records. Missing or mistyped
// optional fields degrade to zero values; only identifiers are load-bearing.

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func timeField(m map[string]any, key string) *time.Time {
	t, ok := mongoexport.Timestamp(m[key])
	if !ok {
		return nil
	}
	return &t
}

func idField(m map[string]any, key string) (string, bool) {
	v, ok := m[key]
	if !ok {
		return "", false
	}
	id, err := mongoexport.ObjectID(v)
	if err != nil {
		return "", false
	}
	return id, true
}

// sideScore reads one spectrum side; the exporter omits sides a user has no
// signal for, which counts as the neutral midpoint.
func sideScore(m map[string]any, key string) float64 {
	f, ok := m[key].(float64)
	if !ok {
		return 50
	}
	return f
}

// The users export is projected without _id; the stable identifier that the
// activity collections reference through userId is the plain id field.
func (g *CollectionGateway) convertUser(m map[string]any) (domain.User, bool) {
	id, ok := idField(m, "id")
	if !ok {
		id, ok = idField(m, "_id")
	}
	if !ok {
		return domain.User{}, false
	}
	return domain.User{
		ID:                  id,
		Nickname:            stringField(m, "nickname"),
		PoliticalPreference: domain.DeclaredPerspective(stringField(m, "politicalPreference")),
		CreatedAt:           timeField(m, "createdAt"),
		UpdatedAt:           timeField(m, "updatedAt"),
	}, true
}

func (g *CollectionGateway) convertScoreHistory(m map[string]any) (domain.ScoreHistoryRecord, bool) {
	id, ok := idField(m, "_id")
	if !ok {
		return domain.ScoreHistoryRecord{}, false
	}
	record := domain.ScoreHistoryRecord{
		ID:        id,
		UserID:    stringField(m, "userId"),
		CreatedAt: timeField(m, "createdAt"),
		Scores:    make(map[domain.Category]domain.CategoryScore),
	}
	for _, category := range domain.Categories() {
		scores, ok := m[string(category)].(map[string]any)
		if !ok {
			continue
		}
		record.Scores[category] = domain.CategoryScore{
			Left:   sideScore(scores, "left"),
			Center: sideScore(scores, "center"),
			Right:  sideScore(scores, "right"),
		}
	}
	return record, true
}

func (g *CollectionGateway) convertTopic(m map[string]any) (domain.Topic, bool) {
	id, ok := idField(m, "_id")
	if !ok {
		return domain.Topic{}, false
	}
	return domain.Topic{
		ID:        id,
		Name:      stringField(m, "name"),
		Category:  domain.Category(stringField(m, "category")),
		CreatedAt: timeField(m, "createdAt"),
		UpdatedAt: timeField(m, "updatedAt"),
	}, true
}

func (g *CollectionGateway) convertTopicSubscription(m map[string]any) (domain.TopicSubscription, bool) {
	id, ok := idField(m, "_id")
	if !ok {
		return domain.TopicSubscription{}, false
	}
	topicID, ok := idField(m, "topicId")
	if !ok {
		return domain.TopicSubscription{}, false
	}
	return domain.TopicSubscription{
		ID:           id,
		UserID:       stringField(m, "userId"),
		TopicID:      topicID,
		SubscribedAt: timeField(m, "subscribedAt"),
	}, true
}

func (g *CollectionGateway) convertIssue(m map[string]any) (domain.Issue, bool) {
	id, ok := idField(m, "_id")
	if !ok {
		return domain.Issue{}, false
	}
	issue := domain.Issue{
		ID:        id,
		Title:     stringField(m, "title"),
		Category:  domain.Category(stringField(m, "category")),
		CreatedAt: timeField(m, "createdAt"),
		UpdatedAt: timeField(m, "updatedAt"),
	}
	if keywords, ok := m["keywords"].([]any); ok {
		for _, kw := range keywords {
			if s, ok := kw.(string); ok {
				issue.Keywords = append(issue.Keywords, s)
			}
		}
	}
	if sources, ok := m["sources"].([]any); ok {
		for _, elem := range sources {
			sm, ok := elem.(map[string]any)
			if !ok {
				continue
			}
			mediaID, ok := idField(sm, "_id")
			if !ok {
				continue
			}
			issue.Sources = append(issue.Sources, domain.IssueSource{
				MediaID:     mediaID,
				Name:        stringField(sm, "name"),
				Perspective: domain.DeclaredPerspective(stringField(sm, "perspective")),
			})
		}
	}
	if spectrum, ok := m["coverageSpectrum"].(map[string]any); ok {
		issue.CoverageSpectrum = make(map[string]float64, len(spectrum))
		for key, value := range spectrum {
			if f, ok := value.(float64); ok {
				issue.CoverageSpectrum[key] = f
			}
		}
	}
	return issue, true
}

func (g *CollectionGateway) convertIssueEvaluation(m map[string]any) (domain.IssueEvaluation, bool) {
	id, ok := idField(m, "_id")
	if !ok {
		return domain.IssueEvaluation{}, false
	}
	issueID, ok := idField(m, "issueId")
	if !ok {
		return domain.IssueEvaluation{}, false
	}
	return domain.IssueEvaluation{
		ID:          id,
		UserID:      stringField(m, "userId"),
		IssueID:     issueID,
		Perspective: domain.Perspective(stringField(m, "perspective")),
		EvaluatedAt: timeField(m, "evaluatedAt"),
	}, true
}

func (g *CollectionGateway) convertIssueComment(m map[string]any) (domain.IssueComment, bool) {
	id, ok := idField(m, "_id")
	if !ok {
		return domain.IssueComment{}, false
	}
	issueID, ok := idField(m, "issueId")
	if !ok {
		return domain.IssueComment{}, false
	}
	return domain.IssueComment{
		ID:          id,
		IssueID:     issueID,
		UserID:      stringField(m, "userId"),
		Content:     stringField(m, "content"),
		Perspective: domain.Perspective(stringField(m, "perspective")),
		CreatedAt:   timeField(m, "createdAt"),
	}, true
}

func (g *CollectionGateway) convertMediaSource(m map[string]any) (domain.MediaSource, bool) {
	id, ok := idField(m, "_id")
	if !ok {
		return domain.MediaSource{}, false
	}
	return domain.MediaSource{
		ID:          id,
		Name:        stringField(m, "name"),
		Perspective: domain.DeclaredPerspective(stringField(m, "perspective")),
		Description: stringField(m, "description"),
		WebsiteURL:  stringField(m, "websiteUrl"),
		CreatedAt:   timeField(m, "createdAt"),
	}, true
}

func (g *CollectionGateway) convertWatchHistory(m map[string]any) (domain.WatchHistoryRecord, bool) {
	id, ok := idField(m, "_id")
	if !ok {
		return domain.WatchHistoryRecord{}, false
	}
	issueID, ok := idField(m, "issueId")
	if !ok {
		return domain.WatchHistoryRecord{}, false
	}
	return domain.WatchHistoryRecord{
		ID:        id,
		UserID:    stringField(m, "userId"),
		IssueID:   issueID,
		WatchedAt: timeField(m, "watchedAt"),
	}, true
}

func (g *CollectionGateway) convertCommentLike(m map[string]any) (domain.CommentLike, bool) {
	id, ok := idField(m, "_id")
	if !ok {
		return domain.CommentLike{}, false
	}
	commentID, ok := idField(m, "commentId")
	if !ok {
		return domain.CommentLike{}, false
	}
	return domain.CommentLike{
		ID:          id,
		UserID:      stringField(m, "userId"),
		CommentID:   commentID,
		Perspective: domain.Perspective(stringField(m, "perspective")),
		LikedAt:     timeField(m, "likedAt"),
	}, true
}
