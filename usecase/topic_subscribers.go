package usecase

import (
	"context"
	"log/slog"
	"sort"

	"insight-api/domain"
	"insight-api/port"
)

// TopicSubscriberUsecase counts subscriptions per topic. Topics without a
// single subscriber stay in the result with a zero count; subscriptions
// pointing at unknown topics are dropped.
type TopicSubscriberUsecase struct {
	repo port.CollectionRepository
	log  *slog.Logger
}

func NewTopicSubscriberUsecase(repo port.CollectionRepository, log *slog.Logger) *TopicSubscriberUsecase {
	if log == nil {
		log = slog.Default()
	}
	return &TopicSubscriberUsecase{repo: repo, log: log}
}

// Execute returns every topic with its subscriber count, ordered by count
// descending and topic ID ascending on ties.
func (u *TopicSubscriberUsecase) Execute(ctx context.Context) domain.Table[domain.TopicCount] {
	topics := u.repo.Topics(ctx)
	if !topics.Loaded() {
		return domain.Table[domain.TopicCount]{
			Records: []domain.TopicCount{},
			Status:  topics.Status,
			Reason:  topics.Reason,
		}
	}

	counts := make(map[string]int, topics.Len())
	for _, topic := range topics.Records {
		counts[topic.ID] = 0
	}

	subscriptions := u.repo.TopicSubscriptions(ctx)
	orphans := 0
	for _, sub := range subscriptions.Records {
		if _, ok := counts[sub.TopicID]; !ok {
			orphans++
			continue
		}
		counts[sub.TopicID]++
	}
	if orphans > 0 {
		u.log.Warn("dropped subscriptions referencing unknown topics", "count", orphans)
	}

	records := make([]domain.TopicCount, 0, topics.Len())
	for _, topic := range topics.Records {
		records = append(records, domain.TopicCount{
			TopicID:         topic.ID,
			TopicName:       topic.Name,
			Category:        topic.Category,
			SubscriberCount: counts[topic.ID],
		})
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].SubscriberCount != records[j].SubscriberCount {
			return records[i].SubscriberCount > records[j].SubscriberCount
		}
		return records[i].TopicID < records[j].TopicID
	})

	status := topics.Status
	reason := ""
	if !subscriptions.Loaded() {
		status = subscriptions.Status
		reason = subscriptions.Reason
	}
	return domain.Table[domain.TopicCount]{Records: records, Status: status, Reason: reason}
}

// Top returns the first n topics of Execute's ordering. n below one yields an
// empty slice.
func (u *TopicSubscriberUsecase) Top(ctx context.Context, n int) domain.Table[domain.TopicCount] {
	table := u.Execute(ctx)
	if n < 1 {
		table.Records = []domain.TopicCount{}
		return table
	}
	if len(table.Records) > n {
		table.Records = table.Records[:n]
	}
	return table
}
