package domain

import "time"

// Topic is one record of the topics collection.
type Topic struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Category  Category   `json:"category"`
	CreatedAt *time.Time `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

// TopicSubscription is one user-to-topic subscription record.
type TopicSubscription struct {
	ID           string     `json:"id"`
	UserID       string     `json:"userId"`
	TopicID      string     `json:"topicId"`
	SubscribedAt *time.Time `json:"subscribedAt"`
}

// TopicCount is the per-topic subscriber tally. Topics without a single
// subscription appear with SubscriberCount zero.
type TopicCount struct {
	TopicID         string   `json:"topicId"`
	TopicName       string   `json:"topicName"`
	Category        Category `json:"category"`
	SubscriberCount int      `json:"subscriberCount"`
}
