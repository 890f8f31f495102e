package rest

import "insight-api/domain"

// TableResponse is the envelope for list endpoints backed by collection
// tables. Status tells the caller whether an empty records array means "no
// data" or "source unreadable".
type TableResponse[T any] struct {
	Records []T    `json:"records"`
	Status  string `json:"status"`
	Reason  string `json:"reason,omitempty"`
}

func newTableResponse[T any](table domain.Table[T]) TableResponse[T] {
	records := table.Records
	if records == nil {
		records = []T{}
	}
	return TableResponse[T]{
		Records: records,
		Status:  string(table.Status),
		Reason:  table.Reason,
	}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type CacheInvalidateRequest struct {
	// Collection names a single collection to drop from the cache. Empty
	// purges everything.
	Collection string `json:"collection" validate:"omitempty,alphanum"`
}

type CacheInvalidateResponse struct {
	Invalidated string `json:"invalidated"`
}
