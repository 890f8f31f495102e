package logger

import (
	"context"
	"log/slog"
	"time"
)

// ContextKey is the type for context keys used in logging
type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
	UserIDKey    ContextKey = "user_id"
	OperationKey ContextKey = "operation"

	// Business context keys following OpenTelemetry semantic conventions
	// with an 'insight.' prefix
	CollectionKey  ContextKey = "insight.collection"
	IssueIDKey     ContextKey = "insight.issue.id"
	MediaIDKey     ContextKey = "insight.media.id"
	AggregationKey ContextKey = "insight.aggregation"
)

// GlobalContext is the global ContextLogger instance
var GlobalContext *ContextLogger

// ContextLogger wraps a slog.Logger to add context-aware logging
type ContextLogger struct {
	logger *slog.Logger
}

// NewContextLogger creates a new ContextLogger wrapping the provided logger
func NewContextLogger(logger *slog.Logger) *ContextLogger {
	return &ContextLogger{logger: logger}
}

// WithContext adds context values to log entries and returns a new logger
func (cl *ContextLogger) WithContext(ctx context.Context) *slog.Logger {
	args := make([]any, 0)

	if requestID := ctx.Value(RequestIDKey); requestID != nil {
		args = append(args, "request_id", requestID.(string))
	}

	if userID := ctx.Value(UserIDKey); userID != nil {
		args = append(args, "user_id", userID.(string))
	}

	if operation := ctx.Value(OperationKey); operation != nil {
		args = append(args, "operation", operation.(string))
	}

	if collection := ctx.Value(CollectionKey); collection != nil {
		args = append(args, string(CollectionKey), collection.(string))
	}

	if issueID := ctx.Value(IssueIDKey); issueID != nil {
		args = append(args, string(IssueIDKey), issueID.(string))
	}

	if mediaID := ctx.Value(MediaIDKey); mediaID != nil {
		args = append(args, string(MediaIDKey), mediaID.(string))
	}

	if aggregation := ctx.Value(AggregationKey); aggregation != nil {
		args = append(args, string(AggregationKey), aggregation.(string))
	}

	return cl.logger.With(args...)
}

// LogDuration logs an operation completion with duration in milliseconds
func (cl *ContextLogger) LogDuration(ctx context.Context, operation string, durationMs int64) {
	cl.WithContext(ctx).Info("operation completed",
		"operation", operation,
		"duration_ms", durationMs,
	)
}

// LogError logs an operation failure with error details
func (cl *ContextLogger) LogError(ctx context.Context, operation string, err error) {
	cl.WithContext(ctx).Error("operation failed",
		"operation", operation,
		"error", err,
	)
}

// Context helper functions for business context

// WithCollection adds the collection name to context for observability
func WithCollection(ctx context.Context, collection string) context.Context {
	return context.WithValue(ctx, CollectionKey, collection)
}

// WithIssueID adds the issue ID to context for observability
func WithIssueID(ctx context.Context, issueID string) context.Context {
	return context.WithValue(ctx, IssueIDKey, issueID)
}

// WithMediaID adds the media source ID to context for observability
func WithMediaID(ctx context.Context, mediaID string) context.Context {
	return context.WithValue(ctx, MediaIDKey, mediaID)
}

// WithAggregation adds the aggregation name to context for observability
func WithAggregation(ctx context.Context, aggregation string) context.Context {
	return context.WithValue(ctx, AggregationKey, aggregation)
}

// LogDurationTime is a convenience function that takes time.Duration
func (cl *ContextLogger) LogDurationTime(ctx context.Context, operation string, duration time.Duration) {
	cl.LogDuration(ctx, operation, duration.Milliseconds())
}
