package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds all OTel metric instruments for insight-api.
var Metrics *InsightMetrics

// InsightMetrics contains all metric instruments.
type InsightMetrics struct {
	CollectionsLoadedTotal metric.Int64Counter
	RecordsSkippedTotal    metric.Int64Counter
	CacheHitsTotal         metric.Int64Counter
	CacheMissesTotal       metric.Int64Counter
	ErrorsTotal            metric.Int64Counter
	AggregationDuration    metric.Float64Histogram
}

// InitMetrics initializes all metric instruments.
func InitMetrics() error {
	meter := otel.Meter("insight-api")

	collectionsLoaded, err := meter.Int64Counter("insight_api_collections_loaded_total",
		metric.WithDescription("Total number of collection files loaded from disk"),
	)
	if err != nil {
		return err
	}

	recordsSkipped, err := meter.Int64Counter("insight_api_records_skipped_total",
		metric.WithDescription("Total number of malformed records skipped during conversion"),
	)
	if err != nil {
		return err
	}

	cacheHits, err := meter.Int64Counter("insight_api_cache_hits_total",
		metric.WithDescription("Total number of collection cache hits"),
	)
	if err != nil {
		return err
	}

	cacheMisses, err := meter.Int64Counter("insight_api_cache_misses_total",
		metric.WithDescription("Total number of collection cache misses"),
	)
	if err != nil {
		return err
	}

	errorsTotal, err := meter.Int64Counter("insight_api_errors_total",
		metric.WithDescription("Total number of errors"),
	)
	if err != nil {
		return err
	}

	aggregationDuration, err := meter.Float64Histogram("insight_api_aggregation_duration_seconds",
		metric.WithDescription("Aggregation request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return err
	}

	Metrics = &InsightMetrics{
		CollectionsLoadedTotal: collectionsLoaded,
		RecordsSkippedTotal:    recordsSkipped,
		CacheHitsTotal:         cacheHits,
		CacheMissesTotal:       cacheMisses,
		ErrorsTotal:            errorsTotal,
		AggregationDuration:    aggregationDuration,
	}

	return nil
}

// RecordCacheHit increments the cache hit counter when metrics are enabled.
func RecordCacheHit(ctx context.Context) {
	if Metrics == nil {
		return
	}
	Metrics.CacheHitsTotal.Add(ctx, 1)
}

// RecordCacheMiss increments the cache miss counter when metrics are enabled.
func RecordCacheMiss(ctx context.Context) {
	if Metrics == nil {
		return
	}
	Metrics.CacheMissesTotal.Add(ctx, 1)
}

// RecordCollectionLoad records one file load and its skipped-record count.
func RecordCollectionLoad(ctx context.Context, fileName string, records, skipped int) {
	if Metrics == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("file", fileName))
	Metrics.CollectionsLoadedTotal.Add(ctx, 1, attrs)
	if skipped > 0 {
		Metrics.RecordsSkippedTotal.Add(ctx, int64(skipped), attrs)
	}
}

// RecordAggregationDuration records one aggregation's wall time in seconds.
func RecordAggregationDuration(ctx context.Context, name string, seconds float64) {
	if Metrics == nil {
		return
	}
	Metrics.AggregationDuration.Record(ctx, seconds,
		metric.WithAttributes(attribute.String("aggregation", name)))
}

// RecordError increments the error counter for the given operation.
func RecordError(ctx context.Context, op string) {
	if Metrics == nil {
		return
	}
	Metrics.ErrorsTotal.Add(ctx, 1,
		metric.WithAttributes(attribute.String("operation", op)))
}
