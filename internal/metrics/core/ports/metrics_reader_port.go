package ports

import (
	"context"

	"dashboard-export-service/internal/metrics/core/domain"
)

type TimeSeriesFilter struct {
	ProjectID  string
	From       int64
	To         int64
	TimeBucket string // "hour" / "day" / "week" / "month"
}

type BreakdownFilter struct {
	ProjectID string
	From      int64
	To        int64
	Types     []string // dimension keys, e.g. "cc", "ref"
}

type MetricsReaderPort interface {
	QueryTimeSeries(ctx context.Context, f TimeSeriesFilter) (*domain.TimeSeries, error)
	QueryBreakdown(ctx context.Context, f BreakdownFilter) (*domain.Breakdown, error)
}
