package ports

import (
	"context"

	mdomain "dashboard-export-service/internal/metrics/core/domain"
	musecase "dashboard-export-service/internal/metrics/core/usecase"
)

// TimeSeriesSource supplies the bucketed series a chart is built from.
type TimeSeriesSource interface {
	TimeSeries(ctx context.Context, in musecase.GetTimeSeriesInput) (*mdomain.TimeSeries, error)
}

// BuildObserver is notified about every chart build.
type BuildObserver interface {
	ChartBuilt(timeBucket string, err error)
}
