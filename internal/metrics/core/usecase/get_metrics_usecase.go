package usecase

import (
	"context"
	"errors"

	"dashboard-export-service/internal/metrics/core/domain"
	"dashboard-export-service/internal/metrics/core/ports"
)

var (
	ErrInvalidMetricsQuery = errors.New("invalid metrics query")
	ErrInvalidTimeRange    = errors.New("invalid time range")
	ErrInvalidTimeBucket   = errors.New("invalid time bucket")
	ErrInvalidDimension    = errors.New("invalid dimension")
)

type GetTimeSeriesInput struct {
	ProjectID  string
	From       int64
	To         int64
	TimeBucket string // "hour" / "day" / "week" / "month"
}

type GetBreakdownInput struct {
	ProjectID string
	From      int64
	To        int64
	Types     []string // boş ise tüm boyutlar
}

type GetMetricsUseCase struct {
	reader ports.MetricsReaderPort
}

func NewGetMetricsUseCase(reader ports.MetricsReaderPort) *GetMetricsUseCase {
	return &GetMetricsUseCase{reader: reader}
}

// TimeSeries validates the input and reads the bucketed series for a project.
func (uc *GetMetricsUseCase) TimeSeries(ctx context.Context, in GetTimeSeriesInput) (*domain.TimeSeries, error) {
	if err := validateRange(in.ProjectID, in.From, in.To); err != nil {
		return nil, err
	}

	if !domain.IsTimeBucket(in.TimeBucket) {
		return nil, ErrInvalidTimeBucket
	}

	return uc.reader.QueryTimeSeries(ctx, ports.TimeSeriesFilter{
		ProjectID:  in.ProjectID,
		From:       in.From,
		To:         in.To,
		TimeBucket: in.TimeBucket,
	})
}

// Breakdown validates the input and reads per-dimension category counts.
func (uc *GetMetricsUseCase) Breakdown(ctx context.Context, in GetBreakdownInput) (*domain.Breakdown, error) {
	if err := validateRange(in.ProjectID, in.From, in.To); err != nil {
		return nil, err
	}

	types := in.Types
	if len(types) == 0 {
		types = domain.Dimensions
	}
	for _, t := range types {
		if !domain.IsDimension(t) {
			return nil, ErrInvalidDimension
		}
	}

	return uc.reader.QueryBreakdown(ctx, ports.BreakdownFilter{
		ProjectID: in.ProjectID,
		From:      in.From,
		To:        in.To,
		Types:     types,
	})
}

func validateRange(projectID string, from, to int64) error {
	if projectID == "" {
		return ErrInvalidMetricsQuery
	}
	if from <= 0 || to <= 0 || from > to {
		return ErrInvalidTimeRange
	}
	return nil
}
