package usecase

import (
	"context"
	"time"

	"dashboard-export-service/internal/chart/core/domain"
	"dashboard-export-service/internal/chart/core/ports"
	musecase "dashboard-export-service/internal/metrics/core/usecase"
)

// Periods for which the latest bucket is complete, so no region is drawn.
var noRegionPeriods = map[string]bool{
	"custom":    true,
	"yesterday": true,
}

type BuildChartInput struct {
	ProjectID  string
	From       int64
	To         int64
	TimeBucket string
	Period     string   // "7d", "custom", "yesterday", ...
	Metrics    []string // boş ise serideki tüm metrikler
	TimeFormat domain.TimeFormat
	ChartType  domain.ChartType
	Rotate     bool
	Regions    *bool // nil: derived from Period
	Location   *time.Location
}

type BuildChartUseCase struct {
	source   ports.TimeSeriesSource
	observer ports.BuildObserver
}

func NewBuildChartUseCase(source ports.TimeSeriesSource, observer ports.BuildObserver) *BuildChartUseCase {
	return &BuildChartUseCase{source: source, observer: observer}
}

// Execute reads the series for the requested window and assembles its chart.
func (uc *BuildChartUseCase) Execute(ctx context.Context, in BuildChartInput) (*domain.Configuration, error) {
	cfg, err := uc.execute(ctx, in)
	if uc.observer != nil {
		uc.observer.ChartBuilt(in.TimeBucket, err)
	}
	return cfg, err
}

func (uc *BuildChartUseCase) execute(ctx context.Context, in BuildChartInput) (*domain.Configuration, error) {
	series, err := uc.source.TimeSeries(ctx, musecase.GetTimeSeriesInput{
		ProjectID:  in.ProjectID,
		From:       in.From,
		To:         in.To,
		TimeBucket: in.TimeBucket,
	})
	if err != nil {
		return nil, err
	}

	active := domain.ActiveMetrics{}
	if len(in.Metrics) == 0 {
		for name := range series.Metrics {
			active[name] = true
		}
	} else {
		for _, name := range in.Metrics {
			active[name] = true
		}
	}

	applyRegions := !noRegionPeriods[in.Period]
	if in.Regions != nil {
		applyRegions = *in.Regions
	}

	return AssembleSettings(SettingsInput{
		Series:       series,
		TimeBucket:   in.TimeBucket,
		Active:       active,
		ApplyRegions: applyRegions,
		TimeFormat:   in.TimeFormat,
		RotateXAxis:  in.Rotate,
		ChartType:    in.ChartType,
		Location:     in.Location,
	})
}
