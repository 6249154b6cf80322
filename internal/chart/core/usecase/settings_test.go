package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"dashboard-export-service/internal/chart/core/domain"
	"dashboard-export-service/internal/chart/core/usecase"
	mdomain "dashboard-export-service/internal/metrics/core/domain"
	musecase "dashboard-export-service/internal/metrics/core/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assemble(t *testing.T, mutate func(*usecase.SettingsInput)) *domain.Configuration {
	t.Helper()
	in := usecase.SettingsInput{
		Series:       sampleSeries(),
		TimeBucket:   "day",
		Active:       domain.ActiveMetrics{"visits": true, "unique": true},
		ApplyRegions: true,
		TimeFormat:   domain.TimeFormat12h,
		ChartType:    domain.ChartLine,
	}
	if mutate != nil {
		mutate(&in)
	}
	cfg, err := usecase.AssembleSettings(in)
	require.NoError(t, err)
	return cfg
}

func TestAssembleSettings_PointFocus(t *testing.T) {
	single := assemble(t, func(in *usecase.SettingsInput) {
		in.Series = &mdomain.TimeSeries{
			X:       []string{"2025-12-08T00:00:00Z"},
			Metrics: map[string][]float64{"visits": {3}},
		}
	})
	assert.False(t, single.Point.FocusOnly)

	multi := assemble(t, nil)
	assert.True(t, multi.Point.FocusOnly)
}

func TestAssembleSettings_RegionStart(t *testing.T) {
	cfg := assemble(t, nil)
	require.Len(t, cfg.Data.Regions["visits"], 1)
	assert.Equal(t, time.Date(2025, 12, 7, 0, 0, 0, 0, time.UTC), cfg.Data.Regions["visits"][0].Start)
	assert.Equal(t, "6 2", cfg.Data.Regions["visits"][0].Style.Dasharray)
	assert.Contains(t, cfg.Data.Regions, "unique")

	single := assemble(t, func(in *usecase.SettingsInput) {
		in.Series = &mdomain.TimeSeries{
			X:       []string{"2025-12-08T00:00:00Z"},
			Metrics: map[string][]float64{"visits": {3}},
		}
	})
	require.Len(t, single.Data.Regions["visits"], 1)
	assert.Equal(t, time.Date(2025, 12, 8, 0, 0, 0, 0, time.UTC), single.Data.Regions["visits"][0].Start)
}

func TestAssembleSettings_NoRegions(t *testing.T) {
	disabled := assemble(t, func(in *usecase.SettingsInput) { in.ApplyRegions = false })
	assert.Nil(t, disabled.Data.Regions)

	empty := assemble(t, func(in *usecase.SettingsInput) {
		in.Series = &mdomain.TimeSeries{X: []string{}, Metrics: map[string][]float64{"visits": {}}}
	})
	assert.Nil(t, empty.Data.Regions)
	assert.False(t, empty.Point.FocusOnly)
}

func TestAssembleSettings_ChartTypes(t *testing.T) {
	line := assemble(t, nil)
	assert.Equal(t, "area", line.Data.Types["visits"])

	bar := assemble(t, func(in *usecase.SettingsInput) { in.ChartType = domain.ChartBar })
	assert.Equal(t, "bar", bar.Data.Types["visits"])

	unknown := assemble(t, func(in *usecase.SettingsInput) { in.ChartType = "pie" })
	assert.Equal(t, "area", unknown.Data.Types["unique"])
}

func TestAssembleSettings_AxisAndStyling(t *testing.T) {
	cfg := assemble(t, func(in *usecase.SettingsInput) {
		in.RotateXAxis = true
		in.TimeFormat = domain.TimeFormat24h
		in.TimeBucket = "hour"
	})

	assert.Equal(t, 45, cfg.Axis.X.Tick.Rotate)
	assert.Equal(t, 35, cfg.Padding.Right)
	assert.True(t, cfg.Axis.X.Localtime)
	assert.Equal(t, "%H:%M", cfg.Axis.X.Tick.Format.D3)
	assert.Equal(t, "timeseries", cfg.Axis.X.Type)
	assert.Equal(t, "1.5k", cfg.Axis.Y.Format(1500))
	assert.Equal(t, "#2563EB", cfg.Data.Colors["visits"])
	assert.Equal(t, 500*time.Millisecond, cfg.Transition)
	assert.Equal(t, "#dataChart", cfg.BindTo)

	flat := assemble(t, nil)
	assert.Equal(t, 0, flat.Axis.X.Tick.Rotate)
	assert.Equal(t, 0, flat.Padding.Right)
	assert.False(t, flat.Axis.X.Localtime)
}

func TestAssembleSettings_TooltipContents(t *testing.T) {
	cfg := assemble(t, nil)

	x := time.Date(2025, 12, 7, 0, 0, 0, 0, time.UTC)
	html := cfg.Tooltip.Contents([]domain.TooltipItem{
		{ID: "visits", Name: "visits", Value: "20", X: x},
		{ID: "unique", Name: "<unique>", Value: "8", X: x},
	}, func(id string) string { return cfg.Data.Colors[id] })

	assert.Contains(t, html, "<li class='font-semibold'>07 Dec 2025</li>")
	assert.Contains(t, html, "background-color:#2563EB")
	assert.Contains(t, html, "<span>&lt;unique&gt;</span>")
	assert.Equal(t, 2, strings.Count(html, "class='flex justify-between'"))
	assert.Empty(t, cfg.Tooltip.Contents(nil, nil))
}

func TestAssembleSettings_InvalidShape(t *testing.T) {
	_, err := usecase.AssembleSettings(usecase.SettingsInput{
		Series: &mdomain.TimeSeries{
			X:       []string{"2025-12-07"},
			Metrics: map[string][]float64{"visits": {1, 2}},
		},
		Active: domain.ActiveMetrics{"visits": true},
	})
	assert.True(t, errors.Is(err, usecase.ErrInvalidInputShape))
}

// ------------------------------------------------------------
// BUILD CHART USECASE
// ------------------------------------------------------------

type fakeSeriesSource struct {
	TimeSeriesFn func(ctx context.Context, in musecase.GetTimeSeriesInput) (*mdomain.TimeSeries, error)
}

func (f *fakeSeriesSource) TimeSeries(ctx context.Context, in musecase.GetTimeSeriesInput) (*mdomain.TimeSeries, error) {
	return f.TimeSeriesFn(ctx, in)
}

type fakeObserver struct {
	buckets []string
	errs    []error
}

func (f *fakeObserver) ChartBuilt(bucket string, err error) {
	f.buckets = append(f.buckets, bucket)
	f.errs = append(f.errs, err)
}

func TestBuildChart_DefaultsAndRegionPeriods(t *testing.T) {
	source := &fakeSeriesSource{
		TimeSeriesFn: func(ctx context.Context, in musecase.GetTimeSeriesInput) (*mdomain.TimeSeries, error) {
			assert.Equal(t, "proj123", in.ProjectID)
			assert.Equal(t, "day", in.TimeBucket)
			return sampleSeries(), nil
		},
	}
	obs := &fakeObserver{}
	uc := usecase.NewBuildChartUseCase(source, obs)

	cfg, err := uc.Execute(context.Background(), usecase.BuildChartInput{
		ProjectID: "proj123", From: 1, To: 2, TimeBucket: "day", Period: "7d",
	})
	require.NoError(t, err)
	assert.Len(t, cfg.Data.Columns, 3)
	assert.NotNil(t, cfg.Data.Regions)

	cfg, err = uc.Execute(context.Background(), usecase.BuildChartInput{
		ProjectID: "proj123", From: 1, To: 2, TimeBucket: "day", Period: "yesterday", Metrics: []string{"unique"},
	})
	require.NoError(t, err)
	require.Len(t, cfg.Data.Columns, 2)
	assert.Equal(t, "unique", cfg.Data.Columns[1].ID)
	assert.Nil(t, cfg.Data.Regions)

	force := true
	cfg, err = uc.Execute(context.Background(), usecase.BuildChartInput{
		ProjectID: "proj123", From: 1, To: 2, TimeBucket: "day", Period: "custom", Regions: &force,
	})
	require.NoError(t, err)
	assert.NotNil(t, cfg.Data.Regions)

	assert.Equal(t, []string{"day", "day", "day"}, obs.buckets)
}

func TestBuildChart_SourceError(t *testing.T) {
	source := &fakeSeriesSource{
		TimeSeriesFn: func(ctx context.Context, in musecase.GetTimeSeriesInput) (*mdomain.TimeSeries, error) {
			return nil, musecase.ErrInvalidTimeBucket
		},
	}
	obs := &fakeObserver{}
	uc := usecase.NewBuildChartUseCase(source, obs)

	_, err := uc.Execute(context.Background(), usecase.BuildChartInput{ProjectID: "p", From: 1, To: 2, TimeBucket: "decade"})
	assert.True(t, errors.Is(err, musecase.ErrInvalidTimeBucket))
	require.Len(t, obs.errs, 1)
	assert.Error(t, obs.errs[0])
}
