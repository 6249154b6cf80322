package fiber_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	httpadapter "dashboard-export-service/internal/chart/adapters/http/fiber"
	"dashboard-export-service/internal/chart/core/domain"
	"dashboard-export-service/internal/chart/core/usecase"
	mdomain "dashboard-export-service/internal/metrics/core/domain"
	musecase "dashboard-export-service/internal/metrics/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBuildChartUseCase struct {
	ExecuteFn func(ctx context.Context, in usecase.BuildChartInput) (*domain.Configuration, error)
	lastInput usecase.BuildChartInput
	called    bool
}

func (f *fakeBuildChartUseCase) Execute(ctx context.Context, in usecase.BuildChartInput) (*domain.Configuration, error) {
	f.called = true
	f.lastInput = in
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, in)
	}
	return usecase.AssembleSettings(usecase.SettingsInput{
		Series: &mdomain.TimeSeries{
			X:       []string{"2025-12-07T10:00:00Z", "2025-12-07T11:00:00Z"},
			Metrics: map[string][]float64{"visits": {3, 1500}},
			Order:   []string{"visits"},
		},
		TimeBucket:   in.TimeBucket,
		Active:       domain.ActiveMetrics{"visits": true},
		ApplyRegions: true,
		TimeFormat:   in.TimeFormat,
		RotateXAxis:  in.Rotate,
		ChartType:    in.ChartType,
		Location:     in.Location,
	})
}

func setupApp(uc httpadapter.BuildChartUseCase) *fiber.App {
	app := fiber.New()
	h := httpadapter.NewChartHandler(uc)
	app.Get("/projects/:pid/chart", h.GetChart)
	return app
}

func doGet(t *testing.T, app *fiber.App, path string) (*http.Response, []byte) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return resp, body
}

func TestGetChart_Success(t *testing.T) {
	uc := &fakeBuildChartUseCase{}
	app := setupApp(uc)

	resp, body := doGet(t, app, "/projects/proj123/chart?from=100&to=200&time_bucket=hour&time_format=24-hour&chart_type=bar&rotate=true&metrics=visits&period=7d&tz=Europe/Berlin")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	assert.Equal(t, "proj123", uc.lastInput.ProjectID)
	assert.Equal(t, []string{"visits"}, uc.lastInput.Metrics)
	assert.Nil(t, uc.lastInput.Regions)
	require.NotNil(t, uc.lastInput.Location)
	assert.Equal(t, "Europe/Berlin", uc.lastInput.Location.String())

	var out httpadapter.ChartResponse
	require.NoError(t, json.Unmarshal(body, &out))

	assert.Equal(t, "x", out.Data.X)
	require.Len(t, out.Data.Columns, 2)
	assert.Equal(t, "x", out.Data.Columns[0][0])
	assert.Equal(t, "bar", out.Data.Types["visits"])
	assert.Equal(t, 45, out.Axis.X.Tick.Rotate)
	assert.Equal(t, "%H:%M", out.Axis.X.Tick.Format)
	assert.Equal(t, []string{"11:00", "12:00"}, out.Axis.X.Tick.Labels)
	assert.True(t, out.Axis.X.Localtime)
	assert.True(t, out.Point.Focus.Only)
	assert.Equal(t, int64(500), out.Transition.Duration)
	assert.Equal(t, 35, out.Padding.Right)
	assert.Equal(t, "#dataChart", out.BindTo)
	require.Len(t, out.Tooltip.Contents, 2)
	assert.Contains(t, out.Tooltip.Contents[1], "1500")
	require.Len(t, out.Data.Regions["visits"], 1)
	assert.Equal(t, []float64{0, 375, 750, 1125, 1500}, out.Axis.Y.Tick.Values)
	assert.Equal(t, []string{"0", "375", "750", "1.1k", "1.5k"}, out.Axis.Y.Tick.Labels)
}

func TestNewChartResponse_YTicksUseConfiguredFormat(t *testing.T) {
	cfg := &domain.Configuration{}
	cfg.Data.Columns = []domain.Column{
		{ID: "x", Dates: nil},
		{ID: "visits", Values: []float64{2, 8}},
	}
	cfg.Axis.Y.Format = func(v float64) string { return fmt.Sprintf("<%g>", v) }

	out := httpadapter.NewChartResponse(cfg)
	assert.Equal(t, []float64{0, 2, 4, 6, 8}, out.Axis.Y.Tick.Values)
	assert.Equal(t, []string{"<0>", "<2>", "<4>", "<6>", "<8>"}, out.Axis.Y.Tick.Labels)

	cfg.Data.Columns[1].Values = []float64{0, 0}
	out = httpadapter.NewChartResponse(cfg)
	assert.Equal(t, []float64{0}, out.Axis.Y.Tick.Values)
	assert.Equal(t, []string{"<0>"}, out.Axis.Y.Tick.Labels)
}

func TestGetChart_RegionsFlag(t *testing.T) {
	for _, v := range []string{"true", "false"} {
		uc := &fakeBuildChartUseCase{}
		app := setupApp(uc)

		resp, body := doGet(t, app, fmt.Sprintf("/projects/p/chart?from=1&to=2&time_bucket=day&regions=%s", v))
		require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
		require.NotNil(t, uc.lastInput.Regions)
		assert.Equal(t, v == "true", *uc.lastInput.Regions)
	}
}

func TestGetChart_InvalidQuery(t *testing.T) {
	paths := []string{
		"/projects/p/chart?from=1&to=2",
		"/projects/p/chart?from=x&to=2&time_bucket=day",
		"/projects/p/chart?from=1&to=2&time_bucket=day&regions=maybe",
		"/projects/p/chart?from=1&to=2&time_bucket=day&tz=Mars/Olympus",
	}

	for _, p := range paths {
		uc := &fakeBuildChartUseCase{}
		resp, body := doGet(t, setupApp(uc), p)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "%s: %s", p, body)
		assert.False(t, uc.called, p)
	}
}

func TestGetChart_UsecaseErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid_bucket", musecase.ErrInvalidTimeBucket, http.StatusBadRequest},
		{"invalid_shape", usecase.ErrInvalidInputShape, http.StatusInternalServerError},
		{"db", context.DeadlineExceeded, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeBuildChartUseCase{
				ExecuteFn: func(ctx context.Context, in usecase.BuildChartInput) (*domain.Configuration, error) {
					return nil, tt.err
				},
			}
			resp, _ := doGet(t, setupApp(uc), "/projects/p/chart?from=1&to=2&time_bucket=day")
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}
