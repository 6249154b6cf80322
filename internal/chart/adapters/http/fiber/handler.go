package fiber

import (
	"context"
	"errors"
	"net/http"
	"time"
	_ "time/tzdata"

	"dashboard-export-service/internal/chart/core/domain"
	"dashboard-export-service/internal/chart/core/usecase"
	metricshttp "dashboard-export-service/internal/metrics/adapters/http/fiber"
	"dashboard-export-service/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type BuildChartUseCase interface {
	Execute(ctx context.Context, in usecase.BuildChartInput) (*domain.Configuration, error)
}

type ChartHandler struct {
	uc BuildChartUseCase
}

func NewChartHandler(uc BuildChartUseCase) *ChartHandler {
	return &ChartHandler{uc: uc}
}

// GetChart godoc
// @Summary Build the main chart configuration
// @Description Returns a billboard.js options object for a project's time series
// @Tags Charts
// @Produce json
// @Param pid path string true "Project ID"
// @Param from query int true "From timestamp"
// @Param to query int true "To timestamp"
// @Param time_bucket query string true "Time bucket: hour | day | week | month"
// @Param period query string false "Selected period (7d, custom, yesterday, ...)"
// @Param metrics query string false "Comma separated active metrics"
// @Param time_format query string false "12-hour | 24-hour"
// @Param chart_type query string false "line | bar"
// @Param rotate query bool false "Rotate x-axis labels"
// @Param regions query bool false "Force the provisional-period region on or off"
// @Param tz query string false "IANA time zone for 24-hour labels"
// @Success 200 {object} ChartResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /projects/{pid}/chart [get]
func (h *ChartHandler) GetChart(c *fiber.Ctx) error {
	var q ChartQuery
	if err := c.QueryParser(&q); err != nil {
		return badRequest(c, "invalid query parameters")
	}
	if err := validation.Struct(q); err != nil {
		return badRequest(c, err.Error())
	}

	in := usecase.BuildChartInput{
		ProjectID:  c.Params("pid"),
		From:       q.From,
		To:         q.To,
		TimeBucket: q.TimeBucket,
		Period:     q.Period,
		Metrics:    metricshttp.SplitList(q.Metrics),
		TimeFormat: domain.TimeFormat(q.TimeFormat),
		ChartType:  domain.ChartType(q.ChartType),
		Rotate:     q.Rotate,
	}

	if q.Regions != "" {
		apply := q.Regions == "true"
		in.Regions = &apply
	}

	if q.TZ != "" {
		loc, err := time.LoadLocation(q.TZ)
		if err != nil {
			return badRequest(c, "invalid tz parameter")
		}
		in.Location = loc
	}

	cfg, err := h.uc.Execute(c.UserContext(), in)
	if err != nil {
		switch {
		case metricshttp.IsValidationError(err):
			return badRequest(c, err.Error())
		case errors.Is(err, usecase.ErrInvalidInputShape):
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error:   "invalid_input_shape",
				Message: err.Error(),
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	return c.Status(http.StatusOK).JSON(NewChartResponse(cfg))
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error:   "invalid_query",
		Message: msg,
	})
}
