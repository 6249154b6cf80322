package fiber

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"dashboard-export-service/internal/metrics/core/domain"
	"dashboard-export-service/internal/metrics/core/usecase"
	"dashboard-export-service/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type GetMetricsUseCase interface {
	TimeSeries(ctx context.Context, in usecase.GetTimeSeriesInput) (*domain.TimeSeries, error)
	Breakdown(ctx context.Context, in usecase.GetBreakdownInput) (*domain.Breakdown, error)
}

type MetricsHandler struct {
	uc GetMetricsUseCase
}

func NewMetricsHandler(uc GetMetricsUseCase) *MetricsHandler {
	return &MetricsHandler{uc: uc}
}

// GetTimeSeries godoc
// @Summary Query a bucketed time series
// @Description Returns the chart-data object { x, visits, unique } for a project
// @Tags Metrics
// @Produce json
// @Param pid path string true "Project ID"
// @Param from query int true "From timestamp"
// @Param to query int true "To timestamp"
// @Param time_bucket query string true "Time bucket: hour | day | week | month"
// @Success 200 {object} map[string][]any
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /projects/{pid}/timeseries [get]
func (h *MetricsHandler) GetTimeSeries(c *fiber.Ctx) error {
	var q TimeSeriesQuery
	if err := c.QueryParser(&q); err != nil {
		return badRequest(c, "invalid query parameters")
	}
	if err := validation.Struct(q); err != nil {
		return badRequest(c, err.Error())
	}

	res, err := h.uc.TimeSeries(c.UserContext(), usecase.GetTimeSeriesInput{
		ProjectID:  c.Params("pid"),
		From:       q.From,
		To:         q.To,
		TimeBucket: q.TimeBucket,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(NewTimeSeriesResponse(res))
}

// GetBreakdown godoc
// @Summary Query per-dimension category counts
// @Description Returns { data: { dim: { category: count } }, types: [...] }
// @Tags Metrics
// @Produce json
// @Param pid path string true "Project ID"
// @Param from query int true "From timestamp"
// @Param to query int true "To timestamp"
// @Param types query string false "Comma separated dimensions (cc,pg,lc,ref,dv,br,os,so,me,ca,lt,ev)"
// @Success 200 {object} BreakdownPayload
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /projects/{pid}/breakdown [get]
func (h *MetricsHandler) GetBreakdown(c *fiber.Ctx) error {
	var q BreakdownQuery
	if err := c.QueryParser(&q); err != nil {
		return badRequest(c, "invalid query parameters")
	}
	if err := validation.Struct(q); err != nil {
		return badRequest(c, err.Error())
	}

	res, err := h.uc.Breakdown(c.UserContext(), usecase.GetBreakdownInput{
		ProjectID: c.Params("pid"),
		From:      q.From,
		To:        q.To,
		Types:     SplitList(q.Types),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(NewBreakdownPayload(res))
}

// SplitList turns "a, b,,c" into [a b c].
func SplitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// IsValidationError reports whether err comes from metrics input validation.
func IsValidationError(err error) bool {
	return errors.Is(err, usecase.ErrInvalidMetricsQuery) ||
		errors.Is(err, usecase.ErrInvalidTimeRange) ||
		errors.Is(err, usecase.ErrInvalidTimeBucket) ||
		errors.Is(err, usecase.ErrInvalidDimension)
}

func writeError(c *fiber.Ctx, err error) error {
	if IsValidationError(err) {
		return badRequest(c, err.Error())
	}
	return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
		Error: "internal_server_error",
	})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error:   "invalid_query",
		Message: msg,
	})
}
