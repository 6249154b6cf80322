package fiber

import (
	"context"
	"errors"
	"net/http"

	"dashboard-export-service/internal/export/core/domain"
	"dashboard-export-service/internal/export/core/usecase"
	"dashboard-export-service/internal/logging"
	metricshttp "dashboard-export-service/internal/metrics/adapters/http/fiber"
	"dashboard-export-service/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

type ExportUseCase interface {
	Execute(ctx context.Context, in usecase.ExportInput) (*domain.Archive, error)
	ExportAsync(ctx context.Context, in usecase.ExportInput)
}

type ExportHandler struct {
	uc ExportUseCase
}

func NewExportHandler(uc ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// ExportProject godoc
// @Summary Export a project's breakdown as a zip of CSV files
// @Description Reads every requested dimension and returns one CSV per non-empty dimension
// @Tags Export
// @Produce application/zip
// @Param pid path string true "Project ID"
// @Param from query int true "From timestamp"
// @Param to query int true "To timestamp"
// @Param locale query string false "Locale used for country names"
// @Param types query string false "Comma separated dimensions"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /projects/{pid}/export [get]
func (h *ExportHandler) ExportProject(c *fiber.Ctx) error {
	in, err := parseExportQuery(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	a, err := h.uc.Execute(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}

	return NewAttachmentDelivery(c).Deliver(c.UserContext(), a)
}

// ExportProjectAsync godoc
// @Summary Start a background export
// @Description Generates the archive in the background and hands it to the configured outbox
// @Tags Export
// @Produce json
// @Param pid path string true "Project ID"
// @Param from query int true "From timestamp"
// @Param to query int true "To timestamp"
// @Param locale query string false "Locale used for country names"
// @Param types query string false "Comma separated dimensions"
// @Success 202 {object} AcceptedResponse
// @Failure 400 {object} ErrorResponse
// @Router /projects/{pid}/export/async [post]
func (h *ExportHandler) ExportProjectAsync(c *fiber.Ctx) error {
	in, err := parseExportQuery(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	h.uc.ExportAsync(c.UserContext(), in)

	return c.Status(http.StatusAccepted).JSON(AcceptedResponse{
		Status:    "accepted",
		ProjectID: in.ProjectID,
	})
}

// ExportBreakdown godoc
// @Summary Export a client supplied breakdown
// @Description Accepts { pid, locale, display_names, breakdown: { data, types } } and returns the zip
// @Tags Export
// @Accept json
// @Produce application/zip
// @Param request body ExportRequest true "Breakdown to export"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /export [post]
func (h *ExportHandler) ExportBreakdown(c *fiber.Ctx) error {
	var req ExportRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := validation.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	a, err := h.uc.Execute(c.UserContext(), usecase.ExportInput{
		ProjectID:    req.ProjectID,
		Locale:       req.Locale,
		DisplayNames: req.DisplayNames,
		Breakdown:    req.Breakdown.ToDomain(),
	})
	if err != nil {
		return writeError(c, err)
	}

	return NewAttachmentDelivery(c).Deliver(c.UserContext(), a)
}

func parseExportQuery(c *fiber.Ctx) (usecase.ExportInput, error) {
	var q ExportQuery
	if err := c.QueryParser(&q); err != nil {
		return usecase.ExportInput{}, errors.New("invalid query parameters")
	}
	if err := validation.Struct(q); err != nil {
		return usecase.ExportInput{}, err
	}
	// ExportAsync keeps the input after the handler returns, so nothing may
	// alias the request buffer.
	return usecase.ExportInput{
		ProjectID: utils.CopyString(c.Params("pid")),
		From:      q.From,
		To:        q.To,
		Locale:    utils.CopyString(q.Locale),
		Types:     metricshttp.SplitList(utils.CopyString(q.Types)),
	}, nil
}

func writeError(c *fiber.Ctx, err error) error {
	if metricshttp.IsValidationError(err) {
		return badRequest(c, err.Error())
	}

	logging.Ctx(c.UserContext()).Error().Err(err).Str("project_id", c.Params("pid")).Msg("export failed")

	if errors.Is(err, usecase.ErrExportFailed) {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "export_failed",
			Message: err.Error(),
		})
	}
	return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
		Error: "internal_server_error",
	})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error:   "invalid_request",
		Message: msg,
	})
}
