package fiber

import (
	metricshttp "dashboard-export-service/internal/metrics/adapters/http/fiber"
)

type ExportQuery struct {
	From   int64  `query:"from" validate:"required,gt=0"`
	To     int64  `query:"to" validate:"required,gtefield=From"`
	Locale string `query:"locale" validate:"omitempty,max=35"`
	Types  string `query:"types"` // comma separated: "cc,ref"
}

// ExportRequest carries a breakdown already fetched by the client in the
// analytics API shape.
type ExportRequest struct {
	ProjectID    string                        `json:"pid" validate:"required"`
	Locale       string                        `json:"locale" validate:"omitempty,max=35"`
	DisplayNames map[string]string             `json:"display_names"`
	Breakdown    *metricshttp.BreakdownPayload `json:"breakdown" validate:"required"`
}

type AcceptedResponse struct {
	Status    string `json:"status"`
	ProjectID string `json:"pid"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
