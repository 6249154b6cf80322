package ports

import (
	"context"
	"time"

	"dashboard-export-service/internal/export/core/domain"
	mdomain "dashboard-export-service/internal/metrics/core/domain"
	musecase "dashboard-export-service/internal/metrics/core/usecase"
)

// CountryNamer resolves an ISO 3166-1 alpha-2 code to a localized country name.
// It returns "" when the code or locale is unknown.
type CountryNamer interface {
	CountryName(code, locale string) string
}

// BreakdownSource supplies per-dimension counts for a project.
type BreakdownSource interface {
	Breakdown(ctx context.Context, in musecase.GetBreakdownInput) (*mdomain.Breakdown, error)
}

// Delivery hands a finished archive to whoever requested it.
type Delivery interface {
	Deliver(ctx context.Context, a *domain.Archive) error
}

// ExportObserver is notified once per finished export.
type ExportObserver interface {
	ExportFinished(status string, entries int, elapsed time.Duration)
}
