package postgres

import (
	"context"
	"fmt"
	"time"

	"dashboard-export-service/internal/metrics/core/domain"
	"dashboard-export-service/internal/metrics/core/ports"
	pg "dashboard-export-service/internal/platform/postgres"
)

type RowScanner = pg.RowScanner

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

// dimensionColumns maps breakdown keys to events table columns.
var dimensionColumns = map[string]string{
	domain.DimCountry:  "country",
	domain.DimPage:     "page",
	domain.DimLocale:   "locale",
	domain.DimReferrer: "referrer",
	domain.DimDevice:   "device",
	domain.DimBrowser:  "browser",
	domain.DimOS:       "os",
	domain.DimSource:   "utm_source",
	domain.DimMedium:   "utm_medium",
	domain.DimCampaign: "utm_campaign",
	domain.DimLoadTime: "load_time_bucket",
	domain.DimEvent:    "event_name",
}

const (
	MetricVisits = "visits"
	MetricUnique = "unique"
)

type MetricsRepository struct {
	db DB
}

func NewMetricsRepository(db DB) *MetricsRepository {
	return &MetricsRepository{db: db}
}

var _ ports.MetricsReaderPort = (*MetricsRepository)(nil)

func (r *MetricsRepository) QueryTimeSeries(ctx context.Context, f ports.TimeSeriesFilter) (*domain.TimeSeries, error) {
	if !domain.IsTimeBucket(f.TimeBucket) {
		// Aslında buraya gelmemeli; usecase validasyonu zaten yapıyor.
		return nil, fmt.Errorf("unsupported time bucket: %s", f.TimeBucket)
	}

	query := fmt.Sprintf(`
SELECT
    date_trunc('%s', event_time) AS bucket,
    COUNT(*) FILTER (WHERE event_name = 'pageview') AS visits,
    COUNT(DISTINCT user_id) FILTER (WHERE event_name = 'pageview') AS unique_users
FROM events
WHERE project_id = $1 AND event_time BETWEEN $2 AND $3
GROUP BY bucket
ORDER BY bucket
`, f.TimeBucket)

	rows, err := r.db.QueryContext(ctx, query, f.ProjectID, unixUTC(f.From), unixUTC(f.To))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := &domain.TimeSeries{
		TimeBucket: f.TimeBucket,
		X:          []string{},
		Metrics: map[string][]float64{
			MetricVisits: {},
			MetricUnique: {},
		},
		Order: []string{MetricVisits, MetricUnique},
	}

	for rows.Next() {
		var ts time.Time
		var visits, unique int64

		if err := rows.Scan(&ts, &visits, &unique); err != nil {
			return nil, err
		}

		res.X = append(res.X, ts.UTC().Format(time.RFC3339))
		res.Metrics[MetricVisits] = append(res.Metrics[MetricVisits], float64(visits))
		res.Metrics[MetricUnique] = append(res.Metrics[MetricUnique], float64(unique))
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return res, nil
}

func (r *MetricsRepository) QueryBreakdown(ctx context.Context, f ports.BreakdownFilter) (*domain.Breakdown, error) {
	res := &domain.Breakdown{
		Types: make([]string, 0, len(f.Types)),
		Data:  make(map[string][]domain.CategoryCount, len(f.Types)),
	}

	for _, dim := range f.Types {
		column, ok := dimensionColumns[dim]
		if !ok {
			return nil, fmt.Errorf("unsupported dimension: %s", dim)
		}

		counts, err := r.queryDimension(ctx, column, dim == domain.DimEvent, f)
		if err != nil {
			return nil, err
		}

		res.Types = append(res.Types, dim)
		res.Data[dim] = counts
	}

	return res, nil
}

func (r *MetricsRepository) queryDimension(
	ctx context.Context,
	column string,
	customEvents bool,
	f ports.BreakdownFilter,
) ([]domain.CategoryCount, error) {
	kind := "event_name = 'pageview'"
	if customEvents {
		kind = "event_name <> 'pageview'"
	}

	query := fmt.Sprintf(`
SELECT
    %[1]s AS category,
    COUNT(*) AS total_count
FROM events
WHERE project_id = $1 AND event_time BETWEEN $2 AND $3
    AND %[2]s
    AND %[1]s IS NOT NULL AND %[1]s <> ''
GROUP BY %[1]s
ORDER BY total_count DESC, %[1]s
`, column, kind)

	rows, err := r.db.QueryContext(ctx, query, f.ProjectID, unixUTC(f.From), unixUTC(f.To))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []domain.CategoryCount{}
	for rows.Next() {
		var key string
		var total int64

		if err := rows.Scan(&key, &total); err != nil {
			return nil, err
		}

		counts = append(counts, domain.CategoryCount{Key: key, Count: total})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

func unixUTC(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}
