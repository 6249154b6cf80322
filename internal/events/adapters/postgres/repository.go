package postgres

import (
	"context"
	"database/sql"

	"dashboard-export-service/internal/events/core/domain"
	"dashboard-export-service/internal/events/core/ports"

	"github.com/goccy/go-json"
	"github.com/lib/pq"
)

type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type EventRepository struct {
	db DB
}

func NewEventRepository(db DB) *EventRepository {
	return &EventRepository{db: db}
}

var _ ports.EventRepositoryPort = (*EventRepository)(nil)

// SQL template
const insertEventSQL = `
INSERT INTO events (
    project_id,
    event_name,
    user_id,
    page,
    country,
    locale,
    referrer,
    device,
    browser,
    os,
    utm_source,
    utm_medium,
    utm_campaign,
    load_time_bucket,
    event_time,
    tags,
    metadata,
    dedupe_key
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9,
    $10, $11, $12, $13, $14, $15, $16, $17, $18
)
ON CONFLICT (dedupe_key) DO NOTHING;
`

func (r *EventRepository) InsertEvent(ctx context.Context, e *domain.Event) (bool, error) {
	metadataJSON, err := json.Marshal(e.Metadata)
	if err != nil {
		return false, err
	}

	res, err := r.db.ExecContext(ctx, insertEventSQL,
		e.ProjectID,
		e.EventName,
		e.UserID,
		nullable(e.Page),
		nullable(e.Country),
		nullable(e.Locale),
		nullable(e.Referrer),
		nullable(e.Device),
		nullable(e.Browser),
		nullable(e.OS),
		nullable(e.UTMSource),
		nullable(e.UTMMedium),
		nullable(e.UTMCampaign),
		nullable(e.LoadTimeBucket),
		e.EventTime,
		pq.Array(e.Tags),
		metadataJSON,
		e.DedupeKey,
	)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	// rows == 1  -> new record
	// rows == 0  -> duplicate (ON CONFLICT DO NOTHING)
	return rows > 0, nil
}

// nullable stores empty optional columns as NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
