package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dashboard-export-service/internal/events/core/domain"
	"dashboard-export-service/internal/events/core/ports"
)

var (
	ErrInvalidEvent = errors.New("invalid event")
	ErrFutureTime   = errors.New("timestamp cannot be in the future")
	ErrBulkTooLarge = errors.New("too many events in one batch")
)

// MaxBulkEvents caps a single bulk request.
const MaxBulkEvents = 1000

type StoreEventUseCase struct {
	repo ports.EventRepositoryPort
	now  func() time.Time
}

func NewStoreEventUseCase(repo ports.EventRepositoryPort) *StoreEventUseCase {
	return &StoreEventUseCase{repo: repo, now: time.Now}
}

type StoreEventInput struct {
	ProjectID   string
	EventName   string // boşsa "pageview"
	UserID      string
	Page        string
	Country     string
	Locale      string
	Referrer    string
	Device      string
	Browser     string
	OS          string
	UTMSource   string
	UTMMedium   string
	UTMCampaign string
	LoadTimeMs  int64
	Timestamp   int64
	Tags        []string
	Metadata    map[string]any
}

func (uc *StoreEventUseCase) Execute(ctx context.Context, in StoreEventInput) (bool, error) {
	if err := uc.validateInput(in); err != nil {
		return false, err
	}

	e := newEvent(in)

	created, err := uc.repo.InsertEvent(ctx, e)
	if err != nil {
		return false, err
	}

	return created, nil
}

func newEvent(in StoreEventInput) *domain.Event {
	eventTime := time.Unix(in.Timestamp, 0).UTC()

	name := in.EventName
	if name == "" {
		name = domain.PageviewEvent
	}
	if in.Tags == nil {
		in.Tags = []string{}
	}
	if in.Metadata == nil {
		in.Metadata = map[string]any{}
	}

	e := &domain.Event{
		ProjectID:   in.ProjectID,
		EventName:   name,
		UserID:      in.UserID,
		Page:        in.Page,
		Country:     strings.ToUpper(in.Country),
		Locale:      in.Locale,
		Referrer:    in.Referrer,
		Device:      in.Device,
		Browser:     in.Browser,
		OS:          in.OS,
		UTMSource:   in.UTMSource,
		UTMMedium:   in.UTMMedium,
		UTMCampaign: in.UTMCampaign,
		EventTime:   eventTime,
		Tags:        in.Tags,
		Metadata:    in.Metadata,
	}
	if e.IsPageview() {
		e.LoadTimeBucket = LoadTimeBucket(in.LoadTimeMs)
	}
	e.DedupeKey = buildDedupeKey(e)
	return e
}

func buildDedupeKey(e *domain.Event) string {
	// project_id + event_name + user_id + page + unix_timestamp
	return fmt.Sprintf("%s|%s|%s|%s|%d",
		e.ProjectID,
		e.EventName,
		e.UserID,
		e.Page,
		e.EventTime.Unix(),
	)
}

// LoadTimeBucket groups a page load duration into the ranges shown in the
// load time breakdown. Non-positive durations are not bucketed.
func LoadTimeBucket(ms int64) string {
	switch {
	case ms <= 0:
		return ""
	case ms < 1000:
		return "0-1s"
	case ms < 2000:
		return "1-2s"
	case ms < 5000:
		return "2-5s"
	case ms < 10000:
		return "5-10s"
	default:
		return "10s+"
	}
}

type BulkCreateEventsInput struct {
	Events []StoreEventInput
}

type BulkCreateEventsResult struct {
	Created    int
	Duplicates int
}

func (uc *StoreEventUseCase) BulkCreateEvents(ctx context.Context, in BulkCreateEventsInput) (BulkCreateEventsResult, error) {
	var res BulkCreateEventsResult

	if len(in.Events) > MaxBulkEvents {
		return res, ErrBulkTooLarge
	}

	for _, ev := range in.Events {
		if err := uc.validateInput(ev); err != nil {
			return res, err
		}
	}

	for _, ev := range in.Events {
		ok, err := uc.Execute(ctx, ev)
		if err != nil {
			return res, err
		}

		if ok {
			res.Created++
		} else {
			res.Duplicates++
		}
	}

	return res, nil
}

func (uc *StoreEventUseCase) validateInput(in StoreEventInput) error {
	if in.ProjectID == "" || in.UserID == "" {
		return ErrInvalidEvent
	}
	if (in.EventName == "" || in.EventName == domain.PageviewEvent) && in.Page == "" {
		return fmt.Errorf("%w: page is required for pageviews", ErrInvalidEvent)
	}
	if in.Country != "" && len(in.Country) != 2 {
		return fmt.Errorf("%w: country must be a two letter code", ErrInvalidEvent)
	}

	if in.Timestamp > uc.now().Unix() {
		return ErrFutureTime
	}

	return nil
}
