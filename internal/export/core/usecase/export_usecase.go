package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dashboard-export-service/internal/export/core/domain"
	"dashboard-export-service/internal/export/core/ports"
	"dashboard-export-service/internal/logging"
	mdomain "dashboard-export-service/internal/metrics/core/domain"
	musecase "dashboard-export-service/internal/metrics/core/usecase"
)

type ExportInput struct {
	ProjectID    string
	From         int64
	To           int64
	Locale       string
	Types        []string          // boş ise tüm boyutlar
	DisplayNames map[string]string // overrides domain.DefaultDisplayNames
	Breakdown    *mdomain.Breakdown
}

type Options struct {
	FilenamePrefix string
	DefaultLocale  string
}

type ExportUseCase struct {
	source   ports.BreakdownSource
	namer    ports.CountryNamer
	delivery ports.Delivery
	observer ports.ExportObserver
	opts     Options
	now      func() time.Time
}

func NewExportUseCase(source ports.BreakdownSource, namer ports.CountryNamer, delivery ports.Delivery, observer ports.ExportObserver, opts Options) *ExportUseCase {
	if opts.FilenamePrefix == "" {
		opts.FilenamePrefix = "swetrix"
	}
	if opts.DefaultLocale == "" {
		opts.DefaultLocale = "en"
	}
	return &ExportUseCase{
		source:   source,
		namer:    namer,
		delivery: delivery,
		observer: observer,
		opts:     opts,
		now:      time.Now,
	}
}

// WithClock replaces the export clock.
func (uc *ExportUseCase) WithClock(now func() time.Time) *ExportUseCase {
	uc.now = now
	return uc
}

// Execute aggregates the breakdown (read from the source unless supplied)
// and packages it into a zip archive.
func (uc *ExportUseCase) Execute(ctx context.Context, in ExportInput) (*domain.Archive, error) {
	start := time.Now()
	a, err := uc.execute(ctx, in)
	if uc.observer != nil {
		entries := 0
		if a != nil {
			entries = len(a.Entries)
		}
		uc.observer.ExportFinished(status(err), entries, time.Since(start))
	}
	return a, err
}

func (uc *ExportUseCase) execute(ctx context.Context, in ExportInput) (*domain.Archive, error) {
	b := in.Breakdown
	if b == nil {
		if uc.source == nil {
			return nil, musecase.ErrInvalidMetricsQuery
		}
		var err error
		b, err = uc.source.Breakdown(ctx, musecase.GetBreakdownInput{
			ProjectID: in.ProjectID,
			From:      in.From,
			To:        in.To,
			Types:     in.Types,
		})
		if err != nil {
			return nil, err
		}
	}

	locale := in.Locale
	if locale == "" {
		locale = uc.opts.DefaultLocale
	}

	tables := Aggregate(b, locale, in.DisplayNames, uc.namer)
	return BuildArchive(ctx, tables, uc.prefix(in.ProjectID), uc.now())
}

// ExportAsync starts the export in the background and returns immediately.
// The archive is handed to the delivery port; failures are only logged.
func (uc *ExportUseCase) ExportAsync(ctx context.Context, in ExportInput) {
	ctx = context.WithoutCancel(ctx)
	go func() {
		log := logging.Ctx(ctx)

		a, err := uc.Execute(ctx, in)
		if err != nil {
			log.Error().Err(err).Str("project_id", in.ProjectID).Msg("export failed")
			return
		}
		if uc.delivery == nil {
			log.Warn().Str("project_id", in.ProjectID).Msg("export finished without delivery")
			return
		}
		if err := uc.delivery.Deliver(ctx, a); err != nil {
			log.Error().Err(fmt.Errorf("%w: %v", ErrExportFailed, err)).
				Str("project_id", in.ProjectID).
				Str("filename", a.Filename).
				Msg("export delivery failed")
			return
		}
		log.Info().
			Str("project_id", in.ProjectID).
			Str("filename", a.Filename).
			Int("entries", len(a.Entries)).
			Msg("export delivered")
	}()
}

func (uc *ExportUseCase) prefix(projectID string) string {
	if projectID == "" {
		return uc.opts.FilenamePrefix
	}
	return uc.opts.FilenamePrefix + "-" + projectID
}

func status(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrExportFailed):
		return "failed"
	default:
		return "error"
	}
}
