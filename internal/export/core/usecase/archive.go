package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"dashboard-export-service/internal/export/core/domain"

	"github.com/klauspost/compress/zip"
	"golang.org/x/sync/errgroup"
)

var ErrExportFailed = errors.New("export failed")

const csvHeader = "name,value,perc\r\n"

// ToCSV serializes rows under the fixed "name,value,perc" header, one
// comma-joined CRLF-terminated line per row. Fields are written as-is.
func ToCSV(rows []domain.Row) []byte {
	var buf bytes.Buffer
	buf.WriteString(csvHeader)
	for _, r := range rows {
		buf.WriteString(r.Name)
		buf.WriteByte(',')
		buf.WriteString(strconv.FormatInt(r.Value, 10))
		buf.WriteByte(',')
		buf.WriteString(r.Perc)
		buf.WriteString("\r\n")
	}
	return buf.Bytes()
}

// ExportFilename returns "<prefix>-<YYYY-MM-DD>.zip" for the given instant.
// The date is taken from the UTC ISO timestamp: sub-seconds are cut at the
// first ".", colons become dashes and everything from "T" on is dropped.
func ExportFilename(prefix string, now time.Time) string {
	iso := now.UTC().Format("2006-01-02T15:04:05.000Z07:00")
	iso, _, _ = strings.Cut(iso, ".")
	iso = strings.ReplaceAll(iso, ":", "-")
	date, _, _ := strings.Cut(iso, "T")
	return prefix + "-" + date + ".zip"
}

// FormatDate returns the local calendar date of t as YYYY-MM-DD, the format
// the analytics API expects for custom ranges.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// BuildArchive serializes every table to CSV and packages them into a single
// zip named after prefix and now.
func BuildArchive(ctx context.Context, tables []domain.Table, prefix string, now time.Time) (*domain.Archive, error) {
	entries := make([]domain.Entry, len(tables))

	g, gctx := errgroup.WithContext(ctx)
	for i, t := range tables {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			entries[i] = domain.Entry{
				Name: entryName(t.DisplayName),
				Data: ToCSV(t.Rows),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	content, err := zipEntries(entries, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	return &domain.Archive{
		Filename:  ExportFilename(prefix, now),
		Entries:   entries,
		Content:   content,
		CreatedAt: now,
	}, nil
}

func zipEntries(entries []domain.Entry, now time.Time) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, e := range entries {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     e.Name,
			Method:   zip.Deflate,
			Modified: now,
		})
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", e.Name, err)
		}
		if _, err := w.Write(e.Data); err != nil {
			return nil, fmt.Errorf("write %s: %w", e.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func entryName(display string) string {
	name := strings.NewReplacer("/", "-", "\\", "-").Replace(display)
	return name + ".csv"
}
