package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"dashboard-export-service/internal/export/core/domain"
	"dashboard-export-service/internal/export/core/usecase"
	mdomain "dashboard-export-service/internal/metrics/core/domain"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readZip(t *testing.T, content []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	require.NoError(t, err)

	out := map[string]string{}
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		_ = rc.Close()
		out[f.Name] = string(b)
	}
	return out
}

// ------------------------------------------------------------
// CSV
// ------------------------------------------------------------

func TestToCSV(t *testing.T) {
	got := usecase.ToCSV([]domain.Row{
		{Name: "United States", Value: 3, Perc: "75%"},
		{Name: "Canada", Value: 1, Perc: "25%"},
	})

	assert.Equal(t, "name,value,perc\r\nUnited States,3,75%\r\nCanada,1,25%\r\n", string(got))
}

func TestToCSV_HeaderOnly(t *testing.T) {
	assert.Equal(t, "name,value,perc\r\n", string(usecase.ToCSV(nil)))
}

// ------------------------------------------------------------
// FILENAME
// ------------------------------------------------------------

func TestExportFilename(t *testing.T) {
	now := time.Date(2025, 12, 7, 23, 59, 58, 123000000, time.UTC)
	assert.Equal(t, "proj123-2025-12-07.zip", usecase.ExportFilename("proj123", now))
}

func TestExportFilename_UsesUTCDate(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	now := time.Date(2025, 12, 8, 1, 0, 0, 0, loc)
	assert.Equal(t, "p-2025-12-07.zip", usecase.ExportFilename("p", now))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2025-03-09", usecase.FormatDate(time.Date(2025, 3, 9, 10, 0, 0, 0, time.Local)))
}

// ------------------------------------------------------------
// ARCHIVE
// ------------------------------------------------------------

func TestBuildArchive_SingleNonEmptyDimension(t *testing.T) {
	b := &mdomain.Breakdown{
		Types: []string{"cc", "ref"},
		Data: map[string][]mdomain.CategoryCount{
			"cc":  {{Key: "US", Count: 3}, {Key: "CA", Count: 1}},
			"ref": {},
		},
	}
	now := time.Now()

	tables := usecase.Aggregate(b, "en", nil, fakeNamer{names: map[string]string{
		"en:US": "United States",
		"en:CA": "Canada",
	}})
	a, err := usecase.BuildArchive(context.Background(), tables, "proj123", now)
	require.NoError(t, err)

	assert.Equal(t, "proj123-"+now.UTC().Format("2006-01-02")+".zip", a.Filename)
	require.Len(t, a.Entries, 1)
	assert.Equal(t, "Country.csv", a.Entries[0].Name)

	files := readZip(t, a.Content)
	require.Len(t, files, 1)
	csv, ok := files["Country.csv"]
	require.True(t, ok)

	lines := strings.Split(strings.TrimSuffix(csv, "\r\n"), "\r\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "name,value,perc\r\nUnited States,3,75%\r\nCanada,1,25%\r\n", csv)
}

func TestBuildArchive_KeepsTableOrder(t *testing.T) {
	tables := []domain.Table{
		{Dimension: "pg", DisplayName: "Page", Rows: []domain.Row{{Name: "/", Value: 1, Perc: "100%"}}},
		{Dimension: "cc", DisplayName: "Country", Rows: []domain.Row{{Name: "US", Value: 1, Perc: "100%"}}},
		{Dimension: "so", DisplayName: "utm/source", Rows: []domain.Row{{Name: "x", Value: 1, Perc: "100%"}}},
	}

	a, err := usecase.BuildArchive(context.Background(), tables, "p", time.Now())
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(a.Content), int64(len(a.Content)))
	require.NoError(t, err)
	require.Len(t, zr.File, 3)
	assert.Equal(t, "Page.csv", zr.File[0].Name)
	assert.Equal(t, "Country.csv", zr.File[1].Name)
	assert.Equal(t, "utm-source.csv", zr.File[2].Name)
}

func TestBuildArchive_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tables := []domain.Table{{Dimension: "cc", DisplayName: "Country"}}
	_, err := usecase.BuildArchive(ctx, tables, "p", time.Now())
	assert.True(t, errors.Is(err, usecase.ErrExportFailed))
}

func TestBuildArchive_DiffersOnlyByDate(t *testing.T) {
	tables := usecase.Aggregate(sampleBreakdown(), "en", nil, nil)
	day1 := time.Date(2025, 12, 7, 12, 0, 0, 0, time.UTC)
	day2 := day1.Add(48 * time.Hour)

	a1, err := usecase.BuildArchive(context.Background(), tables, "p", day1)
	require.NoError(t, err)
	a2, err := usecase.BuildArchive(context.Background(), tables, "p", day2)
	require.NoError(t, err)

	assert.NotEqual(t, a1.Filename, a2.Filename)
	assert.Equal(t, a1.Entries, a2.Entries)
	assert.Equal(t, readZip(t, a1.Content), readZip(t, a2.Content))
}
