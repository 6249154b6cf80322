package usecase

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"dashboard-export-service/internal/chart/core/domain"
	mdomain "dashboard-export-service/internal/metrics/core/domain"
)

var ErrInvalidInputShape = errors.New("invalid input shape")

const xColumn = "x"

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// BuildColumns converts a time series into chart columns: the "x" column of
// parsed bucket dates followed by one column per active metric. Inactive
// metrics are left out entirely.
func BuildColumns(ts *mdomain.TimeSeries, active domain.ActiveMetrics) ([]domain.Column, error) {
	if ts == nil {
		return []domain.Column{{ID: xColumn, Dates: []time.Time{}}}, nil
	}

	dates := make([]time.Time, len(ts.X))
	for i, raw := range ts.X {
		t, err := ParseTimestamp(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: x[%d]: %v", ErrInvalidInputShape, i, err)
		}
		dates[i] = t
	}

	columns := []domain.Column{{ID: xColumn, Dates: dates}}

	for _, name := range metricOrder(ts) {
		if !active[name] {
			continue
		}
		values := ts.Metrics[name]
		if len(values) != len(ts.X) {
			return nil, fmt.Errorf("%w: metric %q has %d values for %d buckets",
				ErrInvalidInputShape, name, len(values), len(ts.X))
		}
		columns = append(columns, domain.Column{ID: name, Values: values})
	}

	return columns, nil
}

// ParseTimestamp accepts ISO-8601 timestamps with or without a zone; zoneless
// values are read as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// metricOrder lists the series metrics in reader order, then any remaining
// metrics by name.
func metricOrder(ts *mdomain.TimeSeries) []string {
	seen := make(map[string]bool, len(ts.Metrics))
	order := make([]string, 0, len(ts.Metrics))
	for _, name := range ts.Order {
		if _, ok := ts.Metrics[name]; ok && !seen[name] {
			seen[name] = true
			order = append(order, name)
		}
	}

	var rest []string
	for name := range ts.Metrics {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)

	return append(order, rest...)
}
