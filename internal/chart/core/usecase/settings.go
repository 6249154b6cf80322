package usecase

import (
	"html"
	"strings"
	"time"

	"dashboard-export-service/internal/chart/core/domain"
	mdomain "dashboard-export-service/internal/metrics/core/domain"
)

// Fixed styling.
const (
	transitionDuration = 500 * time.Millisecond
	rotatedTickAngle   = 45
	rotatedPadding     = 35
	pointRadius        = 3
	legendTileWidth    = 10
	regionDasharray    = "6 2"
	bindTo             = "#dataChart"
)

var metricColors = map[string]string{
	"visits":  "#2563EB",
	"unique":  "#EAB308",
	"results": "#2563EB",
}

var fallbackColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

type SettingsInput struct {
	Series       *mdomain.TimeSeries
	TimeBucket   string
	Active       domain.ActiveMetrics
	ApplyRegions bool
	TimeFormat   domain.TimeFormat
	RotateXAxis  bool
	ChartType    domain.ChartType
	// Location is used for labels in 24-hour mode (localtime axis). Nil means UTC.
	Location *time.Location
}

// AssembleSettings builds the full chart configuration for a series.
func AssembleSettings(in SettingsInput) (*domain.Configuration, error) {
	columns, err := BuildColumns(in.Series, in.Active)
	if err != nil {
		return nil, err
	}

	dates := columns[0].Dates
	series := columns[1:]

	tick := TickFormatter(in.TimeBucket, in.TimeFormat)
	tooltipFmt := TooltipFormatter(in.TimeBucket, in.TimeFormat)
	loc := labelLocation(in)

	cfg := &domain.Configuration{
		Data: domain.Data{
			X:       xColumn,
			Columns: columns,
			Types:   seriesTypes(series, in.ChartType),
			Colors:  seriesColors(series),
			Regions: regions(series, dates, in.ApplyRegions),
		},
		Transition: transitionDuration,
		ResizeAuto: true,
		Axis: domain.Axis{
			X: domain.XAxis{
				ClipPath: false,
				Tick: domain.Tick{
					Fit:    true,
					Rotate: rotation(in.RotateXAxis),
					Format: tick,
				},
				Localtime: in.TimeFormat == domain.TimeFormat24h,
				Location:  loc,
				Type:      "timeseries",
			},
			Y: domain.YAxis{
				Format: func(v float64) string { return CompactNumber(v, 1) },
			},
		},
		Tooltip: domain.Tooltip{
			Format:   tooltipFmt,
			Contents: tooltipContents(tooltipFmt, loc),
		},
		Point: domain.Point{
			FocusOnly: len(dates) > 1,
			Pattern:   []string{"circle"},
			R:         pointRadius,
		},
		Legend: domain.Legend{
			UsePoint:  true,
			TileWidth: legendTileWidth,
		},
		Area: domain.Area{
			LinearGradient: true,
		},
		BindTo: bindTo,
	}

	if in.RotateXAxis {
		cfg.Padding.Right = rotatedPadding
	}

	return cfg, nil
}

// labelLocation is the zone axis and tooltip labels render in.
func labelLocation(in SettingsInput) *time.Location {
	if in.TimeFormat == domain.TimeFormat24h && in.Location != nil {
		return in.Location
	}
	return time.UTC
}

// RegionStart returns where the provisional region begins: the second-to-last
// bucket when there are at least two, otherwise the only bucket.
func RegionStart(dates []time.Time) (time.Time, bool) {
	switch n := len(dates); {
	case n == 0:
		return time.Time{}, false
	case n > 1:
		return dates[n-2], true
	default:
		return dates[n-1], true
	}
}

func regions(series []domain.Column, dates []time.Time, apply bool) map[string][]domain.Region {
	if !apply {
		return nil
	}
	start, ok := RegionStart(dates)
	if !ok {
		return nil
	}

	out := make(map[string][]domain.Region, len(series))
	for _, col := range series {
		out[col.ID] = []domain.Region{{
			Start: start,
			Style: domain.RegionStyle{Dasharray: regionDasharray},
		}}
	}
	return out
}

// seriesTypes maps every series to its render style. Anything that is not an
// explicit bar chart renders as an area.
func seriesTypes(series []domain.Column, ct domain.ChartType) map[string]string {
	style := "area"
	if ct == domain.ChartBar {
		style = "bar"
	}

	out := make(map[string]string, len(series))
	for _, col := range series {
		out[col.ID] = style
	}
	return out
}

func seriesColors(series []domain.Column) map[string]string {
	out := make(map[string]string, len(series))
	next := 0
	for _, col := range series {
		if c, ok := metricColors[col.ID]; ok {
			out[col.ID] = c
			continue
		}
		out[col.ID] = fallbackColors[next%len(fallbackColors)]
		next++
	}
	return out
}

func rotation(rotate bool) int {
	if rotate {
		return rotatedTickAngle
	}
	return 0
}

func tooltipContents(f domain.Formatter, loc *time.Location) func([]domain.TooltipItem, func(string) string) string {
	return func(items []domain.TooltipItem, color func(string) string) string {
		if len(items) == 0 {
			return ""
		}

		var b strings.Builder
		b.WriteString(`<ul class='bg-gray-100 dark:text-gray-50 dark:bg-slate-800 rounded-md shadow-md px-3 py-1'>`)
		b.WriteString(`<li class='font-semibold'>`)
		b.WriteString(html.EscapeString(f.Format(items[0].X.In(loc))))
		b.WriteString(`</li><hr class='border-gray-200 dark:border-gray-600' />`)

		for _, it := range items {
			b.WriteString(`<li class='flex justify-between'><div class='flex justify-items-start'>`)
			b.WriteString(`<div class='w-3 h-3 rounded-sm mt-1.5 mr-2' style='background-color:`)
			b.WriteString(html.EscapeString(color(it.ID)))
			b.WriteString(`'></div><span>`)
			b.WriteString(html.EscapeString(it.Name))
			b.WriteString(`</span></div><span class='pl-4'>`)
			b.WriteString(html.EscapeString(it.Value))
			b.WriteString(`</span></li>`)
		}

		b.WriteString(`</ul>`)
		return b.String()
	}
}
