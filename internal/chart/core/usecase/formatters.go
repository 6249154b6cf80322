package usecase

import (
	"strconv"
	"strings"

	"dashboard-export-service/internal/chart/core/domain"
	mdomain "dashboard-export-service/internal/metrics/core/domain"
)

var (
	tickFormats = map[string]domain.Formatter{
		mdomain.BucketHour:  {D3: "%I %p", Layout: "03 PM"},
		mdomain.BucketDay:   {D3: "%d %b", Layout: "02 Jan"},
		mdomain.BucketWeek:  {D3: "%d %b", Layout: "02 Jan"},
		mdomain.BucketMonth: {D3: "%b %Y", Layout: "Jan 2006"},
	}

	tickFormats24h = map[string]domain.Formatter{
		mdomain.BucketHour:  {D3: "%H:%M", Layout: "15:04"},
		mdomain.BucketDay:   {D3: "%d %b", Layout: "02 Jan"},
		mdomain.BucketWeek:  {D3: "%d %b", Layout: "02 Jan"},
		mdomain.BucketMonth: {D3: "%b %Y", Layout: "Jan 2006"},
	}

	tooltipFormats = map[string]domain.Formatter{
		mdomain.BucketHour:  {D3: "%d %b %I %p", Layout: "02 Jan 03 PM"},
		mdomain.BucketDay:   {D3: "%d %b %Y", Layout: "02 Jan 2006"},
		mdomain.BucketWeek:  {D3: "%d %b %Y", Layout: "02 Jan 2006"},
		mdomain.BucketMonth: {D3: "%b %Y", Layout: "Jan 2006"},
	}

	tooltipFormats24h = map[string]domain.Formatter{
		mdomain.BucketHour:  {D3: "%d %b %H:%M", Layout: "02 Jan 15:04"},
		mdomain.BucketDay:   {D3: "%d %b %Y", Layout: "02 Jan 2006"},
		mdomain.BucketWeek:  {D3: "%d %b %Y", Layout: "02 Jan 2006"},
		mdomain.BucketMonth: {D3: "%b %Y", Layout: "Jan 2006"},
	}
)

// TickFormatter returns the x-axis label formatter for a bucket. Unknown
// buckets fall back to the day formatter.
func TickFormatter(bucket string, tf domain.TimeFormat) domain.Formatter {
	if tf == domain.TimeFormat24h {
		return lookup(tickFormats24h, bucket)
	}
	return lookup(tickFormats, bucket)
}

// TooltipFormatter returns the tooltip title formatter for a bucket.
func TooltipFormatter(bucket string, tf domain.TimeFormat) domain.Formatter {
	if tf == domain.TimeFormat24h {
		return lookup(tooltipFormats24h, bucket)
	}
	return lookup(tooltipFormats, bucket)
}

func lookup(table map[string]domain.Formatter, bucket string) domain.Formatter {
	if f, ok := table[bucket]; ok {
		return f
	}
	return table[mdomain.BucketDay]
}

var compactUnits = []struct {
	value  float64
	symbol string
}{
	{1e18, "E"},
	{1e15, "P"},
	{1e12, "T"},
	{1e9, "B"},
	{1e6, "M"},
	{1e3, "k"},
	{1, ""},
}

// CompactNumber renders n with a unit suffix and at most digits decimals:
// 1500 -> "1.5k", 2000000 -> "2M". Values below 1 render as "0".
func CompactNumber(n float64, digits int) string {
	for _, u := range compactUnits {
		if n >= u.value {
			s := strconv.FormatFloat(n/u.value, 'f', digits, 64)
			return trimZeros(s) + u.symbol
		}
	}
	return "0"
}

// FormatValue renders a series value the way it is shown in tooltips.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
