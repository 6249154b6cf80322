package domain

import "time"

type TimeFormat string

const (
	TimeFormat12h TimeFormat = "12-hour"
	TimeFormat24h TimeFormat = "24-hour"
)

type ChartType string

const (
	ChartLine ChartType = "line"
	ChartBar  ChartType = "bar"
)

// ActiveMetrics is the user-toggled subset of metrics rendered on a chart.
type ActiveMetrics map[string]bool

// Column is one column of the chart data. The first column of a chart is the
// "x" column and carries Dates; the others carry Values.
type Column struct {
	ID     string
	Dates  []time.Time
	Values []float64
}

// Formatter renders a bucket timestamp for display. D3 is the equivalent
// d3-time-format specifier handed to the browser.
type Formatter struct {
	D3     string
	Layout string
}

func (f Formatter) Format(t time.Time) string {
	return t.Format(f.Layout)
}

type RegionStyle struct {
	Dasharray string `json:"dasharray"`
}

type Region struct {
	Start time.Time   `json:"start"`
	Style RegionStyle `json:"style"`
}

// TooltipItem is one hovered series point.
type TooltipItem struct {
	ID    string
	Name  string
	Value string
	X     time.Time
}

type Data struct {
	X       string
	Columns []Column
	Types   map[string]string
	Colors  map[string]string
	Regions map[string][]Region
}

type Tick struct {
	Fit    bool
	Rotate int
	Format Formatter
}

type XAxis struct {
	ClipPath  bool
	Tick      Tick
	Localtime bool
	Location  *time.Location
	Type      string
}

type YAxis struct {
	Format func(float64) string
}

type Axis struct {
	X XAxis
	Y YAxis
}

type Tooltip struct {
	Format Formatter
	// Contents renders the tooltip body for the hovered points; color maps a
	// series id to its swatch color.
	Contents func(items []TooltipItem, color func(id string) string) string
}

type Point struct {
	FocusOnly bool
	Pattern   []string
	R         int
}

type Legend struct {
	UsePoint  bool
	TileWidth int
}

type Area struct {
	LinearGradient bool
}

type Padding struct {
	Right int
}

// Configuration is the declarative chart description consumed by the renderer.
// It is rebuilt on every input change and never mutated afterwards.
type Configuration struct {
	Data       Data
	Transition time.Duration
	ResizeAuto bool
	Axis       Axis
	Tooltip    Tooltip
	Point      Point
	Legend     Legend
	Area       Area
	Padding    Padding
	BindTo     string
}
