package fiber

import (
	"time"

	"dashboard-export-service/internal/chart/core/domain"
	"dashboard-export-service/internal/chart/core/usecase"
)

type ChartQuery struct {
	From       int64  `query:"from" validate:"required,gt=0"`
	To         int64  `query:"to" validate:"required,gtefield=From"`
	TimeBucket string `query:"time_bucket" validate:"required"`
	Period     string `query:"period"`
	Metrics    string `query:"metrics"`
	TimeFormat string `query:"time_format"`
	ChartType  string `query:"chart_type"`
	Rotate     bool   `query:"rotate"`
	Regions    string `query:"regions" validate:"omitempty,oneof=true false"`
	TZ         string `query:"tz"`
}

// ChartResponse mirrors the billboard.js options object. Formatter functions
// are shipped as d3 specifiers together with server-rendered labels.
type ChartResponse struct {
	Data       DataResponse       `json:"data"`
	Transition TransitionResponse `json:"transition"`
	Resize     ResizeResponse     `json:"resize"`
	Axis       AxisResponse       `json:"axis"`
	Tooltip    TooltipResponse    `json:"tooltip"`
	Point      PointResponse      `json:"point"`
	Legend     LegendResponse     `json:"legend"`
	Area       AreaResponse       `json:"area"`
	Padding    PaddingResponse    `json:"padding"`
	BindTo     string             `json:"bindto"`
}

type DataResponse struct {
	X       string                     `json:"x"`
	Columns [][]any                    `json:"columns"`
	Types   map[string]string          `json:"types"`
	Colors  map[string]string          `json:"colors"`
	Regions map[string][]domain.Region `json:"regions,omitempty"`
}

type TransitionResponse struct {
	Duration int64 `json:"duration"`
}

type ResizeResponse struct {
	Auto  bool `json:"auto"`
	Timer bool `json:"timer"`
}

type AxisResponse struct {
	X XAxisResponse `json:"x"`
	Y YAxisResponse `json:"y"`
}

type XAxisResponse struct {
	ClipPath  bool         `json:"clipPath"`
	Tick      TickResponse `json:"tick"`
	Localtime bool         `json:"localtime"`
	Type      string       `json:"type"`
}

type TickResponse struct {
	Fit    bool     `json:"fit"`
	Rotate int      `json:"rotate"`
	Format string   `json:"format"`
	Labels []string `json:"labels"`
}

type YAxisResponse struct {
	Tick YTickResponse `json:"tick"`
}

// YTickResponse carries evenly spaced ticks from 0 to the largest value,
// labelled by the configured y formatter.
type YTickResponse struct {
	Values []float64 `json:"values"`
	Labels []string  `json:"labels"`
}

type TooltipResponse struct {
	Format   string   `json:"format"`
	Contents []string `json:"contents"` // index-aligned with the x column
}

type PointResponse struct {
	Focus   FocusResponse `json:"focus"`
	Pattern []string      `json:"pattern"`
	R       int           `json:"r"`
}

type FocusResponse struct {
	Only bool `json:"only"`
}

type LegendResponse struct {
	UsePoint bool               `json:"usePoint"`
	Item     LegendItemResponse `json:"item"`
}

type LegendItemResponse struct {
	Tile TileResponse `json:"tile"`
}

type TileResponse struct {
	Width int `json:"width"`
}

type AreaResponse struct {
	LinearGradient bool `json:"linearGradient"`
}

type PaddingResponse struct {
	Right int `json:"right,omitempty"`
}

const yTickCount = 5

func newYTicks(cfg *domain.Configuration) YTickResponse {
	format := cfg.Axis.Y.Format
	if format == nil {
		format = usecase.FormatValue
	}

	var top float64
	for _, col := range cfg.Data.Columns {
		for _, v := range col.Values {
			if v > top {
				top = v
			}
		}
	}

	n := yTickCount
	if top == 0 {
		n = 1
	}
	tick := YTickResponse{
		Values: make([]float64, n),
		Labels: make([]string, n),
	}
	for i := range tick.Values {
		if n > 1 {
			tick.Values[i] = top * float64(i) / float64(n-1)
		}
		tick.Labels[i] = format(tick.Values[i])
	}
	return tick
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message" example:"invalid time bucket"`
}

func NewChartResponse(cfg *domain.Configuration) ChartResponse {
	loc := cfg.Axis.X.Location
	if loc == nil {
		loc = time.UTC
	}

	var dates []time.Time
	columns := make([][]any, 0, len(cfg.Data.Columns))
	for _, col := range cfg.Data.Columns {
		row := []any{col.ID}
		if col.Dates != nil {
			dates = col.Dates
			for _, d := range col.Dates {
				row = append(row, d.Format(time.RFC3339))
			}
		} else {
			for _, v := range col.Values {
				row = append(row, v)
			}
		}
		columns = append(columns, row)
	}

	labels := make([]string, len(dates))
	contents := make([]string, len(dates))
	color := func(id string) string { return cfg.Data.Colors[id] }
	for i, d := range dates {
		labels[i] = cfg.Axis.X.Tick.Format.Format(d.In(loc))

		items := make([]domain.TooltipItem, 0, len(cfg.Data.Columns)-1)
		for _, col := range cfg.Data.Columns[1:] {
			items = append(items, domain.TooltipItem{
				ID:    col.ID,
				Name:  col.ID,
				Value: usecase.FormatValue(col.Values[i]),
				X:     d,
			})
		}
		contents[i] = cfg.Tooltip.Contents(items, color)
	}

	return ChartResponse{
		Data: DataResponse{
			X:       cfg.Data.X,
			Columns: columns,
			Types:   cfg.Data.Types,
			Colors:  cfg.Data.Colors,
			Regions: cfg.Data.Regions,
		},
		Transition: TransitionResponse{Duration: cfg.Transition.Milliseconds()},
		Resize:     ResizeResponse{Auto: cfg.ResizeAuto, Timer: false},
		Axis: AxisResponse{
			X: XAxisResponse{
				ClipPath: cfg.Axis.X.ClipPath,
				Tick: TickResponse{
					Fit:    cfg.Axis.X.Tick.Fit,
					Rotate: cfg.Axis.X.Tick.Rotate,
					Format: cfg.Axis.X.Tick.Format.D3,
					Labels: labels,
				},
				Localtime: cfg.Axis.X.Localtime,
				Type:      cfg.Axis.X.Type,
			},
			Y: YAxisResponse{Tick: newYTicks(cfg)},
		},
		Tooltip: TooltipResponse{
			Format:   cfg.Tooltip.Format.D3,
			Contents: contents,
		},
		Point: PointResponse{
			Focus:   FocusResponse{Only: cfg.Point.FocusOnly},
			Pattern: cfg.Point.Pattern,
			R:       cfg.Point.R,
		},
		Legend: LegendResponse{
			UsePoint: cfg.Legend.UsePoint,
			Item:     LegendItemResponse{Tile: TileResponse{Width: cfg.Legend.TileWidth}},
		},
		Area:    AreaResponse{LinearGradient: cfg.Area.LinearGradient},
		Padding: PaddingResponse{Right: cfg.Padding.Right},
		BindTo:  cfg.BindTo,
	}
}
