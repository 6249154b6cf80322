package fiber

import (
	"bytes"
	"fmt"
	"io"

	"dashboard-export-service/internal/metrics/core/domain"

	"github.com/goccy/go-json"
)

type TimeSeriesQuery struct {
	From       int64  `query:"from" validate:"required,gt=0"`
	To         int64  `query:"to" validate:"required,gtefield=From"`
	TimeBucket string `query:"time_bucket" validate:"required"`
}

type BreakdownQuery struct {
	From  int64  `query:"from" validate:"required,gt=0"`
	To    int64  `query:"to" validate:"required,gtefield=From"`
	Types string `query:"types"` // comma separated: "cc,ref"
}

// TimeSeriesResponse is encoded as { "x": [...], "<metric>": [...] }.
type TimeSeriesResponse struct {
	series *domain.TimeSeries
}

func NewTimeSeriesResponse(ts *domain.TimeSeries) TimeSeriesResponse {
	return TimeSeriesResponse{series: ts}
}

func (r TimeSeriesResponse) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"x":`)
	x, err := json.Marshal(r.series.X)
	if err != nil {
		return nil, err
	}
	buf.Write(x)

	for _, name := range r.series.Order {
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		values, err := json.Marshal(r.series.Metrics[name])
		if err != nil {
			return nil, err
		}
		buf.WriteByte(',')
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(values)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// BreakdownPayload is the wire shape of a breakdown:
// { "data": { "<dim>": { "<category>": count } }, "types": [...] }.
// Category objects keep document order in both directions.
type BreakdownPayload struct {
	Data  map[string]OrderedCounts `json:"data"`
	Types []string                 `json:"types"`
}

func NewBreakdownPayload(b *domain.Breakdown) BreakdownPayload {
	p := BreakdownPayload{
		Data:  make(map[string]OrderedCounts, len(b.Data)),
		Types: b.Types,
	}
	for dim, counts := range b.Data {
		p.Data[dim] = OrderedCounts(counts)
	}
	if p.Types == nil {
		p.Types = []string{}
	}
	return p
}

func (p BreakdownPayload) ToDomain() *domain.Breakdown {
	b := &domain.Breakdown{
		Types: p.Types,
		Data:  make(map[string][]domain.CategoryCount, len(p.Data)),
	}
	for dim, counts := range p.Data {
		b.Data[dim] = []domain.CategoryCount(counts)
	}
	return b
}

// OrderedCounts is a JSON object of category -> count that preserves key order.
type OrderedCounts []domain.CategoryCount

func (o OrderedCounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		fmt.Fprintf(&buf, ":%d", c.Count)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (o *OrderedCounts) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*o = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("breakdown: expected object, got %v", tok)
	}

	out := OrderedCounts{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("breakdown: expected key, got %v", tok)
		}

		tok, err = dec.Token()
		if err != nil {
			return fmt.Errorf("breakdown: value of %q: %w", key, err)
		}
		n, ok := tok.(json.Number)
		if !ok {
			return fmt.Errorf("breakdown: value of %q must be a non-negative integer", key)
		}
		count, err := n.Int64()
		if err != nil || count < 0 {
			return fmt.Errorf("breakdown: value of %q must be a non-negative integer", key)
		}

		out = append(out, domain.CategoryCount{Key: key, Count: count})
	}

	if _, err := dec.Token(); err != nil && err != io.EOF {
		return err
	}

	*o = out
	return nil
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message" example:"invalid time range"`
}
