package domain

// TimeSeries is the chart-data object returned to the dashboard:
// { x: [...timestamps], <metric>: [...values] }.
// Every metric slice is aligned index-for-index with X.
type TimeSeries struct {
	TimeBucket string
	X          []string             // ISO-8601 bucket starts, non-decreasing
	Metrics    map[string][]float64 // örn: "visits", "unique"
	Order      []string             // metric names in the order the reader produced them
}

// Len returns the number of buckets on the time axis.
func (ts *TimeSeries) Len() int {
	if ts == nil {
		return 0
	}
	return len(ts.X)
}

// CategoryCount is a single (category, count) pair of a dimension breakdown.
type CategoryCount struct {
	Key   string
	Count int64
}

// Breakdown holds counts per category per dimension, e.g. per country or per referrer.
// Data slices keep the order the API (or the database) produced them in.
type Breakdown struct {
	Types []string
	Data  map[string][]CategoryCount
}

// Total returns the summed count of a dimension.
func (b *Breakdown) Total(dimension string) int64 {
	var total int64
	for _, c := range b.Data[dimension] {
		total += c.Count
	}
	return total
}
