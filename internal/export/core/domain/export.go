package domain

import "time"

// Row is one CSV line of a dimension: label, raw count and percentage of the
// dimension total ("75%", "33.33%").
type Row struct {
	Name  string
	Value int64
	Perc  string
}

// Table holds the rows of a single non-empty dimension.
type Table struct {
	Dimension   string
	DisplayName string
	Rows        []Row
}

// Entry is a named file inside an export archive.
type Entry struct {
	Name string
	Data []byte
}

// Archive is the packaged export: one CSV entry per non-empty dimension.
type Archive struct {
	Filename  string
	Entries   []Entry
	Content   []byte
	CreatedAt time.Time
}

// DefaultDisplayNames maps dimension keys to the entry names used in exports.
var DefaultDisplayNames = map[string]string{
	"cc":  "Country",
	"pg":  "Page",
	"lc":  "Locale",
	"ref": "Referrer",
	"dv":  "Device",
	"br":  "Browser",
	"os":  "OS",
	"so":  "utm_source",
	"me":  "utm_medium",
	"ca":  "utm_campaign",
	"lt":  "Load time",
	"ev":  "Event",
}
