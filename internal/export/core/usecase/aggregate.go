package usecase

import (
	"math"
	"strconv"
	"strings"

	"dashboard-export-service/internal/export/core/domain"
	"dashboard-export-service/internal/export/core/ports"
	mdomain "dashboard-export-service/internal/metrics/core/domain"
)

// Aggregate turns a breakdown into percentage-annotated tables, one per
// dimension listed in b.Types. Dimensions that are empty or sum to zero are
// skipped. Rows keep the breakdown order; country codes are resolved to
// localized names.
func Aggregate(b *mdomain.Breakdown, locale string, names map[string]string, namer ports.CountryNamer) []domain.Table {
	if b == nil {
		return nil
	}

	tables := make([]domain.Table, 0, len(b.Types))
	for _, dim := range b.Types {
		counts := b.Data[dim]
		total := b.Total(dim)
		if len(counts) == 0 || total == 0 {
			continue
		}

		rows := make([]domain.Row, 0, len(counts))
		for _, c := range counts {
			rows = append(rows, domain.Row{
				Name:  label(dim, c.Key, locale, namer),
				Value: c.Count,
				Perc:  FormatPercent(c.Count, total),
			})
		}

		tables = append(tables, domain.Table{
			Dimension:   dim,
			DisplayName: displayName(dim, names),
			Rows:        rows,
		})
	}

	return tables
}

// FormatPercent renders count/total*100 rounded to two decimals with a
// trailing "%". A zero total yields "0%".
func FormatPercent(count, total int64) string {
	if total == 0 {
		return "0%"
	}
	p := round2(float64(count) / float64(total) * 100)
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return "0%"
	}
	return strconv.FormatFloat(p, 'f', -1, 64) + "%"
}

func label(dim, key, locale string, namer ports.CountryNamer) string {
	if dim != mdomain.DimCountry || namer == nil {
		return key
	}
	if name := namer.CountryName(key, locale); name != "" {
		return name
	}
	return key
}

func displayName(dim string, names map[string]string) string {
	if n, ok := names[dim]; ok && n != "" {
		return n
	}
	if n, ok := domain.DefaultDisplayNames[dim]; ok {
		return n
	}
	return dim
}

// round2 rounds to two decimals by shifting the decimal exponent of the
// shortest representation, so 1.005 becomes 1.01 rather than 1.
func round2(x float64) float64 {
	return shiftExp(math.Round(shiftExp(x, 2)), -2)
}

func shiftExp(x float64, n int) float64 {
	s := strconv.FormatFloat(x, 'g', -1, 64)
	mant, exp := s, 0
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		mant = s[:i]
		exp, _ = strconv.Atoi(s[i+1:])
	}
	v, err := strconv.ParseFloat(mant+"e"+strconv.Itoa(exp+n), 64)
	if err != nil {
		return x * math.Pow10(n)
	}
	return v
}
