// Package countries resolves ISO 3166-1 region codes to localized names.
package countries

import (
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

var (
	supported = display.Supported.Tags()
	matcher   = language.NewMatcher(supported)
)

// Namer looks country names up in the CLDR tables bundled with x/text.
// Unknown locales fall back to English.
type Namer struct {
	mu sync.Mutex
	// keyed by the matched CLDR locale, so at most one entry per table
	namers map[string]display.Namer
}

func NewNamer() *Namer {
	return &Namer{namers: map[string]display.Namer{}}
}

// CountryName returns the name of code in locale, or "" if code is not a
// known country.
func (n *Namer) CountryName(code, locale string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	region, err := language.ParseRegion(code)
	if err != nil || !region.IsCountry() {
		return ""
	}
	return n.namer(locale).Name(region)
}

func (n *Namer) namer(locale string) display.Namer {
	tag := language.English
	if t, err := language.Parse(locale); err == nil {
		if _, i, conf := matcher.Match(t); conf != language.No {
			tag = supported[i]
		}
	}
	key := tag.String()

	n.mu.Lock()
	defer n.mu.Unlock()

	if nm, ok := n.namers[key]; ok {
		return nm
	}
	nm := display.Regions(tag)
	if nm == nil {
		key = language.English.String()
		if cached, ok := n.namers[key]; ok {
			return cached
		}
		nm = display.Regions(language.English)
	}
	n.namers[key] = nm
	return nm
}
