package domain

import "time"

// PageviewEvent is the event name recorded for page views; anything else is
// a custom event.
const PageviewEvent = "pageview"

type Event struct {
	ProjectID      string
	EventName      string
	UserID         string
	Page           string
	Country        string // ISO 3166-1 alpha-2
	Locale         string
	Referrer       string
	Device         string
	Browser        string
	OS             string
	UTMSource      string
	UTMMedium      string
	UTMCampaign    string
	LoadTimeBucket string
	EventTime      time.Time
	Tags           []string
	Metadata       map[string]any
	DedupeKey      string
}

func (e *Event) IsPageview() bool {
	return e.EventName == PageviewEvent
}
