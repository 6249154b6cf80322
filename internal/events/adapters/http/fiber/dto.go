package fiber

import "dashboard-export-service/internal/events/core/usecase"

// CreateEventRequest represents an analytics event sent by the tracker
// @Description Event creation DTO
type CreateEventRequest struct {
	ProjectID   string         `json:"pid" example:"proj123"`
	EventName   string         `json:"ev,omitempty" example:"pageview"`
	UserID      string         `json:"user_id" example:"user_1"`
	Page        string         `json:"pg,omitempty" example:"/pricing"`
	Country     string         `json:"cc,omitempty" example:"US"`
	Locale      string         `json:"lc,omitempty" example:"en-US"`
	Referrer    string         `json:"ref,omitempty"`
	Device      string         `json:"dv,omitempty" example:"desktop"`
	Browser     string         `json:"br,omitempty" example:"Firefox"`
	OS          string         `json:"os,omitempty" example:"Linux"`
	UTMSource   string         `json:"so,omitempty"`
	UTMMedium   string         `json:"me,omitempty"`
	UTMCampaign string         `json:"ca,omitempty"`
	LoadTimeMs  int64          `json:"lt,omitempty" example:"850"`
	Timestamp   int64          `json:"timestamp" example:"1765101600"`
	Tags        []string       `json:"tags,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

func (r CreateEventRequest) toInput() usecase.StoreEventInput {
	return usecase.StoreEventInput{
		ProjectID:   r.ProjectID,
		EventName:   r.EventName,
		UserID:      r.UserID,
		Page:        r.Page,
		Country:     r.Country,
		Locale:      r.Locale,
		Referrer:    r.Referrer,
		Device:      r.Device,
		Browser:     r.Browser,
		OS:          r.OS,
		UTMSource:   r.UTMSource,
		UTMMedium:   r.UTMMedium,
		UTMCampaign: r.UTMCampaign,
		LoadTimeMs:  r.LoadTimeMs,
		Timestamp:   r.Timestamp,
		Tags:        r.Tags,
		Metadata:    r.Metadata,
	}
}

type CreateEventResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type BulkCreateEventsRequest struct {
	Events []CreateEventRequest `json:"events"`
}

type BulkCreateEventsResponse struct {
	Created    int `json:"created"`
	Duplicates int `json:"duplicates"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_event"`
	Message string `json:"message,omitempty" example:"Event payload is invalid"`
}
