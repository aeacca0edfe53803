package schedule

import "errors"

var (
	// ErrFetch is returned when the schedule page could not be retrieved or decoded
	ErrFetch = errors.New("fetch failed")
	// ErrMalformed is returned when the page does not have the expected schedule markup
	ErrMalformed = errors.New("malformed schedule page")
	// ErrDispatchTime is returned when a dispatch time is not in HH:MM form
	ErrDispatchTime = errors.New("invalid dispatch time")
)

// Trip represents a single train run between two stations as listed on the schedule page
type Trip struct {
	DispatchStation string `json:"dispatch_station"`
	ArrivalStation  string `json:"arrival_station"`
	DispatchTime    string `json:"dispatch_time"` // "08:15"
	ArrivalTime     string `json:"arrival_time"`  // "09:40"
	Rate            string `json:"rate"`          // Fare as displayed, e.g. "120"
}

// Fields returns the trip values in display order
func (t Trip) Fields() []string {
	return []string{t.DispatchStation, t.ArrivalStation, t.DispatchTime, t.ArrivalTime, t.Rate}
}
