package mmmratp

import (
	"time"

	"github.com/NomadArchitect/mmm-ratp/ratp"
)

// NextPass is one upcoming departure. WaitingTime is in minutes; nil means
// the API could not provide a value for this entry.
type NextPass struct {
	WaitingTime *int   `json:"waitingTime"`
	Destination string `json:"destination"`
}

// StationTimetable aggregates the upcoming departures for one configured
// line/station/direction, soonest first. When Estimated is true the
// waiting times were derived from the previous snapshot and RequestedAt is
// the time that snapshot was captured, not the time of the current cycle.
type StationTimetable struct {
	Type        ratp.LineType `json:"type"`
	Line        string        `json:"line"`
	Station     string        `json:"station"`
	NextPasses  []NextPass    `json:"nextPasses"`
	RequestedAt time.Time     `json:"requestedAt"`
	Estimated   bool          `json:"estimated"`
}

// TrafficStatus classifies a line's traffic state for display. Raw codes
// the parser does not recognize pass through unchanged.
type TrafficStatus string

const (
	StatusNormal   TrafficStatus = "normal"
	StatusWork     TrafficStatus = "work"
	StatusProtest  TrafficStatus = "protest"
	StatusIncident TrafficStatus = "incident"
)

// TrafficInfo is the normalized status of one line.
type TrafficInfo struct {
	Type    ratp.LineType `json:"type"`
	Line    string        `json:"line"`
	Status  TrafficStatus `json:"status"`
	Title   string        `json:"title"`
	Message string        `json:"message"`
}

// Snapshot bundles the most recent results of both fetch categories.
type Snapshot struct {
	Timetables []StationTimetable `json:"timetables"`
	Traffic    []TrafficInfo      `json:"traffic"`
}
