package mmmratp

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// scheduleUnavailable is the exact message the API returns when it has no
// data for a station.
const scheduleUnavailable = "Schedules unavailable"

var (
	trainAtStationRe = regexp.MustCompile(`(?i)train (a|à) (quai|l'approche)`)
	minutesRe        = regexp.MustCompile(`(?i)(\d+) mn`)
	clockRe          = regexp.MustCompile(`(\d{1,2}):(\d{2})`)
)

// ParseWaitingTime extracts a waiting time in minutes from a raw schedule
// message. Patterns are tried in order, first match wins: explicit
// unavailability, a train at or approaching the platform, an "N mn"
// countdown, then a clock time on now's calendar date. Unparseable text
// degrades to nil, never to an error. A clock time that just passed yields
// a negative value; filtering those is the caller's job.
func ParseWaitingTime(text string, now time.Time) *int {
	if text == scheduleUnavailable {
		return nil
	}
	if trainAtStationRe.MatchString(text) {
		return intPtr(0)
	}
	if m := minutesRe.FindStringSubmatch(text); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return nil
		}
		return intPtr(n)
	}
	if strings.Contains(text, ":") {
		return parseClockTime(text, now)
	}
	return nil
}

// parseClockTime reads an "HH:mm" fragment as a target on now's date and
// returns the rounded minutes until it.
func parseClockTime(text string, now time.Time) *int {
	m := clockRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	target := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	return intPtr(int(math.Round(target.Sub(now).Minutes())))
}

// ParseTrafficStatus maps a raw status code to a display category. Codes
// not yet categorized pass through unchanged.
func ParseTrafficStatus(code string) TrafficStatus {
	switch code {
	case "normal_trav":
		return StatusWork
	case "alerte":
		return StatusProtest
	case "critical":
		return StatusIncident
	}
	return TrafficStatus(code)
}

func intPtr(n int) *int { return &n }
