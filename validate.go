package mmmratp

// IsWaitingTimeValid reports whether a parsed waiting time can be shown.
// nil means "explicitly unknown" and is displayable; negative values are
// stale and are not.
func IsWaitingTimeValid(t *int) bool {
	return t == nil || *t >= 0
}

// IsTimetableAvailable reports whether tt holds usable live data. The
// leading pass is authoritative: a timetable whose first waiting time is
// unknown counts as unavailable even if later entries carry values.
func IsTimetableAvailable(tt StationTimetable) bool {
	return len(tt.NextPasses) > 0 && tt.NextPasses[0].WaitingTime != nil
}
