package mmmratp

import "testing"

func TestIsWaitingTimeValid(t *testing.T) {
	tests := []struct {
		name string
		time *int
		want bool
	}{
		{name: "unknown is displayable", time: nil, want: true},
		{name: "zero is valid", time: intPtr(0), want: true},
		{name: "positive is valid", time: intPtr(5), want: true},
		{name: "negative is stale", time: intPtr(-1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsWaitingTimeValid(tt.time); got != tt.want {
				t.Errorf("IsWaitingTimeValid(%v) = %v, want %v", fmtPtr(tt.time), got, tt.want)
			}
		})
	}
}

func TestIsTimetableAvailable(t *testing.T) {
	tests := []struct {
		name   string
		passes []NextPass
		want   bool
	}{
		{
			name:   "empty is unavailable",
			passes: nil,
			want:   false,
		},
		{
			name:   "leading unknown governs even with later values",
			passes: []NextPass{{WaitingTime: nil}, {WaitingTime: intPtr(5)}},
			want:   false,
		},
		{
			name:   "leading value is available",
			passes: []NextPass{{WaitingTime: intPtr(3)}},
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTimetableAvailable(StationTimetable{NextPasses: tt.passes}); got != tt.want {
				t.Errorf("IsTimetableAvailable() = %v, want %v", got, tt.want)
			}
		})
	}
}
