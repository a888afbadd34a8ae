package mmmratp

import (
	"testing"
	"time"
)

func ptrEq(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func fmtPtr(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func TestParseWaitingTime(t *testing.T) {
	now := time.Date(2024, time.March, 14, 23, 50, 0, 0, time.UTC)
	tests := []struct {
		name  string
		input string
		want  *int
	}{
		{
			name:  "schedules unavailable",
			input: "Schedules unavailable",
			want:  nil,
		},
		{
			name:  "train at platform",
			input: "Train à quai",
			want:  intPtr(0),
		},
		{
			name:  "train approaching without accent",
			input: "Train a l'approche",
			want:  intPtr(0),
		},
		{
			name:  "minutes countdown",
			input: "7 mn",
			want:  intPtr(7),
		},
		{
			name:  "minutes countdown uppercase",
			input: "7 MN",
			want:  intPtr(7),
		},
		{
			name:  "clock time later tonight",
			input: "23:59 Château de Vincennes",
			want:  intPtr(9),
		},
		{
			name:  "clock time just passed",
			input: "23:40",
			want:  intPtr(-10),
		},
		{
			name:  "garbage",
			input: "garbage",
			want:  nil,
		},
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseWaitingTime(tt.input, now)
			if !ptrEq(got, tt.want) {
				t.Errorf("ParseWaitingTime(%q) = %v, want %v", tt.input, fmtPtr(got), fmtPtr(tt.want))
			}
		})
	}
}

func TestParseWaitingTimePatternOrder(t *testing.T) {
	now := time.Date(2024, time.March, 14, 12, 0, 0, 0, time.UTC)
	// a platform notice wins over any other fragment in the same message
	got := ParseWaitingTime("Train a quai 3 mn", now)
	if !ptrEq(got, intPtr(0)) {
		t.Errorf("expected platform notice to win, got %v", fmtPtr(got))
	}
}

func TestParseTrafficStatus(t *testing.T) {
	tests := []struct {
		input string
		want  TrafficStatus
	}{
		{input: "normal", want: StatusNormal},
		{input: "normal_trav", want: StatusWork},
		{input: "alerte", want: StatusProtest},
		{input: "critical", want: StatusIncident},
		{input: "unknown_code", want: TrafficStatus("unknown_code")},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseTrafficStatus(tt.input); got != tt.want {
				t.Errorf("ParseTrafficStatus(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
