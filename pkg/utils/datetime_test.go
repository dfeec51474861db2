package utils

import (
	"testing"
	"time"
)

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
		ok    bool
	}{
		{"rfc3339", "2026-08-28T14:30:00Z", time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC), true},
		{"no zone", "2026-08-28T14:30:00", time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC), true},
		{"datetime-local", "2026-08-28T14:30", time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC), true},
		{"space separator", "2026-08-28 14:30", time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC), true},
		{"date only", "2026-08-28", time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), true},
		{"padded", "  2026-08-28  ", time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), true},
		{"empty", "", time.Time{}, false},
		{"garbage", "tomorrow at noon", time.Time{}, false},
		{"wrong order", "28-08-2026", time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDateTime(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseDateTime(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("ParseDateTime(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseMailDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"rfc1123z", "Thu, 27 Aug 2026 09:15:00 +0200", time.Date(2026, 8, 27, 9, 15, 0, 0, time.FixedZone("", 2*60*60))},
		{"single digit day", "Thu, 6 Aug 2026 09:15:00 +0000", time.Date(2026, 8, 6, 9, 15, 0, 0, time.UTC)},
		{"rfc3339 from graph", "2026-08-27T09:15:00Z", time.Date(2026, 8, 27, 9, 15, 0, 0, time.UTC)},
		{"empty falls to zero", "", time.Time{}},
		{"garbage falls to zero", "not a date", time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseMailDate(tt.input)
			if !got.Equal(tt.want) {
				t.Errorf("ParseMailDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatNullableTime(t *testing.T) {
	if got := FormatNullableTime(nil); got != nil {
		t.Errorf("FormatNullableTime(nil) = %q, want nil", *got)
	}
	ts := time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC)
	got := FormatNullableTime(&ts)
	if got == nil || *got != "2026-08-28T14:30:00Z" {
		t.Errorf("FormatNullableTime = %v, want 2026-08-28T14:30:00Z", got)
	}
}
