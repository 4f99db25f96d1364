package clock

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"09:00", 9 * time.Hour, false},
		{"09:30:15", 9*time.Hour + 30*time.Minute + 15*time.Second, false},
		{"23:59:59", 24*time.Hour - time.Second, false},
		{"9am", 0, true},
		{"25:00", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseClock(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseDateTime(t *testing.T) {
	got, err := ParseDateTime("2024-03-04 10:00:00")
	if err != nil {
		t.Fatal(err)
	}
	if got.Weekday() != time.Monday || got.Location() != time.UTC {
		t.Errorf("got %v", got)
	}
	if SinceMidnight(got) != 10*time.Hour {
		t.Errorf("SinceMidnight = %v", SinceMidnight(got))
	}
	if _, err := ParseDateTime("2024-03-04T10:00:00Z"); err == nil {
		t.Error("expected error for RFC3339 input")
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(13*time.Hour + 5*time.Minute + 9*time.Second); got != "13:05:09" {
		t.Errorf("FormatClock = %q", got)
	}
}

func TestSameDate(t *testing.T) {
	a := time.Date(2024, 3, 4, 23, 0, 0, 0, time.UTC)
	if !SameDate(a, a.Add(30*time.Minute)) {
		t.Error("expected same date")
	}
	if SameDate(a, a.Add(2*time.Hour)) {
		t.Error("expected different date")
	}
}
