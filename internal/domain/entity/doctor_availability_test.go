package entity

import (
	"testing"
	"time"

	"gorm.io/datatypes"
)

func window(startH, startM, endH, endM int) DoctorAvailability {
	return DoctorAvailability{
		StartTime: datatypes.NewTime(startH, startM, 0, 0),
		EndTime:   datatypes.NewTime(endH, endM, 0, 0),
	}
}

func TestDayOfWeekIsMondayFirst(t *testing.T) {
	monday := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		if got := DayOfWeek(monday.AddDate(0, 0, i)); got != i {
			t.Errorf("day %d: got %d", i, got)
		}
	}
	if DayNames[DayOfWeek(monday)] != "Monday" {
		t.Error("expected Monday")
	}
}

func TestCoversInterval(t *testing.T) {
	h := func(hour, min int) time.Duration {
		return time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute
	}

	tests := []struct {
		name    string
		windows []DoctorAvailability
		from    time.Duration
		to      time.Duration
		want    bool
	}{
		{"inside single window", []DoctorAvailability{window(9, 0, 12, 0)}, h(10, 0), h(11, 0), true},
		{"touching both bounds", []DoctorAvailability{window(9, 0, 12, 0)}, h(9, 0), h(12, 0), true},
		{"starts before window", []DoctorAvailability{window(9, 0, 12, 0)}, h(8, 30), h(10, 0), false},
		{"ends after window", []DoctorAvailability{window(9, 0, 12, 0)}, h(11, 0), h(12, 30), false},
		{"outside window", []DoctorAvailability{window(9, 0, 12, 0)}, h(13, 0), h(14, 0), false},
		{"no windows", nil, h(10, 0), h(11, 0), false},
		{"contiguous windows merge", []DoctorAvailability{window(12, 0, 15, 0), window(9, 0, 12, 0)}, h(11, 0), h(13, 0), true},
		{"overlapping windows merge", []DoctorAvailability{window(9, 0, 12, 0), window(11, 0, 14, 0)}, h(10, 0), h(13, 30), true},
		{"gap between windows", []DoctorAvailability{window(9, 0, 11, 0), window(12, 0, 14, 0)}, h(10, 0), h(13, 0), false},
		{"second window covers", []DoctorAvailability{window(9, 0, 10, 0), window(14, 0, 18, 0)}, h(15, 0), h(16, 0), true},
		{"inverted window ignored", []DoctorAvailability{window(12, 0, 9, 0)}, h(10, 0), h(11, 0), false},
		{"reversed interval", []DoctorAvailability{window(9, 0, 12, 0)}, h(11, 0), h(10, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CoversInterval(tt.windows, tt.from, tt.to); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
