package converter

import (
	"testing"
	"time"

	"hospital-backend/internal/domain/entity"
)

// jakarta stands in for a host whose local zone is not UTC.
var jakarta = time.FixedZone("WIB", 7*60*60)

func TestTheaterBookingToResponseFormatsUTC(t *testing.T) {
	start := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC).In(jakarta)
	end := time.Date(2024, 3, 4, 11, 30, 0, 0, time.UTC).In(jakarta)

	resp := TheaterBookingToResponse(&entity.OperationTheaterBooking{ID: 1, StartTime: start, EndTime: end})

	if resp.StartTime != "2024-03-04 10:00:00" {
		t.Errorf("start = %q, want 2024-03-04 10:00:00", resp.StartTime)
	}
	if resp.EndTime != "2024-03-04 11:30:00" {
		t.Errorf("end = %q, want 2024-03-04 11:30:00", resp.EndTime)
	}
}

func TestAdmissionToResponseFormatsUTC(t *testing.T) {
	admitted := time.Date(2024, 3, 4, 20, 15, 0, 0, time.UTC).In(jakarta)
	discharged := time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC).In(jakarta)

	resp := AdmissionToResponse(&entity.Admission{ID: 1, AdmittedAt: admitted, DischargedAt: &discharged})

	// 20:15 UTC is already the next day in WIB.
	if resp.AdmissionDate != "2024-03-04" || resp.AdmissionTime != "20:15:00" {
		t.Errorf("admission = %s %s, want 2024-03-04 20:15:00", resp.AdmissionDate, resp.AdmissionTime)
	}
	if resp.DischargeDate != "2024-03-06" || resp.DischargeTime != "09:00:00" {
		t.Errorf("discharge = %s %s, want 2024-03-06 09:00:00", resp.DischargeDate, resp.DischargeTime)
	}
}
