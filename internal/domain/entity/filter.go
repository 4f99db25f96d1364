package entity

import "time"

// Filters below are domain-level so repositories stay free of delivery DTOs.
// A nil pointer or empty string means "no constraint". End bounds are exclusive.

type PatientTestFilter struct {
	PatientID *int
	TestType  string
	DateStart *time.Time
	DateEnd   *time.Time
}

type TheaterBookingFilter struct {
	TheaterID *int
	DateStart *time.Time
	DateEnd   *time.Time
}

type StaffFilter struct {
	StaffType string
	Name      string
	JoinStart *time.Time
	JoinEnd   *time.Time
}

type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// AuditLogFilter matches Action exactly, or as the "<entity>." prefix when it has no dot.
type AuditLogFilter struct {
	UserID *int
	Action string
}
