package entity

// RecordCounts is the row count of every table shown on the dashboard.
type RecordCounts struct {
	Patients     int64 `json:"total_patients"`
	Doctors      int64 `json:"total_doctors"`
	Appointments int64 `json:"total_appointments"`
	Admissions   int64 `json:"total_admissions"`
	Tests        int64 `json:"total_tests"`
	Bookings     int64 `json:"total_operation_theatre_bookings"`
	Staff        int64 `json:"total_staff"`
}

type LabelCount struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

type DayCount struct {
	DayOfWeek int   `json:"day_of_week"`
	Count     int64 `json:"count"`
}
