package validator

import "testing"

type bookingPayload struct {
	DoctorID  int    `json:"doctor_id" validate:"required,gt=0"`
	StartTime string `json:"start_time" validate:"required,datetime_ymdhms"`
	Day       string `json:"day" validate:"omitempty,date_ymd"`
	Opens     string `json:"opens" validate:"omitempty,clock"`
	Status    string `json:"status" validate:"omitempty,oneof=Present Absent"`
}

func TestValidateCustomTags(t *testing.T) {
	v := NewValidator()

	ok := bookingPayload{DoctorID: 1, StartTime: "2024-03-04 10:00:00", Day: "2024-03-04", Opens: "09:00", Status: "Present"}
	if err := v.Validate(&ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := bookingPayload{StartTime: "2024-03-04T10:00", Day: "04/03/2024", Opens: "nine", Status: "Late"}
	err := v.Validate(&bad)
	if err == nil {
		t.Fatal("expected validation error")
	}

	got := v.FormatValidationErrors(err)
	want := map[string]string{
		"doctor_id":  "doctor_id is required",
		"start_time": "start_time must use format YYYY-MM-DD HH:MM:SS",
		"day":        "day must use format YYYY-MM-DD",
		"opens":      "opens must use format HH:MM or HH:MM:SS",
		"status":     "status must be one of: Present Absent",
	}
	for field, msg := range want {
		if got[field] != msg {
			t.Errorf("%s: got %q, want %q", field, got[field], msg)
		}
	}
}
