package usecase

import (
	"context"
	"errors"
	"testing"

	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/domain/entity"
	"hospital-backend/internal/repository"
	"hospital-backend/pkg/clock"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func newStaffDutyUsecase(t *testing.T) (*gorm.DB, StaffDutyUsecase) {
	t.Helper()
	db := newTestDB(t)
	log := newTestLogger()
	uc := NewStaffDutyUsecase(
		db, log,
		repository.NewHospitalStaffRepository(),
		repository.NewDutyRepository(),
		repository.NewStaffAttendanceRepository(),
		newTestAuditService(log),
	)
	return db, uc
}

func seedStaff(t *testing.T, db *gorm.DB, name, designation string) *entity.HospitalStaff {
	t.Helper()
	joined, _ := clock.ParseDate("2023-01-15")
	staff := &entity.HospitalStaff{Name: name, Designation: designation, DateOfJoining: datatypes.Date(joined)}
	mustCreate(t, db, staff)
	return staff
}

func TestAssignDuty_OncePerDay(t *testing.T) {
	db, uc := newStaffDutyUsecase(t)
	nurse := seedStaff(t, db, "Carla Espinosa", "Nurse")
	ctx := context.Background()

	duty, err := uc.AssignDuty(ctx, &dto.AssignDutyRequest{StaffID: nurse.ID, Date: "2024-03-04"})
	if err != nil {
		t.Fatalf("first assignment: %v", err)
	}
	if duty.Date != "2024-03-04" || duty.StaffID != nurse.ID {
		t.Errorf("unexpected duty: %+v", duty)
	}

	_, err = uc.AssignDuty(ctx, &dto.AssignDutyRequest{StaffID: nurse.ID, Date: "2024-03-04"})
	if !errors.Is(err, ErrStaffUnavailable) {
		t.Fatalf("second assignment err = %v, want ErrStaffUnavailable", err)
	}

	if _, err := uc.AssignDuty(ctx, &dto.AssignDutyRequest{StaffID: nurse.ID, Date: "2024-03-05"}); err != nil {
		t.Fatalf("next day assignment: %v", err)
	}

	schedule, err := uc.GetDutySchedule(ctx, nurse.ID)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if len(schedule.Duties) != 2 || schedule.Name != "Carla Espinosa" {
		t.Errorf("schedule = %+v", schedule)
	}
}

func TestAssignDuty_AbsentBlocks(t *testing.T) {
	db, uc := newStaffDutyUsecase(t)
	porter := seedStaff(t, db, "Janitor Smith", "Porter")
	ctx := context.Background()

	if _, err := uc.MarkAttendance(ctx, &dto.MarkAttendanceRequest{StaffID: porter.ID, Date: "2024-03-06", Status: entity.AttendanceAbsent}); err != nil {
		t.Fatalf("mark absent: %v", err)
	}

	_, err := uc.AssignDuty(ctx, &dto.AssignDutyRequest{StaffID: porter.ID, Date: "2024-03-06"})
	if !errors.Is(err, ErrStaffUnavailable) {
		t.Fatalf("err = %v, want ErrStaffUnavailable", err)
	}

	// Flipping the record to present frees the day again.
	if _, err := uc.MarkAttendance(ctx, &dto.MarkAttendanceRequest{StaffID: porter.ID, Date: "2024-03-06", Status: entity.AttendancePresent}); err != nil {
		t.Fatalf("mark present: %v", err)
	}
	if _, err := uc.AssignDuty(ctx, &dto.AssignDutyRequest{StaffID: porter.ID, Date: "2024-03-06"}); err != nil {
		t.Fatalf("assign after present: %v", err)
	}
}

func TestAssignDuty_UnknownStaff(t *testing.T) {
	_, uc := newStaffDutyUsecase(t)

	_, err := uc.AssignDuty(context.Background(), &dto.AssignDutyRequest{StaffID: 42, Date: "2024-03-04"})
	if !errors.Is(err, ErrStaffNotFound) {
		t.Fatalf("err = %v, want ErrStaffNotFound", err)
	}
}

func TestMarkAttendance_OverwritesSameDay(t *testing.T) {
	db, uc := newStaffDutyUsecase(t)
	staff := seedStaff(t, db, "Ted Buckland", "Clerk")
	ctx := context.Background()

	first, err := uc.MarkAttendance(ctx, &dto.MarkAttendanceRequest{StaffID: staff.ID, Date: "2024-03-04", Status: entity.AttendancePresent})
	if err != nil {
		t.Fatalf("first mark: %v", err)
	}
	second, err := uc.MarkAttendance(ctx, &dto.MarkAttendanceRequest{StaffID: staff.ID, Date: "2024-03-04", Status: entity.AttendanceAbsent})
	if err != nil {
		t.Fatalf("second mark: %v", err)
	}
	if first.ID != second.ID || second.Status != entity.AttendanceAbsent {
		t.Errorf("first=%+v second=%+v", first, second)
	}

	groups, err := uc.GetAttendance(ctx)
	if err != nil {
		t.Fatalf("attendance: %v", err)
	}
	if len(groups) != 1 || len(groups[0].Records) != 1 {
		t.Fatalf("groups = %+v", groups)
	}
}

func TestGetAttendanceReport(t *testing.T) {
	db, uc := newStaffDutyUsecase(t)
	a := seedStaff(t, db, "Alice", "Nurse")
	b := seedStaff(t, db, "Bob", "Nurse")
	idle := seedStaff(t, db, "Idle", "Porter")
	ctx := context.Background()

	marks := []dto.MarkAttendanceRequest{
		{StaffID: a.ID, Date: "2024-03-01", Status: entity.AttendancePresent},
		{StaffID: a.ID, Date: "2024-03-02", Status: entity.AttendancePresent},
		{StaffID: a.ID, Date: "2024-03-03", Status: entity.AttendanceAbsent},
		{StaffID: b.ID, Date: "2024-03-03", Status: entity.AttendancePresent},
		{StaffID: b.ID, Date: "2024-03-10", Status: entity.AttendancePresent}, // outside the range
	}
	for i := range marks {
		if _, err := uc.MarkAttendance(ctx, &marks[i]); err != nil {
			t.Fatalf("mark %d: %v", i, err)
		}
	}

	report, err := uc.GetAttendanceReport(ctx, &dto.AttendanceReportQuery{StartDate: "2024-03-01", EndDate: "2024-03-03"})
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if len(report.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(report.Rows))
	}

	want := map[int][2]int{a.ID: {2, 1}, b.ID: {1, 0}, idle.ID: {0, 0}}
	for _, row := range report.Rows {
		w := want[row.StaffID]
		if row.Present != w[0] || row.Absent != w[1] {
			t.Errorf("staff %d: present=%d absent=%d, want %v", row.StaffID, row.Present, row.Absent, w)
		}
	}

	_, err = uc.GetAttendanceReport(ctx, &dto.AttendanceReportQuery{StartDate: "2024-03-05", EndDate: "2024-03-01"})
	if !errors.Is(err, ErrInvalidDateRange) {
		t.Errorf("reversed range err = %v, want ErrInvalidDateRange", err)
	}
}
