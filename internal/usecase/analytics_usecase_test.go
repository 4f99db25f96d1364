package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/domain/entity"
	"hospital-backend/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newAnalyticsUsecase(t *testing.T) (*gorm.DB, AnalyticsUsecase) {
	t.Helper()
	db := newTestDB(t)
	uc := NewAnalyticsUsecase(
		db, newTestLogger(),
		repository.NewAnalyticsRepository(),
		repository.NewPaymentRepository(),
		repository.NewDutyRepository(),
		repository.NewPatientTestRepository(),
		repository.NewOperationTheaterBookingRepository(),
		repository.NewHospitalStaffRepository(),
	)
	return db, uc
}

func TestGetRevenue_GroupsByTypeAndMonth(t *testing.T) {
	db, uc := newAnalyticsUsecase(t)
	patient := seedPatient(t, db, "Jane", nil)

	pay := func(amount, kind string, y int, m time.Month, d int) {
		mustCreate(t, db, &entity.Payment{
			PatientID:   patient.ID,
			Amount:      decimal.RequireFromString(amount),
			PaymentType: kind,
			PaymentDate: time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		})
	}
	pay("100.50", "Cash", 2024, time.January, 10)
	pay("49.50", "Card", 2024, time.January, 31)
	pay("200.00", "Cash", 2024, time.February, 1)
	pay("75.25", "Insurance", 2024, time.March, 15)

	resp, err := uc.GetRevenue(context.Background(), &dto.RevenueQuery{})
	if err != nil {
		t.Fatalf("revenue: %v", err)
	}
	if !resp.TotalRevenue.Equal(decimal.RequireFromString("425.25")) {
		t.Errorf("total = %s, want 425.25", resp.TotalRevenue)
	}

	wantTypes := []dto.AmountBucket{
		{Label: "Card", Amount: decimal.RequireFromString("49.50")},
		{Label: "Cash", Amount: decimal.RequireFromString("300.50")},
		{Label: "Insurance", Amount: decimal.RequireFromString("75.25")},
	}
	assertBuckets(t, "by type", resp.ByPaymentType, wantTypes)

	wantMonths := []dto.AmountBucket{
		{Label: "2024-01", Amount: decimal.RequireFromString("150.00")},
		{Label: "2024-02", Amount: decimal.RequireFromString("200.00")},
		{Label: "2024-03", Amount: decimal.RequireFromString("75.25")},
	}
	assertBuckets(t, "by month", resp.ByMonth, wantMonths)

	// The end date is inclusive.
	resp, err = uc.GetRevenue(context.Background(), &dto.RevenueQuery{DateStart: "2024-01-31", DateEnd: "2024-02-01"})
	if err != nil {
		t.Fatalf("ranged revenue: %v", err)
	}
	if !resp.TotalRevenue.Equal(decimal.RequireFromString("249.50")) {
		t.Errorf("ranged total = %s, want 249.50", resp.TotalRevenue)
	}
}

func TestGetRevenue_RejectsBadRange(t *testing.T) {
	_, uc := newAnalyticsUsecase(t)

	if _, err := uc.GetRevenue(context.Background(), &dto.RevenueQuery{DateStart: "2024-03-02", DateEnd: "2024-03-01"}); !errors.Is(err, ErrInvalidDateRange) {
		t.Errorf("err = %v, want ErrInvalidDateRange", err)
	}
	if _, err := uc.GetRevenue(context.Background(), &dto.RevenueQuery{DateStart: "03/01/2024"}); !errors.Is(err, ErrInvalidDateFormat) {
		t.Errorf("err = %v, want ErrInvalidDateFormat", err)
	}
}

func TestGetDoctorAvailability_SevenDays(t *testing.T) {
	db, uc := newAnalyticsUsecase(t)
	house := seedDoctor(t, db, "Gregory", "House")
	wilson := seedDoctor(t, db, "James", "Wilson")
	seedWindow(t, db, house.ID, 0, 9, 12)
	seedWindow(t, db, house.ID, 0, 14, 16)
	seedWindow(t, db, wilson.ID, 0, 9, 17)
	seedWindow(t, db, wilson.ID, 4, 9, 17)

	resp, err := uc.GetDoctorAvailability(context.Background())
	if err != nil {
		t.Fatalf("availability: %v", err)
	}
	if resp.TotalDoctors != 2 {
		t.Errorf("total doctors = %d", resp.TotalDoctors)
	}
	if len(resp.AvailablePerDay) != 7 {
		t.Fatalf("days = %d, want 7", len(resp.AvailablePerDay))
	}
	if d := resp.AvailablePerDay[0]; d.Day != "Monday" || d.Count != 2 {
		t.Errorf("monday = %+v, want 2 distinct doctors", d)
	}
	if d := resp.AvailablePerDay[4]; d.Day != "Friday" || d.Count != 1 {
		t.Errorf("friday = %+v", d)
	}
	if d := resp.AvailablePerDay[6]; d.Count != 0 {
		t.Errorf("sunday = %+v", d)
	}
}

func TestGetPatientStatus(t *testing.T) {
	db, uc := newAnalyticsUsecase(t)
	seedPatient(t, db, "A", nil)
	seedPatient(t, db, "B", nil)
	admitted := seedPatient(t, db, "C", nil)
	if err := db.Model(admitted).Update("status", entity.PatientStatusAdmitted).Error; err != nil {
		t.Fatal(err)
	}

	resp, err := uc.GetPatientStatus(context.Background())
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if resp.TotalPatients != 3 {
		t.Errorf("total = %d, want 3", resp.TotalPatients)
	}
	counts := map[string]int64{}
	for _, row := range resp.ByStatus {
		counts[row.Label] = row.Count
	}
	if counts[entity.PatientStatusOutpatient] != 2 || counts[entity.PatientStatusAdmitted] != 1 {
		t.Errorf("by status = %+v", resp.ByStatus)
	}
}

func assertBuckets(t *testing.T, name string, got, want []dto.AmountBucket) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: got %d buckets, want %d: %+v", name, len(got), len(want), got)
	}
	for i := range want {
		if got[i].Label != want[i].Label || !got[i].Amount.Equal(want[i].Amount) {
			t.Errorf("%s[%d] = %s %s, want %s %s", name, i, got[i].Label, got[i].Amount, want[i].Label, want[i].Amount)
		}
	}
}
