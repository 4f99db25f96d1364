package usecase

import (
	"context"
	"sort"
	"time"

	"hospital-backend/internal/converter"
	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/domain/entity"
	"hospital-backend/internal/domain/repository"
	"hospital-backend/pkg/clock"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AnalyticsUsecase serves the read-only reports. None of these write.
type AnalyticsUsecase interface {
	GetPatientStatus(ctx context.Context) (*dto.PatientStatusResponse, error)
	GetRevenue(ctx context.Context, query *dto.RevenueQuery) (*dto.RevenueResponse, error)
	GetDoctorAvailability(ctx context.Context) (*dto.DoctorAvailabilityAnalytics, error)
	GetStaffAvailability(ctx context.Context) (*dto.StaffAvailabilityAnalytics, error)
	GetPatientTestRecords(ctx context.Context, query *dto.PatientTestQuery) (*dto.PatientTestListResponse, error)
	GetTheaterBookings(ctx context.Context, query *dto.TheaterBookingQuery) (*dto.TheaterBookingListResponse, error)
	GetHospitalStaff(ctx context.Context, query *dto.StaffQuery) (*dto.StaffListResponse, error)
}

type analyticsUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	analyticsRepo repository.AnalyticsRepository
	paymentRepo   repository.PaymentRepository
	dutyRepo      repository.DutyRepository
	testRepo      repository.PatientTestRepository
	bookingRepo   repository.OperationTheaterBookingRepository
	staffRepo     repository.HospitalStaffRepository
}

func NewAnalyticsUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	analyticsRepo repository.AnalyticsRepository,
	paymentRepo repository.PaymentRepository,
	dutyRepo repository.DutyRepository,
	testRepo repository.PatientTestRepository,
	bookingRepo repository.OperationTheaterBookingRepository,
	staffRepo repository.HospitalStaffRepository,
) AnalyticsUsecase {
	return &analyticsUsecase{
		db:            db,
		log:           log,
		analyticsRepo: analyticsRepo,
		paymentRepo:   paymentRepo,
		dutyRepo:      dutyRepo,
		testRepo:      testRepo,
		bookingRepo:   bookingRepo,
		staffRepo:     staffRepo,
	}
}

func (u *analyticsUsecase) GetPatientStatus(ctx context.Context) (*dto.PatientStatusResponse, error) {
	rows, err := u.analyticsRepo.CountPatientsByStatus(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to count patients by status: %+v", err)
		return nil, err
	}

	resp := &dto.PatientStatusResponse{ByStatus: rows}
	for _, row := range rows {
		resp.TotalPatients += row.Count
	}
	if resp.ByStatus == nil {
		resp.ByStatus = []entity.LabelCount{}
	}
	return resp, nil
}

// GetRevenue totals payments in the optional date range, per payment type and per month.
func (u *analyticsUsecase) GetRevenue(ctx context.Context, query *dto.RevenueQuery) (*dto.RevenueResponse, error) {
	start, end, err := parseDateBounds(query.DateStart, query.DateEnd)
	if err != nil {
		return nil, err
	}

	payments, err := u.paymentRepo.FindByDateRange(ctx, u.db, entity.DateRange{Start: start, End: end})
	if err != nil {
		u.log.Warnf("Failed to find payments: %+v", err)
		return nil, err
	}

	total := decimal.Zero
	byType := map[string]decimal.Decimal{}
	byMonth := map[string]decimal.Decimal{}
	for _, p := range payments {
		total = total.Add(p.Amount)
		byType[p.PaymentType] = byType[p.PaymentType].Add(p.Amount)
		month := p.PaymentDate.UTC().Format(clock.MonthLayout)
		byMonth[month] = byMonth[month].Add(p.Amount)
	}

	return &dto.RevenueResponse{
		TotalRevenue:  total,
		ByPaymentType: sortedBuckets(byType),
		ByMonth:       sortedBuckets(byMonth),
	}, nil
}

func sortedBuckets(m map[string]decimal.Decimal) []dto.AmountBucket {
	buckets := make([]dto.AmountBucket, 0, len(m))
	for label, amount := range m {
		buckets = append(buckets, dto.AmountBucket{Label: label, Amount: amount})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Label < buckets[j].Label })
	return buckets
}

// dayBuckets lays counts out over all seven weekdays, Monday first.
func dayBuckets(counts [7]int64) []dto.DayBucket {
	buckets := make([]dto.DayBucket, len(entity.DayNames))
	for i, name := range entity.DayNames {
		buckets[i] = dto.DayBucket{Day: name, Count: counts[i]}
	}
	return buckets
}

func (u *analyticsUsecase) GetDoctorAvailability(ctx context.Context) (*dto.DoctorAvailabilityAnalytics, error) {
	counts, err := u.analyticsRepo.CountRecords(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to count records: %+v", err)
		return nil, err
	}

	perDay, err := u.analyticsRepo.CountDoctorsPerDay(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to count doctors per day: %+v", err)
		return nil, err
	}
	var days [7]int64
	for _, d := range perDay {
		if d.DayOfWeek >= 0 && d.DayOfWeek < len(days) {
			days[d.DayOfWeek] = d.Count
		}
	}

	perDoctor, err := u.analyticsRepo.CountAppointmentsPerDoctor(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to count appointments per doctor: %+v", err)
		return nil, err
	}
	if perDoctor == nil {
		perDoctor = []entity.LabelCount{}
	}

	return &dto.DoctorAvailabilityAnalytics{
		TotalDoctors:          counts.Doctors,
		AvailablePerDay:       dayBuckets(days),
		AppointmentsPerDoctor: perDoctor,
	}, nil
}

func (u *analyticsUsecase) GetStaffAvailability(ctx context.Context) (*dto.StaffAvailabilityAnalytics, error) {
	counts, err := u.analyticsRepo.CountRecords(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to count records: %+v", err)
		return nil, err
	}

	// Weekday extraction differs between postgres and sqlite, so bucket in Go.
	duties, err := u.dutyRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find duties: %+v", err)
		return nil, err
	}
	var days [7]int64
	for _, d := range duties {
		days[entity.DayOfWeek(time.Time(d.DutyDate))]++
	}

	present, err := u.analyticsRepo.CountPresentDaysPerStaff(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to count present days: %+v", err)
		return nil, err
	}
	if present == nil {
		present = []entity.LabelCount{}
	}

	return &dto.StaffAvailabilityAnalytics{
		TotalStaff:          counts.Staff,
		DutiesPerDay:        dayBuckets(days),
		PresentDaysPerStaff: present,
	}, nil
}

func (u *analyticsUsecase) GetPatientTestRecords(ctx context.Context, query *dto.PatientTestQuery) (*dto.PatientTestListResponse, error) {
	start, end, err := parseDateBounds(query.DateStart, query.DateEnd)
	if err != nil {
		return nil, err
	}

	tests, err := u.testRepo.FindByFilter(ctx, u.db, &entity.PatientTestFilter{
		PatientID: query.PatientID,
		TestType:  query.TestType,
		DateStart: start,
		DateEnd:   end,
	})
	if err != nil {
		u.log.Warnf("Failed to filter patient tests: %+v", err)
		return nil, err
	}

	return &dto.PatientTestListResponse{
		Tests: converter.PatientTestsToResponses(tests),
		Total: len(tests),
	}, nil
}

func (u *analyticsUsecase) GetTheaterBookings(ctx context.Context, query *dto.TheaterBookingQuery) (*dto.TheaterBookingListResponse, error) {
	start, end, err := parseDateBounds(query.DateStart, query.DateEnd)
	if err != nil {
		return nil, err
	}

	bookings, err := u.bookingRepo.FindByFilter(ctx, u.db, &entity.TheaterBookingFilter{
		TheaterID: query.TheaterID,
		DateStart: start,
		DateEnd:   end,
	})
	if err != nil {
		u.log.Warnf("Failed to filter theater bookings: %+v", err)
		return nil, err
	}

	return &dto.TheaterBookingListResponse{
		Bookings: converter.TheaterBookingsToResponses(bookings),
		Total:    len(bookings),
	}, nil
}

func (u *analyticsUsecase) GetHospitalStaff(ctx context.Context, query *dto.StaffQuery) (*dto.StaffListResponse, error) {
	start, end, err := parseDateBounds(query.JoinStart, query.JoinEnd)
	if err != nil {
		return nil, err
	}

	staff, err := u.staffRepo.FindByFilter(ctx, u.db, &entity.StaffFilter{
		StaffType: query.StaffType,
		Name:      query.Name,
		JoinStart: start,
		JoinEnd:   end,
	})
	if err != nil {
		u.log.Warnf("Failed to filter staff: %+v", err)
		return nil, err
	}

	return &dto.StaffListResponse{
		Staff: converter.StaffToResponses(staff),
		Total: len(staff),
	}, nil
}
