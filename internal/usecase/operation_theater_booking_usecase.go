package usecase

import (
	"context"
	"errors"
	"time"

	"hospital-backend/internal/converter"
	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/domain/entity"
	"hospital-backend/internal/domain/repository"
	"hospital-backend/internal/service"
	"hospital-backend/pkg/clock"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidTimeRange        = errors.New("start time must be before end time")
	ErrDoctorUnavailable       = errors.New("doctor not available at the specified time")
	ErrTheaterUnavailable      = errors.New("theater not available at the specified time")
	ErrTheaterBookingNotFound  = errors.New("operation theatre booking not found")
	errTheaterBookingMalformed = errors.New("start_time and end_time must use YYYY-MM-DD HH:MM:SS")
)

type OperationTheaterBookingUsecase interface {
	BookTheater(ctx context.Context, req *dto.BookTheaterRequest) (*dto.TheaterBookingResponse, error)
	GetBooking(ctx context.Context, id int) (*dto.TheaterBookingResponse, error)
	GetAllBookings(ctx context.Context) (*dto.TheaterBookingListResponse, error)
}

type operationTheaterBookingUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	doctorRepo       repository.DoctorRepository
	availabilityRepo repository.DoctorAvailabilityRepository
	theaterRepo      repository.OperationTheaterRepository
	bookingRepo      repository.OperationTheaterBookingRepository
	auditService     service.AuditService
	statsCache       service.StatsCache
}

func NewOperationTheaterBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	availabilityRepo repository.DoctorAvailabilityRepository,
	theaterRepo repository.OperationTheaterRepository,
	bookingRepo repository.OperationTheaterBookingRepository,
	auditService service.AuditService,
	statsCache service.StatsCache,
) OperationTheaterBookingUsecase {
	return &operationTheaterBookingUsecase{
		db:               db,
		log:              log,
		doctorRepo:       doctorRepo,
		availabilityRepo: availabilityRepo,
		theaterRepo:      theaterRepo,
		bookingRepo:      bookingRepo,
		auditService:     auditService,
		statsCache:       statsCache,
	}
}

// BookTheater admits a booking only when the doctor's availability covers the
// requested interval and the theatre still has capacity.
//
// Flow:
// 1. Parse and order-check the interval
// 2. Doctor must exist and be available on the start weekday for the whole interval
// 3. Theatre must exist with capacity > 0
// 4. Conditional decrement of capacity (0 rows = lost race)
// 5. Insert booking + audit row, commit
func (u *operationTheaterBookingUsecase) BookTheater(ctx context.Context, req *dto.BookTheaterRequest) (*dto.TheaterBookingResponse, error) {
	start, err := clock.ParseDateTime(req.StartTime)
	if err != nil {
		return nil, errTheaterBookingMalformed
	}
	end, err := clock.ParseDateTime(req.EndTime)
	if err != nil {
		return nil, errTheaterBookingMalformed
	}
	if !start.Before(end) {
		return nil, ErrInvalidTimeRange
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(ctx, tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	available, err := u.doctorAvailable(ctx, tx, req.DoctorID, start, end)
	if err != nil {
		u.log.Warnf("Failed to load availability for doctor %d: %+v", req.DoctorID, err)
		return nil, err
	}
	if !available {
		return nil, ErrDoctorUnavailable
	}

	theater, err := u.theaterRepo.FindByID(ctx, tx, req.TheaterID)
	if err != nil {
		u.log.Warnf("Failed to find theater %d: %+v", req.TheaterID, err)
		return nil, err
	}
	if theater == nil {
		return nil, ErrTheaterNotFound
	}
	if !theater.HasCapacity() {
		return nil, ErrTheaterUnavailable
	}

	affected, err := u.theaterRepo.DecrementCapacity(ctx, tx, req.TheaterID)
	if err != nil {
		u.log.Warnf("Failed to decrement capacity of theater %d: %+v", req.TheaterID, err)
		return nil, err
	}
	if affected == 0 {
		// Another request took the last slot between the read and the update.
		return nil, ErrTheaterUnavailable
	}

	booking := &entity.OperationTheaterBooking{
		DoctorID:  req.DoctorID,
		TheaterID: req.TheaterID,
		StartTime: start,
		EndTime:   end,
	}
	if err := u.bookingRepo.Create(ctx, tx, booking); err != nil {
		u.log.Warnf("Failed to create theater booking: %+v", err)
		return nil, err
	}

	booking.Doctor = doctor
	booking.Theater = theater
	resp := converter.TheaterBookingToResponse(booking)

	if err := u.auditService.LogCreate(ctx, tx, actorID(ctx), entity.AuditActionTheaterBook, "operation_theatre_booking", booking.ID, resp); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	if u.statsCache != nil {
		if err := u.statsCache.Invalidate(ctx); err != nil {
			u.log.Warnf("Failed to invalidate stats cache (non-fatal): %+v", err)
		}
	}

	u.log.Infof("Theater booked: id=%d, doctor=%d, theater=%d, start=%s", booking.ID, booking.DoctorID, booking.TheaterID, req.StartTime)
	return resp, nil
}

// doctorAvailable checks [start, end] against the union of the doctor's windows on
// start's weekday. Intervals crossing midnight are never covered.
func (u *operationTheaterBookingUsecase) doctorAvailable(ctx context.Context, tx *gorm.DB, doctorID int, start, end time.Time) (bool, error) {
	if !clock.SameDate(start, end) {
		return false, nil
	}

	windows, err := u.availabilityRepo.FindByDoctorAndDay(ctx, tx, doctorID, entity.DayOfWeek(start))
	if err != nil {
		return false, err
	}

	return entity.CoversInterval(windows, clock.SinceMidnight(start), clock.SinceMidnight(end)), nil
}

func (u *operationTheaterBookingUsecase) GetBooking(ctx context.Context, id int) (*dto.TheaterBookingResponse, error) {
	booking, err := u.bookingRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find theater booking: %+v", err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrTheaterBookingNotFound
	}

	return converter.TheaterBookingToResponse(booking), nil
}

func (u *operationTheaterBookingUsecase) GetAllBookings(ctx context.Context) (*dto.TheaterBookingListResponse, error) {
	bookings, err := u.bookingRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find theater bookings: %+v", err)
		return nil, err
	}

	return &dto.TheaterBookingListResponse{
		Bookings: converter.TheaterBookingsToResponses(bookings),
		Total:    len(bookings),
	}, nil
}

// IsBookingMalformed reports whether err came from unparseable booking timestamps.
func IsBookingMalformed(err error) bool {
	return errors.Is(err, errTheaterBookingMalformed)
}
