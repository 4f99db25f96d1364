package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/domain/entity"
	domainRepo "hospital-backend/internal/domain/repository"
	"hospital-backend/internal/repository"

	"gorm.io/gorm"
)

type bookingFixture struct {
	db      *gorm.DB
	uc      OperationTheaterBookingUsecase
	doctor  *entity.Doctor
	theater *entity.OperationTheater
	cache   *fakeStatsCache
}

type fakeStatsCache struct {
	mu          sync.Mutex
	invalidated int
}

func (f *fakeStatsCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	return false, nil
}

func (f *fakeStatsCache) Set(ctx context.Context, key string, value interface{}) error {
	return nil
}

func (f *fakeStatsCache) Invalidate(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invalidated++
	return nil
}

// newBookingFixture seeds a doctor available Monday 09:00-12:00 and a theatre with the given capacity.
func newBookingFixture(t *testing.T, capacity int) *bookingFixture {
	t.Helper()
	return newBookingFixtureWith(t, capacity, repository.NewOperationTheaterRepository(), repository.NewOperationTheaterBookingRepository())
}

func newBookingFixtureWith(
	t *testing.T,
	capacity int,
	theaterRepo domainRepo.OperationTheaterRepository,
	bookingRepo domainRepo.OperationTheaterBookingRepository,
) *bookingFixture {
	t.Helper()
	db := newTestDB(t)
	log := newTestLogger()

	doctor := seedDoctor(t, db, "Gregory", "House")
	seedWindow(t, db, doctor.ID, 0, 9, 12)
	theater := seedTheater(t, db, "OT-1", capacity)

	cache := &fakeStatsCache{}
	uc := NewOperationTheaterBookingUsecase(
		db, log,
		repository.NewDoctorRepository(),
		repository.NewDoctorAvailabilityRepository(),
		theaterRepo,
		bookingRepo,
		newTestAuditService(log),
		cache,
	)

	return &bookingFixture{db: db, uc: uc, doctor: doctor, theater: theater, cache: cache}
}

func (f *bookingFixture) request(start, end string) *dto.BookTheaterRequest {
	return &dto.BookTheaterRequest{
		DoctorID:  f.doctor.ID,
		TheaterID: f.theater.ID,
		StartTime: start,
		EndTime:   end,
	}
}

func (f *bookingFixture) capacity(t *testing.T) int {
	t.Helper()
	var theater entity.OperationTheater
	if err := f.db.First(&theater, f.theater.ID).Error; err != nil {
		t.Fatalf("reload theater: %v", err)
	}
	return theater.Capacity
}

func (f *bookingFixture) bookings(t *testing.T) int64 {
	t.Helper()
	var n int64
	if err := f.db.Model(&entity.OperationTheaterBooking{}).Count(&n).Error; err != nil {
		t.Fatalf("count bookings: %v", err)
	}
	return n
}

func TestBookTheater_MondayWindowScenario(t *testing.T) {
	f := newBookingFixture(t, 1)
	ctx := asUser(1, entity.RoleIDAdmin)

	resp, err := f.uc.BookTheater(ctx, f.request("2024-03-04 10:00:00", "2024-03-04 11:00:00"))
	if err != nil {
		t.Fatalf("first booking: %v", err)
	}
	if resp.ID == 0 || resp.DoctorID != f.doctor.ID || resp.TheaterID != f.theater.ID {
		t.Errorf("unexpected response: %+v", resp)
	}
	if resp.StartTime != "2024-03-04 10:00:00" || resp.EndTime != "2024-03-04 11:00:00" {
		t.Errorf("times not echoed: %s - %s", resp.StartTime, resp.EndTime)
	}
	if resp.DoctorName != "Gregory House" || resp.TheaterName != "OT-1" {
		t.Errorf("names not filled: %+v", resp)
	}
	if got := f.capacity(t); got != 0 {
		t.Errorf("capacity = %d, want 0", got)
	}

	_, err = f.uc.BookTheater(ctx, f.request("2024-03-04 10:00:00", "2024-03-04 11:00:00"))
	if !errors.Is(err, ErrTheaterUnavailable) {
		t.Errorf("repeat booking err = %v, want ErrTheaterUnavailable", err)
	}

	_, err = f.uc.BookTheater(ctx, f.request("2024-03-04 13:00:00", "2024-03-04 14:00:00"))
	if !errors.Is(err, ErrDoctorUnavailable) {
		t.Errorf("afternoon booking err = %v, want ErrDoctorUnavailable", err)
	}

	if got := f.bookings(t); got != 1 {
		t.Errorf("bookings = %d, want 1", got)
	}
	if f.cache.invalidated != 1 {
		t.Errorf("cache invalidated %d times, want 1", f.cache.invalidated)
	}
}

func TestBookTheater_WritesAuditRow(t *testing.T) {
	f := newBookingFixture(t, 2)

	resp, err := f.uc.BookTheater(asUser(7, entity.RoleIDDoctor), f.request("2024-03-04 09:00:00", "2024-03-04 12:00:00"))
	if err != nil {
		t.Fatalf("booking: %v", err)
	}

	var logs []entity.AuditLog
	if err := f.db.Where("action = ?", entity.AuditActionTheaterBook).Find(&logs).Error; err != nil {
		t.Fatalf("load audit logs: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("audit rows = %d, want 1", len(logs))
	}
	if logs[0].UserID == nil || *logs[0].UserID != 7 {
		t.Errorf("audit user = %v, want 7", logs[0].UserID)
	}
	if id := metadataInt(t, logs[0].Metadata, "entity_id"); id != resp.ID {
		t.Errorf("audit entity_id = %d, want %d", id, resp.ID)
	}
}

func TestBookTheater_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		mutate   func(f *bookingFixture, req *dto.BookTheaterRequest)
		start    string
		end      string
		wantErr  error
	}{
		{
			name:     "no window on weekday",
			capacity: 1,
			start:    "2024-03-05 10:00:00", // Tuesday
			end:      "2024-03-05 11:00:00",
			wantErr:  ErrDoctorUnavailable,
		},
		{
			name:     "starts before window",
			capacity: 1,
			start:    "2024-03-04 08:30:00",
			end:      "2024-03-04 10:00:00",
			wantErr:  ErrDoctorUnavailable,
		},
		{
			name:     "ends after window",
			capacity: 1,
			start:    "2024-03-04 11:00:00",
			end:      "2024-03-04 12:30:00",
			wantErr:  ErrDoctorUnavailable,
		},
		{
			name:     "crosses midnight",
			capacity: 1,
			start:    "2024-03-04 11:00:00",
			end:      "2024-03-05 10:00:00",
			wantErr:  ErrDoctorUnavailable,
		},
		{
			name:     "capacity zero",
			capacity: 0,
			start:    "2024-03-04 10:00:00",
			end:      "2024-03-04 11:00:00",
			wantErr:  ErrTheaterUnavailable,
		},
		{
			name:     "start equals end",
			capacity: 1,
			start:    "2024-03-04 10:00:00",
			end:      "2024-03-04 10:00:00",
			wantErr:  ErrInvalidTimeRange,
		},
		{
			name:     "start after end",
			capacity: 1,
			start:    "2024-03-04 11:00:00",
			end:      "2024-03-04 10:00:00",
			wantErr:  ErrInvalidTimeRange,
		},
		{
			name:     "unknown doctor",
			capacity: 1,
			mutate:   func(f *bookingFixture, req *dto.BookTheaterRequest) { req.DoctorID = 999 },
			start:    "2024-03-04 10:00:00",
			end:      "2024-03-04 11:00:00",
			wantErr:  ErrDoctorNotFound,
		},
		{
			name:     "unknown theater",
			capacity: 1,
			mutate:   func(f *bookingFixture, req *dto.BookTheaterRequest) { req.TheaterID = 999 },
			start:    "2024-03-04 10:00:00",
			end:      "2024-03-04 11:00:00",
			wantErr:  ErrTheaterNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBookingFixture(t, tt.capacity)
			req := f.request(tt.start, tt.end)
			if tt.mutate != nil {
				tt.mutate(f, req)
			}

			_, err := f.uc.BookTheater(context.Background(), req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if got := f.capacity(t); got != tt.capacity {
				t.Errorf("capacity changed to %d", got)
			}
			if got := f.bookings(t); got != 0 {
				t.Errorf("bookings = %d, want 0", got)
			}
		})
	}
}

func TestBookTheater_MalformedTimestamp(t *testing.T) {
	f := newBookingFixture(t, 1)

	_, err := f.uc.BookTheater(context.Background(), f.request("2024-03-04T10:00:00Z", "2024-03-04 11:00:00"))
	if !IsBookingMalformed(err) {
		t.Fatalf("err = %v, want malformed timestamp", err)
	}
}

func TestBookTheater_UnionOfWindows(t *testing.T) {
	f := newBookingFixture(t, 3)
	seedWindow(t, f.db, f.doctor.ID, 0, 12, 15)

	if _, err := f.uc.BookTheater(context.Background(), f.request("2024-03-04 11:00:00", "2024-03-04 13:30:00")); err != nil {
		t.Fatalf("booking across adjacent windows: %v", err)
	}

	seedWindow(t, f.db, f.doctor.ID, 0, 16, 18)
	_, err := f.uc.BookTheater(context.Background(), f.request("2024-03-04 14:00:00", "2024-03-04 17:00:00"))
	if !errors.Is(err, ErrDoctorUnavailable) {
		t.Fatalf("booking across a gap: err = %v, want ErrDoctorUnavailable", err)
	}
}

// staleTheaterRepo reports a free slot regardless of the stored capacity, as a
// request that read the theatre just before another booking committed would see.
type staleTheaterRepo struct {
	domainRepo.OperationTheaterRepository
}

func (r staleTheaterRepo) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.OperationTheater, error) {
	theater, err := r.OperationTheaterRepository.FindByID(ctx, db, id)
	if theater != nil {
		theater.Capacity = 1
	}
	return theater, err
}

type failingBookingRepo struct {
	domainRepo.OperationTheaterBookingRepository
}

func (failingBookingRepo) Create(context.Context, *gorm.DB, *entity.OperationTheaterBooking) error {
	return errors.New("insert failed")
}

func TestBookTheater_StaleCapacityLosesAtUpdate(t *testing.T) {
	f := newBookingFixtureWith(t, 0,
		staleTheaterRepo{repository.NewOperationTheaterRepository()},
		repository.NewOperationTheaterBookingRepository(),
	)

	_, err := f.uc.BookTheater(context.Background(), f.request("2024-03-04 10:00:00", "2024-03-04 11:00:00"))
	if !errors.Is(err, ErrTheaterUnavailable) {
		t.Fatalf("err = %v, want ErrTheaterUnavailable", err)
	}
	if got := f.capacity(t); got != 0 {
		t.Errorf("capacity = %d, want 0", got)
	}
	if got := f.bookings(t); got != 0 {
		t.Errorf("bookings = %d, want 0", got)
	}
}

func TestBookTheater_FailedInsertRestoresCapacity(t *testing.T) {
	f := newBookingFixtureWith(t, 1,
		repository.NewOperationTheaterRepository(),
		failingBookingRepo{repository.NewOperationTheaterBookingRepository()},
	)

	_, err := f.uc.BookTheater(context.Background(), f.request("2024-03-04 10:00:00", "2024-03-04 11:00:00"))
	if err == nil || errors.Is(err, ErrTheaterUnavailable) {
		t.Fatalf("err = %v, want the storage error", err)
	}
	if got := f.capacity(t); got != 1 {
		t.Errorf("capacity = %d, want 1 after rollback", got)
	}
	if got := f.bookings(t); got != 0 {
		t.Errorf("bookings = %d, want 0", got)
	}
	var audits int64
	f.db.Model(&entity.AuditLog{}).Where("action = ?", entity.AuditActionTheaterBook).Count(&audits)
	if audits != 0 {
		t.Errorf("audit rows = %d, want 0", audits)
	}
	if f.cache.invalidated != 0 {
		t.Errorf("cache invalidated %d times, want 0", f.cache.invalidated)
	}
}

// The test database has one connection, so these attempts queue up rather than
// interleave; the lost-race path is covered by the stale capacity test above.
func TestBookTheater_ConcurrentLastSlot(t *testing.T) {
	f := newBookingFixture(t, 1)

	const attempts = 5
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.uc.BookTheater(context.Background(), f.request("2024-03-04 10:00:00", "2024-03-04 11:00:00"))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrTheaterUnavailable):
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if succeeded != 1 {
		t.Errorf("successful bookings = %d, want 1", succeeded)
	}
	if got := f.capacity(t); got != 0 {
		t.Errorf("capacity = %d, want 0", got)
	}
	if got := f.bookings(t); got != 1 {
		t.Errorf("bookings = %d, want 1", got)
	}
}

func TestGetBooking(t *testing.T) {
	f := newBookingFixture(t, 1)

	created, err := f.uc.BookTheater(context.Background(), f.request("2024-03-04 10:00:00", "2024-03-04 11:00:00"))
	if err != nil {
		t.Fatalf("booking: %v", err)
	}

	got, err := f.uc.GetBooking(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.StartTime != created.StartTime || got.TheaterName != "OT-1" {
		t.Errorf("got %+v", got)
	}

	if _, err := f.uc.GetBooking(context.Background(), 999); !errors.Is(err, ErrTheaterBookingNotFound) {
		t.Errorf("err = %v, want ErrTheaterBookingNotFound", err)
	}

	list, err := f.uc.GetAllBookings(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list.Total != 1 {
		t.Errorf("total = %d, want 1", list.Total)
	}
}
