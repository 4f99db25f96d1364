package usecase

import (
	"context"
	"errors"

	"hospital-backend/internal/converter"
	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/domain/entity"
	"hospital-backend/internal/domain/repository"
	"hospital-backend/internal/service"
	"hospital-backend/pkg/clock"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrStaffUnavailable = errors.New("staff member is not available on this date")
)

// StaffDutyUsecase covers duty rostering and daily attendance.
type StaffDutyUsecase interface {
	AssignDuty(ctx context.Context, req *dto.AssignDutyRequest) (*dto.DutyResponse, error)
	GetDutySchedule(ctx context.Context, staffID int) (*dto.DutyScheduleResponse, error)
	MarkAttendance(ctx context.Context, req *dto.MarkAttendanceRequest) (*dto.AttendanceResponse, error)
	GetAttendance(ctx context.Context) ([]dto.StaffAttendanceGroup, error)
	GetAttendanceReport(ctx context.Context, query *dto.AttendanceReportQuery) (*dto.AttendanceReportResponse, error)
}

type staffDutyUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	staffRepo      repository.HospitalStaffRepository
	dutyRepo       repository.DutyRepository
	attendanceRepo repository.StaffAttendanceRepository
	auditService   service.AuditService
}

func NewStaffDutyUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	staffRepo repository.HospitalStaffRepository,
	dutyRepo repository.DutyRepository,
	attendanceRepo repository.StaffAttendanceRepository,
	auditService service.AuditService,
) StaffDutyUsecase {
	return &staffDutyUsecase{
		db:             db,
		log:            log,
		staffRepo:      staffRepo,
		dutyRepo:       dutyRepo,
		attendanceRepo: attendanceRepo,
		auditService:   auditService,
	}
}

func (u *staffDutyUsecase) findStaff(ctx context.Context, db *gorm.DB, id int) (*entity.HospitalStaff, error) {
	staff, err := u.staffRepo.FindByID(ctx, db, id)
	if err != nil {
		u.log.Warnf("Failed to find staff: %+v", err)
		return nil, err
	}
	if staff == nil {
		return nil, ErrStaffNotFound
	}
	return staff, nil
}

// AssignDuty rosters a staff member for one day. A member already on duty that
// day, or marked absent for it, cannot take another duty.
func (u *staffDutyUsecase) AssignDuty(ctx context.Context, req *dto.AssignDutyRequest) (*dto.DutyResponse, error) {
	date, err := clock.ParseDate(req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if _, err := u.findStaff(ctx, tx, req.StaffID); err != nil {
		return nil, err
	}

	existing, err := u.dutyRepo.FindByStaffAndDate(ctx, tx, req.StaffID, date)
	if err != nil {
		u.log.Warnf("Failed to find duty: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrStaffUnavailable
	}

	attendance, err := u.attendanceRepo.FindByStaffAndDate(ctx, tx, req.StaffID, date)
	if err != nil {
		u.log.Warnf("Failed to find attendance: %+v", err)
		return nil, err
	}
	if attendance != nil && attendance.Status == entity.AttendanceAbsent {
		return nil, ErrStaffUnavailable
	}

	duty := &entity.Duty{
		StaffID:  req.StaffID,
		DutyDate: datatypes.Date(date),
	}
	if err := u.dutyRepo.Create(ctx, tx, duty); err != nil {
		if isDuplicateKeyError(err, "duty") {
			return nil, ErrStaffUnavailable
		}
		u.log.Warnf("Failed to create duty: %+v", err)
		return nil, err
	}

	resp := converter.DutyToResponse(duty)
	if err := u.auditService.LogCreate(ctx, tx, actorID(ctx), entity.AuditActionDutyAssign, "duty", duty.ID, resp); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &resp, nil
}

func (u *staffDutyUsecase) GetDutySchedule(ctx context.Context, staffID int) (*dto.DutyScheduleResponse, error) {
	staff, err := u.findStaff(ctx, u.db, staffID)
	if err != nil {
		return nil, err
	}

	duties, err := u.dutyRepo.FindByStaffID(ctx, u.db, staffID)
	if err != nil {
		u.log.Warnf("Failed to find duties for staff %d: %+v", staffID, err)
		return nil, err
	}

	schedule := &dto.DutyScheduleResponse{
		StaffID: staff.ID,
		Name:    staff.Name,
		Duties:  make([]dto.DutyResponse, len(duties)),
	}
	for i := range duties {
		schedule.Duties[i] = converter.DutyToResponse(&duties[i])
	}
	return schedule, nil
}

// MarkAttendance records or overwrites the attendance of one staff member for one day.
func (u *staffDutyUsecase) MarkAttendance(ctx context.Context, req *dto.MarkAttendanceRequest) (*dto.AttendanceResponse, error) {
	date, err := clock.ParseDate(req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if _, err := u.findStaff(ctx, tx, req.StaffID); err != nil {
		return nil, err
	}

	attendance, err := u.attendanceRepo.FindByStaffAndDate(ctx, tx, req.StaffID, date)
	if err != nil {
		u.log.Warnf("Failed to find attendance: %+v", err)
		return nil, err
	}

	var oldValue interface{}
	if attendance == nil {
		attendance = &entity.StaffAttendance{
			StaffID:        req.StaffID,
			AttendanceDate: datatypes.Date(date),
			Status:         req.Status,
		}
		err = u.attendanceRepo.Create(ctx, tx, attendance)
	} else {
		oldValue = converter.AttendanceToResponse(attendance)
		attendance.Status = req.Status
		attendance.Staff = nil
		err = u.attendanceRepo.Update(ctx, tx, attendance)
	}
	if err != nil {
		u.log.Warnf("Failed to save attendance: %+v", err)
		return nil, err
	}

	resp := converter.AttendanceToResponse(attendance)
	if err := u.auditService.LogUpdate(ctx, tx, actorID(ctx), entity.AuditActionAttendanceMark, "staff_attendance", attendance.ID, oldValue, resp); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &resp, nil
}

// GetAttendance groups every attendance record by staff member, ordered by staff id.
func (u *staffDutyUsecase) GetAttendance(ctx context.Context) ([]dto.StaffAttendanceGroup, error) {
	records, err := u.attendanceRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find attendance: %+v", err)
		return nil, err
	}

	groups := make([]dto.StaffAttendanceGroup, 0)
	for i := range records {
		rec := &records[i]
		if n := len(groups); n == 0 || groups[n-1].StaffID != rec.StaffID {
			group := dto.StaffAttendanceGroup{StaffID: rec.StaffID}
			if rec.Staff != nil {
				group.Name = rec.Staff.Name
			}
			groups = append(groups, group)
		}
		last := &groups[len(groups)-1]
		last.Records = append(last.Records, converter.AttendanceToResponse(rec))
	}
	return groups, nil
}

// GetAttendanceReport counts present and absent days per staff member between
// two inclusive dates. Staff without records in the range report zero.
func (u *staffDutyUsecase) GetAttendanceReport(ctx context.Context, query *dto.AttendanceReportQuery) (*dto.AttendanceReportResponse, error) {
	start, err := clock.ParseDate(query.StartDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	end, err := clock.ParseDate(query.EndDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	if start.After(end) {
		return nil, ErrInvalidDateRange
	}

	staff, err := u.staffRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find staff: %+v", err)
		return nil, err
	}
	records, err := u.attendanceRepo.FindBetween(ctx, u.db, start, end)
	if err != nil {
		u.log.Warnf("Failed to find attendance between %s and %s: %+v", query.StartDate, query.EndDate, err)
		return nil, err
	}

	index := make(map[int]int, len(staff))
	rows := make([]dto.AttendanceReportRow, len(staff))
	for i, s := range staff {
		index[s.ID] = i
		rows[i] = dto.AttendanceReportRow{StaffID: s.ID, Name: s.Name}
	}
	for _, rec := range records {
		i, ok := index[rec.StaffID]
		if !ok {
			continue
		}
		switch rec.Status {
		case entity.AttendancePresent:
			rows[i].Present++
		case entity.AttendanceAbsent:
			rows[i].Absent++
		}
	}

	return &dto.AttendanceReportResponse{
		StartDate: query.StartDate,
		EndDate:   query.EndDate,
		Rows:      rows,
	}, nil
}
