package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"hospital-backend/internal/delivery/http/middleware"
	"hospital-backend/pkg/clock"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidTimeFormat = errors.New("invalid time format, use HH:MM or HH:MM:SS")
	ErrInvalidDateRange  = errors.New("start date must not be after end date")
	ErrForbidden         = errors.New("you do not have permission to perform this action")
	ErrResourceInUse     = errors.New("record is still referenced by other records")
)

// actorID returns the authenticated user for audit rows, or nil for system calls.
func actorID(ctx context.Context) *int {
	if id, ok := middleware.GetUserIDFromContext(ctx); ok {
		return &id
	}
	return nil
}

func normalizePage(page, limit int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit, (page - 1) * limit
}

// parseDateBounds turns optional inclusive YYYY-MM-DD bounds into [start, end+1day).
func parseDateBounds(startRaw, endRaw string) (*time.Time, *time.Time, error) {
	var start, end *time.Time
	if startRaw != "" {
		t, err := clock.ParseDate(startRaw)
		if err != nil {
			return nil, nil, ErrInvalidDateFormat
		}
		start = &t
	}
	if endRaw != "" {
		t, err := clock.ParseDate(endRaw)
		if err != nil {
			return nil, nil, ErrInvalidDateFormat
		}
		t = t.AddDate(0, 0, 1)
		end = &t
	}
	if start != nil && end != nil && !start.Before(*end) {
		return nil, nil, ErrInvalidDateRange
	}
	return start, end, nil
}

// combineDateClock joins a YYYY-MM-DD date and an HH:MM[:SS] time into one UTC timestamp.
func combineDateClock(date, clk string) (time.Time, error) {
	d, err := clock.ParseDate(date)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	offset, err := clock.ParseClock(clk)
	if err != nil {
		return time.Time{}, ErrInvalidTimeFormat
	}
	return d.Add(offset), nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		return pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName))
	}
	// SQLite reports the violated columns in the message.
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint failed") && strings.Contains(msg, strings.ToLower(constraintName))
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation
// containing the specified constraint name
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		return pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName))
	}
	return false
}
