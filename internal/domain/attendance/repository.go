package attendance

import (
	"context"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// LockDay takes a transaction-scoped lock on the (employee, date) key. It must
	// run inside a transaction and is released on commit or rollback.
	LockDay(ctx context.Context, employeeID, date string) error

	// GetByEmployeeAndDate returns nil without error when no record exists yet.
	GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (*Record, error)

	// Upsert inserts the record or replaces the one stored for its (employee, date) key.
	Upsert(ctx context.Context, record Record) (Record, error)

	// List returns records joined with employee names, newest date first.
	// A filter Limit of 0 returns every matching row.
	List(ctx context.Context, filter AttendanceFilter) ([]Record, int64, error)

	CountByStatus(ctx context.Context, filter AttendanceFilter) (map[Status]int64, error)

	// ListOpen returns the records of date that have a check-in but no check-out.
	ListOpen(ctx context.Context, date string) ([]Record, error)
}
