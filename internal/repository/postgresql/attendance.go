package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const attendanceColumns = `
	a.id, a.employee_id, a.date::text, a.status, a.status_source,
	a.check_in_time, a.check_out_time, a.check_in_location, a.check_out_location,
	a.total_hours, a.total_minutes, a.auto_checkout,
	a.edited_by, a.edit_reason, a.edited_at, a.created_at, a.updated_at`

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func scanRecord(row pgx.Row, withName bool) (attendance.Record, error) {
	var r attendance.Record
	dest := []any{
		&r.ID, &r.EmployeeID, &r.Date, &r.Status, &r.StatusSource,
		&r.CheckInTime, &r.CheckOutTime, &r.CheckInLocation, &r.CheckOutLocation,
		&r.TotalHours, &r.TotalMinutes, &r.AutoCheckout,
		&r.EditedBy, &r.EditReason, &r.EditedAt, &r.CreatedAt, &r.UpdatedAt,
	}
	if withName {
		dest = append(dest, &r.EmployeeName)
	}
	err := row.Scan(dest...)
	return r, err
}

// LockDay implements attendance.AttendanceRepository.
func (a *attendanceRepository) LockDay(ctx context.Context, employeeID, date string) error {
	q := GetQuerier(ctx, a.db)

	if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, attendance.DayKey(employeeID, date)); err != nil {
		return fmt.Errorf("failed to lock attendance day: %w", err)
	}
	return nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance a WHERE a.employee_id = $1 AND a.date = $2::date`

	r, err := scanRecord(q.QueryRow(ctx, query, employeeID, date), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance for %s on %s: %w", employeeID, date, err)
	}
	return &r, nil
}

// Upsert implements attendance.AttendanceRepository.
func (a *attendanceRepository) Upsert(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance AS a (
			employee_id, date, status, status_source,
			check_in_time, check_out_time, check_in_location, check_out_location,
			total_hours, total_minutes, auto_checkout, edited_by, edit_reason, edited_at
		) VALUES ($1, $2::date, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			status             = EXCLUDED.status,
			status_source      = EXCLUDED.status_source,
			check_in_time      = EXCLUDED.check_in_time,
			check_out_time     = EXCLUDED.check_out_time,
			check_in_location  = EXCLUDED.check_in_location,
			check_out_location = EXCLUDED.check_out_location,
			total_hours        = EXCLUDED.total_hours,
			total_minutes      = EXCLUDED.total_minutes,
			auto_checkout      = EXCLUDED.auto_checkout,
			edited_by          = EXCLUDED.edited_by,
			edit_reason        = EXCLUDED.edit_reason,
			edited_at          = EXCLUDED.edited_at,
			updated_at         = NOW()
		RETURNING ` + attendanceColumns

	saved, err := scanRecord(q.QueryRow(ctx, query,
		record.EmployeeID, record.Date, record.Status, record.StatusSource,
		record.CheckInTime, record.CheckOutTime, record.CheckInLocation, record.CheckOutLocation,
		record.TotalHours, record.TotalMinutes, record.AutoCheckout,
		record.EditedBy, record.EditReason, record.EditedAt,
	), false)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}
	return saved, nil
}

// buildAttendanceWhere turns a validated filter into a WHERE clause over alias a.
func buildAttendanceWhere(filter attendance.AttendanceFilter) (string, []interface{}) {
	conditions := []string{"TRUE"}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("a.date >= $%d::date", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("a.date <= $%d::date", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil {
		status, _ := attendance.ParseStatus(*filter.Status)
		conditions = append(conditions, fmt.Sprintf("a.status = $%d", argIdx))
		args = append(args, status)
	}

	return strings.Join(conditions, " AND "), args
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, a.db)

	whereClause, args := buildAttendanceWhere(filter)

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM attendance a WHERE %s", whereClause)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s, e.full_name
		FROM attendance a
		LEFT JOIN employees e ON e.employee_id = a.employee_id
		WHERE %s
		ORDER BY a.date DESC, a.employee_id ASC`, attendanceColumns, whereClause)
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		r, err := scanRecord(rows, true)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// CountByStatus implements attendance.AttendanceRepository.
func (a *attendanceRepository) CountByStatus(ctx context.Context, filter attendance.AttendanceFilter) (map[attendance.Status]int64, error) {
	q := GetQuerier(ctx, a.db)

	whereClause, args := buildAttendanceWhere(filter)
	query := fmt.Sprintf("SELECT a.status, COUNT(*) FROM attendance a WHERE %s GROUP BY a.status", whereClause)

	return scanStatusCounts[attendance.Status](ctx, q, query, args...)
}

// ListOpen implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListOpen(ctx context.Context, date string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance a
		WHERE a.date = $1::date AND a.check_in_time IS NOT NULL AND a.check_out_time IS NULL
		ORDER BY a.employee_id ASC`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list open attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		r, err := scanRecord(rows, false)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// scanStatusCounts reads (status, count) rows into a map keyed by S.
func scanStatusCounts[S ~string](ctx context.Context, q database.Querier, query string, args ...interface{}) (map[S]int64, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[S]int64)
	for rows.Next() {
		var (
			status string
			n      int64
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[S(status)] = n
	}
	return counts, rows.Err()
}
