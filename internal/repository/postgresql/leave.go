package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const leaveColumns = `l.leave_id::text, l.employee_id, l.start_date, l.end_date, l.reason, l.status, l.remark,
	l.applied_at, l.actioned_by, l.actioned_at`

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

func scanLeave(row pgx.Row, withName bool) (leave.Leave, error) {
	var l leave.Leave
	dest := []any{
		&l.LeaveID, &l.EmployeeID, &l.StartDate, &l.EndDate, &l.Reason, &l.Status, &l.Remark,
		&l.AppliedAt, &l.ActionedBy, &l.ActionedAt,
	}
	if withName {
		dest = append(dest, &l.EmployeeName)
	}
	err := row.Scan(dest...)
	return l, err
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, newLeave leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leaves AS l (leave_id, employee_id, start_date, end_date, reason, status, remark, applied_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + leaveColumns

	created, err := scanLeave(q.QueryRow(ctx, query,
		newLeave.LeaveID,
		newLeave.EmployeeID,
		newLeave.StartDate,
		newLeave.EndDate,
		newLeave.Reason,
		newLeave.Status,
		newLeave.Remark,
		newLeave.AppliedAt,
	), false)
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to create leave: %w", err)
	}
	return created, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, leaveID string) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `, e.full_name
		FROM leaves l
		LEFT JOIN employees e ON e.employee_id = l.employee_id
		WHERE l.leave_id::text = $1`

	l, err := scanLeave(q.QueryRow(ctx, query, leaveID), true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to get leave %s: %w", leaveID, err)
	}
	return l, nil
}

// List implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.Leave, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"TRUE"}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("l.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("l.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM leaves l WHERE %s", whereClause)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leaves: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s, e.full_name
		FROM leaves l
		LEFT JOIN employees e ON e.employee_id = l.employee_id
		WHERE %s
		ORDER BY l.applied_at DESC
		LIMIT $%d OFFSET $%d`, leaveColumns, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leaves: %w", err)
	}
	defer rows.Close()

	var leaves []leave.Leave
	for rows.Next() {
		l, err := scanLeave(rows, true)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave: %w", err)
		}
		leaves = append(leaves, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return leaves, total, nil
}

// UpdateStatus implements leave.LeaveRepository. The update only matches PENDING
// rows, so two reviewers racing on one request cannot both win.
func (r *leaveRepositoryImpl) UpdateStatus(ctx context.Context, leaveID string, status leave.Status, remark, actionedBy string, actionedAt time.Time) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leaves AS l
		SET status = $1, remark = $2, actioned_by = $3, actioned_at = $4
		WHERE l.leave_id::text = $5 AND l.status = $6
		RETURNING ` + leaveColumns

	updated, err := scanLeave(q.QueryRow(ctx, query, status, remark, actionedBy, actionedAt, leaveID, leave.StatusPending), false)
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return leave.Leave{}, fmt.Errorf("failed to update leave %s: %w", leaveID, err)
	}

	// Nothing matched: tell a missing leave apart from one already processed.
	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM leaves WHERE leave_id::text = $1)`, leaveID).Scan(&exists); err != nil {
		return leave.Leave{}, fmt.Errorf("failed to check leave %s: %w", leaveID, err)
	}
	if !exists {
		return leave.Leave{}, leave.ErrLeaveNotFound
	}
	return leave.Leave{}, leave.ErrLeaveAlreadyProcessed
}

// CountByStatus implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) CountByStatus(ctx context.Context, employeeID *string) (map[leave.Status]int64, error) {
	q := GetQuerier(ctx, r.db)

	if employeeID != nil {
		return scanStatusCounts[leave.Status](ctx, q,
			`SELECT status, COUNT(*) FROM leaves WHERE employee_id = $1 GROUP BY status`, *employeeID)
	}
	return scanStatusCounts[leave.Status](ctx, q, `SELECT status, COUNT(*) FROM leaves GROUP BY status`)
}
