package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/office"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const officeColumns = `office_id, office_name, lat, lng, radius_meters, is_active, created_at, updated_at`

type officeRepositoryImpl struct {
	db *database.DB
}

func NewOfficeRepository(db *database.DB) office.OfficeRepository {
	return &officeRepositoryImpl{db: db}
}

func scanOffice(row pgx.Row) (office.Office, error) {
	var o office.Office
	err := row.Scan(
		&o.OfficeID,
		&o.OfficeName,
		&o.Lat,
		&o.Lng,
		&o.RadiusMeters,
		&o.IsActive,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	return o, err
}

// GetByID implements office.OfficeRepository.
func (r *officeRepositoryImpl) GetByID(ctx context.Context, officeID string) (office.Office, error) {
	q := GetQuerier(ctx, r.db)

	o, err := scanOffice(q.QueryRow(ctx, `SELECT `+officeColumns+` FROM offices WHERE office_id = $1`, officeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return office.Office{}, office.ErrOfficeNotFound
		}
		return office.Office{}, fmt.Errorf("failed to get office %s: %w", officeID, err)
	}
	return o, nil
}

// List implements office.OfficeRepository.
func (r *officeRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]office.Office, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + officeColumns + ` FROM offices`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY office_name ASC, office_id ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list offices: %w", err)
	}
	defer rows.Close()

	var offices []office.Office
	for rows.Next() {
		o, err := scanOffice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan office: %w", err)
		}
		offices = append(offices, o)
	}
	return offices, rows.Err()
}

// Create implements office.OfficeRepository.
func (r *officeRepositoryImpl) Create(ctx context.Context, newOffice office.Office) (office.Office, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO offices (office_id, office_name, lat, lng, radius_meters, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + officeColumns

	created, err := scanOffice(q.QueryRow(ctx, query,
		newOffice.OfficeID,
		newOffice.OfficeName,
		newOffice.Lat,
		newOffice.Lng,
		newOffice.RadiusMeters,
		newOffice.IsActive,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return office.Office{}, office.ErrOfficeIDExists
		}
		return office.Office{}, fmt.Errorf("failed to create office: %w", err)
	}
	return created, nil
}

// Update implements office.OfficeRepository.
func (r *officeRepositoryImpl) Update(ctx context.Context, officeID string, req office.UpdateOfficeRequest) (office.Office, error) {
	q := GetQuerier(ctx, r.db)

	sets := []string{}
	args := []interface{}{}
	argIdx := 1

	if req.OfficeName != nil {
		sets = append(sets, fmt.Sprintf("office_name = $%d", argIdx))
		args = append(args, *req.OfficeName)
		argIdx++
	}
	if req.Lat != nil {
		sets = append(sets, fmt.Sprintf("lat = $%d", argIdx))
		args = append(args, *req.Lat)
		argIdx++
	}
	if req.Lng != nil {
		sets = append(sets, fmt.Sprintf("lng = $%d", argIdx))
		args = append(args, *req.Lng)
		argIdx++
	}
	if req.RadiusMeters != nil {
		sets = append(sets, fmt.Sprintf("radius_meters = $%d", argIdx))
		args = append(args, *req.RadiusMeters)
		argIdx++
	}
	if req.IsActive != nil {
		sets = append(sets, fmt.Sprintf("is_active = $%d", argIdx))
		args = append(args, *req.IsActive)
		argIdx++
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, officeID)
	}
	sets = append(sets, "updated_at = NOW()")
	args = append(args, officeID)

	query := fmt.Sprintf(`UPDATE offices SET %s WHERE office_id = $%d RETURNING %s`,
		strings.Join(sets, ", "), argIdx, officeColumns)

	updated, err := scanOffice(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return office.Office{}, office.ErrOfficeNotFound
		}
		return office.Office{}, fmt.Errorf("failed to update office %s: %w", officeID, err)
	}
	return updated, nil
}

// Delete implements office.OfficeRepository.
func (r *officeRepositoryImpl) Delete(ctx context.Context, officeID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM offices WHERE office_id = $1`, officeID)
	if err != nil {
		return fmt.Errorf("failed to delete office %s: %w", officeID, err)
	}
	if tag.RowsAffected() == 0 {
		return office.ErrOfficeNotFound
	}
	return nil
}
