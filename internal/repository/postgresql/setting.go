package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/setting"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type settingRepositoryImpl struct {
	db *database.DB
}

func NewSettingRepository(db *database.DB) setting.SettingRepository {
	return &settingRepositoryImpl{db: db}
}

type geoFencingValue struct {
	Enabled bool `json:"enabled"`
}

// GetGeoFencing implements setting.SettingRepository.
func (r *settingRepositoryImpl) GetGeoFencing(ctx context.Context) (setting.GeoFencing, error) {
	q := GetQuerier(ctx, r.db)

	var (
		raw       []byte
		updatedBy *string
		updatedAt *time.Time
	)
	err := q.QueryRow(ctx, `SELECT value, updated_by, updated_at FROM settings WHERE key = $1`, setting.KeyGeoFencingEnabled).
		Scan(&raw, &updatedBy, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return setting.GeoFencing{}, nil
		}
		return setting.GeoFencing{}, fmt.Errorf("failed to get geo-fencing setting: %w", err)
	}

	var v geoFencingValue
	if err := json.Unmarshal(raw, &v); err != nil {
		return setting.GeoFencing{}, fmt.Errorf("failed to decode geo-fencing setting: %w", err)
	}
	return setting.GeoFencing{Enabled: v.Enabled, UpdatedBy: updatedBy, UpdatedAt: updatedAt}, nil
}

// SetGeoFencing implements setting.SettingRepository.
func (r *settingRepositoryImpl) SetGeoFencing(ctx context.Context, enabled bool, updatedBy string) (setting.GeoFencing, error) {
	q := GetQuerier(ctx, r.db)

	raw, err := json.Marshal(geoFencingValue{Enabled: enabled})
	if err != nil {
		return setting.GeoFencing{}, err
	}

	query := `
		INSERT INTO settings (key, value, updated_by, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_by = EXCLUDED.updated_by, updated_at = EXCLUDED.updated_at
		RETURNING updated_by, updated_at
	`

	out := setting.GeoFencing{Enabled: enabled}
	if err := q.QueryRow(ctx, query, setting.KeyGeoFencingEnabled, raw, updatedBy).Scan(&out.UpdatedBy, &out.UpdatedAt); err != nil {
		return setting.GeoFencing{}, fmt.Errorf("failed to save geo-fencing setting: %w", err)
	}
	return out, nil
}
