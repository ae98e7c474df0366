package setting

import (
	"context"
	"time"
)

const KeyGeoFencingEnabled = "attendance.geo_fencing_enabled"

// GeoFencing is the process-wide switch for location-checked self-service attendance.
type GeoFencing struct {
	Enabled   bool
	UpdatedBy *string
	UpdatedAt *time.Time
}

type SettingRepository interface {
	// GetGeoFencing returns the stored switch, or a disabled value when none is stored.
	GetGeoFencing(ctx context.Context) (GeoFencing, error)
	SetGeoFencing(ctx context.Context, enabled bool, updatedBy string) (GeoFencing, error)
}

type SettingService interface {
	GetGeoFencing(ctx context.Context) (GeoFencingResponse, error)
	UpdateGeoFencing(ctx context.Context, updatedBy string, req UpdateGeoFencingRequest) (GeoFencingResponse, error)
}
