package office

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/setting"
)

type SettingServiceImpl struct {
	setting.SettingRepository
	locationTimeoutSeconds int
}

// NewSettingService reports locationTimeoutSeconds alongside the geo-fencing switch.
func NewSettingService(settingRepository setting.SettingRepository, locationTimeoutSeconds int) setting.SettingService {
	return &SettingServiceImpl{
		SettingRepository:      settingRepository,
		locationTimeoutSeconds: locationTimeoutSeconds,
	}
}

// GetGeoFencing implements setting.SettingService.
func (s *SettingServiceImpl) GetGeoFencing(ctx context.Context) (setting.GeoFencingResponse, error) {
	gf, err := s.SettingRepository.GetGeoFencing(ctx)
	if err != nil {
		return setting.GeoFencingResponse{}, fmt.Errorf("failed to get geo-fencing setting: %w", err)
	}
	return setting.NewGeoFencingResponse(gf, s.locationTimeoutSeconds), nil
}

// UpdateGeoFencing implements setting.SettingService.
func (s *SettingServiceImpl) UpdateGeoFencing(ctx context.Context, updatedBy string, req setting.UpdateGeoFencingRequest) (setting.GeoFencingResponse, error) {
	if err := req.Validate(); err != nil {
		return setting.GeoFencingResponse{}, err
	}

	gf, err := s.SettingRepository.SetGeoFencing(ctx, *req.Enabled, updatedBy)
	if err != nil {
		return setting.GeoFencingResponse{}, fmt.Errorf("failed to update geo-fencing setting: %w", err)
	}

	slog.Info("Geo-fencing setting updated", "enabled", gf.Enabled, "by", updatedBy)
	return setting.NewGeoFencingResponse(gf, s.locationTimeoutSeconds), nil
}
