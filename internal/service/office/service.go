package office

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/office"
)

type OfficeServiceImpl struct {
	office.OfficeRepository
}

func NewOfficeService(officeRepository office.OfficeRepository) office.OfficeService {
	return &OfficeServiceImpl{OfficeRepository: officeRepository}
}

// List implements office.OfficeService.
func (s *OfficeServiceImpl) List(ctx context.Context) ([]office.OfficeResponse, error) {
	offices, err := s.OfficeRepository.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list offices: %w", err)
	}

	responses := make([]office.OfficeResponse, 0, len(offices))
	for _, o := range offices {
		responses = append(responses, office.NewOfficeResponse(o))
	}
	return responses, nil
}

// Create implements office.OfficeService.
func (s *OfficeServiceImpl) Create(ctx context.Context, req office.CreateOfficeRequest) (office.OfficeResponse, error) {
	if err := req.Validate(); err != nil {
		return office.OfficeResponse{}, err
	}

	_, err := s.OfficeRepository.GetByID(ctx, req.OfficeID)
	if err == nil {
		return office.OfficeResponse{}, office.ErrOfficeIDExists
	}
	if !errors.Is(err, office.ErrOfficeNotFound) {
		return office.OfficeResponse{}, fmt.Errorf("failed to check office existence: %w", err)
	}

	created, err := s.OfficeRepository.Create(ctx, req.ToEntity())
	if err != nil {
		return office.OfficeResponse{}, fmt.Errorf("failed to create office: %w", err)
	}

	slog.Info("Office created", "office_id", created.OfficeID, "radius_meters", created.RadiusMeters)
	return office.NewOfficeResponse(created), nil
}

// Update implements office.OfficeService.
func (s *OfficeServiceImpl) Update(ctx context.Context, officeID string, req office.UpdateOfficeRequest) (office.OfficeResponse, error) {
	if err := req.Validate(); err != nil {
		return office.OfficeResponse{}, err
	}

	updated, err := s.OfficeRepository.Update(ctx, officeID, req)
	if err != nil {
		return office.OfficeResponse{}, err
	}

	slog.Info("Office updated", "office_id", updated.OfficeID, "is_active", updated.IsActive)
	return office.NewOfficeResponse(updated), nil
}

// Delete implements office.OfficeService.
func (s *OfficeServiceImpl) Delete(ctx context.Context, officeID string) error {
	if err := s.OfficeRepository.Delete(ctx, officeID); err != nil {
		return err
	}

	slog.Info("Office deleted", "office_id", officeID)
	return nil
}
