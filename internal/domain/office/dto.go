package office

import (
	"strings"

	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/validator"
)

type CreateOfficeRequest struct {
	OfficeID     string   `json:"officeId" validate:"required,min=2"`
	OfficeName   string   `json:"officeName" validate:"required,min=2"`
	Lat          *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lng          *float64 `json:"lng" validate:"required,gte=-180,lte=180"`
	RadiusMeters *float64 `json:"radiusMeters,omitempty" validate:"omitempty,gt=0"`
	IsActive     *bool    `json:"isActive,omitempty"`
}

func (r *CreateOfficeRequest) Validate() error {
	r.OfficeID = strings.TrimSpace(r.OfficeID)
	r.OfficeName = strings.TrimSpace(r.OfficeName)
	return validator.Struct(r)
}

// ToEntity applies the defaults: radius 300 m, active.
func (r *CreateOfficeRequest) ToEntity() Office {
	o := Office{
		OfficeID:     r.OfficeID,
		OfficeName:   r.OfficeName,
		Lat:          *r.Lat,
		Lng:          *r.Lng,
		RadiusMeters: DefaultRadiusMeters,
		IsActive:     true,
	}
	if r.RadiusMeters != nil {
		o.RadiusMeters = *r.RadiusMeters
	}
	if r.IsActive != nil {
		o.IsActive = *r.IsActive
	}
	return o
}

type UpdateOfficeRequest struct {
	OfficeName   *string  `json:"officeName,omitempty" validate:"omitempty,min=2"`
	Lat          *float64 `json:"lat,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Lng          *float64 `json:"lng,omitempty" validate:"omitempty,gte=-180,lte=180"`
	RadiusMeters *float64 `json:"radiusMeters,omitempty" validate:"omitempty,gt=0"`
	IsActive     *bool    `json:"isActive,omitempty"`
}

func (r *UpdateOfficeRequest) Validate() error {
	if r.OfficeName != nil {
		name := strings.TrimSpace(*r.OfficeName)
		r.OfficeName = &name
	}
	return validator.Struct(r)
}

type OfficeResponse struct {
	OfficeID     string  `json:"officeId"`
	OfficeName   string  `json:"officeName"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	RadiusMeters float64 `json:"radiusMeters"`
	IsActive     bool    `json:"isActive"`
}

func NewOfficeResponse(o Office) OfficeResponse {
	return OfficeResponse{
		OfficeID:     o.OfficeID,
		OfficeName:   o.OfficeName,
		Lat:          o.Lat,
		Lng:          o.Lng,
		RadiusMeters: o.RadiusMeters,
		IsActive:     o.IsActive,
	}
}
