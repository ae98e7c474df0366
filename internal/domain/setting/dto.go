package setting

import (
	"time"

	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/validator"
)

type UpdateGeoFencingRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

func (r *UpdateGeoFencingRequest) Validate() error {
	return validator.Struct(r)
}

type GeoFencingResponse struct {
	GeoFencingEnabled bool `json:"geoFencingEnabled"`
	// LocationTimeoutSeconds is the advisory client budget for acquiring a position fix.
	LocationTimeoutSeconds int     `json:"locationTimeoutSeconds"`
	UpdatedBy              *string `json:"updatedBy,omitempty"`
	UpdatedAt              *string `json:"updatedAt,omitempty"`
}

func NewGeoFencingResponse(g GeoFencing, timeoutSeconds int) GeoFencingResponse {
	resp := GeoFencingResponse{
		GeoFencingEnabled:      g.Enabled,
		LocationTimeoutSeconds: timeoutSeconds,
		UpdatedBy:              g.UpdatedBy,
	}
	if g.UpdatedAt != nil {
		ts := g.UpdatedAt.Format(time.RFC3339)
		resp.UpdatedAt = &ts
	}
	return resp
}
