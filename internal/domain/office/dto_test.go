package office

import (
	"errors"
	"testing"

	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestCreateOfficeRequest_Defaults(t *testing.T) {
	req := CreateOfficeRequest{OfficeID: " BLR ", OfficeName: "Bangalore HQ", Lat: ptr(12.9716), Lng: ptr(77.5946)}
	require.NoError(t, req.Validate())

	o := req.ToEntity()
	assert.Equal(t, "BLR", o.OfficeID)
	assert.Equal(t, float64(DefaultRadiusMeters), o.RadiusMeters)
	assert.True(t, o.IsActive)
}

func TestCreateOfficeRequest_Invalid(t *testing.T) {
	req := CreateOfficeRequest{OfficeID: "B", OfficeName: "HQ", Lat: ptr(91.0), RadiusMeters: ptr(0.0)}
	err := req.Validate()

	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	fields := errs.ToMap()
	assert.Contains(t, fields, "officeId")
	assert.Contains(t, fields, "lat")
	assert.Contains(t, fields, "lng")
	assert.Contains(t, fields, "radiusMeters")
	assert.NotContains(t, fields, "officeName")
}

func TestActive(t *testing.T) {
	list := []Office{{OfficeID: "A", IsActive: true}, {OfficeID: "B"}, {OfficeID: "C", IsActive: true}}
	active := Active(list)
	require.Len(t, active, 2)
	assert.Equal(t, "A", active[0].OfficeID)
	assert.Equal(t, "C", active[1].OfficeID)
}
