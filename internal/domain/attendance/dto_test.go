package attendance

import (
	"errors"
	"testing"

	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceFilter_PaginatedLimits(t *testing.T) {
	f := AttendanceFilter{}
	require.NoError(t, f.Validate(true))
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 20, f.Limit)

	f = AttendanceFilter{Page: 1, Limit: 500}
	var errs validator.ValidationErrors
	require.True(t, errors.As(f.Validate(true), &errs))
	assert.Contains(t, errs.ToMap(), "limit")
}

func TestAttendanceFilter_UnpaginatedIgnoresLimit(t *testing.T) {
	f := AttendanceFilter{Page: 3, Limit: 500}
	require.NoError(t, f.Validate(false))
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 0, f.Limit)
}

func TestAttendanceFilter_InvalidRange(t *testing.T) {
	start, end, status := "2025-01-20", "2025-01-10", "Late"
	f := AttendanceFilter{StartDate: &start, EndDate: &end, Status: &status}

	var errs validator.ValidationErrors
	require.True(t, errors.As(f.Validate(false), &errs))
	fields := errs.ToMap()
	assert.Contains(t, fields, "endDate")
	assert.Contains(t, fields, "status")
}
