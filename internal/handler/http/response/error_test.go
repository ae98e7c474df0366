package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/export"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", validator.ValidationErrors{{Field: "date", Message: "bad"}}, http.StatusUnprocessableEntity},
		{"wrapped not found", fmt.Errorf("failed to load: %w", leave.ErrLeaveNotFound), http.StatusNotFound},
		{"already processed", leave.ErrLeaveAlreadyProcessed, http.StatusConflict},
		{"payslip exists", payroll.ErrPayslipAlreadyExists, http.StatusConflict},
		{"email exists", user.ErrUserEmailExists, http.StatusConflict},
		{"delete self", user.ErrCannotDeleteSelf, http.StatusBadRequest},
		{"incorrect password", user.ErrIncorrectPassword, http.StatusBadRequest},
		{"forbidden", auth.ErrForbidden, http.StatusForbidden},
		{"unsupported format", export.ErrUnsupportedFormat, http.StatusBadRequest},
		{"no active offices", attendance.ErrNoActiveOffices, http.StatusForbidden},
		{"date not today", attendance.ErrDateNotToday, http.StatusForbidden},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tc.err)
			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestHandleError_NoOfficeDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, fmt.Errorf("check-in: %w", &attendance.NoOfficeInRangeError{
		NearestOfficeID:       "PUN",
		NearestOfficeName:     "Pune",
		NearestDistanceMeters: 1234.5,
		RadiusMeters:          200,
	}))

	require.Equal(t, http.StatusForbidden, rec.Code)
	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "NO_OFFICE_IN_RANGE", body.Error.Code)
	assert.Equal(t, "PUN", body.Error.Details["nearestOfficeId"])
	assert.Equal(t, "1234.50", body.Error.Details["nearestDistanceMeters"])
}

func TestFile(t *testing.T) {
	rec := httptest.NewRecorder()
	File(rec, export.File{Filename: "leave_report_2025_01.pdf", ContentType: "application/pdf", Content: []byte("%PDF")})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="leave_report_2025_01.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "4", rec.Header().Get("Content-Length"))
	assert.Equal(t, "%PDF", rec.Body.String())
}
