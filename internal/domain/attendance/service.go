package attendance

import (
	"context"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/export"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn records the check-in time and location, running the geo-fence for self-service callers.
	CheckIn(ctx context.Context, session auth.Session, req EventRequest) (RecordResponse, error)

	// CheckOut records the check-out time and location and recomputes total hours.
	CheckOut(ctx context.Context, session auth.Session, req EventRequest) (RecordResponse, error)

	// Mark sets a day's status and optional times without location checks (ADMIN/HR).
	Mark(ctx context.Context, session auth.Session, req MarkAttendanceRequest) (RecordResponse, error)

	// Edit corrects an existing record with an audited reason (ADMIN/HR).
	Edit(ctx context.Context, session auth.Session, req EditAttendanceRequest) (RecordResponse, error)

	// PreviewLocation runs the geo-fence without recording anything.
	PreviewLocation(ctx context.Context, session auth.Session, req LocationInput) (PreviewLocationResponse, error)

	// ListMine returns the caller's own records.
	ListMine(ctx context.Context, session auth.Session, filter AttendanceFilter) (ListAttendanceResponse, error)

	// List returns records across employees (ADMIN/HR).
	List(ctx context.Context, session auth.Session, filter AttendanceFilter) (ListAttendanceResponse, error)

	Summary(ctx context.Context, session auth.Session, filter AttendanceFilter) (SummaryResponse, error)

	// Export renders the same rows List returns as CSV, XLSX or PDF.
	Export(ctx context.Context, session auth.Session, filter AttendanceFilter, format export.Format) (export.File, error)

	// AutoCheckout closes every open record of date (today when empty) at the configured time.
	AutoCheckout(ctx context.Context, date string) (AutoCheckoutResponse, error)
}
