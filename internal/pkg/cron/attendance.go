package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/attendance"
)

type AttendanceJobs struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceJobs(attendanceService attendance.AttendanceService) *AttendanceJobs {
	return &AttendanceJobs{attendanceService: attendanceService}
}

// RegisterJobs schedules the daily auto check-out on spec (e.g. "0 19 * * *").
func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler, spec string) error {
	return scheduler.AddJob("auto_checkout_open_attendance", spec, 10*time.Minute, j.AutoCheckout)
}

// AutoCheckout closes today's records that have a check-in but no check-out.
func (j *AttendanceJobs) AutoCheckout(ctx context.Context) error {
	slog.Info("Cron: Starting auto checkout job")

	result, err := j.attendanceService.AutoCheckout(ctx, "")
	if err != nil {
		return err
	}

	slog.Info("Cron: Auto checkout finished", "date", result.Date, "closed", result.Closed)
	return nil
}
