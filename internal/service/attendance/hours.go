package attendance

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/attendance"
)

const clockLayout = "15:04"

// ComputeTotalHours returns checkOut minus checkIn as "HH:MM" and in minutes.
// Missing or unparsable times yield "00:00". A check-out before the check-in also
// yields "00:00" and sets negative so the caller can warn about it.
func ComputeTotalHours(checkIn, checkOut *string) (total string, minutes int, negative bool) {
	if checkIn == nil || checkOut == nil {
		return attendance.ZeroHours, 0, false
	}

	in, err := time.Parse(clockLayout, *checkIn)
	if err != nil {
		return attendance.ZeroHours, 0, false
	}
	out, err := time.Parse(clockLayout, *checkOut)
	if err != nil {
		return attendance.ZeroHours, 0, false
	}

	diff := out.Sub(in)
	if diff < 0 {
		return attendance.ZeroHours, 0, true
	}

	minutes = int(diff.Minutes())
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60), minutes, false
}

// applyHours refreshes the derived totals of rec and returns any warnings.
func applyHours(rec *attendance.Record) []string {
	total, minutes, negative := ComputeTotalHours(rec.CheckInTime, rec.CheckOutTime)
	rec.TotalHours = total
	rec.TotalMinutes = minutes
	if negative {
		return []string{attendance.ErrCheckOutBeforeCheckIn.Error()}
	}
	return nil
}
