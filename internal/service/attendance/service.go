package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/office"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/setting"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/keylock"
)

const dateLayout = "2006-01-02"

// Config carries the business calendar settings the recorder needs.
type Config struct {
	// Location is the business timezone that defines "today" for self-service calls.
	Location *time.Location
	// AutoCheckoutTime is the HH:MM written to records still open when the day is closed.
	AutoCheckoutTime string
}

type AttendanceServiceImpl struct {
	db database.Transactor
	attendance.AttendanceRepository
	employee.EmployeeRepository
	office.OfficeRepository
	setting.SettingRepository
	locks *keylock.KeyedMutex
	cfg   Config
	now   func() time.Time
}

func NewAttendanceService(
	db database.Transactor,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	officeRepo office.OfficeRepository,
	settingRepo setting.SettingRepository,
	cfg Config,
) attendance.AttendanceService {
	return newAttendanceService(db, attendanceRepo, employeeRepo, officeRepo, settingRepo, cfg)
}

func newAttendanceService(
	db database.Transactor,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	officeRepo office.OfficeRepository,
	settingRepo setting.SettingRepository,
	cfg Config,
) *AttendanceServiceImpl {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.AutoCheckoutTime == "" {
		cfg.AutoCheckoutTime = "19:00"
	}
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		OfficeRepository:     officeRepo,
		SettingRepository:    settingRepo,
		locks:                keylock.New(),
		cfg:                  cfg,
		now:                  time.Now,
	}
}

// localNow is the current instant in the business timezone.
func (a *AttendanceServiceImpl) localNow() time.Time {
	return a.now().In(a.cfg.Location)
}

func (a *AttendanceServiceImpl) ensureEmployee(ctx context.Context, employeeID string) error {
	exists, err := a.EmployeeRepository.ExistsByID(ctx, employeeID)
	if err != nil {
		return attendance.Backend("load employee", err)
	}
	if !exists {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// mutateDay serializes a read-merge-write of one (employee, date) record. The
// in-process lock covers concurrent requests on this instance; the advisory lock
// taken by LockDay covers other instances sharing the database.
func (a *AttendanceServiceImpl) mutateDay(
	ctx context.Context,
	employeeID, date string,
	mutate func(existing *attendance.Record) (attendance.Record, error),
) (attendance.Record, error) {
	unlock := a.locks.Lock(attendance.DayKey(employeeID, date))
	defer unlock()

	var saved attendance.Record
	err := a.db.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := a.AttendanceRepository.LockDay(txCtx, employeeID, date); err != nil {
			return attendance.Backend("lock day", err)
		}

		existing, err := a.AttendanceRepository.GetByEmployeeAndDate(txCtx, employeeID, date)
		if err != nil {
			return attendance.Backend("load record", err)
		}

		next, err := mutate(existing)
		if err != nil {
			return err
		}

		saved, err = a.AttendanceRepository.Upsert(txCtx, next)
		if err != nil {
			return attendance.Backend("save record", err)
		}
		return nil
	})
	if err != nil {
		return attendance.Record{}, classify(err)
	}
	return saved, nil
}

// classify passes domain errors through and reports anything else as a backend failure.
func classify(err error) error {
	var conflict *attendance.StatusConflictError
	switch {
	case errors.As(err, &conflict),
		errors.Is(err, attendance.ErrAttendanceNotFound),
		errors.Is(err, errRecordUnchanged):
		return err
	}
	return attendance.Backend("transaction", err)
}

// blankRecord starts a new day for employeeID.
func blankRecord(employeeID, date string) attendance.Record {
	return attendance.Record{
		EmployeeID:   employeeID,
		Date:         date,
		Status:       attendance.StatusPresent,
		StatusSource: attendance.SourceSelf,
		TotalHours:   attendance.ZeroHours,
	}
}
