package postgresql_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/office"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/hrms-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedEmployee(t *testing.T, db *database.DB, id, name string) employee.Employee {
	t.Helper()
	emp, err := postgresql.NewEmployeeRepository(db).Create(context.Background(), employee.Employee{
		EmployeeID:   id,
		FullName:     name,
		Email:        id + "@hrms.com",
		Salary:       decimal.RequireFromString("45000.50"),
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	return emp
}

func strPtr(s string) *string { return &s }

func TestUserRepository(t *testing.T) {
	db := newTestDB(t)
	repo := postgresql.NewUserRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, user.User{FullName: "Asha HR", Email: "asha@hrms.com", PasswordHash: "h", Role: user.RoleHR})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	_, err = repo.Create(ctx, user.User{FullName: "Dup", Email: "asha@hrms.com", PasswordHash: "h", Role: user.RoleHR})
	assert.ErrorIs(t, err, user.ErrUserEmailExists)

	updated, err := repo.Update(ctx, "asha@hrms.com", user.UpdateUserRequest{Designation: strPtr("HR Lead")})
	require.NoError(t, err)
	assert.Equal(t, "HR Lead", *updated.Designation)

	require.NoError(t, repo.UpdateRole(ctx, "asha@hrms.com", user.RoleAdmin))
	got, err := repo.GetByEmail(ctx, "asha@hrms.com")
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, got.Role)

	_, err = repo.Create(ctx, user.User{FullName: "Omar HR", Email: "omar@hrms.com", PasswordHash: "h", Role: user.RoleHR})
	require.NoError(t, err)
	_, err = repo.Update(ctx, "asha@hrms.com", user.UpdateUserRequest{Email: strPtr("omar@hrms.com")})
	assert.ErrorIs(t, err, user.ErrUserEmailExists)

	renamed, err := repo.Update(ctx, "asha@hrms.com", user.UpdateUserRequest{Email: strPtr("asha.k@hrms.com")})
	require.NoError(t, err)
	assert.Equal(t, "asha.k@hrms.com", renamed.Email)
	_, err = repo.GetByEmail(ctx, "asha@hrms.com")
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	require.NoError(t, repo.Delete(ctx, "asha.k@hrms.com"))
	_, err = repo.GetByEmail(ctx, "asha.k@hrms.com")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "asha.k@hrms.com"), user.ErrUserNotFound)
}

func TestEmployeeRepository(t *testing.T) {
	db := newTestDB(t)
	repo := postgresql.NewEmployeeRepository(db)
	ctx := context.Background()

	seedEmployee(t, db, "EMP001", "Priya Sharma")
	seedEmployee(t, db, "EMP002", "Ravi Kumar")

	_, err := repo.Create(ctx, employee.Employee{EmployeeID: "EMP001", FullName: "X", Email: "x@hrms.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, employee.ErrEmployeeIDExists)

	list, total, err := repo.List(ctx, employee.EmployeeFilter{Search: strPtr("ravi"), Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, "EMP002", list[0].EmployeeID)

	got, err := repo.GetByID(ctx, "EMP001")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("45000.50").Equal(got.Salary))

	dept := "Engineering"
	updated, err := repo.Update(ctx, "EMP001", employee.UpdateEmployeeRequest{Department: &dept})
	require.NoError(t, err)
	assert.Equal(t, "Engineering", *updated.Department)

	_, err = repo.Update(ctx, "EMP404", employee.UpdateEmployeeRequest{Department: &dept})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestAttendanceRepository(t *testing.T) {
	db := newTestDB(t)
	seedEmployee(t, db, "EMP001", "Priya Sharma")
	repo := postgresql.NewAttendanceRepository(db)
	ctx := context.Background()

	missing, err := repo.GetByEmployeeAndDate(ctx, "EMP001", "2025-01-15")
	require.NoError(t, err)
	assert.Nil(t, missing)

	dist := 42.5
	in := "09:00"
	saved, err := repo.Upsert(ctx, attendance.Record{
		EmployeeID:      "EMP001",
		Date:            "2025-01-15",
		Status:          attendance.StatusPresent,
		StatusSource:    attendance.SourceSelf,
		CheckInTime:     &in,
		CheckInLocation: &attendance.Location{Lat: 12.97, Lng: 77.59, OfficeID: strPtr("BLR"), DistanceMeters: &dist},
		TotalHours:      attendance.ZeroHours,
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-01-15", saved.Date)
	require.NotNil(t, saved.CheckInLocation)
	assert.Equal(t, "BLR", *saved.CheckInLocation.OfficeID)
	assert.Nil(t, saved.CheckOutLocation)

	open, err := repo.ListOpen(ctx, "2025-01-15")
	require.NoError(t, err)
	assert.Len(t, open, 1)

	out := "17:30"
	saved.CheckOutTime = &out
	saved.TotalHours = "08:30"
	saved.TotalMinutes = 510
	again, err := repo.Upsert(ctx, saved)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, again.ID)
	assert.Equal(t, "08:30", again.TotalHours)

	records, total, err := repo.List(ctx, attendance.AttendanceFilter{StartDate: strPtr("2025-01-01"), Page: 1, Limit: 0})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, records, 1)
	assert.Equal(t, "Priya Sharma", *records[0].EmployeeName)

	counts, err := repo.CountByStatus(ctx, attendance.AttendanceFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[attendance.StatusPresent])
}

func TestLockDaySerializesWriters(t *testing.T) {
	db := newTestDB(t)
	seedEmployee(t, db, "EMP001", "Priya Sharma")
	repo := postgresql.NewAttendanceRepository(db)
	tx := postgresql.NewTxManager(db)
	ctx := context.Background()

	// Each writer appends one minute to total_minutes under the day lock.
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := tx.WithinTransaction(ctx, func(txCtx context.Context) error {
				if err := repo.LockDay(txCtx, "EMP001", "2025-01-15"); err != nil {
					return err
				}
				rec, err := repo.GetByEmployeeAndDate(txCtx, "EMP001", "2025-01-15")
				if err != nil {
					return err
				}
				next := attendance.Record{EmployeeID: "EMP001", Date: "2025-01-15", Status: attendance.StatusPresent,
					StatusSource: attendance.SourceSelf, TotalHours: attendance.ZeroHours}
				if rec != nil {
					next = *rec
				}
				next.TotalMinutes++
				_, err = repo.Upsert(txCtx, next)
				return err
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	rec, err := repo.GetByEmployeeAndDate(ctx, "EMP001", "2025-01-15")
	require.NoError(t, err)
	assert.Equal(t, 10, rec.TotalMinutes)
}

func TestLeaveRepository(t *testing.T) {
	db := newTestDB(t)
	seedEmployee(t, db, "EMP001", "Priya Sharma")
	repo := postgresql.NewLeaveRepository(db)
	ctx := context.Background()

	id := uuid.NewString()
	_, err := repo.Create(ctx, leave.Leave{
		LeaveID:    id,
		EmployeeID: "EMP001",
		StartDate:  time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC),
		Reason:     "family function",
		Status:     leave.StatusPending,
		AppliedAt:  time.Now().UTC(),
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 3, got.TotalDays())
	assert.Equal(t, "Priya Sharma", *got.EmployeeName)

	approved, err := repo.UpdateStatus(ctx, id, leave.StatusApproved, "ok", "hr@hrms.com", time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, approved.Status)

	_, err = repo.UpdateStatus(ctx, id, leave.StatusRejected, "", "hr@hrms.com", time.Now().UTC())
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)

	_, err = repo.UpdateStatus(ctx, uuid.NewString(), leave.StatusRejected, "", "hr@hrms.com", time.Now().UTC())
	assert.ErrorIs(t, err, leave.ErrLeaveNotFound)

	counts, err := repo.CountByStatus(ctx, strPtr("EMP001"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[leave.StatusApproved])
}

func TestPayslipRepository(t *testing.T) {
	db := newTestDB(t)
	seedEmployee(t, db, "EMP001", "Priya Sharma")
	repo := postgresql.NewPayslipRepository(db)
	ctx := context.Background()

	p := payroll.Payslip{
		PayslipID:   payroll.PayslipID("EMP001", time.January, 2025),
		EmployeeID:  "EMP001",
		FullName:    "Priya Sharma",
		Email:       "EMP001@hrms.com",
		MonthYear:   payroll.MonthYear(time.January, 2025),
		BasicSalary: decimal.RequireFromString("50000"),
		HRA:         decimal.RequireFromString("10000.25"),
		GeneratedBy: "hr@hrms.com",
		GeneratedAt: time.Now().UTC(),
	}
	_, err := repo.Create(ctx, p)
	require.NoError(t, err)
	_, err = repo.Create(ctx, p)
	assert.ErrorIs(t, err, payroll.ErrPayslipAlreadyExists)

	got, err := repo.GetByID(ctx, "PS-2025-JAN-EMP001")
	require.NoError(t, err)
	assert.Equal(t, "60000.25", got.TotalEarnings().String())

	require.NoError(t, repo.DeleteByEmployeeMonth(ctx, "EMP001", "January 2025"))
	assert.ErrorIs(t, repo.DeleteByEmployeeMonth(ctx, "EMP001", "January 2025"), payroll.ErrPayslipNotFound)
}

func TestOfficeAndSettingRepositories(t *testing.T) {
	db := newTestDB(t)
	offices := postgresql.NewOfficeRepository(db)
	settings := postgresql.NewSettingRepository(db)
	ctx := context.Background()

	_, err := offices.Create(ctx, office.Office{OfficeID: "BLR", OfficeName: "Bangalore", Lat: 12.9716, Lng: 77.5946, RadiusMeters: 300, IsActive: true})
	require.NoError(t, err)
	_, err = offices.Create(ctx, office.Office{OfficeID: "PUN", OfficeName: "Pune", Lat: 18.52, Lng: 73.85, RadiusMeters: 200})
	require.NoError(t, err)

	active, err := offices.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "BLR", active[0].OfficeID)

	assert.ErrorIs(t, offices.Delete(ctx, "HYD"), office.ErrOfficeNotFound)

	gf, err := settings.GetGeoFencing(ctx)
	require.NoError(t, err)
	assert.False(t, gf.Enabled)

	gf, err = settings.SetGeoFencing(ctx, true, "admin@hrms.com")
	require.NoError(t, err)
	assert.True(t, gf.Enabled)

	gf, err = settings.GetGeoFencing(ctx)
	require.NoError(t, err)
	assert.True(t, gf.Enabled)
	assert.Equal(t, "admin@hrms.com", *gf.UpdatedBy)
}
