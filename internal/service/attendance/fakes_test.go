package attendance

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/office"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/setting"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/user"
)

// inlineTx runs fn directly; the in-memory repos need no transaction.
type inlineTx struct{}

func (inlineTx) WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

type memAttendanceRepo struct {
	mu      sync.Mutex
	records map[string]attendance.Record
	names   map[string]string
	upserts int
}

func newMemAttendanceRepo() *memAttendanceRepo {
	return &memAttendanceRepo{records: map[string]attendance.Record{}, names: map[string]string{}}
}

func (m *memAttendanceRepo) LockDay(ctx context.Context, employeeID, date string) error {
	return nil
}

func (m *memAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (*attendance.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.records[attendance.DayKey(employeeID, date)]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (m *memAttendanceRepo) Upsert(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upserts++
	if record.ID == "" {
		record.ID = attendance.DayKey(record.EmployeeID, record.Date)
		record.CreatedAt = time.Now()
	}
	record.UpdatedAt = time.Now()
	m.records[attendance.DayKey(record.EmployeeID, record.Date)] = record
	return record, nil
}

func (m *memAttendanceRepo) matching(filter attendance.AttendanceFilter) []attendance.Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []attendance.Record
	for _, r := range m.records {
		if filter.EmployeeID != nil && r.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.StartDate != nil && r.Date < *filter.StartDate {
			continue
		}
		if filter.EndDate != nil && r.Date > *filter.EndDate {
			continue
		}
		if filter.Status != nil && string(r.Status) != *filter.Status {
			continue
		}
		if name, ok := m.names[r.EmployeeID]; ok {
			n := name
			r.EmployeeName = &n
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].EmployeeID < out[j].EmployeeID
	})
	return out
}

func (m *memAttendanceRepo) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Record, int64, error) {
	all := m.matching(filter)
	total := int64(len(all))
	if filter.Limit == 0 {
		return all, total, nil
	}
	start := (filter.Page - 1) * filter.Limit
	if start > len(all) {
		start = len(all)
	}
	end := start + filter.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (m *memAttendanceRepo) CountByStatus(ctx context.Context, filter attendance.AttendanceFilter) (map[attendance.Status]int64, error) {
	counts := map[attendance.Status]int64{}
	for _, r := range m.matching(filter) {
		counts[r.Status]++
	}
	return counts, nil
}

func (m *memAttendanceRepo) ListOpen(ctx context.Context, date string) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, r := range m.matching(attendance.AttendanceFilter{StartDate: &date, EndDate: &date}) {
		if r.CheckInTime != nil && r.CheckOutTime == nil {
			out = append(out, r)
		}
	}
	return out, nil
}

// memEmployeeRepo only answers existence checks.
type memEmployeeRepo struct {
	employee.EmployeeRepository
	ids map[string]bool
}

func (m *memEmployeeRepo) ExistsByID(ctx context.Context, employeeID string) (bool, error) {
	return m.ids[employeeID], nil
}

type memOfficeRepo struct {
	office.OfficeRepository
	offices []office.Office
}

func (m *memOfficeRepo) List(ctx context.Context, activeOnly bool) ([]office.Office, error) {
	if activeOnly {
		return office.Active(m.offices), nil
	}
	return m.offices, nil
}

type memSettingRepo struct {
	gf setting.GeoFencing
}

func (m *memSettingRepo) GetGeoFencing(ctx context.Context) (setting.GeoFencing, error) {
	return m.gf, nil
}

func (m *memSettingRepo) SetGeoFencing(ctx context.Context, enabled bool, updatedBy string) (setting.GeoFencing, error) {
	m.gf = setting.GeoFencing{Enabled: enabled, UpdatedBy: &updatedBy}
	return m.gf, nil
}

type fixture struct {
	svc      *AttendanceServiceImpl
	records  *memAttendanceRepo
	offices  *memOfficeRepo
	settings *memSettingRepo
}

var bangalore = office.Office{
	OfficeID:     "BLR",
	OfficeName:   "Bangalore HQ",
	Lat:          12.9716,
	Lng:          77.5946,
	RadiusMeters: 300,
	IsActive:     true,
}

func newFixture(geoFencing bool) *fixture {
	f := &fixture{
		records:  newMemAttendanceRepo(),
		offices:  &memOfficeRepo{offices: []office.Office{bangalore}},
		settings: &memSettingRepo{gf: setting.GeoFencing{Enabled: geoFencing}},
	}
	f.records.names["EMP001"] = "Priya Sharma"
	employees := &memEmployeeRepo{ids: map[string]bool{"EMP001": true, "EMP002": true}}

	f.svc = newAttendanceService(inlineTx{}, f.records, employees, f.offices, f.settings, Config{
		Location:         time.UTC,
		AutoCheckoutTime: "19:00",
	})
	f.svc.now = func() time.Time { return time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC) }
	return f
}

func (f *fixture) clockAt(clock string) {
	t, _ := time.Parse("2006-01-02 15:04", "2025-01-15 "+clock)
	f.svc.now = func() time.Time { return t }
}

func employeeSession(id string) auth.Session {
	return auth.Session{Email: id + "@hrms.com", Role: user.RoleEmployee, EmployeeID: id}
}

func adminSession() auth.Session {
	return auth.Session{SubjectID: "u-1", Email: "admin@hrms.com", Role: user.RoleAdmin}
}

func hrSession() auth.Session {
	return auth.Session{SubjectID: "u-2", Email: "hr@hrms.com", Role: user.RoleHR}
}

func at(lat, lng float64) *attendance.LocationInput {
	return &attendance.LocationInput{Lat: &lat, Lng: &lng}
}

func strPtr(s string) *string {
	return &s
}
