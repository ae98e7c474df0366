package validator

import (
	"errors"
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd", "admin@hrms.com"}
	invalid := []string{"test@", "@example.com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"00:00", "09:05", "17:30", "23:59"}
	invalid := []string{"24:00", "9:05", "09:60", "0905", "", "09:05:00"}
	for _, s := range valid {
		if !IsValidClock(s) {
			t.Errorf("IsValidClock(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidClock(s) {
			t.Errorf("IsValidClock(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"a", "b", "c"}
	if !IsInSlice("a", slice) {
		t.Errorf("IsInSlice('a') = false, want true")
	}
	if IsInSlice("d", slice) {
		t.Errorf("IsInSlice('d') = true, want false")
	}
}

func TestCoordinateRanges(t *testing.T) {
	if !IsValidLatitude(-90) || !IsValidLatitude(90) || IsValidLatitude(90.1) {
		t.Errorf("IsValidLatitude bounds are wrong")
	}
	if !IsValidLongitude(-180) || !IsValidLongitude(180) || IsValidLongitude(-180.1) {
		t.Errorf("IsValidLongitude bounds are wrong")
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid"},
		{Field: "officeId", Message: "required"},
	}
	got := errs.Error()
	want := "email: invalid; officeId: required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid"},
		{Field: "officeId", Message: "required"},
	}
	got := errs.ToMap()
	want := map[string]string{"email": "invalid", "officeId": "required"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}

type structSample struct {
	OfficeID string  `json:"officeId" validate:"required,min=2"`
	Radius   float64 `json:"radiusMeters" validate:"gt=0"`
	Clock    *string `json:"checkInTime" validate:"omitempty,clock"`
	Role     string  `json:"role" validate:"oneof=ADMIN HR"`
}

func TestStruct(t *testing.T) {
	bad := "25:00"
	err := Struct(structSample{OfficeID: "B", Radius: 0, Clock: &bad, Role: "EMPLOYEE"})

	var errs ValidationErrors
	if !errors.As(err, &errs) {
		t.Fatalf("Struct() error = %v, want ValidationErrors", err)
	}
	got := errs.ToMap()
	want := map[string]string{
		"officeId":     "officeId must be at least 2 characters",
		"radiusMeters": "radiusMeters must be greater than 0",
		"checkInTime":  "checkInTime must be in HH:MM format",
		"role":         "role must be one of: ADMIN, HR",
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("Struct() field %q = %q, want %q", k, got[k], v)
		}
	}

	ok := "09:00"
	if err := Struct(structSample{OfficeID: "BLR", Radius: 300, Clock: &ok, Role: "HR"}); err != nil {
		t.Errorf("Struct() error = %v, want nil", err)
	}
}
