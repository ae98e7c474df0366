package auth

import (
	"strings"

	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Email = strings.ToLower(strings.TrimSpace(r.Email))

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TokenResponse struct {
	AccessToken string  `json:"access_token"`
	TokenType   string  `json:"token_type"`
	ExpiresAt   int64   `json:"expires_at"`
	Role        string  `json:"role"`
	Email       string  `json:"email"`
	FullName    string  `json:"fullName"`
	EmployeeID  *string `json:"employeeId,omitempty"`
}

type MeResponse struct {
	Email      string  `json:"email"`
	FullName   string  `json:"fullName"`
	Role       string  `json:"role"`
	EmployeeID *string `json:"employeeId,omitempty"`
}
