package payroll

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// GeneratePayslipRequest creates a payslip. BasicSalary falls back to the employee's
// salary when omitted.
type GeneratePayslipRequest struct {
	EmployeeID  string           `json:"employeeId"`
	Month       string           `json:"month"`
	Year        int              `json:"year"`
	BasicSalary *decimal.Decimal `json:"basicSalary,omitempty"`
	HRA         decimal.Decimal  `json:"hra"`
	Allowance   decimal.Decimal  `json:"allowance"`
	Deduction   decimal.Decimal  `json:"deduction"`

	// Parsed by Validate
	ParsedMonth time.Month `json:"-"`
}

func (r *GeneratePayslipRequest) Validate() error {
	var errs validator.ValidationErrors

	r.EmployeeID = strings.TrimSpace(r.EmployeeID)

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "employeeId is required"})
	}

	month, ok := ParseMonth(r.Month)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be an English month name"})
	}
	r.ParsedMonth = month

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year must be between 2000 and 2100"})
	}

	if r.BasicSalary != nil && r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basicSalary", Message: "must be non-negative"})
	}
	if r.HRA.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hra", Message: "must be non-negative"})
	}
	if r.Allowance.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "allowance", Message: "must be non-negative"})
	}
	if r.Deduction.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "deduction", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayslipResponse struct {
	PayslipID     string          `json:"payslipId"`
	EmployeeID    string          `json:"employeeId"`
	FullName      string          `json:"fullName"`
	Email         string          `json:"email"`
	MonthYear     string          `json:"monthYear"`
	BasicSalary   decimal.Decimal `json:"basicSalary"`
	HRA           decimal.Decimal `json:"hra"`
	Allowance     decimal.Decimal `json:"allowance"`
	Deduction     decimal.Decimal `json:"deduction"`
	TotalEarnings decimal.Decimal `json:"totalEarnings"`
	NetSalary     decimal.Decimal `json:"netSalary"`
	GeneratedBy   string          `json:"generatedBy"`
	GeneratedAt   string          `json:"generatedAt"`
}

func NewPayslipResponse(p Payslip) PayslipResponse {
	return PayslipResponse{
		PayslipID:     p.PayslipID,
		EmployeeID:    p.EmployeeID,
		FullName:      p.FullName,
		Email:         p.Email,
		MonthYear:     p.MonthYear,
		BasicSalary:   p.BasicSalary,
		HRA:           p.HRA,
		Allowance:     p.Allowance,
		Deduction:     p.Deduction,
		TotalEarnings: p.TotalEarnings(),
		NetSalary:     p.NetSalary(),
		GeneratedBy:   p.GeneratedBy,
		GeneratedAt:   p.GeneratedAt.Format(time.RFC3339),
	}
}
