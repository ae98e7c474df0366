package payroll

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Payslip is the generated pay statement of one employee for one month.
type Payslip struct {
	PayslipID   string
	EmployeeID  string
	FullName    string
	Email       string
	MonthYear   string // "January 2025"
	BasicSalary decimal.Decimal
	HRA         decimal.Decimal
	Allowance   decimal.Decimal
	Deduction   decimal.Decimal
	GeneratedBy string
	GeneratedAt time.Time
}

// TotalEarnings is basic salary plus HRA plus allowance.
func (p Payslip) TotalEarnings() decimal.Decimal {
	return p.BasicSalary.Add(p.HRA).Add(p.Allowance)
}

// NetSalary is earnings minus deduction, never below zero.
func (p Payslip) NetSalary() decimal.Decimal {
	net := p.TotalEarnings().Sub(p.Deduction)
	if net.IsNegative() {
		return decimal.Zero
	}
	return net
}

// MonthYear renders the period key stored with every payslip.
func MonthYear(month time.Month, year int) string {
	return fmt.Sprintf("%s %d", month, year)
}

// PayslipID builds "PS-2025-JAN-EMP001".
func PayslipID(employeeID string, month time.Month, year int) string {
	return fmt.Sprintf("PS-%d-%s-%s", year, strings.ToUpper(month.String()[:3]), employeeID)
}

// ParseMonth accepts a full or three-letter English month name in any case.
func ParseMonth(s string) (time.Month, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 3 {
		return 0, false
	}
	for m := time.January; m <= time.December; m++ {
		name := strings.ToLower(m.String())
		if s == name || s == name[:3] {
			return m, true
		}
	}
	return 0, false
}
