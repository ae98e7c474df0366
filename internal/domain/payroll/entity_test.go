package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPayslipTotals(t *testing.T) {
	p := Payslip{
		BasicSalary: decimal.RequireFromString("50000"),
		HRA:         decimal.RequireFromString("10000.50"),
		Allowance:   decimal.RequireFromString("2500"),
		Deduction:   decimal.RequireFromString("3000.25"),
	}
	assert.Equal(t, "62500.5", p.TotalEarnings().String())
	assert.Equal(t, "59500.25", p.NetSalary().String())

	p.Deduction = decimal.RequireFromString("100000")
	assert.True(t, p.NetSalary().IsZero())
}

func TestPayslipIDAndMonth(t *testing.T) {
	assert.Equal(t, "PS-2025-JAN-EMP001", PayslipID("EMP001", time.January, 2025))
	assert.Equal(t, "September 2024", MonthYear(time.September, 2024))

	for _, s := range []string{"January", "jan", " JAN ", "january"} {
		m, ok := ParseMonth(s)
		assert.True(t, ok, s)
		assert.Equal(t, time.January, m, s)
	}
	for _, s := range []string{"", "ja", "Janvier", "13"} {
		_, ok := ParseMonth(s)
		assert.False(t, ok, s)
	}
}
