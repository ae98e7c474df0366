package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is a staff record. EmployeeID is the business key shown on payslips and
// attendance exports; employees log in with Email and their own password.
type Employee struct {
	EmployeeID   string
	FullName     string
	Email        string
	Department   *string
	Designation  *string
	Salary       decimal.Decimal
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
