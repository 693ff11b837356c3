package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// TotalInstallments is fixed for every credit: 12 monthly installments,
// interest free.
const TotalInstallments = 12

var (
	MinCreditAmount = decimal.RequireFromString("5000.00")
	MaxCreditAmount = decimal.RequireFromString("100000.00")
)

type CreditType string

const (
	CreditTypePersonal   CreditType = "PERSONAL"
	CreditTypeEnterprise CreditType = "ENTERPRISE"
)

func (t CreditType) String() string {
	return string(t)
}

func (t CreditType) Validate() error {
	switch t {
	case CreditTypePersonal, CreditTypeEnterprise:
		return nil
	default:
		return fmt.Errorf("%w: unknown credit type %q", ErrInvalidArgument, string(t))
	}
}

// CreditTypeFromString maps the customer directory classification onto a
// credit type. The two sets of values are identical by contract.
func CreditTypeFromString(s string) (CreditType, error) {
	t := CreditType(s)
	if err := t.Validate(); err != nil {
		return "", err
	}

	return t, nil
}

type CreditStatus string

const (
	CreditStatusActive  CreditStatus = "ACTIVE"
	CreditStatusOverdue CreditStatus = "OVERDUE"
	CreditStatusPaid    CreditStatus = "PAID"
)

func (s CreditStatus) String() string {
	return string(s)
}

type Credit struct {
	ID                    uuid.UUID
	CreditNumber          string // CR-<4 digits>, unique, immutable after creation
	CustomerID            string
	Type                  CreditType
	OriginalAmount        decimal.Decimal
	CurrentBalance        decimal.Decimal
	MonthlyPayment        decimal.Decimal
	TotalInstallments     int
	PaidInstallments      int
	RemainingInstallments int
	NextPaymentDueDate    time.Time // date only, UTC midnight
	FinalDueDate          time.Time // date only, UTC midnight
	IsOverdue             bool
	OverdueDays           int
	Status                CreditStatus
	IsActive              bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// ValidateCreditAmount checks the configured inclusive range and that the
// amount carries at most 2 fractional digits.
func ValidateCreditAmount(amount decimal.Decimal) error {
	if amount.LessThan(MinCreditAmount) || amount.GreaterThan(MaxCreditAmount) {
		return fmt.Errorf("%w: amount %s is outside the allowed range [%s, %s]",
			ErrInvalidArgument, amount, MinCreditAmount, MaxCreditAmount)
	}

	if amount.Exponent() < -2 {
		return fmt.Errorf("%w: amount %s has more than 2 decimal places", ErrInvalidArgument, amount)
	}

	return nil
}

// Initialize sets the schedule and counters of a new credit. Called exactly
// once, at origination; OriginalAmount must already be set.
func (c *Credit) Initialize(now time.Time) {
	today := DateOf(now)

	c.TotalInstallments = TotalInstallments
	c.PaidInstallments = 0
	c.RemainingInstallments = TotalInstallments
	c.CurrentBalance = c.OriginalAmount
	c.IsOverdue = false
	c.OverdueDays = 0
	c.Status = CreditStatusActive
	c.IsActive = true
	c.MonthlyPayment = c.OriginalAmount.
		DivRound(decimal.NewFromInt(TotalInstallments), 2)
	c.NextPaymentDueDate = addMonths(today, 1)
	c.FinalDueDate = addMonths(today, TotalInstallments)
}

// UpdateOverdueStatus recomputes the derived overdue fields and the status
// from the next due date and the given current time. Must run before the
// credit is returned to a caller and after any schedule mutation.
func (c *Credit) UpdateOverdueStatus(now time.Time) {
	today := DateOf(now)

	c.IsOverdue = today.After(c.NextPaymentDueDate)
	if c.IsOverdue {
		c.OverdueDays = int(today.Sub(c.NextPaymentDueDate).Hours() / 24)
	} else {
		c.OverdueDays = 0
	}

	switch {
	case c.IsOverdue && c.RemainingInstallments > 0:
		c.Status = CreditStatusOverdue
	case c.RemainingInstallments == 0:
		c.Status = CreditStatusPaid
	case c.IsActive:
		c.Status = CreditStatusActive
	}
}

// ApplyPayment records one installment payment. Returns false without any
// mutation when the amount is below the monthly installment. The deduction
// is always exactly MonthlyPayment: overpayment is not credited further.
func (c *Credit) ApplyPayment(amount decimal.Decimal, now time.Time) bool {
	if amount.LessThan(c.MonthlyPayment) {
		return false
	}

	c.CurrentBalance = c.CurrentBalance.Sub(c.MonthlyPayment)
	c.PaidInstallments++
	c.RemainingInstallments--

	if c.RemainingInstallments > 0 {
		c.NextPaymentDueDate = addMonths(c.NextPaymentDueDate, 1)
	}

	c.UpdateOverdueStatus(now)

	return true
}

// FullyPaid reports whether every installment has been recorded.
func (c *Credit) FullyPaid() bool {
	return c.RemainingInstallments == 0
}

// PaymentProgress returns paid installments as a percentage of the total,
// rounded half-up to 2 decimals.
func (c *Credit) PaymentProgress() decimal.Decimal {
	if c.TotalInstallments == 0 {
		return decimal.Zero
	}

	return decimal.NewFromInt(int64(c.PaidInstallments)).
		Mul(decimal.NewFromInt(100)).
		DivRound(decimal.NewFromInt(int64(c.TotalInstallments)), 2)
}

// CreditUpdate carries the administratively updatable fields. Nil means
// keep the current value.
type CreditUpdate struct {
	NextPaymentDueDate *time.Time
	IsActive           *bool
}

// DateOf truncates a timestamp to its calendar date at UTC midnight.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// addMonths advances a date by whole months, clamping the day to the end of
// the target month (Jan 31 + 1 month = Feb 28/29).
func addMonths(t time.Time, months int) time.Time {
	y, m, d := t.Date()

	first := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC).AddDate(0, months, 0)

	lastDay := first.AddDate(0, 1, -1).Day()
	if d > lastDay {
		d = lastDay
	}

	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, time.UTC)
}
