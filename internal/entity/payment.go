package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type PaymentErrorCode string

const (
	PaymentErrCreditInactive      PaymentErrorCode = "CREDIT_INACTIVE"
	PaymentErrInvalidAmount       PaymentErrorCode = "INVALID_AMOUNT"
	PaymentErrCreditAlreadyPaid   PaymentErrorCode = "CREDIT_ALREADY_PAID"
	PaymentErrInsufficientPayment PaymentErrorCode = "INSUFFICIENT_PAYMENT"
)

func (p PaymentErrorCode) String() string {
	return string(p)
}

// PaymentResult is the outcome of a payment attempt. A rejected payment is
// a normal value with Success=false and an error code, never an error.
type PaymentResult struct {
	Success               bool
	CreditID              uuid.UUID
	CreditNumber          string
	RequestedAmount       decimal.Decimal
	PaidAmount            decimal.Decimal // zero when rejected
	BalanceAfter          decimal.Decimal
	PaidInstallments      int
	RemainingInstallments int
	Status                CreditStatus
	ErrorCode             PaymentErrorCode
	ErrorMessage          string
	ProcessedAt           time.Time
}

// BalanceSummary projects the repayment state of one credit.
type BalanceSummary struct {
	CreditID              uuid.UUID
	CreditNumber          string
	OriginalAmount        decimal.Decimal
	CurrentBalance        decimal.Decimal
	MonthlyPayment        decimal.Decimal
	TotalInstallments     int
	PaidInstallments      int
	RemainingInstallments int
	NextPaymentDueDate    time.Time
	IsOverdue             bool
	OverdueDays           int
	PaymentProgress       decimal.Decimal
	Status                CreditStatus
	IsActive              bool
}

// CustomerEligibility is the card service verdict: whether the customer has
// no overdue debt on other products.
type CustomerEligibility struct {
	Eligible bool
}

// Eligibility is the self-service eligibility projection computed from the
// customer's own credits.
type Eligibility struct {
	CustomerID      string
	Eligible        bool
	OverdueProducts []string // credit numbers currently overdue
	CheckedAt       time.Time
}
