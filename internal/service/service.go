package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/andeanbank/microservices/credit/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Repository interface {
	CreateCredit(ctx context.Context, c entity.Credit) (entity.Credit, error)
	UpdateCredit(ctx context.Context, c entity.Credit) (entity.Credit, error)
	DeleteCredit(ctx context.Context, id uuid.UUID) error
	CreditByID(ctx context.Context, id uuid.UUID) (entity.Credit, error)
	CreditByNumber(ctx context.Context, creditNumber string) (entity.Credit, error)
	CreditNumberExists(ctx context.Context, creditNumber string) (bool, error)
	CountActiveCreditsByCustomer(ctx context.Context, customerID string) (int64, error)
	CreditsByActive(ctx context.Context, isActive bool) ([]entity.Credit, error)
	CreditsByActiveAndCustomer(ctx context.Context, isActive bool, customerID string) ([]entity.Credit, error)
	CreditsByCustomer(ctx context.Context, customerID string) ([]entity.Credit, error)
}

type CustomerGateway interface {
	CustomerType(ctx context.Context, customerID string) (entity.CreditType, error)
}

type CardGateway interface {
	CustomerEligibility(ctx context.Context, customerID string) entity.CustomerEligibility
}

type Producer interface {
	SendCreditCreated(ctx context.Context, creditID, creditNumber, customerID, creditType string, originalAmount decimal.Decimal)
	SendPaymentReceived(ctx context.Context, creditID, creditNumber, customerID string, amount decimal.Decimal, remainingInstallments int, status string)
}

const (
	creditNumberPrefix = "CR-"
	// 10,000 candidates per prefix; bounded so a pathological collision
	// rate cannot recurse forever.
	maxNumberAttempts = 10
	// Retries of the persist step when the DB reports a credit number
	// collision that the pre-check missed.
	maxCreateAttempts = 3
)

type Service struct {
	repo      Repository
	customers CustomerGateway
	cards     CardGateway
	producer  Producer
	now       func() time.Time
}

func New(repo Repository, customers CustomerGateway, cards CardGateway, producer Producer, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}

	return &Service{
		repo:      repo,
		customers: customers,
		cards:     cards,
		producer:  producer,
		now:       now,
	}
}

// CreateCredit originates a credit. Steps run in a fixed order so that no
// unique number is allocated for a request that will be rejected:
// classification, per type business rule, eligibility, number generation,
// persistence.
func (s *Service) CreateCredit(ctx context.Context, customerID string, originalAmount decimal.Decimal) (entity.Credit, error) {
	if err := entity.ValidateCreditAmount(originalAmount); err != nil {
		return entity.Credit{}, err
	}

	customerType, err := s.customers.CustomerType(ctx, customerID)
	if err != nil {
		return entity.Credit{}, fmt.Errorf("classify customer %s: %w", customerID, err)
	}

	if customerType == entity.CreditTypePersonal {
		activeCredits, err := s.repo.CountActiveCreditsByCustomer(ctx, customerID)
		if err != nil {
			return entity.Credit{}, fmt.Errorf("count active credits for customer %s: %w", customerID, err)
		}

		if activeCredits > 0 {
			return entity.Credit{}, fmt.Errorf("customer %s: %w", customerID, entity.ErrPersonalCreditLimit)
		}
	}

	if eligibility := s.cards.CustomerEligibility(ctx, customerID); !eligibility.Eligible {
		return entity.Credit{}, fmt.Errorf("customer %s: %w", customerID, entity.ErrCustomerNotEligible)
	}

	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		creditNumber, err := s.GenerateUniqueCreditNumber(ctx)
		if err != nil {
			return entity.Credit{}, err
		}

		credit := entity.Credit{
			CreditNumber:   creditNumber,
			CustomerID:     customerID,
			Type:           customerType,
			OriginalAmount: originalAmount,
		}
		credit.Initialize(s.now())

		created, err := s.repo.CreateCredit(ctx, credit)
		if errors.Is(err, entity.ErrDuplicateCreditNumber) {
			// Lost the race for this number, try a fresh one.
			continue
		}

		if err != nil {
			return entity.Credit{}, fmt.Errorf("create credit: %w", err)
		}

		s.producer.SendCreditCreated(ctx, created.ID.String(), created.CreditNumber,
			created.CustomerID, created.Type.String(), created.OriginalAmount)

		slog.InfoContext(ctx, "credit created",
			"credit_number", created.CreditNumber, "customer_id", customerID,
			"type", created.Type.String(), "amount", originalAmount.String())

		return created, nil
	}

	return entity.Credit{}, entity.ErrCreditNumberExhausted
}

// GenerateUniqueCreditNumber produces a candidate number and verifies it
// against storage, retrying on collisions up to a fixed bound. The hard
// uniqueness guarantee is the storage unique index, not this check.
func (s *Service) GenerateUniqueCreditNumber(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10_000))
		if err != nil {
			return "", fmt.Errorf("random credit number: %w", err)
		}

		candidate := fmt.Sprintf("%s%04d", creditNumberPrefix, n)

		exists, err := s.repo.CreditNumberExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check credit number %q: %w", candidate, err)
		}

		if !exists {
			return candidate, nil
		}
	}

	return "", entity.ErrCreditNumberExhausted
}

// ProcessPayment applies one installment payment. Rejections are normal
// values carrying an error code; only missing credits and infrastructure
// failures are errors.
func (s *Service) ProcessPayment(ctx context.Context, creditNumber string, amount decimal.Decimal) (entity.PaymentResult, error) {
	credit, err := s.repo.CreditByNumber(ctx, creditNumber)
	if err != nil {
		return entity.PaymentResult{}, fmt.Errorf("get credit %q: %w", creditNumber, err)
	}

	now := s.now()
	credit.UpdateOverdueStatus(now)

	if !credit.IsActive {
		return rejectPayment(ctx, credit, amount, now, entity.PaymentErrCreditInactive,
			"credit is not active"), nil
	}

	if !amount.IsPositive() {
		return rejectPayment(ctx, credit, amount, now, entity.PaymentErrInvalidAmount,
			"payment amount must be greater than 0"), nil
	}

	if credit.FullyPaid() {
		return rejectPayment(ctx, credit, amount, now, entity.PaymentErrCreditAlreadyPaid,
			"credit has no outstanding installments"), nil
	}

	if !credit.ApplyPayment(amount, now) {
		return rejectPayment(ctx, credit, amount, now, entity.PaymentErrInsufficientPayment,
			fmt.Sprintf("payment is below the monthly installment of %s", credit.MonthlyPayment)), nil
	}

	saved, err := s.repo.UpdateCredit(ctx, credit)
	if err != nil {
		return entity.PaymentResult{}, fmt.Errorf("save credit %q after payment: %w", creditNumber, err)
	}

	s.producer.SendPaymentReceived(ctx, saved.ID.String(), saved.CreditNumber, saved.CustomerID,
		saved.MonthlyPayment, saved.RemainingInstallments, saved.Status.String())

	slog.InfoContext(ctx, "payment processed",
		"credit_number", saved.CreditNumber, "paid", saved.MonthlyPayment.String(),
		"remaining_installments", saved.RemainingInstallments)

	return entity.PaymentResult{
		Success:               true,
		CreditID:              saved.ID,
		CreditNumber:          saved.CreditNumber,
		RequestedAmount:       amount,
		PaidAmount:            saved.MonthlyPayment,
		BalanceAfter:          saved.CurrentBalance,
		PaidInstallments:      saved.PaidInstallments,
		RemainingInstallments: saved.RemainingInstallments,
		Status:                saved.Status,
		ProcessedAt:           now,
	}, nil
}

func rejectPayment(ctx context.Context, c entity.Credit, requested decimal.Decimal, now time.Time, code entity.PaymentErrorCode, msg string) entity.PaymentResult {
	slog.WarnContext(ctx, "payment rejected",
		"credit_number", c.CreditNumber, "error_code", code.String(), "requested", requested.String())

	return entity.PaymentResult{
		Success:               false,
		CreditID:              c.ID,
		CreditNumber:          c.CreditNumber,
		RequestedAmount:       requested,
		BalanceAfter:          c.CurrentBalance,
		PaidInstallments:      c.PaidInstallments,
		RemainingInstallments: c.RemainingInstallments,
		Status:                c.Status,
		ErrorCode:             code,
		ErrorMessage:          msg,
		ProcessedAt:           now,
	}
}

// CreditBalance projects the repayment state of a credit by number.
func (s *Service) CreditBalance(ctx context.Context, creditNumber string) (entity.BalanceSummary, error) {
	credit, err := s.repo.CreditByNumber(ctx, creditNumber)
	if err != nil {
		return entity.BalanceSummary{}, fmt.Errorf("get credit %q: %w", creditNumber, err)
	}

	credit.UpdateOverdueStatus(s.now())

	return entity.BalanceSummary{
		CreditID:              credit.ID,
		CreditNumber:          credit.CreditNumber,
		OriginalAmount:        credit.OriginalAmount,
		CurrentBalance:        credit.CurrentBalance,
		MonthlyPayment:        credit.MonthlyPayment,
		TotalInstallments:     credit.TotalInstallments,
		PaidInstallments:      credit.PaidInstallments,
		RemainingInstallments: credit.RemainingInstallments,
		NextPaymentDueDate:    credit.NextPaymentDueDate,
		IsOverdue:             credit.IsOverdue,
		OverdueDays:           credit.OverdueDays,
		PaymentProgress:       credit.PaymentProgress(),
		Status:                credit.Status,
		IsActive:              credit.IsActive,
	}, nil
}

// CheckEligibility lists the customer's credits and reports the ones
// currently overdue; the customer is eligible for new products iff none
// are.
func (s *Service) CheckEligibility(ctx context.Context, customerID string) (entity.Eligibility, error) {
	credits, err := s.repo.CreditsByCustomer(ctx, customerID)
	if err != nil {
		return entity.Eligibility{}, fmt.Errorf("get credits for customer %s: %w", customerID, err)
	}

	now := s.now()

	var overdueProducts []string

	for i := range credits {
		credits[i].UpdateOverdueStatus(now)

		if credits[i].IsOverdue && !credits[i].FullyPaid() {
			overdueProducts = append(overdueProducts, credits[i].CreditNumber)
		}
	}

	return entity.Eligibility{
		CustomerID:      customerID,
		Eligible:        len(overdueProducts) == 0,
		OverdueProducts: overdueProducts,
		CheckedAt:       now,
	}, nil
}

func (s *Service) CreditByID(ctx context.Context, id uuid.UUID) (entity.Credit, error) {
	credit, err := s.repo.CreditByID(ctx, id)
	if err != nil {
		return entity.Credit{}, fmt.Errorf("get credit %s: %w", id, err)
	}

	credit.UpdateOverdueStatus(s.now())

	return credit, nil
}

func (s *Service) CreditByNumber(ctx context.Context, creditNumber string) (entity.Credit, error) {
	credit, err := s.repo.CreditByNumber(ctx, creditNumber)
	if err != nil {
		return entity.Credit{}, fmt.Errorf("get credit %q: %w", creditNumber, err)
	}

	credit.UpdateOverdueStatus(s.now())

	return credit, nil
}

// CreditsByActive lists credits by the administrative active flag,
// optionally narrowed to one customer.
func (s *Service) CreditsByActive(ctx context.Context, isActive bool, customerID string) ([]entity.Credit, error) {
	var (
		credits []entity.Credit
		err     error
	)

	if customerID == "" {
		credits, err = s.repo.CreditsByActive(ctx, isActive)
	} else {
		credits, err = s.repo.CreditsByActiveAndCustomer(ctx, isActive, customerID)
	}

	if err != nil {
		return nil, fmt.Errorf("get credits: %w", err)
	}

	now := s.now()
	for i := range credits {
		credits[i].UpdateOverdueStatus(now)
	}

	return credits, nil
}

// UpdateCredit applies the administratively updatable fields only.
func (s *Service) UpdateCredit(ctx context.Context, id uuid.UUID, upd entity.CreditUpdate) (entity.Credit, error) {
	credit, err := s.repo.CreditByID(ctx, id)
	if err != nil {
		return entity.Credit{}, fmt.Errorf("get credit %s: %w", id, err)
	}

	if upd.NextPaymentDueDate != nil {
		credit.NextPaymentDueDate = entity.DateOf(*upd.NextPaymentDueDate)
	}

	if upd.IsActive != nil {
		credit.IsActive = *upd.IsActive
	}

	credit.UpdateOverdueStatus(s.now())

	saved, err := s.repo.UpdateCredit(ctx, credit)
	if err != nil {
		return entity.Credit{}, fmt.Errorf("update credit %s: %w", id, err)
	}

	return saved, nil
}

func (s *Service) DeleteCredit(ctx context.Context, id uuid.UUID) error {
	err := s.repo.DeleteCredit(ctx, id)
	if err != nil {
		return fmt.Errorf("delete credit %s: %w", id, err)
	}

	slog.InfoContext(ctx, "credit deleted", "credit_id", id.String())

	return nil
}

// ActivateCredit flips the administrative flag on. The payment schedule and
// the status derivation inputs are untouched.
func (s *Service) ActivateCredit(ctx context.Context, id uuid.UUID) (entity.Credit, error) {
	return s.setActive(ctx, id, true)
}

// DeactivateCredit flips the administrative flag off without altering the
// payment status.
func (s *Service) DeactivateCredit(ctx context.Context, id uuid.UUID) (entity.Credit, error) {
	return s.setActive(ctx, id, false)
}

func (s *Service) setActive(ctx context.Context, id uuid.UUID, isActive bool) (entity.Credit, error) {
	credit, err := s.repo.CreditByID(ctx, id)
	if err != nil {
		return entity.Credit{}, fmt.Errorf("get credit %s: %w", id, err)
	}

	credit.IsActive = isActive

	saved, err := s.repo.UpdateCredit(ctx, credit)
	if err != nil {
		return entity.Credit{}, fmt.Errorf("set credit %s active=%t: %w", id, isActive, err)
	}

	saved.UpdateOverdueStatus(s.now())

	return saved, nil
}
