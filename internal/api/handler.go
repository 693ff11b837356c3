package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/andeanbank/microservices/credit/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/handler.go -package=mocks

type Service interface {
	CreateCredit(ctx context.Context, customerID string, originalAmount decimal.Decimal) (entity.Credit, error)
	ProcessPayment(ctx context.Context, creditNumber string, amount decimal.Decimal) (entity.PaymentResult, error)
	CreditBalance(ctx context.Context, creditNumber string) (entity.BalanceSummary, error)
	CheckEligibility(ctx context.Context, customerID string) (entity.Eligibility, error)
	CreditByID(ctx context.Context, id uuid.UUID) (entity.Credit, error)
	CreditByNumber(ctx context.Context, creditNumber string) (entity.Credit, error)
	CreditsByActive(ctx context.Context, isActive bool, customerID string) ([]entity.Credit, error)
	UpdateCredit(ctx context.Context, id uuid.UUID, upd entity.CreditUpdate) (entity.Credit, error)
	DeleteCredit(ctx context.Context, id uuid.UUID) error
	ActivateCredit(ctx context.Context, id uuid.UUID) (entity.Credit, error)
	DeactivateCredit(ctx context.Context, id uuid.UUID) (entity.Credit, error)
}

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{s: s}
}

type CreditResponse struct {
	ID                    uuid.UUID       `json:"id"`
	CreditNumber          string          `json:"creditNumber"`
	CustomerID            string          `json:"customerId"`
	Type                  string          `json:"type"`
	OriginalAmount        decimal.Decimal `json:"originalAmount"`
	CurrentBalance        decimal.Decimal `json:"currentBalance"`
	MonthlyPayment        decimal.Decimal `json:"monthlyPayment"`
	TotalInstallments     int             `json:"totalInstallments"`
	PaidInstallments      int             `json:"paidInstallments"`
	RemainingInstallments int             `json:"remainingInstallments"`
	NextPaymentDueDate    string          `json:"nextPaymentDueDate"`
	FinalDueDate          string          `json:"finalDueDate"`
	IsOverdue             bool            `json:"isOverdue"`
	OverdueDays           int             `json:"overdueDays"`
	Status                string          `json:"status"`
	IsActive              bool            `json:"isActive"`
	CreatedAt             time.Time       `json:"createdAt"`
	UpdatedAt             time.Time       `json:"updatedAt"`
}

func creditToAPI(c entity.Credit) CreditResponse {
	return CreditResponse{
		ID:                    c.ID,
		CreditNumber:          c.CreditNumber,
		CustomerID:            c.CustomerID,
		Type:                  c.Type.String(),
		OriginalAmount:        c.OriginalAmount,
		CurrentBalance:        c.CurrentBalance,
		MonthlyPayment:        c.MonthlyPayment,
		TotalInstallments:     c.TotalInstallments,
		PaidInstallments:      c.PaidInstallments,
		RemainingInstallments: c.RemainingInstallments,
		NextPaymentDueDate:    c.NextPaymentDueDate.Format(time.DateOnly),
		FinalDueDate:          c.FinalDueDate.Format(time.DateOnly),
		IsOverdue:             c.IsOverdue,
		OverdueDays:           c.OverdueDays,
		Status:                c.Status.String(),
		IsActive:              c.IsActive,
		CreatedAt:             c.CreatedAt,
		UpdatedAt:             c.UpdatedAt,
	}
}

func creditsToAPI(credits []entity.Credit) []CreditResponse {
	res := make([]CreditResponse, 0, len(credits))
	for _, c := range credits {
		res = append(res, creditToAPI(c))
	}

	return res
}

type CreateCreditRequest struct {
	CustomerID string          `json:"customerId"`
	Amount     decimal.Decimal `json:"amount"`
}

// CreateCredit originates a new credit. Non-admin callers always open the
// credit for themselves regardless of the customerId in the body.
func (h *Handler) CreateCredit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateCreditRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "VALIDATION_ERROR", "invalid JSON")
		return
	}

	auth, err := entity.AuthFromCtx(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	customerID := req.CustomerID
	if !auth.IsAdmin() {
		customerID = auth.CustomerID
	}

	if customerID == "" {
		SendJSONErr(ctx, w, http.StatusBadRequest, entity.ErrInvalidArgument,
			"VALIDATION_ERROR", "customerId is required")
		return
	}

	credit, err := h.s.CreateCredit(ctx, customerID, req.Amount)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, creditToAPI(credit))
}

// Credits lists credits by the isActive flag. Non-admin callers only see
// their own credits whatever customerId they pass.
func (h *Handler) Credits(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	isActive := true

	if q := r.URL.Query().Get("isActive"); q != "" {
		switch q {
		case "true":
			isActive = true
		case "false":
			isActive = false
		default:
			SendJSONErr(ctx, w, http.StatusBadRequest, fmt.Errorf("invalid isActive %q", q),
				"VALIDATION_ERROR", "isActive must be true or false")
			return
		}
	}

	auth, err := entity.AuthFromCtx(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	customerID := r.URL.Query().Get("customerId")
	if !auth.IsAdmin() {
		customerID = auth.CustomerID
	}

	credits, err := h.s.CreditsByActive(ctx, isActive, customerID)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, creditsToAPI(credits))
}

func (h *Handler) CreditByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "VALIDATION_ERROR", "'id' must be a UUID")
		return
	}

	credit, err := h.s.CreditByID(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, creditToAPI(credit))
}

func (h *Handler) CreditByNumber(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	credit, err := h.s.CreditByNumber(ctx, chi.URLParam(r, "creditNumber"))
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, creditToAPI(credit))
}

type UpdateCreditRequest struct {
	NextPaymentDueDate *string `json:"nextPaymentDueDate"` // YYYY-MM-DD
	IsActive           *bool   `json:"isActive"`
}

func (h *Handler) UpdateCredit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "VALIDATION_ERROR", "'id' must be a UUID")
		return
	}

	var req UpdateCreditRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "VALIDATION_ERROR", "invalid JSON")
		return
	}

	var upd entity.CreditUpdate

	if req.NextPaymentDueDate != nil {
		due, err := time.Parse(time.DateOnly, *req.NextPaymentDueDate)
		if err != nil {
			SendJSONErr(ctx, w, http.StatusBadRequest, err,
				"VALIDATION_ERROR", "nextPaymentDueDate must be YYYY-MM-DD")
			return
		}

		upd.NextPaymentDueDate = &due
	}

	upd.IsActive = req.IsActive

	credit, err := h.s.UpdateCredit(ctx, id, upd)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, creditToAPI(credit))
}

func (h *Handler) DeleteCredit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "VALIDATION_ERROR", "'id' must be a UUID")
		return
	}

	err = h.s.DeleteCredit(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ActivateCredit(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, h.s.ActivateCredit)
}

func (h *Handler) DeactivateCredit(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, h.s.DeactivateCredit)
}

func (h *Handler) setActive(w http.ResponseWriter, r *http.Request,
	op func(ctx context.Context, id uuid.UUID) (entity.Credit, error),
) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "VALIDATION_ERROR", "'id' must be a UUID")
		return
	}

	credit, err := op(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, creditToAPI(credit))
}

type ProcessPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type PaymentResponse struct {
	Success               bool            `json:"success"`
	CreditID              uuid.UUID       `json:"creditId"`
	CreditNumber          string          `json:"creditNumber"`
	RequestedAmount       decimal.Decimal `json:"requestedAmount"`
	PaidAmount            decimal.Decimal `json:"paidAmount"`
	BalanceAfter          decimal.Decimal `json:"balanceAfter"`
	PaidInstallments      int             `json:"paidInstallments"`
	RemainingInstallments int             `json:"remainingInstallments"`
	Status                string          `json:"status"`
	ErrorCode             string          `json:"errorCode,omitempty"`
	ErrorMessage          string          `json:"errorMessage,omitempty"`
	ProcessedAt           time.Time       `json:"processedAt"`
}

// ProcessPayment applies one installment payment. A rejected payment is a
// 200 with success=false and a stable errorCode, not an HTTP error.
func (h *Handler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ProcessPaymentRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "VALIDATION_ERROR", "invalid JSON")
		return
	}

	result, err := h.s.ProcessPayment(ctx, chi.URLParam(r, "creditNumber"), req.Amount)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, PaymentResponse{
		Success:               result.Success,
		CreditID:              result.CreditID,
		CreditNumber:          result.CreditNumber,
		RequestedAmount:       result.RequestedAmount,
		PaidAmount:            result.PaidAmount,
		BalanceAfter:          result.BalanceAfter,
		PaidInstallments:      result.PaidInstallments,
		RemainingInstallments: result.RemainingInstallments,
		Status:                result.Status.String(),
		ErrorCode:             result.ErrorCode.String(),
		ErrorMessage:          result.ErrorMessage,
		ProcessedAt:           result.ProcessedAt,
	})
}

type BalanceResponse struct {
	CreditID              uuid.UUID       `json:"creditId"`
	CreditNumber          string          `json:"creditNumber"`
	OriginalAmount        decimal.Decimal `json:"originalAmount"`
	CurrentBalance        decimal.Decimal `json:"currentBalance"`
	MonthlyPayment        decimal.Decimal `json:"monthlyPayment"`
	TotalInstallments     int             `json:"totalInstallments"`
	PaidInstallments      int             `json:"paidInstallments"`
	RemainingInstallments int             `json:"remainingInstallments"`
	NextPaymentDueDate    string          `json:"nextPaymentDueDate"`
	IsOverdue             bool            `json:"isOverdue"`
	OverdueDays           int             `json:"overdueDays"`
	PaymentProgress       decimal.Decimal `json:"paymentProgress"`
	Status                string          `json:"status"`
	IsActive              bool            `json:"isActive"`
}

func (h *Handler) CreditBalance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	balance, err := h.s.CreditBalance(ctx, chi.URLParam(r, "creditNumber"))
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, BalanceResponse{
		CreditID:              balance.CreditID,
		CreditNumber:          balance.CreditNumber,
		OriginalAmount:        balance.OriginalAmount,
		CurrentBalance:        balance.CurrentBalance,
		MonthlyPayment:        balance.MonthlyPayment,
		TotalInstallments:     balance.TotalInstallments,
		PaidInstallments:      balance.PaidInstallments,
		RemainingInstallments: balance.RemainingInstallments,
		NextPaymentDueDate:    balance.NextPaymentDueDate.Format(time.DateOnly),
		IsOverdue:             balance.IsOverdue,
		OverdueDays:           balance.OverdueDays,
		PaymentProgress:       balance.PaymentProgress,
		Status:                balance.Status.String(),
		IsActive:              balance.IsActive,
	})
}

type EligibilityCheckResponse struct {
	CustomerID      string    `json:"customerId"`
	Eligible        bool      `json:"eligible"`
	OverdueProducts []string  `json:"overdueProducts"`
	CheckedAt       time.Time `json:"checkedAt"`
}

// CheckEligibility reports whether the customer is clear of overdue debt on
// their credits here. Peer services call this the same way this service
// calls the card service.
func (h *Handler) CheckEligibility(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	eligibility, err := h.s.CheckEligibility(ctx, chi.URLParam(r, "customerId"))
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, EligibilityCheckResponse{
		CustomerID:      eligibility.CustomerID,
		Eligible:        eligibility.Eligible,
		OverdueProducts: eligibility.OverdueProducts,
		CheckedAt:       eligibility.CheckedAt,
	})
}

// HealthHandler - returns service health status.
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("OK\n"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "INTERNAL_ERROR", "health check failed")
		return
	}
}
