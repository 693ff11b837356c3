package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/andeanbank/microservices/credit/internal/entity"
)

var creditColumns = []string{
	"id",
	"credit_number",
	"customer_id",
	"type",
	"original_amount",
	"current_balance",
	"monthly_payment",
	"total_installments",
	"paid_installments",
	"remaining_installments",
	"next_payment_due_date",
	"final_due_date",
	"is_overdue",
	"overdue_days",
	"status",
	"is_active",
	"created_at",
	"updated_at",
}

var selectCredit = "SELECT " + strings.Join(creditColumns, ", ") + " FROM credits"

func scanCredit(row pgx.Row) (c entity.Credit, err error) {
	err = row.Scan(
		&c.ID,
		&c.CreditNumber,
		&c.CustomerID,
		&c.Type,
		&c.OriginalAmount,
		&c.CurrentBalance,
		&c.MonthlyPayment,
		&c.TotalInstallments,
		&c.PaidInstallments,
		&c.RemainingInstallments,
		&c.NextPaymentDueDate,
		&c.FinalDueDate,
		&c.IsOverdue,
		&c.OverdueDays,
		&c.Status,
		&c.IsActive,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Credit{}, entity.ErrNotFound
		}

		return entity.Credit{}, err
	}

	return c, nil
}
