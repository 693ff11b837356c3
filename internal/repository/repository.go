package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/andeanbank/microservices/credit/internal/entity"
)

const (
	uniqueViolationCode = "23505"

	creditNumberIndex      = "ux_credits_credit_number"
	onePersonalActiveIndex = "ux_credits_one_active_personal"
)

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

// CreateCredit inserts a credit and fills in the storage assigned fields
// (id, created_at, updated_at). Unique index violations are mapped to
// entity.ErrDuplicateCreditNumber and entity.ErrPersonalCreditLimit.
func (r *Repository) CreateCredit(ctx context.Context, c entity.Credit) (entity.Credit, error) {
	const q = `
	INSERT INTO credits (
		credit_number,
		customer_id,
		type,
		original_amount,
		current_balance,
		monthly_payment,
		total_installments,
		paid_installments,
		remaining_installments,
		next_payment_due_date,
		final_due_date,
		is_overdue,
		overdue_days,
		status,
		is_active
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(
		ctx,
		q,
		c.CreditNumber,
		c.CustomerID,
		c.Type,
		c.OriginalAmount,
		c.CurrentBalance,
		c.MonthlyPayment,
		c.TotalInstallments,
		c.PaidInstallments,
		c.RemainingInstallments,
		c.NextPaymentDueDate,
		c.FinalDueDate,
		c.IsOverdue,
		c.OverdueDays,
		c.Status,
		c.IsActive,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return entity.Credit{}, mapUniqueViolation(err)
	}

	return c, nil
}

// UpdateCredit saves the mutable fields of an existing credit. The credit
// number and original amount are immutable and deliberately not updated.
func (r *Repository) UpdateCredit(ctx context.Context, c entity.Credit) (entity.Credit, error) {
	const q = `
	UPDATE credits SET
		current_balance = $1,
		paid_installments = $2,
		remaining_installments = $3,
		next_payment_due_date = $4,
		is_overdue = $5,
		overdue_days = $6,
		status = $7,
		is_active = $8,
		updated_at = now()
	WHERE id = $9
	RETURNING updated_at
	`

	err := r.db.QueryRow(
		ctx,
		q,
		c.CurrentBalance,
		c.PaidInstallments,
		c.RemainingInstallments,
		c.NextPaymentDueDate,
		c.IsOverdue,
		c.OverdueDays,
		c.Status,
		c.IsActive,
		c.ID,
	).Scan(&c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Credit{}, entity.ErrNotFound
		}

		return entity.Credit{}, mapUniqueViolation(err)
	}

	return c, nil
}

func (r *Repository) DeleteCredit(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM credits WHERE id = $1`

	result, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) CreditByID(ctx context.Context, id uuid.UUID) (entity.Credit, error) {
	q := selectCredit + " WHERE id = $1"
	return scanCredit(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) CreditByNumber(ctx context.Context, creditNumber string) (entity.Credit, error) {
	q := selectCredit + " WHERE credit_number = $1"
	return scanCredit(r.db.QueryRow(ctx, q, creditNumber))
}

func (r *Repository) CreditNumberExists(ctx context.Context, creditNumber string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM credits WHERE credit_number = $1)`

	var exists bool

	err := r.db.QueryRow(ctx, q, creditNumber).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// CountActiveCreditsByCustomer counts credits that are administratively
// active, in ACTIVE status and not fully paid.
func (r *Repository) CountActiveCreditsByCustomer(ctx context.Context, customerID string) (int64, error) {
	const q = `
	SELECT COUNT(*) FROM credits
	WHERE customer_id = $1 AND is_active AND status = $2 AND remaining_installments > 0`

	var count int64

	err := r.db.QueryRow(ctx, q, customerID, entity.CreditStatusActive).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *Repository) CreditsByActive(ctx context.Context, isActive bool) ([]entity.Credit, error) {
	return r.credits(ctx, sq.Eq{"is_active": isActive})
}

func (r *Repository) CreditsByActiveAndCustomer(ctx context.Context, isActive bool, customerID string) ([]entity.Credit, error) {
	return r.credits(ctx, sq.Eq{"is_active": isActive, "customer_id": customerID})
}

func (r *Repository) CreditsByCustomer(ctx context.Context, customerID string) ([]entity.Credit, error) {
	return r.credits(ctx, sq.Eq{"customer_id": customerID})
}

func (r *Repository) credits(ctx context.Context, where sq.Eq) ([]entity.Credit, error) {
	stmt := sq.Select(creditColumns...).
		From("credits").
		Where(where).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)

	query, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var credits []entity.Credit

	for rows.Next() {
		c, err := scanCredit(rows)
		if err != nil {
			return nil, err
		}

		credits = append(credits, c)
	}

	return credits, rows.Err()
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError

	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolationCode {
		return err
	}

	switch pgErr.ConstraintName {
	case creditNumberIndex:
		return fmt.Errorf("%w: %s", entity.ErrDuplicateCreditNumber, pgErr.ConstraintName)
	case onePersonalActiveIndex:
		return fmt.Errorf("%w: %s", entity.ErrPersonalCreditLimit, pgErr.ConstraintName)
	default:
		return err
	}
}
