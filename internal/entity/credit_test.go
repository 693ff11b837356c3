package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/andeanbank/microservices/credit/internal/entity"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestValidateCreditAmount(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name    string
		amount  string
		wantErr bool
	}{
		{name: "lower bound", amount: "5000.00", wantErr: false},
		{name: "upper bound", amount: "100000.00", wantErr: false},
		{name: "middle", amount: "12000", wantErr: false},
		{name: "two decimals", amount: "9999.99", wantErr: false},
		{name: "below range", amount: "4999.99", wantErr: true},
		{name: "above range", amount: "100000.01", wantErr: true},
		{name: "zero", amount: "0", wantErr: true},
		{name: "negative", amount: "-5000", wantErr: true},
		{name: "three decimals", amount: "5000.001", wantErr: true},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := entity.ValidateCreditAmount(decimal.RequireFromString(tt.amount))
			if tt.wantErr {
				require.ErrorIs(t, err, entity.ErrInvalidArgument)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestCredit_Initialize(t *testing.T) {
	t.Parallel()

	now := date(2025, time.March, 15)

	for _, tt := range []struct {
		name        string
		amount      string
		wantMonthly string
	}{
		{name: "even division", amount: "12000.00", wantMonthly: "1000.00"},
		{name: "rounding half up", amount: "10000.00", wantMonthly: "833.33"},
		{name: "minimum amount", amount: "5000.00", wantMonthly: "416.67"},
		{name: "maximum amount", amount: "100000.00", wantMonthly: "8333.33"},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := entity.Credit{OriginalAmount: decimal.RequireFromString(tt.amount)}
			c.Initialize(now)

			require.Equal(t, tt.wantMonthly, c.MonthlyPayment.StringFixed(2))
			require.True(t, c.CurrentBalance.Equal(c.OriginalAmount))
			require.Equal(t, entity.TotalInstallments, c.TotalInstallments)
			require.Equal(t, entity.TotalInstallments, c.RemainingInstallments)
			require.Zero(t, c.PaidInstallments)
			require.Equal(t, entity.CreditStatusActive, c.Status)
			require.True(t, c.IsActive)
			require.False(t, c.IsOverdue)
			require.Equal(t, date(2025, time.April, 15), c.NextPaymentDueDate)
			require.Equal(t, date(2026, time.March, 15), c.FinalDueDate)
		})
	}
}

func TestCredit_Initialize_EndOfMonthClamping(t *testing.T) {
	t.Parallel()

	c := entity.Credit{OriginalAmount: decimal.RequireFromString("12000.00")}
	c.Initialize(date(2025, time.January, 31))

	// February has no 31st.
	require.Equal(t, date(2025, time.February, 28), c.NextPaymentDueDate)
	require.Equal(t, date(2026, time.January, 31), c.FinalDueDate)
}

func TestCredit_ApplyPayment(t *testing.T) {
	t.Parallel()

	now := date(2025, time.March, 15)

	newCredit := func() entity.Credit {
		c := entity.Credit{OriginalAmount: decimal.RequireFromString("12000.00")}
		c.Initialize(now)

		return c
	}

	t.Run("exact installment", func(t *testing.T) {
		t.Parallel()

		c := newCredit()

		ok := c.ApplyPayment(decimal.RequireFromString("1000.00"), now)
		require.True(t, ok)
		require.Equal(t, "11000.00", c.CurrentBalance.StringFixed(2))
		require.Equal(t, 1, c.PaidInstallments)
		require.Equal(t, 11, c.RemainingInstallments)
		require.Equal(t, date(2025, time.May, 15), c.NextPaymentDueDate)
	})

	t.Run("overpayment deducts only the installment", func(t *testing.T) {
		t.Parallel()

		c := newCredit()

		ok := c.ApplyPayment(decimal.RequireFromString("5000.00"), now)
		require.True(t, ok)
		require.Equal(t, "11000.00", c.CurrentBalance.StringFixed(2))
		require.Equal(t, 1, c.PaidInstallments)
	})

	t.Run("insufficient amount leaves credit untouched", func(t *testing.T) {
		t.Parallel()

		c := newCredit()
		before := c

		ok := c.ApplyPayment(decimal.RequireFromString("999.99"), now)
		require.False(t, ok)
		require.Equal(t, before, c)
	})

	t.Run("full repayment over twelve installments", func(t *testing.T) {
		t.Parallel()

		c := newCredit()

		for i := 0; i < entity.TotalInstallments; i++ {
			ok := c.ApplyPayment(c.MonthlyPayment, now)
			require.True(t, ok)
		}

		require.True(t, c.FullyPaid())
		require.True(t, c.CurrentBalance.IsZero())
		require.Equal(t, entity.CreditStatusPaid, c.Status)
		// The schedule stops advancing at the last installment.
		require.Equal(t, date(2026, time.March, 15), c.NextPaymentDueDate)
	})

	t.Run("installments always sum to the original amount", func(t *testing.T) {
		t.Parallel()

		// 10000/12 rounds, so the recorded deductions drift from the
		// original amount by the rounding remainder only.
		c := entity.Credit{OriginalAmount: decimal.RequireFromString("10000.00")}
		c.Initialize(now)

		paid := decimal.Zero
		for i := 0; i < entity.TotalInstallments; i++ {
			require.True(t, c.ApplyPayment(c.MonthlyPayment, now))
			paid = paid.Add(c.MonthlyPayment)
		}

		require.True(t, c.FullyPaid())
		require.Equal(t, "9999.96", paid.StringFixed(2))
		require.Equal(t, "0.04", c.CurrentBalance.StringFixed(2))
	})
}

func TestCredit_UpdateOverdueStatus(t *testing.T) {
	t.Parallel()

	start := date(2025, time.March, 15)

	for _, tt := range []struct {
		name        string
		now         time.Time
		isActive    bool
		wantOverdue bool
		wantDays    int
		wantStatus  entity.CreditStatus
	}{
		{
			name:       "due date not reached",
			now:        date(2025, time.April, 14),
			isActive:   true,
			wantStatus: entity.CreditStatusActive,
		},
		{
			name:       "on the due date",
			now:        date(2025, time.April, 15),
			isActive:   true,
			wantStatus: entity.CreditStatusActive,
		},
		{
			name:        "one day late",
			now:         date(2025, time.April, 16),
			isActive:    true,
			wantOverdue: true,
			wantDays:    1,
			wantStatus:  entity.CreditStatusOverdue,
		},
		{
			name:        "thirty days late",
			now:         date(2025, time.May, 15),
			isActive:    true,
			wantOverdue: true,
			wantDays:    30,
			wantStatus:  entity.CreditStatusOverdue,
		},
		{
			name:        "overdue while deactivated",
			now:         date(2025, time.April, 16),
			isActive:    false,
			wantOverdue: true,
			wantDays:    1,
			wantStatus:  entity.CreditStatusOverdue,
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := entity.Credit{OriginalAmount: decimal.RequireFromString("12000.00")}
			c.Initialize(start)
			c.IsActive = tt.isActive

			c.UpdateOverdueStatus(tt.now)

			require.Equal(t, tt.wantOverdue, c.IsOverdue)
			require.Equal(t, tt.wantDays, c.OverdueDays)
			require.Equal(t, tt.wantStatus, c.Status)
		})
	}
}

func TestCredit_UpdateOverdueStatus_Idempotent(t *testing.T) {
	t.Parallel()

	c := entity.Credit{OriginalAmount: decimal.RequireFromString("12000.00")}
	c.Initialize(date(2025, time.March, 15))

	now := date(2025, time.June, 1)

	c.UpdateOverdueStatus(now)
	first := c

	c.UpdateOverdueStatus(now)
	require.Equal(t, first, c)
}

func TestCredit_PaymentProgress(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name string
		paid int
		want string
	}{
		{name: "none paid", paid: 0, want: "0.00"},
		{name: "one of twelve", paid: 1, want: "8.33"},
		{name: "half", paid: 6, want: "50.00"},
		{name: "all paid", paid: 12, want: "100.00"},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := entity.Credit{
				TotalInstallments: entity.TotalInstallments,
				PaidInstallments:  tt.paid,
			}

			require.Equal(t, tt.want, c.PaymentProgress().StringFixed(2))
		})
	}
}

func TestDateOf(t *testing.T) {
	t.Parallel()

	moscow := time.FixedZone("MSK", 3*60*60)

	got := entity.DateOf(time.Date(2025, time.March, 15, 1, 30, 0, 0, moscow))
	require.Equal(t, date(2025, time.March, 14), got)
}
