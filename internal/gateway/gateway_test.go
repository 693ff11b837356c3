package gateway_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/andeanbank/microservices/credit/internal/entity"
	"github.com/andeanbank/microservices/credit/internal/gateway"
	"github.com/andeanbank/microservices/credit/internal/mocks"
)

func testConfig() gateway.Config {
	return gateway.Config{
		CustomerTimeout: 50 * time.Millisecond,
		CardTimeout:     50 * time.Millisecond,
		Interval:        time.Minute,
		Cooldown:        time.Minute,
		MinRequests:     3,
		FailureRatio:    0.5,
	}
}

type Tester struct {
	g         *gateway.Gateway
	customers *mocks.MockCustomerClient
	cards     *mocks.MockCardClient
}

func newTester(t *testing.T, cfg gateway.Config) Tester {
	t.Helper()

	ctrl := gomock.NewController(t)
	customers := mocks.NewMockCustomerClient(ctrl)
	cards := mocks.NewMockCardClient(ctrl)

	return Tester{
		g:         gateway.New(customers, cards, cfg),
		customers: customers,
		cards:     cards,
	}
}

func TestGateway_CustomerType(t *testing.T) {
	t.Parallel()

	c := newTester(t, testConfig())

	c.customers.EXPECT().CustomerType(gomock.Any(), "cust-1").
		Return(entity.CreditTypeEnterprise, nil)

	got, err := c.g.CustomerType(context.Background(), "cust-1")
	require.NoError(t, err)
	require.Equal(t, entity.CreditTypeEnterprise, got)
}

func TestGateway_CustomerType_NotFoundPassesThrough(t *testing.T) {
	t.Parallel()

	c := newTester(t, testConfig())

	// An unknown customer is a business answer, repeated 404s must not be
	// masked as unavailability and must not trip the breaker.
	c.customers.EXPECT().CustomerType(gomock.Any(), "ghost").
		Return(entity.CreditType(""), entity.ErrNotFound).Times(10)

	for i := 0; i < 10; i++ {
		_, err := c.g.CustomerType(context.Background(), "ghost")
		require.ErrorIs(t, err, entity.ErrNotFound)
		require.NotErrorIs(t, err, entity.ErrCustomerUnavailable)
	}
}

func TestGateway_CustomerType_FailureBlocks(t *testing.T) {
	t.Parallel()

	c := newTester(t, testConfig())

	c.customers.EXPECT().CustomerType(gomock.Any(), "cust-1").
		Return(entity.CreditType(""), errors.New("connection refused"))

	_, err := c.g.CustomerType(context.Background(), "cust-1")
	require.ErrorIs(t, err, entity.ErrCustomerUnavailable)
}

func TestGateway_CustomerType_TimeoutBlocks(t *testing.T) {
	t.Parallel()

	c := newTester(t, testConfig())

	c.customers.EXPECT().CustomerType(gomock.Any(), "cust-1").DoAndReturn(
		func(ctx context.Context, _ string) (entity.CreditType, error) {
			<-ctx.Done()
			return "", ctx.Err()
		})

	_, err := c.g.CustomerType(context.Background(), "cust-1")
	require.ErrorIs(t, err, entity.ErrCustomerUnavailable)
}

func TestGateway_CustomerType_BreakerOpens(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	c := newTester(t, cfg)

	c.customers.EXPECT().CustomerType(gomock.Any(), "cust-1").
		Return(entity.CreditType(""), errors.New("connection refused")).
		Times(int(cfg.MinRequests))

	for i := 0; i < int(cfg.MinRequests); i++ {
		_, err := c.g.CustomerType(context.Background(), "cust-1")
		require.ErrorIs(t, err, entity.ErrCustomerUnavailable)
	}

	// The breaker is open now: no further downstream calls are made.
	_, err := c.g.CustomerType(context.Background(), "cust-1")
	require.ErrorIs(t, err, entity.ErrCustomerUnavailable)
}

func TestGateway_CustomerEligibility(t *testing.T) {
	t.Parallel()

	c := newTester(t, testConfig())

	c.cards.EXPECT().CustomerEligibility(gomock.Any(), "cust-1").
		Return(entity.CustomerEligibility{Eligible: true}, nil)

	got := c.g.CustomerEligibility(context.Background(), "cust-1")
	require.True(t, got.Eligible)
}

func TestGateway_CustomerEligibility_FailureFallsBack(t *testing.T) {
	t.Parallel()

	c := newTester(t, testConfig())

	c.cards.EXPECT().CustomerEligibility(gomock.Any(), "cust-1").
		Return(entity.CustomerEligibility{}, errors.New("connection refused"))

	got := c.g.CustomerEligibility(context.Background(), "cust-1")
	require.False(t, got.Eligible)
}

func TestGateway_CustomerEligibility_TimeoutFallsBack(t *testing.T) {
	t.Parallel()

	c := newTester(t, testConfig())

	c.cards.EXPECT().CustomerEligibility(gomock.Any(), "cust-1").DoAndReturn(
		func(ctx context.Context, _ string) (entity.CustomerEligibility, error) {
			<-ctx.Done()
			return entity.CustomerEligibility{}, ctx.Err()
		})

	got := c.g.CustomerEligibility(context.Background(), "cust-1")
	require.False(t, got.Eligible)
}

func TestGateway_IndependentBreakers(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	c := newTester(t, cfg)

	// Open the card breaker.
	c.cards.EXPECT().CustomerEligibility(gomock.Any(), "cust-1").
		Return(entity.CustomerEligibility{}, errors.New("connection refused")).
		Times(int(cfg.MinRequests))

	for i := 0; i < int(cfg.MinRequests); i++ {
		got := c.g.CustomerEligibility(context.Background(), "cust-1")
		require.False(t, got.Eligible)
	}

	// The customer breaker is unaffected.
	c.customers.EXPECT().CustomerType(gomock.Any(), "cust-1").
		Return(entity.CreditTypePersonal, nil)

	got, err := c.g.CustomerType(context.Background(), "cust-1")
	require.NoError(t, err)
	require.Equal(t, entity.CreditTypePersonal, got)
}
