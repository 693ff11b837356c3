package cards_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andeanbank/microservices/credit/internal/clients/cards"
	"github.com/andeanbank/microservices/credit/internal/entity"
)

func TestClient_CustomerEligibility(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/v1/credit-cards/customers/cust-1/product-eligibility", r.URL.Path)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"eligible": true}`))
	}))
	t.Cleanup(server.Close)

	c := cards.NewClient(server.URL)

	got, err := c.CustomerEligibility(context.Background(), "cust-1")
	require.NoError(t, err)
	require.True(t, got.Eligible)
}

func TestClient_CustomerEligibility_ForwardsIdentity(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "cust-1", r.Header.Get("X-Customer-Id"))
		require.Equal(t, entity.RoleCustomer, r.Header.Get("X-User-Role"))
		require.Equal(t, "user-1", r.Header.Get("X-User-Id"))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"eligible": false}`))
	}))
	t.Cleanup(server.Close)

	c := cards.NewClient(server.URL)

	ctx := entity.CtxWithAuth(context.Background(), entity.AuthHeaders{
		CustomerID: "cust-1",
		UserRole:   entity.RoleCustomer,
		UserID:     "user-1",
	})

	got, err := c.CustomerEligibility(ctx, "cust-1")
	require.NoError(t, err)
	require.False(t, got.Eligible)
}

func TestClient_CustomerEligibility_NotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	c := cards.NewClient(server.URL)

	_, err := c.CustomerEligibility(context.Background(), "ghost")
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestClient_CustomerEligibility_ServerError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	c := cards.NewClient(server.URL)

	_, err := c.CustomerEligibility(context.Background(), "cust-1")
	require.Error(t, err)
}
