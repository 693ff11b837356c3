package transport_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/andeanbank/microservices/credit/pkg/logger"
	"github.com/andeanbank/microservices/credit/pkg/transport"
)

func TestRequestIDRoundTripper_RoundTrip(t *testing.T) {
	t.Parallel()

	var gotRequestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Request-Id")
	}))
	t.Cleanup(server.Close)

	client := &http.Client{
		Timeout:   10 * time.Second,
		Transport: transport.NewRequestIDRoundTripper(http.DefaultTransport),
	}

	ctx := logger.WithRequestID(context.Background(), "req-42")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, "req-42", gotRequestID)
}

func TestRequestIDRoundTripper_NoRequestID(t *testing.T) {
	t.Parallel()

	var sawHeader bool

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawHeader = r.Header["X-Request-Id"]
	}))
	t.Cleanup(server.Close)

	client := &http.Client{
		Timeout:   10 * time.Second,
		Transport: transport.NewRequestIDRoundTripper(http.DefaultTransport),
	}

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.False(t, sawHeader)
}
