package cards

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/andeanbank/microservices/credit/internal/entity"
	"github.com/andeanbank/microservices/credit/pkg/transport"
)

// Client talks to the card service. No transport retries here: eligibility
// failures are absorbed by the gateway's conservative fallback anyway.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Transport: transport.NewRequestIDRoundTripper(http.DefaultTransport),
		},
	}
}

type EligibilityResponse struct {
	Eligible bool `json:"eligible"`
}

// CustomerEligibility asks whether the customer has overdue debt on other
// card products. The caller identity headers are forwarded when present.
func (c *Client) CustomerEligibility(ctx context.Context, customerID string) (entity.CustomerEligibility, error) {
	reqURL := fmt.Sprintf("%s/api/v1/credit-cards/customers/%s/product-eligibility",
		c.baseURL, url.PathEscape(customerID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return entity.CustomerEligibility{}, fmt.Errorf("create request: %w", err)
	}

	if auth, err := entity.AuthFromCtx(ctx); err == nil {
		req.Header.Set("X-Customer-Id", auth.CustomerID)
		req.Header.Set("X-User-Role", auth.UserRole)
		req.Header.Set("X-User-Id", auth.UserID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return entity.CustomerEligibility{}, fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return entity.CustomerEligibility{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusNotFound {
			return entity.CustomerEligibility{}, fmt.Errorf("customer %s: %w", customerID, entity.ErrNotFound)
		}

		return entity.CustomerEligibility{}, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, body)
	}

	var data EligibilityResponse

	err = json.Unmarshal(body, &data)
	if err != nil {
		return entity.CustomerEligibility{}, fmt.Errorf("decode response: %w", err)
	}

	return entity.CustomerEligibility{Eligible: data.Eligible}, nil
}
