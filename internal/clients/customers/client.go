package customers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/andeanbank/microservices/credit/internal/entity"
	"github.com/andeanbank/microservices/credit/pkg/transport"
)

const defaultRetryWaitMax = time.Second * 2

// Client talks to the customer directory service. Transport level errors
// are retried; HTTP error statuses are not, the gateway decides what a
// failed classification means.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, retryMax int) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = retryMax
	retryClient.RetryWaitMin = 100 * time.Millisecond
	retryClient.RetryWaitMax = defaultRetryWaitMax
	retryClient.Logger = nil

	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil {
			return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		}

		return false, nil
	}

	retryClient.HTTPClient.Transport = transport.NewRequestIDRoundTripper(http.DefaultTransport)

	return &Client{
		baseURL: baseURL,
		http:    retryClient.StandardClient(),
	}
}

type CustomerTypeResponse struct {
	CustomerType string `json:"customerType"`
}

// CustomerType returns the customer's classification. A 404 maps to
// entity.ErrNotFound so callers can tell an unknown customer from a broken
// downstream.
func (c *Client) CustomerType(ctx context.Context, customerID string) (entity.CreditType, error) {
	reqURL := fmt.Sprintf("%s/customers/%s", c.baseURL, url.PathEscape(customerID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusNotFound {
			return "", fmt.Errorf("customer %s: %w", customerID, entity.ErrNotFound)
		}

		return "", fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, body)
	}

	var data CustomerTypeResponse

	err = json.Unmarshal(body, &data)
	if err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	customerType, err := entity.CreditTypeFromString(data.CustomerType)
	if err != nil {
		return "", fmt.Errorf("customer %s: %w", customerID, err)
	}

	return customerType, nil
}
