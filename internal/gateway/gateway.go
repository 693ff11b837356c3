package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/andeanbank/microservices/credit/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=gateway.go -destination=../mocks/gateway.go -package=mocks

type CustomerClient interface {
	CustomerType(ctx context.Context, customerID string) (entity.CreditType, error)
}

type CardClient interface {
	CustomerEligibility(ctx context.Context, customerID string) (entity.CustomerEligibility, error)
}

type Config struct {
	CustomerTimeout time.Duration
	CardTimeout     time.Duration
	Interval        time.Duration
	Cooldown        time.Duration
	MinRequests     uint32
	FailureRatio    float64
}

// Gateway guards the two downstream services with independent timeouts and
// circuit breakers. The fallback policy is asymmetric: classification
// failures block the caller, eligibility failures degrade to "not
// eligible".
type Gateway struct {
	customers CustomerClient
	cards     CardClient
	cfg       Config

	customerBreaker *gobreaker.CircuitBreaker[entity.CreditType]
	cardBreaker     *gobreaker.CircuitBreaker[entity.CustomerEligibility]
}

func New(customers CustomerClient, cards CardClient, cfg Config) *Gateway {
	g := &Gateway{
		customers: customers,
		cards:     cards,
		cfg:       cfg,
	}

	g.customerBreaker = gobreaker.NewCircuitBreaker[entity.CreditType](
		g.breakerSettings("customer-service"))
	g.cardBreaker = gobreaker.NewCircuitBreaker[entity.CustomerEligibility](
		g.breakerSettings("card-service"))

	return g
}

func (g *Gateway) breakerSettings(name string) gobreaker.Settings {
	return gobreaker.Settings{
		Name:     name,
		Interval: g.cfg.Interval,
		Timeout:  g.cfg.Cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < g.cfg.MinRequests {
				return false
			}

			return float64(counts.TotalFailures)/float64(counts.Requests) >= g.cfg.FailureRatio
		},
		// An unknown customer is a valid answer, not a downstream failure.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, entity.ErrNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("circuit breaker state change", "breaker", name, "from", from.String(), "to", to.String())
		},
	}
}

// CustomerType classifies the customer. Classification gates the security
// relevant type decision, so any failure here blocks the caller with
// entity.ErrCustomerUnavailable; only a clean 404 passes through as
// entity.ErrNotFound.
func (g *Gateway) CustomerType(ctx context.Context, customerID string) (entity.CreditType, error) {
	customerType, err := g.customerBreaker.Execute(func() (entity.CreditType, error) {
		callCtx, cancel := context.WithTimeout(ctx, g.cfg.CustomerTimeout)
		defer cancel()

		return g.customers.CustomerType(callCtx, customerID)
	})
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return "", err
		}

		slog.WarnContext(ctx, "customer service call failed, blocking operation",
			"customer_id", customerID, "error", err)

		return "", fmt.Errorf("classify customer %s: %w", customerID, entity.ErrCustomerUnavailable)
	}

	return customerType, nil
}

// CustomerEligibility checks the customer's standing on other products.
// Never fails: timeouts, open breakers and downstream errors all degrade to
// the conservative "not eligible" verdict, logged here.
func (g *Gateway) CustomerEligibility(ctx context.Context, customerID string) entity.CustomerEligibility {
	eligibility, err := g.cardBreaker.Execute(func() (entity.CustomerEligibility, error) {
		callCtx, cancel := context.WithTimeout(ctx, g.cfg.CardTimeout)
		defer cancel()

		return g.cards.CustomerEligibility(callCtx, customerID)
	})
	if err != nil {
		slog.WarnContext(ctx, "card service call failed, falling back to not eligible",
			"customer_id", customerID, "error", err)

		return entity.CustomerEligibility{Eligible: false}
	}

	return eligibility
}
