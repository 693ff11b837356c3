package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

// Producer publishes credit lifecycle events for the other account
// management services (notifications, reporting). Delivery is best effort:
// failures are logged, never surfaced to the caller.
type Producer struct {
	l     *slog.Logger
	w     *kafka.Writer
	topic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:     l,
		w:     w,
		topic: topic,
	}
}

type CreditCreatedEvent struct {
	Type           string          `json:"type"`
	CreditID       string          `json:"creditId"`
	CreditNumber   string          `json:"creditNumber"`
	CustomerID     string          `json:"customerId"`
	CreditType     string          `json:"creditType"`
	OriginalAmount decimal.Decimal `json:"originalAmount"`
}

func (p *Producer) SendCreditCreated(ctx context.Context, creditID, creditNumber, customerID, creditType string, originalAmount decimal.Decimal) {
	p.send(ctx, creditNumber, CreditCreatedEvent{
		Type:           "credit.created",
		CreditID:       creditID,
		CreditNumber:   creditNumber,
		CustomerID:     customerID,
		CreditType:     creditType,
		OriginalAmount: originalAmount,
	})
}

type PaymentReceivedEvent struct {
	Type                  string          `json:"type"`
	CreditID              string          `json:"creditId"`
	CreditNumber          string          `json:"creditNumber"`
	CustomerID            string          `json:"customerId"`
	Amount                decimal.Decimal `json:"amount"`
	RemainingInstallments int             `json:"remainingInstallments"`
	Status                string          `json:"status"`
}

func (p *Producer) SendPaymentReceived(ctx context.Context, creditID, creditNumber, customerID string, amount decimal.Decimal, remainingInstallments int, status string) {
	p.send(ctx, creditNumber, PaymentReceivedEvent{
		Type:                  "credit.payment_received",
		CreditID:              creditID,
		CreditNumber:          creditNumber,
		CustomerID:            customerID,
		Amount:                amount,
		RemainingInstallments: remainingInstallments,
		Status:                status,
	})
}

func (p *Producer) send(ctx context.Context, key string, event any) {
	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: b,
		Topic: p.topic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}

type infoLogger struct {
	l *slog.Logger
}

func (i *infoLogger) Printf(format string, args ...any) {
	i.l.Debug(fmt.Sprintf(format, args...))
}

type errorLogger struct {
	l *slog.Logger
}

func (e *errorLogger) Printf(format string, args ...any) {
	e.l.Error(fmt.Sprintf(format, args...))
}
