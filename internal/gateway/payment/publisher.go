package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/Gunvolt24/wb_tickets/internal/ports"
	"github.com/Gunvolt24/wb_tickets/pkg/ctxmeta"
	"github.com/Gunvolt24/wb_tickets/pkg/httpx"
	"github.com/Gunvolt24/wb_tickets/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

// Проверка, что Publisher удовлетворяет порту оплаты.
var _ ports.TicketPaymentService = (*Publisher)(nil)

// writer — контракт над kafka.Writer, чтобы подменять его моками.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Request — команда на оплату, которую читает платёжный сервис.
type Request struct {
	AccountID   int64     `json:"account_id"`
	Amount      int       `json:"amount"`
	RequestID   string    `json:"request_id,omitempty"`
	RequestedAt time.Time `json:"requested_at"`
}

// Publisher — адаптер оплаты: публикует команду в топик платежей.
// Синхронная запись: MakePayment возвращается только после подтверждения брокера.
type Publisher struct {
	writer writer
	topic  string
	log    ports.Logger
	now    func() time.Time
}

// Config — параметры записи в топик платежей.
type Config struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
}

// NewPublisher — kafka.Writer с подтверждением от всех реплик и ключом по account_id.
func NewPublisher(cfg *Config, log ports.Logger) *Publisher {
	wt := cfg.WriteTimeout
	if wt <= 0 {
		wt = 5 * time.Second
	}
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		WriteTimeout: wt,
	}
	return newPublisher(w, cfg.Topic, log)
}

func newPublisher(w writer, topic string, log ports.Logger) *Publisher {
	return &Publisher{writer: w, topic: topic, log: log, now: time.Now}
}

// MakePayment — одна команда на оплату на вызов.
func (p *Publisher) MakePayment(ctx context.Context, accountID int64, amount int) error {
	req := Request{AccountID: accountID, Amount: amount, RequestedAt: p.now().UTC()}
	if rid, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		req.RequestID = rid
	}

	value, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal payment request: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(accountID, 10)),
		Value: value,
	}
	if req.RequestID != "" {
		msg.Headers = []kafka.Header{{Key: httpx.HeaderRequestID, Value: []byte(req.RequestID)}}
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish payment account=%d: %w", accountID, err)
	}
	metrics.KafkaMessagesProduced.WithLabelValues(p.topic).Inc()
	p.log.Infof(ctx, "payment requested account=%d amount=%d", accountID, amount)
	return nil
}

// Close — закрывает writer, дожидаясь отправки буфера.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
