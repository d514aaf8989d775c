package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Gunvolt24/wb_tickets/internal/domain"
	"github.com/Gunvolt24/wb_tickets/internal/ports"
	"github.com/Gunvolt24/wb_tickets/pkg/metrics"
	"github.com/Gunvolt24/wb_tickets/pkg/telemetry"
	"github.com/Gunvolt24/wb_tickets/pkg/validate"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Проверка, что TicketService удовлетворяет интерфейсу TicketPurchaser.
var _ ports.TicketPurchaser = (*TicketService)(nil)

// TicketService — покупка билетов: проверка, расчёт, оплата и бронирование мест.
// Состояния между вызовами не хранит.
type TicketService struct {
	validator    ports.PurchaseValidator
	payments     ports.TicketPaymentService
	reservations ports.SeatReservationService
	log          ports.Logger
}

// NewTicketService — DI-конструктор.
func NewTicketService(
	validator ports.PurchaseValidator,
	payments ports.TicketPaymentService,
	reservations ports.SeatReservationService,
	log ports.Logger,
) *TicketService {
	return &TicketService{
		validator:    validator,
		payments:     payments,
		reservations: reservations,
		log:          log,
	}
}

// PurchaseTickets — проверяет запрос целиком и только затем вызывает оплату и бронирование,
// ровно по одному разу и именно в этом порядке.
// Ошибки внешних сервисов возвращаются как есть; компенсации нет — если бронирование
// упало после успешной оплаты, покупка остаётся оплаченной без мест.
func (s *TicketService) PurchaseTickets(ctx context.Context, accountID int64, tickets ...*domain.TicketTypeRequest) (err error) {
	ctx, span := telemetry.Tracer().Start(ctx, "TicketService.PurchaseTickets",
		trace.WithAttributes(attribute.Int64("account.id", accountID)))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	quote, err := s.check(ctx, &domain.PurchaseRequest{AccountID: accountID, Tickets: tickets})
	if err != nil {
		metrics.PurchasesTotal.WithLabelValues("rejected").Inc()
		return err
	}
	span.SetAttributes(attribute.Int("purchase.amount", quote.Amount), attribute.Int("purchase.seats", quote.Seats))

	if err := s.payments.MakePayment(ctx, quote.AccountID, quote.Amount); err != nil {
		metrics.PurchasesTotal.WithLabelValues("failed").Inc()
		s.log.Errorf(ctx, "payment failed account=%d amount=%d err=%v", quote.AccountID, quote.Amount, err)
		return err
	}
	metrics.AmountCharged.Add(float64(quote.Amount))

	if err := s.reservations.ReserveSeat(ctx, quote.AccountID, quote.Seats); err != nil {
		metrics.PurchasesTotal.WithLabelValues("failed").Inc()
		s.log.Errorf(ctx, "seat reservation failed after payment account=%d seats=%d err=%v", quote.AccountID, quote.Seats, err)
		return err
	}
	metrics.SeatsReserved.Add(float64(quote.Seats))

	metrics.PurchasesTotal.WithLabelValues("accepted").Inc()
	for c, n := range quote.Tickets {
		if n > 0 {
			metrics.TicketsSold.WithLabelValues(c.String()).Add(float64(n))
		}
	}

	s.log.Infof(ctx, "purchase completed account=%d amount=%d seats=%d", quote.AccountID, quote.Amount, quote.Seats)
	return nil
}

// Quote — проверка и расчёт без побочных эффектов.
// Считается отдельно от покупок: предпросмотр не попадает в purchases_total.
func (s *TicketService) Quote(ctx context.Context, req *domain.PurchaseRequest) (domain.Quote, error) {
	quote, err := s.check(ctx, req)
	if err != nil {
		metrics.QuotesTotal.WithLabelValues("rejected").Inc()
		return domain.Quote{}, err
	}
	metrics.QuotesTotal.WithLabelValues("ok").Inc()
	return quote, nil
}

// check — валидация с замером времени; отказ пишется в лог как предупреждение.
func (s *TicketService) check(ctx context.Context, req *domain.PurchaseRequest) (domain.Quote, error) {
	start := time.Now()
	quote, err := s.validator.Validate(ctx, req)
	metrics.ValidationDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		s.log.Warnf(ctx, "purchase rejected: %v", err)
		return domain.Quote{}, err
	}
	return quote, nil
}

// PurchaseFromMessage — покупка по сообщению из Kafka (raw JSON).
// Нечитаемое сообщение — это отказ (ErrInvalidPurchase), а не временная ошибка.
func (s *TicketService) PurchaseFromMessage(ctx context.Context, raw []byte) error {
	req, err := validate.DecodePurchaseRequest(raw)
	if err != nil {
		metrics.PurchasesTotal.WithLabelValues("rejected").Inc()
		s.log.Warnf(ctx, "purchase message rejected: %v", err)
		return fmt.Errorf("%w: %s: %w", validate.ErrInvalidPurchase, validate.ReasonInvalidTicketRequest, err)
	}
	return s.PurchaseTickets(ctx, req.AccountID, req.Tickets...)
}

