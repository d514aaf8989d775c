package validate

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/wb_tickets/internal/domain"
	"github.com/Gunvolt24/wb_tickets/internal/ports"
)

// Проверка, что PurchaseValidator удовлетворяет интерфейсу PurchaseValidator.
var _ ports.PurchaseValidator = (*PurchaseValidator)(nil)

// ErrInvalidPurchase — единственная ошибка отказа в покупке; причина — в тексте.
var ErrInvalidPurchase = errors.New("invalid purchase")

// Причины отказа.
const (
	ReasonInvalidAccount       = "invalid account"
	ReasonNoTickets            = "no tickets requested"
	ReasonInvalidTicketRequest = "invalid ticket request"
	ReasonInvalidTicketNumber  = "invalid number of tickets"
	ReasonMaxTicketsExceeded   = "maximum tickets exceeded"
	ReasonAdultRequired        = "adult ticket required"
	ReasonInfantsExceedAdults  = "infants exceed adults"
)

// Reject — ошибка отказа с причиной.
func Reject(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidPurchase, reason)
}

// PurchaseValidator — проверка запроса на покупку и расчёт итога.
// Состояния не хранит, безопасен для конкурентного использования.
type PurchaseValidator struct{}

// NewPurchaseValidator — конструктор PurchaseValidator.
func NewPurchaseValidator() *PurchaseValidator { return &PurchaseValidator{} }

// Validate — проверяет правила в фиксированном порядке (первая ошибка прерывает проверку)
// и возвращает итог: сумму к оплате и число мест.
func (v *PurchaseValidator) Validate(_ context.Context, req *domain.PurchaseRequest) (domain.Quote, error) {
	if req == nil || req.AccountID <= 0 {
		return domain.Quote{}, Reject(ReasonInvalidAccount)
	}
	if len(req.Tickets) == 0 {
		return domain.Quote{}, Reject(ReasonNoTickets)
	}

	agg, err := v.aggregate(req.Tickets)
	if err != nil {
		return domain.Quote{}, err
	}
	if err := v.checkAggregate(&agg); err != nil {
		return domain.Quote{}, err
	}
	return domain.NewQuote(req.AccountID, agg), nil
}

// aggregate — один проход по позициям с проверкой каждой.
func (v *PurchaseValidator) aggregate(tickets []*domain.TicketTypeRequest) (domain.Aggregate, error) {
	agg := domain.NewAggregate()
	for _, t := range tickets {
		if t == nil || !t.Type.Valid() {
			return domain.Aggregate{}, Reject(ReasonInvalidTicketRequest)
		}
		if t.NoOfTickets <= 0 {
			return domain.Aggregate{}, Reject(ReasonInvalidTicketNumber)
		}
		agg.Add(t.Type, t.NoOfTickets)
	}
	return agg, nil
}

// checkAggregate — правила над суммарными количествами.
func (v *PurchaseValidator) checkAggregate(agg *domain.Aggregate) error {
	if agg.Total() > domain.MaxTicketsPerPurchase {
		return Reject(ReasonMaxTicketsExceeded)
	}
	adults := agg.Count(domain.Adult)
	if adults == 0 {
		return Reject(ReasonAdultRequired)
	}
	if agg.Count(domain.Infant) > adults {
		return Reject(ReasonInfantsExceedAdults)
	}
	return nil
}
