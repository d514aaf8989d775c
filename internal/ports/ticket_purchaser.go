package ports

import (
	"context"

	"github.com/Gunvolt24/wb_tickets/internal/domain"
)

// TicketPurchaser — сервис покупки билетов для транспортного слоя.
type TicketPurchaser interface {
	PurchaseTickets(ctx context.Context, accountID int64, tickets ...*domain.TicketTypeRequest) error
	Quote(ctx context.Context, req *domain.PurchaseRequest) (domain.Quote, error)
}
