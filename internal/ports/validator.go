package ports

import (
	"context"

	"github.com/Gunvolt24/wb_tickets/internal/domain"
)

// PurchaseValidator — проверяет запрос и считает итог (сумма, места).
type PurchaseValidator interface {
	Validate(ctx context.Context, req *domain.PurchaseRequest) (domain.Quote, error)
}
