//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/json"

	"github.com/Gunvolt24/wb_tickets/internal/domain"
)

// UniqAccountID — случайный положительный account_id, чтобы тесты не пересекались в одной БД.
func UniqAccountID() int64 {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return int64(binary.BigEndian.Uint64(b[:])>>2) + 1
}

// MakePurchase — валидная заявка: 2 взрослых, 2 детских, 1 младенческий (80 к оплате, 4 места).
func MakePurchase(opts ...func(*domain.PurchaseRequest)) domain.PurchaseRequest {
	p := domain.PurchaseRequest{
		AccountID: UniqAccountID(),
		Tickets: []*domain.TicketTypeRequest{
			domain.NewTicketTypeRequest(domain.Adult, 2),
			domain.NewTicketTypeRequest(domain.Child, 2),
			domain.NewTicketTypeRequest(domain.Infant, 1),
		},
	}
	for _, fn := range opts {
		fn(&p)
	}
	return p
}

func WithTickets(tickets ...*domain.TicketTypeRequest) func(*domain.PurchaseRequest) {
	return func(p *domain.PurchaseRequest) { p.Tickets = tickets }
}

// MustJSON — сериализация заявки для публикации в Kafka.
func MustJSON(p domain.PurchaseRequest) []byte {
	raw, err := json.Marshal(p)
	if err != nil {
		panic(err)
	}
	return raw
}
