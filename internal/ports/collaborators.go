package ports

import "context"

// TicketPaymentService — внешний платёжный сервис.
// Считается, что вызов с корректными аргументами всегда успешен; ошибка фатальна для покупки.
type TicketPaymentService interface {
	MakePayment(ctx context.Context, accountID int64, amount int) error
}

// SeatReservationService — внешний сервис бронирования мест.
type SeatReservationService interface {
	ReserveSeat(ctx context.Context, accountID int64, seats int) error
}
