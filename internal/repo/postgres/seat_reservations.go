package postgres

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/wb_tickets/internal/ports"
	"github.com/Gunvolt24/wb_tickets/pkg/ctxmeta"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что SeatReservationRepository удовлетворяет порту бронирования.
var _ ports.SeatReservationService = (*SeatReservationRepository)(nil)

// SeatReservationRepository — бронирование мест на Postgres (pgxpool).
// Каждый вызов — отдельная строка в seat_reservations; дедупликации нет.
type SeatReservationRepository struct {
	pool *pgxpool.Pool
}

// NewSeatReservationRepository - конструктор SeatReservationRepository.
func NewSeatReservationRepository(pool *pgxpool.Pool) *SeatReservationRepository {
	return &SeatReservationRepository{pool: pool}
}

// ReserveSeat — записывает бронь seats мест для accountID.
func (r *SeatReservationRepository) ReserveSeat(ctx context.Context, accountID int64, seats int) error {
	var requestID *string
	if rid, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		requestID = &rid
	}

	if _, err := r.pool.Exec(ctx, `
		INSERT INTO seat_reservations (account_id, seats, request_id)
		VALUES ($1, $2, $3)
	`, accountID, seats, requestID); err != nil {
		return fmt.Errorf("insert seat reservation account=%d: %w", accountID, err)
	}
	return nil
}

// ReservedSeats — сумма забронированных мест по аккаунту (0, если броней нет).
func (r *SeatReservationRepository) ReservedSeats(ctx context.Context, accountID int64) (int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(seats), 0)::int FROM seat_reservations WHERE account_id = $1
	`, accountID).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum seat reservations account=%d: %w", accountID, err)
	}
	return total, nil
}
