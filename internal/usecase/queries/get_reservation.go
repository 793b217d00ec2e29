package queries

import (
	"context"

	"hotel-board/internal/domain/reservation"
	"hotel-board/internal/usecase/shared"
)

//go:generate mockgen -source=get_reservation.go -destination=../../../tests/mock/queries/get_reservation_mock.go -package=queriesmock

type ReservationQueries interface {
	GetReservation(ctx context.Context, houseID, reservationID int64) (*reservation.Reservation, error)
}

type reservationQueriesImpl struct {
	houses       shared.HouseRepository
	reservations shared.ReservationRepository
}

func NewReservationQueries(houses shared.HouseRepository, reservations shared.ReservationRepository) ReservationQueries {
	return &reservationQueriesImpl{houses: houses, reservations: reservations}
}

// GetReservation returns one reservation of the house with its rooms and
// nights, proposed and accepted values included.
func (q *reservationQueriesImpl) GetReservation(ctx context.Context, houseID, reservationID int64) (*reservation.Reservation, error) {
	h, err := shared.SelectHouse(ctx, q.houses, houseID)
	if err != nil {
		return nil, err
	}
	return shared.SelectReservation(ctx, q.reservations, h.ID, reservationID)
}
