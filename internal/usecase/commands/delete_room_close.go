package commands

import (
	"context"
	"fmt"

	"hotel-board/internal/domain/reservation"
	"hotel-board/internal/pkg/dates"
	"hotel-board/internal/usecase/readmodel"
	"hotel-board/internal/usecase/shared"

	"github.com/google/uuid"
)

type DeleteRoomCloseRequest struct {
	HouseID       int64
	ReservationID int64
	Actor         uuid.UUID
}

// DeleteRoomClose opens the room blocked by a room close.
func (uc *reservationUseCaseImpl) DeleteRoomClose(ctx context.Context, req DeleteRoomCloseRequest) (*reservation.Reservation, error) {
	h, err := shared.SelectHouse(ctx, uc.houses, req.HouseID)
	if err != nil {
		return nil, err
	}

	var result *reservation.Reservation
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := shared.SelectReservation(ctx, tx.Reservations(), h.ID, req.ReservationID)
		if err != nil {
			return err
		}
		if err := res.OpenRoom(); err != nil {
			return shared.NewCaseError(shared.KindMissedReservation, h.ID, res.ID,
				fmt.Sprintf("reservation %d is not a room close", res.ID), nil)
		}

		saved, err := tx.Reservations().Save(ctx, res, shared.SaveOptions{})
		if err != nil {
			return shared.SaveError(err, h.ID, res.ID, fmt.Sprintf("open room close %d", res.ID))
		}
		result = saved
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.recordMessage(ctx, result, readmodel.ActionDeleteRoomClose, req.Actor,
		fmt.Sprintf("open room for %s - %s", dates.Format(result.CheckIn), dates.Format(result.CheckOut)))
	return result, nil
}
