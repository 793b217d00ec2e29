package commands

import (
	"context"
	"fmt"

	"hotel-board/internal/domain/reservation"
	"hotel-board/internal/usecase/readmodel"
	"hotel-board/internal/usecase/shared"

	"github.com/google/uuid"
)

type CancelReservationRequest struct {
	HouseID       int64
	ReservationID int64
	Actor         uuid.UUID
}

// CancelReservation cancels a manual booking. Channel bookings are cancelled by
// their channel only.
func (uc *reservationUseCaseImpl) CancelReservation(ctx context.Context, req CancelReservationRequest) (*reservation.Reservation, error) {
	h, err := shared.SelectHouse(ctx, uc.houses, req.HouseID)
	if err != nil {
		return nil, err
	}

	var (
		result   *reservation.Reservation
		canceled bool
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := shared.SelectReservation(ctx, tx.Reservations(), h.ID, req.ReservationID)
		if err != nil {
			return err
		}
		if res.IsRoomClose() {
			return shared.NewCaseError(shared.KindRoomCloseReservation, h.ID, res.ID, "room close reservation", nil)
		}
		if !res.AllowDelete() {
			return shared.NewCaseError(shared.KindMissedReservation, h.ID, res.ID,
				fmt.Sprintf("reservation %d can not be canceled locally", res.ID), nil)
		}

		result = res
		canceled = res.Cancel()
		if !canceled {
			return nil
		}
		saved, err := tx.Reservations().Save(ctx, res, shared.SaveOptions{})
		if err != nil {
			return shared.SaveError(err, h.ID, res.ID, fmt.Sprintf("cancel reservation %d", res.ID))
		}
		result = saved
		return nil
	})
	if err != nil {
		return nil, err
	}

	if canceled {
		uc.record(ctx, result, readmodel.ActionCancel, req.Actor)
	}
	return result, nil
}
