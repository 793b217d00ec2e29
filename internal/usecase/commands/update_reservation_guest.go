package commands

import (
	"context"
	"errors"
	"fmt"

	"hotel-board/internal/domain/reservation"
	"hotel-board/internal/usecase/readmodel"
	"hotel-board/internal/usecase/shared"

	"github.com/google/uuid"
)

type UpdateReservationGuestRequest struct {
	HouseID       int64
	ReservationID int64
	Guest         reservation.GuestPatch
	Actor         uuid.UUID
}

// UpdateReservationGuest edits the guest of a manual booking.
func (uc *reservationUseCaseImpl) UpdateReservationGuest(ctx context.Context, req UpdateReservationGuestRequest) (*reservation.Reservation, error) {
	h, err := shared.SelectHouse(ctx, uc.houses, req.HouseID)
	if err != nil {
		return nil, err
	}

	var (
		result  *reservation.Reservation
		changed bool
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := shared.SelectReservation(ctx, tx.Reservations(), h.ID, req.ReservationID)
		if err != nil {
			return err
		}

		result = res
		changed, err = res.UpdateGuest(req.Guest)
		switch {
		case errors.Is(err, reservation.ErrGuestUpdateNotAllowed):
			return shared.NewCaseError(shared.KindMissedReservation, h.ID, res.ID,
				fmt.Sprintf("guest of reservation %d can not be changed", res.ID), nil)
		case errors.Is(err, reservation.ErrGuestNameRequired):
			return shared.NewCaseError(shared.KindMissedGuest, h.ID, res.ID, "guest name is required", nil)
		case err != nil:
			return shared.NewCaseError(shared.KindError, h.ID, res.ID, "update guest", err)
		}
		if !changed {
			return nil
		}

		saved, err := tx.Reservations().Save(ctx, res, shared.SaveOptions{})
		if err != nil {
			return shared.SaveError(err, h.ID, res.ID, fmt.Sprintf("save guest of reservation %d", res.ID))
		}
		result = saved
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		uc.record(ctx, result, readmodel.ActionUpdateGuest, req.Actor)
	}
	return result, nil
}
