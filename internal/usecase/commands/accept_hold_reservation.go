package commands

import (
	"context"
	"fmt"

	"hotel-board/internal/domain/reservation"
	"hotel-board/internal/usecase/readmodel"
	"hotel-board/internal/usecase/shared"

	"github.com/google/uuid"
)

type AcceptHoldReservationRequest struct {
	HouseID       int64
	ReservationID int64
	Actor         uuid.UUID
}

// AcceptHoldReservation confirms a manual HOLD booking. The CRM quotation is
// confirmed by the CRM integration, not here.
func (uc *reservationUseCaseImpl) AcceptHoldReservation(ctx context.Context, req AcceptHoldReservationRequest) (*reservation.Reservation, error) {
	h, err := shared.SelectHouse(ctx, uc.houses, req.HouseID)
	if err != nil {
		return nil, err
	}

	var (
		result   *reservation.Reservation
		accepted bool
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := shared.SelectReservation(ctx, tx.Reservations(), h.ID, req.ReservationID)
		if err != nil {
			return err
		}

		result = res
		accepted, err = res.AcceptHold()
		if err != nil {
			return shared.NewCaseError(shared.KindMissedReservation, h.ID, res.ID,
				fmt.Sprintf("reservation %d can not be confirmed: %s", res.ID, err.Error()), nil)
		}
		if !accepted {
			return nil
		}

		saved, err := tx.Reservations().Save(ctx, res, shared.SaveOptions{})
		if err != nil {
			return shared.SaveError(err, h.ID, res.ID, fmt.Sprintf("confirm reservation %d", res.ID))
		}
		result = saved
		return nil
	})
	if err != nil {
		return nil, err
	}

	if accepted {
		uc.record(ctx, result, readmodel.ActionAcceptHold, req.Actor)
	}
	return result, nil
}
