package commands

import (
	"context"
	"fmt"

	"hotel-board/internal/domain/reservation"
	"hotel-board/internal/usecase/readmodel"
	"hotel-board/internal/usecase/shared"

	"github.com/google/uuid"
)

type AcceptReservationRequest struct {
	HouseID       int64
	ReservationID int64
	// DayIDs limits which night prices are committed; empty commits all.
	DayIDs []int64
	Actor  uuid.UUID
}

// AcceptReservationChanges commits the proposed values of an OTA reservation.
// Accepting a verified reservation changes nothing.
func (uc *reservationUseCaseImpl) AcceptReservationChanges(ctx context.Context, req AcceptReservationRequest) (*reservation.Reservation, error) {
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
		if err := checkAcceptable(h.ID, res); err != nil {
			return err
		}

		result = res
		accepted = res.Accept(uc.clock.Now(), req.DayIDs...)
		if !accepted {
			return nil
		}

		saved, err := tx.Reservations().Save(ctx, res, shared.SaveOptions{WithAcceptedPrices: true})
		if err != nil {
			return shared.SaveError(err, h.ID, res.ID, fmt.Sprintf("accept reservation %d", res.ID))
		}
		result = saved
		return nil
	})
	if err != nil {
		return nil, err
	}

	if accepted {
		uc.record(ctx, result, readmodel.ActionAccept, req.Actor)
	}
	return result, nil
}

func checkAcceptable(houseID int64, res *reservation.Reservation) error {
	switch {
	case res.IsRoomClose():
		return shared.NewCaseError(shared.KindRoomCloseReservation, houseID, res.ID, "room close reservation", nil)
	case res.IsCanceled():
		return shared.NewCaseError(shared.KindMissedReservation, houseID, res.ID, fmt.Sprintf("reservation %d is canceled", res.ID), nil)
	case !res.IsOTA():
		return shared.NewCaseError(shared.KindMissedReservation, houseID, res.ID, fmt.Sprintf("reservation %d is not from a channel", res.ID), nil)
	}
	return nil
}
