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

type UpdateReservationPricesRequest struct {
	HouseID       int64
	ReservationID int64
	RoomID        int64
	RatePlanID    int64
	Prices        []reservation.DayPriceEdit
	Actor         uuid.UUID
}

// UpdateReservationPrices stores staff corrected night prices of one room as
// accepted prices.
func (uc *reservationUseCaseImpl) UpdateReservationPrices(ctx context.Context, req UpdateReservationPricesRequest) (*reservation.Reservation, error) {
	h, err := shared.SelectHouse(ctx, uc.houses, req.HouseID)
	if err != nil {
		return nil, err
	}
	plan, err := shared.SelectRatePlan(ctx, uc.prices, h.ID, req.RatePlanID)
	if err != nil {
		return nil, err
	}

	var result *reservation.Reservation
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := shared.SelectReservation(ctx, tx.Reservations(), h.ID, req.ReservationID)
		if err != nil {
			return err
		}
		if res.IsRoomClose() {
			return shared.NewCaseError(shared.KindRoomCloseReservation, h.ID, res.ID, "room close reservation", nil)
		}

		choice := reservation.PlanChoice{RatePlanID: plan.ID, Policy: reservation.Policy(plan.Policy)}
		deletions, err := res.UpdateRoomPrices(req.RoomID, choice, req.Prices, h.TaxPercent)
		if err != nil {
			return priceUpdateError(h.ID, res.ID, req.RoomID, err)
		}
		if err := res.Validate(); err != nil {
			return priceUpdateError(h.ID, res.ID, req.RoomID, err)
		}

		saved, err := tx.Reservations().Save(ctx, res, shared.SaveOptions{WithAcceptedPrices: true, Deletions: deletions})
		if err != nil {
			return shared.SaveError(err, h.ID, res.ID, fmt.Sprintf("save prices of reservation %d", res.ID))
		}
		result = saved
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.record(ctx, result, readmodel.ActionUpdatePrices, req.Actor)
	return result, nil
}

func priceUpdateError(houseID, reservationID, roomID int64, err error) error {
	switch {
	case errors.Is(err, reservation.ErrPriceUpdateNotAllowed):
		return shared.NewCaseError(shared.KindMissedReservation, houseID, reservationID,
			fmt.Sprintf("prices of reservation %d can not be changed", reservationID), nil)
	case errors.Is(err, reservation.ErrRoomNotFound):
		return shared.NewCaseError(shared.KindMissedRoom, houseID, roomID,
			fmt.Sprintf("reservation %d has no room %d", reservationID, roomID), nil)
	case errors.Is(err, reservation.ErrPeriodChangeNotAllowed),
		errors.Is(err, reservation.ErrInvalidPeriod),
		errors.Is(err, reservation.ErrDuplicateDay),
		errors.Is(err, reservation.ErrNightsMismatch):
		return shared.NewCaseError(shared.KindWrongPeriod, houseID, reservationID, err.Error(), nil)
	default:
		return shared.NewCaseError(shared.KindError, houseID, reservationID, "update prices", err)
	}
}
