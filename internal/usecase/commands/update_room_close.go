package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotel-board/internal/domain/reservation"
	"hotel-board/internal/pkg/dates"
	"hotel-board/internal/pkg/opt"
	"hotel-board/internal/usecase/readmodel"
	"hotel-board/internal/usecase/shared"

	"github.com/google/uuid"
)

type UpdateRoomCloseRequest struct {
	HouseID       int64
	ReservationID int64
	RoomID        int64
	Start         time.Time
	End           time.Time
	Reason        reservation.CloseReason
	Notes         string
	Actor         uuid.UUID
}

// UpdateRoomClose moves a room close to another room, period or reason.
func (uc *reservationUseCaseImpl) UpdateRoomClose(ctx context.Context, req UpdateRoomCloseRequest) (*reservation.Reservation, error) {
	h, err := shared.SelectHouse(ctx, uc.houses, req.HouseID)
	if err != nil {
		return nil, err
	}
	room, err := shared.SelectRoom(ctx, uc.houses, h.ID, req.RoomID)
	if err != nil {
		return nil, err
	}
	period, err := periodOf(h.ID, room.ID, req.Start, req.End)
	if err != nil {
		return nil, err
	}

	var result *reservation.Reservation
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := shared.SelectReservation(ctx, tx.Reservations(), h.ID, req.ReservationID)
		if err != nil {
			return err
		}
		if !res.IsRoomClose() {
			return shared.NewCaseError(shared.KindMissedReservation, h.ID, res.ID,
				fmt.Sprintf("reservation %d is not a room close", res.ID), nil)
		}

		busy, err := tx.Reservations().IsRoomBusy(ctx, h.ID, room.ID, period.CheckIn(), period.CheckOut(), opt.Some(res.ID))
		if err != nil {
			return shared.NewCaseError(shared.KindError, h.ID, room.ID, fmt.Sprintf("check room %d", room.ID), err)
		}
		if busy {
			return shared.NewCaseError(shared.KindBusyRoom, h.ID, room.ID,
				fmt.Sprintf("room %d is busy for %s - %s", room.ID, dates.Format(period.CheckIn()), dates.Format(period.CheckOut())), nil)
		}

		deletions, err := res.UpdateRoomClose(reservation.RoomCloseUpdate{
			RoomID:     room.ID,
			RoomTypeID: room.RoomTypeID,
			Period:     period,
			Reason:     req.Reason,
			Notes:      req.Notes,
		})
		if errors.Is(err, reservation.ErrCloseReasonRequired) {
			return shared.NewCaseError(shared.KindWrongPeriod, h.ID, res.ID,
				fmt.Sprintf("unknown close reason %q", req.Reason), nil)
		}
		if err != nil {
			return shared.NewCaseError(shared.KindWrongPeriod, h.ID, res.ID, err.Error(), nil)
		}

		saved, err := tx.Reservations().Save(ctx, res, shared.SaveOptions{WithAcceptedPrices: true, Deletions: deletions})
		if err != nil {
			return shared.SaveError(err, h.ID, res.ID, fmt.Sprintf("save room close %d", res.ID))
		}
		result = saved
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.recordMessage(ctx, result, readmodel.ActionUpdateRoomClose, req.Actor,
		fmt.Sprintf("close room %s for %s - %s", room.Name, dates.Format(period.CheckIn()), dates.Format(period.CheckOut())))
	return result, nil
}
