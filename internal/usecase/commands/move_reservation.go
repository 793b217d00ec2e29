package commands

import (
	"context"
	"fmt"
	"time"

	"hotel-board/internal/domain/reservation"
	"hotel-board/internal/pkg/dates"
	"hotel-board/internal/pkg/opt"
	"hotel-board/internal/usecase/readmodel"
	"hotel-board/internal/usecase/shared"

	"github.com/google/uuid"
)

// MoveReservationRequest moves nights of one reservation room. Start and End
// default to the room period; TargetRoomID wins over TargetRoomTypeID.
type MoveReservationRequest struct {
	HouseID          int64
	ReservationID    int64
	RoomID           int64
	Start            opt.Option[time.Time]
	End              opt.Option[time.Time]
	TargetRoomTypeID opt.Option[int64]
	TargetRoomID     opt.Option[int64]
	Actor            uuid.UUID
}

// MoveReservation reassigns nights of a reservation room to another room type
// or a free room.
func (uc *reservationUseCaseImpl) MoveReservation(ctx context.Context, req MoveReservationRequest) (*reservation.Reservation, error) {
	h, err := shared.SelectHouse(ctx, uc.houses, req.HouseID)
	if err != nil {
		return nil, err
	}
	target, destination, err := uc.moveTarget(ctx, h.ID, req)
	if err != nil {
		return nil, err
	}

	var (
		result     *reservation.Reservation
		start, end time.Time
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := shared.SelectReservation(ctx, tx.Reservations(), h.ID, req.ReservationID)
		if err != nil {
			return err
		}
		if res.IsCanceled() {
			return shared.NewCaseError(shared.KindMissedReservation, h.ID, res.ID,
				fmt.Sprintf("reservation %d is canceled", res.ID), nil)
		}
		room, ok := res.Room(req.RoomID)
		if !ok || room.IsDeleted {
			return shared.NewCaseError(shared.KindMissedRoom, h.ID, req.RoomID,
				fmt.Sprintf("reservation %d has no room %d", res.ID, req.RoomID), nil)
		}

		start, end = clipWindow(room, req.Start, req.End)
		if !end.After(start) {
			return shared.NewCaseError(shared.KindWrongPeriod, h.ID, res.ID,
				fmt.Sprintf("nothing to move in %s - %s", dates.Format(start), dates.Format(end)), nil)
		}

		if roomID, ok := target.RoomID.Get(); ok {
			busy, err := tx.Reservations().IsRoomBusy(ctx, h.ID, roomID, start, end, opt.Some(res.ID))
			if err != nil {
				return shared.NewCaseError(shared.KindError, h.ID, roomID, fmt.Sprintf("check room %d", roomID), err)
			}
			if busy {
				return shared.NewCaseError(shared.KindBusyRoom, h.ID, roomID, fmt.Sprintf("room %d is busy", roomID), nil)
			}
		}

		if _, err := res.MoveRoom(req.RoomID, start, end, target); err != nil {
			return shared.NewCaseError(shared.KindWrongPeriod, h.ID, res.ID, err.Error(), nil)
		}

		saved, err := tx.Reservations().Save(ctx, res, shared.SaveOptions{})
		if err != nil {
			return shared.SaveError(err, h.ID, res.ID, fmt.Sprintf("move reservation %d", res.ID))
		}
		result = saved
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.recordMessage(ctx, result, readmodel.ActionMove, req.Actor,
		fmt.Sprintf("move %s [%s..%s) to %s", result.DisplayID(), dates.Format(start), dates.Format(end), destination))
	return result, nil
}

func (uc *reservationUseCaseImpl) moveTarget(ctx context.Context, houseID int64, req MoveReservationRequest) (reservation.MoveTarget, string, error) {
	if roomID, ok := req.TargetRoomID.Get(); ok {
		room, err := shared.SelectRoom(ctx, uc.houses, houseID, roomID)
		if err != nil {
			return reservation.MoveTarget{}, "", err
		}
		return reservation.MoveTarget{RoomTypeID: room.RoomTypeID, RoomID: opt.Some(room.ID)}, "room " + room.Name, nil
	}
	if roomTypeID, ok := req.TargetRoomTypeID.Get(); ok {
		rt, err := shared.SelectRoomType(ctx, uc.houses, houseID, roomTypeID)
		if err != nil {
			return reservation.MoveTarget{}, "", err
		}
		return reservation.MoveTarget{RoomTypeID: rt.ID}, "room type " + rt.Name, nil
	}
	return reservation.MoveTarget{}, "", shared.NewCaseError(shared.KindMissedRoom, houseID, req.ReservationID,
		"no room or room type to move to", nil)
}

// clipWindow narrows the requested window to the nights of the room.
func clipWindow(room *reservation.Room, start, end opt.Option[time.Time]) (time.Time, time.Time) {
	checkIn, checkOut := dates.Date(room.CheckIn), dates.Date(room.CheckOut)
	s := dates.Date(start.OrElse(checkIn))
	e := dates.Date(end.OrElse(checkOut))
	if s.Before(checkIn) {
		s = checkIn
	}
	if e.After(checkOut) {
		e = checkOut
	}
	return s, e
}
