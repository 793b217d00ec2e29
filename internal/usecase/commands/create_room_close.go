package commands

import (
	"context"
	"time"

	"hotel-board/internal/domain/reservation"
	"hotel-board/internal/pkg/opt"
	"hotel-board/internal/usecase/readmodel"
	"hotel-board/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateRoomCloseRequest struct {
	HouseID int64
	RoomID  int64
	Start   time.Time
	End     time.Time
	Reason  reservation.CloseReason
	Notes   string
	Actor   uuid.UUID
}

// CreateRoomClose blocks a room for a period with a zero priced CLOSE reservation.
func (uc *reservationUseCaseImpl) CreateRoomClose(ctx context.Context, req CreateRoomCloseRequest) (*reservation.Reservation, error) {
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

	res, err := uc.factory.NewRoomClose(reservation.RoomCloseSpec{
		HouseID:    h.ID,
		RoomID:     room.ID,
		RoomTypeID: room.RoomTypeID,
		Period:     period,
		Reason:     req.Reason,
		Notes:      req.Notes,
		Currency:   h.Currency,
	})
	if err != nil {
		return nil, shared.NewCaseError(shared.KindError, h.ID, room.ID, "build room close", err)
	}

	saved, err := uc.saveNew(ctx, h.ID, res, opt.Some(room.ID))
	if err != nil {
		return nil, err
	}
	uc.record(ctx, saved, readmodel.ActionRoomClose, req.Actor)
	return saved, nil
}
