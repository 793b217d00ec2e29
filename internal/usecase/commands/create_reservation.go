package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotel-board/internal/domain/house"
	"hotel-board/internal/domain/reservation"
	"hotel-board/internal/pkg/dates"
	"hotel-board/internal/pkg/opt"
	"hotel-board/internal/usecase/queries"
	"hotel-board/internal/usecase/readmodel"
	"hotel-board/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	HouseID    int64
	RoomTypeID int64
	RoomID     opt.Option[int64]
	RatePlanID int64
	RateID     opt.Option[int64]
	Start      time.Time
	End        time.Time
	GuestCount int
	Guest      reservation.Guest
	Notes      string
	Actor      uuid.UUID
}

// CreateReservation books a HOLD reservation entered by staff, priced by the
// current rates and discounts.
func (uc *reservationUseCaseImpl) CreateReservation(ctx context.Context, req CreateReservationRequest) (*reservation.Reservation, error) {
	h, err := shared.SelectHouse(ctx, uc.houses, req.HouseID)
	if err != nil {
		return nil, err
	}
	period, err := periodOf(h.ID, req.RoomTypeID, req.Start, req.End)
	if err != nil {
		return nil, err
	}
	if req.Guest.FullName() == "" {
		return nil, shared.NewCaseError(shared.KindMissedGuest, h.ID, 0, "guest name is required", nil)
	}
	if roomID, ok := req.RoomID.Get(); ok {
		if err := uc.checkRoom(ctx, h, req.RoomTypeID, roomID); err != nil {
			return nil, err
		}
	}

	quote, err := uc.priceQueries.CalculateReservation(ctx, queries.CalculateReservationRequest{
		HouseID:    h.ID,
		RoomTypeID: req.RoomTypeID,
		RatePlanID: req.RatePlanID,
		Start:      period.CheckIn(),
		End:        period.CheckOut(),
		GuestCount: req.GuestCount,
		RateID:     req.RateID,
	})
	if err != nil {
		return nil, err
	}
	rate, ok := quote.Rate.Get()
	if !ok {
		return nil, shared.NewCaseError(shared.KindMissedRate, h.ID, req.RoomTypeID,
			fmt.Sprintf("no rate for room type %d under plan %d", req.RoomTypeID, req.RatePlanID), nil)
	}

	res, err := uc.factory.NewManualReservation(reservation.ManualSpec{
		HouseID:    h.ID,
		RoomTypeID: quote.RoomType.ID,
		RoomID:     req.RoomID,
		RatePlanID: quote.RatePlan.ID,
		RateID:     opt.Some(rate.ID),
		Policy:     reservation.Policy(quote.RatePlan.Policy).Clone(),
		Period:     period,
		GuestCount: req.GuestCount,
		Guest:      req.Guest,
		Notes:      req.Notes,
		Currency:   h.Currency,
		TaxPercent: h.TaxPercent,
		Prices:     quote.Prices.Map(),
	})
	if err != nil {
		return nil, shared.NewCaseError(shared.KindError, h.ID, 0, "build reservation", err)
	}

	saved, err := uc.saveNew(ctx, h.ID, res, req.RoomID)
	if err != nil {
		return nil, err
	}
	uc.record(ctx, saved, readmodel.ActionCreate, req.Actor)
	return saved, nil
}

func (uc *reservationUseCaseImpl) checkRoom(ctx context.Context, h *house.House, roomTypeID, roomID int64) error {
	room, err := shared.SelectRoom(ctx, uc.houses, h.ID, roomID)
	if err != nil {
		return err
	}
	if room.RoomTypeID != roomTypeID {
		return shared.NewCaseError(shared.KindMissedRoom, h.ID, roomID,
			fmt.Sprintf("room %d is not of room type %d", roomID, roomTypeID), nil)
	}
	return nil
}

// saveNew stores a locally created reservation. When a room is assigned it must
// be free for the whole stay at commit time.
func (uc *reservationUseCaseImpl) saveNew(ctx context.Context, houseID int64, res *reservation.Reservation, roomID opt.Option[int64]) (*reservation.Reservation, error) {
	var saved *reservation.Reservation
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if id, ok := roomID.Get(); ok {
			busy, err := tx.Reservations().IsRoomBusy(ctx, houseID, id, res.CheckIn, res.CheckOut, opt.None[int64]())
			if err != nil {
				return shared.NewCaseError(shared.KindError, houseID, id, fmt.Sprintf("check room %d", id), err)
			}
			if busy {
				return shared.NewCaseError(shared.KindBusyRoom, houseID, id, fmt.Sprintf("room %d is busy", id), nil)
			}
		}

		var err error
		saved, err = tx.Reservations().Save(ctx, res, shared.SaveOptions{WithAcceptedPrices: true})
		if err != nil {
			return shared.SaveError(err, houseID, 0, "save new reservation")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func periodOf(houseID, entityID int64, start, end time.Time) (reservation.Period, error) {
	period, err := reservation.NewPeriod(start, end)
	if errors.Is(err, reservation.ErrInvalidPeriod) {
		return reservation.Period{}, shared.NewCaseError(shared.KindWrongPeriod, houseID, entityID,
			fmt.Sprintf("wrong period %s - %s", dates.Format(start), dates.Format(end)), nil)
	}
	return period, err
}
