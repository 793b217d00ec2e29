package shared

import (
	"context"
	"fmt"

	"hotel-board/internal/domain/house"
	"hotel-board/internal/domain/pricing"
	"hotel-board/internal/domain/reservation"
)

func SelectHouse(ctx context.Context, repo HouseRepository, houseID int64) (*house.House, error) {
	if houseID <= 0 {
		return nil, NewCaseError(KindMissedHouse, houseID, houseID, fmt.Sprintf("wrong house id %d", houseID), nil)
	}
	h, err := repo.Get(ctx, houseID)
	if err != nil {
		return nil, repoError(err, KindMissedHouse, KindError, houseID, houseID, fmt.Sprintf("select house %d", houseID))
	}
	return h, nil
}

func SelectRoomType(ctx context.Context, repo HouseRepository, houseID, roomTypeID int64) (*house.RoomType, error) {
	if roomTypeID <= 0 {
		return nil, NewCaseError(KindMissedRoomType, houseID, roomTypeID, fmt.Sprintf("wrong room type id %d", roomTypeID), nil)
	}
	rt, err := repo.GetRoomType(ctx, houseID, roomTypeID)
	if err != nil {
		return nil, repoError(err, KindMissedRoomType, KindError, houseID, roomTypeID, fmt.Sprintf("select room type %d", roomTypeID))
	}
	return rt, nil
}

func SelectRoom(ctx context.Context, repo HouseRepository, houseID, roomID int64) (*house.Room, error) {
	if roomID <= 0 {
		return nil, NewCaseError(KindMissedRoom, houseID, roomID, fmt.Sprintf("wrong room id %d", roomID), nil)
	}
	room, err := repo.GetRoom(ctx, houseID, roomID)
	if err != nil {
		return nil, repoError(err, KindMissedRoom, KindError, houseID, roomID, fmt.Sprintf("select room %d", roomID))
	}
	return room, nil
}

func SelectRatePlan(ctx context.Context, repo PriceRepository, houseID, ratePlanID int64) (*pricing.RatePlan, error) {
	if ratePlanID <= 0 {
		return nil, NewCaseError(KindMissedRatePlan, houseID, ratePlanID, "missed rate plan id", nil)
	}
	plan, err := repo.GetPlan(ctx, houseID, ratePlanID)
	if err != nil {
		return nil, repoError(err, KindMissedRatePlan, KindError, houseID, ratePlanID, fmt.Sprintf("select rate plan %d", ratePlanID))
	}
	return plan, nil
}

// SelectReservation loads a reservation and makes sure it belongs to the house.
func SelectReservation(ctx context.Context, repo ReservationRepository, houseID, reservationID int64) (*reservation.Reservation, error) {
	if reservationID <= 0 {
		return nil, NewCaseError(KindMissedReservation, houseID, reservationID, fmt.Sprintf("wrong reservation id %d", reservationID), nil)
	}
	res, err := repo.Get(ctx, houseID, reservationID)
	if err != nil {
		return nil, repoError(err, KindMissedReservation, KindError, houseID, reservationID, fmt.Sprintf("select reservation %d", reservationID))
	}
	if res.HouseID != houseID {
		return nil, NewCaseError(KindMissedReservation, houseID, reservationID, fmt.Sprintf("reservation %d belongs to another house", reservationID), nil)
	}
	return res, nil
}
