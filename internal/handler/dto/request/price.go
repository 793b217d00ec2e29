package request

import (
	"hotel-board/internal/pkg/opt"
	"hotel-board/internal/usecase/queries"
)

type CalculatePriceRequest struct {
	RoomTypeID int64  `json:"room_type_id" binding:"required,gt=0"`
	RatePlanID int64  `json:"rate_plan_id" binding:"required,gt=0"`
	RateID     *int64 `json:"rate_id,omitempty" binding:"omitempty,gt=0"`
	Start      string `json:"start" binding:"required,datetime=2006-01-02"`
	End        string `json:"end" binding:"required,datetime=2006-01-02"`
	GuestCount int    `json:"guest_count" binding:"required,min=1,max=20"`
}

func (r CalculatePriceRequest) ToQuery(houseID int64) (queries.CalculateReservationRequest, error) {
	start, end, err := parsePeriod(r.Start, r.End)
	if err != nil {
		return queries.CalculateReservationRequest{}, err
	}
	return queries.CalculateReservationRequest{
		HouseID:    houseID,
		RoomTypeID: r.RoomTypeID,
		RatePlanID: r.RatePlanID,
		Start:      start,
		End:        end,
		GuestCount: r.GuestCount,
		RateID:     opt.FromPtr(r.RateID),
	}, nil
}
