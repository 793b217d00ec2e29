//go:build unit || e2e

package builder

import (
	reqdto "hotel-board/internal/handler/dto/request"
	"hotel-board/internal/pkg/dates"

	"github.com/shopspring/decimal"
)

// NewImportRequest is the wire form of NewSnapshotBuilder's snapshot.
func NewImportRequest() reqdto.ImportReservationRequest {
	snapshot := NewSnapshotBuilder().Build()
	room := snapshot.Rooms[0]

	days := make([]reqdto.ImportDayRequest, 0, len(room.Days))
	for _, d := range room.Days {
		roomTypeID, _ := d.RoomTypeID.Get()
		days = append(days, reqdto.ImportDayRequest{
			Day:        dates.Format(d.Day),
			Price:      d.Price,
			Tax:        d.Tax,
			Currency:   d.Currency,
			RoomTypeID: &roomTypeID,
		})
	}
	ratePlanID, _ := room.RatePlanID.Get()

	return reqdto.ImportReservationRequest{
		Source:     string(snapshot.Source),
		Channel:    snapshot.Channel,
		ChannelID:  snapshot.ChannelID,
		CheckIn:    "2024-06-10",
		CheckOut:   "2024-06-13",
		BookedAt:   snapshot.BookedAt,
		Status:     string(snapshot.Status),
		RoomCount:  snapshot.RoomCount,
		Currency:   snapshot.Currency,
		Price:      snapshot.Price,
		NettoPrice: snapshot.NettoPrice,
		Tax:        snapshot.Tax,
		Guest: &reqdto.GuestRequest{
			Name:    snapshot.Guest.Name,
			Surname: snapshot.Guest.Surname,
			Email:   snapshot.Guest.Email,
			Phone:   snapshot.Guest.Phone,
		},
		Rooms: []reqdto.ImportRoomRequest{{
			ExternalID:    room.ExternalID,
			ExternalName:  room.ExternalName,
			ChannelRateID: room.ChannelRateID,
			RatePlanID:    &ratePlanID,
			Policy:        map[string]string(room.Policy),
			CheckIn:       "2024-06-10",
			CheckOut:      "2024-06-13",
			GuestName:     room.GuestName,
			GuestCount:    room.GuestCount,
			Adults:        room.Adults,
			Currency:      room.Currency,
			Price:         room.Price,
			NettoPrice:    room.NettoPrice,
			Tax:           room.Tax,
			Days:          days,
		}},
	}
}

func NewCreateReservationRequest() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		RoomTypeID: 3,
		RatePlanID: 7,
		Start:      "2024-06-10",
		End:        "2024-06-13",
		GuestCount: 2,
		Guest: reqdto.GuestRequest{
			Name:    "Ann",
			Surname: "Lee",
			Email:   "ann@example.com",
			Phone:   "+100200300",
		},
	}
}

func NewUpdatePricesRequest(prices ...string) reqdto.UpdatePricesRequest {
	req := reqdto.UpdatePricesRequest{RatePlanID: 7}
	days := []string{"2024-06-10", "2024-06-11", "2024-06-12"}
	for i, p := range prices {
		req.Prices = append(req.Prices, reqdto.DayPriceRequest{Day: days[i%len(days)], Price: decimal.RequireFromString(p)})
	}
	return req
}
