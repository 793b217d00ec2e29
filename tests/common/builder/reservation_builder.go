//go:build unit || integration || e2e

package builder

import (
	"time"

	"hotel-board/internal/domain/reservation"
	"hotel-board/internal/pkg/dates"
	"hotel-board/internal/pkg/opt"

	"github.com/shopspring/decimal"
)

// SnapshotBuilder produces an OTA snapshot with one room and three nights
// priced 100, 110 and 120.
type SnapshotBuilder struct {
	Snapshot reservation.ExternalReservation
}

func NewSnapshotBuilder() *SnapshotBuilder {
	checkIn := dates.New(2024, 6, 10)
	checkOut := dates.New(2024, 6, 13)
	guest := reservation.Guest{Name: "Ann", Surname: "Lee", Email: "ann@example.com", Phone: "+100200300"}

	return &SnapshotBuilder{
		Snapshot: reservation.ExternalReservation{
			HouseID:    1,
			Source:     reservation.SourceBooking,
			Channel:    "booking",
			ChannelID:  "BK-1001",
			CheckIn:    checkIn,
			CheckOut:   checkOut,
			BookedAt:   time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
			Status:     reservation.StatusNew,
			RoomCount:  1,
			Currency:   "EUR",
			Price:      Dec("363"),
			NettoPrice: Dec("330"),
			Tax:        Dec("33"),
			Guest:      &guest,
			Rooms: []reservation.ExternalRoom{
				NewExternalRoom("R1", checkIn, "100", "110", "120"),
			},
		},
	}
}

func (b *SnapshotBuilder) With(mutate func(*reservation.ExternalReservation)) *SnapshotBuilder {
	mutate(&b.Snapshot)
	return b
}

func (b *SnapshotBuilder) Build() reservation.ExternalReservation {
	return b.Snapshot
}

// BuildStored returns the snapshot as it looks after the first save: ids are
// assigned from 1 (reservation), 11.. (rooms) and 311.. (days).
func (b *SnapshotBuilder) BuildStored() *reservation.Reservation {
	res := reservation.LoadReservation(b.Snapshot)
	AssignIDs(res)
	res.Version = 1
	return res
}

func AssignIDs(res *reservation.Reservation) {
	res.ID = 1
	dayID := int64(311)
	for i := range res.Rooms {
		res.Rooms[i].ID = int64(11 + i)
		for j := range res.Rooms[i].Days {
			res.Rooms[i].Days[j].ID = dayID
			dayID++
		}
	}
}

// NewExternalRoom builds a room whose nights start at checkIn, one per price.
func NewExternalRoom(externalID string, checkIn time.Time, prices ...string) reservation.ExternalRoom {
	room := reservation.ExternalRoom{
		ExternalID:    externalID,
		ExternalName:  "Double Room",
		ChannelRateID: "RATE-" + externalID,
		RatePlanID:    opt.Some(int64(7)),
		Policy:        reservation.Policy{"name": "flexible"},
		CheckIn:       checkIn,
		CheckOut:      dates.AddDays(checkIn, len(prices)),
		GuestName:     "Ann Lee",
		GuestCount:    2,
		Adults:        2,
		Currency:      "EUR",
	}
	total := decimal.Zero
	for i, p := range prices {
		price := Dec(p)
		total = total.Add(price)
		room.Days = append(room.Days, reservation.ExternalDay{
			Day:        dates.AddDays(checkIn, i),
			Price:      price,
			Tax:        price.Div(decimal.NewFromInt(10)),
			Currency:   "EUR",
			RoomTypeID: opt.Some(int64(3)),
		})
	}
	room.NettoPrice = total
	room.Tax = total.Div(decimal.NewFromInt(10))
	room.Price = room.NettoPrice.Add(room.Tax)
	return room
}

func Dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
