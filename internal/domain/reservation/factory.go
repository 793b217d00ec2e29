package reservation

import (
	"time"

	"hotel-board/internal/pkg/clock"
	"hotel-board/internal/pkg/opt"

	"github.com/shopspring/decimal"
)

type Factory struct {
	Clock clock.Clock
}

func NewFactory(clock clock.Clock) *Factory {
	return &Factory{
		Clock: clock,
	}
}

// ManualSpec describes a booking entered by staff.
type ManualSpec struct {
	HouseID    int64
	RoomTypeID int64
	RoomID     opt.Option[int64]
	RatePlanID int64
	RateID     opt.Option[int64]
	Policy     Policy
	Period     Period
	GuestCount int
	Guest      Guest
	Notes      string
	Currency   string
	TaxPercent decimal.Decimal
	// Prices holds the night prices; missing nights are free.
	Prices map[time.Time]decimal.Decimal
}

// NewManualReservation builds a HOLD booking that is verified from the start.
func (f *Factory) NewManualReservation(spec ManualSpec) (*Reservation, error) {
	now := f.Clock.Now()

	room := Room{
		RatePlanID:         opt.Some(spec.RatePlanID),
		RatePlanIDOriginal: opt.Some(spec.RatePlanID),
		RateID:             spec.RateID,
		Policy:             spec.Policy.Clone(),
		PolicyOriginal:     spec.Policy.Clone(),
		CheckIn:            spec.Period.CheckIn(),
		CheckOut:           spec.Period.CheckOut(),
		CheckInOriginal:    spec.Period.CheckIn(),
		CheckOutOriginal:   spec.Period.CheckOut(),
		GuestName:          spec.Guest.FullName(),
		GuestCount:         spec.GuestCount,
		Adults:             spec.GuestCount,
		Currency:           spec.Currency,
		Notes:              Notes{Info: spec.Notes},
	}

	netto := decimal.Zero
	for _, day := range spec.Period.Days() {
		price := spec.Prices[day]
		netto = netto.Add(price)
		room.Days = append(room.Days, Day{
			Day:           day,
			PriceOriginal: price,
			PriceChanged:  price,
			PriceAccepted: price,
			Tax:           TaxFor(price, spec.TaxPercent),
			Currency:      spec.Currency,
			RoomID:        spec.RoomID,
			RoomTypeID:    opt.Some(spec.RoomTypeID),
		})
	}
	tax := TaxFor(netto, spec.TaxPercent)
	price := netto.Add(tax)

	room.Price, room.PriceAccepted = price, price
	room.NettoPrice, room.NettoPriceAccepted = netto, netto
	room.Tax = tax

	res := &Reservation{
		HouseID:            spec.HouseID,
		Source:             SourceManual,
		CheckIn:            spec.Period.CheckIn(),
		CheckOut:           spec.Period.CheckOut(),
		BookedAt:           now,
		Status:             StatusHold,
		RoomCount:          1,
		Currency:           spec.Currency,
		Price:              price,
		PriceAccepted:      price,
		NettoPrice:         netto,
		NettoPriceAccepted: netto,
		Tax:                tax,
		Guest:              spec.Guest,
		IsVerified:         true,
		VerifiedAt:         &now,
		Rooms:              []Room{room},
	}
	if err := res.Validate(); err != nil {
		return nil, err
	}
	return res, nil
}

type RoomCloseSpec struct {
	HouseID    int64
	RoomID     int64
	RoomTypeID int64
	Period     Period
	Reason     CloseReason
	Notes      string
	Currency   string
}

// NewRoomClose builds a zero-priced CLOSE reservation that blocks one room.
func (f *Factory) NewRoomClose(spec RoomCloseSpec) (*Reservation, error) {
	now := f.Clock.Now()

	room := Room{
		CheckIn:          spec.Period.CheckIn(),
		CheckOut:         spec.Period.CheckOut(),
		CheckInOriginal:  spec.Period.CheckIn(),
		CheckOutOriginal: spec.Period.CheckOut(),
		Currency:         spec.Currency,
		Notes:            Notes{Info: spec.Notes},
	}
	for _, day := range spec.Period.Days() {
		room.Days = append(room.Days, Day{
			Day:        day,
			Currency:   spec.Currency,
			RoomID:     opt.Some(spec.RoomID),
			RoomTypeID: opt.Some(spec.RoomTypeID),
		})
	}

	res := &Reservation{
		HouseID:     spec.HouseID,
		Source:      SourceManual,
		CheckIn:     spec.Period.CheckIn(),
		CheckOut:    spec.Period.CheckOut(),
		BookedAt:    now,
		Status:      StatusClose,
		CloseReason: spec.Reason,
		RoomCount:   1,
		Currency:    spec.Currency,
		IsVerified:  true,
		VerifiedAt:  &now,
		Rooms:       []Room{room},
	}
	if err := res.Validate(); err != nil {
		return nil, err
	}
	return res, nil
}
