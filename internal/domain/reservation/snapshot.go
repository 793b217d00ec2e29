package reservation

import (
	"time"

	"hotel-board/internal/pkg/opt"

	"github.com/shopspring/decimal"
)

// ExternalReservation is a booking as delivered by a channel, before it is merged
// into the stored aggregate.
type ExternalReservation struct {
	HouseID   int64
	Source    Source
	Channel   string
	ChannelID string

	CheckIn   time.Time
	CheckOut  time.Time
	BookedAt  time.Time
	Status    Status
	RoomCount int
	Currency  string

	Price      decimal.Decimal
	NettoPrice decimal.Decimal
	Tax        decimal.Decimal
	Fees       decimal.Decimal

	// Guest is nil when the channel did not send guest details.
	Guest       *Guest
	Promo       string
	PaymentInfo string

	Rooms []ExternalRoom
}

type ExternalRoom struct {
	ExternalID    string
	ExternalName  string
	ChannelID     string
	ChannelRateID string
	RatePlanID    opt.Option[int64]
	Policy        Policy

	CheckIn  time.Time
	CheckOut time.Time

	GuestName     string
	GuestCount    int
	Adults        int
	Children      int
	MaxChildren   int
	ExtraBed      int
	WithBreakfast bool

	Currency   string
	Price      decimal.Decimal
	NettoPrice decimal.Decimal
	Tax        decimal.Decimal
	Fees       decimal.Decimal
	Notes      Notes

	Days []ExternalDay
}

type ExternalDay struct {
	Day        time.Time
	Price      decimal.Decimal
	Tax        decimal.Decimal
	Currency   string
	RoomTypeID opt.Option[int64]
}
