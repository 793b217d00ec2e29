package response

import (
	"time"

	"hotel-board/internal/domain/reservation"
	"hotel-board/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type GuestResponse struct {
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Country     string `json:"country,omitempty"`
	Nationality string `json:"nationality,omitempty"`
	City        string `json:"city,omitempty"`
	Address     string `json:"address,omitempty"`
	PostCode    string `json:"post_code,omitempty"`
	Comments    string `json:"comments,omitempty"`
}

type NotesResponse struct {
	Extra      string `json:"extra,omitempty"`
	Facilities string `json:"facilities,omitempty"`
	Info       string `json:"info,omitempty"`
	Meal       string `json:"meal,omitempty"`
}

type DayResponse struct {
	ID            int64           `json:"id"`
	Day           Date            `json:"day"`
	PriceOriginal decimal.Decimal `json:"price_original"`
	PriceChanged  decimal.Decimal `json:"price_changed"`
	PriceAccepted decimal.Decimal `json:"price_accepted"`
	Tax           decimal.Decimal `json:"tax"`
	Currency      string          `json:"currency"`
	RoomID        *int64          `json:"room_id"`
	RoomTypeID    *int64          `json:"room_type_id"`
}

type RoomResponse struct {
	ID                   int64             `json:"id"`
	ExternalID           string            `json:"external_id,omitempty"`
	ExternalName         string            `json:"external_name,omitempty"`
	ChannelID            string            `json:"channel_id,omitempty"`
	ChannelRateID        string            `json:"channel_rate_id,omitempty"`
	ChannelRateIDChanged string            `json:"channel_rate_id_changed,omitempty"`
	RatePlanID           *int64            `json:"rate_plan_id"`
	RatePlanIDOriginal   *int64            `json:"rate_plan_id_original"`
	RateID               *int64            `json:"rate_id"`
	Policy               map[string]string `json:"policy,omitempty"`
	PolicyOriginal       map[string]string `json:"policy_original,omitempty"`
	CheckIn              Date              `json:"checkin"`
	CheckOut             Date              `json:"checkout"`
	CheckInOriginal      Date              `json:"checkin_original"`
	CheckOutOriginal     Date              `json:"checkout_original"`
	GuestName            string            `json:"guest_name"`
	GuestCount           int               `json:"guest_count"`
	Adults               int               `json:"adults"`
	Children             int               `json:"children"`
	ExtraBed             int               `json:"extra_bed"`
	WithBreakfast        bool              `json:"with_breakfast"`
	Currency             string            `json:"currency"`
	Price                decimal.Decimal   `json:"price"`
	PriceAccepted        decimal.Decimal   `json:"price_accepted"`
	NettoPrice           decimal.Decimal   `json:"netto_price"`
	NettoPriceAccepted   decimal.Decimal   `json:"netto_price_accepted"`
	Tax                  decimal.Decimal   `json:"tax"`
	Fees                 decimal.Decimal   `json:"fees"`
	Notes                NotesResponse     `json:"notes"`
	IsDeleted            bool              `json:"is_deleted"`
	Days                 []DayResponse     `json:"days"`
}

type ReservationResponse struct {
	ID                 int64           `json:"id"`
	HouseID            int64           `json:"house_id"`
	Source             string          `json:"source"`
	Channel            string          `json:"channel,omitempty"`
	ChannelID          string          `json:"channel_id,omitempty"`
	CheckIn            Date            `json:"checkin"`
	CheckOut           Date            `json:"checkout"`
	BookedAt           time.Time       `json:"booked_at"`
	Status             string          `json:"status"`
	CloseReason        string          `json:"close_reason,omitempty"`
	RoomCount          int             `json:"room_count"`
	Currency           string          `json:"currency"`
	Price              decimal.Decimal `json:"price"`
	PriceAccepted      decimal.Decimal `json:"price_accepted"`
	NettoPrice         decimal.Decimal `json:"netto_price"`
	NettoPriceAccepted decimal.Decimal `json:"netto_price_accepted"`
	Tax                decimal.Decimal `json:"tax"`
	Fees               decimal.Decimal `json:"fees"`
	Guest              GuestResponse   `json:"guest"`
	Promo              string          `json:"promo,omitempty"`
	IsVerified         bool            `json:"is_verified"`
	VerifiedAt         *time.Time      `json:"verified_at,omitempty"`
	Version            int64           `json:"version"`
	Rooms              []RoomResponse  `json:"rooms"`
}

func FromReservation(res *reservation.Reservation) (*ReservationResponse, error) {
	var out ReservationResponse
	if err := copyInto(&out, res); err != nil {
		return nil, errs.Wrap(err, "failed to map reservation")
	}
	return &out, nil
}

type ImportResponse struct {
	Changed     bool                 `json:"changed"`
	Reservation *ReservationResponse `json:"reservation"`
}
