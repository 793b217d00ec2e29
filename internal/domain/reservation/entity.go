package reservation

import (
	"errors"
	"fmt"
	"time"

	"hotel-board/internal/pkg/dates"
	"hotel-board/internal/pkg/opt"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPeriod          = errors.New("checkout must be after checkin")
	ErrInvalidStatus          = errors.New("invalid reservation status")
	ErrInvalidSource          = errors.New("invalid reservation source")
	ErrCloseReasonRequired    = errors.New("close reason is required for room-close reservation")
	ErrUnexpectedCloseReason  = errors.New("close reason is only allowed for room-close reservation")
	ErrDuplicateDay           = errors.New("duplicate day in reservation room")
	ErrNightsMismatch         = errors.New("day records do not match room nights")
	ErrReservationCanceled    = errors.New("reservation is canceled")
	ErrRoomNotFound           = errors.New("reservation room not found")
	ErrDayOutsideRoomPeriod   = errors.New("day is outside of room period")
	ErrPriceUpdateNotAllowed  = errors.New("prices can not be updated for this reservation")
	ErrPeriodChangeNotAllowed = errors.New("period of OTA reservation can not be changed")
	ErrNotRoomClose           = errors.New("reservation is not a room close")
	ErrGuestUpdateNotAllowed  = errors.New("guest can not be updated for this reservation")
	ErrGuestNameRequired      = errors.New("guest name is required")
	ErrHoldAcceptNotAllowed   = errors.New("only manual reservations can be confirmed")
	ErrNoMoveTarget           = errors.New("no room or room type to move to")
)

type Reservation struct {
	ID        int64
	HouseID   int64
	Source    Source
	Channel   string
	ChannelID string

	CheckIn     time.Time
	CheckOut    time.Time
	BookedAt    time.Time
	Status      Status
	CloseReason CloseReason
	RoomCount   int
	Currency    string

	// Price and NettoPrice are proposed, the *Accepted pair is committed by the hotelier.
	Price              decimal.Decimal
	PriceAccepted      decimal.Decimal
	NettoPrice         decimal.Decimal
	NettoPriceAccepted decimal.Decimal
	Tax                decimal.Decimal
	Fees               decimal.Decimal

	Guest          Guest
	GuestContactID opt.Option[int64]
	Promo          string
	PaymentInfo    string

	IsVerified bool
	VerifiedAt *time.Time

	OpportunityID opt.Option[int64]
	QuotationID   opt.Option[int64]

	// Version is bumped by every successful save.
	Version int64

	Rooms []Room
}

type Room struct {
	ID           int64
	ExternalID   string
	ExternalName string
	ChannelID    string

	ChannelRateID        string
	ChannelRateIDChanged string
	RatePlanID           opt.Option[int64]
	RatePlanIDOriginal   opt.Option[int64]
	RateID               opt.Option[int64]
	Policy               Policy
	PolicyOriginal       Policy

	CheckIn          time.Time
	CheckOut         time.Time
	CheckInOriginal  time.Time
	CheckOutOriginal time.Time

	GuestName     string
	GuestCount    int
	Adults        int
	Children      int
	MaxChildren   int
	ExtraBed      int
	WithBreakfast bool

	Currency           string
	Price              decimal.Decimal
	PriceAccepted      decimal.Decimal
	NettoPrice         decimal.Decimal
	NettoPriceAccepted decimal.Decimal
	Tax                decimal.Decimal
	Fees               decimal.Decimal
	Notes              Notes

	IsDeleted bool
	DeletedAt *time.Time

	Days []Day
}

type Day struct {
	ID  int64
	Day time.Time

	// PriceOriginal only moves on acceptance.
	PriceOriginal decimal.Decimal
	PriceChanged  decimal.Decimal
	PriceAccepted decimal.Decimal
	Tax           decimal.Decimal
	Currency      string

	RoomID     opt.Option[int64]
	RoomTypeID opt.Option[int64]
}

func (r *Reservation) IsNew() bool {
	return r.ID == 0
}

func (r *Reservation) IsOTA() bool {
	return r.Source.IsOTA()
}

func (r *Reservation) IsCanceled() bool {
	return r.Status == StatusCancel
}

func (r *Reservation) IsRoomClose() bool {
	return r.Status == StatusClose
}

func (r *Reservation) AllowDelete() bool {
	return r.Source == SourceManual
}

func (r *Reservation) AllowUpdatePrices() bool {
	return r.Status != StatusCancel && r.Status != StatusClose
}

// Cancel moves the reservation to CANCEL. It reports false when it already was.
func (r *Reservation) Cancel() bool {
	if r.Status == StatusCancel {
		return false
	}
	r.Status = StatusCancel
	return true
}

func (r *Reservation) Nights() int {
	return dates.Between(r.CheckIn, r.CheckOut)
}

// DisplayID is the channel booking number or a local fallback.
func (r *Reservation) DisplayID() string {
	if r.ChannelID != "" {
		return r.ChannelID
	}
	return fmt.Sprintf("HB%d", r.ID)
}

func (r *Reservation) Validate() error {
	if !r.CheckOut.After(r.CheckIn) {
		return ErrInvalidPeriod
	}
	if !r.Status.IsValid() {
		return ErrInvalidStatus
	}
	if !r.Source.IsValid() {
		return ErrInvalidSource
	}
	if r.Status == StatusClose && !r.CloseReason.IsValid() {
		return ErrCloseReasonRequired
	}
	if r.Status != StatusClose && r.CloseReason != "" {
		return ErrUnexpectedCloseReason
	}
	for i := range r.Rooms {
		if r.Rooms[i].IsDeleted {
			continue
		}
		if err := r.Rooms[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Room returns a pointer into Rooms so callers can edit in place.
func (r *Reservation) Room(id int64) (*Room, bool) {
	for i := range r.Rooms {
		if r.Rooms[i].ID == id {
			return &r.Rooms[i], true
		}
	}
	return nil, false
}

func (r *Reservation) ActiveRooms() []Room {
	out := make([]Room, 0, len(r.Rooms))
	for _, room := range r.Rooms {
		if !room.IsDeleted {
			out = append(out, room)
		}
	}
	return out
}

// RecalculateTotals sums proposed room amounts into the reservation.
func (r *Reservation) RecalculateTotals() {
	price, netto, tax, fees := decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero
	for _, room := range r.Rooms {
		if room.IsDeleted {
			continue
		}
		price = price.Add(room.Price)
		netto = netto.Add(room.NettoPrice)
		tax = tax.Add(room.Tax)
		fees = fees.Add(room.Fees)
	}
	r.Price, r.NettoPrice, r.Tax, r.Fees = price, netto, tax, fees
}

func (r *Reservation) Clone() *Reservation {
	if r == nil {
		return nil
	}
	out := *r
	out.VerifiedAt = clonePtr(r.VerifiedAt)
	if r.Rooms != nil {
		out.Rooms = make([]Room, len(r.Rooms))
		for i := range r.Rooms {
			out.Rooms[i] = r.Rooms[i].Clone()
		}
	}
	return &out
}

func (r *Room) Nights() int {
	return dates.Between(r.CheckIn, r.CheckOut)
}

func (r *Room) RatePlanChanged() bool {
	return r.RatePlanID != r.RatePlanIDOriginal
}

func (r *Room) Validate() error {
	if !r.CheckOut.After(r.CheckIn) {
		return ErrInvalidPeriod
	}
	seen := make(map[time.Time]struct{}, len(r.Days))
	for _, d := range r.Days {
		key := dates.Date(d.Day)
		if _, ok := seen[key]; ok {
			return ErrDuplicateDay
		}
		seen[key] = struct{}{}
	}
	if len(r.Days) > 0 && len(r.Days) != r.Nights() {
		return ErrNightsMismatch
	}
	return nil
}

func (r *Room) Day(day time.Time) (*Day, bool) {
	day = dates.Date(day)
	for i := range r.Days {
		if dates.Date(r.Days[i].Day).Equal(day) {
			return &r.Days[i], true
		}
	}
	return nil, false
}

// DayIDs lists persisted day ids.
func (r *Room) DayIDs() []int64 {
	out := make([]int64, 0, len(r.Days))
	for _, d := range r.Days {
		if d.ID != 0 {
			out = append(out, d.ID)
		}
	}
	return out
}

func (r Room) Clone() Room {
	out := r
	out.Policy = r.Policy.Clone()
	out.PolicyOriginal = r.PolicyOriginal.Clone()
	out.DeletedAt = clonePtr(r.DeletedAt)
	if r.Days != nil {
		out.Days = make([]Day, len(r.Days))
		copy(out.Days, r.Days)
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
