package request

import (
	"strings"
	"time"

	"hotel-board/internal/domain/reservation"
	"hotel-board/internal/pkg/dates"
	"hotel-board/internal/pkg/opt"
	"hotel-board/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type GuestRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Surname     string `json:"surname" binding:"max=255"`
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"phone" binding:"max=64"`
	Country     string `json:"country" binding:"max=64"`
	Nationality string `json:"nationality" binding:"max=64"`
	City        string `json:"city" binding:"max=255"`
	Address     string `json:"address" binding:"max=512"`
	PostCode    string `json:"post_code" binding:"max=32"`
	Comments    string `json:"comments" binding:"max=2000"`
}

func (g GuestRequest) ToDomain() reservation.Guest {
	return reservation.Guest{
		Name:        strings.TrimSpace(g.Name),
		Surname:     strings.TrimSpace(g.Surname),
		Email:       strings.TrimSpace(g.Email),
		Phone:       strings.TrimSpace(g.Phone),
		Country:     g.Country,
		Nationality: g.Nationality,
		City:        g.City,
		Address:     g.Address,
		PostCode:    g.PostCode,
		Comments:    g.Comments,
	}
}

type CreateReservationRequest struct {
	RoomTypeID int64        `json:"room_type_id" binding:"required,gt=0"`
	RoomID     *int64       `json:"room_id,omitempty" binding:"omitempty,gt=0"`
	RatePlanID int64        `json:"rate_plan_id" binding:"required,gt=0"`
	RateID     *int64       `json:"rate_id,omitempty" binding:"omitempty,gt=0"`
	Start      string       `json:"start" binding:"required,datetime=2006-01-02"`
	End        string       `json:"end" binding:"required,datetime=2006-01-02"`
	GuestCount int          `json:"guest_count" binding:"required,min=1,max=20"`
	Guest      GuestRequest `json:"guest" binding:"required"`
	Notes      string       `json:"notes" binding:"max=2000"`
}

func (r CreateReservationRequest) ToCommand(houseID int64, actor uuid.UUID) (commands.CreateReservationRequest, error) {
	start, end, err := parsePeriod(r.Start, r.End)
	if err != nil {
		return commands.CreateReservationRequest{}, err
	}
	return commands.CreateReservationRequest{
		HouseID:    houseID,
		RoomTypeID: r.RoomTypeID,
		RoomID:     opt.FromPtr(r.RoomID),
		RatePlanID: r.RatePlanID,
		RateID:     opt.FromPtr(r.RateID),
		Start:      start,
		End:        end,
		GuestCount: r.GuestCount,
		Guest:      r.Guest.ToDomain(),
		Notes:      strings.TrimSpace(r.Notes),
		Actor:      actor,
	}, nil
}

type AcceptReservationRequest struct {
	DayIDs []int64 `json:"day_ids" binding:"omitempty,dive,gt=0"`
}

type RoomCloseRequest struct {
	Start  string `json:"start" binding:"required,datetime=2006-01-02"`
	End    string `json:"end" binding:"required,datetime=2006-01-02"`
	Reason string `json:"reason" binding:"required,oneof=maintenance renovation owner_use other"`
	Notes  string `json:"notes" binding:"max=2000"`
}

func (r RoomCloseRequest) ToCommand(houseID, roomID int64, actor uuid.UUID) (commands.CreateRoomCloseRequest, error) {
	start, end, err := parsePeriod(r.Start, r.End)
	if err != nil {
		return commands.CreateRoomCloseRequest{}, err
	}
	return commands.CreateRoomCloseRequest{
		HouseID: houseID,
		RoomID:  roomID,
		Start:   start,
		End:     end,
		Reason:  reservation.CloseReason(r.Reason),
		Notes:   strings.TrimSpace(r.Notes),
		Actor:   actor,
	}, nil
}

type UpdateRoomCloseRequest struct {
	RoomID int64 `json:"room_id" binding:"required,gt=0"`
	RoomCloseRequest
}

func (r UpdateRoomCloseRequest) ToCommand(houseID, reservationID int64, actor uuid.UUID) (commands.UpdateRoomCloseRequest, error) {
	start, end, err := parsePeriod(r.Start, r.End)
	if err != nil {
		return commands.UpdateRoomCloseRequest{}, err
	}
	return commands.UpdateRoomCloseRequest{
		HouseID:       houseID,
		ReservationID: reservationID,
		RoomID:        r.RoomID,
		Start:         start,
		End:           end,
		Reason:        reservation.CloseReason(r.Reason),
		Notes:         strings.TrimSpace(r.Notes),
		Actor:         actor,
	}, nil
}

// MoveReservationRequest moves nights of a reservation room; a room wins over
// a room type and the window defaults to the whole stay.
type MoveReservationRequest struct {
	Start      *string `json:"start,omitempty" binding:"omitempty,datetime=2006-01-02"`
	End        *string `json:"end,omitempty" binding:"omitempty,datetime=2006-01-02"`
	RoomTypeID *int64  `json:"room_type_id,omitempty" binding:"required_without=RoomID,omitempty,gt=0"`
	RoomID     *int64  `json:"room_id,omitempty" binding:"omitempty,gt=0"`
}

func (r MoveReservationRequest) ToCommand(houseID, reservationID, roomID int64, actor uuid.UUID) (commands.MoveReservationRequest, error) {
	start, err := optionalDate(r.Start)
	if err != nil {
		return commands.MoveReservationRequest{}, err
	}
	end, err := optionalDate(r.End)
	if err != nil {
		return commands.MoveReservationRequest{}, err
	}
	if s, ok := start.Get(); ok {
		if e, ok := end.Get(); ok && !e.After(s) {
			return commands.MoveReservationRequest{}, ErrInvalidPeriod
		}
	}
	return commands.MoveReservationRequest{
		HouseID:          houseID,
		ReservationID:    reservationID,
		RoomID:           roomID,
		Start:            start,
		End:              end,
		TargetRoomTypeID: opt.FromPtr(r.RoomTypeID),
		TargetRoomID:     opt.FromPtr(r.RoomID),
		Actor:            actor,
	}, nil
}

func optionalDate(raw *string) (opt.Option[time.Time], error) {
	if raw == nil {
		return opt.None[time.Time](), nil
	}
	day, err := dates.Parse(*raw)
	if err != nil {
		return opt.None[time.Time](), err
	}
	return opt.Some(day), nil
}

// UpdateGuestRequest patches the guest; omitted fields are kept.
type UpdateGuestRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,max=255"`
	Surname  *string `json:"surname,omitempty" binding:"omitempty,max=255"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone    *string `json:"phone,omitempty" binding:"omitempty,max=64"`
	Country  *string `json:"country,omitempty" binding:"omitempty,max=64"`
	Comments *string `json:"comments,omitempty" binding:"omitempty,max=2000"`
}

func (r UpdateGuestRequest) ToCommand(houseID, reservationID int64, actor uuid.UUID) commands.UpdateReservationGuestRequest {
	return commands.UpdateReservationGuestRequest{
		HouseID:       houseID,
		ReservationID: reservationID,
		Guest: reservation.GuestPatch{
			Name:     opt.FromPtr(r.Name),
			Surname:  opt.FromPtr(r.Surname),
			Email:    opt.FromPtr(r.Email),
			Phone:    opt.FromPtr(r.Phone),
			Country:  opt.FromPtr(r.Country),
			Comments: opt.FromPtr(r.Comments),
		},
		Actor: actor,
	}
}

type DayPriceRequest struct {
	Day        string          `json:"day" binding:"required,datetime=2006-01-02"`
	Price      decimal.Decimal `json:"price"`
	RoomID     *int64          `json:"room_id,omitempty" binding:"omitempty,gt=0"`
	RoomTypeID *int64          `json:"room_type_id,omitempty" binding:"omitempty,gt=0"`
}

type UpdatePricesRequest struct {
	RatePlanID int64             `json:"rate_plan_id" binding:"required,gt=0"`
	Prices     []DayPriceRequest `json:"prices" binding:"required,min=1,dive"`
}

func (r UpdatePricesRequest) ToCommand(houseID, reservationID, roomID int64, actor uuid.UUID) (commands.UpdateReservationPricesRequest, error) {
	edits := make([]reservation.DayPriceEdit, 0, len(r.Prices))
	for _, p := range r.Prices {
		day, err := dates.Parse(p.Day)
		if err != nil {
			return commands.UpdateReservationPricesRequest{}, err
		}
		if p.Price.IsNegative() {
			return commands.UpdateReservationPricesRequest{}, ErrNegativePrice
		}
		edits = append(edits, reservation.DayPriceEdit{
			Day:        day,
			Price:      p.Price,
			RoomID:     opt.FromPtr(p.RoomID),
			RoomTypeID: opt.FromPtr(p.RoomTypeID),
		})
	}
	return commands.UpdateReservationPricesRequest{
		HouseID:       houseID,
		ReservationID: reservationID,
		RoomID:        roomID,
		RatePlanID:    r.RatePlanID,
		Prices:        edits,
		Actor:         actor,
	}, nil
}

// ImportReservationRequest is a channel snapshot of one booking.
type ImportReservationRequest struct {
	Source      string              `json:"source" binding:"required,oneof=booking expedia agoda airbnb other"`
	Channel     string              `json:"channel" binding:"max=64"`
	ChannelID   string              `json:"channel_id" binding:"required,max=128"`
	CheckIn     string              `json:"checkin" binding:"required,datetime=2006-01-02"`
	CheckOut    string              `json:"checkout" binding:"required,datetime=2006-01-02"`
	BookedAt    time.Time           `json:"booked_at"`
	Status      string              `json:"status" binding:"required,oneof=new modify hold cancel"`
	RoomCount   int                 `json:"room_count" binding:"gte=0"`
	Currency    string              `json:"currency" binding:"required,len=3"`
	Price       decimal.Decimal     `json:"price"`
	NettoPrice  decimal.Decimal     `json:"netto_price"`
	Tax         decimal.Decimal     `json:"tax"`
	Fees        decimal.Decimal     `json:"fees"`
	Guest       *GuestRequest       `json:"guest,omitempty"`
	Promo       string              `json:"promo"`
	PaymentInfo string              `json:"payment_info"`
	Rooms       []ImportRoomRequest `json:"rooms" binding:"dive"`
}

type ImportRoomRequest struct {
	ExternalID    string             `json:"external_id"`
	ExternalName  string             `json:"external_name"`
	ChannelID     string             `json:"channel_id"`
	ChannelRateID string             `json:"channel_rate_id"`
	RatePlanID    *int64             `json:"rate_plan_id,omitempty" binding:"omitempty,gt=0"`
	Policy        map[string]string  `json:"policy,omitempty"`
	CheckIn       string             `json:"checkin" binding:"required,datetime=2006-01-02"`
	CheckOut      string             `json:"checkout" binding:"required,datetime=2006-01-02"`
	GuestName     string             `json:"guest_name"`
	GuestCount    int                `json:"guest_count" binding:"gte=0"`
	Adults        int                `json:"adults" binding:"gte=0"`
	Children      int                `json:"children" binding:"gte=0"`
	MaxChildren   int                `json:"max_children" binding:"gte=0"`
	ExtraBed      int                `json:"extra_bed" binding:"gte=0"`
	WithBreakfast bool               `json:"with_breakfast"`
	Currency      string             `json:"currency"`
	Price         decimal.Decimal    `json:"price"`
	NettoPrice    decimal.Decimal    `json:"netto_price"`
	Tax           decimal.Decimal    `json:"tax"`
	Fees          decimal.Decimal    `json:"fees"`
	Notes         ImportNotesRequest `json:"notes"`
	Days          []ImportDayRequest `json:"days" binding:"dive"`
}

type ImportNotesRequest struct {
	Extra      string `json:"extra"`
	Facilities string `json:"facilities"`
	Info       string `json:"info"`
	Meal       string `json:"meal"`
}

type ImportDayRequest struct {
	Day        string          `json:"day" binding:"required,datetime=2006-01-02"`
	Price      decimal.Decimal `json:"price"`
	Tax        decimal.Decimal `json:"tax"`
	Currency   string          `json:"currency"`
	RoomTypeID *int64          `json:"room_type_id,omitempty" binding:"omitempty,gt=0"`
}

func (r ImportReservationRequest) ToSnapshot(houseID int64) (reservation.ExternalReservation, error) {
	checkIn, checkOut, err := parsePeriod(r.CheckIn, r.CheckOut)
	if err != nil {
		return reservation.ExternalReservation{}, err
	}

	snapshot := reservation.ExternalReservation{
		HouseID:     houseID,
		Source:      reservation.Source(r.Source),
		Channel:     r.Channel,
		ChannelID:   r.ChannelID,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		BookedAt:    r.BookedAt,
		Status:      reservation.Status(r.Status),
		RoomCount:   r.RoomCount,
		Currency:    r.Currency,
		Price:       r.Price,
		NettoPrice:  r.NettoPrice,
		Tax:         r.Tax,
		Fees:        r.Fees,
		Promo:       r.Promo,
		PaymentInfo: r.PaymentInfo,
		Rooms:       make([]reservation.ExternalRoom, 0, len(r.Rooms)),
	}
	if r.Guest != nil {
		guest := r.Guest.ToDomain()
		snapshot.Guest = &guest
	}

	for _, room := range r.Rooms {
		converted, err := room.toSnapshot()
		if err != nil {
			return reservation.ExternalReservation{}, err
		}
		snapshot.Rooms = append(snapshot.Rooms, converted)
	}
	return snapshot, nil
}

func (r ImportRoomRequest) toSnapshot() (reservation.ExternalRoom, error) {
	checkIn, checkOut, err := parsePeriod(r.CheckIn, r.CheckOut)
	if err != nil {
		return reservation.ExternalRoom{}, err
	}

	room := reservation.ExternalRoom{
		ExternalID:    r.ExternalID,
		ExternalName:  r.ExternalName,
		ChannelID:     r.ChannelID,
		ChannelRateID: r.ChannelRateID,
		RatePlanID:    opt.FromPtr(r.RatePlanID),
		Policy:        reservation.Policy(r.Policy),
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		GuestName:     r.GuestName,
		GuestCount:    r.GuestCount,
		Adults:        r.Adults,
		Children:      r.Children,
		MaxChildren:   r.MaxChildren,
		ExtraBed:      r.ExtraBed,
		WithBreakfast: r.WithBreakfast,
		Currency:      r.Currency,
		Price:         r.Price,
		NettoPrice:    r.NettoPrice,
		Tax:           r.Tax,
		Fees:          r.Fees,
		Notes: reservation.Notes{
			Extra:      r.Notes.Extra,
			Facilities: r.Notes.Facilities,
			Info:       r.Notes.Info,
			Meal:       r.Notes.Meal,
		},
		Days: make([]reservation.ExternalDay, 0, len(r.Days)),
	}

	for _, d := range r.Days {
		day, err := dates.Parse(d.Day)
		if err != nil {
			return reservation.ExternalRoom{}, err
		}
		room.Days = append(room.Days, reservation.ExternalDay{
			Day:        day,
			Price:      d.Price,
			Tax:        d.Tax,
			Currency:   d.Currency,
			RoomTypeID: opt.FromPtr(d.RoomTypeID),
		})
	}
	return room, nil
}
