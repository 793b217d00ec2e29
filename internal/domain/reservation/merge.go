package reservation

import (
	"time"

	"hotel-board/internal/pkg/dates"

	"github.com/shopspring/decimal"
)

// Deletions are the stored children an incoming snapshot no longer carries.
// Rooms are soft-deleted and days are hard-deleted by the repository.
type Deletions struct {
	RoomIDs []int64
	DayIDs  []int64
}

func (d Deletions) IsEmpty() bool {
	return len(d.RoomIDs) == 0 && len(d.DayIDs) == 0
}

type MergeResult struct {
	Reservation *Reservation
	Deletions   Deletions
}

// Merge folds a channel snapshot into the stored aggregate. existing is never
// modified. The flag reports whether the snapshot differs from the previous one;
// accepted values and baselines are not part of that comparison.
func Merge(existing *Reservation, snapshot ExternalReservation) (MergeResult, bool) {
	if existing == nil {
		return MergeResult{Reservation: LoadReservation(snapshot)}, true
	}

	res := existing.Clone()
	changed := updateReservation(res, snapshot)

	rooms, deletions, roomsChanged := mergeRooms(existing.Rooms, snapshot.Rooms)
	res.Rooms = rooms

	return MergeResult{Reservation: res, Deletions: deletions}, changed || roomsChanged
}

// LoadReservation builds a new aggregate. Accepted values and baselines start
// equal to the proposed ones.
func LoadReservation(s ExternalReservation) *Reservation {
	res := &Reservation{
		HouseID:            s.HouseID,
		Source:             s.Source,
		Channel:            s.Channel,
		ChannelID:          s.ChannelID,
		CheckIn:            dates.Date(s.CheckIn),
		CheckOut:           dates.Date(s.CheckOut),
		BookedAt:           s.BookedAt,
		Status:             s.Status,
		RoomCount:          s.RoomCount,
		Currency:           s.Currency,
		Price:              s.Price,
		PriceAccepted:      s.Price,
		NettoPrice:         s.NettoPrice,
		NettoPriceAccepted: s.NettoPrice,
		Tax:                s.Tax,
		Fees:               s.Fees,
		Promo:              s.Promo,
		PaymentInfo:        s.PaymentInfo,
	}
	if s.Guest != nil {
		res.Guest = *s.Guest
	}
	res.Rooms = make([]Room, 0, len(s.Rooms))
	for _, room := range s.Rooms {
		res.Rooms = append(res.Rooms, LoadRoom(room))
	}
	return res
}

func LoadRoom(s ExternalRoom) Room {
	room := Room{
		ExternalID:           s.ExternalID,
		ExternalName:         s.ExternalName,
		ChannelID:            s.ChannelID,
		ChannelRateID:        s.ChannelRateID,
		ChannelRateIDChanged: s.ChannelRateID,
		RatePlanID:           s.RatePlanID,
		RatePlanIDOriginal:   s.RatePlanID,
		Policy:               s.Policy.Clone(),
		PolicyOriginal:       s.Policy.Clone(),
		CheckIn:              dates.Date(s.CheckIn),
		CheckOut:             dates.Date(s.CheckOut),
		CheckInOriginal:      dates.Date(s.CheckIn),
		CheckOutOriginal:     dates.Date(s.CheckOut),
		GuestName:            s.GuestName,
		GuestCount:           s.GuestCount,
		Adults:               s.Adults,
		Children:             s.Children,
		MaxChildren:          s.MaxChildren,
		ExtraBed:             s.ExtraBed,
		WithBreakfast:        s.WithBreakfast,
		Currency:             s.Currency,
		Price:                s.Price,
		PriceAccepted:        s.Price,
		NettoPrice:           s.NettoPrice,
		NettoPriceAccepted:   s.NettoPrice,
		Tax:                  s.Tax,
		Fees:                 s.Fees,
		Notes:                s.Notes,
	}
	room.Days = make([]Day, 0, len(s.Days))
	for _, day := range s.Days {
		room.Days = append(room.Days, LoadDay(day))
	}
	return room
}

func LoadDay(s ExternalDay) Day {
	return Day{
		Day:           dates.Date(s.Day),
		PriceOriginal: s.Price,
		PriceChanged:  s.Price,
		PriceAccepted: s.Price,
		Tax:           s.Tax,
		Currency:      s.Currency,
		RoomTypeID:    s.RoomTypeID,
	}
}

func updateReservation(r *Reservation, s ExternalReservation) bool {
	changed := false
	changed = setDate(&r.CheckIn, s.CheckIn) || changed
	changed = setDate(&r.CheckOut, s.CheckOut) || changed
	changed = setTime(&r.BookedAt, s.BookedAt) || changed
	changed = set(&r.Status, s.Status) || changed
	changed = set(&r.RoomCount, s.RoomCount) || changed
	changed = set(&r.Currency, s.Currency) || changed
	changed = setDecimal(&r.Price, s.Price) || changed
	changed = setDecimal(&r.NettoPrice, s.NettoPrice) || changed
	changed = setDecimal(&r.Tax, s.Tax) || changed
	changed = setDecimal(&r.Fees, s.Fees) || changed
	changed = set(&r.Promo, s.Promo) || changed
	changed = set(&r.PaymentInfo, s.PaymentInfo) || changed

	var g Guest
	if s.Guest != nil {
		g = *s.Guest
	}
	changed = set(&r.Guest.Name, g.Name) || changed
	changed = set(&r.Guest.Surname, g.Surname) || changed
	changed = set(&r.Guest.Email, g.Email) || changed
	changed = set(&r.Guest.Phone, g.Phone) || changed
	changed = set(&r.Guest.Country, g.Country) || changed
	changed = set(&r.Guest.Nationality, g.Nationality) || changed
	changed = set(&r.Guest.City, g.City) || changed
	changed = set(&r.Guest.Address, g.Address) || changed
	changed = set(&r.Guest.PostCode, g.PostCode) || changed
	changed = set(&r.Guest.Comments, g.Comments) || changed
	return changed
}

func updateRoom(r *Room, s ExternalRoom) ([]int64, bool) {
	changed := false
	changed = setDate(&r.CheckIn, s.CheckIn) || changed
	changed = setDate(&r.CheckOut, s.CheckOut) || changed
	changed = set(&r.ChannelRateIDChanged, s.ChannelRateID) || changed
	changed = set(&r.ChannelID, s.ChannelID) || changed
	changed = set(&r.ExternalName, s.ExternalName) || changed
	if r.RatePlanID != s.RatePlanID {
		r.RatePlanID = s.RatePlanID
		r.Policy = s.Policy.Clone()
		changed = true
	}
	changed = set(&r.GuestName, s.GuestName) || changed
	changed = set(&r.GuestCount, s.GuestCount) || changed
	changed = set(&r.Adults, s.Adults) || changed
	changed = set(&r.Children, s.Children) || changed
	changed = set(&r.MaxChildren, s.MaxChildren) || changed
	changed = set(&r.ExtraBed, s.ExtraBed) || changed
	changed = set(&r.WithBreakfast, s.WithBreakfast) || changed
	changed = set(&r.Currency, s.Currency) || changed
	changed = setDecimal(&r.Price, s.Price) || changed
	changed = setDecimal(&r.NettoPrice, s.NettoPrice) || changed
	changed = setDecimal(&r.Tax, s.Tax) || changed
	changed = setDecimal(&r.Fees, s.Fees) || changed
	changed = set(&r.Notes.Extra, s.Notes.Extra) || changed
	changed = set(&r.Notes.Facilities, s.Notes.Facilities) || changed
	changed = set(&r.Notes.Info, s.Notes.Info) || changed
	changed = set(&r.Notes.Meal, s.Notes.Meal) || changed

	// a room the channel sends again is alive again
	if r.IsDeleted {
		r.IsDeleted = false
		r.DeletedAt = nil
		changed = true
	}

	days, dropped, daysChanged := mergeDays(r.Days, s.Days)
	r.Days = days
	return dropped, changed || daysChanged
}

func updateDay(d *Day, s ExternalDay) bool {
	changed := false
	changed = setDecimal(&d.PriceChanged, s.Price) || changed
	changed = setDecimal(&d.Tax, s.Tax) || changed
	changed = set(&d.Currency, s.Currency) || changed
	if s.RoomTypeID.IsSome() {
		changed = set(&d.RoomTypeID, s.RoomTypeID) || changed
	}
	return changed
}

func mergeRooms(existing []Room, incoming []ExternalRoom) ([]Room, Deletions, bool) {
	byExternalID := make(map[string]int, len(existing))
	var unkeyed []int
	for i, room := range existing {
		if room.ExternalID == "" {
			unkeyed = append(unkeyed, i)
			continue
		}
		if _, dup := byExternalID[room.ExternalID]; !dup {
			byExternalID[room.ExternalID] = i
		}
	}

	var deletions Deletions
	used := make(map[int]bool, len(existing))
	rooms := make([]Room, 0, len(incoming))
	changed := false

	for _, in := range incoming {
		idx, ok := -1, false
		if in.ExternalID != "" {
			idx, ok = byExternalID[in.ExternalID]
		} else if len(unkeyed) > 0 {
			// rooms without a channel key pair up in order
			idx, unkeyed, ok = unkeyed[0], unkeyed[1:], true
		}

		if ok && !used[idx] {
			used[idx] = true
			room := existing[idx].Clone()
			droppedDays, roomChanged := updateRoom(&room, in)
			deletions.DayIDs = append(deletions.DayIDs, droppedDays...)
			changed = changed || roomChanged
			rooms = append(rooms, room)
			continue
		}

		rooms = append(rooms, LoadRoom(in))
		changed = true
	}

	for i := range existing {
		if used[i] || existing[i].ID == 0 {
			continue
		}
		room := existing[i].Clone()
		if !room.IsDeleted {
			room.IsDeleted = true
			deletions.RoomIDs = append(deletions.RoomIDs, room.ID)
			changed = true
		}
		rooms = append(rooms, room)
	}

	return rooms, deletions, changed
}

func mergeDays(existing []Day, incoming []ExternalDay) ([]Day, []int64, bool) {
	byDay := make(map[time.Time]int, len(existing))
	for i, d := range existing {
		byDay[dates.Date(d.Day)] = i
	}

	used := make(map[int]bool, len(existing))
	days := make([]Day, 0, len(incoming))
	changed := false

	for _, in := range incoming {
		if idx, ok := byDay[dates.Date(in.Day)]; ok && !used[idx] {
			used[idx] = true
			day := existing[idx]
			changed = updateDay(&day, in) || changed
			days = append(days, day)
			continue
		}
		days = append(days, LoadDay(in))
		changed = true
	}

	var dropped []int64
	for i, d := range existing {
		if used[i] {
			continue
		}
		changed = true
		if d.ID != 0 {
			dropped = append(dropped, d.ID)
		}
	}
	return days, dropped, changed
}

func set[T comparable](dst *T, v T) bool {
	if *dst == v {
		return false
	}
	*dst = v
	return true
}

func setDecimal(dst *decimal.Decimal, v decimal.Decimal) bool {
	if dst.Equal(v) {
		return false
	}
	*dst = v
	return true
}

func setDate(dst *time.Time, v time.Time) bool {
	v = dates.Date(v)
	if dates.Date(*dst).Equal(v) {
		return false
	}
	*dst = v
	return true
}

func setTime(dst *time.Time, v time.Time) bool {
	if dst.Equal(v) {
		return false
	}
	*dst = v
	return true
}
