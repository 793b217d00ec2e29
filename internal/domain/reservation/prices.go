package reservation

import (
	"sort"
	"time"

	"hotel-board/internal/pkg/dates"
	"hotel-board/internal/pkg/opt"

	"github.com/shopspring/decimal"
)

// DayPriceEdit is a hotelier correction for one night of a room.
type DayPriceEdit struct {
	Day        time.Time
	Price      decimal.Decimal
	RoomID     opt.Option[int64]
	RoomTypeID opt.Option[int64]
}

// PlanChoice is the rate plan a room is priced under together with its policy.
type PlanChoice struct {
	RatePlanID int64
	Policy     Policy
}

// UpdateRoomPrices replaces the nights of one room with staff-edited accepted
// prices and recalculates accepted totals. Nights no longer listed are returned
// as day deletions.
func (r *Reservation) UpdateRoomPrices(roomID int64, plan PlanChoice, edits []DayPriceEdit, taxPercent decimal.Decimal) (Deletions, error) {
	if !r.AllowUpdatePrices() {
		return Deletions{}, ErrPriceUpdateNotAllowed
	}
	room, ok := r.Room(roomID)
	if !ok || room.IsDeleted {
		return Deletions{}, ErrRoomNotFound
	}
	if len(edits) == 0 {
		return Deletions{}, ErrInvalidPeriod
	}

	sorted := make([]DayPriceEdit, len(edits))
	copy(sorted, edits)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Day.Before(sorted[j].Day) })
	first, last := dates.Date(sorted[0].Day), dates.Date(sorted[len(sorted)-1].Day)

	if r.IsOTA() && (!first.Equal(dates.Date(room.CheckIn)) || !last.Equal(dates.AddDays(room.CheckOut, -1))) {
		return Deletions{}, ErrPeriodChangeNotAllowed
	}

	if !room.RatePlanID.IsSome() || room.RatePlanID.OrElse(0) != plan.RatePlanID {
		room.RatePlanID = opt.Some(plan.RatePlanID)
		room.Policy = plan.Policy.Clone()
	}

	fallbackType, fallbackRoom := room.fallbackRoomType(), room.fallbackRoom()
	existing := make(map[time.Time]Day, len(room.Days))
	for _, d := range room.Days {
		existing[dates.Date(d.Day)] = d
	}

	days := make([]Day, 0, len(sorted))
	kept := make(map[time.Time]struct{}, len(sorted))
	for i, edit := range sorted {
		key := dates.Date(edit.Day)
		if _, dup := kept[key]; dup {
			return Deletions{}, ErrDuplicateDay
		}
		// nights of a room are one unbroken stay
		if i > 0 && !key.Equal(dates.AddDays(days[i-1].Day, 1)) {
			return Deletions{}, ErrInvalidPeriod
		}
		kept[key] = struct{}{}

		day, ok := existing[key]
		if !ok {
			day = Day{Day: key, PriceChanged: edit.Price, Currency: room.Currency}
		}
		day.PriceAccepted = edit.Price
		day.Tax = TaxFor(edit.Price, taxPercent)
		if edit.RoomID.IsSome() {
			day.RoomID = edit.RoomID
		}
		if day.RoomID.IsNone() {
			day.RoomID = fallbackRoom
		}
		if edit.RoomTypeID.IsSome() {
			day.RoomTypeID = edit.RoomTypeID
		}
		if day.RoomTypeID.IsNone() {
			day.RoomTypeID = fallbackType
		}
		days = append(days, day)
	}

	var deletions Deletions
	for _, d := range room.Days {
		if _, ok := kept[dates.Date(d.Day)]; !ok && d.ID != 0 {
			deletions.DayIDs = append(deletions.DayIDs, d.ID)
		}
	}

	room.Days = days
	netto, tax := decimal.Zero, decimal.Zero
	for _, d := range days {
		netto = netto.Add(d.PriceAccepted)
		tax = tax.Add(d.Tax)
	}
	room.NettoPriceAccepted = netto
	room.Tax = tax
	room.PriceAccepted = netto.Add(tax)
	room.CheckIn = first
	room.CheckOut = dates.AddDays(last, 1)

	r.recalculateAccepted()
	return deletions, nil
}

func (r *Reservation) recalculateAccepted() {
	netto, price, tax := decimal.Zero, decimal.Zero, decimal.Zero
	var checkIn, checkOut time.Time
	for _, room := range r.Rooms {
		if room.IsDeleted {
			continue
		}
		netto = netto.Add(room.NettoPriceAccepted)
		price = price.Add(room.PriceAccepted)
		tax = tax.Add(room.Tax)
		if checkIn.IsZero() || room.CheckIn.Before(checkIn) {
			checkIn = room.CheckIn
		}
		if room.CheckOut.After(checkOut) {
			checkOut = room.CheckOut
		}
	}
	r.NettoPriceAccepted, r.PriceAccepted, r.Tax = netto, price, tax
	if !checkIn.IsZero() {
		r.CheckIn, r.CheckOut = checkIn, checkOut
	}
}

func (r *Room) fallbackRoomType() opt.Option[int64] {
	for _, d := range r.Days {
		if d.RoomTypeID.IsSome() {
			return d.RoomTypeID
		}
	}
	return opt.None[int64]()
}

func (r *Room) fallbackRoom() opt.Option[int64] {
	for _, d := range r.Days {
		if d.RoomID.IsSome() {
			return d.RoomID
		}
	}
	return opt.None[int64]()
}
