package reservation

import (
	"strings"
	"time"

	"hotel-board/internal/pkg/dates"
	"hotel-board/internal/pkg/opt"
)

// MoveTarget is where the nights of a room go. With a room set, RoomTypeID is
// the type of that room.
type MoveTarget struct {
	RoomTypeID int64
	RoomID     opt.Option[int64]
}

// MoveRoom reassigns the nights of one room that fall in [start, end) and
// returns how many were moved.
func (r *Reservation) MoveRoom(roomID int64, start, end time.Time, target MoveTarget) (int, error) {
	if r.IsCanceled() {
		return 0, ErrReservationCanceled
	}
	room, ok := r.Room(roomID)
	if !ok || room.IsDeleted {
		return 0, ErrRoomNotFound
	}
	if target.RoomTypeID <= 0 {
		return 0, ErrNoMoveTarget
	}

	start, end = dates.Date(start), dates.Date(end)
	moved := 0
	for i := range room.Days {
		d := &room.Days[i]
		day := dates.Date(d.Day)
		if day.Before(start) || !day.Before(end) {
			continue
		}
		d.RoomTypeID = opt.Some(target.RoomTypeID)
		d.RoomID = target.RoomID
		moved++
	}
	if moved == 0 {
		return 0, ErrDayOutsideRoomPeriod
	}
	return moved, nil
}

// GuestPatch holds the guest fields to overwrite; absent fields stay.
type GuestPatch struct {
	Name     opt.Option[string]
	Surname  opt.Option[string]
	Email    opt.Option[string]
	Phone    opt.Option[string]
	Country  opt.Option[string]
	Comments opt.Option[string]
}

// UpdateGuest applies the patch to a manual booking. It reports false when
// nothing changed.
func (r *Reservation) UpdateGuest(p GuestPatch) (bool, error) {
	if r.IsOTA() || r.IsRoomClose() {
		return false, ErrGuestUpdateNotAllowed
	}

	g := r.Guest
	patch := func(dst *string, v opt.Option[string]) {
		if s, ok := v.Get(); ok {
			*dst = strings.TrimSpace(s)
		}
	}
	patch(&g.Name, p.Name)
	patch(&g.Surname, p.Surname)
	patch(&g.Email, p.Email)
	patch(&g.Phone, p.Phone)
	patch(&g.Country, p.Country)
	patch(&g.Comments, p.Comments)

	if g.FullName() == "" {
		return false, ErrGuestNameRequired
	}
	if g == r.Guest {
		return false, nil
	}
	if g.FullName() != r.Guest.FullName() {
		for i := range r.Rooms {
			if r.Rooms[i].GuestName == r.Guest.FullName() {
				r.Rooms[i].GuestName = g.FullName()
			}
		}
	}
	r.Guest = g
	return true, nil
}

type RoomCloseUpdate struct {
	RoomID     int64
	RoomTypeID int64
	Period     Period
	Reason     CloseReason
	Notes      string
}

// UpdateRoomClose moves a room close to another room, period or reason.
// Stored nights are reused by date; the rest are returned as deletions.
func (r *Reservation) UpdateRoomClose(u RoomCloseUpdate) (Deletions, error) {
	if !r.IsRoomClose() {
		return Deletions{}, ErrNotRoomClose
	}
	if !u.Reason.IsValid() {
		return Deletions{}, ErrCloseReasonRequired
	}

	checkIn, checkOut := u.Period.CheckIn(), u.Period.CheckOut()
	var deletions Deletions
	for i := range r.Rooms {
		room := &r.Rooms[i]
		if room.IsDeleted {
			continue
		}
		existing := make(map[time.Time]Day, len(room.Days))
		for _, d := range room.Days {
			existing[dates.Date(d.Day)] = d
		}

		days := make([]Day, 0, u.Period.Nights())
		kept := make(map[time.Time]struct{}, u.Period.Nights())
		for _, day := range u.Period.Days() {
			d, ok := existing[day]
			if !ok {
				d = Day{Day: day, Currency: room.Currency}
			}
			d.RoomID = opt.Some(u.RoomID)
			d.RoomTypeID = opt.Some(u.RoomTypeID)
			days = append(days, d)
			kept[day] = struct{}{}
		}
		for _, d := range room.Days {
			if _, ok := kept[dates.Date(d.Day)]; !ok && d.ID != 0 {
				deletions.DayIDs = append(deletions.DayIDs, d.ID)
			}
		}

		room.Days = days
		room.CheckIn, room.CheckOut = checkIn, checkOut
		room.CheckInOriginal, room.CheckOutOriginal = checkIn, checkOut
		room.Notes.Info = u.Notes
	}

	r.CheckIn, r.CheckOut = checkIn, checkOut
	r.CloseReason = u.Reason
	if err := r.Validate(); err != nil {
		return Deletions{}, err
	}
	return deletions, nil
}

// OpenRoom releases the room held by a room close.
func (r *Reservation) OpenRoom() error {
	if !r.IsRoomClose() {
		return ErrNotRoomClose
	}
	r.Status = StatusCancel
	r.CloseReason = ""
	return nil
}

// AcceptHold confirms a manual HOLD booking. Other statuses are left as they
// are and reported as unchanged.
func (r *Reservation) AcceptHold() (bool, error) {
	if r.IsOTA() || r.IsRoomClose() {
		return false, ErrHoldAcceptNotAllowed
	}
	if r.Status != StatusHold {
		return false, nil
	}
	r.Status = StatusNew
	return true, nil
}
