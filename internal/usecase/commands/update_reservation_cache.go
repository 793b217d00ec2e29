package commands

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"hotel-board/internal/domain/reservation"
	"hotel-board/internal/pkg/dates"
	"hotel-board/internal/pkg/opt"
	"hotel-board/internal/usecase/readmodel"
	"hotel-board/internal/usecase/shared"
)

type UpdateReservationCacheRequest struct {
	HouseID int64
	// ReservationID limits the refresh to one reservation.
	ReservationID opt.Option[int64]
	Start         opt.Option[time.Time]
	End           opt.Option[time.Time]
}

// UpdateReservationCache projects reservations into calendar entries. Cancelled
// reservations are removed from the calendar.
func (uc *calendarUseCaseImpl) UpdateReservationCache(ctx context.Context, req UpdateReservationCacheRequest) error {
	h, err := shared.SelectHouse(ctx, uc.houses, req.HouseID)
	if err != nil {
		return err
	}

	var reservations []*reservation.Reservation
	if id, ok := req.ReservationID.Get(); ok {
		res, err := shared.SelectReservation(ctx, uc.reservations, h.ID, id)
		if err != nil {
			return err
		}
		reservations = []*reservation.Reservation{res}
	} else {
		start, end := uc.period(h, req.Start, req.End)
		reservations, err = uc.reservations.SelectForPeriod(ctx, h.ID, start, end)
		if err != nil {
			return shared.NewCaseError(shared.KindError, h.ID, h.ID, "select reservations", err)
		}
	}

	for _, res := range reservations {
		if err := uc.cache.Delete(ctx, h.ID, res.ID); err != nil {
			return shared.NewCaseError(shared.KindError, h.ID, res.ID, fmt.Sprintf("remove reservation %d from cache", res.ID), err)
		}
		if res.IsCanceled() {
			continue
		}
		if err := uc.cache.Save(ctx, h.ID, CalendarEntries(res)); err != nil {
			return shared.NewCaseError(shared.KindError, h.ID, res.ID, fmt.Sprintf("cache reservation %d", res.ID), err)
		}
	}

	uc.logger.DebugContext(ctx, "reservation cache updated",
		slog.Int64("house_id", h.ID),
		slog.Int("reservations", len(reservations)))
	return nil
}

// CalendarEntries splits each active room into runs of consecutive nights that
// sit on the same calendar row.
func CalendarEntries(res *reservation.Reservation) []readmodel.CalendarEntry {
	var out []readmodel.CalendarEntry
	seq := 1
	for _, room := range res.ActiveRooms() {
		days := make([]reservation.Day, len(room.Days))
		copy(days, room.Days)
		sort.Slice(days, func(i, j int) bool { return days[i].Day.Before(days[j].Day) })

		var current *readmodel.CalendarEntry
		for _, day := range days {
			grid, gridID := calendarRow(day)
			next := dates.AddDays(day.Day, 1)
			if current != nil && current.Grid == grid && current.GridID == gridID && current.CheckOut.Equal(dates.Date(day.Day)) {
				current.CheckOut = next
				continue
			}

			entry := newCalendarEntry(res, room, seq, grid, gridID, day.Day, next)
			seq++
			if current != nil {
				current.SplitRight = true
				entry.SplitLeft = true
				out = append(out, *current)
			}
			current = &entry
		}
		if current != nil {
			out = append(out, *current)
		}
	}
	return out
}

func calendarRow(day reservation.Day) (readmodel.CalendarGrid, int64) {
	if id, ok := day.RoomID.Get(); ok {
		return readmodel.GridRoom, id
	}
	return readmodel.GridRoomType, day.RoomTypeID.OrElse(0)
}

func newCalendarEntry(res *reservation.Reservation, room reservation.Room, seq int, grid readmodel.CalendarGrid, gridID int64, checkIn, checkOut time.Time) readmodel.CalendarEntry {
	entry := readmodel.CalendarEntry{
		PK:            fmt.Sprintf("%d-%d-%d", res.ID, room.ID, seq),
		ReservationID: res.ID,
		RoomID:        room.ID,
		Grid:          grid,
		GridID:        gridID,
		CheckIn:       dates.Date(checkIn),
		CheckOut:      checkOut,
		ChannelID:     res.DisplayID(),
		Source:        res.Source.String(),
		Adults:        room.Adults,
		Children:      room.Children,
		Name:          res.Guest.FullName(),
		Phone:         res.Guest.Phone,
		Comments:      room.Notes.Info,
		Currency:      res.Currency,
		Total:         res.PriceAccepted,
		IsVerified:    res.IsVerified,
	}
	if entry.Adults == 0 {
		entry.Adults = room.GuestCount
	}
	switch {
	case res.IsRoomClose():
		entry.Status = res.Status.String()
		entry.CloseReason = res.CloseReason.String()
	case res.Status == reservation.StatusHold:
		entry.Status = res.Status.String()
	case len(res.ActiveRooms()) > 1:
		entry.Status = "group"
	}
	return entry
}
