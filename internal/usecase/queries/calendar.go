package queries

import (
	"context"
	"fmt"
	"sort"
	"time"

	"hotel-board/internal/domain/house"
	"hotel-board/internal/domain/pricing"
	"hotel-board/internal/pkg/dates"
	"hotel-board/internal/pkg/opt"
	"hotel-board/internal/usecase/readmodel"
	"hotel-board/internal/usecase/shared"
)

//go:generate mockgen -source=calendar.go -destination=../../../tests/mock/queries/calendar_mock.go -package=queriesmock

type CalendarQueries interface {
	Calendar(ctx context.Context, houseID int64, start, end time.Time) ([]readmodel.CalendarEntry, error)
	Occupancy(ctx context.Context, houseID int64, roomTypeID opt.Option[int64], start, end time.Time) (map[int64]pricing.Occupancy, error)
}

type calendarQueriesImpl struct {
	houses    shared.HouseRepository
	cache     shared.ReservationCache
	occupancy shared.OccupancyRepository
}

func NewCalendarQueries(houses shared.HouseRepository, cache shared.ReservationCache, occupancy shared.OccupancyRepository) CalendarQueries {
	return &calendarQueriesImpl{houses: houses, cache: cache, occupancy: occupancy}
}

// Calendar returns cached entries overlapping [start, end], ordered by row and
// check-in.
func (q *calendarQueriesImpl) Calendar(ctx context.Context, houseID int64, start, end time.Time) ([]readmodel.CalendarEntry, error) {
	h, err := shared.SelectHouse(ctx, q.houses, houseID)
	if err != nil {
		return nil, err
	}
	if err := checkWindow(h, start, end); err != nil {
		return nil, err
	}

	entries, err := q.cache.Search(ctx, h.ID)
	if err != nil {
		return nil, shared.NewCaseError(shared.KindError, h.ID, h.ID, "search calendar cache", err)
	}

	start, end = dates.Date(start), dates.Date(end)
	out := make([]readmodel.CalendarEntry, 0, len(entries))
	for _, e := range entries {
		if e.CheckOut.After(start) && !e.CheckIn.After(end) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Grid != out[j].Grid {
			return out[i].Grid < out[j].Grid
		}
		if out[i].GridID != out[j].GridID {
			return out[i].GridID < out[j].GridID
		}
		return out[i].CheckIn.Before(out[j].CheckIn)
	})
	return out, nil
}

// Occupancy returns cached free room counts per room type for the closed window.
func (q *calendarQueriesImpl) Occupancy(ctx context.Context, houseID int64, roomTypeID opt.Option[int64], start, end time.Time) (map[int64]pricing.Occupancy, error) {
	h, err := shared.SelectHouse(ctx, q.houses, houseID)
	if err != nil {
		return nil, err
	}
	if err := checkWindow(h, start, end); err != nil {
		return nil, err
	}

	var roomTypes []house.RoomType
	if id, ok := roomTypeID.Get(); ok {
		rt, err := shared.SelectRoomType(ctx, q.houses, h.ID, id)
		if err != nil {
			return nil, err
		}
		roomTypes = []house.RoomType{*rt}
	} else {
		roomTypes, err = q.houses.SelectRoomTypes(ctx, h.ID)
		if err != nil {
			return nil, shared.NewCaseError(shared.KindError, h.ID, h.ID, "select room types", err)
		}
	}

	days := dates.Span(start, end)
	out := make(map[int64]pricing.Occupancy, len(roomTypes))
	for _, rt := range roomTypes {
		occ, err := q.occupancy.Get(ctx, h.ID, rt.ID, days)
		if err != nil {
			return nil, shared.NewCaseError(shared.KindError, h.ID, rt.ID, fmt.Sprintf("select occupancy for room type %d", rt.ID), err)
		}
		out[rt.ID] = occ
	}
	return out, nil
}

func checkWindow(h *house.House, start, end time.Time) error {
	if dates.Date(end).Before(dates.Date(start)) {
		return shared.NewCaseError(shared.KindWrongPeriod, h.ID, h.ID,
			fmt.Sprintf("wrong period %s - %s", dates.Format(start), dates.Format(end)), nil)
	}
	return nil
}
