package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"hotel-board/internal/domain/house"
	"hotel-board/internal/pkg/clock"
	"hotel-board/internal/pkg/config"
	"hotel-board/internal/pkg/dates"
	"hotel-board/internal/pkg/opt"
	"hotel-board/internal/usecase/shared"
)

//go:generate mockgen -source=calculate_occupancy.go -destination=../../../tests/mock/commands/calendar_mock.go -package=commandsmock

type CalendarCommands interface {
	CalculateOccupancy(ctx context.Context, req CalculateOccupancyRequest) error
	UpdateReservationCache(ctx context.Context, req UpdateReservationCacheRequest) error
}

type calendarUseCaseImpl struct {
	houses       shared.HouseRepository
	reservations shared.ReservationRepository
	occupancy    shared.OccupancyRepository
	cache        shared.ReservationCache
	cfg          config.BoardConfig
	clock        clock.Clock
	logger       *slog.Logger
}

func NewCalendarUseCase(
	houses shared.HouseRepository,
	reservations shared.ReservationRepository,
	occupancy shared.OccupancyRepository,
	cache shared.ReservationCache,
	cfg config.BoardConfig,
	clk clock.Clock,
	logger *slog.Logger,
) CalendarCommands {
	return &calendarUseCaseImpl{
		houses:       houses,
		reservations: reservations,
		occupancy:    occupancy,
		cache:        cache,
		cfg:          cfg,
		clock:        clk,
		logger:       logger,
	}
}

type CalculateOccupancyRequest struct {
	// HouseID zero recalculates every house.
	HouseID    int64
	RoomTypeID opt.Option[int64]
	Start      opt.Option[time.Time]
	End        opt.Option[time.Time]
}

// CalculateOccupancy stores free room counts per room type and day of the
// closed period, by default from two days ago up to the configured horizon.
// When every house is recalculated a failing house is logged and skipped.
func (uc *calendarUseCaseImpl) CalculateOccupancy(ctx context.Context, req CalculateOccupancyRequest) error {
	if req.HouseID != 0 {
		return uc.calculateHouse(ctx, req.HouseID, req)
	}

	houseIDs, err := uc.houses.SelectIDs(ctx)
	if err != nil {
		return shared.NewCaseError(shared.KindError, 0, 0, "select houses", err)
	}
	failed := 0
	for _, houseID := range houseIDs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := uc.calculateHouse(ctx, houseID, req); err != nil {
			failed++
			shared.LogCaseError(ctx, uc.logger, "calculate_occupancy", err)
		}
	}
	if failed > 0 {
		uc.logger.WarnContext(ctx, "occupancy recalculation skipped houses",
			slog.Int("failed", failed),
			slog.Int("houses", len(houseIDs)))
	}
	return nil
}

func (uc *calendarUseCaseImpl) calculateHouse(ctx context.Context, houseID int64, req CalculateOccupancyRequest) error {
	h, err := shared.SelectHouse(ctx, uc.houses, houseID)
	if err != nil {
		return err
	}
	start, end := uc.period(h, req.Start, req.End)

	roomTypes, err := uc.selectRoomTypes(ctx, h.ID, req.RoomTypeID)
	if err != nil {
		return err
	}
	if len(roomTypes) == 0 {
		return nil
	}

	counts, err := uc.houses.CountRooms(ctx, h.ID)
	if err != nil {
		return shared.NewCaseError(shared.KindError, h.ID, h.ID, "count rooms", err)
	}
	busy, err := uc.reservations.SelectBusyDays(ctx, h.ID, start, end)
	if err != nil {
		return shared.NewCaseError(shared.KindError, h.ID, h.ID, "select busy days", err)
	}

	days := dates.Span(start, end)
	for _, rt := range roomTypes {
		occupancy := make(map[time.Time]int, len(days))
		for _, day := range days {
			occupancy[day] = counts[rt.ID] - busy[rt.ID][day]
		}
		if err := uc.occupancy.Set(ctx, h.ID, rt.ID, occupancy); err != nil {
			return shared.NewCaseError(shared.KindError, h.ID, rt.ID,
				fmt.Sprintf("save occupancy for room type %d", rt.ID), err)
		}
	}

	uc.logger.DebugContext(ctx, "occupancy recalculated",
		slog.Int64("house_id", h.ID),
		slog.Int("room_types", len(roomTypes)),
		slog.String("start", dates.Format(start)),
		slog.String("end", dates.Format(end)))
	return nil
}

func (uc *calendarUseCaseImpl) selectRoomTypes(ctx context.Context, houseID int64, roomTypeID opt.Option[int64]) ([]house.RoomType, error) {
	if id, ok := roomTypeID.Get(); ok {
		rt, err := shared.SelectRoomType(ctx, uc.houses, houseID, id)
		if err != nil {
			return nil, err
		}
		return []house.RoomType{*rt}, nil
	}
	roomTypes, err := uc.houses.SelectRoomTypes(ctx, houseID)
	if err != nil {
		return nil, shared.NewCaseError(shared.KindError, houseID, houseID, "select room types", err)
	}
	return roomTypes, nil
}

// period fills in the default calendar window; a start after the end collapses
// to the end day.
func (uc *calendarUseCaseImpl) period(h *house.House, start, end opt.Option[time.Time]) (time.Time, time.Time) {
	today := clock.Today(uc.clock, h.Location())
	s := dates.Date(start.OrElse(dates.AddDays(today, -uc.cfg.OccupancyPastDays)))
	e := dates.Date(end.OrElse(dates.AddDays(today, uc.cfg.OccupancyPeriodDays)))
	if s.After(e) {
		s = e
	}
	return s, e
}
