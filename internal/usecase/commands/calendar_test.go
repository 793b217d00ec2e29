//go:build unit

package commands_test

import (
	"context"
	"errors"
	"time"

	"hotel-board/internal/domain/house"
	"hotel-board/internal/domain/reservation"
	"hotel-board/internal/pkg/dates"
	"hotel-board/internal/pkg/opt"
	"hotel-board/internal/usecase/commands"
	"hotel-board/internal/usecase/readmodel"
	"hotel-board/internal/usecase/shared"
	"hotel-board/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

// ================================================================================
// TestCalculateOccupancy
// ================================================================================

func (s *CommandsTestSuite) TestCalculateOccupancy() {
	// today 2024-06-01, two days back and three ahead
	start, end := dates.New(2024, 5, 30), dates.New(2024, 6, 4)

	s.Run("success: free rooms per room type and day", func() {
		s.expectHouse()
		s.houses.EXPECT().SelectRoomTypes(gomock.Any(), int64(1)).
			Return([]house.RoomType{{ID: 3, HouseID: 1}, {ID: 4, HouseID: 1}}, nil)
		s.houses.EXPECT().CountRooms(gomock.Any(), int64(1)).Return(map[int64]int{3: 4, 4: 1}, nil)
		s.reservations.EXPECT().SelectBusyDays(gomock.Any(), int64(1), start, end).
			Return(shared.BusyDays{
				3: {dates.New(2024, 6, 1): 1, dates.New(2024, 6, 2): 4},
				4: {dates.New(2024, 5, 30): 1},
			}, nil)

		got := make(map[int64]map[time.Time]int)
		s.occupancy.EXPECT().Set(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, roomTypeID int64, occ map[time.Time]int) error {
				got[roomTypeID] = occ
				return nil
			}).Times(2)

		err := s.calendar.CalculateOccupancy(s.T().Context(), commands.CalculateOccupancyRequest{HouseID: 1})

		s.Require().NoError(err)
		s.Equal(map[time.Time]int{
			dates.New(2024, 5, 30): 4,
			dates.New(2024, 5, 31): 4,
			dates.New(2024, 6, 1):  3,
			dates.New(2024, 6, 2):  0,
			dates.New(2024, 6, 3):  4,
			dates.New(2024, 6, 4):  4,
		}, got[3])
		s.Equal(0, got[4][dates.New(2024, 5, 30)])
		s.Equal(1, got[4][dates.New(2024, 6, 4)])
	})

	s.Run("success: every house when none is given", func() {
		s.houses.EXPECT().SelectIDs(gomock.Any()).Return([]int64{1, 2}, nil)
		s.houses.EXPECT().Get(gomock.Any(), int64(1)).Return(testHouse(), nil)
		s.houses.EXPECT().Get(gomock.Any(), int64(2)).Return(&house.House{ID: 2}, nil)
		s.houses.EXPECT().SelectRoomTypes(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)

		err := s.calendar.CalculateOccupancy(s.T().Context(), commands.CalculateOccupancyRequest{})

		s.Require().NoError(err)
	})

	s.Run("success: failing house does not stop the others", func() {
		s.houses.EXPECT().SelectIDs(gomock.Any()).Return([]int64{1, 2, 3}, nil)
		s.houses.EXPECT().Get(gomock.Any(), int64(1)).Return(testHouse(), nil)
		s.houses.EXPECT().Get(gomock.Any(), int64(2)).Return(nil, notFound)
		s.houses.EXPECT().Get(gomock.Any(), int64(3)).Return(&house.House{ID: 3}, nil)
		s.houses.EXPECT().SelectRoomTypes(gomock.Any(), int64(1)).Return([]house.RoomType{{ID: 3}}, nil)
		s.houses.EXPECT().CountRooms(gomock.Any(), int64(1)).Return(map[int64]int{3: 4}, nil)
		s.reservations.EXPECT().SelectBusyDays(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection reset"))
		s.houses.EXPECT().SelectRoomTypes(gomock.Any(), int64(3)).Return([]house.RoomType{{ID: 5}}, nil)
		s.houses.EXPECT().CountRooms(gomock.Any(), int64(3)).Return(map[int64]int{5: 1}, nil)
		s.reservations.EXPECT().SelectBusyDays(gomock.Any(), int64(3), gomock.Any(), gomock.Any()).
			Return(shared.BusyDays{}, nil)
		s.occupancy.EXPECT().Set(gomock.Any(), int64(3), int64(5), gomock.Any()).Return(nil)

		err := s.calendar.CalculateOccupancy(s.T().Context(), commands.CalculateOccupancyRequest{})

		s.Require().NoError(err)
	})

	s.Run("error: requested house is reported", func() {
		s.houses.EXPECT().Get(gomock.Any(), int64(2)).Return(nil, notFound)

		err := s.calendar.CalculateOccupancy(s.T().Context(), commands.CalculateOccupancyRequest{HouseID: 2})

		s.Equal(shared.KindMissedHouse, shared.KindOf(err))
	})

	s.Run("success: explicit window and room type", func() {
		from, to := dates.New(2024, 6, 10), dates.New(2024, 6, 11)
		s.expectHouse()
		s.houses.EXPECT().GetRoomType(gomock.Any(), int64(1), int64(3)).Return(&house.RoomType{ID: 3, HouseID: 1}, nil)
		s.houses.EXPECT().CountRooms(gomock.Any(), int64(1)).Return(map[int64]int{3: 2}, nil)
		s.reservations.EXPECT().SelectBusyDays(gomock.Any(), int64(1), from, to).Return(shared.BusyDays{}, nil)
		s.occupancy.EXPECT().Set(gomock.Any(), int64(1), int64(3), map[time.Time]int{from: 2, to: 2}).Return(nil)

		err := s.calendar.CalculateOccupancy(s.T().Context(), commands.CalculateOccupancyRequest{
			HouseID:    1,
			RoomTypeID: opt.Some(int64(3)),
			Start:      opt.Some(from),
			End:        opt.Some(to),
		})

		s.Require().NoError(err)
	})

	s.Run("error: busy days lookup fails", func() {
		s.expectHouse()
		s.houses.EXPECT().SelectRoomTypes(gomock.Any(), int64(1)).Return([]house.RoomType{{ID: 3}}, nil)
		s.houses.EXPECT().CountRooms(gomock.Any(), int64(1)).Return(map[int64]int{3: 4}, nil)
		s.reservations.EXPECT().SelectBusyDays(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection reset"))

		err := s.calendar.CalculateOccupancy(s.T().Context(), commands.CalculateOccupancyRequest{HouseID: 1})

		s.Equal(shared.KindError, shared.KindOf(err))
	})
}

// ================================================================================
// TestUpdateReservationCache
// ================================================================================

func (s *CommandsTestSuite) TestUpdateReservationCache() {
	s.Run("success: one reservation is replaced in the cache", func() {
		stored := builder.NewSnapshotBuilder().BuildStored()
		s.expectHouse()
		s.expectGet(stored, nil)
		s.cache.EXPECT().Delete(gomock.Any(), int64(1), int64(1)).Return(nil)
		s.cache.EXPECT().Save(gomock.Any(), int64(1), commands.CalendarEntries(stored)).Return(nil)

		err := s.calendar.UpdateReservationCache(s.T().Context(), commands.UpdateReservationCacheRequest{
			HouseID:       1,
			ReservationID: opt.Some(int64(1)),
		})

		s.Require().NoError(err)
	})

	s.Run("success: canceled reservation is only removed", func() {
		stored := builder.NewSnapshotBuilder().BuildStored()
		stored.Status = reservation.StatusCancel
		s.expectHouse()
		s.expectGet(stored, nil)
		s.cache.EXPECT().Delete(gomock.Any(), int64(1), int64(1)).Return(nil)

		err := s.calendar.UpdateReservationCache(s.T().Context(), commands.UpdateReservationCacheRequest{
			HouseID:       1,
			ReservationID: opt.Some(int64(1)),
		})

		s.Require().NoError(err)
	})

	s.Run("success: whole window", func() {
		s.expectHouse()
		s.reservations.EXPECT().SelectForPeriod(gomock.Any(), int64(1), dates.New(2024, 5, 30), dates.New(2024, 6, 4)).
			Return([]*reservation.Reservation{builder.NewSnapshotBuilder().BuildStored()}, nil)
		s.cache.EXPECT().Delete(gomock.Any(), int64(1), int64(1)).Return(nil)
		s.cache.EXPECT().Save(gomock.Any(), int64(1), gomock.Len(1)).Return(nil)

		err := s.calendar.UpdateReservationCache(s.T().Context(), commands.UpdateReservationCacheRequest{HouseID: 1})

		s.Require().NoError(err)
	})

	s.Run("error: cache unavailable", func() {
		s.expectHouse()
		s.expectGet(builder.NewSnapshotBuilder().BuildStored(), nil)
		s.cache.EXPECT().Delete(gomock.Any(), int64(1), int64(1)).Return(errors.New("connection refused"))

		err := s.calendar.UpdateReservationCache(s.T().Context(), commands.UpdateReservationCacheRequest{
			HouseID:       1,
			ReservationID: opt.Some(int64(1)),
		})

		s.Equal(shared.KindError, shared.KindOf(err))
	})
}

// ================================================================================
// TestCalendarEntries
// ================================================================================

func decimalEqual(a, b decimal.Decimal) bool {
	return a.Equal(b)
}

func (s *CommandsTestSuite) TestCalendarEntries() {
	s.Run("nights on one row form one entry", func() {
		res := builder.NewSnapshotBuilder().BuildStored()

		entries := commands.CalendarEntries(res)

		want := []readmodel.CalendarEntry{{
			PK:            "1-11-1",
			ReservationID: 1,
			RoomID:        11,
			Grid:          readmodel.GridRoomType,
			GridID:        3,
			CheckIn:       dates.New(2024, 6, 10),
			CheckOut:      dates.New(2024, 6, 13),
			ChannelID:     "BK-1001",
			Source:        "booking",
			Adults:        2,
			Name:          "Ann Lee",
			Phone:         "+100200300",
			Currency:      "EUR",
			Total:         builder.Dec("363"),
		}}
		if diff := cmp.Diff(want, entries, cmpopts.EquateEmpty(), cmp.Comparer(decimalEqual)); diff != "" {
			s.Failf("entries differ", "(-want +got):\n%s", diff)
		}
	})

	s.Run("moving to a room splits the stay", func() {
		res := builder.NewSnapshotBuilder().BuildStored()
		res.Rooms[0].Days[1].RoomID = opt.Some(int64(21))
		res.Rooms[0].Days[2].RoomID = opt.Some(int64(21))

		entries := commands.CalendarEntries(res)

		s.Require().Len(entries, 2)
		s.Equal("1-11-1", entries[0].PK)
		s.Equal(readmodel.GridRoomType, entries[0].Grid)
		s.Equal(dates.New(2024, 6, 11), entries[0].CheckOut)
		s.True(entries[0].SplitRight)
		s.False(entries[0].SplitLeft)

		s.Equal("1-11-2", entries[1].PK)
		s.Equal(readmodel.GridRoom, entries[1].Grid)
		s.Equal(int64(21), entries[1].GridID)
		s.Equal(dates.New(2024, 6, 11), entries[1].CheckIn)
		s.Equal(dates.New(2024, 6, 13), entries[1].CheckOut)
		s.True(entries[1].SplitLeft)
	})

	s.Run("group and deleted rooms", func() {
		res := builder.NewSnapshotBuilder().With(func(r *reservation.ExternalReservation) {
			r.Rooms = append(r.Rooms,
				builder.NewExternalRoom("R2", r.CheckIn, "80", "80", "80"),
				builder.NewExternalRoom("R3", r.CheckIn, "80", "80", "80"),
			)
		}).BuildStored()
		res.Rooms[2].IsDeleted = true

		entries := commands.CalendarEntries(res)

		s.Require().Len(entries, 2)
		s.Equal("1-12-2", entries[1].PK)
		for _, e := range entries {
			s.Equal("group", e.Status)
		}
	})

	s.Run("room close carries its reason", func() {
		res := builder.NewSnapshotBuilder().BuildStored()
		res.Status = reservation.StatusClose
		res.CloseReason = reservation.CloseReasonRenovation

		entries := commands.CalendarEntries(res)

		s.Require().Len(entries, 1)
		s.Equal("close", entries[0].Status)
		s.Equal("renovation", entries[0].CloseReason)
	})
}
