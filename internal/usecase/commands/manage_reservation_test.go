//go:build unit

package commands_test

import (
	"context"
	"errors"

	"hotel-board/internal/domain/house"
	"hotel-board/internal/domain/reservation"
	"hotel-board/internal/pkg/dates"
	"hotel-board/internal/pkg/opt"
	"hotel-board/internal/usecase/commands"
	"hotel-board/internal/usecase/readmodel"
	"hotel-board/internal/usecase/shared"
	"hotel-board/tests/common/builder"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

// ================================================================================
// TestMoveReservation
// ================================================================================

func moveRequest() commands.MoveReservationRequest {
	return commands.MoveReservationRequest{
		HouseID:       1,
		ReservationID: 1,
		RoomID:        11,
		TargetRoomID:  opt.Some(int64(22)),
		Actor:         uuid.New(),
	}
}

func (s *CommandsTestSuite) expectTargetRoom() {
	s.houses.EXPECT().GetRoom(gomock.Any(), int64(1), int64(22)).
		Return(&house.Room{ID: 22, HouseID: 1, RoomTypeID: 4, Name: "102"}, nil)
}

func (s *CommandsTestSuite) expectMoveBusy(start, end any, busy bool) {
	s.reservations.EXPECT().
		IsRoomBusy(gomock.Any(), int64(1), int64(22), start, end, opt.Some(int64(1))).
		Return(busy, nil)
}

func (s *CommandsTestSuite) TestMoveReservation() {
	s.Run("success: whole stay moves to a free room", func() {
		s.expectHouse()
		s.expectTargetRoom()
		s.expectTx()
		s.expectGet(builder.NewSnapshotBuilder().BuildStored(), nil)
		s.expectMoveBusy(stayStart, stayEnd, false)
		s.expectSave(func(res *reservation.Reservation, opts shared.SaveOptions) {
			s.False(opts.WithAcceptedPrices)
			for _, d := range res.Rooms[0].Days {
				s.Equal(opt.Some(int64(22)), d.RoomID)
				s.Equal(opt.Some(int64(4)), d.RoomTypeID)
			}
		})
		s.changelog.EXPECT().Record(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry readmodel.ChangelogEntry) error {
				s.Equal(readmodel.ActionMove, entry.Action)
				s.Contains(entry.Message, "room 102")
				return nil
			})

		res, err := s.commands.MoveReservation(s.T().Context(), moveRequest())

		s.Require().NoError(err)
		s.Equal(int64(2), res.Version)
	})

	s.Run("success: window is clipped to the room period", func() {
		req := moveRequest()
		req.Start = opt.Some(dates.New(2024, 6, 11))
		req.End = opt.Some(dates.New(2024, 6, 20))

		s.expectHouse()
		s.expectTargetRoom()
		s.expectTx()
		s.expectGet(builder.NewSnapshotBuilder().BuildStored(), nil)
		s.expectMoveBusy(dates.New(2024, 6, 11), stayEnd, false)
		s.expectSave(func(res *reservation.Reservation, _ shared.SaveOptions) {
			days := res.Rooms[0].Days
			s.True(days[0].RoomID.IsNone())
			s.Equal(opt.Some(int64(22)), days[1].RoomID)
			s.Equal(opt.Some(int64(22)), days[2].RoomID)
		})
		s.expectRecord(readmodel.ActionMove)

		_, err := s.commands.MoveReservation(s.T().Context(), req)

		s.Require().NoError(err)
	})

	s.Run("success: room type move skips the busy check", func() {
		req := moveRequest()
		req.TargetRoomID = opt.None[int64]()
		req.TargetRoomTypeID = opt.Some(int64(4))

		s.expectHouse()
		s.houses.EXPECT().GetRoomType(gomock.Any(), int64(1), int64(4)).
			Return(&house.RoomType{ID: 4, HouseID: 1, Name: "Suite"}, nil)
		s.expectTx()
		s.expectGet(builder.NewSnapshotBuilder().BuildStored(), nil)
		s.expectSave(func(res *reservation.Reservation, _ shared.SaveOptions) {
			for _, d := range res.Rooms[0].Days {
				s.True(d.RoomID.IsNone())
				s.Equal(opt.Some(int64(4)), d.RoomTypeID)
			}
		})
		s.expectRecord(readmodel.ActionMove)

		_, err := s.commands.MoveReservation(s.T().Context(), req)

		s.Require().NoError(err)
	})
}

func (s *CommandsTestSuite) TestMoveReservationErrors() {
	testCases := []struct {
		name   string
		mutate func(req *commands.MoveReservationRequest)
		setup  func()
		kind   shared.ErrorKind
	}{
		{
			name: "no room or room type to move to",
			mutate: func(req *commands.MoveReservationRequest) {
				req.TargetRoomID = opt.None[int64]()
			},
			setup: s.expectHouse,
			kind:  shared.KindMissedRoom,
		},
		{
			name: "unknown target room",
			setup: func() {
				s.expectHouse()
				s.houses.EXPECT().GetRoom(gomock.Any(), int64(1), int64(22)).Return(nil, notFound)
			},
			kind: shared.KindMissedRoom,
		},
		{
			name: "target room is busy",
			setup: func() {
				s.expectHouse()
				s.expectTargetRoom()
				s.expectTx()
				s.expectGet(builder.NewSnapshotBuilder().BuildStored(), nil)
				s.expectMoveBusy(stayStart, stayEnd, true)
			},
			kind: shared.KindBusyRoom,
		},
		{
			name: "busy check fails",
			setup: func() {
				s.expectHouse()
				s.expectTargetRoom()
				s.expectTx()
				s.expectGet(builder.NewSnapshotBuilder().BuildStored(), nil)
				s.reservations.EXPECT().IsRoomBusy(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(false, errors.New("db down"))
			},
			kind: shared.KindError,
		},
		{
			name: "canceled reservation",
			setup: func() {
				stored := builder.NewSnapshotBuilder().BuildStored()
				stored.Status = reservation.StatusCancel
				s.expectHouse()
				s.expectTargetRoom()
				s.expectTx()
				s.expectGet(stored, nil)
			},
			kind: shared.KindMissedReservation,
		},
		{
			name: "room not in the reservation",
			mutate: func(req *commands.MoveReservationRequest) {
				req.RoomID = 99
			},
			setup: func() {
				s.expectHouse()
				s.expectTargetRoom()
				s.expectTx()
				s.expectGet(builder.NewSnapshotBuilder().BuildStored(), nil)
			},
			kind: shared.KindMissedRoom,
		},
		{
			name: "window outside the stay",
			mutate: func(req *commands.MoveReservationRequest) {
				req.Start = opt.Some(dates.New(2024, 6, 20))
				req.End = opt.Some(dates.New(2024, 6, 22))
			},
			setup: func() {
				s.expectHouse()
				s.expectTargetRoom()
				s.expectTx()
				s.expectGet(builder.NewSnapshotBuilder().BuildStored(), nil)
			},
			kind: shared.KindWrongPeriod,
		},
		{
			name: "concurrent change",
			setup: func() {
				s.expectHouse()
				s.expectTargetRoom()
				s.expectTx()
				s.expectGet(builder.NewSnapshotBuilder().BuildStored(), nil)
				s.expectMoveBusy(stayStart, stayEnd, false)
				s.reservations.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, conflict)
			},
			kind: shared.KindConflict,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			req := moveRequest()
			if tc.mutate != nil {
				tc.mutate(&req)
			}
			tc.setup()

			res, err := s.commands.MoveReservation(s.T().Context(), req)

			s.Nil(res)
			s.Equal(tc.kind, shared.KindOf(err))
		})
	}
}

// ================================================================================
// TestUpdateReservationGuest
// ================================================================================

func (s *CommandsTestSuite) TestUpdateReservationGuest() {
	req := func(p reservation.GuestPatch) commands.UpdateReservationGuestRequest {
		return commands.UpdateReservationGuestRequest{HouseID: 1, ReservationID: 1, Guest: p, Actor: uuid.New()}
	}

	s.Run("success: guest and room guest names are renamed", func() {
		s.expectHouse()
		s.expectTx()
		s.expectGet(manualStored(), nil)
		s.expectSave(func(res *reservation.Reservation, _ shared.SaveOptions) {
			s.Equal("Bob Lee", res.Guest.FullName())
			s.Equal("+200", res.Guest.Phone)
			s.Equal("Bob Lee", res.Rooms[0].GuestName)
		})
		s.expectRecord(readmodel.ActionUpdateGuest)

		res, err := s.commands.UpdateReservationGuest(s.T().Context(),
			req(reservation.GuestPatch{Name: opt.Some(" Bob "), Phone: opt.Some("+200")}))

		s.Require().NoError(err)
		s.Equal(int64(2), res.Version)
	})

	s.Run("success: same values save nothing", func() {
		s.expectHouse()
		s.expectTx()
		s.expectGet(manualStored(), nil)

		res, err := s.commands.UpdateReservationGuest(s.T().Context(),
			req(reservation.GuestPatch{Name: opt.Some("Ann")}))

		s.Require().NoError(err)
		s.Equal(int64(1), res.Version)
	})

	s.Run("error: channel booking", func() {
		s.expectHouse()
		s.expectTx()
		s.expectGet(builder.NewSnapshotBuilder().BuildStored(), nil)

		_, err := s.commands.UpdateReservationGuest(s.T().Context(),
			req(reservation.GuestPatch{Phone: opt.Some("+200")}))

		s.Equal(shared.KindMissedReservation, shared.KindOf(err))
	})

	s.Run("error: guest name removed", func() {
		s.expectHouse()
		s.expectTx()
		s.expectGet(manualStored(), nil)

		_, err := s.commands.UpdateReservationGuest(s.T().Context(),
			req(reservation.GuestPatch{Name: opt.Some(""), Surname: opt.Some("  ")}))

		s.Equal(shared.KindMissedGuest, shared.KindOf(err))
	})
}

// ================================================================================
// TestUpdateRoomClose
// ================================================================================

func (s *CommandsTestSuite) storedRoomClose() *reservation.Reservation {
	period, err := reservation.NewPeriod(stayStart, stayEnd)
	s.Require().NoError(err)
	res, err := reservation.NewFactory(s.clock).NewRoomClose(reservation.RoomCloseSpec{
		HouseID:    1,
		RoomID:     21,
		RoomTypeID: 3,
		Period:     period,
		Reason:     reservation.CloseReasonMaintenance,
		Notes:      "boiler",
		Currency:   "EUR",
	})
	s.Require().NoError(err)
	builder.AssignIDs(res)
	res.Version = 1
	return res
}

func updateRoomCloseRequest() commands.UpdateRoomCloseRequest {
	return commands.UpdateRoomCloseRequest{
		HouseID:       1,
		ReservationID: 1,
		RoomID:        22,
		Start:         dates.New(2024, 6, 11),
		End:           dates.New(2024, 6, 15),
		Reason:        reservation.CloseReasonRenovation,
		Notes:         "paint",
		Actor:         uuid.New(),
	}
}

func (s *CommandsTestSuite) expectCloseBusy(busy bool, err error) {
	s.reservations.EXPECT().
		IsRoomBusy(gomock.Any(), int64(1), int64(22), dates.New(2024, 6, 11), dates.New(2024, 6, 15), opt.Some(int64(1))).
		Return(busy, err)
}

func (s *CommandsTestSuite) TestUpdateRoomClose() {
	s.Run("success: close moves to another room and period", func() {
		s.expectHouse()
		s.expectTargetRoom()
		s.expectTx()
		s.expectGet(s.storedRoomClose(), nil)
		s.expectCloseBusy(false, nil)
		s.expectSave(func(res *reservation.Reservation, opts shared.SaveOptions) {
			s.True(opts.WithAcceptedPrices)
			s.Equal([]int64{311}, opts.Deletions.DayIDs)
			s.Equal(reservation.CloseReasonRenovation, res.CloseReason)
			s.Equal(dates.New(2024, 6, 11), res.CheckIn)
			s.Equal(dates.New(2024, 6, 15), res.CheckOut)
			s.Require().Len(res.Rooms[0].Days, 4)
			for _, d := range res.Rooms[0].Days {
				s.Equal(opt.Some(int64(22)), d.RoomID)
				s.Equal(opt.Some(int64(4)), d.RoomTypeID)
			}
		})
		s.expectRecord(readmodel.ActionUpdateRoomClose)

		res, err := s.commands.UpdateRoomClose(s.T().Context(), updateRoomCloseRequest())

		s.Require().NoError(err)
		s.Equal("paint", res.Rooms[0].Notes.Info)
	})

	testCases := []struct {
		name   string
		mutate func(req *commands.UpdateRoomCloseRequest)
		setup  func()
		kind   shared.ErrorKind
	}{
		{
			name: "empty period",
			mutate: func(req *commands.UpdateRoomCloseRequest) {
				req.End = req.Start
			},
			setup: func() {
				s.expectHouse()
				s.expectTargetRoom()
			},
			kind: shared.KindWrongPeriod,
		},
		{
			name: "reservation is a booking",
			setup: func() {
				s.expectHouse()
				s.expectTargetRoom()
				s.expectTx()
				s.expectGet(manualStored(), nil)
			},
			kind: shared.KindMissedReservation,
		},
		{
			name: "room is busy",
			setup: func() {
				s.expectHouse()
				s.expectTargetRoom()
				s.expectTx()
				s.expectGet(s.storedRoomClose(), nil)
				s.expectCloseBusy(true, nil)
			},
			kind: shared.KindBusyRoom,
		},
		{
			name: "busy check fails",
			setup: func() {
				s.expectHouse()
				s.expectTargetRoom()
				s.expectTx()
				s.expectGet(s.storedRoomClose(), nil)
				s.expectCloseBusy(false, errors.New("db down"))
			},
			kind: shared.KindError,
		},
		{
			name: "unknown close reason",
			mutate: func(req *commands.UpdateRoomCloseRequest) {
				req.Reason = "holiday"
			},
			setup: func() {
				s.expectHouse()
				s.expectTargetRoom()
				s.expectTx()
				s.expectGet(s.storedRoomClose(), nil)
				s.expectCloseBusy(false, nil)
			},
			kind: shared.KindWrongPeriod,
		},
	}

	for _, tc := range testCases {
		s.Run("error: "+tc.name, func() {
			req := updateRoomCloseRequest()
			if tc.mutate != nil {
				tc.mutate(&req)
			}
			tc.setup()

			res, err := s.commands.UpdateRoomClose(s.T().Context(), req)

			s.Nil(res)
			s.Equal(tc.kind, shared.KindOf(err))
		})
	}
}

// ================================================================================
// TestDeleteRoomClose
// ================================================================================

func (s *CommandsTestSuite) TestDeleteRoomClose() {
	req := commands.DeleteRoomCloseRequest{HouseID: 1, ReservationID: 1, Actor: uuid.New()}

	s.Run("success: room is opened", func() {
		s.expectHouse()
		s.expectTx()
		s.expectGet(s.storedRoomClose(), nil)
		s.expectSave(func(res *reservation.Reservation, opts shared.SaveOptions) {
			s.Empty(opts.Deletions.DayIDs)
			s.Equal(reservation.StatusCancel, res.Status)
			s.Empty(res.CloseReason)
		})
		s.expectRecord(readmodel.ActionDeleteRoomClose)

		res, err := s.commands.DeleteRoomClose(s.T().Context(), req)

		s.Require().NoError(err)
		s.True(res.IsCanceled())
	})

	s.Run("error: booking is not a room close", func() {
		s.expectHouse()
		s.expectTx()
		s.expectGet(manualStored(), nil)

		_, err := s.commands.DeleteRoomClose(s.T().Context(), req)

		s.Equal(shared.KindMissedReservation, shared.KindOf(err))
	})
}

// ================================================================================
// TestAcceptHoldReservation
// ================================================================================

func (s *CommandsTestSuite) TestAcceptHoldReservation() {
	req := commands.AcceptHoldReservationRequest{HouseID: 1, ReservationID: 1, Actor: uuid.New()}

	s.Run("success: hold becomes new", func() {
		s.expectHouse()
		s.expectTx()
		s.expectGet(manualStored(), nil)
		s.expectSave(func(res *reservation.Reservation, _ shared.SaveOptions) {
			s.Equal(reservation.StatusNew, res.Status)
		})
		s.expectRecord(readmodel.ActionAcceptHold)

		res, err := s.commands.AcceptHoldReservation(s.T().Context(), req)

		s.Require().NoError(err)
		s.Equal(reservation.StatusNew, res.Status)
	})

	s.Run("success: confirmed booking saves nothing", func() {
		stored := manualStored()
		stored.Status = reservation.StatusNew
		s.expectHouse()
		s.expectTx()
		s.expectGet(stored, nil)

		res, err := s.commands.AcceptHoldReservation(s.T().Context(), req)

		s.Require().NoError(err)
		s.Equal(int64(1), res.Version)
	})

	s.Run("error: channel booking", func() {
		s.expectHouse()
		s.expectTx()
		s.expectGet(builder.NewSnapshotBuilder().BuildStored(), nil)

		_, err := s.commands.AcceptHoldReservation(s.T().Context(), req)

		s.Equal(shared.KindMissedReservation, shared.KindOf(err))
	})

	s.Run("error: reservation of another house", func() {
		stored := manualStored()
		stored.HouseID = 2
		s.expectHouse()
		s.expectTx()
		s.expectGet(stored, nil)

		_, err := s.commands.AcceptHoldReservation(s.T().Context(), req)

		s.Equal(shared.KindMissedReservation, shared.KindOf(err))
	})
}
