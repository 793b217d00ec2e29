//go:build unit

package commands_test

import (
	"errors"

	"hotel-board/internal/domain/reservation"
	"hotel-board/internal/usecase/readmodel"
	"hotel-board/internal/usecase/shared"
	"hotel-board/tests/common/builder"

	"go.uber.org/mock/gomock"
)

// ================================================================================
// TestImportReservation
// ================================================================================

func (s *CommandsTestSuite) expectFind(res *reservation.Reservation, err error) {
	s.reservations.EXPECT().
		FindByChannel(gomock.Any(), int64(1), reservation.SourceBooking, "BK-1001").
		Return(res, err)
}

func (s *CommandsTestSuite) TestImportReservation() {
	s.Run("success: unknown booking is created", func() {
		s.expectHouse()
		s.expectTx()
		s.expectFind(nil, notFound)
		s.expectSave(func(res *reservation.Reservation, opts shared.SaveOptions) {
			s.True(res.IsNew())
			s.False(res.IsVerified)
			s.True(opts.Deletions.IsEmpty())
		})
		s.expectRecord(readmodel.ActionImport)

		result, err := s.commands.ImportReservation(s.T().Context(), builder.NewSnapshotBuilder().Build())

		s.Require().NoError(err)
		s.True(result.Changed)
		s.Equal(int64(1), result.Reservation.ID)
		s.Equal(int64(1), result.Reservation.Version)
	})

	s.Run("success: identical snapshot is not saved", func() {
		stored := builder.NewSnapshotBuilder().BuildStored()
		stored.IsVerified = true
		s.expectHouse()
		s.expectTx()
		s.expectFind(stored, nil)

		result, err := s.commands.ImportReservation(s.T().Context(), builder.NewSnapshotBuilder().Build())

		s.Require().NoError(err)
		s.False(result.Changed)
		s.True(result.Reservation.IsVerified)
	})

	s.Run("success: changed snapshot unverifies the reservation", func() {
		stored := builder.NewSnapshotBuilder().BuildStored()
		stored.IsVerified = true
		snapshot := builder.NewSnapshotBuilder().With(func(r *reservation.ExternalReservation) {
			r.Rooms[0].Days[2].Price = builder.Dec("125")
		}).Build()

		s.expectHouse()
		s.expectTx()
		s.expectFind(stored, nil)
		s.expectSave(func(res *reservation.Reservation, _ shared.SaveOptions) {
			s.False(res.IsVerified)
			s.Nil(res.VerifiedAt)
			day := res.Rooms[0].Days[2]
			s.True(day.PriceChanged.Equal(builder.Dec("125")))
			s.True(day.PriceAccepted.Equal(builder.Dec("120")), "accepted price waits for acceptance")
		})
		s.expectRecord(readmodel.ActionImport)

		result, err := s.commands.ImportReservation(s.T().Context(), snapshot)

		s.Require().NoError(err)
		s.True(result.Changed)
		s.Equal(int64(2), result.Reservation.Version)
	})

	s.Run("success: dropped day is passed to the repository", func() {
		stored := builder.NewSnapshotBuilder().BuildStored()
		snapshot := builder.NewSnapshotBuilder().With(func(r *reservation.ExternalReservation) {
			r.CheckOut = r.CheckOut.AddDate(0, 0, -1)
			r.Rooms[0] = builder.NewExternalRoom("R1", r.CheckIn, "100", "110")
		}).Build()

		s.expectHouse()
		s.expectTx()
		s.expectFind(stored, nil)
		s.expectSave(func(_ *reservation.Reservation, opts shared.SaveOptions) {
			s.Equal([]int64{313}, opts.Deletions.DayIDs)
		})
		s.expectRecord(readmodel.ActionImport)

		_, err := s.commands.ImportReservation(s.T().Context(), snapshot)

		s.Require().NoError(err)
	})

	s.Run("success: cancellation only touches status", func() {
		stored := builder.NewSnapshotBuilder().BuildStored()
		stored.IsVerified = true
		snapshot := builder.NewSnapshotBuilder().With(func(r *reservation.ExternalReservation) {
			r.Status = reservation.StatusCancel
			r.Rooms = nil
		}).Build()

		s.expectHouse()
		s.expectTx()
		s.expectFind(stored, nil)
		s.expectSave(func(res *reservation.Reservation, opts shared.SaveOptions) {
			s.Equal(reservation.StatusCancel, res.Status)
			s.False(res.IsVerified)
			s.Len(res.Rooms, 1)
			s.False(res.Rooms[0].IsDeleted)
			s.True(opts.Deletions.IsEmpty())
		})
		s.expectRecord(readmodel.ActionImport)

		result, err := s.commands.ImportReservation(s.T().Context(), snapshot)

		s.Require().NoError(err)
		s.True(result.Changed)
	})

	s.Run("success: repeated cancellation changes nothing", func() {
		stored := builder.NewSnapshotBuilder().BuildStored()
		stored.Status = reservation.StatusCancel
		snapshot := builder.NewSnapshotBuilder().With(func(r *reservation.ExternalReservation) {
			r.Status = reservation.StatusCancel
		}).Build()

		s.expectHouse()
		s.expectTx()
		s.expectFind(stored, nil)

		result, err := s.commands.ImportReservation(s.T().Context(), snapshot)

		s.Require().NoError(err)
		s.False(result.Changed)
	})

	s.Run("success: changelog failure does not fail the import", func() {
		s.expectHouse()
		s.expectTx()
		s.expectFind(nil, notFound)
		s.expectSave(nil)
		s.changelog.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

		result, err := s.commands.ImportReservation(s.T().Context(), builder.NewSnapshotBuilder().Build())

		s.Require().NoError(err)
		s.True(result.Changed)
	})
}

func (s *CommandsTestSuite) TestImportReservationErrors() {
	testCases := []struct {
		name   string
		mutate func(r *reservation.ExternalReservation)
		setup  func()
		kind   shared.ErrorKind
	}{
		{
			name:   "unknown house",
			mutate: func(r *reservation.ExternalReservation) {},
			setup: func() {
				s.houses.EXPECT().Get(gomock.Any(), int64(1)).Return(nil, notFound)
			},
			kind: shared.KindMissedHouse,
		},
		{
			name:   "manual source",
			mutate: func(r *reservation.ExternalReservation) { r.Source = reservation.SourceManual },
			setup:  s.expectHouse,
			kind:   shared.KindError,
		},
		{
			name:   "missing channel id",
			mutate: func(r *reservation.ExternalReservation) { r.ChannelID = "" },
			setup:  s.expectHouse,
			kind:   shared.KindError,
		},
		{
			name:   "unknown status",
			mutate: func(r *reservation.ExternalReservation) { r.Status = "pending" },
			setup:  s.expectHouse,
			kind:   shared.KindError,
		},
		{
			name:   "checkout before checkin",
			mutate: func(r *reservation.ExternalReservation) { r.CheckOut = r.CheckIn.AddDate(0, 0, -1) },
			setup:  s.expectHouse,
			kind:   shared.KindWrongPeriod,
		},
		{
			name: "room with empty period",
			mutate: func(r *reservation.ExternalReservation) {
				r.Rooms[0].CheckOut = r.Rooms[0].CheckIn
			},
			setup: s.expectHouse,
			kind:  shared.KindWrongPeriod,
		},
		{
			name: "room with a night listed twice",
			mutate: func(r *reservation.ExternalReservation) {
				r.Rooms[0].Days[1].Day = r.Rooms[0].Days[0].Day
			},
			setup: s.expectHouse,
			kind:  shared.KindWrongPeriod,
		},
		{
			name: "room nights do not cover its period",
			mutate: func(r *reservation.ExternalReservation) {
				r.Rooms[0].Days = r.Rooms[0].Days[:2]
			},
			setup: s.expectHouse,
			kind:  shared.KindWrongPeriod,
		},
		{
			name: "room night outside its period",
			mutate: func(r *reservation.ExternalReservation) {
				r.Rooms[0].Days[2].Day = r.Rooms[0].CheckOut
			},
			setup: s.expectHouse,
			kind:  shared.KindWrongPeriod,
		},
		{
			name:   "lookup failure",
			mutate: func(r *reservation.ExternalReservation) {},
			setup: func() {
				s.expectHouse()
				s.expectTx()
				s.expectFind(nil, errors.New("connection reset"))
			},
			kind: shared.KindError,
		},
		{
			name:   "stale version",
			mutate: func(r *reservation.ExternalReservation) { r.Price = builder.Dec("999") },
			setup: func() {
				s.expectHouse()
				s.expectTx()
				s.expectFind(builder.NewSnapshotBuilder().BuildStored(), nil)
				s.reservations.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, conflict)
			},
			kind: shared.KindConflict,
		},
		{
			name:   "save failure",
			mutate: func(r *reservation.ExternalReservation) {},
			setup: func() {
				s.expectHouse()
				s.expectTx()
				s.expectFind(nil, notFound)
				s.reservations.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))
			},
			kind: shared.KindSave,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.setup()
			snapshot := builder.NewSnapshotBuilder().With(tc.mutate).Build()

			result, err := s.commands.ImportReservation(s.T().Context(), snapshot)

			s.Require().Error(err)
			s.Nil(result)
			s.Equal(tc.kind, shared.KindOf(err))
		})
	}
}
