//go:build unit

package commands_test

import (
	"hotel-board/internal/domain/reservation"
	"hotel-board/internal/usecase/commands"
	"hotel-board/internal/usecase/readmodel"
	"hotel-board/internal/usecase/shared"
	"hotel-board/tests/common/builder"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

// ================================================================================
// TestAcceptReservationChanges
// ================================================================================

// proposedReservation is a stored OTA booking whose last night moved from 120
// to 130 and still waits for acceptance.
func proposedReservation() *reservation.Reservation {
	res := builder.NewSnapshotBuilder().BuildStored()
	res.Rooms[0].Days[2].PriceChanged = builder.Dec("130")
	res.Price = builder.Dec("374")
	return res
}

func (s *CommandsTestSuite) expectGet(res *reservation.Reservation, err error) {
	s.reservations.EXPECT().Get(gomock.Any(), int64(1), int64(1)).Return(res, err)
}

func acceptRequest(dayIDs ...int64) commands.AcceptReservationRequest {
	return commands.AcceptReservationRequest{HouseID: 1, ReservationID: 1, DayIDs: dayIDs, Actor: uuid.New()}
}

func (s *CommandsTestSuite) TestAcceptReservationChanges() {
	s.Run("success: proposed values become accepted", func() {
		s.expectHouse()
		s.expectTx()
		s.expectGet(proposedReservation(), nil)
		s.expectSave(func(res *reservation.Reservation, opts shared.SaveOptions) {
			s.True(opts.WithAcceptedPrices)
			s.True(res.IsVerified)
			s.Equal(now, *res.VerifiedAt)
			s.True(res.PriceAccepted.Equal(builder.Dec("374")))
			s.True(res.Rooms[0].Days[2].PriceAccepted.Equal(builder.Dec("130")))
		})
		s.expectRecord(readmodel.ActionAccept)

		res, err := s.commands.AcceptReservationChanges(s.T().Context(), acceptRequest())

		s.Require().NoError(err)
		s.True(res.IsVerified)
		s.Equal(int64(2), res.Version)
	})

	s.Run("success: day filter keeps other nights", func() {
		s.expectHouse()
		s.expectTx()
		s.expectGet(proposedReservation(), nil)
		s.expectSave(func(res *reservation.Reservation, _ shared.SaveOptions) {
			s.True(res.Rooms[0].Days[2].PriceAccepted.Equal(builder.Dec("120")))
		})
		s.expectRecord(readmodel.ActionAccept)

		_, err := s.commands.AcceptReservationChanges(s.T().Context(), acceptRequest(311))

		s.Require().NoError(err)
	})

	s.Run("success: verified reservation is left alone", func() {
		stored := proposedReservation()
		stored.IsVerified = true
		s.expectHouse()
		s.expectTx()
		s.expectGet(stored, nil)

		res, err := s.commands.AcceptReservationChanges(s.T().Context(), acceptRequest())

		s.Require().NoError(err)
		s.Equal(int64(1), res.Version)
		s.True(res.Rooms[0].Days[2].PriceAccepted.Equal(builder.Dec("120")))
	})
}

func (s *CommandsTestSuite) TestAcceptReservationChangesErrors() {
	testCases := []struct {
		name  string
		setup func()
		kind  shared.ErrorKind
	}{
		{
			name: "unknown reservation",
			setup: func() {
				s.expectHouse()
				s.expectTx()
				s.expectGet(nil, notFound)
			},
			kind: shared.KindMissedReservation,
		},
		{
			name: "reservation of another house",
			setup: func() {
				res := proposedReservation()
				res.HouseID = 2
				s.expectHouse()
				s.expectTx()
				s.expectGet(res, nil)
			},
			kind: shared.KindMissedReservation,
		},
		{
			name: "room close",
			setup: func() {
				res := proposedReservation()
				res.Status = reservation.StatusClose
				s.expectHouse()
				s.expectTx()
				s.expectGet(res, nil)
			},
			kind: shared.KindRoomCloseReservation,
		},
		{
			name: "canceled reservation",
			setup: func() {
				res := proposedReservation()
				res.Status = reservation.StatusCancel
				s.expectHouse()
				s.expectTx()
				s.expectGet(res, nil)
			},
			kind: shared.KindMissedReservation,
		},
		{
			name: "manual reservation",
			setup: func() {
				res := proposedReservation()
				res.Source = reservation.SourceManual
				s.expectHouse()
				s.expectTx()
				s.expectGet(res, nil)
			},
			kind: shared.KindMissedReservation,
		},
		{
			name: "stale version",
			setup: func() {
				s.expectHouse()
				s.expectTx()
				s.expectGet(proposedReservation(), nil)
				s.reservations.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, conflict)
			},
			kind: shared.KindConflict,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.setup()

			res, err := s.commands.AcceptReservationChanges(s.T().Context(), acceptRequest())

			s.Require().Error(err)
			s.Nil(res)
			s.Equal(tc.kind, shared.KindOf(err))
		})
	}
}
