//go:build unit

package commands_test

import (
	"context"
	"errors"
	"time"

	"hotel-board/internal/domain/house"
	"hotel-board/internal/domain/pricing"
	"hotel-board/internal/domain/reservation"
	"hotel-board/internal/pkg/dates"
	"hotel-board/internal/pkg/opt"
	"hotel-board/internal/usecase/commands"
	"hotel-board/internal/usecase/queries"
	"hotel-board/internal/usecase/readmodel"
	"hotel-board/internal/usecase/shared"
	"hotel-board/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var (
	stayStart = dates.New(2024, 6, 10)
	stayEnd   = dates.New(2024, 6, 13)
)

func createRequest() commands.CreateReservationRequest {
	return commands.CreateReservationRequest{
		HouseID:    1,
		RoomTypeID: 3,
		RoomID:     opt.Some(int64(21)),
		RatePlanID: 7,
		Start:      stayStart,
		End:        stayEnd,
		GuestCount: 2,
		Guest:      reservation.Guest{Name: "Bob", Surname: "Stone", Phone: "+100"},
		Notes:      "late arrival",
		Actor:      uuid.New(),
	}
}

func quote(withRate bool) *queries.ReservationQuote {
	q := &queries.ReservationQuote{
		House:    testHouse(),
		RoomType: &house.RoomType{ID: 3, HouseID: 1},
		RatePlan: &pricing.RatePlan{ID: 7, HouseID: 1, Policy: map[string]string{"name": "flexible"}},
		Prices: pricing.BaseSeries(stayStart, stayEnd, map[time.Time]decimal.Decimal{
			dates.New(2024, 6, 10): builder.Dec("100"),
			dates.New(2024, 6, 11): builder.Dec("100"),
			dates.New(2024, 6, 12): builder.Dec("100"),
		}),
	}
	if withRate {
		q.Rate = opt.Some(pricing.Rate{ID: 71, RatePlanID: 7, RoomTypeID: 3, Occupancy: 2})
	}
	return q
}

func (s *CommandsTestSuite) expectRoom(roomTypeID int64) {
	s.houses.EXPECT().GetRoom(gomock.Any(), int64(1), int64(21)).
		Return(&house.Room{ID: 21, HouseID: 1, RoomTypeID: roomTypeID, Name: "101"}, nil)
}

func (s *CommandsTestSuite) expectBusy(busy bool) {
	s.reservations.EXPECT().
		IsRoomBusy(gomock.Any(), int64(1), int64(21), stayStart, stayEnd, opt.None[int64]()).
		Return(busy, nil)
}

// ================================================================================
// TestCreateReservation
// ================================================================================

func (s *CommandsTestSuite) TestCreateReservation() {
	s.Run("success: verified hold booking on a free room", func() {
		s.expectHouse()
		s.expectRoom(3)
		s.priceQueries.EXPECT().CalculateReservation(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req queries.CalculateReservationRequest) (*queries.ReservationQuote, error) {
				s.Equal(int64(7), req.RatePlanID)
				s.Equal(2, req.GuestCount)
				return quote(true), nil
			})
		s.expectTx()
		s.expectBusy(false)
		s.expectSave(func(res *reservation.Reservation, opts shared.SaveOptions) {
			s.True(opts.WithAcceptedPrices)
			s.Equal(reservation.SourceManual, res.Source)
			s.Equal(reservation.StatusHold, res.Status)
			s.True(res.IsVerified)
			s.Equal(now, res.BookedAt)
			s.True(res.PriceAccepted.Equal(builder.Dec("330")))
			s.Require().Len(res.Rooms, 1)
			s.Equal(opt.Some(int64(71)), res.Rooms[0].RateID)
			for _, d := range res.Rooms[0].Days {
				s.Equal(opt.Some(int64(21)), d.RoomID)
			}
		})
		s.expectRecord(readmodel.ActionCreate)

		res, err := s.commands.CreateReservation(s.T().Context(), createRequest())

		s.Require().NoError(err)
		s.Equal(int64(1), res.ID)
		s.Equal("Bob Stone", res.Guest.FullName())
	})

	s.Run("success: unassigned booking skips the busy check", func() {
		req := createRequest()
		req.RoomID = opt.None[int64]()

		s.expectHouse()
		s.priceQueries.EXPECT().CalculateReservation(gomock.Any(), gomock.Any()).Return(quote(true), nil)
		s.expectTx()
		s.expectSave(func(res *reservation.Reservation, _ shared.SaveOptions) {
			for _, d := range res.Rooms[0].Days {
				s.True(d.RoomID.IsNone())
				s.Equal(opt.Some(int64(3)), d.RoomTypeID)
			}
		})
		s.expectRecord(readmodel.ActionCreate)

		_, err := s.commands.CreateReservation(s.T().Context(), req)

		s.Require().NoError(err)
	})
}

func (s *CommandsTestSuite) TestCreateReservationErrors() {
	testCases := []struct {
		name   string
		mutate func(req *commands.CreateReservationRequest)
		setup  func()
		kind   shared.ErrorKind
	}{
		{
			name:   "empty period",
			mutate: func(req *commands.CreateReservationRequest) { req.End = req.Start },
			setup:  s.expectHouse,
			kind:   shared.KindWrongPeriod,
		},
		{
			name:   "missing guest",
			mutate: func(req *commands.CreateReservationRequest) { req.Guest = reservation.Guest{} },
			setup:  s.expectHouse,
			kind:   shared.KindMissedGuest,
		},
		{
			name:   "unknown room",
			mutate: func(req *commands.CreateReservationRequest) {},
			setup: func() {
				s.expectHouse()
				s.houses.EXPECT().GetRoom(gomock.Any(), int64(1), int64(21)).Return(nil, notFound)
			},
			kind: shared.KindMissedRoom,
		},
		{
			name:   "room of another room type",
			mutate: func(req *commands.CreateReservationRequest) {},
			setup: func() {
				s.expectHouse()
				s.expectRoom(4)
			},
			kind: shared.KindMissedRoom,
		},
		{
			name:   "no rate",
			mutate: func(req *commands.CreateReservationRequest) {},
			setup: func() {
				s.expectHouse()
				s.expectRoom(3)
				s.priceQueries.EXPECT().CalculateReservation(gomock.Any(), gomock.Any()).Return(quote(false), nil)
			},
			kind: shared.KindMissedRate,
		},
		{
			name:   "pricing fails",
			mutate: func(req *commands.CreateReservationRequest) {},
			setup: func() {
				s.expectHouse()
				s.expectRoom(3)
				s.priceQueries.EXPECT().CalculateReservation(gomock.Any(), gomock.Any()).
					Return(nil, shared.NewCaseError(shared.KindMissedRatePlan, 1, 7, "select rate plan 7", nil))
			},
			kind: shared.KindMissedRatePlan,
		},
		{
			name:   "busy room",
			mutate: func(req *commands.CreateReservationRequest) {},
			setup: func() {
				s.expectHouse()
				s.expectRoom(3)
				s.priceQueries.EXPECT().CalculateReservation(gomock.Any(), gomock.Any()).Return(quote(true), nil)
				s.expectTx()
				s.expectBusy(true)
			},
			kind: shared.KindBusyRoom,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.setup()
			req := createRequest()
			tc.mutate(&req)

			res, err := s.commands.CreateReservation(s.T().Context(), req)

			s.Require().Error(err)
			s.Nil(res)
			s.Equal(tc.kind, shared.KindOf(err))
		})
	}
}

// ================================================================================
// TestCancelReservation
// ================================================================================

func manualStored() *reservation.Reservation {
	res := builder.NewSnapshotBuilder().BuildStored()
	res.Source = reservation.SourceManual
	res.ChannelID = ""
	res.Status = reservation.StatusHold
	res.IsVerified = true
	return res
}

func (s *CommandsTestSuite) TestCancelReservation() {
	req := commands.CancelReservationRequest{HouseID: 1, ReservationID: 1, Actor: uuid.New()}

	s.Run("success: manual booking is canceled", func() {
		s.expectHouse()
		s.expectTx()
		s.expectGet(manualStored(), nil)
		s.expectSave(func(res *reservation.Reservation, _ shared.SaveOptions) {
			s.Equal(reservation.StatusCancel, res.Status)
		})
		s.expectRecord(readmodel.ActionCancel)

		res, err := s.commands.CancelReservation(s.T().Context(), req)

		s.Require().NoError(err)
		s.True(res.IsCanceled())
	})

	s.Run("success: canceling twice saves nothing", func() {
		stored := manualStored()
		stored.Status = reservation.StatusCancel
		s.expectHouse()
		s.expectTx()
		s.expectGet(stored, nil)

		res, err := s.commands.CancelReservation(s.T().Context(), req)

		s.Require().NoError(err)
		s.Equal(int64(1), res.Version)
	})

	s.Run("error: channel booking", func() {
		s.expectHouse()
		s.expectTx()
		s.expectGet(builder.NewSnapshotBuilder().BuildStored(), nil)

		_, err := s.commands.CancelReservation(s.T().Context(), req)

		s.Equal(shared.KindMissedReservation, shared.KindOf(err))
	})

	s.Run("error: room close", func() {
		stored := manualStored()
		stored.Status = reservation.StatusClose
		s.expectHouse()
		s.expectTx()
		s.expectGet(stored, nil)

		_, err := s.commands.CancelReservation(s.T().Context(), req)

		s.Equal(shared.KindRoomCloseReservation, shared.KindOf(err))
	})
}

// ================================================================================
// TestCreateRoomClose
// ================================================================================

func (s *CommandsTestSuite) TestCreateRoomClose() {
	req := commands.CreateRoomCloseRequest{
		HouseID: 1,
		RoomID:  21,
		Start:   stayStart,
		End:     stayEnd,
		Reason:  reservation.CloseReasonMaintenance,
		Notes:   "boiler",
		Actor:   uuid.New(),
	}

	s.Run("success: zero priced close on the room", func() {
		s.expectHouse()
		s.expectRoom(3)
		s.expectTx()
		s.expectBusy(false)
		s.expectSave(func(res *reservation.Reservation, _ shared.SaveOptions) {
			s.True(res.IsRoomClose())
			s.Equal(reservation.CloseReasonMaintenance, res.CloseReason)
			s.True(res.Price.IsZero())
			s.Len(res.Rooms[0].Days, 3)
			for _, d := range res.Rooms[0].Days {
				s.Equal(opt.Some(int64(21)), d.RoomID)
				s.Equal(opt.Some(int64(3)), d.RoomTypeID)
			}
		})
		s.expectRecord(readmodel.ActionRoomClose)

		res, err := s.commands.CreateRoomClose(s.T().Context(), req)

		s.Require().NoError(err)
		s.True(res.IsVerified)
	})

	s.Run("error: busy room", func() {
		s.expectHouse()
		s.expectRoom(3)
		s.expectTx()
		s.expectBusy(true)

		_, err := s.commands.CreateRoomClose(s.T().Context(), req)

		s.Equal(shared.KindBusyRoom, shared.KindOf(err))
	})

	s.Run("error: busy check fails", func() {
		s.expectHouse()
		s.expectRoom(3)
		s.expectTx()
		s.reservations.EXPECT().IsRoomBusy(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, errors.New("connection reset"))

		_, err := s.commands.CreateRoomClose(s.T().Context(), req)

		s.Equal(shared.KindError, shared.KindOf(err))
	})

	s.Run("error: wrong period", func() {
		bad := req
		bad.End = bad.Start
		s.expectHouse()
		s.expectRoom(3)

		_, err := s.commands.CreateRoomClose(s.T().Context(), bad)

		s.Equal(shared.KindWrongPeriod, shared.KindOf(err))
	})
}

// ================================================================================
// TestUpdateReservationPrices
// ================================================================================

func priceEdits(prices ...string) []reservation.DayPriceEdit {
	out := make([]reservation.DayPriceEdit, 0, len(prices))
	for i, p := range prices {
		out = append(out, reservation.DayPriceEdit{Day: dates.AddDays(stayStart, i), Price: builder.Dec(p)})
	}
	return out
}

func (s *CommandsTestSuite) expectPlan() {
	s.prices.EXPECT().GetPlan(gomock.Any(), int64(1), int64(7)).
		Return(&pricing.RatePlan{ID: 7, HouseID: 1, Policy: map[string]string{"name": "flexible"}}, nil)
}

func (s *CommandsTestSuite) TestUpdateReservationPrices() {
	request := func(prices ...string) commands.UpdateReservationPricesRequest {
		return commands.UpdateReservationPricesRequest{
			HouseID: 1, ReservationID: 1, RoomID: 11, RatePlanID: 7,
			Prices: priceEdits(prices...), Actor: uuid.New(),
		}
	}

	s.Run("success: channel booking prices are corrected", func() {
		s.expectHouse()
		s.expectPlan()
		s.expectTx()
		s.expectGet(builder.NewSnapshotBuilder().BuildStored(), nil)
		s.expectSave(func(res *reservation.Reservation, opts shared.SaveOptions) {
			s.True(opts.WithAcceptedPrices)
			s.True(opts.Deletions.IsEmpty())
			s.True(res.PriceAccepted.Equal(builder.Dec("330")))
		})
		s.expectRecord(readmodel.ActionUpdatePrices)

		res, err := s.commands.UpdateReservationPrices(s.T().Context(), request("90", "100", "110"))

		s.Require().NoError(err)
		s.True(res.NettoPriceAccepted.Equal(builder.Dec("300")))
	})

	s.Run("success: manual booking drops a night", func() {
		s.expectHouse()
		s.expectPlan()
		s.expectTx()
		s.expectGet(manualStored(), nil)
		s.expectSave(func(_ *reservation.Reservation, opts shared.SaveOptions) {
			s.Equal([]int64{313}, opts.Deletions.DayIDs)
		})
		s.expectRecord(readmodel.ActionUpdatePrices)

		res, err := s.commands.UpdateReservationPrices(s.T().Context(), request("50", "50"))

		s.Require().NoError(err)
		s.Equal(dates.New(2024, 6, 12), res.CheckOut)
	})

	testCases := []struct {
		name   string
		stored func() *reservation.Reservation
		req    commands.UpdateReservationPricesRequest
		kind   shared.ErrorKind
	}{
		{
			name:   "channel booking period can not change",
			stored: func() *reservation.Reservation { return builder.NewSnapshotBuilder().BuildStored() },
			req:    request("90", "100"),
			kind:   shared.KindWrongPeriod,
		},
		{
			name: "canceled booking",
			stored: func() *reservation.Reservation {
				res := manualStored()
				res.Status = reservation.StatusCancel
				return res
			},
			req:  request("90", "100", "110"),
			kind: shared.KindMissedReservation,
		},
		{
			name:   "unknown room",
			stored: manualStored,
			req: func() commands.UpdateReservationPricesRequest {
				r := request("90")
				r.RoomID = 99
				return r
			}(),
			kind: shared.KindMissedRoom,
		},
		{
			name:   "no nights",
			stored: manualStored,
			req:    request(),
			kind:   shared.KindWrongPeriod,
		},
		{
			name:   "gap between nights",
			stored: func() *reservation.Reservation { return builder.NewSnapshotBuilder().BuildStored() },
			req: func() commands.UpdateReservationPricesRequest {
				r := request()
				r.Prices = []reservation.DayPriceEdit{
					{Day: stayStart, Price: builder.Dec("90")},
					{Day: dates.AddDays(stayStart, 2), Price: builder.Dec("110")},
				}
				return r
			}(),
			kind: shared.KindWrongPeriod,
		},
	}

	for _, tc := range testCases {
		s.Run("error: "+tc.name, func() {
			s.expectHouse()
			s.expectPlan()
			s.expectTx()
			s.expectGet(tc.stored(), nil)

			res, err := s.commands.UpdateReservationPrices(s.T().Context(), tc.req)

			s.Require().Error(err)
			s.Nil(res)
			s.Equal(tc.kind, shared.KindOf(err))
		})
	}

	s.Run("error: unknown rate plan", func() {
		s.expectHouse()
		s.prices.EXPECT().GetPlan(gomock.Any(), int64(1), int64(7)).Return(nil, notFound)

		_, err := s.commands.UpdateReservationPrices(s.T().Context(), request("90"))

		s.Equal(shared.KindMissedRatePlan, shared.KindOf(err))
	})
}
