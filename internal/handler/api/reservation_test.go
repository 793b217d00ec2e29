//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"hotel-board/internal/domain/reservation"
	"hotel-board/internal/handler/api"
	resdto "hotel-board/internal/handler/dto/response"
	"hotel-board/internal/pkg/dates"
	"hotel-board/internal/pkg/opt"
	"hotel-board/internal/usecase/commands"
	"hotel-board/internal/usecase/shared"
	"hotel-board/tests/common/builder"
	"hotel-board/tests/common/httptest"
	"hotel-board/tests/common/testutil"
	commandsmock "hotel-board/tests/mock/commands"
	queriesmock "hotel-board/tests/mock/queries"
	tasksmock "hotel-board/tests/mock/tasks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	mockTasks    *tasksmock.MockTasks
	handler      *api.ReservationHandler
	actor        uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.mockTasks = tasksmock.NewMockTasks(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries, s.mockTasks)
	s.actor = uuid.New()

	// Mock middleware behavior: an authorization header authenticates the staff
	house := s.router.Group("/houses/:house_id", func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("staff_id", s.actor)
		}
	})
	house.POST("/reservations", s.handler.Create)
	house.POST("/reservations/import", s.handler.Import)
	house.POST("/reservations/:id/accept", s.handler.Accept)
	house.POST("/reservations/:id/cancel", s.handler.Cancel)
	house.PUT("/reservations/:id/rooms/:room_id/prices", s.handler.UpdatePrices)
	house.POST("/rooms/:room_id/close", s.handler.CloseRoom)
	house.GET("/reservations/:id", s.handler.Get)
	house.PUT("/reservations/:id/rooms/:room_id/move", s.handler.Move)
	house.PATCH("/reservations/:id/guest", s.handler.UpdateGuest)
	house.POST("/reservations/:id/accept-hold", s.handler.AcceptHold)
	house.PUT("/room-closes/:id", s.handler.UpdateRoomClose)
	house.DELETE("/room-closes/:id", s.handler.DeleteRoomClose)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

type testCaseReservation struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/houses/1/reservations"
	reqBody := builder.NewCreateReservationRequest()
	stored := builder.NewSnapshotBuilder().With(func(r *reservation.ExternalReservation) {
		r.Source = reservation.SourceManual
		r.Status = reservation.StatusHold
	}).BuildStored()

	s.Run("success: returns 201 and refreshes the calendar", func() {
		expected := commands.CreateReservationRequest{
			HouseID:    1,
			RoomTypeID: 3,
			RatePlanID: 7,
			Start:      dates.New(2024, 6, 10),
			End:        dates.New(2024, 6, 13),
			GuestCount: 2,
			Guest:      reservation.Guest{Name: "Ann", Surname: "Lee", Email: "ann@example.com", Phone: "+100200300"},
			Actor:      s.actor,
		}
		gomock.InOrder(
			s.mockCommands.EXPECT().CreateReservation(gomock.Any(), expected).Return(stored, nil),
			s.mockTasks.EXPECT().Refresh(gomock.Any(), int64(1), int64(1)),
		)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(int64(1), response.ID)
		s.Equal("hold", response.Status)
		s.Equal(resdto.Date("2024-06-10"), response.CheckIn)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Content-Type": "application/json; charset=utf-8"})
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		bound := []testCaseReservation{
			{name: "guest count boundary OK (1)", mutate: testutil.Field("guest_count", 1), expectCode: http.StatusCreated},
			{name: "guest count boundary invalid (0)", mutate: testutil.Field("guest_count", 0), expectCode: http.StatusBadRequest},
			{name: "guest count boundary invalid (21)", mutate: testutil.Field("guest_count", 21), expectCode: http.StatusBadRequest},
			{name: "end before start", mutate: testutil.Field("end", "2024-06-09"), expectCode: http.StatusBadRequest},
			{name: "same day stay", mutate: testutil.Field("end", "2024-06-10"), expectCode: http.StatusBadRequest},
			{name: "not a date", mutate: testutil.Field("start", "10/06/2024"), expectCode: http.StatusBadRequest},
		}

		missing := []testCaseReservation{
			{name: "missing field: room_type_id", mutate: testutil.Field("room_type_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: rate_plan_id", mutate: testutil.Field("rate_plan_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: start", mutate: testutil.Field("start", nil), expectCode: http.StatusBadRequest},
			{name: "missing guest name", mutate: testutil.Field("guest", map[string]any{"surname": "Lee"}), expectCode: http.StatusBadRequest},
		}

		invalid := []testCaseReservation{
			{name: "invalid guest email", mutate: testutil.Field("guest", map[string]any{"name": "Ann", "email": "nope"}), expectCode: http.StatusBadRequest},
			{name: "negative room id", mutate: testutil.Field("room_id", -1), expectCode: http.StatusBadRequest},
		}

		for _, group := range [][]testCaseReservation{bound, missing, invalid} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).Return(stored, nil)
						s.mockTasks.EXPECT().Refresh(gomock.Any(), int64(1), int64(1))
					}

					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "token")
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
					}
				})
			}
		}
	})

	s.Run("error: maps use case errors to proper statuses", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "room type not found",
				err:            shared.NewCaseError(shared.KindMissedRoomType, 1, 3, "room type not found", nil),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "room type not found",
			},
			{
				name:           "room busy",
				err:            shared.NewCaseError(shared.KindBusyRoom, 1, 21, "room is busy", nil),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "room is busy",
			},
			{
				name:           "no rate",
				err:            shared.NewCaseError(shared.KindMissedRate, 1, 7, "no rate for guest count", nil),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "no rate",
			},
			{
				name:           "save failure",
				err:            shared.NewCaseError(shared.KindSave, 1, 0, "failed to save", errors.New("db down")),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 401 without staff", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 400 on invalid house id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/houses/abc/reservations", reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid house_id")
	})
}

func (s *ReservationHandlerTestSuite) TestImport() {
	url := "/houses/1/reservations/import"
	reqBody := builder.NewImportRequest()

	s.Run("success: passes the snapshot to the runner", func() {
		stored := builder.NewSnapshotBuilder().BuildStored()
		s.mockTasks.EXPECT().ImportReservation(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, snapshot reservation.ExternalReservation) (*commands.ImportResult, error) {
				s.Equal(int64(1), snapshot.HouseID)
				s.Equal(reservation.SourceBooking, snapshot.Source)
				s.Equal("BK-1001", snapshot.ChannelID)
				s.Equal(dates.New(2024, 6, 13), snapshot.CheckOut)
				s.Require().NotNil(snapshot.Guest)
				s.Equal("Ann", snapshot.Guest.Name)
				s.Require().Len(snapshot.Rooms, 1)
				s.Equal(opt.Some(int64(7)), snapshot.Rooms[0].RatePlanID)
				s.Require().Len(snapshot.Rooms[0].Days, 3)
				s.True(snapshot.Rooms[0].Days[2].Price.Equal(builder.Dec("120")))
				s.Equal(opt.Some(int64(3)), snapshot.Rooms[0].Days[2].RoomTypeID)
				return &commands.ImportResult{Reservation: stored, Changed: true}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var response resdto.ImportResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Changed)
		s.Require().NotNil(response.Reservation)
		s.Len(response.Reservation.Rooms[0].Days, 3)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []testCaseReservation{
			{name: "manual source is not a channel", mutate: testutil.Field("source", "manual"), expectCode: http.StatusBadRequest},
			{name: "close status", mutate: testutil.Field("status", "close"), expectCode: http.StatusBadRequest},
			{name: "missing channel id", mutate: testutil.Field("channel_id", nil), expectCode: http.StatusBadRequest},
			{name: "invalid currency", mutate: testutil.Field("currency", "EURO"), expectCode: http.StatusBadRequest},
			{name: "room without dates", mutate: testutil.Field("rooms", []map[string]any{{"external_id": "R1"}}), expectCode: http.StatusBadRequest},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 404 for unknown house", func() {
		s.mockTasks.EXPECT().ImportReservation(gomock.Any(), gomock.Any()).
			Return(nil, shared.NewCaseError(shared.KindMissedHouse, 1, 1, "house not found", nil))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "house not found")
	})
}

func (s *ReservationHandlerTestSuite) TestAccept() {
	url := "/houses/1/reservations/5/accept"

	s.Run("success: accepts the selected nights", func() {
		stored := builder.NewSnapshotBuilder().BuildStored()
		s.mockTasks.EXPECT().AcceptReservationChanges(gomock.Any(), commands.AcceptReservationRequest{
			HouseID:       1,
			ReservationID: 5,
			DayIDs:        []int64{311, 312},
			Actor:         s.actor,
		}).Return(stored, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"day_ids": []int64{311, 312}}, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: empty body accepts every night", func() {
		stored := builder.NewSnapshotBuilder().BuildStored()
		s.mockTasks.EXPECT().AcceptReservationChanges(gomock.Any(), commands.AcceptReservationRequest{
			HouseID:       1,
			ReservationID: 5,
			Actor:         s.actor,
		}).Return(stored, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 422 for a room close", func() {
		s.mockTasks.EXPECT().AcceptReservationChanges(gomock.Any(), gomock.Any()).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "room close")
	})

	s.Run("error: 409 on concurrent change", func() {
		s.mockTasks.EXPECT().AcceptReservationChanges(gomock.Any(), gomock.Any()).
			Return(nil, shared.NewCaseError(shared.KindConflict, 1, 5, "reservation changed concurrently", errors.New("stale version")))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "changed concurrently")
	})

	s.Run("error: 400 on invalid day ids", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"day_ids": []int64{0}}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *ReservationHandlerTestSuite) TestCancel() {
	s.Run("success: cancels and refreshes", func() {
		stored := builder.NewSnapshotBuilder().With(func(r *reservation.ExternalReservation) {
			r.Source = reservation.SourceManual
			r.Status = reservation.StatusCancel
		}).BuildStored()
		gomock.InOrder(
			s.mockCommands.EXPECT().CancelReservation(gomock.Any(), commands.CancelReservationRequest{
				HouseID: 1, ReservationID: 1, Actor: s.actor,
			}).Return(stored, nil),
			s.mockTasks.EXPECT().Refresh(gomock.Any(), int64(1), int64(1)),
		)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/houses/1/reservations/1/cancel", nil, "token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("cancel", response.Status)
	})

	s.Run("error: 404 for unknown reservation", func() {
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), gomock.Any()).
			Return(nil, shared.NewCaseError(shared.KindMissedReservation, 1, 9, "reservation not found", nil))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/houses/1/reservations/9/cancel", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "reservation not found")
	})

	s.Run("error: 400 on zero id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/houses/1/reservations/0/cancel", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *ReservationHandlerTestSuite) TestUpdatePrices() {
	url := "/houses/1/reservations/1/rooms/11/prices"

	s.Run("success: converts nights", func() {
		stored := builder.NewSnapshotBuilder().BuildStored()
		s.mockCommands.EXPECT().UpdateReservationPrices(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.UpdateReservationPricesRequest) (*reservation.Reservation, error) {
				s.Equal(int64(11), req.RoomID)
				s.Equal(int64(7), req.RatePlanID)
				s.Equal(s.actor, req.Actor)
				s.Require().Len(req.Prices, 2)
				s.Equal(dates.New(2024, 6, 11), req.Prices[1].Day)
				s.True(req.Prices[1].Price.Equal(builder.Dec("99.5")))
				s.True(req.Prices[1].RoomID.IsNone())
				return stored, nil
			})
		s.mockTasks.EXPECT().Refresh(gomock.Any(), int64(1), int64(1))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, builder.NewUpdatePricesRequest("90", "99.5"), "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []testCaseReservation{
			{name: "no prices", mutate: testutil.Field("prices", []any{}), expectCode: http.StatusBadRequest},
			{name: "negative price", mutate: testutil.Field("prices", []map[string]any{{"day": "2024-06-10", "price": "-1"}}), expectCode: http.StatusBadRequest},
			{name: "invalid day", mutate: testutil.Field("prices", []map[string]any{{"day": "tomorrow", "price": "10"}}), expectCode: http.StatusBadRequest},
			{name: "missing rate plan", mutate: testutil.Field("rate_plan_id", nil), expectCode: http.StatusBadRequest},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), builder.NewUpdatePricesRequest("90"), tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, requestMap, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 422 for a wrong period", func() {
		s.mockCommands.EXPECT().UpdateReservationPrices(gomock.Any(), gomock.Any()).
			Return(nil, shared.NewCaseError(shared.KindWrongPeriod, 1, 1, "day is outside of room period", nil))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, builder.NewUpdatePricesRequest("90"), "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "outside of room period")
	})
}

func (s *ReservationHandlerTestSuite) TestCloseRoom() {
	url := "/houses/1/rooms/21/close"
	reqBody := map[string]any{"start": "2024-06-10", "end": "2024-06-12", "reason": "maintenance", "notes": " leaking tap "}

	s.Run("success: returns 201", func() {
		stored := builder.NewSnapshotBuilder().With(func(r *reservation.ExternalReservation) {
			r.Source = reservation.SourceManual
			r.Status = reservation.StatusClose
		}).BuildStored()
		s.mockCommands.EXPECT().CreateRoomClose(gomock.Any(), commands.CreateRoomCloseRequest{
			HouseID: 1,
			RoomID:  21,
			Start:   dates.New(2024, 6, 10),
			End:     dates.New(2024, 6, 12),
			Reason:  reservation.CloseReasonMaintenance,
			Notes:   "leaking tap",
			Actor:   s.actor,
		}).Return(stored, nil)
		s.mockTasks.EXPECT().Refresh(gomock.Any(), int64(1), int64(1))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 on unknown reason", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("reason", "holiday"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 409 when the room is busy", func() {
		s.mockCommands.EXPECT().CreateRoomClose(gomock.Any(), gomock.Any()).
			Return(nil, shared.NewCaseError(shared.KindBusyRoom, 1, 21, "room is busy", nil))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "room is busy")
	})
}

func (s *ReservationHandlerTestSuite) TestGet() {
	s.Run("success: proposed and accepted values side by side", func() {
		stored := builder.NewSnapshotBuilder().BuildStored()
		stored.Rooms[0].Days[2].PriceAccepted = builder.Dec("115")
		s.mockQueries.EXPECT().GetReservation(gomock.Any(), int64(1), int64(1)).Return(stored, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/houses/1/reservations/1", nil, "token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(1), response.ID)
		s.True(response.Price.Equal(builder.Dec("363")))
		s.Require().Len(response.Rooms, 1)
		day := response.Rooms[0].Days[2]
		s.True(day.PriceChanged.Equal(builder.Dec("120")))
		s.True(day.PriceAccepted.Equal(builder.Dec("115")))
	})

	s.Run("error: 404 for a reservation of another house", func() {
		s.mockQueries.EXPECT().GetReservation(gomock.Any(), int64(2), int64(1)).
			Return(nil, shared.NewCaseError(shared.KindMissedReservation, 2, 1, "reservation 1 belongs to another house", nil))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/houses/2/reservations/1", nil, "token")
		httptest.AssertCaseError(s.T(), rec, http.StatusNotFound, "missed_reservation")
	})

	s.Run("error: 400 on a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/houses/1/reservations/abc", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *ReservationHandlerTestSuite) TestMove() {
	url := "/houses/1/reservations/1/rooms/11/move"

	s.Run("success: window and room are passed through", func() {
		stored := builder.NewSnapshotBuilder().BuildStored()
		s.mockCommands.EXPECT().MoveReservation(gomock.Any(), commands.MoveReservationRequest{
			HouseID:          1,
			ReservationID:    1,
			RoomID:           11,
			Start:            opt.Some(dates.New(2024, 6, 11)),
			End:              opt.Some(dates.New(2024, 6, 13)),
			TargetRoomTypeID: opt.None[int64](),
			TargetRoomID:     opt.Some(int64(22)),
			Actor:            s.actor,
		}).Return(stored, nil)
		s.mockTasks.EXPECT().Refresh(gomock.Any(), int64(1), int64(1))

		body := map[string]any{"start": "2024-06-11", "end": "2024-06-13", "room_id": 22}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: room type without a window", func() {
		s.mockCommands.EXPECT().MoveReservation(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.MoveReservationRequest) (*reservation.Reservation, error) {
				s.True(req.Start.IsNone())
				s.True(req.End.IsNone())
				s.Equal(opt.Some(int64(4)), req.TargetRoomTypeID)
				return builder.NewSnapshotBuilder().BuildStored(), nil
			})
		s.mockTasks.EXPECT().Refresh(gomock.Any(), int64(1), int64(1))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"room_type_id": 4}, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name string
			body map[string]any
		}{
			{name: "no destination", body: map[string]any{"start": "2024-06-11"}},
			{name: "reversed window", body: map[string]any{"start": "2024-06-12", "end": "2024-06-11", "room_id": 22}},
			{name: "not a date", body: map[string]any{"start": "11/06/2024", "room_id": 22}},
			{name: "negative room", body: map[string]any{"room_id": -1}},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, tc.body, "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 409 when the room is busy", func() {
		s.mockCommands.EXPECT().MoveReservation(gomock.Any(), gomock.Any()).
			Return(nil, shared.NewCaseError(shared.KindBusyRoom, 1, 22, "room 22 is busy", nil))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"room_id": 22}, "token")
		httptest.AssertCaseError(s.T(), rec, http.StatusConflict, "busy_room")
	})
}

func (s *ReservationHandlerTestSuite) TestUpdateGuest() {
	url := "/houses/1/reservations/1/guest"

	s.Run("success: only sent fields are patched", func() {
		stored := builder.NewSnapshotBuilder().BuildStored()
		s.mockCommands.EXPECT().UpdateReservationGuest(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.UpdateReservationGuestRequest) (*reservation.Reservation, error) {
				s.Equal(int64(1), req.ReservationID)
				s.Equal(opt.Some("+4400"), req.Guest.Phone)
				s.Equal(opt.Some(""), req.Guest.Comments)
				s.True(req.Guest.Name.IsNone())
				return stored, nil
			})
		s.mockTasks.EXPECT().Refresh(gomock.Any(), int64(1), int64(1))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"phone": "+4400", "comments": ""}, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on invalid email", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"email": "nope"}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 for a channel booking", func() {
		s.mockCommands.EXPECT().UpdateReservationGuest(gomock.Any(), gomock.Any()).
			Return(nil, shared.NewCaseError(shared.KindMissedReservation, 1, 1, "guest of reservation 1 can not be changed", nil))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"phone": "+1"}, "token")
		httptest.AssertCaseError(s.T(), rec, http.StatusNotFound, "missed_reservation")
	})
}

func (s *ReservationHandlerTestSuite) TestAcceptHold() {
	s.Run("success: returns the confirmed booking", func() {
		stored := builder.NewSnapshotBuilder().With(func(r *reservation.ExternalReservation) {
			r.Source = reservation.SourceManual
		}).BuildStored()
		s.mockCommands.EXPECT().AcceptHoldReservation(gomock.Any(), commands.AcceptHoldReservationRequest{
			HouseID: 1, ReservationID: 1, Actor: s.actor,
		}).Return(stored, nil)
		s.mockTasks.EXPECT().Refresh(gomock.Any(), int64(1), int64(1))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/houses/1/reservations/1/accept-hold", nil, "token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("new", response.Status)
	})

	s.Run("error: 401 without staff", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/houses/1/reservations/1/accept-hold", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *ReservationHandlerTestSuite) TestUpdateRoomClose() {
	url := "/houses/1/room-closes/5"
	reqBody := map[string]any{"room_id": 22, "start": "2024-06-11", "end": "2024-06-15", "reason": "renovation", "notes": " paint "}

	s.Run("success: converts the close", func() {
		stored := builder.NewSnapshotBuilder().BuildStored()
		s.mockCommands.EXPECT().UpdateRoomClose(gomock.Any(), commands.UpdateRoomCloseRequest{
			HouseID:       1,
			ReservationID: 5,
			RoomID:        22,
			Start:         dates.New(2024, 6, 11),
			End:           dates.New(2024, 6, 15),
			Reason:        reservation.CloseReasonRenovation,
			Notes:         "paint",
			Actor:         s.actor,
		}).Return(stored, nil)
		s.mockTasks.EXPECT().Refresh(gomock.Any(), int64(1), int64(1))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []testCaseReservation{
			{name: "missing room", mutate: testutil.Field("room_id", nil), expectCode: http.StatusBadRequest},
			{name: "unknown reason", mutate: testutil.Field("reason", "holiday"), expectCode: http.StatusBadRequest},
			{name: "empty period", mutate: testutil.Field("end", "2024-06-11"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, requestMap, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 409 when the room is busy", func() {
		s.mockCommands.EXPECT().UpdateRoomClose(gomock.Any(), gomock.Any()).
			Return(nil, shared.NewCaseError(shared.KindBusyRoom, 1, 22, "room 22 is busy", nil))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "token")
		httptest.AssertCaseError(s.T(), rec, http.StatusConflict, "busy_room")
	})
}

func (s *ReservationHandlerTestSuite) TestDeleteRoomClose() {
	url := "/houses/1/room-closes/5"

	s.Run("success: room is opened", func() {
		stored := builder.NewSnapshotBuilder().With(func(r *reservation.ExternalReservation) {
			r.Source = reservation.SourceManual
			r.Status = reservation.StatusCancel
		}).BuildStored()
		s.mockCommands.EXPECT().DeleteRoomClose(gomock.Any(), commands.DeleteRoomCloseRequest{
			HouseID: 1, ReservationID: 5, Actor: s.actor,
		}).Return(stored, nil)
		s.mockTasks.EXPECT().Refresh(gomock.Any(), int64(1), int64(1))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("cancel", response.Status)
	})

	s.Run("error: 404 for a booking", func() {
		s.mockCommands.EXPECT().DeleteRoomClose(gomock.Any(), gomock.Any()).
			Return(nil, shared.NewCaseError(shared.KindMissedReservation, 1, 5, "reservation 5 is not a room close", nil))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		httptest.AssertCaseError(s.T(), rec, http.StatusNotFound, "missed_reservation")
	})
}
