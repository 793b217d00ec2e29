package api

import (
	"errors"
	"io"
	"net/http"

	"hotel-board/internal/domain/reservation"
	reqdto "hotel-board/internal/handler/dto/request"
	resdto "hotel-board/internal/handler/dto/response"
	"hotel-board/internal/handler/httperr"
	"hotel-board/internal/usecase/commands"
	"hotel-board/internal/usecase/queries"
	"hotel-board/internal/usecase/shared"
	"hotel-board/internal/usecase/tasks"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds    commands.ReservationCommands
	queries queries.ReservationQueries
	tasks   tasks.Tasks
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries, runner tasks.Tasks) *ReservationHandler {
	return &ReservationHandler{
		cmds:    cmds,
		queries: q,
		tasks:   runner,
	}
}

// @Summary Get reservation
// @Description Reservation with rooms and nights, proposed and accepted values side by side
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param house_id path int true "House ID"
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Router /api/houses/{house_id}/reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	houseID, ok := pathID(c, "house_id")
	if !ok {
		return
	}
	reservationID, ok := pathID(c, "id")
	if !ok {
		return
	}

	res, err := h.queries.GetReservation(c.Request.Context(), houseID, reservationID)
	if err != nil {
		httperr.AbortWithCaseError(c, err)
		return
	}
	h.respond(c, http.StatusOK, res)
}

// @Summary Import channel reservation
// @Description Merge a channel snapshot into the stored reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param house_id path int true "House ID"
// @Param request body reqdto.ImportReservationRequest true "Channel snapshot"
// @Success 200 {object} resdto.ImportResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/houses/{house_id}/reservations/import [post]
func (h *ReservationHandler) Import(c *gin.Context) {
	houseID, ok := pathID(c, "house_id")
	if !ok {
		return
	}
	var req reqdto.ImportReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	snapshot, err := req.ToSnapshot(houseID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid period", nil)
		return
	}

	result, err := h.tasks.ImportReservation(c.Request.Context(), snapshot)
	if err != nil {
		httperr.AbortWithCaseError(c, err)
		return
	}
	res, err := resdto.FromReservation(result.Reservation)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.ImportResponse{Changed: result.Changed, Reservation: res})
}

// @Summary Accept reservation changes
// @Description Commit proposed prices and periods of a channel reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param house_id path int true "House ID"
// @Param id path int true "Reservation ID"
// @Param request body reqdto.AcceptReservationRequest false "Nights to commit"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/houses/{house_id}/reservations/{id}/accept [post]
func (h *ReservationHandler) Accept(c *gin.Context) {
	houseID, ok := pathID(c, "house_id")
	if !ok {
		return
	}
	reservationID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := staffID(c)
	if !ok {
		return
	}
	var req reqdto.AcceptReservationRequest
	// the body is optional
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	res, err := h.tasks.AcceptReservationChanges(c.Request.Context(), commands.AcceptReservationRequest{
		HouseID:       houseID,
		ReservationID: reservationID,
		DayIDs:        req.DayIDs,
		Actor:         actor,
	})
	if err != nil {
		httperr.AbortWithCaseError(c, err)
		return
	}
	if res == nil {
		httperr.AbortWithCaseError(c, shared.NewCaseError(shared.KindRoomCloseReservation, houseID, reservationID,
			"room close reservations have nothing to accept", nil))
		return
	}
	h.respond(c, http.StatusOK, res)
}

// @Summary Create reservation
// @Description Book a manual HOLD reservation priced by the rate resolver
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param house_id path int true "House ID"
// @Param request body reqdto.CreateReservationRequest true "Reservation"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/houses/{house_id}/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	houseID, ok := pathID(c, "house_id")
	if !ok {
		return
	}
	actor, ok := staffID(c)
	if !ok {
		return
	}
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand(houseID, actor)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid period", nil)
		return
	}

	res, err := h.cmds.CreateReservation(c.Request.Context(), cmd)
	if err != nil {
		httperr.AbortWithCaseError(c, err)
		return
	}
	h.tasks.Refresh(c.Request.Context(), res.HouseID, res.ID)
	h.respond(c, http.StatusCreated, res)
}

// @Summary Cancel reservation
// @Description Cancel a manual reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param house_id path int true "House ID"
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/houses/{house_id}/reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	houseID, ok := pathID(c, "house_id")
	if !ok {
		return
	}
	reservationID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := staffID(c)
	if !ok {
		return
	}

	res, err := h.cmds.CancelReservation(c.Request.Context(), commands.CancelReservationRequest{
		HouseID:       houseID,
		ReservationID: reservationID,
		Actor:         actor,
	})
	if err != nil {
		httperr.AbortWithCaseError(c, err)
		return
	}
	h.tasks.Refresh(c.Request.Context(), res.HouseID, res.ID)
	h.respond(c, http.StatusOK, res)
}

// @Summary Update room prices
// @Description Store corrected night prices of one reservation room as accepted prices
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param house_id path int true "House ID"
// @Param id path int true "Reservation ID"
// @Param room_id path int true "Reservation room ID"
// @Param request body reqdto.UpdatePricesRequest true "Night prices"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/houses/{house_id}/reservations/{id}/rooms/{room_id}/prices [put]
func (h *ReservationHandler) UpdatePrices(c *gin.Context) {
	houseID, ok := pathID(c, "house_id")
	if !ok {
		return
	}
	reservationID, ok := pathID(c, "id")
	if !ok {
		return
	}
	roomID, ok := pathID(c, "room_id")
	if !ok {
		return
	}
	actor, ok := staffID(c)
	if !ok {
		return
	}
	var req reqdto.UpdatePricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand(houseID, reservationID, roomID, actor)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid prices", nil)
		return
	}

	res, err := h.cmds.UpdateReservationPrices(c.Request.Context(), cmd)
	if err != nil {
		httperr.AbortWithCaseError(c, err)
		return
	}
	h.tasks.Refresh(c.Request.Context(), res.HouseID, res.ID)
	h.respond(c, http.StatusOK, res)
}

// @Summary Close room
// @Description Block a room for a period
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param house_id path int true "House ID"
// @Param room_id path int true "Room ID"
// @Param request body reqdto.RoomCloseRequest true "Close period"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/houses/{house_id}/rooms/{room_id}/close [post]
func (h *ReservationHandler) CloseRoom(c *gin.Context) {
	houseID, ok := pathID(c, "house_id")
	if !ok {
		return
	}
	roomID, ok := pathID(c, "room_id")
	if !ok {
		return
	}
	actor, ok := staffID(c)
	if !ok {
		return
	}
	var req reqdto.RoomCloseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand(houseID, roomID, actor)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid period", nil)
		return
	}

	res, err := h.cmds.CreateRoomClose(c.Request.Context(), cmd)
	if err != nil {
		httperr.AbortWithCaseError(c, err)
		return
	}
	h.tasks.Refresh(c.Request.Context(), res.HouseID, res.ID)
	h.respond(c, http.StatusCreated, res)
}

// @Summary Move reservation
// @Description Move nights of a reservation room to another room type or room
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param house_id path int true "House ID"
// @Param id path int true "Reservation ID"
// @Param room_id path int true "Reservation room ID"
// @Param request body reqdto.MoveReservationRequest true "Destination"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/houses/{house_id}/reservations/{id}/rooms/{room_id}/move [put]
func (h *ReservationHandler) Move(c *gin.Context) {
	houseID, ok := pathID(c, "house_id")
	if !ok {
		return
	}
	reservationID, ok := pathID(c, "id")
	if !ok {
		return
	}
	roomID, ok := pathID(c, "room_id")
	if !ok {
		return
	}
	actor, ok := staffID(c)
	if !ok {
		return
	}
	var req reqdto.MoveReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand(houseID, reservationID, roomID, actor)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid period", nil)
		return
	}

	res, err := h.cmds.MoveReservation(c.Request.Context(), cmd)
	if err != nil {
		httperr.AbortWithCaseError(c, err)
		return
	}
	h.tasks.Refresh(c.Request.Context(), res.HouseID, res.ID)
	h.respond(c, http.StatusOK, res)
}

// @Summary Update guest
// @Description Change guest details of a manual reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param house_id path int true "House ID"
// @Param id path int true "Reservation ID"
// @Param request body reqdto.UpdateGuestRequest true "Guest fields"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/houses/{house_id}/reservations/{id}/guest [patch]
func (h *ReservationHandler) UpdateGuest(c *gin.Context) {
	houseID, ok := pathID(c, "house_id")
	if !ok {
		return
	}
	reservationID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := staffID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	res, err := h.cmds.UpdateReservationGuest(c.Request.Context(), req.ToCommand(houseID, reservationID, actor))
	if err != nil {
		httperr.AbortWithCaseError(c, err)
		return
	}
	h.tasks.Refresh(c.Request.Context(), res.HouseID, res.ID)
	h.respond(c, http.StatusOK, res)
}

// @Summary Confirm hold reservation
// @Description Move a manual HOLD reservation to NEW
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param house_id path int true "House ID"
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Router /api/houses/{house_id}/reservations/{id}/accept-hold [post]
func (h *ReservationHandler) AcceptHold(c *gin.Context) {
	houseID, ok := pathID(c, "house_id")
	if !ok {
		return
	}
	reservationID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := staffID(c)
	if !ok {
		return
	}

	res, err := h.cmds.AcceptHoldReservation(c.Request.Context(), commands.AcceptHoldReservationRequest{
		HouseID:       houseID,
		ReservationID: reservationID,
		Actor:         actor,
	})
	if err != nil {
		httperr.AbortWithCaseError(c, err)
		return
	}
	h.tasks.Refresh(c.Request.Context(), res.HouseID, res.ID)
	h.respond(c, http.StatusOK, res)
}

// @Summary Update room close
// @Description Move a room close to another room, period or reason
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param house_id path int true "House ID"
// @Param id path int true "Room close reservation ID"
// @Param request body reqdto.UpdateRoomCloseRequest true "Close period"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/houses/{house_id}/room-closes/{id} [put]
func (h *ReservationHandler) UpdateRoomClose(c *gin.Context) {
	houseID, ok := pathID(c, "house_id")
	if !ok {
		return
	}
	reservationID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := staffID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateRoomCloseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand(houseID, reservationID, actor)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid period", nil)
		return
	}

	res, err := h.cmds.UpdateRoomClose(c.Request.Context(), cmd)
	if err != nil {
		httperr.AbortWithCaseError(c, err)
		return
	}
	h.tasks.Refresh(c.Request.Context(), res.HouseID, res.ID)
	h.respond(c, http.StatusOK, res)
}

// @Summary Delete room close
// @Description Open a room blocked by a room close
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param house_id path int true "House ID"
// @Param id path int true "Room close reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Router /api/houses/{house_id}/room-closes/{id} [delete]
func (h *ReservationHandler) DeleteRoomClose(c *gin.Context) {
	houseID, ok := pathID(c, "house_id")
	if !ok {
		return
	}
	reservationID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := staffID(c)
	if !ok {
		return
	}

	res, err := h.cmds.DeleteRoomClose(c.Request.Context(), commands.DeleteRoomCloseRequest{
		HouseID:       houseID,
		ReservationID: reservationID,
		Actor:         actor,
	})
	if err != nil {
		httperr.AbortWithCaseError(c, err)
		return
	}
	h.tasks.Refresh(c.Request.Context(), res.HouseID, res.ID)
	h.respond(c, http.StatusOK, res)
}

func (h *ReservationHandler) respond(c *gin.Context, status int, res *reservation.Reservation) {
	out, err := resdto.FromReservation(res)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(status, out)
}
