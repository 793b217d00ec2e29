package api

import (
	"net/http"

	reqdto "hotel-board/internal/handler/dto/request"
	resdto "hotel-board/internal/handler/dto/response"
	"hotel-board/internal/handler/httperr"
	"hotel-board/internal/pkg/opt"
	"hotel-board/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	q queries.CalendarQueries
}

func NewCalendarHandler(q queries.CalendarQueries) *CalendarHandler {
	return &CalendarHandler{q: q}
}

// @Summary Booking calendar
// @Description Calendar bars of the house overlapping the period
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param house_id path int true "House ID"
// @Param start query string true "First day (YYYY-MM-DD)"
// @Param end query string true "Last day (YYYY-MM-DD)"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/houses/{house_id}/calendar [get]
func (h *CalendarHandler) Calendar(c *gin.Context) {
	houseID, ok := pathID(c, "house_id")
	if !ok {
		return
	}
	var query reqdto.PeriodQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	start, end, err := query.Period()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid period", nil)
		return
	}

	entries, err := h.q.Calendar(c.Request.Context(), houseID, start, end)
	if err != nil {
		httperr.AbortWithCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCalendar(entries))
}

// @Summary Free rooms
// @Description Free room count per room type and night; null for nights never calculated
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param house_id path int true "House ID"
// @Param start query string true "First day (YYYY-MM-DD)"
// @Param end query string true "Last day (YYYY-MM-DD)"
// @Param room_type_id query int false "Room type ID"
// @Success 200 {array} resdto.RoomTypeOccupancyResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/houses/{house_id}/occupancy [get]
func (h *CalendarHandler) Occupancy(c *gin.Context) {
	houseID, ok := pathID(c, "house_id")
	if !ok {
		return
	}
	var query reqdto.PeriodQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	start, end, err := query.Period()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid period", nil)
		return
	}

	occupancy, err := h.q.Occupancy(c.Request.Context(), houseID, opt.FromPtr(query.RoomTypeID), start, end)
	if err != nil {
		httperr.AbortWithCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOccupancy(occupancy))
}
