package api

import (
	"net/http"

	reqdto "hotel-board/internal/handler/dto/request"
	resdto "hotel-board/internal/handler/dto/response"
	"hotel-board/internal/handler/httperr"
	"hotel-board/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PriceHandler struct {
	q queries.PriceQueries
}

func NewPriceHandler(q queries.PriceQueries) *PriceHandler {
	return &PriceHandler{q: q}
}

// @Summary Calculate stay price
// @Description Resolve nightly prices of a prospective stay with restrictions and discounts applied
// @Tags prices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param house_id path int true "House ID"
// @Param request body reqdto.CalculatePriceRequest true "Stay"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/houses/{house_id}/prices/calculate [post]
func (h *PriceHandler) Calculate(c *gin.Context) {
	houseID, ok := pathID(c, "house_id")
	if !ok {
		return
	}
	var req reqdto.CalculatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	query, err := req.ToQuery(houseID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid period", nil)
		return
	}

	quote, err := h.q.CalculateReservation(c.Request.Context(), query)
	if err != nil {
		httperr.AbortWithCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuote(quote))
}
