package httperr

import (
	"errors"
	"net/http"

	"hotel-board/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StatusFor maps a use case failure kind onto an HTTP status.
func StatusFor(kind shared.ErrorKind) int {
	switch kind {
	case shared.KindMissedHouse, shared.KindMissedRoomType, shared.KindMissedRatePlan, shared.KindMissedRate,
		shared.KindMissedReservation, shared.KindMissedRoom, shared.KindMissedGuest, shared.KindMissedUser:
		return http.StatusNotFound
	case shared.KindBusyRoom, shared.KindConflict:
		return http.StatusConflict
	case shared.KindWrongPeriod, shared.KindRoomCloseReservation:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// AbortWithCaseError responds with the kind of a use case failure. Messages
// of server side failures are not exposed.
func AbortWithCaseError(c *gin.Context, err error) {
	kind := shared.KindOf(err)
	status := StatusFor(kind)

	msg := "Internal server error"
	var ce *shared.CaseError
	if status < http.StatusInternalServerError && errors.As(err, &ce) {
		msg = ce.Message
	}
	AbortWithError(c, status, err, msg, gin.H{"kind": kind.String()})
}
