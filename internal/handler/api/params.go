package api

import (
	"net/http"
	"strconv"

	"hotel-board/internal/handler/httperr"
	"hotel-board/internal/handler/middleware"
	"hotel-board/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errInvalidPathID   = errs.New("invalid path id")
	errUnauthenticated = errs.New("staff not authenticated")
)

// pathID parses a positive integer path parameter and aborts with 400 otherwise.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errInvalidPathID), "Invalid "+name, nil)
		return 0, false
	}
	return id, true
}

func staffID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetStaffID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return uuid.Nil, false
	}
	return id, true
}
