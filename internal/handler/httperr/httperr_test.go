//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel-board/internal/handler/httperr"
	"hotel-board/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	testCases := []struct {
		kind     shared.ErrorKind
		expected int
	}{
		{kind: shared.KindMissedHouse, expected: http.StatusNotFound},
		{kind: shared.KindMissedReservation, expected: http.StatusNotFound},
		{kind: shared.KindMissedRate, expected: http.StatusNotFound},
		{kind: shared.KindBusyRoom, expected: http.StatusConflict},
		{kind: shared.KindConflict, expected: http.StatusConflict},
		{kind: shared.KindWrongPeriod, expected: http.StatusUnprocessableEntity},
		{kind: shared.KindRoomCloseReservation, expected: http.StatusUnprocessableEntity},
		{kind: shared.KindSave, expected: http.StatusInternalServerError},
		{kind: shared.KindError, expected: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			assert.Equal(t, tc.expected, httperr.StatusFor(tc.kind))
		})
	}
}

func TestAbortWithCaseError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "client error exposes message",
			err:          shared.NewCaseError(shared.KindBusyRoom, 1, 21, "room is busy", nil),
			expectedCode: http.StatusConflict,
			expectedBody: `{"error":{"message":"room is busy"},"detail":{"kind":"busy_room"}}`,
		},
		{
			name:         "server error hides message",
			err:          shared.NewCaseError(shared.KindSave, 1, 5, "failed to save reservation", errors.New("connection reset")),
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":{"message":"Internal server error"},"detail":{"kind":"save"}}`,
		},
		{
			name:         "plain error",
			err:          errors.New("boom"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":{"message":"Internal server error"},"detail":{"kind":"error"}}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			httperr.AbortWithCaseError(c, tc.err)

			assert.Equal(t, tc.expectedCode, w.Code)
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
			assert.True(t, c.IsAborted())
			assert.Len(t, c.Errors, 1)
		})
	}
}
