package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/harishrd0x/flight-reservation-system/internal/domain"
)

func TestWriteError_StatusMapping(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"booking not found", domain.ErrBookingNotFound, http.StatusNotFound},
		{"wallet not found", domain.ErrWalletNotFound, http.StatusNotFound},
		{"price not found", domain.ErrPriceNotFound, http.StatusNotFound},
		{"not pending", domain.ErrBookingNotPending, http.StatusConflict},
		{"not confirmed", domain.ErrBookingNotConfirmed, http.StatusConflict},
		{"insufficient funds", domain.ErrInsufficientFunds, http.StatusPaymentRequired},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"email taken", domain.ErrEmailTaken, http.StatusBadRequest},
		{"invalid amount", domain.ErrInvalidAmount, http.StatusBadRequest},
		{"invalid payment status", domain.ErrInvalidPaymentStatus, http.StatusBadRequest},
		{"validation", domain.Validation("at least one passenger is required"), http.StatusBadRequest},
		{"wrapped sentinel", errors.Join(errors.New("context"), domain.ErrFlightNotFound), http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			writeError(c, tc.err)

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.err.Error())
		})
	}
}

func TestWriteError_UnknownErrorIsHidden(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	writeError(c, errors.New("connection refused host=10.0.0.5"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
}
