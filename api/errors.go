package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harishrd0x/flight-reservation-system/internal/domain"
)

// writeError maps the domain error taxonomy onto HTTP statuses. Errors
// outside the taxonomy are logged and hidden behind a generic 500 so
// driver internals never reach clients.
func writeError(c *gin.Context, err error) {
	var status int
	var validation domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrWalletNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrFlightNotFound),
		errors.Is(err, domain.ErrAirplaneNotFound),
		errors.Is(err, domain.ErrAirportNotFound),
		errors.Is(err, domain.ErrPriceNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrBookingNotPending),
		errors.Is(err, domain.ErrBookingNotConfirmed):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrInsufficientFunds):
		status = http.StatusPaymentRequired
	case errors.Is(err, domain.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden
	case errors.As(err, &validation),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidSeatClass),
		errors.Is(err, domain.ErrInvalidPaymentStatus),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrInvalidGender):
		status = http.StatusBadRequest
	default:
		log.Printf("unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
