package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/harishrd0x/flight-reservation-system/internal/domain"
	"github.com/harishrd0x/flight-reservation-system/internal/service/booking"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type confirmBookingRequest struct {
	PaymentStatus string `json:"payment_status"`
}

type cancelBookingRequest struct {
	Status string `json:"status"`
}

type passengerResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Gender    string `json:"gender"`
	Age       int    `json:"age"`
}

type bookingResponse struct {
	ID           int64               `json:"id"`
	Reference    string              `json:"reference"`
	UserID       int64               `json:"user_id"`
	FlightID     int64               `json:"flight_id"`
	SeatClass    string              `json:"seat_class"`
	BookingPrice string              `json:"booking_price"`
	Status       string              `json:"status"`
	CreatedAt    string              `json:"created_at"`
	Passengers   []passengerResponse `json:"passengers,omitempty"`
}

type bookingWalletResponse struct {
	Booking bookingResponse `json:"booking"`
	Wallet  *walletResponse `json:"wallet,omitempty"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) create(c *gin.Context) {
	var req booking.CreateBookingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, passengers, err := h.service.CreateBooking(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toBookingResponse(created, passengers))
}

func (h *BookingHandler) get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	b, passengers, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	if currentRole(c) != domain.RoleAdmin && b.UserID != currentUserID(c) {
		writeError(c, domain.ErrForbidden)
		return
	}

	c.JSON(http.StatusOK, toBookingResponse(b, passengers))
}

func (h *BookingHandler) listMine(c *gin.Context) {
	bookings, err := h.service.ListUserBookings(c.Request.Context(), currentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingResponses(bookings))
}

func (h *BookingHandler) listAll(c *gin.Context) {
	bookings, err := h.service.ListAllBookings(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingResponses(bookings))
}

func (h *BookingHandler) confirm(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	var req confirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, wallet, err := h.service.ConfirmBooking(c.Request.Context(), id, req.PaymentStatus)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookingWalletResponse{
		Booking: toBookingResponse(b, nil),
		Wallet:  toWalletResponse(wallet, nil),
	})
}

func (h *BookingHandler) cancel(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	var req cancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	current, _, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	if currentRole(c) != domain.RoleAdmin && current.UserID != currentUserID(c) {
		writeError(c, domain.ErrForbidden)
		return
	}

	b, wallet, err := h.service.CancelBooking(c.Request.Context(), id, req.Status)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookingWalletResponse{
		Booking: toBookingResponse(b, nil),
		Wallet:  toWalletResponse(wallet, nil),
	})
}

func toBookingResponse(b *domain.Booking, passengers []domain.Passenger) bookingResponse {
	resp := bookingResponse{
		ID:           b.ID,
		Reference:    b.Reference,
		UserID:       b.UserID,
		FlightID:     b.FlightID,
		SeatClass:    string(b.SeatClass),
		BookingPrice: b.BookingPrice.StringFixed(2),
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
	}
	for _, p := range passengers {
		resp.Passengers = append(resp.Passengers, passengerResponse{
			ID:        p.ID,
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Gender:    string(p.Gender),
			Age:       p.Age,
		})
	}
	return resp
}

func toBookingResponses(bookings []domain.Booking) []bookingResponse {
	out := make([]bookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingResponse(&bookings[i], nil))
	}
	return out
}
