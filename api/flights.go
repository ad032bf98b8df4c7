package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/harishrd0x/flight-reservation-system/internal/domain"
	"github.com/harishrd0x/flight-reservation-system/internal/service/flights"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

type flightResponse struct {
	ID                   int64  `json:"id"`
	FlightName           string `json:"flight_name"`
	AirplaneID           int64  `json:"airplane_id"`
	SourceAirportID      int64  `json:"source_airport_id"`
	DestinationAirportID int64  `json:"destination_airport_id"`
	DepartureTime        string `json:"departure_time"`
	ArrivalTime          string `json:"arrival_time"`
	Status               string `json:"status"`
}

type flightPriceResponse struct {
	SeatClass string `json:"seat_class"`
	Price     string `json:"price"`
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) list(c *gin.Context) {
	all, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]flightResponse, 0, len(all))
	for i := range all {
		out = append(out, toFlightResponse(&all[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *FlightHandler) get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid flight id"})
		return
	}

	flight, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toFlightResponse(flight))
}

func (h *FlightHandler) prices(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid flight id"})
		return
	}

	prices, err := h.service.ListPrices(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]flightPriceResponse, 0, len(prices))
	for _, p := range prices {
		out = append(out, flightPriceResponse{SeatClass: string(p.SeatClass), Price: p.Price.StringFixed(2)})
	}
	c.JSON(http.StatusOK, out)
}

func (h *FlightHandler) create(c *gin.Context) {
	var req flights.FlightInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flight, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toFlightResponse(flight))
}

func (h *FlightHandler) update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid flight id"})
		return
	}

	var req flights.FlightInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flight, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toFlightResponse(flight))
}

func (h *FlightHandler) delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid flight id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Flight deleted"})
}

func toFlightResponse(f *domain.Flight) flightResponse {
	return flightResponse{
		ID:                   f.ID,
		FlightName:           f.FlightName,
		AirplaneID:           f.AirplaneID,
		SourceAirportID:      f.SourceAirportID,
		DestinationAirportID: f.DestinationAirportID,
		DepartureTime:        f.DepartureTime.Format(time.RFC3339),
		ArrivalTime:          f.ArrivalTime.Format(time.RFC3339),
		Status:               string(f.Status),
	}
}
