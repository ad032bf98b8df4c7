package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/harishrd0x/flight-reservation-system/internal/domain"
	"github.com/harishrd0x/flight-reservation-system/internal/service/fleet"
)

type FleetHandler struct {
	service fleet.FleetUseCase
}

type airplaneResponse struct {
	ID              int64  `json:"id"`
	AirplaneNumber  string `json:"airplane_number"`
	Model           string `json:"model"`
	TotalSeats      int    `json:"total_seats"`
	EconomySeats    int    `json:"economy_seats"`
	BusinessSeats   int    `json:"business_seats"`
	FirstClassSeats int    `json:"first_class_seats"`
}

type airportResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	City        string `json:"city"`
	Country     string `json:"country"`
	AirportCode string `json:"airport_code"`
}

func NewFleetHandler(service fleet.FleetUseCase) *FleetHandler {
	return &FleetHandler{service: service}
}

func (h *FleetHandler) createAirplane(c *gin.Context) {
	var req fleet.AirplaneInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	airplane, err := h.service.CreateAirplane(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toAirplaneResponse(airplane))
}

func (h *FleetHandler) updateAirplane(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid airplane id"})
		return
	}

	var req fleet.AirplaneInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	airplane, err := h.service.UpdateAirplane(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAirplaneResponse(airplane))
}

func (h *FleetHandler) deleteAirplane(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid airplane id"})
		return
	}

	if err := h.service.DeleteAirplane(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Airplane deleted"})
}

func (h *FleetHandler) getAirplane(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid airplane id"})
		return
	}

	airplane, err := h.service.GetAirplane(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAirplaneResponse(airplane))
}

func (h *FleetHandler) listAirplanes(c *gin.Context) {
	airplanes, err := h.service.ListAirplanes(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]airplaneResponse, 0, len(airplanes))
	for i := range airplanes {
		out = append(out, toAirplaneResponse(&airplanes[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *FleetHandler) createAirport(c *gin.Context) {
	var req fleet.AirportInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	airport, err := h.service.CreateAirport(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toAirportResponse(airport))
}

func (h *FleetHandler) updateAirport(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid airport id"})
		return
	}

	var req fleet.AirportInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	airport, err := h.service.UpdateAirport(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAirportResponse(airport))
}

func (h *FleetHandler) deleteAirport(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid airport id"})
		return
	}

	if err := h.service.DeleteAirport(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Airport deleted"})
}

func (h *FleetHandler) getAirport(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid airport id"})
		return
	}

	airport, err := h.service.GetAirport(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAirportResponse(airport))
}

func (h *FleetHandler) listAirports(c *gin.Context) {
	airports, err := h.service.ListAirports(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]airportResponse, 0, len(airports))
	for i := range airports {
		out = append(out, toAirportResponse(&airports[i]))
	}
	c.JSON(http.StatusOK, out)
}

func pathID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func toAirplaneResponse(a *domain.Airplane) airplaneResponse {
	return airplaneResponse{
		ID:              a.ID,
		AirplaneNumber:  a.AirplaneNumber,
		Model:           a.Model,
		TotalSeats:      a.TotalSeats,
		EconomySeats:    a.EconomySeats,
		BusinessSeats:   a.BusinessSeats,
		FirstClassSeats: a.FirstClassSeats,
	}
}

func toAirportResponse(a *domain.Airport) airportResponse {
	return airportResponse{
		ID:          a.ID,
		Name:        a.Name,
		City:        a.City,
		Country:     a.Country,
		AirportCode: a.AirportCode,
	}
}
