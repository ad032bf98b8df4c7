package api

import (
	"github.com/gin-gonic/gin"

	"github.com/harishrd0x/flight-reservation-system/internal/auth"
	"github.com/harishrd0x/flight-reservation-system/internal/domain"
)

type Handlers struct {
	Auth     *AuthHandler
	Fleet    *FleetHandler
	Flights  *FlightHandler
	Bookings *BookingHandler
	Wallets  *WalletHandler
}

// NewRouter wires all handlers under /api. Flight and fleet reads are
// public; fleet and flight mutation plus the all-bookings listing are
// admin-only; everything else requires a logged-in user.
func NewRouter(tokens *auth.TokenManager, h Handlers) *gin.Engine {
	router := gin.Default()

	root := router.Group("/api")

	root.POST("/auth/register", h.Auth.register)
	root.POST("/auth/login", h.Auth.login)

	root.GET("/flights", h.Flights.list)
	root.GET("/flights/:id", h.Flights.get)
	root.GET("/flights/:id/prices", h.Flights.prices)
	root.GET("/airplanes", h.Fleet.listAirplanes)
	root.GET("/airplanes/:id", h.Fleet.getAirplane)
	root.GET("/airports", h.Fleet.listAirports)
	root.GET("/airports/:id", h.Fleet.getAirport)

	authed := root.Group("", AuthRequired(tokens))

	authed.GET("/users/profile", h.Auth.profile)
	authed.PUT("/users/profile", h.Auth.updateProfile)

	authed.POST("/bookings", h.Bookings.create)
	authed.GET("/bookings/user", h.Bookings.listMine)
	authed.GET("/bookings/:id", h.Bookings.get)
	authed.POST("/bookings/:id/confirm", h.Bookings.confirm)
	authed.POST("/bookings/:id/cancel", h.Bookings.cancel)

	authed.GET("/wallet", h.Wallets.get)
	authed.POST("/wallet/add", h.Wallets.addFunds)

	admin := authed.Group("", RequireRole(domain.RoleAdmin))

	admin.GET("/bookings", h.Bookings.listAll)

	admin.POST("/airplanes", h.Fleet.createAirplane)
	admin.PUT("/airplanes/:id", h.Fleet.updateAirplane)
	admin.DELETE("/airplanes/:id", h.Fleet.deleteAirplane)

	admin.POST("/airports", h.Fleet.createAirport)
	admin.PUT("/airports/:id", h.Fleet.updateAirport)
	admin.DELETE("/airports/:id", h.Fleet.deleteAirport)

	admin.POST("/flights", h.Flights.create)
	admin.PUT("/flights/:id", h.Flights.update)
	admin.DELETE("/flights/:id", h.Flights.delete)

	return router
}
