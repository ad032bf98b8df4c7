package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harishrd0x/flight-reservation-system/api"
	"github.com/harishrd0x/flight-reservation-system/config"
	tokens "github.com/harishrd0x/flight-reservation-system/internal/auth"
	"github.com/harishrd0x/flight-reservation-system/internal/bootstrap"
	"github.com/harishrd0x/flight-reservation-system/internal/cache"
	"github.com/harishrd0x/flight-reservation-system/internal/kafka"
	"github.com/harishrd0x/flight-reservation-system/internal/repository"
	authsvc "github.com/harishrd0x/flight-reservation-system/internal/service/auth"
	"github.com/harishrd0x/flight-reservation-system/internal/service/booking"
	"github.com/harishrd0x/flight-reservation-system/internal/service/fleet"
	"github.com/harishrd0x/flight-reservation-system/internal/service/flights"
	"github.com/harishrd0x/flight-reservation-system/internal/service/wallet"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Cache.FlightsTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	tokenManager := tokens.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)

	userRepo := repository.NewUserRepository(pool)
	airplaneRepo := repository.NewAirplaneRepository(pool)
	airportRepo := repository.NewAirportRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	walletRepo := repository.NewWalletRepository(pool)

	authService := authsvc.NewAuthService(userRepo, tokenManager)
	fleetService := fleet.NewFleetService(airplaneRepo, airportRepo)
	flightService := flights.NewFlightService(flightRepo, airplaneRepo, airportRepo, redisCache)
	walletService := wallet.NewWalletService(walletRepo)
	bookingService := booking.NewBookingService(
		bookingRepo,
		flightRepo,
		walletRepo,
		producer,
		cfg.Kafka.BookingTopic,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	router := api.NewRouter(tokenManager, api.Handlers{
		Auth:     api.NewAuthHandler(authService),
		Fleet:    api.NewFleetHandler(fleetService),
		Flights:  api.NewFlightHandler(flightService),
		Bookings: api.NewBookingHandler(bookingService),
		Wallets:  api.NewWalletHandler(walletService),
	})

	if err := bootstrap.Run(ctx, cfg, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
