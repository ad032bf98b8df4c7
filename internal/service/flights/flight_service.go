package flights

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/harishrd0x/flight-reservation-system/internal/domain"
	"github.com/harishrd0x/flight-reservation-system/internal/repository"
)

type FlightUseCase interface {
	Create(ctx context.Context, input FlightInput) (*domain.Flight, error)
	Update(ctx context.Context, id int64, input FlightInput) (*domain.Flight, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	List(ctx context.Context) ([]domain.Flight, error)
	ListPrices(ctx context.Context, flightID int64) ([]domain.FlightPrice, error)
	GetPrice(ctx context.Context, flightID int64, seatClass domain.SeatClass) (decimal.Decimal, error)
}

type Cache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
}

type FlightService struct {
	repo      repository.FlightRepository
	airplanes repository.AirplaneRepository
	airports  repository.AirportRepository
	cache     Cache
}

type FlightInput struct {
	FlightName           string            `json:"flight_name"`
	AirplaneID           int64             `json:"airplane_id"`
	SourceAirportID      int64             `json:"source_airport_id"`
	DestinationAirportID int64             `json:"destination_airport_id"`
	DepartureTime        time.Time         `json:"departure_time"`
	ArrivalTime          time.Time         `json:"arrival_time"`
	Status               string            `json:"status"`
	Prices               map[string]string `json:"prices"`
}

func NewFlightService(repo repository.FlightRepository, airplanes repository.AirplaneRepository, airports repository.AirportRepository, cache Cache) *FlightService {
	return &FlightService{repo: repo, airplanes: airplanes, airports: airports, cache: cache}
}

func (s *FlightService) Create(ctx context.Context, input FlightInput) (*domain.Flight, error) {
	status, prices, err := s.validate(ctx, input)
	if err != nil {
		return nil, err
	}
	if len(prices) == 0 {
		return nil, domain.Validation("at least one seat class price is required")
	}

	flight := &domain.Flight{
		FlightName:           input.FlightName,
		AirplaneID:           input.AirplaneID,
		SourceAirportID:      input.SourceAirportID,
		DestinationAirportID: input.DestinationAirportID,
		DepartureTime:        input.DepartureTime,
		ArrivalTime:          input.ArrivalTime,
		Status:               status,
	}
	if err := s.repo.Create(ctx, flight, prices); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return flight, nil
}

func (s *FlightService) Update(ctx context.Context, id int64, input FlightInput) (*domain.Flight, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	status, prices, err := s.validate(ctx, input)
	if err != nil {
		return nil, err
	}

	flight := &domain.Flight{
		ID:                   id,
		FlightName:           input.FlightName,
		AirplaneID:           input.AirplaneID,
		SourceAirportID:      input.SourceAirportID,
		DestinationAirportID: input.DestinationAirportID,
		DepartureTime:        input.DepartureTime,
		ArrivalTime:          input.ArrivalTime,
		Status:               status,
	}
	if err := s.repo.Update(ctx, flight, prices); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return flight, nil
}

func (s *FlightService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *FlightService) List(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetFlights(ctx, flights)
	}
	return flights, nil
}

func (s *FlightService) ListPrices(ctx context.Context, flightID int64) ([]domain.FlightPrice, error) {
	if _, err := s.repo.GetByID(ctx, flightID); err != nil {
		return nil, err
	}
	return s.repo.ListPrices(ctx, flightID)
}

// GetPrice resolves the fare for one seat class on one flight. Booking
// creation calls this once to stamp the booking price.
func (s *FlightService) GetPrice(ctx context.Context, flightID int64, seatClass domain.SeatClass) (decimal.Decimal, error) {
	return s.repo.GetPrice(ctx, flightID, seatClass)
}

func (s *FlightService) validate(ctx context.Context, input FlightInput) (domain.FlightStatus, []domain.FlightPrice, error) {
	status, err := domain.ParseFlightStatus(input.Status)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, input.Status)
	}
	if input.FlightName == "" {
		return "", nil, domain.Validation("flight name is required")
	}

	var missing []string
	if _, err := s.airplanes.GetByID(ctx, input.AirplaneID); err != nil {
		if !errors.Is(err, domain.ErrAirplaneNotFound) {
			return "", nil, err
		}
		missing = append(missing, fmt.Sprintf("airplane with ID %d not found", input.AirplaneID))
	}
	if _, err := s.airports.GetByID(ctx, input.SourceAirportID); err != nil {
		if !errors.Is(err, domain.ErrAirportNotFound) {
			return "", nil, err
		}
		missing = append(missing, fmt.Sprintf("source airport with ID %d not found", input.SourceAirportID))
	}
	if _, err := s.airports.GetByID(ctx, input.DestinationAirportID); err != nil {
		if !errors.Is(err, domain.ErrAirportNotFound) {
			return "", nil, err
		}
		missing = append(missing, fmt.Sprintf("destination airport with ID %d not found", input.DestinationAirportID))
	}
	if len(missing) > 0 {
		return "", nil, domain.Validation(strings.Join(missing, " | "))
	}

	if input.DepartureTime.Before(time.Now()) {
		return "", nil, domain.Validation("departure time cannot be in the past")
	}
	if !input.ArrivalTime.After(input.DepartureTime) {
		return "", nil, domain.Validation("arrival time must be after departure time")
	}

	prices := make([]domain.FlightPrice, 0, len(input.Prices))
	for class, value := range input.Prices {
		seatClass, err := domain.ParseSeatClass(class)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %q", domain.ErrInvalidSeatClass, class)
		}
		price, err := decimal.NewFromString(value)
		if err != nil || !price.IsPositive() {
			return "", nil, domain.Validation(fmt.Sprintf("invalid price for seat class %s", class))
		}
		prices = append(prices, domain.FlightPrice{SeatClass: seatClass, Price: price})
	}

	return status, prices, nil
}

func (s *FlightService) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateFlights(ctx)
	}
}

var _ FlightUseCase = (*FlightService)(nil)
