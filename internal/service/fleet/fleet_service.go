package fleet

import (
	"context"
	"strings"

	"github.com/harishrd0x/flight-reservation-system/internal/domain"
	"github.com/harishrd0x/flight-reservation-system/internal/repository"
)

// FleetUseCase covers the admin-side airplane and airport registries
// that flights are built on.
type FleetUseCase interface {
	CreateAirplane(ctx context.Context, input AirplaneInput) (*domain.Airplane, error)
	UpdateAirplane(ctx context.Context, id int64, input AirplaneInput) (*domain.Airplane, error)
	DeleteAirplane(ctx context.Context, id int64) error
	GetAirplane(ctx context.Context, id int64) (*domain.Airplane, error)
	ListAirplanes(ctx context.Context) ([]domain.Airplane, error)

	CreateAirport(ctx context.Context, input AirportInput) (*domain.Airport, error)
	UpdateAirport(ctx context.Context, id int64, input AirportInput) (*domain.Airport, error)
	DeleteAirport(ctx context.Context, id int64) error
	GetAirport(ctx context.Context, id int64) (*domain.Airport, error)
	ListAirports(ctx context.Context) ([]domain.Airport, error)
}

type FleetService struct {
	airplanes repository.AirplaneRepository
	airports  repository.AirportRepository
}

type AirplaneInput struct {
	AirplaneNumber  string `json:"airplane_number"`
	Model           string `json:"model"`
	TotalSeats      int    `json:"total_seats"`
	EconomySeats    int    `json:"economy_seats"`
	BusinessSeats   int    `json:"business_seats"`
	FirstClassSeats int    `json:"first_class_seats"`
}

type AirportInput struct {
	Name        string `json:"name"`
	City        string `json:"city"`
	Country     string `json:"country"`
	AirportCode string `json:"airport_code"`
}

func NewFleetService(airplanes repository.AirplaneRepository, airports repository.AirportRepository) *FleetService {
	return &FleetService{airplanes: airplanes, airports: airports}
}

func (s *FleetService) CreateAirplane(ctx context.Context, input AirplaneInput) (*domain.Airplane, error) {
	airplane, err := airplaneFromInput(input)
	if err != nil {
		return nil, err
	}
	if err := s.airplanes.Create(ctx, airplane); err != nil {
		return nil, err
	}
	return airplane, nil
}

func (s *FleetService) UpdateAirplane(ctx context.Context, id int64, input AirplaneInput) (*domain.Airplane, error) {
	airplane, err := airplaneFromInput(input)
	if err != nil {
		return nil, err
	}
	airplane.ID = id
	if err := s.airplanes.Update(ctx, airplane); err != nil {
		return nil, err
	}
	return airplane, nil
}

func (s *FleetService) DeleteAirplane(ctx context.Context, id int64) error {
	return s.airplanes.Delete(ctx, id)
}

func (s *FleetService) GetAirplane(ctx context.Context, id int64) (*domain.Airplane, error) {
	return s.airplanes.GetByID(ctx, id)
}

func (s *FleetService) ListAirplanes(ctx context.Context) ([]domain.Airplane, error) {
	return s.airplanes.List(ctx)
}

func (s *FleetService) CreateAirport(ctx context.Context, input AirportInput) (*domain.Airport, error) {
	airport, err := airportFromInput(input)
	if err != nil {
		return nil, err
	}
	if err := s.airports.Create(ctx, airport); err != nil {
		return nil, err
	}
	return airport, nil
}

func (s *FleetService) UpdateAirport(ctx context.Context, id int64, input AirportInput) (*domain.Airport, error) {
	airport, err := airportFromInput(input)
	if err != nil {
		return nil, err
	}
	airport.ID = id
	if err := s.airports.Update(ctx, airport); err != nil {
		return nil, err
	}
	return airport, nil
}

func (s *FleetService) DeleteAirport(ctx context.Context, id int64) error {
	return s.airports.Delete(ctx, id)
}

func (s *FleetService) GetAirport(ctx context.Context, id int64) (*domain.Airport, error) {
	return s.airports.GetByID(ctx, id)
}

func (s *FleetService) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	return s.airports.List(ctx)
}

func airplaneFromInput(input AirplaneInput) (*domain.Airplane, error) {
	if input.AirplaneNumber == "" || input.Model == "" {
		return nil, domain.Validation("airplane number and model are required")
	}
	if input.TotalSeats <= 0 {
		return nil, domain.Validation("total seats must be positive")
	}
	if input.EconomySeats < 0 || input.BusinessSeats < 0 || input.FirstClassSeats < 0 {
		return nil, domain.Validation("seat counts must not be negative")
	}
	if input.EconomySeats+input.BusinessSeats+input.FirstClassSeats > input.TotalSeats {
		return nil, domain.Validation("per-class seats exceed total seats")
	}
	return &domain.Airplane{
		AirplaneNumber:  input.AirplaneNumber,
		Model:           input.Model,
		TotalSeats:      input.TotalSeats,
		EconomySeats:    input.EconomySeats,
		BusinessSeats:   input.BusinessSeats,
		FirstClassSeats: input.FirstClassSeats,
	}, nil
}

func airportFromInput(input AirportInput) (*domain.Airport, error) {
	if input.Name == "" || input.City == "" || input.Country == "" {
		return nil, domain.Validation("name, city and country are required")
	}
	code := strings.ToUpper(input.AirportCode)
	if len(code) != 3 {
		return nil, domain.Validation("airport code must be exactly 3 letters")
	}
	return &domain.Airport{
		Name:        input.Name,
		City:        input.City,
		Country:     input.Country,
		AirportCode: code,
	}, nil
}

var _ FleetUseCase = (*FleetService)(nil)
