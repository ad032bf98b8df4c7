package flights

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/harishrd0x/flight-reservation-system/internal/domain"
)

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) Create(ctx context.Context, flight *domain.Flight, prices []domain.FlightPrice) error {
	args := m.Called(ctx, flight, prices)
	return args.Error(0)
}

func (m *MockFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) Update(ctx context.Context, flight *domain.Flight, prices []domain.FlightPrice) error {
	args := m.Called(ctx, flight, prices)
	return args.Error(0)
}

func (m *MockFlightRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFlightRepository) GetPrice(ctx context.Context, flightID int64, seatClass domain.SeatClass) (decimal.Decimal, error) {
	args := m.Called(ctx, flightID, seatClass)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockFlightRepository) ListPrices(ctx context.Context, flightID int64) ([]domain.FlightPrice, error) {
	args := m.Called(ctx, flightID)
	return args.Get(0).([]domain.FlightPrice), args.Error(1)
}

type MockAirplaneRepository struct {
	mock.Mock
}

func (m *MockAirplaneRepository) Create(ctx context.Context, airplane *domain.Airplane) error {
	args := m.Called(ctx, airplane)
	return args.Error(0)
}

func (m *MockAirplaneRepository) GetByID(ctx context.Context, id int64) (*domain.Airplane, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airplane), args.Error(1)
}

func (m *MockAirplaneRepository) List(ctx context.Context) ([]domain.Airplane, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Airplane), args.Error(1)
}

func (m *MockAirplaneRepository) Update(ctx context.Context, airplane *domain.Airplane) error {
	args := m.Called(ctx, airplane)
	return args.Error(0)
}

func (m *MockAirplaneRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAirportRepository struct {
	mock.Mock
}

func (m *MockAirportRepository) Create(ctx context.Context, airport *domain.Airport) error {
	args := m.Called(ctx, airport)
	return args.Error(0)
}

func (m *MockAirportRepository) GetByID(ctx context.Context, id int64) (*domain.Airport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airport), args.Error(1)
}

func (m *MockAirportRepository) List(ctx context.Context) ([]domain.Airport, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Airport), args.Error(1)
}

func (m *MockAirportRepository) Update(ctx context.Context, airport *domain.Airport) error {
	args := m.Called(ctx, airport)
	return args.Error(0)
}

func (m *MockAirportRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	args := m.Called(ctx, flights)
	return args.Error(0)
}

func (m *MockCache) InvalidateFlights(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func validInput() FlightInput {
	departure := time.Now().Add(48 * time.Hour)
	return FlightInput{
		FlightName:           "AI-202",
		AirplaneID:           1,
		SourceAirportID:      2,
		DestinationAirportID: 3,
		DepartureTime:        departure,
		ArrivalTime:          departure.Add(2 * time.Hour),
		Status:               "SCHEDULED",
		Prices:               map[string]string{"ECONOMY": "40.00", "BUSINESS": "120.00"},
	}
}

func expectReferences(airplanes *MockAirplaneRepository, airports *MockAirportRepository) {
	airplanes.On("GetByID", mock.Anything, int64(1)).Return(&domain.Airplane{ID: 1}, nil)
	airports.On("GetByID", mock.Anything, int64(2)).Return(&domain.Airport{ID: 2}, nil)
	airports.On("GetByID", mock.Anything, int64(3)).Return(&domain.Airport{ID: 3}, nil)
}

func TestFlightService_Create_Success(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockAirplanes := &MockAirplaneRepository{}
	mockAirports := &MockAirportRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, mockAirplanes, mockAirports, mockCache)

	expectReferences(mockAirplanes, mockAirports)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Flight"), mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Flight).ID = 4
			prices := args.Get(2).([]domain.FlightPrice)
			assert.Len(t, prices, 2)
		}).
		Return(nil).Once()
	mockCache.On("InvalidateFlights", mock.Anything).Return(nil).Once()

	flight, err := service.Create(context.Background(), validInput())

	assert.NoError(t, err)
	assert.Equal(t, int64(4), flight.ID)
	assert.Equal(t, domain.FlightStatusScheduled, flight.Status)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestFlightService_Create_MissingReferences(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockAirplanes := &MockAirplaneRepository{}
	mockAirports := &MockAirportRepository{}
	service := NewFlightService(mockRepo, mockAirplanes, mockAirports, nil)

	mockAirplanes.On("GetByID", mock.Anything, int64(1)).Return(nil, domain.ErrAirplaneNotFound)
	mockAirports.On("GetByID", mock.Anything, int64(2)).Return(&domain.Airport{ID: 2}, nil)
	mockAirports.On("GetByID", mock.Anything, int64(3)).Return(nil, domain.ErrAirportNotFound)

	flight, err := service.Create(context.Background(), validInput())

	assert.Error(t, err)
	assert.Nil(t, flight)
	assert.Contains(t, err.Error(), "airplane with ID 1 not found")
	assert.Contains(t, err.Error(), "destination airport with ID 3 not found")
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestFlightService_Create_ValidationErrors(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockAirplanes := &MockAirplaneRepository{}
	mockAirports := &MockAirportRepository{}
	service := NewFlightService(mockRepo, mockAirplanes, mockAirports, nil)
	expectReferences(mockAirplanes, mockAirports)

	testCases := []struct {
		name   string
		mutate func(*FlightInput)
	}{
		{"unknown status", func(in *FlightInput) { in.Status = "BOARDING" }},
		{"empty name", func(in *FlightInput) { in.FlightName = "" }},
		{"departure in the past", func(in *FlightInput) { in.DepartureTime = time.Now().Add(-time.Hour) }},
		{"arrival before departure", func(in *FlightInput) { in.ArrivalTime = in.DepartureTime.Add(-time.Minute) }},
		{"unknown seat class", func(in *FlightInput) { in.Prices = map[string]string{"PREMIUM": "40.00"} }},
		{"unparseable price", func(in *FlightInput) { in.Prices = map[string]string{"ECONOMY": "cheap"} }},
		{"non-positive price", func(in *FlightInput) { in.Prices = map[string]string{"ECONOMY": "0"} }},
		{"no prices", func(in *FlightInput) { in.Prices = nil }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			tc.mutate(&input)
			flight, err := service.Create(context.Background(), input)
			assert.Error(t, err)
			assert.Nil(t, flight)
		})
	}
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestFlightService_List_CacheHit(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, &MockAirplaneRepository{}, &MockAirportRepository{}, mockCache)

	cached := []domain.Flight{{ID: 4, FlightName: "AI-202"}}
	mockCache.On("GetFlights", mock.Anything).Return(cached, nil).Once()

	flights, err := service.List(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, cached, flights)
	mockRepo.AssertNotCalled(t, "List", mock.Anything)
}

func TestFlightService_List_CacheMissFillsCache(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, &MockAirplaneRepository{}, &MockAirportRepository{}, mockCache)

	stored := []domain.Flight{{ID: 4, FlightName: "AI-202"}}
	mockCache.On("GetFlights", mock.Anything).Return(nil, nil).Once()
	mockRepo.On("List", mock.Anything).Return(stored, nil).Once()
	mockCache.On("SetFlights", mock.Anything, stored).Return(nil).Once()

	flights, err := service.List(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, stored, flights)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestFlightService_Delete_InvalidatesCache(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, &MockAirplaneRepository{}, &MockAirportRepository{}, mockCache)

	mockRepo.On("Delete", mock.Anything, int64(4)).Return(nil).Once()
	mockCache.On("InvalidateFlights", mock.Anything).Return(nil).Once()

	assert.NoError(t, service.Delete(context.Background(), 4))
	mockCache.AssertExpectations(t)
}

func TestFlightService_ListPrices_FlightNotFound(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, &MockAirplaneRepository{}, &MockAirportRepository{}, nil)

	mockRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrFlightNotFound).Once()

	prices, err := service.ListPrices(context.Background(), 99)

	assert.ErrorIs(t, err, domain.ErrFlightNotFound)
	assert.Nil(t, prices)
	mockRepo.AssertNotCalled(t, "ListPrices", mock.Anything, mock.Anything)
}
