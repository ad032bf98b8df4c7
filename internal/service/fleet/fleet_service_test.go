package fleet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/harishrd0x/flight-reservation-system/internal/domain"
)

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

func TestFleetService_CreateAirplane(t *testing.T) {
	mockAirplanes := &MockAirplaneRepository{}
	service := NewFleetService(mockAirplanes, &MockAirportRepository{})

	mockAirplanes.On("Create", mock.Anything, mock.AnythingOfType("*domain.Airplane")).
		Run(func(args mock.Arguments) { args.Get(1).(*domain.Airplane).ID = 1 }).
		Return(nil).Once()

	airplane, err := service.CreateAirplane(context.Background(), AirplaneInput{
		AirplaneNumber:  "VT-ANL",
		Model:           "Boeing 787-8",
		TotalSeats:      256,
		EconomySeats:    238,
		BusinessSeats:   18,
		FirstClassSeats: 0,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), airplane.ID)
	mockAirplanes.AssertExpectations(t)
}

func TestFleetService_CreateAirplane_ValidationErrors(t *testing.T) {
	mockAirplanes := &MockAirplaneRepository{}
	service := NewFleetService(mockAirplanes, &MockAirportRepository{})

	testCases := []struct {
		name  string
		input AirplaneInput
	}{
		{"missing number", AirplaneInput{Model: "Boeing 787-8", TotalSeats: 256}},
		{"missing model", AirplaneInput{AirplaneNumber: "VT-ANL", TotalSeats: 256}},
		{"zero total seats", AirplaneInput{AirplaneNumber: "VT-ANL", Model: "Boeing 787-8"}},
		{"negative class seats", AirplaneInput{AirplaneNumber: "VT-ANL", Model: "Boeing 787-8", TotalSeats: 256, EconomySeats: -1}},
		{"class seats exceed total", AirplaneInput{AirplaneNumber: "VT-ANL", Model: "Boeing 787-8", TotalSeats: 100, EconomySeats: 90, BusinessSeats: 20}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			airplane, err := service.CreateAirplane(context.Background(), tc.input)
			assert.Error(t, err)
			assert.Nil(t, airplane)
		})
	}
	mockAirplanes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFleetService_CreateAirport_NormalizesCode(t *testing.T) {
	mockAirports := &MockAirportRepository{}
	service := NewFleetService(&MockAirplaneRepository{}, mockAirports)

	mockAirports.On("Create", mock.Anything, mock.AnythingOfType("*domain.Airport")).Return(nil).Once()

	airport, err := service.CreateAirport(context.Background(), AirportInput{
		Name:        "Kempegowda International",
		City:        "Bengaluru",
		Country:     "India",
		AirportCode: "blr",
	})

	assert.NoError(t, err)
	assert.Equal(t, "BLR", airport.AirportCode)
}

func TestFleetService_CreateAirport_BadCode(t *testing.T) {
	mockAirports := &MockAirportRepository{}
	service := NewFleetService(&MockAirplaneRepository{}, mockAirports)

	for _, code := range []string{"", "BL", "BLRX"} {
		airport, err := service.CreateAirport(context.Background(), AirportInput{
			Name: "Kempegowda International", City: "Bengaluru", Country: "India", AirportCode: code,
		})
		assert.Error(t, err)
		assert.Nil(t, airport)
	}
	mockAirports.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
