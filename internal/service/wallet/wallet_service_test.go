package wallet

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/harishrd0x/flight-reservation-system/internal/domain"
)

type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) ListTransactions(ctx context.Context, walletID int64) ([]domain.PaymentTransaction, error) {
	args := m.Called(ctx, walletID)
	return args.Get(0).([]domain.PaymentTransaction), args.Error(1)
}

func (m *MockWalletRepository) Credit(ctx context.Context, userID int64, amount decimal.Decimal, description string) (*domain.Wallet, error) {
	args := m.Called(ctx, userID, amount, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) DebitForBooking(ctx context.Context, booking *domain.Booking) (*domain.Wallet, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) RefundForBooking(ctx context.Context, booking *domain.Booking) (*domain.Wallet, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func TestWalletService_GetWallet(t *testing.T) {
	mockRepo := &MockWalletRepository{}
	service := NewWalletService(mockRepo)

	ctx := context.Background()
	stored := &domain.Wallet{ID: 2, UserID: 11, Balance: decimal.RequireFromString("75.50")}
	bookingID := int64(5)
	history := []domain.PaymentTransaction{
		{ID: 1, WalletID: 2, TransactionType: domain.TransactionCredit, Amount: decimal.RequireFromString("100.00")},
		{ID: 2, WalletID: 2, BookingID: &bookingID, TransactionType: domain.TransactionPayment, Amount: decimal.RequireFromString("24.50")},
	}

	mockRepo.On("GetByUserID", ctx, int64(11)).Return(stored, nil).Once()
	mockRepo.On("ListTransactions", ctx, int64(2)).Return(history, nil).Once()

	wallet, transactions, err := service.GetWallet(ctx, 11)

	assert.NoError(t, err)
	assert.Equal(t, stored, wallet)
	assert.Len(t, transactions, 2)
	mockRepo.AssertExpectations(t)
}

func TestWalletService_GetWallet_NotFound(t *testing.T) {
	mockRepo := &MockWalletRepository{}
	service := NewWalletService(mockRepo)

	ctx := context.Background()
	mockRepo.On("GetByUserID", ctx, int64(99)).Return(nil, domain.ErrWalletNotFound).Once()

	wallet, _, err := service.GetWallet(ctx, 99)

	assert.ErrorIs(t, err, domain.ErrWalletNotFound)
	assert.Nil(t, wallet)
	mockRepo.AssertNotCalled(t, "ListTransactions", mock.Anything, mock.Anything)
}

func TestWalletService_AddFunds(t *testing.T) {
	mockRepo := &MockWalletRepository{}
	service := NewWalletService(mockRepo)

	ctx := context.Background()
	credited := &domain.Wallet{ID: 2, UserID: 11, Balance: decimal.RequireFromString("125.50")}
	amountMatches := mock.MatchedBy(func(amount decimal.Decimal) bool {
		return amount.Equal(decimal.RequireFromString("25.50"))
	})
	mockRepo.On("Credit", ctx, int64(11), amountMatches, "Added funds to wallet").Return(credited, nil).Once()

	wallet, err := service.AddFunds(ctx, 11, "25.50")

	assert.NoError(t, err)
	assert.True(t, wallet.Balance.Equal(decimal.RequireFromString("125.50")))
	mockRepo.AssertExpectations(t)
}

func TestWalletService_AddFunds_InvalidAmount(t *testing.T) {
	mockRepo := &MockWalletRepository{}
	service := NewWalletService(mockRepo)

	for _, amount := range []string{"", "abc", "12.3.4", "-5.00", "0", "0.00"} {
		wallet, err := service.AddFunds(context.Background(), 11, amount)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount, "amount %q", amount)
		assert.Nil(t, wallet)
	}
	mockRepo.AssertNotCalled(t, "Credit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
