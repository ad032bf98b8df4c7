package wallet

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/harishrd0x/flight-reservation-system/internal/domain"
	"github.com/harishrd0x/flight-reservation-system/internal/repository"
)

type WalletUseCase interface {
	GetWallet(ctx context.Context, userID int64) (*domain.Wallet, []domain.PaymentTransaction, error)
	AddFunds(ctx context.Context, userID int64, amount string) (*domain.Wallet, error)
}

type WalletService struct {
	wallets repository.WalletRepository
}

func NewWalletService(wallets repository.WalletRepository) *WalletService {
	return &WalletService{wallets: wallets}
}

func (s *WalletService) GetWallet(ctx context.Context, userID int64) (*domain.Wallet, []domain.PaymentTransaction, error) {
	wallet, err := s.wallets.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	transactions, err := s.wallets.ListTransactions(ctx, wallet.ID)
	if err != nil {
		return nil, nil, err
	}
	return wallet, transactions, nil
}

// AddFunds credits the wallet, creating it on first funding. The parse
// and the positivity check happen before any write; the credit and its
// CREDIT ledger row commit atomically in the repository.
func (s *WalletService) AddFunds(ctx context.Context, userID int64, amount string) (*domain.Wallet, error) {
	deposit, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidAmount, err)
	}
	if !deposit.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}

	return s.wallets.Credit(ctx, userID, deposit, "Added funds to wallet")
}

var _ WalletUseCase = (*WalletService)(nil)
