package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Wallet struct {
	ID        int64
	UserID    int64
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

type TransactionType string

const (
	TransactionPayment TransactionType = "PAYMENT"
	TransactionRefund  TransactionType = "REFUND"
	TransactionCredit  TransactionType = "CREDIT"
)

// PaymentTransaction is an immutable ledger entry. One row is written for
// every balance-affecting event, inside the same transaction that moves
// the balance.
type PaymentTransaction struct {
	ID              int64
	WalletID        int64
	BookingID       *int64
	Amount          decimal.Decimal
	TransactionType TransactionType
	Description     string
	CreatedAt       time.Time
}
