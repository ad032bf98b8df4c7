package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/harishrd0x/flight-reservation-system/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// WalletRepository is the ledger. Every mutating method runs a single
// database transaction and locks the wallet row before the
// check-then-write, so concurrent operations against the same wallet
// serialize instead of losing updates. The payment_transactions insert
// commits together with the balance and booking-status writes or not
// at all.
type WalletRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Wallet, error)
	ListTransactions(ctx context.Context, walletID int64) ([]domain.PaymentTransaction, error)
	Credit(ctx context.Context, userID int64, amount decimal.Decimal, description string) (*domain.Wallet, error)
	DebitForBooking(ctx context.Context, booking *domain.Booking) (*domain.Wallet, error)
	RefundForBooking(ctx context.Context, booking *domain.Booking) (*domain.Wallet, error)
}

type PGWalletRepository struct {
	db *pgxpool.Pool
}

func NewWalletRepository(db *pgxpool.Pool) WalletRepository {
	return &PGWalletRepository{db: db}
}

func (r *PGWalletRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Wallet, error) {
	row := r.db.QueryRow(ctx, `SELECT id, user_id, balance, created_at, updated_at FROM wallets WHERE user_id=$1`, userID)
	var w domain.Wallet
	if err := row.Scan(&w.ID, &w.UserID, &w.Balance, &w.CreatedAt, &w.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrWalletNotFound
		}
		return nil, err
	}
	return &w, nil
}

func (r *PGWalletRepository) ListTransactions(ctx context.Context, walletID int64) ([]domain.PaymentTransaction, error) {
	rows, err := r.db.Query(ctx, `SELECT id, wallet_id, booking_id, amount, transaction_type, description, created_at FROM payment_transactions WHERE wallet_id=$1 ORDER BY created_at DESC, id DESC`, walletID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := make([]domain.PaymentTransaction, 0)
	for rows.Next() {
		var t domain.PaymentTransaction
		if err := rows.Scan(&t.ID, &t.WalletID, &t.BookingID, &t.Amount, &t.TransactionType, &t.Description, &t.CreatedAt); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

func (r *PGWalletRepository) Credit(ctx context.Context, userID int64, amount decimal.Decimal, description string) (*domain.Wallet, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	w, err := lockWallet(ctx, tx, userID)
	if errors.Is(err, domain.ErrWalletNotFound) {
		// first funding creates the wallet
		w = &domain.Wallet{}
		if err := tx.QueryRow(ctx, `INSERT INTO wallets (user_id, balance) VALUES ($1, 0) RETURNING id, user_id, balance, created_at, updated_at`, userID).
			Scan(&w.ID, &w.UserID, &w.Balance, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	if err := updateBalance(ctx, tx, w, w.Balance.Add(amount)); err != nil {
		return nil, err
	}
	if err := insertTransaction(ctx, tx, w.ID, nil, amount, domain.TransactionCredit, description); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return w, nil
}

func (r *PGWalletRepository) DebitForBooking(ctx context.Context, booking *domain.Booking) (*domain.Wallet, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	w, err := lockWallet(ctx, tx, booking.UserID)
	if err != nil {
		return nil, err
	}
	if w.Balance.LessThan(booking.BookingPrice) {
		return nil, domain.ErrInsufficientFunds
	}

	if err := updateBalance(ctx, tx, w, w.Balance.Sub(booking.BookingPrice)); err != nil {
		return nil, err
	}

	// status guard re-checked inside the transaction: a concurrent
	// confirmation loses here instead of double-charging
	cmd, err := tx.Exec(ctx, `UPDATE bookings SET status=$1, updated_at=now() WHERE id=$2 AND status=$3`, domain.BookingStatusConfirmed, booking.ID, domain.BookingStatusPending)
	if err != nil {
		return nil, err
	}
	if cmd.RowsAffected() == 0 {
		return nil, domain.ErrBookingNotPending
	}

	if err := insertTransaction(ctx, tx, w.ID, &booking.ID, booking.BookingPrice, domain.TransactionPayment, fmt.Sprintf("Payment for booking %s", booking.Reference)); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return w, nil
}

func (r *PGWalletRepository) RefundForBooking(ctx context.Context, booking *domain.Booking) (*domain.Wallet, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	w, err := lockWallet(ctx, tx, booking.UserID)
	if err != nil {
		return nil, err
	}

	if err := updateBalance(ctx, tx, w, w.Balance.Add(booking.BookingPrice)); err != nil {
		return nil, err
	}

	cmd, err := tx.Exec(ctx, `UPDATE bookings SET status=$1, updated_at=now() WHERE id=$2 AND status=$3`, domain.BookingStatusCancelled, booking.ID, domain.BookingStatusConfirmed)
	if err != nil {
		return nil, err
	}
	if cmd.RowsAffected() == 0 {
		return nil, domain.ErrBookingNotConfirmed
	}

	if err := insertTransaction(ctx, tx, w.ID, &booking.ID, booking.BookingPrice, domain.TransactionRefund, fmt.Sprintf("Refund for booking %s", booking.Reference)); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return w, nil
}

func lockWallet(ctx context.Context, tx pgx.Tx, userID int64) (*domain.Wallet, error) {
	row := tx.QueryRow(ctx, `SELECT id, user_id, balance, created_at, updated_at FROM wallets WHERE user_id=$1 FOR UPDATE`, userID)
	var w domain.Wallet
	if err := row.Scan(&w.ID, &w.UserID, &w.Balance, &w.CreatedAt, &w.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrWalletNotFound
		}
		return nil, err
	}
	return &w, nil
}

func updateBalance(ctx context.Context, tx pgx.Tx, w *domain.Wallet, balance decimal.Decimal) error {
	if err := tx.QueryRow(ctx, `UPDATE wallets SET balance=$1, updated_at=now() WHERE id=$2 RETURNING updated_at`, balance, w.ID).Scan(&w.UpdatedAt); err != nil {
		return err
	}
	w.Balance = balance
	return nil
}

func insertTransaction(ctx context.Context, tx pgx.Tx, walletID int64, bookingID *int64, amount decimal.Decimal, transactionType domain.TransactionType, description string) error {
	_, err := tx.Exec(ctx, `INSERT INTO payment_transactions (wallet_id, booking_id, amount, transaction_type, description) VALUES ($1, $2, $3, $4, $5)`, walletID, bookingID, amount, transactionType, description)
	return err
}

var _ WalletRepository = (*PGWalletRepository)(nil)
