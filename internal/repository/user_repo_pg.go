package repository

import (
	"context"
	"errors"

	"github.com/harishrd0x/flight-reservation-system/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	EmailOrMobileExists(ctx context.Context, email, mobile string) (bool, error)
}

type PGUserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) UserRepository {
	return &PGUserRepository{db: db}
}

const userColumns = `id, name, email, mobile_number, password_hash, role, dob, address, zip_code, gender, created_at`

// Create inserts the user together with their zero-balance wallet.
// Registration and wallet creation commit or roll back as one unit.
func (r *PGUserRepository) Create(ctx context.Context, user *domain.User) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx, `INSERT INTO users (name, email, mobile_number, password_hash, role, dob, address, zip_code, gender)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''))
		RETURNING id, created_at`,
		user.Name, user.Email, user.MobileNumber, user.PasswordHash, user.Role, user.DOB, user.Address, user.ZipCode, string(user.Gender)).
		Scan(&user.ID, &user.CreatedAt); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `INSERT INTO wallets (user_id, balance) VALUES ($1, 0)`, user.ID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PGUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.get(ctx, `SELECT `+userColumns+` FROM users WHERE id=$1`, id)
}

func (r *PGUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.get(ctx, `SELECT `+userColumns+` FROM users WHERE email=$1`, email)
}

func (r *PGUserRepository) get(ctx context.Context, query string, arg interface{}) (*domain.User, error) {
	row := r.db.QueryRow(ctx, query, arg)
	var u domain.User
	var gender *string
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.MobileNumber, &u.PasswordHash, &u.Role, &u.DOB, &u.Address, &u.ZipCode, &gender, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	if gender != nil {
		u.Gender = domain.Gender(*gender)
	}
	return &u, nil
}

func (r *PGUserRepository) Update(ctx context.Context, user *domain.User) error {
	cmd, err := r.db.Exec(ctx, `UPDATE users SET name=$1, mobile_number=$2, dob=$3, address=$4, zip_code=$5, gender=NULLIF($6, '') WHERE id=$7`,
		user.Name, user.MobileNumber, user.DOB, user.Address, user.ZipCode, string(user.Gender), user.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *PGUserRepository) EmailOrMobileExists(ctx context.Context, email, mobile string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email=$1 OR mobile_number=$2)`, email, mobile).Scan(&exists)
	return exists, err
}

var _ UserRepository = (*PGUserRepository)(nil)
