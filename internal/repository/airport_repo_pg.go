package repository

import (
	"context"
	"errors"

	"github.com/harishrd0x/flight-reservation-system/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AirportRepository interface {
	Create(ctx context.Context, airport *domain.Airport) error
	GetByID(ctx context.Context, id int64) (*domain.Airport, error)
	List(ctx context.Context) ([]domain.Airport, error)
	Update(ctx context.Context, airport *domain.Airport) error
	Delete(ctx context.Context, id int64) error
}

type PGAirportRepository struct {
	db *pgxpool.Pool
}

func NewAirportRepository(db *pgxpool.Pool) AirportRepository {
	return &PGAirportRepository{db: db}
}

func (r *PGAirportRepository) Create(ctx context.Context, airport *domain.Airport) error {
	return r.db.QueryRow(ctx, `INSERT INTO airports (name, city, country, airport_code) VALUES ($1, $2, $3, $4) RETURNING id`,
		airport.Name, airport.City, airport.Country, airport.AirportCode).
		Scan(&airport.ID)
}

func (r *PGAirportRepository) GetByID(ctx context.Context, id int64) (*domain.Airport, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, city, country, airport_code FROM airports WHERE id=$1`, id)
	var a domain.Airport
	if err := row.Scan(&a.ID, &a.Name, &a.City, &a.Country, &a.AirportCode); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAirportNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *PGAirportRepository) List(ctx context.Context) ([]domain.Airport, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, city, country, airport_code FROM airports ORDER BY airport_code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airports := make([]domain.Airport, 0)
	for rows.Next() {
		var a domain.Airport
		if err := rows.Scan(&a.ID, &a.Name, &a.City, &a.Country, &a.AirportCode); err != nil {
			return nil, err
		}
		airports = append(airports, a)
	}
	return airports, rows.Err()
}

func (r *PGAirportRepository) Update(ctx context.Context, airport *domain.Airport) error {
	cmd, err := r.db.Exec(ctx, `UPDATE airports SET name=$1, city=$2, country=$3, airport_code=$4 WHERE id=$5`,
		airport.Name, airport.City, airport.Country, airport.AirportCode, airport.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrAirportNotFound
	}
	return nil
}

func (r *PGAirportRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM airports WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrAirportNotFound
	}
	return nil
}

var _ AirportRepository = (*PGAirportRepository)(nil)
