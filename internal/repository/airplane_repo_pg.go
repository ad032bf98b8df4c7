package repository

import (
	"context"
	"errors"

	"github.com/harishrd0x/flight-reservation-system/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AirplaneRepository interface {
	Create(ctx context.Context, airplane *domain.Airplane) error
	GetByID(ctx context.Context, id int64) (*domain.Airplane, error)
	List(ctx context.Context) ([]domain.Airplane, error)
	Update(ctx context.Context, airplane *domain.Airplane) error
	Delete(ctx context.Context, id int64) error
}

type PGAirplaneRepository struct {
	db *pgxpool.Pool
}

func NewAirplaneRepository(db *pgxpool.Pool) AirplaneRepository {
	return &PGAirplaneRepository{db: db}
}

func (r *PGAirplaneRepository) Create(ctx context.Context, airplane *domain.Airplane) error {
	return r.db.QueryRow(ctx, `INSERT INTO airplanes (airplane_number, model, total_seats, economy_seats, business_seats, first_class_seats)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		airplane.AirplaneNumber, airplane.Model, airplane.TotalSeats, airplane.EconomySeats, airplane.BusinessSeats, airplane.FirstClassSeats).
		Scan(&airplane.ID)
}

func (r *PGAirplaneRepository) GetByID(ctx context.Context, id int64) (*domain.Airplane, error) {
	row := r.db.QueryRow(ctx, `SELECT id, airplane_number, model, total_seats, economy_seats, business_seats, first_class_seats FROM airplanes WHERE id=$1`, id)
	var a domain.Airplane
	if err := row.Scan(&a.ID, &a.AirplaneNumber, &a.Model, &a.TotalSeats, &a.EconomySeats, &a.BusinessSeats, &a.FirstClassSeats); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAirplaneNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *PGAirplaneRepository) List(ctx context.Context) ([]domain.Airplane, error) {
	rows, err := r.db.Query(ctx, `SELECT id, airplane_number, model, total_seats, economy_seats, business_seats, first_class_seats FROM airplanes ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airplanes := make([]domain.Airplane, 0)
	for rows.Next() {
		var a domain.Airplane
		if err := rows.Scan(&a.ID, &a.AirplaneNumber, &a.Model, &a.TotalSeats, &a.EconomySeats, &a.BusinessSeats, &a.FirstClassSeats); err != nil {
			return nil, err
		}
		airplanes = append(airplanes, a)
	}
	return airplanes, rows.Err()
}

func (r *PGAirplaneRepository) Update(ctx context.Context, airplane *domain.Airplane) error {
	cmd, err := r.db.Exec(ctx, `UPDATE airplanes SET airplane_number=$1, model=$2, total_seats=$3, economy_seats=$4, business_seats=$5, first_class_seats=$6 WHERE id=$7`,
		airplane.AirplaneNumber, airplane.Model, airplane.TotalSeats, airplane.EconomySeats, airplane.BusinessSeats, airplane.FirstClassSeats, airplane.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrAirplaneNotFound
	}
	return nil
}

func (r *PGAirplaneRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM airplanes WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrAirplaneNotFound
	}
	return nil
}

var _ AirplaneRepository = (*PGAirplaneRepository)(nil)
