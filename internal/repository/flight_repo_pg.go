package repository

import (
	"context"
	"errors"

	"github.com/harishrd0x/flight-reservation-system/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type FlightRepository interface {
	Create(ctx context.Context, flight *domain.Flight, prices []domain.FlightPrice) error
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	List(ctx context.Context) ([]domain.Flight, error)
	Update(ctx context.Context, flight *domain.Flight, prices []domain.FlightPrice) error
	Delete(ctx context.Context, id int64) error
	GetPrice(ctx context.Context, flightID int64, seatClass domain.SeatClass) (decimal.Decimal, error)
	ListPrices(ctx context.Context, flightID int64) ([]domain.FlightPrice, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightColumns = `id, flight_name, airplane_id, source_airport_id, destination_airport_id, departure_time, arrival_time, status, created_at, updated_at`

func (r *PGFlightRepository) Create(ctx context.Context, flight *domain.Flight, prices []domain.FlightPrice) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx, `INSERT INTO flights (flight_name, airplane_id, source_airport_id, destination_airport_id, departure_time, arrival_time, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`,
		flight.FlightName, flight.AirplaneID, flight.SourceAirportID, flight.DestinationAirportID, flight.DepartureTime, flight.ArrivalTime, flight.Status).
		Scan(&flight.ID, &flight.CreatedAt, &flight.UpdatedAt); err != nil {
		return err
	}

	if err := upsertPrices(ctx, tx, flight.ID, prices); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM flights WHERE id=$1`, id)
	f, err := scanFlight(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFlightNotFound
		}
		return nil, err
	}
	return f, nil
}

func (r *PGFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM flights ORDER BY departure_time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, *f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) Update(ctx context.Context, flight *domain.Flight, prices []domain.FlightPrice) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx, `UPDATE flights SET flight_name=$1, airplane_id=$2, source_airport_id=$3, destination_airport_id=$4, departure_time=$5, arrival_time=$6, status=$7, updated_at=now()
		WHERE id=$8 RETURNING updated_at`,
		flight.FlightName, flight.AirplaneID, flight.SourceAirportID, flight.DestinationAirportID, flight.DepartureTime, flight.ArrivalTime, flight.Status, flight.ID).
		Scan(&flight.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrFlightNotFound
		}
		return err
	}

	if err := upsertPrices(ctx, tx, flight.ID, prices); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PGFlightRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM flights WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrFlightNotFound
	}
	return nil
}

func (r *PGFlightRepository) GetPrice(ctx context.Context, flightID int64, seatClass domain.SeatClass) (decimal.Decimal, error) {
	var price decimal.Decimal
	err := r.db.QueryRow(ctx, `SELECT price FROM flight_prices WHERE flight_id=$1 AND seat_class=$2`, flightID, seatClass).Scan(&price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Decimal{}, domain.ErrPriceNotFound
		}
		return decimal.Decimal{}, err
	}
	return price, nil
}

func (r *PGFlightRepository) ListPrices(ctx context.Context, flightID int64) ([]domain.FlightPrice, error) {
	rows, err := r.db.Query(ctx, `SELECT flight_id, seat_class, price FROM flight_prices WHERE flight_id=$1 ORDER BY seat_class`, flightID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prices := make([]domain.FlightPrice, 0)
	for rows.Next() {
		var p domain.FlightPrice
		if err := rows.Scan(&p.FlightID, &p.SeatClass, &p.Price); err != nil {
			return nil, err
		}
		prices = append(prices, p)
	}
	return prices, rows.Err()
}

func scanFlight(row pgx.Row) (*domain.Flight, error) {
	var f domain.Flight
	if err := row.Scan(&f.ID, &f.FlightName, &f.AirplaneID, &f.SourceAirportID, &f.DestinationAirportID, &f.DepartureTime, &f.ArrivalTime, &f.Status, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}

func upsertPrices(ctx context.Context, tx pgx.Tx, flightID int64, prices []domain.FlightPrice) error {
	for _, p := range prices {
		if _, err := tx.Exec(ctx, `INSERT INTO flight_prices (flight_id, seat_class, price) VALUES ($1, $2, $3)
			ON CONFLICT (flight_id, seat_class) DO UPDATE SET price = EXCLUDED.price`, flightID, p.SeatClass, p.Price); err != nil {
			return err
		}
	}
	return nil
}

var _ FlightRepository = (*PGFlightRepository)(nil)
