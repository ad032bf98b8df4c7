package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type FlightStatus string

const (
	FlightStatusScheduled FlightStatus = "SCHEDULED"
	FlightStatusDelayed   FlightStatus = "DELAYED"
	FlightStatusCancelled FlightStatus = "CANCELLED"
)

func ParseFlightStatus(s string) (FlightStatus, error) {
	switch FlightStatus(s) {
	case FlightStatusScheduled, FlightStatusDelayed, FlightStatusCancelled:
		return FlightStatus(s), nil
	}
	return "", ErrInvalidStatus
}

type SeatClass string

const (
	SeatClassEconomy  SeatClass = "ECONOMY"
	SeatClassBusiness SeatClass = "BUSINESS"
	SeatClassFirst    SeatClass = "FIRST"
)

func ParseSeatClass(s string) (SeatClass, error) {
	switch SeatClass(s) {
	case SeatClassEconomy, SeatClassBusiness, SeatClassFirst:
		return SeatClass(s), nil
	}
	return "", ErrInvalidSeatClass
}

type Flight struct {
	ID                   int64
	FlightName           string
	AirplaneID           int64
	SourceAirportID      int64
	DestinationAirportID int64
	DepartureTime        time.Time
	ArrivalTime          time.Time
	Status               FlightStatus
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// FlightPrice is the configured fare for one seat class on one flight.
// Bookings snapshot this value at creation time; later changes do not
// touch existing bookings.
type FlightPrice struct {
	FlightID  int64
	SeatClass SeatClass
	Price     decimal.Decimal
}
