package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// ParseBookingStatus rejects anything outside the closed status set.
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return BookingStatus(s), nil
	}
	return "", ErrInvalidStatus
}

type Booking struct {
	ID           int64
	Reference    string
	UserID       int64
	FlightID     int64
	SeatClass    SeatClass
	BookingPrice decimal.Decimal
	Status       BookingStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type PassengerGender string

const (
	PassengerGenderMale   PassengerGender = "M"
	PassengerGenderFemale PassengerGender = "F"
	PassengerGenderOther  PassengerGender = "O"
)

func ParsePassengerGender(s string) (PassengerGender, error) {
	switch PassengerGender(s) {
	case PassengerGenderMale, PassengerGenderFemale, PassengerGenderOther:
		return PassengerGender(s), nil
	}
	return "", ErrInvalidGender
}

type Passenger struct {
	ID        int64
	BookingID int64
	FirstName string
	LastName  string
	Gender    PassengerGender
	Age       int
}
