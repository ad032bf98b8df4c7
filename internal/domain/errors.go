package domain

import "errors"

// Sentinel errors shared across services and repositories. The API layer
// maps these onto HTTP statuses; repositories translate driver errors
// (pgx.ErrNoRows and friends) into them so callers never see driver types.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email or mobile number already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrAirplaneNotFound = errors.New("airplane not found")
	ErrAirportNotFound  = errors.New("airport not found")
	ErrFlightNotFound   = errors.New("flight not found")
	ErrPriceNotFound    = errors.New("no price configured for this flight and seat class")

	ErrBookingNotFound     = errors.New("booking not found")
	ErrBookingNotPending   = errors.New("booking is not pending")
	ErrBookingNotConfirmed = errors.New("booking is not confirmed")

	ErrWalletNotFound    = errors.New("wallet not found")
	ErrInsufficientFunds = errors.New("insufficient wallet balance")

	ErrInvalidAmount        = errors.New("amount must be a positive number")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrInvalidSeatClass     = errors.New("invalid seat class")
	ErrInvalidPaymentStatus = errors.New("payment status must be PAID")
	ErrInvalidRole          = errors.New("invalid role")
	ErrForbidden            = errors.New("you are not allowed to access this resource")
	ErrInvalidGender        = errors.New("invalid gender")
)

// ValidationError marks bad caller input. The API layer returns it as
// 400; errors outside the taxonomy are treated as unexpected and never
// shown to clients.
type ValidationError struct {
	msg string
}

func (e ValidationError) Error() string { return e.msg }

func Validation(msg string) error { return ValidationError{msg: msg} }
