package booking

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/harishrd0x/flight-reservation-system/internal/domain"
	"github.com/harishrd0x/flight-reservation-system/internal/kafka"
	"github.com/harishrd0x/flight-reservation-system/internal/repository"
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, userID int64, input CreateBookingInput) (*domain.Booking, []domain.Passenger, error)
	ConfirmBooking(ctx context.Context, bookingID int64, paymentStatus string) (*domain.Booking, *domain.Wallet, error)
	CancelBooking(ctx context.Context, bookingID int64, requestedStatus string) (*domain.Booking, *domain.Wallet, error)
	GetBooking(ctx context.Context, bookingID int64) (*domain.Booking, []domain.Passenger, error)
	ListUserBookings(ctx context.Context, userID int64) ([]domain.Booking, error)
	ListAllBookings(ctx context.Context) ([]domain.Booking, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// PaymentStatusPaid is the only payment-status signal that allows a
// confirmation to proceed. There is no gateway behind it.
const PaymentStatusPaid = "PAID"

type BookingService struct {
	bookings           repository.BookingRepository
	flights            repository.FlightRepository
	wallets            repository.WalletRepository
	producer           Producer
	bookingTopic       string
	notificationsTopic string
}

type CreateBookingInput struct {
	FlightID   int64            `json:"flight_id"`
	SeatClass  string           `json:"seat_class"`
	Passengers []PassengerInput `json:"passengers"`
}

type PassengerInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Gender    string `json:"gender"`
	Age       int    `json:"age"`
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	flights repository.FlightRepository,
	wallets repository.WalletRepository,
	producer Producer,
	bookingTopic string,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:     bookings,
		flights:      flights,
		wallets:      wallets,
		producer:     producer,
		bookingTopic: bookingTopic,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CreateBooking stamps the booking with the flight's per-class price at
// creation time. Later price changes never touch existing bookings.
func (s *BookingService) CreateBooking(ctx context.Context, userID int64, input CreateBookingInput) (*domain.Booking, []domain.Passenger, error) {
	seatClass, err := domain.ParseSeatClass(input.SeatClass)
	if err != nil {
		return nil, nil, err
	}
	if len(input.Passengers) == 0 {
		return nil, nil, domain.Validation("at least one passenger is required")
	}

	passengers := make([]domain.Passenger, 0, len(input.Passengers))
	for _, p := range input.Passengers {
		if p.FirstName == "" || p.LastName == "" {
			return nil, nil, domain.Validation("passenger first and last name are required")
		}
		if p.Age < 0 {
			return nil, nil, domain.Validation("passenger age must not be negative")
		}
		gender, err := domain.ParsePassengerGender(p.Gender)
		if err != nil {
			return nil, nil, err
		}
		passengers = append(passengers, domain.Passenger{
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Gender:    gender,
			Age:       p.Age,
		})
	}

	price, err := s.flights.GetPrice(ctx, input.FlightID, seatClass)
	if err != nil {
		return nil, nil, err
	}

	booking := &domain.Booking{
		Reference:    uuid.NewString(),
		UserID:       userID,
		FlightID:     input.FlightID,
		SeatClass:    seatClass,
		BookingPrice: price.Mul(decimal.NewFromInt(int64(len(passengers)))),
	}

	if err := s.bookings.Create(ctx, booking, passengers); err != nil {
		return nil, nil, err
	}

	s.publish(ctx, "booking_created", booking)
	return booking, passengers, nil
}

// ConfirmBooking debits the owner's wallet and flips the booking to
// CONFIRMED. Preconditions are checked in order so each failure is
// distinct; the balance check is re-run inside the ledger transaction,
// so a concurrent confirmation cannot double-charge.
func (s *BookingService) ConfirmBooking(ctx context.Context, bookingID int64, paymentStatus string) (*domain.Booking, *domain.Wallet, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, nil, err
	}
	if paymentStatus != PaymentStatusPaid {
		return nil, nil, domain.ErrInvalidPaymentStatus
	}
	if booking.Status != domain.BookingStatusPending {
		return nil, nil, domain.ErrBookingNotPending
	}

	wallet, err := s.wallets.DebitForBooking(ctx, booking)
	if err != nil {
		return nil, nil, err
	}

	booking.Status = domain.BookingStatusConfirmed
	s.publish(ctx, "booking_confirmed", booking)
	return booking, wallet, nil
}

// CancelBooking refunds the booking price when the booking was
// confirmed and paid for; a pending booking was never charged, so it is
// cancelled without any ledger effect. Cancelling an already-cancelled
// booking is a no-op returning the record unchanged.
func (s *BookingService) CancelBooking(ctx context.Context, bookingID int64, requestedStatus string) (*domain.Booking, *domain.Wallet, error) {
	status, err := domain.ParseBookingStatus(requestedStatus)
	if err != nil || status != domain.BookingStatusCancelled {
		return nil, nil, domain.ErrInvalidStatus
	}

	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, nil, err
	}

	switch booking.Status {
	case domain.BookingStatusCancelled:
		return booking, nil, nil
	case domain.BookingStatusConfirmed:
		wallet, err := s.wallets.RefundForBooking(ctx, booking)
		if err != nil {
			return nil, nil, err
		}
		booking.Status = domain.BookingStatusCancelled
		s.publish(ctx, "booking_cancelled", booking)
		return booking, wallet, nil
	default:
		updated, err := s.bookings.CancelPending(ctx, bookingID)
		if errors.Is(err, domain.ErrBookingNotPending) {
			// a concurrent confirm won the guard; re-read so the
			// cancellation goes through the refund or no-op branch
			return s.CancelBooking(ctx, bookingID, requestedStatus)
		}
		if err != nil {
			return nil, nil, err
		}
		s.publish(ctx, "booking_cancelled", updated)
		return updated, nil, nil
	}
}

func (s *BookingService) GetBooking(ctx context.Context, bookingID int64) (*domain.Booking, []domain.Passenger, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, nil, err
	}
	passengers, err := s.bookings.ListPassengers(ctx, bookingID)
	if err != nil {
		return nil, nil, err
	}
	return booking, passengers, nil
}

func (s *BookingService) ListUserBookings(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

func (s *BookingService) ListAllBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.ListAll(ctx)
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:       eventType,
		Reference:  booking.Reference,
		BookingID:  booking.ID,
		UserID:     booking.UserID,
		FlightID:   booking.FlightID,
		SeatClass:  string(booking.SeatClass),
		Amount:     booking.BookingPrice.String(),
		Status:     string(booking.Status),
		OccurredAt: time.Now(),
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, booking.Reference, event); err != nil {
		log.Printf("WARNING: failed to publish %s event for booking %s: %v", eventType, booking.Reference, err)
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, booking.Reference, event); err != nil {
			log.Printf("WARNING: failed to publish %s notification for booking %s: %v", eventType, booking.Reference, err)
		}
	}
}

var _ BookingUseCase = (*BookingService)(nil)
