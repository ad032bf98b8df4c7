package email

import (
	"context"
	"fmt"

	"github.com/harishrd0x/flight-reservation-system/internal/kafka"
)

// Sender is a stand-in for a real mail integration: it logs what would
// be sent. The worker feeds it booking events from the notifications
// topic.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	fmt.Printf("notify user %d: booking %s %s (amount %s)\n", event.UserID, event.Reference, event.Type, event.Amount)
	return nil
}
