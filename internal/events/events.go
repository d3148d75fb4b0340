// Package events publishes appointment lifecycle notifications to Kafka.
// Publishing is fire-and-forget from the caller's point of view; a broker
// outage never fails the originating request.
package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"garage/config"
	"garage/infras/kafka"
)

const (
	TopicBookingCreated       = "garage.booking.created"
	TopicBookingRescheduled   = "garage.booking.rescheduled"
	TopicBookingStatusChanged = "garage.booking.status_changed"
	TopicBookingCancelled     = "garage.booking.cancelled"
	TopicBookingReminder      = "garage.booking.reminder"
)

type BookingEvent struct {
	BookingID   string    `json:"booking_id"`
	CustomerID  string    `json:"customer_id"`
	ServiceID   string    `json:"service_id"`
	BookingDate string    `json:"booking_date"`
	StartTime   string    `json:"start_time"`
	Status      string    `json:"status"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type StatusChangedEvent struct {
	BookingEvent
	PreviousStatus string `json:"previous_status"`
	Reason         string `json:"reason,omitempty"`
}

type CancelledEvent struct {
	BookingEvent
	Reason string  `json:"reason,omitempty"`
	Fee    float64 `json:"fee"`
}

type Dispatcher interface {
	Publish(ctx context.Context, topic, key string, payload any)
}

type dispatcherImpl struct {
	client  kafka.Client
	enabled bool
}

func NewDispatcher(cfg *config.Config, client kafka.Client) Dispatcher {
	return &dispatcherImpl{
		client:  client,
		enabled: cfg.Kafka.Enable,
	}
}

// Publish sends one message keyed by the booking id. Failures are logged
// and swallowed.
func (d *dispatcherImpl) Publish(ctx context.Context, topic, key string, payload any) {
	if !d.enabled {
		return
	}

	err := d.client.SendMessages(ctx, topic, kafka.Message{Key: key, Value: payload})
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Str("key", key).Msg("failed to publish booking event")
	}
}
