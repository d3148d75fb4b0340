package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"garage/config"
	otelMocks "garage/infras/otel/mocks"
	bookingMocks "garage/internal/domains/booking/mocks"
	"garage/internal/domains/booking/model"
	"garage/internal/events"
	eventsMocks "garage/internal/events/mocks"
	"garage/internal/worker"
	"garage/shared/constant"
	"garage/shared/timezone"
)

// cancelledContext makes Run perform exactly one sweep and exit.
func cancelledContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	return ctx
}

func tomorrowBooking(id, status string) model.Booking {
	now := timezone.Now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)

	return model.Booking{
		ID:          id,
		CustomerID:  "customer-1",
		ServiceID:   "service-1",
		BookingDate: day,
		StartTime:   day.Add(10 * time.Hour),
		EndTime:     day.Add(11 * time.Hour),
		Status:      status,
	}
}

func TestReminderSweep(t *testing.T) {
	cfg := &config.Config{}
	cfg.Worker.Reminder.IntervalMinutes = 60

	t.Run("publishes one reminder per scheduled booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := bookingMocks.NewMockBooking(ctrl)
		dispatcher := eventsMocks.NewMockDispatcher(ctrl)

		repo.EXPECT().FindActiveByDate(gomock.Any(), gomock.Any(), constant.Empty).Return([]model.Booking{
			tomorrowBooking("booking-1", model.StatusScheduled),
			tomorrowBooking("booking-2", model.StatusInProgress),
			tomorrowBooking("booking-3", model.StatusScheduled),
		}, nil)

		dispatcher.EXPECT().Publish(gomock.Any(), events.TopicBookingReminder, "booking-1", gomock.Any())
		dispatcher.EXPECT().Publish(gomock.Any(), events.TopicBookingReminder, "booking-3", gomock.Any())

		worker.NewReminder(repo, dispatcher, cfg, otelMocks.NewOtel()).Run(cancelledContext())
	})

	t.Run("a failed lookup skips the sweep", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := bookingMocks.NewMockBooking(ctrl)
		dispatcher := eventsMocks.NewMockDispatcher(ctrl)

		repo.EXPECT().FindActiveByDate(gomock.Any(), gomock.Any(), constant.Empty).Return(nil, errors.New("db down"))

		worker.NewReminder(repo, dispatcher, cfg, otelMocks.NewOtel()).Run(cancelledContext())
	})
}
