// Package worker runs the background reminder sweep. Each tick it looks up
// tomorrow's still-scheduled appointments and publishes one reminder event
// per booking.
package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"garage/config"
	"garage/infras/otel"
	"garage/internal/domains/booking/model"
	"garage/internal/domains/booking/repository"
	"garage/internal/events"
	"garage/shared/constant"
	"garage/shared/timezone"
)

type Reminder struct {
	repo       repository.Booking
	dispatcher events.Dispatcher
	otel       otel.Otel
	interval   time.Duration
}

func NewReminder(repo repository.Booking, dispatcher events.Dispatcher, cfg *config.Config, otel otel.Otel) *Reminder {
	return &Reminder{
		repo:       repo,
		dispatcher: dispatcher,
		otel:       otel,
		interval:   time.Duration(cfg.Worker.Reminder.IntervalMinutes) * time.Minute,
	}
}

// Run sweeps on a fixed interval until the context is cancelled. The first
// sweep runs immediately.
func (w *Reminder) Run(ctx context.Context) {
	log.Info().Dur("interval", w.interval).Msg("reminder worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("reminder worker stopped")

			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *Reminder) sweep(ctx context.Context) {
	ctx, scope := w.otel.NewScope(ctx, constant.OtelWorkerScopeName, constant.OtelWorkerScopeName+".ReminderSweep")
	defer scope.End()

	now := timezone.Now()
	tomorrow := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)

	bookings, err := w.repo.FindActiveByDate(ctx, tomorrow, constant.Empty)
	if err != nil {
		log.Error().Err(err).Msg("reminder sweep failed to load bookings")
		scope.TraceError(err)

		return
	}

	sent := 0

	for _, booking := range bookings {
		if booking.Status != model.StatusScheduled {
			continue
		}

		w.dispatcher.Publish(ctx, events.TopicBookingReminder, booking.ID, events.BookingEvent{
			BookingID:   booking.ID,
			CustomerID:  booking.CustomerID,
			ServiceID:   booking.ServiceID,
			BookingDate: booking.BookingDate.Format(constant.DateOnlyFormat),
			StartTime:   booking.StartTime.Format(constant.TimeOfDayFormat),
			Status:      booking.Status,
			OccurredAt:  now,
		})

		sent++
	}

	log.Info().Int("reminders", sent).Str("date", tomorrow.Format(constant.DateOnlyFormat)).Msg("reminder sweep finished")
}
