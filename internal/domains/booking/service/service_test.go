package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"garage/config"
	otelMocks "garage/infras/otel/mocks"
	bookingMocks "garage/internal/domains/booking/mocks"
	"garage/internal/domains/booking/model"
	"garage/internal/domains/booking/model/dto"
	"garage/internal/domains/booking/service"
	catalogMocks "garage/internal/domains/catalog/mocks"
	cModel "garage/internal/domains/catalog/model"
	historyMocks "garage/internal/domains/history/mocks"
	hModel "garage/internal/domains/history/model"
	scheduleMocks "garage/internal/domains/schedule/mocks"
	"garage/internal/events"
	eventsMocks "garage/internal/events/mocks"
	cacheMocks "garage/shared/cache/mocks"
	"garage/shared/constant"
	"garage/shared/failure"
	"garage/shared/timezone"
)

type bookingFixture struct {
	repo        *bookingMocks.MockBooking
	historyRepo *historyMocks.MockHistory
	catalogRepo *catalogMocks.MockService
	schedule    *scheduleMocks.MockSchedule
	dispatcher  *eventsMocks.MockDispatcher
	cache       *cacheMocks.MockRedisCache
	service     service.Booking
}

func newBookingFixture(ctrl *gomock.Controller) *bookingFixture {
	cfg := &config.Config{}
	cfg.Cache.TTL = 300
	cfg.Scheduling.BufferMinutes = 15
	cfg.Scheduling.Cancellation.GraceHours = 24
	cfg.Scheduling.Cancellation.MidTierHours = 6
	cfg.Scheduling.Cancellation.MidTierRate = 0.20
	cfg.Scheduling.Cancellation.LateRate = 0.50
	cfg.Scheduling.Cancellation.SurchargeRate = 0.10
	cfg.Scheduling.Cancellation.MonthlyThreshold = 3

	f := &bookingFixture{
		repo:        bookingMocks.NewMockBooking(ctrl),
		historyRepo: historyMocks.NewMockHistory(ctrl),
		catalogRepo: catalogMocks.NewMockService(ctrl),
		schedule:    scheduleMocks.NewMockSchedule(ctrl),
		dispatcher:  eventsMocks.NewMockDispatcher(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
	}

	f.service = service.New(
		f.repo, f.historyRepo, f.catalogRepo, f.schedule, f.dispatcher,
		cfg, f.cache, otelMocks.NewOtel(),
	)

	return f
}

// expectCacheFlush arms the four invalidation calls a successful write fires
// asynchronously and returns a wait func the test must call before the mock
// controller is torn down.
func (f *bookingFixture) expectCacheFlush(t *testing.T) func() {
	t.Helper()

	flushed := make(chan struct{}, 4)
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, string) error {
		flushed <- struct{}{}

		return nil
	}).Times(4)

	return func() {
		t.Helper()

		for i := 0; i < 4; i++ {
			select {
			case <-flushed:
			case <-time.After(time.Second):
				t.Fatal("cache invalidation did not run")
			}
		}
	}
}

func (f *bookingFixture) expectPublish(t *testing.T, topic string) func() {
	t.Helper()

	published := make(chan struct{}, 1)
	f.dispatcher.EXPECT().Publish(gomock.Any(), topic, gomock.Any(), gomock.Any()).Do(
		func(context.Context, string, string, any) {
			published <- struct{}{}
		})

	return func() {
		t.Helper()

		select {
		case <-published:
		case <-time.After(time.Second):
			t.Fatalf("no %s event published", topic)
		}
	}
}

func userContext(id string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, id)
}

func activeCatalogService() cModel.Service {
	return cModel.Service{
		ID:              "service-1",
		Name:            "Full Service",
		DurationMinutes: 60,
		Price:           100,
		Active:          true,
	}
}

func scheduledBooking(start time.Time) model.Booking {
	return model.Booking{
		ID:          "booking-1",
		CustomerID:  "customer-1",
		VehicleID:   "vehicle-1",
		ServiceID:   "service-1",
		BookingDate: dto.Midnight(start),
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
		Status:      model.StatusScheduled,
		TotalValue:  100,
	}
}

func TestBookingCreate(t *testing.T) {
	ctx := userContext("user-1")
	date := timezone.Now().AddDate(0, 0, 7)
	req := dto.CreateBookingRequest{
		CustomerID:  "customer-1",
		VehicleID:   "vehicle-1",
		ServiceID:   "service-1",
		BookingDate: date.Format(constant.DateOnlyFormat),
		StartTime:   "10:00",
	}

	t.Run("books the slot and freezes the catalog price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newBookingFixture(ctrl)

		f.catalogRepo.EXPECT().Get(ctx, gomock.Any()).Return(activeCatalogService(), nil)
		f.schedule.EXPECT().EnsureBookable(ctx, gomock.Any(), 60, constant.Empty).Return(nil)
		f.repo.EXPECT().CreateWithHistory(ctx, gomock.Any(), gomock.Any(), 15).DoAndReturn(
			func(_ context.Context, booking model.Booking, entry hModel.HistoryEntry, _ int) error {
				assert.Equal(t, model.StatusScheduled, booking.Status)
				assert.Equal(t, 100.0, booking.TotalValue)
				assert.Equal(t, booking.StartTime.Add(time.Hour), booking.EndTime)
				assert.Equal(t, hModel.ActionCreated, entry.Action)
				assert.Equal(t, booking.ID, entry.BookingID)

				return nil
			})

		waitFlush := f.expectCacheFlush(t)
		waitPublish := f.expectPublish(t, events.TopicBookingCreated)

		res, err := f.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusScheduled, res.Status)
		assert.Equal(t, "10:00", res.StartTime)
		assert.Equal(t, "11:00", res.EndTime)

		waitFlush()
		waitPublish()
	})

	t.Run("rejects an inactive service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newBookingFixture(ctrl)

		inactive := activeCatalogService()
		inactive.Active = false
		f.catalogRepo.EXPECT().Get(ctx, gomock.Any()).Return(inactive, nil)

		_, err := f.service.Create(ctx, req)

		assert.ErrorIs(t, err, failure.ErrServiceNotFound)
	})

	t.Run("rejects an unknown service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newBookingFixture(ctrl)

		f.catalogRepo.EXPECT().Get(ctx, gomock.Any()).Return(cModel.Service{}, nil)

		_, err := f.service.Create(ctx, req)

		assert.ErrorIs(t, err, failure.ErrServiceNotFound)
	})

	t.Run("rejects a malformed start time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newBookingFixture(ctrl)

		f.catalogRepo.EXPECT().Get(ctx, gomock.Any()).Return(activeCatalogService(), nil)

		bad := req
		bad.StartTime = "ten o'clock"

		_, err := f.service.Create(ctx, bad)

		assert.Error(t, err)
	})

	t.Run("propagates a slot conflict from availability", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newBookingFixture(ctrl)

		f.catalogRepo.EXPECT().Get(ctx, gomock.Any()).Return(activeCatalogService(), nil)
		f.schedule.EXPECT().EnsureBookable(ctx, gomock.Any(), 60, constant.Empty).Return(failure.ErrSlotConflict)

		_, err := f.service.Create(ctx, req)

		assert.ErrorIs(t, err, failure.ErrSlotConflict)
	})

	t.Run("propagates a conflict detected under the write lock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newBookingFixture(ctrl)

		f.catalogRepo.EXPECT().Get(ctx, gomock.Any()).Return(activeCatalogService(), nil)
		f.schedule.EXPECT().EnsureBookable(ctx, gomock.Any(), 60, constant.Empty).Return(nil)
		f.repo.EXPECT().CreateWithHistory(ctx, gomock.Any(), gomock.Any(), 15).Return(failure.ErrSlotConflict)

		_, err := f.service.Create(ctx, req)

		assert.ErrorIs(t, err, failure.ErrSlotConflict)
	})
}

func TestBookingChangeStatus(t *testing.T) {
	ctx := userContext("user-1")

	t.Run("rejects every transition out of a terminal status", func(t *testing.T) {
		targets := []string{
			model.StatusScheduled, model.StatusInProgress, model.StatusCompleted, model.StatusCancelled,
		}

		for _, terminal := range []string{model.StatusCompleted, model.StatusCancelled} {
			for _, target := range targets {
				ctrl := gomock.NewController(t)
				f := newBookingFixture(ctrl)

				booking := scheduledBooking(timezone.Now().Add(48 * time.Hour))
				booking.Status = terminal
				f.repo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)

				_, err := f.service.ChangeStatus(ctx, dto.ChangeStatusRequest{Status: target}, booking.ID)

				assert.ErrorIs(t, err, failure.ErrIllegalTransition, "%s -> %s", terminal, target)
			}
		}
	})

	t.Run("rejects skipping straight to completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newBookingFixture(ctrl)

		booking := scheduledBooking(timezone.Now().Add(48 * time.Hour))
		f.repo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)

		_, err := f.service.ChangeStatus(ctx, dto.ChangeStatusRequest{Status: model.StatusCompleted}, booking.ID)

		assert.ErrorIs(t, err, failure.ErrIllegalTransition)
	})

	t.Run("moves scheduled work in progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newBookingFixture(ctrl)

		booking := scheduledBooking(timezone.Now().Add(time.Hour))
		f.repo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)
		f.repo.EXPECT().UpdateWithHistory(ctx, gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, updated model.Booking, fields map[string]any, entry hModel.HistoryEntry) error {
				assert.Equal(t, model.StatusInProgress, updated.Status)
				assert.Equal(t, model.StatusInProgress, fields[model.FieldStatus])
				assert.Equal(t, hModel.ActionStatusChanged, entry.Action)

				return nil
			})

		waitFlush := f.expectCacheFlush(t)
		waitPublish := f.expectPublish(t, events.TopicBookingStatusChanged)

		res, err := f.service.ChangeStatus(ctx, dto.ChangeStatusRequest{Status: model.StatusInProgress}, booking.ID)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusInProgress, res.Status)

		waitFlush()
		waitPublish()
	})

	t.Run("cancelling stamps the fee and cancellation fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newBookingFixture(ctrl)

		// 48 hours of notice lands in the free tier, so only the monthly
		// surcharge can charge anything here.
		booking := scheduledBooking(timezone.Now().Add(48 * time.Hour))
		f.repo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)
		f.repo.EXPECT().FindCancellationsSince(ctx, booking.CustomerID, gomock.Any()).Return(
			[]model.CancellationEvent{
				{BookingID: "b-a"}, {BookingID: "b-b"}, {BookingID: "b-c"},
			}, nil)
		f.repo.EXPECT().UpdateWithHistory(ctx, gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, updated model.Booking, fields map[string]any, entry hModel.HistoryEntry) error {
				assert.Equal(t, model.StatusCancelled, updated.Status)
				assert.NotNil(t, updated.CancelledAt)
				assert.NotNil(t, updated.CancellationReason)
				assert.Equal(t, "changed my mind", *updated.CancellationReason)

				// Fourth cancellation this month: one step of surcharge on a
				// free tier.
				assert.NotNil(t, updated.CancellationFee)
				assert.Equal(t, 10.0, *updated.CancellationFee)
				assert.Equal(t, 10.0, fields[model.FieldCancellationFee])

				assert.Equal(t, hModel.ActionCancelled, entry.Action)
				assert.Contains(t, entry.Detail, "changed my mind")

				return nil
			})

		waitFlush := f.expectCacheFlush(t)
		waitPublish := f.expectPublish(t, events.TopicBookingCancelled)

		res, err := f.service.ChangeStatus(ctx, dto.ChangeStatusRequest{
			Status: model.StatusCancelled,
			Reason: "changed my mind",
		}, booking.ID)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusCancelled, res.Status)
		assert.NotNil(t, res.CancelledAt)

		waitFlush()
		waitPublish()
	})

	t.Run("cancelling in-progress work is allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newBookingFixture(ctrl)

		booking := scheduledBooking(timezone.Now().Add(-time.Hour))
		booking.Status = model.StatusInProgress
		f.repo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)
		f.repo.EXPECT().FindCancellationsSince(ctx, booking.CustomerID, gomock.Any()).Return(nil, nil)
		f.repo.EXPECT().UpdateWithHistory(ctx, gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, updated model.Booking, _ map[string]any, _ hModel.HistoryEntry) error {
				// No notice at all: late tier, half the total.
				assert.Equal(t, 50.0, *updated.CancellationFee)

				return nil
			})

		waitFlush := f.expectCacheFlush(t)
		waitPublish := f.expectPublish(t, events.TopicBookingCancelled)

		_, err := f.service.ChangeStatus(ctx, dto.ChangeStatusRequest{Status: model.StatusCancelled}, booking.ID)

		assert.NoError(t, err)

		waitFlush()
		waitPublish()
	})

	t.Run("unknown booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newBookingFixture(ctrl)

		f.repo.EXPECT().FindByID(ctx, "missing").Return(model.Booking{}, nil)

		_, err := f.service.ChangeStatus(ctx, dto.ChangeStatusRequest{Status: model.StatusCancelled}, "missing")

		assert.Error(t, err)
	})
}

func TestBookingUpdate(t *testing.T) {
	ctx := userContext("user-1")

	t.Run("empty request is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newBookingFixture(ctrl)

		err := f.service.Update(ctx, dto.UpdateBookingRequest{}, "booking-1")

		assert.Error(t, err)
	})

	t.Run("terminal bookings are immutable", func(t *testing.T) {
		for _, terminal := range []string{model.StatusCompleted, model.StatusCancelled} {
			ctrl := gomock.NewController(t)
			f := newBookingFixture(ctrl)

			booking := scheduledBooking(timezone.Now().Add(48 * time.Hour))
			booking.Status = terminal
			f.repo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)

			err := f.service.Update(ctx, dto.UpdateBookingRequest{VehicleID: "vehicle-2"}, booking.ID)

			assert.ErrorIs(t, err, failure.ErrIllegalTransition, terminal)
		}
	})

	t.Run("detail edit records an audit entry without touching the slot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newBookingFixture(ctrl)

		booking := scheduledBooking(timezone.Now().Add(48 * time.Hour))
		f.repo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)
		f.repo.EXPECT().UpdateWithHistory(ctx, gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ model.Booking, fields map[string]any, entry hModel.HistoryEntry) error {
				assert.Equal(t, "vehicle-2", fields[model.FieldVehicleID])
				assert.NotContains(t, fields, model.FieldStartTime)
				assert.Equal(t, hModel.ActionEdited, entry.Action)

				return nil
			})

		waitFlush := f.expectCacheFlush(t)

		err := f.service.Update(ctx, dto.UpdateBookingRequest{VehicleID: "vehicle-2"}, booking.ID)

		assert.NoError(t, err)

		waitFlush()
	})

	t.Run("moving the slot revalidates availability excluding itself", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newBookingFixture(ctrl)

		booking := scheduledBooking(timezone.Now().Add(48 * time.Hour))
		newDate := timezone.Now().AddDate(0, 0, 10)

		f.repo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)
		f.schedule.EXPECT().EnsureBookable(ctx, gomock.Any(), 60, booking.ID).Return(nil)
		f.repo.EXPECT().RescheduleWithHistory(ctx, gomock.Any(), gomock.Any(), gomock.Any(), 15).DoAndReturn(
			func(_ context.Context, moved model.Booking, fields map[string]any, entry hModel.HistoryEntry, _ int) error {
				assert.Equal(t, "14:00", moved.StartTime.Format(constant.TimeOfDayFormat))
				assert.Equal(t, "15:00", moved.EndTime.Format(constant.TimeOfDayFormat))
				assert.Contains(t, fields, model.FieldBookingDate)
				assert.Equal(t, hModel.ActionEdited, entry.Action)
				assert.Contains(t, entry.Detail, "rescheduled")

				return nil
			})

		waitFlush := f.expectCacheFlush(t)
		waitPublish := f.expectPublish(t, events.TopicBookingRescheduled)

		err := f.service.Update(ctx, dto.UpdateBookingRequest{
			BookingDate: newDate.Format(constant.DateOnlyFormat),
			StartTime:   "14:00",
		}, booking.ID)

		assert.NoError(t, err)

		waitFlush()
		waitPublish()
	})

	t.Run("changing only the time keeps the booking's date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newBookingFixture(ctrl)

		booking := scheduledBooking(timezone.Now().Add(48 * time.Hour))
		f.repo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)
		f.schedule.EXPECT().EnsureBookable(ctx, gomock.Any(), 60, booking.ID).Return(nil)
		f.repo.EXPECT().RescheduleWithHistory(ctx, gomock.Any(), gomock.Any(), gomock.Any(), 15).DoAndReturn(
			func(_ context.Context, moved model.Booking, _ map[string]any, _ hModel.HistoryEntry, _ int) error {
				assert.Equal(t, booking.BookingDate, moved.BookingDate)
				assert.Equal(t, "09:30", moved.StartTime.Format(constant.TimeOfDayFormat))

				return nil
			})

		waitFlush := f.expectCacheFlush(t)
		waitPublish := f.expectPublish(t, events.TopicBookingRescheduled)

		err := f.service.Update(ctx, dto.UpdateBookingRequest{StartTime: "09:30"}, booking.ID)

		assert.NoError(t, err)

		waitFlush()
		waitPublish()
	})

	t.Run("slot conflict blocks the move", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newBookingFixture(ctrl)

		booking := scheduledBooking(timezone.Now().Add(48 * time.Hour))
		f.repo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)
		f.schedule.EXPECT().EnsureBookable(ctx, gomock.Any(), 60, booking.ID).Return(failure.ErrSlotConflict)

		err := f.service.Update(ctx, dto.UpdateBookingRequest{StartTime: "09:30"}, booking.ID)

		assert.ErrorIs(t, err, failure.ErrSlotConflict)
	})
}

func TestBookingSimulateCancellationFee(t *testing.T) {
	ctx := userContext("user-1")

	t.Run("quotes without changing anything", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newBookingFixture(ctrl)

		asOf := timezone.Now().Add(time.Hour)
		booking := scheduledBooking(asOf.Add(10 * time.Hour))

		f.repo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)
		f.repo.EXPECT().FindCancellationsSince(ctx, booking.CustomerID, service.StartOfMonth(asOf)).Return(nil, nil)

		res, err := f.service.SimulateCancellationFee(ctx, booking.ID, asOf.Format(time.RFC3339))

		assert.NoError(t, err)
		assert.Equal(t, booking.ID, res.BookingID)
		assert.Equal(t, 100.0, res.TotalValue)
		assert.Equal(t, 20.0, res.Fee)
		assert.InDelta(t, 10.0, res.HoursBefore, 0.001)
	})

	t.Run("already cancelled bookings cannot be quoted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newBookingFixture(ctrl)

		booking := scheduledBooking(timezone.Now().Add(48 * time.Hour))
		booking.Status = model.StatusCancelled
		f.repo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)

		_, err := f.service.SimulateCancellationFee(ctx, booking.ID, constant.Empty)

		assert.Error(t, err)
	})

	t.Run("malformed as_of is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newBookingFixture(ctrl)

		booking := scheduledBooking(timezone.Now().Add(48 * time.Hour))
		f.repo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)

		_, err := f.service.SimulateCancellationFee(ctx, booking.ID, "next tuesday")

		assert.Error(t, err)
	})
}

func TestBookingHistory(t *testing.T) {
	ctx := userContext("user-1")

	t.Run("returns the audit trail oldest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newBookingFixture(ctrl)

		booking := scheduledBooking(timezone.Now().Add(48 * time.Hour))
		f.repo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)
		f.historyRepo.EXPECT().ListByBooking(ctx, booking.ID).Return([]hModel.HistoryEntry{
			{ID: "h-1", BookingID: booking.ID, Action: hModel.ActionCreated},
			{ID: "h-2", BookingID: booking.ID, Action: hModel.ActionStatusChanged},
		}, nil)

		res, err := f.service.History(ctx, booking.ID)

		assert.NoError(t, err)
		assert.Len(t, res.Entries, 2)
		assert.Equal(t, hModel.ActionCreated, res.Entries[0].Action)
	})

	t.Run("unknown booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newBookingFixture(ctrl)

		f.repo.EXPECT().FindByID(ctx, "missing").Return(model.Booking{}, nil)

		_, err := f.service.History(ctx, "missing")

		assert.Error(t, err)
	})
}

func TestBookingGet(t *testing.T) {
	ctx := userContext("user-1")

	t.Run("cache miss falls through to the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newBookingFixture(ctrl)

		booking := scheduledBooking(timezone.Now().Add(48 * time.Hour))
		f.cache.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)

		saved := make(chan struct{}, 1)
		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 300).DoAndReturn(
			func(context.Context, string, any, int) error {
				saved <- struct{}{}

				return nil
			})

		res, err := f.service.Get(ctx, booking.ID)

		assert.NoError(t, err)
		assert.Equal(t, booking.ID, res.ID)

		select {
		case <-saved:
		case <-time.After(time.Second):
			t.Fatal("booking was not cached")
		}
	})

	t.Run("unknown booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newBookingFixture(ctrl)

		f.cache.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().FindByID(ctx, "missing").Return(model.Booking{}, nil)

		_, err := f.service.Get(ctx, "missing")

		assert.Error(t, err)
	})
}

func TestBookingDelete(t *testing.T) {
	ctx := userContext("admin-1")

	t.Run("removes the booking and flushes caches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newBookingFixture(ctrl)

		booking := scheduledBooking(timezone.Now().Add(48 * time.Hour))
		f.repo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)
		f.repo.EXPECT().Delete(ctx, gomock.Any()).Return(nil)

		waitFlush := f.expectCacheFlush(t)

		err := f.service.Delete(ctx, booking.ID)

		assert.NoError(t, err)

		waitFlush()
	})

	t.Run("unknown booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newBookingFixture(ctrl)

		f.repo.EXPECT().FindByID(ctx, "missing").Return(model.Booking{}, nil)

		err := f.service.Delete(ctx, "missing")

		assert.Error(t, err)
	})
}
