package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"garage/config"
	"garage/infras/otel"
	"garage/internal/domains/booking/model"
	"garage/internal/domains/booking/model/dto"
	"garage/internal/domains/booking/repository"
	cModel "garage/internal/domains/catalog/model"
	cRepo "garage/internal/domains/catalog/repository"
	hModel "garage/internal/domains/history/model"
	hDto "garage/internal/domains/history/model/dto"
	hRepo "garage/internal/domains/history/repository"
	sService "garage/internal/domains/schedule/service"
	"garage/internal/events"
	"garage/shared"
	"garage/shared/cache"
	"garage/shared/constant"
	gDto "garage/shared/dto"
	"garage/shared/failure"
	"garage/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	ChangeStatus(ctx context.Context, req dto.ChangeStatusRequest, id string) (dto.BookingResponse, error)
	SimulateCancellationFee(ctx context.Context, id, asOf string) (dto.CancellationFeeResponse, error)
	History(ctx context.Context, id string) (hDto.GetHistoryResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo        repository.Booking
	historyRepo hRepo.History
	catalogRepo cRepo.Service
	schedule    sService.Schedule
	dispatcher  events.Dispatcher
	policy      CancellationPolicy
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Booking,
	historyRepo hRepo.History,
	catalogRepo cRepo.Service,
	schedule sService.Schedule,
	dispatcher events.Dispatcher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:        repo,
		historyRepo: historyRepo,
		catalogRepo: catalogRepo,
		schedule:    schedule,
		dispatcher:  dispatcher,
		policy:      PolicyFromConfig(cfg),
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// Create books a new appointment. The slot is validated against business
// hours and the day's existing bookings, the price is frozen from the
// service catalog, and the CREATED audit entry is written atomically with
// the booking itself.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BookingCreate")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	service, err := s.activeService(ctx, req.ServiceID)
	if err != nil {
		return res, err
	}

	booking, err := req.ToModel(user, service.DurationMinutes, service.Price)
	if err != nil {
		return res, err
	}

	if err = s.schedule.EnsureBookable(ctx, booking.StartTime, service.DurationMinutes, constant.Empty); err != nil {
		return res, err
	}

	entry := s.newEntry(booking.ID, user, hModel.ActionCreated,
		fmt.Sprintf("booked %s on %s at %s", service.Name, req.BookingDate, req.StartTime))

	if err = s.repo.CreateWithHistory(ctx, booking, entry, s.cfg.Scheduling.BufferMinutes); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, err
	}

	s.afterWrite(ctx, func(c context.Context) {
		s.dispatcher.Publish(c, events.TopicBookingCreated, booking.ID, s.newEvent(booking))
	})

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BookingGetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BookingCount")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BookingGet")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	booking, err := s.findBooking(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// Update edits a booking's details or moves it to another slot. Terminal
// bookings are immutable. Moving the slot re-runs the full availability
// validation, ignoring the booking's own current reservation.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BookingUpdate")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateBookingRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.findBooking(ctx, id)
	if err != nil {
		return err
	}

	if model.IsTerminal(booking.Status) {
		return failure.ErrIllegalTransition // nolint:wrapcheck
	}

	fields := map[string]any{
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}
	if req.VehicleID != constant.Empty {
		fields[model.FieldVehicleID] = req.VehicleID
	}

	if req.AssignedStaffID != constant.Empty {
		fields[model.FieldAssignedStaffID] = req.AssignedStaffID
	}

	if !req.MovesSlot() {
		entry := s.newEntry(id, user, hModel.ActionEdited, "booking details updated")

		if err = s.repo.UpdateWithHistory(ctx, booking, fields, entry); err != nil {
			log.Error().Err(err).Msg("failed to update booking")

			return err
		}

		s.afterWrite(ctx, nil)

		return nil
	}

	date := req.BookingDate
	if date == constant.Empty {
		date = booking.BookingDate.Format(constant.DateOnlyFormat)
	}

	clock := req.StartTime
	if clock == constant.Empty {
		clock = booking.StartTime.Format(constant.TimeOfDayFormat)
	}

	start, err := dto.CombineDateClock(date, clock)
	if err != nil {
		return err
	}

	duration := int(booking.EndTime.Sub(booking.StartTime).Minutes())

	if err = s.schedule.EnsureBookable(ctx, start, duration, id); err != nil {
		return err
	}

	moved := booking
	moved.BookingDate = dto.Midnight(start)
	moved.StartTime = start
	moved.EndTime = start.Add(time.Duration(duration) * time.Minute)

	fields[model.FieldBookingDate] = moved.BookingDate
	fields[model.FieldStartTime] = moved.StartTime
	fields[model.FieldEndTime] = moved.EndTime

	entry := s.newEntry(id, user, hModel.ActionEdited,
		fmt.Sprintf("rescheduled from %s %s to %s %s",
			booking.BookingDate.Format(constant.DateOnlyFormat), booking.StartTime.Format(constant.TimeOfDayFormat),
			date, clock))

	if err = s.repo.RescheduleWithHistory(ctx, moved, fields, entry, s.cfg.Scheduling.BufferMinutes); err != nil {
		log.Error().Err(err).Msg("failed to reschedule booking")

		return err
	}

	s.afterWrite(ctx, func(c context.Context) {
		s.dispatcher.Publish(c, events.TopicBookingRescheduled, id, s.newEvent(moved))
	})

	return nil
}

// ChangeStatus drives the appointment lifecycle. Illegal transitions are
// rejected against the status table. Cancelling additionally stamps the
// cancellation fields and charges the tiered fee, including the monthly
// repeat-cancellation surcharge.
func (s *serviceImpl) ChangeStatus(ctx context.Context, req dto.ChangeStatusRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BookingChangeStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.findBooking(ctx, id)
	if err != nil {
		return res, err
	}

	if !model.CanTransition(booking.Status, req.Status) {
		return res, failure.ErrIllegalTransition // nolint:wrapcheck
	}

	now := timezone.Now()
	fields := map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: user,
	}

	updated := booking
	updated.Status = req.Status

	action := hModel.ActionStatusChanged
	detail := fmt.Sprintf("%s -> %s", booking.Status, req.Status)
	topic := events.TopicBookingStatusChanged

	var payload any = events.StatusChangedEvent{
		BookingEvent:   s.newEvent(updated),
		PreviousStatus: booking.Status,
		Reason:         req.Reason,
	}

	if req.Status == model.StatusCancelled {
		fee, cancelErr := s.cancellationFee(ctx, booking, now)
		if cancelErr != nil {
			return res, cancelErr
		}

		updated.CancelledAt = &now
		updated.CancellationFee = &fee

		if req.Reason != constant.Empty {
			updated.CancellationReason = &req.Reason
			detail = fmt.Sprintf("%s (%s)", detail, req.Reason)
		}

		fields[model.FieldCancelledAt] = updated.CancelledAt
		fields[model.FieldCancellationReason] = updated.CancellationReason
		fields[model.FieldCancellationFee] = fee

		action = hModel.ActionCancelled
		topic = events.TopicBookingCancelled
		payload = events.CancelledEvent{
			BookingEvent: s.newEvent(updated),
			Reason:       req.Reason,
			Fee:          fee,
		}
	}

	entry := s.newEntry(id, user, action, detail)

	if err = s.repo.UpdateWithHistory(ctx, updated, fields, entry); err != nil {
		log.Error().Err(err).Msg("failed to change booking status")

		return res, err
	}

	s.afterWrite(ctx, func(c context.Context) {
		s.dispatcher.Publish(c, topic, id, payload)
	})

	res.FromModel(updated)

	return res, nil
}

// SimulateCancellationFee quotes the fee a cancellation would cost at the
// given instant without changing anything. asOf is optional RFC 3339 and
// defaults to now.
func (s *serviceImpl) SimulateCancellationFee(ctx context.Context, id, asOf string) (res dto.CancellationFeeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BookingSimulateCancellationFee")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.findBooking(ctx, id)
	if err != nil {
		return res, err
	}

	if booking.Status == model.StatusCancelled {
		return res, failure.BadRequestFromString("booking is already cancelled") // nolint:wrapcheck
	}

	at := timezone.Now()

	if asOf != constant.Empty {
		parsed, parseErr := time.Parse(time.RFC3339, asOf)
		if parseErr != nil {
			return res, failure.BadRequestFromString(fmt.Sprintf("invalid as_of value %q, expected RFC 3339", asOf)) // nolint:wrapcheck
		}

		at = timezone.ToAppTime(parsed)
	}

	fee, err := s.cancellationFee(ctx, booking, at)
	if err != nil {
		return res, err
	}

	res = dto.CancellationFeeResponse{
		BookingID:   booking.ID,
		AsOf:        at.Format(time.RFC3339),
		TotalValue:  booking.TotalValue,
		Fee:         fee,
		HoursBefore: booking.StartTime.Sub(at).Hours(),
	}

	return res, nil
}

func (s *serviceImpl) History(ctx context.Context, id string) (res hDto.GetHistoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BookingHistory")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.findBooking(ctx, id); err != nil {
		return res, err
	}

	entries, err := s.historyRepo.ListByBooking(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking history")

		return res, fmt.Errorf("failed to get booking history: %w", err)
	}

	res.FromModels(entries)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BookingDelete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.findBooking(ctx, id); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.afterWrite(ctx, nil)

	return nil
}

// cancellationFee computes the fee for cancelling at the given instant,
// counting this cancellation toward the customer's monthly total.
func (s *serviceImpl) cancellationFee(ctx context.Context, booking model.Booking, at time.Time) (float64, error) {
	since := StartOfMonth(at)

	history, err := s.repo.FindCancellationsSince(ctx, booking.CustomerID, since)
	if err != nil {
		log.Error().Err(err).Msg("failed to count monthly cancellations")

		return 0, fmt.Errorf("failed to count monthly cancellations: %w", err)
	}

	monthly := len(history) + 1

	return s.policy.ComputeCancellationFee(booking, at, monthly), nil
}

func (s *serviceImpl) findBooking(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) activeService(ctx context.Context, serviceID string) (cModel.Service, error) {
	service, err := s.catalogRepo.Get(ctx, shared.FilterByID(serviceID, cModel.FieldID, cModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service for booking")

		return service, fmt.Errorf("failed to get service for booking: %w", err)
	}

	if service.ID == constant.Empty || !service.Active {
		return service, failure.ErrServiceNotFound // nolint:wrapcheck
	}

	return service, nil
}

func (s *serviceImpl) newEntry(bookingID, user, action, detail string) hModel.HistoryEntry {
	return hModel.HistoryEntry{
		ID:         uuid.NewString(),
		BookingID:  bookingID,
		ActorID:    user,
		Action:     action,
		Detail:     detail,
		OccurredAt: timezone.Now(),
	}
}

func (s *serviceImpl) newEvent(booking model.Booking) events.BookingEvent {
	return events.BookingEvent{
		BookingID:   booking.ID,
		CustomerID:  booking.CustomerID,
		ServiceID:   booking.ServiceID,
		BookingDate: booking.BookingDate.Format(constant.DateOnlyFormat),
		StartTime:   booking.StartTime.Format(constant.TimeOfDayFormat),
		Status:      booking.Status,
		OccurredAt:  timezone.Now(),
	}
}

// afterWrite invalidates the booking and availability caches and runs the
// optional publish step, detached from the request context.
func (s *serviceImpl) afterWrite(ctx context.Context, publish func(c context.Context)) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetBooking)
		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, sService.CacheAvailability)

		if publish != nil {
			publish(c)
		}
	}()
}
