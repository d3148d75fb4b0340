package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"garage/config"
	"garage/infras/otel"
	bRepo "garage/internal/domains/booking/repository"
	cModel "garage/internal/domains/catalog/model"
	cRepo "garage/internal/domains/catalog/repository"
	"garage/internal/domains/schedule/model"
	"garage/internal/domains/schedule/model/dto"
	"garage/internal/domains/schedule/repository"
	"garage/internal/domains/schedule/slot"
	"garage/shared"
	"garage/shared/cache"
	"garage/shared/constant"
	gDto "garage/shared/dto"
	"garage/shared/failure"
	"garage/shared/timezone"
)

// CacheAvailability is the prefix for cached slot listings. Booking writers
// invalidate it whenever a slot is taken or released.
const CacheAvailability = "availability:slots"

type Schedule interface {
	Upsert(ctx context.Context, req dto.UpsertBusinessHoursRequest) error
	GetWeek(ctx context.Context) (dto.GetBusinessHoursResponse, error)
	AvailableSlots(ctx context.Context, date, serviceID string) (dto.AvailabilityResponse, error)
	EnsureBookable(ctx context.Context, start time.Time, durationMinutes int, excludeID string) error
}

type serviceImpl struct {
	repo        repository.BusinessHours
	bookingRepo bRepo.Booking
	catalogRepo cRepo.Service
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.BusinessHours,
	bookingRepo bRepo.Booking,
	catalogRepo cRepo.Service,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Schedule {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Upsert(ctx context.Context, req dto.UpsertBusinessHoursRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ScheduleUpsert")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	hours, err := req.ToModel(user)
	if err != nil {
		return err
	}

	if err = s.repo.Upsert(ctx, hours); err != nil {
		log.Error().Err(err).Msg("failed to upsert business hours")

		return fmt.Errorf("failed to upsert business hours: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, CacheAvailability)
	}()

	return nil
}

func (s *serviceImpl) GetWeek(ctx context.Context) (res dto.GetBusinessHoursResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ScheduleGetWeek")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{SortBy: model.FieldWeekday, SortDir: gDto.SortDirAsc}

	days, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get business hours")

		return res, fmt.Errorf("failed to get business hours: %w", err)
	}

	res.FromModels(days)

	return res, nil
}

// AvailableSlots lists the bookable start times for a service on a date,
// ascending. Starts come from the configured grid, shrunk by whatever the
// day's non-cancelled bookings plus the setup buffer already consume.
func (s *serviceImpl) AvailableSlots(ctx context.Context, date, serviceID string) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ScheduleAvailableSlots")
	defer scope.End()
	defer scope.TraceIfError(err)

	day, err := time.ParseInLocation(constant.DateOnlyFormat, date, timezone.GetLocation())
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", date)) // nolint:wrapcheck
	}

	now := timezone.Now()

	if err = s.checkDateWindow(day, now); err != nil {
		return res, err
	}

	service, err := s.activeService(ctx, serviceID)
	if err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(CacheAvailability, date, serviceID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for availability")

		return res, nil
	}

	starts, err := s.openStarts(ctx, day, now, service.DurationMinutes, constant.Empty)
	if err != nil {
		return res, err
	}

	res.Date = date
	res.ServiceID = serviceID
	res.Slots = make([]string, len(starts))

	for i, start := range starts {
		res.Slots[i] = slot.FormatClock(start)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save availability to cache")
		}
	}()

	return res, nil
}

// EnsureBookable verifies that a booking starting at start and running for
// durationMinutes lands on a valid grid slot inside the day's opening hours
// and clears every existing booking. excludeID skips the caller's own
// reservation when rescheduling. The storage layer re-checks conflicts under
// lock; this is the early, user-facing pass.
func (s *serviceImpl) EnsureBookable(ctx context.Context, start time.Time, durationMinutes int, excludeID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ScheduleEnsureBookable")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := timezone.Now()
	day := midnight(start)

	if err = s.checkDateWindow(day, now); err != nil {
		return err
	}

	starts, err := s.openStarts(ctx, day, now, durationMinutes, excludeID)
	if err != nil {
		return err
	}

	want := slot.MinuteOfDay(start)
	for _, candidate := range starts {
		if candidate == want {
			return nil
		}
	}

	return failure.ErrSlotConflict // nolint:wrapcheck
}

// openStarts computes the free grid starts for a day, given the service
// duration. Same-day requests additionally drop starts closer than the
// minimum lead time.
func (s *serviceImpl) openStarts(ctx context.Context, day, now time.Time, durationMinutes int, excludeID string) ([]int, error) {
	hours, found, err := s.repo.GetByWeekday(ctx, int(day.Weekday()))
	if err != nil {
		log.Error().Err(err).Msg("failed to get business hours")

		return nil, fmt.Errorf("failed to get business hours: %w", err)
	}

	if !found {
		return nil, failure.Configuration(fmt.Sprintf("business hours not configured for weekday %d", int(day.Weekday()))) // nolint:wrapcheck
	}

	if hours.Closed {
		return []int{}, nil
	}

	bookings, err := s.bookingRepo.FindActiveByDate(ctx, day, excludeID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for availability")

		return nil, fmt.Errorf("failed to get bookings for availability: %w", err)
	}

	busy := make([]slot.Interval, len(bookings))
	for i, booking := range bookings {
		busy[i] = slot.FromTimes(booking.StartTime, booking.EndTime)
	}

	minStart := -1
	if sameDay(day, now) {
		minStart = slot.MinuteOfDay(now) + s.cfg.Scheduling.MinLeadMinutes
	}

	starts := []int{}

	for _, window := range windows(hours) {
		for _, start := range slot.Grid(window.Start, window.End, s.cfg.Scheduling.SlotGranularityMinutes) {
			if start < minStart {
				continue
			}

			if !slot.Fits(start, durationMinutes, window.End) {
				continue
			}

			if slot.ConflictsAny(slot.NewInterval(start, durationMinutes), busy, s.cfg.Scheduling.BufferMinutes) {
				continue
			}

			starts = append(starts, start)
		}
	}

	return starts, nil
}

func (s *serviceImpl) checkDateWindow(day, now time.Time) error {
	today := midnight(now)

	if day.Before(today) {
		return failure.ErrInvalidDate // nolint:wrapcheck
	}

	if day.After(today.AddDate(0, 0, s.cfg.Scheduling.MaxLeadDays)) {
		return failure.ErrLeadTimeExceeded // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) activeService(ctx context.Context, serviceID string) (cModel.Service, error) {
	service, err := s.catalogRepo.Get(ctx, shared.FilterByID(serviceID, cModel.FieldID, cModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service for availability")

		return service, fmt.Errorf("failed to get service for availability: %w", err)
	}

	if service.ID == constant.Empty || !service.Active {
		return service, failure.ErrServiceNotFound // nolint:wrapcheck
	}

	return service, nil
}

// windows returns the day's opening windows as minute intervals, morning
// first. Configurations are validated on write, so parse errors here mean
// corrupted rows and surface as empty windows.
func windows(hours model.BusinessHours) []slot.Interval {
	out := []slot.Interval{}

	if hours.HasMorning() {
		if iv, ok := parseWindow(*hours.MorningOpen, *hours.MorningClose); ok {
			out = append(out, iv)
		}
	}

	if hours.HasAfternoon() {
		if iv, ok := parseWindow(*hours.AfternoonOpen, *hours.AfternoonClose); ok {
			out = append(out, iv)
		}
	}

	return out
}

func parseWindow(open, closing string) (slot.Interval, bool) {
	openMin, err := slot.ParseClock(open)
	if err != nil {
		log.Error().Err(err).Str("open", open).Msg("invalid business hours window")

		return slot.Interval{}, false
	}

	closeMin, err := slot.ParseClock(closing)
	if err != nil {
		log.Error().Err(err).Str("close", closing).Msg("invalid business hours window")

		return slot.Interval{}, false
	}

	return slot.Interval{Start: openMin, End: closeMin}, true
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(day, now time.Time) bool {
	return day.Year() == now.Year() && day.YearDay() == now.YearDay()
}
