package schedule

import (
	"net/http"

	"garage/infras/otel"
	"garage/internal/domains/schedule/model/dto"
	"garage/internal/domains/schedule/service"
	"garage/shared/constant"
	"garage/shared/failure"
	"garage/shared/validator"
	"garage/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Schedule
	otel    otel.Otel
}

func New(service service.Schedule, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/availability", handler.GetAvailability)

	router.Route("/business-hours", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBusinessHours)
		routerGroup.Put("/", handler.UpsertBusinessHours)
	})
}

// GetAvailability lists the bookable start times for a service on a date.
// @Summary Get available slots
// @Description List the open appointment start times for a service on a date, ascending.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param service_id query string true "Service ID"
// @Success 200 {object} response.Data[dto.AvailabilityResponse] "Available slots"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/availability [get]
func (handler *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	date := r.URL.Query().Get(constant.RequestParamDate)
	serviceID := r.URL.Query().Get(constant.RequestParamServiceID)

	if date == "" || serviceID == "" {
		response.WithError(w, failure.BadRequestFromString("date and service_id query parameters are required"))

		return
	}

	availability, err := handler.service.AvailableSlots(ctx, date, serviceID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Availability retrieved successfully")

	response.WithJSON(w, http.StatusOK, availability)
}

// GetBusinessHours returns the weekly opening configuration.
// @Summary Get business hours
// @Description Retrieve the configured opening windows for every weekday.
// @Tags Schedule
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetBusinessHoursResponse] "Business hours"
// @Failure 500 {object} response.Error
// @Router /v1/business-hours [get]
func (handler *Handler) GetBusinessHours(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBusinessHours")
	defer scope.End()

	hours, err := handler.service.GetWeek(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get business hours")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, hours)
}

// UpsertBusinessHours sets the opening windows for one weekday.
// @Summary Upsert business hours
// @Description Configure the opening windows for a weekday, replacing the existing configuration.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param request body dto.UpsertBusinessHoursRequest true "Upsert Business Hours Request"
// @Success 200 {object} response.Message "Business hours saved successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/business-hours [put]
// @Security BearerAuth
func (handler *Handler) UpsertBusinessHours(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpsertBusinessHours")
	defer scope.End()

	req := dto.UpsertBusinessHoursRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Upsert(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upsert business hours")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Business hours saved successfully")

	response.WithMessage(w, http.StatusOK, "Business hours saved successfully")
}
