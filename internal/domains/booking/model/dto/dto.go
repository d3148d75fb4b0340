package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"garage/internal/domains/booking/model"
	"garage/internal/domains/schedule/slot"
	"garage/shared"
	"garage/shared/constant"
	gDto "garage/shared/dto"
	"garage/shared/failure"
	gModel "garage/shared/model"
	"garage/shared/timezone"
)

type CreateBookingRequest struct {
	CustomerID      string `json:"customer_id"       validate:"required,max=100"`
	VehicleID       string `json:"vehicle_id"        validate:"required,max=100"`
	ServiceID       string `json:"service_id"        validate:"required"`
	AssignedStaffID string `json:"assigned_staff_id" validate:"omitempty,max=100"`
	BookingDate     string `json:"booking_date"      validate:"required"`
	StartTime       string `json:"start_time"        validate:"required"`
}

// ToModel builds a SCHEDULED booking. The end time is derived from the
// service duration, never supplied by the caller, and the total value is
// frozen at the service's current price.
func (c *CreateBookingRequest) ToModel(user string, durationMinutes int, price float64) (model.Booking, error) {
	start, err := CombineDateClock(c.BookingDate, c.StartTime)
	if err != nil {
		return model.Booking{}, err
	}

	var staffID *string
	if c.AssignedStaffID != "" {
		staffID = &c.AssignedStaffID
	}

	return model.Booking{
		ID:              uuid.NewString(),
		CustomerID:      c.CustomerID,
		VehicleID:       c.VehicleID,
		ServiceID:       c.ServiceID,
		AssignedStaffID: staffID,
		BookingDate:     Midnight(start),
		StartTime:       start,
		EndTime:         start.Add(time.Duration(durationMinutes) * time.Minute),
		Status:          model.StatusScheduled,
		TotalValue:      shared.RoundMoney(price),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateBookingRequest struct {
	VehicleID       string `db:"vehicle_id"        json:"vehicle_id"        validate:"omitempty,max=100"`
	AssignedStaffID string `db:"assigned_staff_id" json:"assigned_staff_id" validate:"omitempty,max=100"`
	BookingDate     string `json:"booking_date"    validate:"omitempty"`
	StartTime       string `json:"start_time"      validate:"omitempty"`
}

// MovesSlot reports whether the update relocates the appointment in time.
func (u *UpdateBookingRequest) MovesSlot() bool {
	return u.BookingDate != "" || u.StartTime != ""
}

type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=SCHEDULED IN_PROGRESS COMPLETED CANCELLED"`
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

type BookingResponse struct {
	ID                 string   `json:"id"`
	CustomerID         string   `json:"customer_id"`
	VehicleID          string   `json:"vehicle_id"`
	ServiceID          string   `json:"service_id"`
	AssignedStaffID    *string  `json:"assigned_staff_id,omitempty"`
	BookingDate        string   `json:"booking_date"`
	StartTime          string   `json:"start_time"`
	EndTime            string   `json:"end_time"`
	Status             string   `json:"status"`
	TotalValue         float64  `json:"total_value"`
	CancelledAt        *string  `json:"cancelled_at,omitempty"`
	CancellationReason *string  `json:"cancellation_reason,omitempty"`
	CancellationFee    *float64 `json:"cancellation_fee,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.CustomerID = model.CustomerID
	r.VehicleID = model.VehicleID
	r.ServiceID = model.ServiceID
	r.AssignedStaffID = model.AssignedStaffID
	r.BookingDate = model.BookingDate.Format(constant.DateOnlyFormat)
	r.StartTime = model.StartTime.Format(constant.TimeOfDayFormat)
	r.EndTime = model.EndTime.Format(constant.TimeOfDayFormat)
	r.Status = model.Status
	r.TotalValue = model.TotalValue
	r.CancellationReason = model.CancellationReason
	r.CancellationFee = model.CancellationFee

	if model.CancelledAt != nil {
		cancelledAt := model.CancelledAt.Format(time.RFC3339)
		r.CancelledAt = &cancelledAt
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type CancellationFeeResponse struct {
	BookingID   string  `json:"booking_id"`
	AsOf        string  `json:"as_of"`
	TotalValue  float64 `json:"total_value"`
	Fee         float64 `json:"fee"`
	HoursBefore float64 `json:"hours_before"`
}

// CombineDateClock parses a "2006-01-02" date and an "HH:MM" clock into a
// single instant in the application timezone.
func CombineDateClock(date, clock string) (time.Time, error) {
	day, err := time.ParseInLocation(constant.DateOnlyFormat, date, timezone.GetLocation())
	if err != nil {
		return time.Time{}, failure.BadRequestFromString(fmt.Sprintf("invalid booking date %q, expected YYYY-MM-DD", date))
	}

	minutes, err := slot.ParseClock(clock)
	if err != nil {
		return time.Time{}, failure.BadRequestFromString(fmt.Sprintf("invalid start time %q, expected HH:MM", clock))
	}

	return day.Add(time.Duration(minutes) * time.Minute), nil
}

// Midnight returns the start of t's calendar day in t's own location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
