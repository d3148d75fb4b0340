package model

import (
	"time"

	"garage/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                 = "id"
	FieldCustomerID         = "customer_id"
	FieldVehicleID          = "vehicle_id"
	FieldServiceID          = "service_id"
	FieldAssignedStaffID    = "assigned_staff_id"
	FieldBookingDate        = "booking_date"
	FieldStartTime          = "start_time"
	FieldEndTime            = "end_time"
	FieldStatus             = "status"
	FieldTotalValue         = "total_value"
	FieldCancelledAt        = "cancelled_at"
	FieldCancellationReason = "cancellation_reason"
	FieldCancellationFee    = "cancellation_fee"
)

// Appointment lifecycle statuses. COMPLETED and CANCELLED are terminal.
const (
	StatusScheduled  = "SCHEDULED"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
	StatusCancelled  = "CANCELLED"
)

// transitions is the full legal status table. Anything absent is illegal.
var transitions = map[string][]string{
	StatusScheduled:  {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// CanTransition reports whether the lifecycle permits moving from one status
// to another.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}

	return false
}

// IsTerminal reports whether no transition leads out of the given status.
func IsTerminal(status string) bool {
	return len(transitions[status]) == 0
}

// IsValidStatus reports whether the given string is a known lifecycle status.
func IsValidStatus(status string) bool {
	_, ok := transitions[status]

	return ok
}

type Booking struct {
	ID                 string     `db:"id"`
	CustomerID         string     `db:"customer_id"`
	VehicleID          string     `db:"vehicle_id"`
	ServiceID          string     `db:"service_id"`
	AssignedStaffID    *string    `db:"assigned_staff_id"`
	BookingDate        time.Time  `db:"booking_date"`
	StartTime          time.Time  `db:"start_time"`
	EndTime            time.Time  `db:"end_time"`
	Status             string     `db:"status"`
	TotalValue         float64    `db:"total_value"`
	CancelledAt        *time.Time `db:"cancelled_at"`
	CancellationReason *string    `db:"cancellation_reason"`
	CancellationFee    *float64   `db:"cancellation_fee"`
	model.Metadata
}

// CancellationEvent is the derived read model over cancelled bookings used
// for the monthly surcharge count. Append-only, never mutated.
type CancellationEvent struct {
	BookingID  string    `db:"id"`
	CustomerID string    `db:"customer_id"`
	OccurredAt time.Time `db:"cancelled_at"`
	FeeCharged float64   `db:"cancellation_fee"`
}
