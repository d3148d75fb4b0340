package model

import (
	"time"
)

const (
	TableName  = "booking_history"
	EntityName = "history"

	FieldID         = "id"
	FieldBookingID  = "booking_id"
	FieldActorID    = "actor_id"
	FieldAction     = "action"
	FieldDetail     = "detail"
	FieldOccurredAt = "occurred_at"
)

// Audit actions recorded per booking transition.
const (
	ActionCreated       = "CREATED"
	ActionEdited        = "EDITED"
	ActionStatusChanged = "STATUS_CHANGED"
	ActionCancelled     = "CANCELLED"
)

// HistoryEntry is one append-only audit record. Entries are written in the
// same transaction as the booking mutation they describe and are never
// updated or deleted.
type HistoryEntry struct {
	ID         string    `db:"id"`
	BookingID  string    `db:"booking_id"`
	ActorID    string    `db:"actor_id"`
	Action     string    `db:"action"`
	Detail     string    `db:"detail"`
	OccurredAt time.Time `db:"occurred_at"`
}
