package model

import (
	"garage/shared/model"
)

const (
	TableName  = "business_hours"
	EntityName = "business_hours"

	FieldWeekday        = "weekday"
	FieldClosed         = "closed"
	FieldMorningOpen    = "morning_open"
	FieldMorningClose   = "morning_close"
	FieldAfternoonOpen  = "afternoon_open"
	FieldAfternoonClose = "afternoon_close"
)

// BusinessHours holds the configured opening windows for one weekday
// (0 = Sunday). A day can carry a morning window, an afternoon window, or
// both; a closed day carries neither. Clock values are "HH:MM" strings.
type BusinessHours struct {
	Weekday        int     `db:"weekday"`
	Closed         bool    `db:"closed"`
	MorningOpen    *string `db:"morning_open"`
	MorningClose   *string `db:"morning_close"`
	AfternoonOpen  *string `db:"afternoon_open"`
	AfternoonClose *string `db:"afternoon_close"`
	model.Metadata
}

// HasMorning reports whether a morning window is configured.
func (b *BusinessHours) HasMorning() bool {
	return b.MorningOpen != nil && b.MorningClose != nil
}

// HasAfternoon reports whether an afternoon window is configured.
func (b *BusinessHours) HasAfternoon() bool {
	return b.AfternoonOpen != nil && b.AfternoonClose != nil
}
