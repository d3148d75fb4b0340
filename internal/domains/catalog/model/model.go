package model

import (
	"garage/shared/model"
)

const (
	TableName  = "services"
	EntityName = "service"

	FieldID              = "id"
	FieldName            = "name"
	FieldDescription     = "description"
	FieldDurationMinutes = "duration_minutes"
	FieldPrice           = "price"
	FieldActive          = "active"
)

// Duration bounds for a catalog service, in minutes.
const (
	MinDurationMinutes = 15
	MaxDurationMinutes = 480
)

type Service struct {
	ID              string  `db:"id"`
	Name            string  `db:"name"`
	Description     string  `db:"description"`
	DurationMinutes int     `db:"duration_minutes"`
	Price           float64 `db:"price"`
	Active          bool    `db:"active"`
	model.Metadata
}
