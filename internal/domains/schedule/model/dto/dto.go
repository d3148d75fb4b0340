package dto

import (
	"garage/internal/domains/schedule/model"
	"garage/internal/domains/schedule/slot"
	"garage/shared/failure"
	gModel "garage/shared/model"
	"garage/shared/timezone"
)

type UpsertBusinessHoursRequest struct {
	Weekday        int     `json:"weekday"         validate:"gte=0,lte=6"`
	Closed         bool    `json:"closed"`
	MorningOpen    *string `json:"morning_open"    validate:"omitempty"`
	MorningClose   *string `json:"morning_close"   validate:"omitempty"`
	AfternoonOpen  *string `json:"afternoon_open"  validate:"omitempty"`
	AfternoonClose *string `json:"afternoon_close" validate:"omitempty"`
}

// ToModel validates the window invariants: an open day needs at least one
// window, every window must have open < close, and the morning must end at
// or before the afternoon begins.
func (u *UpsertBusinessHoursRequest) ToModel(user string) (model.BusinessHours, error) {
	hours := model.BusinessHours{
		Weekday:        u.Weekday,
		Closed:         u.Closed,
		MorningOpen:    u.MorningOpen,
		MorningClose:   u.MorningClose,
		AfternoonOpen:  u.AfternoonOpen,
		AfternoonClose: u.AfternoonClose,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if u.Closed {
		return hours, nil
	}

	if !hours.HasMorning() && !hours.HasAfternoon() {
		return model.BusinessHours{}, failure.BadRequestFromString("an open day needs at least one opening window") // nolint:wrapcheck
	}

	var morningClose, afternoonOpen int

	if hours.HasMorning() {
		open, err := slot.ParseClock(*u.MorningOpen)
		if err != nil {
			return model.BusinessHours{}, failure.BadRequestFromString("invalid morning_open clock value") // nolint:wrapcheck
		}

		morningClose, err = slot.ParseClock(*u.MorningClose)
		if err != nil {
			return model.BusinessHours{}, failure.BadRequestFromString("invalid morning_close clock value") // nolint:wrapcheck
		}

		if open >= morningClose {
			return model.BusinessHours{}, failure.BadRequestFromString("morning window must open before it closes") // nolint:wrapcheck
		}
	}

	if hours.HasAfternoon() {
		var err error

		afternoonOpen, err = slot.ParseClock(*u.AfternoonOpen)
		if err != nil {
			return model.BusinessHours{}, failure.BadRequestFromString("invalid afternoon_open clock value") // nolint:wrapcheck
		}

		closing, err := slot.ParseClock(*u.AfternoonClose)
		if err != nil {
			return model.BusinessHours{}, failure.BadRequestFromString("invalid afternoon_close clock value") // nolint:wrapcheck
		}

		if afternoonOpen >= closing {
			return model.BusinessHours{}, failure.BadRequestFromString("afternoon window must open before it closes") // nolint:wrapcheck
		}
	}

	if hours.HasMorning() && hours.HasAfternoon() && morningClose > afternoonOpen {
		return model.BusinessHours{}, failure.BadRequestFromString("morning window must end before the afternoon window begins") // nolint:wrapcheck
	}

	return hours, nil
}

type BusinessHoursResponse struct {
	Weekday        int     `json:"weekday"`
	Closed         bool    `json:"closed"`
	MorningOpen    *string `json:"morning_open,omitempty"`
	MorningClose   *string `json:"morning_close,omitempty"`
	AfternoonOpen  *string `json:"afternoon_open,omitempty"`
	AfternoonClose *string `json:"afternoon_close,omitempty"`
}

func (r *BusinessHoursResponse) FromModel(model model.BusinessHours) {
	r.Weekday = model.Weekday
	r.Closed = model.Closed
	r.MorningOpen = model.MorningOpen
	r.MorningClose = model.MorningClose
	r.AfternoonOpen = model.AfternoonOpen
	r.AfternoonClose = model.AfternoonClose
}

type GetBusinessHoursResponse struct {
	Days []BusinessHoursResponse `json:"days"`
}

func (r *GetBusinessHoursResponse) FromModels(models []model.BusinessHours) {
	r.Days = make([]BusinessHoursResponse, len(models))
	for i, mod := range models {
		r.Days[i].FromModel(mod)
	}
}

type AvailabilityResponse struct {
	Date      string   `json:"date"`
	ServiceID string   `json:"service_id"`
	Slots     []string `json:"slots"`
}
