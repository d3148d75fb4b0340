package dto

import (
	"garage/internal/domains/history/model"
	"garage/shared/constant"
	"garage/shared/timezone"
)

type HistoryEntryResponse struct {
	ID         string `json:"id"`
	BookingID  string `json:"booking_id"`
	ActorID    string `json:"actor_id"`
	Action     string `json:"action"`
	Detail     string `json:"detail"`
	OccurredAt string `json:"occurred_at"`
}

func (r *HistoryEntryResponse) FromModel(model model.HistoryEntry) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.ActorID = model.ActorID
	r.Action = model.Action
	r.Detail = model.Detail
	r.OccurredAt = timezone.Format(model.OccurredAt, constant.DateFormat)
}

type GetHistoryResponse struct {
	Entries []HistoryEntryResponse `json:"entries"`
}

func (r *GetHistoryResponse) FromModels(models []model.HistoryEntry) {
	r.Entries = make([]HistoryEntryResponse, len(models))
	for i, mod := range models {
		r.Entries[i].FromModel(mod)
	}
}
