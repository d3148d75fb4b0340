package dto

import (
	"github.com/google/uuid"

	"garage/internal/domains/catalog/model"
	"garage/shared"
	gDto "garage/shared/dto"
	gModel "garage/shared/model"
	"garage/shared/timezone"
)

type CreateServiceRequest struct {
	Name            string  `json:"name"             validate:"required,max=100"`
	Description     string  `json:"description"      validate:"omitempty,max=500"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,gte=15,lte=480"`
	Price           float64 `json:"price"            validate:"gte=0"`
	Active          *bool   `json:"active"           validate:"omitempty"`
}

func (c *CreateServiceRequest) ToModel(user string) model.Service {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Service{
		ID:              uuid.NewString(),
		Name:            c.Name,
		Description:     c.Description,
		DurationMinutes: c.DurationMinutes,
		Price:           c.Price,
		Active:          active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateServiceRequest struct {
	Name            string   `db:"name"             json:"name"             validate:"omitempty,max=100"`
	Description     string   `db:"description"      json:"description"      validate:"omitempty,max=500"`
	DurationMinutes int      `db:"duration_minutes" json:"duration_minutes" validate:"omitempty,gte=15,lte=480"`
	Price           *float64 `db:"price"            json:"price"            validate:"omitempty,gte=0"`
	Active          *bool    `db:"active"           json:"active"           validate:"omitempty"`
}

type ServiceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
	Active          bool    `json:"active"`
	gDto.Metadata
}

func (r *ServiceResponse) FromModel(model model.Service) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.DurationMinutes = model.DurationMinutes
	r.Price = model.Price
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetServicesResponse struct {
	Services  []ServiceResponse `json:"services"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetServicesResponse) FromModels(models []model.Service, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Services = make([]ServiceResponse, len(models))
	for i, mod := range models {
		r.Services[i].FromModel(mod)
	}
}
