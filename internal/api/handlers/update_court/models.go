package update_court

import (
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/courts/models"
)

// UpdateCourtRequest HTTP request model, все поля опциональны
type UpdateCourtRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	HourlyRate  *float64 `json:"hourly_rate,omitempty"`
	IsActive    *bool    `json:"is_active,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateCourtRequest) ToServiceRequest(actor domain.Actor) *models.UpdateCourtRequest {
	return &models.UpdateCourtRequest{
		Actor:       actor,
		Name:        r.Name,
		Description: r.Description,
		HourlyRate:  r.HourlyRate,
		IsActive:    r.IsActive,
	}
}
