package create_court

import (
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/courts/models"
)

// CreateCourtRequest HTTP request model
type CreateCourtRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	HourlyRate  float64 `json:"hourly_rate"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateCourtRequest) ToServiceRequest(actor domain.Actor) *models.CreateCourtRequest {
	return &models.CreateCourtRequest{
		Actor:       actor,
		Name:        r.Name,
		Description: r.Description,
		HourlyRate:  r.HourlyRate,
	}
}
