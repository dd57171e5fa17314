package models

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// Request модели

// CreateCourtRequest запрос на создание корта
type CreateCourtRequest struct {
	Actor       domain.Actor
	Name        string
	Description *string
	HourlyRate  float64
}

// UpdateCourtRequest частичное обновление корта
type UpdateCourtRequest struct {
	Actor       domain.Actor
	Name        *string
	Description *string
	HourlyRate  *float64
	IsActive    *bool
}

// ListCourtsRequest запрос на получение списка кортов
type ListCourtsRequest struct {
	ActiveOnly bool
	Skip       uint64
	Limit      uint64
}

// Response модели

// CourtResponse ответ с данными корта
type CourtResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	HourlyRate  float64   `json:"hourly_rate"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// FromDomainCourt конвертирует domain модель в DTO
func FromDomainCourt(c *domain.Court) *CourtResponse {
	if c == nil {
		return nil
	}
	return &CourtResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		HourlyRate:  c.HourlyRate,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
	}
}

// FromDomainCourtList конвертирует список кортов
func FromDomainCourtList(courts []*domain.Court) []CourtResponse {
	result := make([]CourtResponse, 0, len(courts))
	for _, c := range courts {
		result = append(result, *FromDomainCourt(c))
	}
	return result
}
