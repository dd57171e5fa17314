package domain

import "time"

// Court represents a physical court that can be booked
type Court struct {
	ID          int64
	Name        string
	Description *string
	IsActive    bool
	HourlyRate  float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CourtsFilter фильтр для списка кортов
type CourtsFilter struct {
	ActiveOnly bool
	Offset     uint64
	Limit      uint64
}

// CourtUpdate частичное обновление корта: nil поля не меняются
type CourtUpdate struct {
	Name        *string
	Description *string
	IsActive    *bool
	HourlyRate  *float64
}

// IsEmpty returns true if no field is set
func (u CourtUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.IsActive == nil && u.HourlyRate == nil
}
