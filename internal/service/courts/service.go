package courts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/courts/models"
)

// Service сервис для управления кортами
type Service struct {
	courtRepo CourtRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса кортов
func NewService(courtRepo CourtRepository, logger Logger) *Service {
	return &Service{
		courtRepo: courtRepo,
		logger:    logger,
	}
}

// Create создает корт. Доступно менеджерам и администраторам
func (s *Service) Create(ctx context.Context, req *models.CreateCourtRequest) (*models.CourtResponse, error) {
	if !req.Actor.Can(domain.OpManageCourts) {
		s.logger.Warn("Create: user=%d with role=%s cannot manage courts", req.Actor.UserID, req.Actor.Role)
		return nil, ErrAccessDenied
	}

	name := strings.TrimSpace(req.Name)
	if err := validateCourtFields(&name, req.Description, &req.HourlyRate); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	court, err := s.courtRepo.Create(ctx, &domain.Court{
		Name:        name,
		Description: req.Description,
		IsActive:    true,
		HourlyRate:  domain.RoundPrice(req.HourlyRate),
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: court id=%d created by user=%d", court.ID, req.Actor.UserID)
	return models.FromDomainCourt(court), nil
}

// GetByID получает корт по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CourtResponse, error) {
	court, err := s.courtRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("GetByID: court id=%d not found", id)
			return nil, ErrCourtNotFound
		}
		s.logger.Error("GetByID: repository error for court id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCourt(court), nil
}

// List получает страницу кортов
func (s *Service) List(ctx context.Context, req *models.ListCourtsRequest) ([]models.CourtResponse, error) {
	limit := req.Limit
	if limit == 0 {
		limit = domain.DefaultPageSize
	}
	if limit > domain.MaxPageSize {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, domain.MaxPageSize)
	}

	courts, err := s.courtRepo.List(ctx, domain.CourtsFilter{
		ActiveOnly: req.ActiveOnly,
		Offset:     req.Skip,
		Limit:      limit,
	})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCourtList(courts), nil
}

// Update частично обновляет корт. Доступно менеджерам и администраторам
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateCourtRequest) (*models.CourtResponse, error) {
	if !req.Actor.Can(domain.OpManageCourts) {
		s.logger.Warn("Update: user=%d with role=%s cannot manage courts", req.Actor.UserID, req.Actor.Role)
		return nil, ErrAccessDenied
	}

	update := domain.CourtUpdate{
		Description: req.Description,
		IsActive:    req.IsActive,
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		update.Name = &name
	}
	if req.HourlyRate != nil {
		rate := domain.RoundPrice(*req.HourlyRate)
		update.HourlyRate = &rate
	}

	if err := validateCourtFields(update.Name, update.Description, update.HourlyRate); err != nil {
		s.logger.Warn("Update: validation failed for court id=%d: %v", id, err)
		return nil, err
	}

	court, err := s.courtRepo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("Update: court id=%d not found", id)
			return nil, ErrCourtNotFound
		}
		s.logger.Error("Update: repository error for court id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: court id=%d updated by user=%d", id, req.Actor.UserID)
	return models.FromDomainCourt(court), nil
}

// Deactivate помечает корт неактивным
// Бронирования корта остаются без изменений
func (s *Service) Deactivate(ctx context.Context, id int64, actor domain.Actor) error {
	if !actor.Can(domain.OpManageCourts) {
		s.logger.Warn("Deactivate: user=%d with role=%s cannot manage courts", actor.UserID, actor.Role)
		return ErrAccessDenied
	}

	if err := s.courtRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("Deactivate: court id=%d not found", id)
			return ErrCourtNotFound
		}
		s.logger.Error("Deactivate: repository error for court id=%d: %v", id, err)
		return fmt.Errorf("%w: Deactivate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Deactivate: court id=%d deactivated by user=%d", id, actor.UserID)
	return nil
}

// validateCourtFields проверяет заданные (не nil) поля корта
func validateCourtFields(name, description *string, hourlyRate *float64) error {
	if name != nil {
		n := utf8.RuneCountInString(*name)
		if n == 0 || n > domain.MaxCourtNameLength {
			return fmt.Errorf("%w: name must be 1..%d characters", ErrInvalidInput, domain.MaxCourtNameLength)
		}
	}
	if description != nil && utf8.RuneCountInString(*description) > domain.MaxCourtDescLength {
		return fmt.Errorf("%w: description must be at most %d characters", ErrInvalidInput, domain.MaxCourtDescLength)
	}
	if hourlyRate != nil && (*hourlyRate < 0 || *hourlyRate > domain.MaxHourlyRate) {
		return fmt.Errorf("%w: hourly_rate must be between 0 and %d", ErrInvalidInput, domain.MaxHourlyRate)
	}
	return nil
}
