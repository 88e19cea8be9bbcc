package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	serviceRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/service"
	stylistRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/stylist"
	identityClient "github.com/m04kA/SMC-SalonService/internal/integrations/identityservice"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog/models"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Service сервис каталога: услуги, стилисты и их условия
type Service struct {
	serviceRepo    ServiceRepository
	stylistRepo    StylistRepository
	identityClient IdentityClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	serviceRepo ServiceRepository,
	stylistRepo StylistRepository,
	identityClient IdentityClient,
	logger Logger,
) *Service {
	return &Service{
		serviceRepo:    serviceRepo,
		stylistRepo:    stylistRepo,
		identityClient: identityClient,
		logger:         logger,
	}
}

// ListServices получает все активные услуги салона
func (s *Service) ListServices(ctx context.Context) (*models.ServiceListResponse, error) {
	services, err := s.serviceRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(services), nil
}

// ListStylists получает всех активных стилистов
func (s *Service) ListStylists(ctx context.Context) (*models.StylistListResponse, error) {
	stylists, err := s.stylistRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("ListStylists: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListStylists - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStylistList(stylists), nil
}

// GetStylist получает стилиста по ID
func (s *Service) GetStylist(ctx context.Context, id int64) (*models.StylistResponse, error) {
	stylist, err := s.stylistRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, stylistRepo.ErrStylistNotFound) {
			s.logger.Warn("GetStylist: stylist id=%d not found", id)
			return nil, ErrStylistNotFound
		}
		s.logger.Error("GetStylist: repository error for stylist id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetStylist - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStylist(stylist), nil
}

// ResolveServiceTerms вычисляет действующие длительность и цену услуги у
// конкретного стилиста с учетом его переопределения
func (s *Service) ResolveServiceTerms(ctx context.Context, stylistID, serviceID int64) (*domain.ServiceTerms, error) {
	svc, err := s.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("ResolveServiceTerms: service id=%d not found", serviceID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("ResolveServiceTerms: repository error for service id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: ResolveServiceTerms - repository error: %v", ErrInternal, err)
	}

	if !svc.IsActive {
		s.logger.Warn("ResolveServiceTerms: service id=%d is inactive", serviceID)
		return nil, ErrServiceNotFound
	}

	override, err := s.serviceRepo.GetOverride(ctx, stylistID, serviceID)
	if err != nil && !errors.Is(err, serviceRepo.ErrOverrideNotFound) {
		s.logger.Error("ResolveServiceTerms: repository error for override stylist=%d service=%d: %v", stylistID, serviceID, err)
		return nil, fmt.Errorf("%w: ResolveServiceTerms - repository error: %v", ErrInternal, err)
	}
	// Отсутствие переопределения - штатный случай: действуют стандартные условия
	if errors.Is(err, serviceRepo.ErrOverrideNotFound) {
		override = nil
	}

	terms, err := domain.ResolveTerms(svc, override)
	if err != nil {
		if errors.Is(err, domain.ErrServiceNotOffered) {
			s.logger.Info("ResolveServiceTerms: stylist=%d does not offer service=%d", stylistID, serviceID)
			return nil, ErrServiceNotOffered
		}
		return nil, fmt.Errorf("%w: ResolveServiceTerms: %v", ErrInternal, err)
	}

	return &terms, nil
}

// UpdateSchedule обновляет расписание и настройки стилиста
// Доступно самому стилисту и менеджерам (can_manage_staff)
func (s *Service) UpdateSchedule(ctx context.Context, stylistID int64, req *models.UpdateScheduleRequest) error {
	s.logger.Info("UpdateSchedule: updating stylist id=%d by user=%d", stylistID, req.UserID)

	actor, err := s.identityClient.GetUser(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, identityClient.ErrUserNotFound) {
			s.logger.Warn("UpdateSchedule: user=%d not found", req.UserID)
			return ErrAccessDenied
		}
		s.logger.Error("UpdateSchedule: identity lookup failed for user=%d: %v", req.UserID, err)
		return fmt.Errorf("%w: UpdateSchedule - identity lookup failed: %v", ErrInternal, err)
	}

	ownProfile := actor.StylistID != nil && *actor.StylistID == stylistID
	if !ownProfile && !actor.CanManageStaff {
		s.logger.Warn("UpdateSchedule: user=%d is neither stylist id=%d nor a manager", req.UserID, stylistID)
		return ErrAccessDenied
	}

	params := stylistRepo.UpdateScheduleParams{
		AcceptsWalkIns: req.AcceptsWalkIns,
		PriorityLevel:  req.PriorityLevel,
		IsActive:       req.IsActive,
	}

	if req.WorkingHoursStart != nil {
		start, err := types.NewTimeStringFromString(*req.WorkingHoursStart)
		if err != nil {
			s.logger.Warn("UpdateSchedule: invalid workingHoursStart=%s", *req.WorkingHoursStart)
			return fmt.Errorf("%w: invalid workingHoursStart", ErrInvalidInput)
		}
		params.WorkingHoursStart = &start
	}
	if req.WorkingHoursEnd != nil {
		end, err := types.NewTimeStringFromString(*req.WorkingHoursEnd)
		if err != nil {
			s.logger.Warn("UpdateSchedule: invalid workingHoursEnd=%s", *req.WorkingHoursEnd)
			return fmt.Errorf("%w: invalid workingHoursEnd", ErrInvalidInput)
		}
		params.WorkingHoursEnd = &end
	}

	if params.WorkingHoursStart != nil && params.WorkingHoursEnd != nil &&
		!params.WorkingHoursStart.IsBefore(*params.WorkingHoursEnd) {
		s.logger.Warn("UpdateSchedule: working hours start >= end for stylist id=%d", stylistID)
		return fmt.Errorf("%w: working hours start must precede end", ErrInvalidInput)
	}

	if err := s.stylistRepo.UpdateSchedule(ctx, stylistID, params); err != nil {
		if errors.Is(err, stylistRepo.ErrStylistNotFound) {
			s.logger.Warn("UpdateSchedule: stylist id=%d not found", stylistID)
			return ErrStylistNotFound
		}
		s.logger.Error("UpdateSchedule: repository error for stylist id=%d: %v", stylistID, err)
		return fmt.Errorf("%w: UpdateSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSchedule: successfully updated stylist id=%d", stylistID)
	return nil
}
