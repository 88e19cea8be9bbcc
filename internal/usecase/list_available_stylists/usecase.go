package list_available_stylists

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// UseCase use case списка стилистов, свободных в запрошенный момент
//
// Порядок ответа совпадает с порядком автоподбора, поэтому первый
// стилист в списке - тот, кого выбрал бы автоподбор для этого времени.
type UseCase struct {
	aptRepo      AppointmentRepository
	stylistRepo  StylistRepository
	catalog      CatalogService
	hours        SalonHours
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	aptRepository AppointmentRepository,
	stylistRepository StylistRepository,
	catalogService CatalogService,
	hours SalonHours,
	logger Logger,
) *UseCase {
	return &UseCase{
		aptRepo:      aptRepository,
		stylistRepo:  stylistRepository,
		catalog:      catalogService,
		hours:        hours,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case поиска свободных стилистов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("ListAvailableStylists: validation failed: %v", err)
		return nil, err
	}

	at, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: time must be in HH:MM format", ErrInvalidInput)
	}

	// 2. Кандидаты приходят упорядоченными по приоритету
	candidates, err := uc.stylistRepo.ListWalkInCandidates(ctx)
	if err != nil {
		uc.logger.Error("ListAvailableStylists: failed to list candidates: %v", err)
		return nil, fmt.Errorf("%w: failed to list candidates: %v", ErrInternal, err)
	}

	available := make([]AvailableStylist, 0, len(candidates))
	for _, candidate := range candidates {
		if !candidate.IsAvailableAt(at, uc.hours.Open, uc.hours.Close) {
			continue
		}

		entry := AvailableStylist{
			ID:              candidate.ID,
			DisplayName:     candidate.DisplayName,
			ExperienceYears: candidate.ExperienceYears,
			PriorityLevel:   candidate.PriorityLevel,
		}

		// 3. Занятость: с услугой - по интервалу, без - по моменту
		var requested *domain.Interval
		if req.ServiceID != nil {
			terms, err := uc.catalog.ResolveServiceTerms(ctx, candidate.ID, *req.ServiceID)
			if err != nil {
				switch {
				case errors.Is(err, catalog.ErrServiceNotOffered):
					continue
				case errors.Is(err, catalog.ErrServiceNotFound):
					return nil, ErrServiceNotFound
				default:
					uc.logger.Error("ListAvailableStylists: failed to resolve terms for stylist=%d: %v", candidate.ID, err)
					return nil, fmt.Errorf("%w: failed to resolve service terms: %v", ErrInternal, err)
				}
			}

			iv, err := domain.NewInterval(at, terms.DurationMinutes)
			if err != nil {
				continue
			}
			requested = &iv

			price := terms.Price.StringFixed(2)
			entry.DurationMinutes = &terms.DurationMinutes
			entry.EffectivePrice = &price
		}

		existing, err := uc.aptRepo.ListBlockingForDay(ctx, candidate.ID, req.Date)
		if err != nil {
			uc.logger.Error("ListAvailableStylists: failed to get appointments for stylist=%d: %v", candidate.ID, err)
			return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		if !isFree(at, requested, existing) {
			continue
		}

		available = append(available, entry)
	}

	return &Response{
		Date:     req.Date.Format(domain.DateFormat),
		Time:     at.String(),
		Stylists: available,
	}, nil
}

// isFree проверяет занятость кандидата: при известной длительности -
// по пересечению интервалов, иначе - по попаданию момента в запись
func isFree(at types.TimeString, requested *domain.Interval, existing []*domain.Appointment) bool {
	for _, apt := range existing {
		iv, err := apt.Interval()
		if err != nil {
			continue
		}
		if requested != nil {
			if requested.Overlaps(iv) {
				return false
			}
			continue
		}
		if iv.Contains(at) {
			return false
		}
	}
	return true
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, now time.Time) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if _, err := types.NewTimeStringFromString(req.Time); err != nil {
		return fmt.Errorf("%w: time must be in HH:MM format", ErrInvalidInput)
	}

	if req.ServiceID != nil && *req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	dateOnly := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, req.Date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}

	return nil
}
