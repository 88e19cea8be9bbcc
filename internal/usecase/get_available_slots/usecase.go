package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	stylistRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/stylist"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog"
)

// UseCase use case для получения доступных слотов записи к стилисту
type UseCase struct {
	aptRepo      AppointmentRepository
	stylistRepo  StylistRepository
	catalog      CatalogService
	salonHours   SalonHours
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	aptRepo AppointmentRepository,
	stylistRepo StylistRepository,
	catalogService CatalogService,
	salonHours SalonHours,
	logger Logger,
) *UseCase {
	return &UseCase{
		aptRepo:      aptRepo,
		stylistRepo:  stylistRepo,
		catalog:      catalogService,
		salonHours:   salonHours,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: stylist=%d, service=%d, date=%s",
		req.StylistID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не должна быть в прошлом
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем стилиста
	stylist, err := uc.stylistRepo.GetByID(ctx, req.StylistID)
	if err != nil {
		if errors.Is(err, stylistRepo.ErrStylistNotFound) {
			uc.logger.Warn("GetAvailableSlots: stylist id=%d not found", req.StylistID)
			return nil, ErrStylistNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get stylist id=%d: %v", req.StylistID, err)
		return nil, fmt.Errorf("%w: failed to get stylist: %v", ErrInternal, err)
	}
	if !stylist.IsActive {
		uc.logger.Warn("GetAvailableSlots: stylist id=%d is inactive", req.StylistID)
		return nil, ErrStylistNotFound
	}

	// 4. Вычисляем действующие длительность и цену услуги у этого стилиста
	terms, err := uc.catalog.ResolveServiceTerms(ctx, req.StylistID, req.ServiceID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		case errors.Is(err, catalog.ErrServiceNotOffered):
			uc.logger.Info("GetAvailableSlots: stylist=%d does not offer service=%d", req.StylistID, req.ServiceID)
			return nil, ErrServiceNotOffered
		default:
			uc.logger.Error("GetAvailableSlots: failed to resolve terms: %v", err)
			return nil, fmt.Errorf("%w: failed to resolve service terms: %v", ErrInternal, err)
		}
	}

	// 5. Получаем активные записи стилиста на дату (длительности уже пересчитаны)
	existing, err := uc.aptRepo.ListBlockingForDay(ctx, req.StylistID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 6. Генерируем слоты внутри рабочего окна стилиста
	windowStart, windowEnd := stylist.WorkingWindow(uc.salonHours.Open, uc.salonHours.Close)
	slots, err := generateSlots(windowStart, windowEnd, terms.DurationMinutes, uc.salonHours.CadenceMinutes, existing)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for stylist=%d, service=%d, date=%s",
		len(slots), req.StylistID, req.ServiceID, req.Date.Format(domain.DateFormat))

	resp := &Response{
		Date:            req.Date,
		StylistID:       req.StylistID,
		ServiceID:       req.ServiceID,
		ServiceDuration: terms.DurationMinutes,
		EffectivePrice:  terms.Price.StringFixed(2),
		Slots:           make([]Slot, 0, len(slots)),
	}
	for _, s := range slots {
		resp.Slots = append(resp.Slots, Slot{
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
		})
	}

	return resp, nil
}
