package create_manual_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	aptRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	serviceRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/service"
	stylistRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/stylist"
	"github.com/m04kA/SMC-SalonService/internal/integrations/identityservice"
	"github.com/m04kA/SMC-SalonService/internal/integrations/notificationservice"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// UseCase use case ручного добавления записи стилистом
//
// Стилист вносит клиента, который позвонил или пришел без записи.
// Запись занимает интервал в календаре наравне с онлайн-записями,
// поэтому проверка занятости и вставка идут через ту же
// сериализуемую транзакцию.
type UseCase struct {
	aptRepo        AppointmentRepository
	stylistRepo    StylistRepository
	serviceRepo    ServiceRepository
	catalog        CatalogService
	identityClient IdentityClient
	notifier       NotificationClient
	txManager      TransactionManager
	settings       Settings
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	aptRepository AppointmentRepository,
	stylistRepository StylistRepository,
	serviceRepository ServiceRepository,
	catalogService CatalogService,
	identity IdentityClient,
	notifier NotificationClient,
	txManager TransactionManager,
	settings Settings,
	logger Logger,
) *UseCase {
	return &UseCase{
		aptRepo:        aptRepository,
		stylistRepo:    stylistRepository,
		serviceRepo:    serviceRepository,
		catalog:        catalogService,
		identityClient: identity,
		notifier:       notifier,
		txManager:      txManager,
		settings:       settings,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case ручного добавления записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateManualAppointment: user=%d, date=%s, time=%s",
		req.UserID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateManualAppointment: validation failed: %v", err)
		return nil, err
	}

	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateManualAppointment: date validation failed: %v", err)
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: startTime must be in HH:MM format", ErrInvalidInput)
	}

	// 2. Определяем стилиста по аккаунту
	stylistID, err := uc.identityClient.StylistIDForUser(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, identityservice.ErrUserNotFound) {
			uc.logger.Warn("CreateManualAppointment: user id=%d is not a stylist", req.UserID)
			return nil, ErrNotStylist
		}
		uc.logger.Error("CreateManualAppointment: identity lookup failed for user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: identity lookup failed: %v", ErrInternal, err)
	}

	stylist, err := uc.stylistRepo.GetByID(ctx, stylistID)
	if err != nil {
		if errors.Is(err, stylistRepo.ErrStylistNotFound) {
			return nil, ErrStylistNotFound
		}
		uc.logger.Error("CreateManualAppointment: failed to get stylist id=%d: %v", stylistID, err)
		return nil, fmt.Errorf("%w: failed to get stylist: %v", ErrInternal, err)
	}

	if !stylist.WorksAt(startTime, uc.settings.Open, uc.settings.Close) {
		uc.logger.Warn("CreateManualAppointment: time %s is outside working hours of stylist id=%d", startTime, stylistID)
		return nil, ErrOutsideWorkingHours
	}

	// 3. Длительность и сумма: из условий услуги или от стилиста
	duration, amount, serviceName, err := uc.resolveTerms(ctx, stylistID, req)
	if err != nil {
		return nil, err
	}

	requested, err := domain.NewInterval(startTime, duration)
	if err != nil {
		return nil, fmt.Errorf("%w: appointment does not fit into the day", ErrInvalidInput)
	}

	// 4. Проверяем занятость и создаем запись в сериализуемой транзакции
	var result *domain.Appointment
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.aptRepo.ListBlockingForDay(txCtx, stylistID, req.Date)
		if err != nil {
			uc.logger.Error("CreateManualAppointment: failed to get appointments for stylist=%d: %v", stylistID, err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		for _, apt := range existing {
			iv, err := apt.Interval()
			if err != nil {
				continue
			}
			if requested.Overlaps(iv) {
				uc.logger.Warn("CreateManualAppointment: slot %s is taken for stylist=%d", startTime, stylistID)
				return ErrSlotNotAvailable
			}
		}

		apt := &domain.Appointment{
			Kind:            domain.KindManual,
			StylistID:       stylistID,
			CustomerName:    &req.CustomerName,
			CustomerPhone:   req.CustomerPhone,
			ServiceID:       req.ServiceID,
			BookingDate:     req.Date,
			StartTime:       startTime,
			DurationMinutes: duration,
			Status:          domain.StatusReserved,
			TotalAmount:     amount,
			ServiceName:     serviceName,
			Notes:           req.Notes,
		}

		result, err = uc.aptRepo.Create(txCtx, apt)
		if err != nil {
			if errors.Is(err, aptRepo.ErrTimeSlotTaken) {
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateManualAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateManualAppointment: created appointment id=%d for stylist=%d", result.ID, stylistID)

	uc.notifier.SendAppointmentEventAsync(notificationservice.AppointmentEvent{
		AppointmentID: result.ID,
		Event:         notificationservice.EventCreated,
		CustomerName:  result.CustomerName,
		StylistName:   stylist.DisplayName,
		ServiceName:   result.ServiceName,
		BookingDate:   result.BookingDate.Format(domain.DateFormat),
		StartTime:     result.StartTime.String(),
	})

	return &Response{
		ID:              result.ID,
		Kind:            string(result.Kind),
		StylistID:       result.StylistID,
		CustomerName:    req.CustomerName,
		ServiceID:       result.ServiceID,
		ServiceName:     result.ServiceName,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime.String(),
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		TotalAmount:     result.TotalAmount.StringFixed(2),
		CreatedAt:       result.CreatedAt,
	}, nil
}

// resolveTerms вычисляет длительность, сумму и имя услуги для записи.
// Явно указанная стилистом длительность имеет приоритет над условиями услуги.
func (uc *UseCase) resolveTerms(ctx context.Context, stylistID int64, req *Request) (int, decimal.Decimal, *string, error) {
	if req.ServiceID == nil {
		return *req.DurationMinutes, decimal.Zero, nil, nil
	}

	service, err := uc.serviceRepo.GetByID(ctx, *req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return 0, decimal.Zero, nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateManualAppointment: failed to get service id=%d: %v", *req.ServiceID, err)
		return 0, decimal.Zero, nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		return 0, decimal.Zero, nil, ErrServiceNotFound
	}

	terms, err := uc.catalog.ResolveServiceTerms(ctx, stylistID, *req.ServiceID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			return 0, decimal.Zero, nil, ErrServiceNotFound
		case errors.Is(err, catalog.ErrServiceNotOffered):
			return 0, decimal.Zero, nil, ErrServiceNotOffered
		default:
			uc.logger.Error("CreateManualAppointment: failed to resolve terms: %v", err)
			return 0, decimal.Zero, nil, fmt.Errorf("%w: failed to resolve service terms: %v", ErrInternal, err)
		}
	}

	duration := terms.DurationMinutes
	if req.DurationMinutes != nil {
		duration = *req.DurationMinutes
	}

	return duration, terms.Price, &service.Name, nil
}
