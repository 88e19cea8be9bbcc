package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	aptRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	linkRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/bookinglink"
	serviceRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/service"
	stylistRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/stylist"
	identityClient "github.com/m04kA/SMC-SalonService/internal/integrations/identityservice"
	"github.com/m04kA/SMC-SalonService/internal/integrations/notificationservice"
	referralClient "github.com/m04kA/SMC-SalonService/internal/integrations/referralservice"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// UseCase use case создания записи на услугу
//
// Покрывает четыре сценария: запись к выбранному стилисту, автоподбор
// стилиста, запись по персональной ссылке и гостевую запись по ссылке.
// Проверка занятости и вставка выполняются в одной сериализуемой
// транзакции; частичный уникальный индекс в БД страхует от гонки.
type UseCase struct {
	aptRepo        AppointmentRepository
	stylistRepo    StylistRepository
	serviceRepo    ServiceRepository
	catalog        CatalogService
	linkRepo       BookingLinkRepository
	identityClient IdentityClient
	payments       PaymentsClient
	referrals      ReferralClient
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
	linkRepository BookingLinkRepository,
	identity IdentityClient,
	paymentsClient PaymentsClient,
	referrals ReferralClient,
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
		linkRepo:       linkRepository,
		identityClient: identity,
		payments:       paymentsClient,
		referrals:      referrals,
		notifier:       notifier,
		txManager:      txManager,
		settings:       settings,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: service=%d, date=%s, time=%s, stylist=%v",
		req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime, req.StylistID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: startTime must be in HH:MM format", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
		return nil, err
	}

	// 2. Запись по персональной ссылке
	stylistID := req.StylistID
	if req.BookingCode != nil && *req.BookingCode != "" {
		linkStylistID, err := uc.resolveBookingCode(ctx, req, now)
		if err != nil {
			return nil, err
		}
		if stylistID != nil && *stylistID != linkStylistID {
			uc.logger.Warn("CreateAppointment: stylist id=%d does not match booking code owner id=%d", *stylistID, linkStylistID)
			return nil, fmt.Errorf("%w: stylist does not match booking code", ErrInvalidInput)
		}
		stylistID = &linkStylistID
	}

	// 3. Проверяем аккаунт клиента (для не-гостевой записи)
	if req.UserID != nil {
		if _, err := uc.identityClient.GetUser(ctx, *req.UserID); err != nil {
			if errors.Is(err, identityClient.ErrUserNotFound) {
				uc.logger.Warn("CreateAppointment: user id=%d not found", *req.UserID)
				return nil, ErrUserNotFound
			}
			uc.logger.Error("CreateAppointment: identity lookup failed for user id=%d: %v", *req.UserID, err)
			return nil, fmt.Errorf("%w: identity lookup failed: %v", ErrInternal, err)
		}
	}

	// 4. Получаем услугу (имя нужно для денормализации)
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("CreateAppointment: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 5. Создаем запись в сериализуемой транзакции
	var result *domain.Appointment
	var assignedStylist *domain.Stylist

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if stylistID != nil {
			stylist, terms, err := uc.prepareExplicit(txCtx, *stylistID, req.ServiceID, req.Date, startTime)
			if err != nil {
				return err
			}
			assignedStylist = stylist
			result, err = uc.insert(txCtx, req, stylist, terms, service, domain.KindOnline, startTime)
			return err
		}

		stylist, terms, err := uc.autoAssign(txCtx, req.ServiceID, req.Date, startTime)
		if err != nil {
			return err
		}
		assignedStylist = stylist
		result, err = uc.insert(txCtx, req, stylist, terms, service, domain.KindWalkIn, startTime)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d for stylist=%d", result.ID, result.StylistID)

	// 6. Привязываем реферальный код
	// Несуществующий код молча игнорируется: запись не должна падать
	// из-за опечатки в необязательном поле
	if req.ReferralCode != nil && *req.ReferralCode != "" && req.UserID != nil {
		err := uc.referrals.Attach(ctx, *req.ReferralCode, *req.UserID, result.ID)
		switch {
		case err == nil:
			uc.logger.Info("CreateAppointment: referral code attached to appointment id=%d", result.ID)
		case errors.Is(err, referralClient.ErrCodeNotFound):
			uc.logger.Info("CreateAppointment: referral code not found, ignoring")
		default:
			uc.logger.Error("CreateAppointment: failed to attach referral to appointment id=%d: %v", result.ID, err)
		}
	}

	// 7. Онлайн-оплата: при ошибке создания сессии запись компенсируется
	var checkoutURL *string
	if req.PayNow {
		session, err := uc.payments.CreateCheckoutSession(result.ID, service.Name, result.TotalAmount)
		if err != nil {
			uc.logger.Error("CreateAppointment: checkout session failed for appointment id=%d: %v", result.ID, err)
			if delErr := uc.aptRepo.Delete(ctx, result.ID); delErr != nil {
				uc.logger.Error("CreateAppointment: failed to delete appointment id=%d after payment failure: %v", result.ID, delErr)
			}
			return nil, ErrPaymentFailed
		}
		checkoutURL = &session.CheckoutURL
	}

	// 8. Уведомление отправляется в фоне и не блокирует ответ
	uc.notifier.SendAppointmentEventAsync(notificationservice.AppointmentEvent{
		AppointmentID: result.ID,
		Event:         notificationservice.EventCreated,
		CustomerID:    result.CustomerID,
		CustomerName:  result.CustomerName,
		StylistName:   assignedStylist.DisplayName,
		ServiceName:   result.ServiceName,
		BookingDate:   result.BookingDate.Format(domain.DateFormat),
		StartTime:     result.StartTime.String(),
	})

	return &Response{
		ID:              result.ID,
		Kind:            string(result.Kind),
		StylistID:       result.StylistID,
		StylistName:     assignedStylist.DisplayName,
		ServiceID:       req.ServiceID,
		ServiceName:     service.Name,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime.String(),
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		TotalAmount:     result.TotalAmount.StringFixed(2),
		RequiresPayment: result.RequiresPayment,
		CheckoutURL:     checkoutURL,
		CreatedAt:       result.CreatedAt,
	}, nil
}

// resolveBookingCode проверяет код ссылки и возвращает ID её владельца
func (uc *UseCase) resolveBookingCode(ctx context.Context, req *Request, now time.Time) (int64, error) {
	link, err := uc.linkRepo.GetByCode(ctx, *req.BookingCode)
	if err != nil {
		if errors.Is(err, linkRepo.ErrLinkNotFound) {
			uc.logger.Warn("CreateAppointment: booking code not found")
			return 0, ErrLinkNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get booking link: %v", err)
		return 0, fmt.Errorf("%w: failed to get booking link: %v", ErrInternal, err)
	}

	if !link.IsActive {
		uc.logger.Warn("CreateAppointment: booking link for stylist=%d is inactive", link.StylistID)
		return 0, ErrLinkInactive
	}

	if req.UserID == nil && !link.AllowGuestBooking {
		uc.logger.Warn("CreateAppointment: guest booking not allowed for stylist=%d", link.StylistID)
		return 0, ErrGuestNotAllowed
	}

	if !link.AcceptsDate(req.Date, now) {
		uc.logger.Warn("CreateAppointment: date %s is outside link horizon of %d days",
			req.Date.Format(domain.DateFormat), link.MaxAdvanceDays)
		return 0, ErrDateTooFarInFuture
	}

	return link.StylistID, nil
}

// prepareExplicit проверяет выбранного стилиста и вычисляет условия услуги
func (uc *UseCase) prepareExplicit(ctx context.Context, stylistID, serviceID int64, date time.Time, start types.TimeString) (*domain.Stylist, *domain.ServiceTerms, error) {
	stylist, err := uc.stylistRepo.GetByID(ctx, stylistID)
	if err != nil {
		if errors.Is(err, stylistRepo.ErrStylistNotFound) {
			uc.logger.Warn("CreateAppointment: stylist id=%d not found", stylistID)
			return nil, nil, ErrStylistNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get stylist id=%d: %v", stylistID, err)
		return nil, nil, fmt.Errorf("%w: failed to get stylist: %v", ErrInternal, err)
	}
	if !stylist.IsActive {
		uc.logger.Warn("CreateAppointment: stylist id=%d is inactive", stylistID)
		return nil, nil, ErrStylistNotFound
	}

	// Для явно выбранного стилиста флаг walk-in не учитывается,
	// но рабочее окно (включая обе границы) обязательно
	if !stylist.WorksAt(start, uc.settings.Open, uc.settings.Close) {
		uc.logger.Warn("CreateAppointment: time %s is outside working hours of stylist id=%d", start, stylistID)
		return nil, nil, ErrOutsideWorkingHours
	}

	terms, err := uc.catalog.ResolveServiceTerms(ctx, stylistID, serviceID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			return nil, nil, ErrServiceNotFound
		case errors.Is(err, catalog.ErrServiceNotOffered):
			uc.logger.Warn("CreateAppointment: stylist=%d does not offer service=%d", stylistID, serviceID)
			return nil, nil, ErrServiceNotOffered
		default:
			uc.logger.Error("CreateAppointment: failed to resolve terms: %v", err)
			return nil, nil, fmt.Errorf("%w: failed to resolve service terms: %v", ErrInternal, err)
		}
	}

	requested, err := domain.NewInterval(start, terms.DurationMinutes)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: service does not fit into the day", ErrInvalidInput)
	}

	existing, err := uc.aptRepo.ListBlockingForDay(ctx, stylistID, date)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get appointments for stylist=%d: %v", stylistID, err)
		return nil, nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	if !fitsCalendar(requested, existing) {
		uc.logger.Warn("CreateAppointment: slot %s is taken for stylist=%d", start, stylistID)
		return nil, nil, ErrSlotNotAvailable
	}

	return stylist, terms, nil
}

// autoAssign выбирает свободного стилиста в порядке приоритета
func (uc *UseCase) autoAssign(ctx context.Context, serviceID int64, date time.Time, start types.TimeString) (*domain.Stylist, *domain.ServiceTerms, error) {
	if !uc.settings.AutoAssignEnabled {
		uc.logger.Warn("CreateAppointment: auto-assign requested but disabled")
		return nil, nil, ErrAutoAssignDisabled
	}

	candidates, err := uc.stylistRepo.ListWalkInCandidates(ctx)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to list candidates: %v", err)
		return nil, nil, fmt.Errorf("%w: failed to list candidates: %v", ErrInternal, err)
	}

	stylist, terms, err := selectStylist(
		candidates,
		start,
		uc.settings.Open,
		uc.settings.Close,
		func(stylistID int64) (*domain.ServiceTerms, error) {
			terms, err := uc.catalog.ResolveServiceTerms(ctx, stylistID, serviceID)
			if err != nil {
				if errors.Is(err, catalog.ErrServiceNotOffered) {
					return nil, nil
				}
				if errors.Is(err, catalog.ErrServiceNotFound) {
					return nil, ErrServiceNotFound
				}
				return nil, fmt.Errorf("%w: failed to resolve service terms: %v", ErrInternal, err)
			}
			return terms, nil
		},
		func(stylistID int64) ([]*domain.Appointment, error) {
			existing, err := uc.aptRepo.ListBlockingForDay(ctx, stylistID, date)
			if err != nil {
				return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
			}
			return existing, nil
		},
	)
	if err != nil {
		if errors.Is(err, ErrNoStylistAvailable) {
			uc.logger.Info("CreateAppointment: no stylist available at %s", start)
		}
		return nil, nil, err
	}

	uc.logger.Info("CreateAppointment: auto-assigned stylist id=%d (priority=%d)", stylist.ID, stylist.PriorityLevel)
	return stylist, terms, nil
}

// insert собирает и сохраняет запись
func (uc *UseCase) insert(
	ctx context.Context,
	req *Request,
	stylist *domain.Stylist,
	terms *domain.ServiceTerms,
	service *domain.Service,
	kind domain.AppointmentKind,
	start types.TimeString,
) (*domain.Appointment, error) {
	apt := &domain.Appointment{
		Kind:            kind,
		StylistID:       stylist.ID,
		CustomerID:      req.UserID,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		ServiceID:       &req.ServiceID,
		BookingDate:     req.Date,
		StartTime:       start,
		DurationMinutes: terms.DurationMinutes,
		Status:          domain.StatusReserved,
		RequiresPayment: req.PayNow,
		TotalAmount:     terms.Price,
		ServiceName:     &service.Name,
		Notes:           req.Notes,
	}

	created, err := uc.aptRepo.Create(ctx, apt)
	if err != nil {
		if errors.Is(err, aptRepo.ErrTimeSlotTaken) {
			uc.logger.Warn("CreateAppointment: unique index rejected slot %s for stylist=%d", start, stylist.ID)
			return nil, ErrSlotNotAvailable
		}
		uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
		return nil, fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
	}

	return created, nil
}
