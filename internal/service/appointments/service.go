package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	aptRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	identityClient "github.com/m04kA/SMC-SalonService/internal/integrations/identityservice"
	"github.com/m04kA/SMC-SalonService/internal/integrations/notificationservice"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
)

// Service сервис для работы с записями на услуги
type Service struct {
	aptRepo        AppointmentRepository
	stylistRepo    StylistRepository
	identityClient IdentityClient
	referralClient ReferralClient
	notifier       NotificationClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	aptRepo AppointmentRepository,
	stylistRepo StylistRepository,
	identityClient IdentityClient,
	referralClient ReferralClient,
	notifier NotificationClient,
	logger Logger,
) *Service {
	return &Service{
		aptRepo:        aptRepo,
		stylistRepo:    stylistRepo,
		identityClient: identityClient,
		referralClient: referralClient,
		notifier:       notifier,
		logger:         logger,
	}
}

// GetByID получает запись по ID
// Пользователь видит только свою запись; стилист видит записи своего календаря
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%d", id, userID)

	apt, err := s.aptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, aptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkUserAccess(ctx, apt, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to appointment id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(apt), nil
}

// GetUserAppointments получает историю записей клиента
// Опционально фильтрует по статусу
func (s *Service) GetUserAppointments(ctx context.Context, req *models.GetUserAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetUserAppointments: fetching appointments for user=%d, status=%v", req.UserID, req.Status)

	var domainStatus *domain.AppointmentStatus
	if req.Status != nil {
		status, err := models.ToDomainAppointmentStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserAppointments: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	appointments, err := s.aptRepo.GetByCustomerID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserAppointments: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserAppointments: successfully fetched %d appointments for user=%d", len(appointments), req.UserID)
	return models.FromDomainAppointmentList(appointments), nil
}

// GetStylistAppointments получает записи календаря стилиста
// Доступно только самому стилисту (аккаунт должен быть привязан к профилю)
func (s *Service) GetStylistAppointments(ctx context.Context, req *models.GetStylistAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetStylistAppointments: fetching appointments for user=%d", req.UserID)

	stylistID, err := s.stylistIDFor(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	filter := domain.StylistAppointmentsFilter{
		StylistID:       stylistID,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		IncludeInactive: req.IncludeInactive,
	}

	if req.Status != nil {
		status, err := models.ToDomainAppointmentStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetStylistAppointments: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	appointments, err := s.aptRepo.GetByStylistWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetStylistAppointments: repository error for stylist=%d: %v", stylistID, err)
		return nil, fmt.Errorf("%w: GetStylistAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetStylistAppointments: successfully fetched %d appointments for stylist=%d", len(appointments), stylistID)
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет запись
// Клиент может отменить свою запись, стилист - любую запись своего календаря
func (s *Service) Cancel(ctx context.Context, appointmentID int64, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%d by user=%d", appointmentID, req.UserID)

	apt, err := s.aptRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, aptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if err := s.checkUserAccess(ctx, apt, req.UserID); err != nil {
		s.logger.Warn("Cancel: access denied for user=%d to appointment id=%d", req.UserID, appointmentID)
		return err
	}

	if !apt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", appointmentID, apt.Status)
		return ErrCannotCancel
	}

	if err := s.aptRepo.Cancel(ctx, appointmentID, req.CancellationReason); err != nil {
		if errors.Is(err, aptRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", appointmentID)
	s.notifyAsync(ctx, apt, notificationservice.EventCancelled)

	return nil
}

// Complete помечает запись выполненной
// Доступно только стилисту этой записи
func (s *Service) Complete(ctx context.Context, appointmentID int64, userID int64) error {
	s.logger.Info("Complete: completing appointment id=%d by user=%d", appointmentID, userID)

	apt, err := s.aptRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, aptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Complete: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Complete: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	stylistID, err := s.stylistIDFor(ctx, userID)
	if err != nil {
		return err
	}
	if apt.StylistID != stylistID {
		s.logger.Warn("Complete: user=%d is not the stylist of appointment id=%d", userID, appointmentID)
		return ErrAccessDenied
	}

	if !apt.CanBeCompleted() {
		s.logger.Warn("Complete: appointment id=%d cannot be completed, status=%s", appointmentID, apt.Status)
		return ErrCannotComplete
	}

	if err := s.aptRepo.UpdateStatus(ctx, appointmentID, domain.StatusCompleted); err != nil {
		if errors.Is(err, aptRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Complete: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Complete: successfully completed appointment id=%d", appointmentID)
	return nil
}

// DeleteManual удаляет запись, созданную стилистом вручную
// Обычные записи клиентов удалять нельзя, только отменять
func (s *Service) DeleteManual(ctx context.Context, appointmentID int64, userID int64) error {
	s.logger.Info("DeleteManual: deleting appointment id=%d by user=%d", appointmentID, userID)

	apt, err := s.aptRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, aptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("DeleteManual: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("DeleteManual: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: DeleteManual - repository error: %v", ErrInternal, err)
	}

	if apt.Kind != domain.KindManual {
		s.logger.Warn("DeleteManual: appointment id=%d has kind=%s", appointmentID, apt.Kind)
		return ErrNotManual
	}

	stylistID, err := s.stylistIDFor(ctx, userID)
	if err != nil {
		return err
	}
	if apt.StylistID != stylistID {
		s.logger.Warn("DeleteManual: user=%d is not the stylist of appointment id=%d", userID, appointmentID)
		return ErrAccessDenied
	}

	if err := s.aptRepo.Delete(ctx, appointmentID); err != nil {
		if errors.Is(err, aptRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("DeleteManual: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: DeleteManual - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteManual: successfully deleted appointment id=%d", appointmentID)
	return nil
}

// HandlePaymentCompleted обрабатывает успешную оплату из webhook
// Операция идемпотентна: повторная доставка события не меняет состояние
func (s *Service) HandlePaymentCompleted(ctx context.Context, appointmentID int64, paymentIntentID string) error {
	s.logger.Info("HandlePaymentCompleted: appointment id=%d, payment_intent=%s", appointmentID, paymentIntentID)

	apt, err := s.aptRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, aptRepo.ErrAppointmentNotFound) {
			// Платеж за несуществующую запись: логируем и отвечаем успехом,
			// чтобы провайдер не ретраил событие бесконечно
			s.logger.Warn("HandlePaymentCompleted: appointment id=%d not found", appointmentID)
			return nil
		}
		s.logger.Error("HandlePaymentCompleted: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: HandlePaymentCompleted - repository error: %v", ErrInternal, err)
	}

	if !apt.CanBePaid() {
		s.logger.Info("HandlePaymentCompleted: appointment id=%d already in status=%s, skipping", appointmentID, apt.Status)
		return nil
	}

	if err := s.aptRepo.MarkPaid(ctx, appointmentID, paymentIntentID); err != nil {
		s.logger.Error("HandlePaymentCompleted: failed to mark appointment id=%d paid: %v", appointmentID, err)
		return fmt.Errorf("%w: HandlePaymentCompleted - repository error: %v", ErrInternal, err)
	}

	// Реферал помечается успешным после оплаты; ошибка не откатывает платеж
	if err := s.referralClient.MarkSuccess(ctx, appointmentID); err != nil {
		s.logger.Error("HandlePaymentCompleted: failed to mark referral success for appointment id=%d: %v", appointmentID, err)
	}

	s.logger.Info("HandlePaymentCompleted: appointment id=%d marked as paid", appointmentID)
	s.notifyAsync(ctx, apt, notificationservice.EventPaid)

	return nil
}

// Вспомогательные методы

// checkUserAccess проверяет, что пользователь имеет доступ к записи
// Доступ есть у клиента записи и у стилиста, в чьем календаре она находится
func (s *Service) checkUserAccess(ctx context.Context, apt *domain.Appointment, userID int64) error {
	if apt.CustomerID != nil && *apt.CustomerID == userID {
		return nil
	}

	stylistID, err := s.identityClient.StylistIDForUser(ctx, userID)
	if err != nil {
		if errors.Is(err, identityClient.ErrUserNotFound) {
			return ErrAccessDenied
		}
		s.logger.Error("checkUserAccess: identity lookup failed for user=%d: %v", userID, err)
		return fmt.Errorf("%w: checkUserAccess - identity lookup failed: %v", ErrInternal, err)
	}

	if apt.StylistID != stylistID {
		return ErrAccessDenied
	}

	return nil
}

// stylistIDFor возвращает ID профиля стилиста для аккаунта
func (s *Service) stylistIDFor(ctx context.Context, userID int64) (int64, error) {
	stylistID, err := s.identityClient.StylistIDForUser(ctx, userID)
	if err != nil {
		if errors.Is(err, identityClient.ErrUserNotFound) {
			s.logger.Warn("stylistIDFor: user=%d has no stylist profile", userID)
			return 0, ErrAccessDenied
		}
		s.logger.Error("stylistIDFor: identity lookup failed for user=%d: %v", userID, err)
		return 0, fmt.Errorf("%w: stylistIDFor - identity lookup failed: %v", ErrInternal, err)
	}
	return stylistID, nil
}

func (s *Service) notifyAsync(ctx context.Context, apt *domain.Appointment, event string) {
	stylistName := ""
	if stylist, err := s.stylistRepo.GetByID(ctx, apt.StylistID); err == nil {
		stylistName = stylist.DisplayName
	}

	s.notifier.SendAppointmentEventAsync(notificationservice.AppointmentEvent{
		AppointmentID: apt.ID,
		Event:         event,
		CustomerID:    apt.CustomerID,
		CustomerName:  apt.CustomerName,
		StylistName:   stylistName,
		ServiceName:   apt.ServiceName,
		BookingDate:   apt.BookingDate.Format(domain.DateFormat),
		StartTime:     apt.StartTime.String(),
	})
}
