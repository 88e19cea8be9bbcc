package bookinglinks

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	linkRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/bookinglink"
	stylistRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/stylist"
	identityClient "github.com/m04kA/SMC-SalonService/internal/integrations/identityservice"
	"github.com/m04kA/SMC-SalonService/internal/service/bookinglinks/models"
)

// Service сервис персональных ссылок стилистов для записи
type Service struct {
	linkRepo       BookingLinkRepository
	stylistRepo    StylistRepository
	identityClient IdentityClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса ссылок
func NewService(
	linkRepo BookingLinkRepository,
	stylistRepo StylistRepository,
	identityClient IdentityClient,
	logger Logger,
) *Service {
	return &Service{
		linkRepo:       linkRepo,
		stylistRepo:    stylistRepo,
		identityClient: identityClient,
		logger:         logger,
	}
}

// GetOrCreate возвращает ссылку стилиста, создавая её при первом обращении
func (s *Service) GetOrCreate(ctx context.Context, userID int64) (*models.BookingLinkResponse, error) {
	stylistID, err := s.stylistIDFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	link, err := s.linkRepo.GetByStylistID(ctx, stylistID)
	if err == nil {
		return models.FromDomainBookingLink(link), nil
	}
	if !errors.Is(err, linkRepo.ErrLinkNotFound) {
		s.logger.Error("GetOrCreate: repository error for stylist=%d: %v", stylistID, err)
		return nil, fmt.Errorf("%w: GetOrCreate - repository error: %v", ErrInternal, err)
	}

	created, err := s.linkRepo.Create(ctx, &domain.BookingLink{
		StylistID:         stylistID,
		Code:              uuid.NewString(),
		IsActive:          true,
		MaxAdvanceDays:    domain.DefaultBookingLinkAdvanceDays,
		AllowGuestBooking: true,
	})
	if err != nil {
		s.logger.Error("GetOrCreate: failed to create link for stylist=%d: %v", stylistID, err)
		return nil, fmt.Errorf("%w: GetOrCreate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetOrCreate: created booking link for stylist=%d", stylistID)
	return models.FromDomainBookingLink(created), nil
}

// Regenerate заменяет код ссылки стилиста
// Старый код сразу перестает действовать, записи по нему не затрагиваются
func (s *Service) Regenerate(ctx context.Context, userID int64) (*models.BookingLinkResponse, error) {
	stylistID, err := s.stylistIDFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Гарантируем существование ссылки до замены кода
	if _, err := s.GetOrCreate(ctx, userID); err != nil {
		return nil, err
	}

	newCode := uuid.NewString()
	if err := s.linkRepo.UpdateCode(ctx, stylistID, newCode); err != nil {
		s.logger.Error("Regenerate: failed to update code for stylist=%d: %v", stylistID, err)
		return nil, fmt.Errorf("%w: Regenerate - repository error: %v", ErrInternal, err)
	}

	link, err := s.linkRepo.GetByStylistID(ctx, stylistID)
	if err != nil {
		s.logger.Error("Regenerate: repository error for stylist=%d: %v", stylistID, err)
		return nil, fmt.Errorf("%w: Regenerate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Regenerate: regenerated booking link for stylist=%d", stylistID)
	return models.FromDomainBookingLink(link), nil
}

// ResolveCode возвращает публичные данные страницы записи по коду ссылки
func (s *Service) ResolveCode(ctx context.Context, code string) (*models.BookingPageResponse, error) {
	link, err := s.linkRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, linkRepo.ErrLinkNotFound) {
			s.logger.Warn("ResolveCode: code not found")
			return nil, ErrLinkNotFound
		}
		s.logger.Error("ResolveCode: repository error: %v", err)
		return nil, fmt.Errorf("%w: ResolveCode - repository error: %v", ErrInternal, err)
	}

	if !link.IsActive {
		s.logger.Warn("ResolveCode: link for stylist=%d is inactive", link.StylistID)
		return nil, ErrLinkInactive
	}

	stylist, err := s.stylistRepo.GetByID(ctx, link.StylistID)
	if err != nil {
		if errors.Is(err, stylistRepo.ErrStylistNotFound) {
			return nil, ErrLinkNotFound
		}
		s.logger.Error("ResolveCode: repository error for stylist=%d: %v", link.StylistID, err)
		return nil, fmt.Errorf("%w: ResolveCode - repository error: %v", ErrInternal, err)
	}

	if !stylist.IsActive {
		s.logger.Warn("ResolveCode: stylist=%d is inactive", link.StylistID)
		return nil, ErrLinkInactive
	}

	return &models.BookingPageResponse{
		StylistID:         stylist.ID,
		StylistName:       stylist.DisplayName,
		Bio:               stylist.Bio,
		MaxAdvanceDays:    link.MaxAdvanceDays,
		AllowGuestBooking: link.AllowGuestBooking,
	}, nil
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
