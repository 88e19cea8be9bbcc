package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrServiceNotOffered is returned by ResolveTerms when the stylist has
// explicitly marked the service unavailable. Callers must surface this
// distinctly from "no free slots".
var ErrServiceNotOffered = errors.New("domain: stylist does not offer this service")

// Service is a salon menu item with its canonical duration and price.
type Service struct {
	ID              int64
	Name            string
	Description     string
	DurationMinutes int
	Price           decimal.Decimal
	IsActive        bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StylistService is the per-stylist override for one service. At most one
// override exists per (stylist, service) pair. Duration is mandatory;
// price is optional and falls back to the canonical service price.
type StylistService struct {
	ID              int64
	StylistID       int64
	ServiceID       int64
	DurationMinutes int
	PriceOverride   *decimal.Decimal
	IsAvailable     bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectivePrice returns the override price when set, otherwise the
// canonical service price.
func (ss *StylistService) EffectivePrice(service *Service) decimal.Decimal {
	if ss.PriceOverride != nil {
		return *ss.PriceOverride
	}
	return service.Price
}

// ServiceTerms is the effective duration and price of a (stylist, service)
// pair after overrides are applied.
type ServiceTerms struct {
	DurationMinutes int
	Price           decimal.Decimal
}

// ResolveTerms implements the duration resolution rule:
//   - no override          -> canonical duration and price
//   - override, available  -> override duration, override price or canonical
//   - override, unavailable-> ErrServiceNotOffered (NOT "use defaults")
func ResolveTerms(service *Service, override *StylistService) (ServiceTerms, error) {
	if override == nil {
		return ServiceTerms{
			DurationMinutes: service.DurationMinutes,
			Price:           service.Price,
		}, nil
	}
	if !override.IsAvailable {
		return ServiceTerms{}, ErrServiceNotOffered
	}
	return ServiceTerms{
		DurationMinutes: override.DurationMinutes,
		Price:           override.EffectivePrice(service),
	}, nil
}
