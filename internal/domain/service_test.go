package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

func TestResolveTerms_NoOverride(t *testing.T) {
	svc := &Service{DurationMinutes: 60, Price: decimal.NewFromInt(5000)}

	terms, err := ResolveTerms(svc, nil)
	require.NoError(t, err)
	assert.Equal(t, 60, terms.DurationMinutes)
	assert.True(t, terms.Price.Equal(decimal.NewFromInt(5000)))
}

func TestResolveTerms_OverrideDurationOnly(t *testing.T) {
	svc := &Service{DurationMinutes: 60, Price: decimal.NewFromInt(5000)}
	override := &StylistService{DurationMinutes: 90, IsAvailable: true}

	terms, err := ResolveTerms(svc, override)
	require.NoError(t, err)
	assert.Equal(t, 90, terms.DurationMinutes)
	// Цена без переопределения - стандартная
	assert.True(t, terms.Price.Equal(decimal.NewFromInt(5000)))
}

func TestResolveTerms_OverridePrice(t *testing.T) {
	svc := &Service{DurationMinutes: 60, Price: decimal.NewFromInt(5000)}
	override := &StylistService{
		DurationMinutes: 45,
		PriceOverride:   ptr.Ptr(decimal.NewFromInt(6500)),
		IsAvailable:     true,
	}

	terms, err := ResolveTerms(svc, override)
	require.NoError(t, err)
	assert.Equal(t, 45, terms.DurationMinutes)
	assert.True(t, terms.Price.Equal(decimal.NewFromInt(6500)))
}

func TestResolveTerms_NotOffered(t *testing.T) {
	svc := &Service{DurationMinutes: 60, Price: decimal.NewFromInt(5000)}
	override := &StylistService{DurationMinutes: 60, IsAvailable: false}

	// Явно отключенная услуга - это "не предоставляется", а не "по умолчанию"
	_, err := ResolveTerms(svc, override)
	assert.ErrorIs(t, err, ErrServiceNotOffered)
}
