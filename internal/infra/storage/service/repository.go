package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с услугами и переопределениями стилистов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает услугу по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var svc domain.Service
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&svc.ID,
		&svc.Name,
		&svc.Description,
		&svc.DurationMinutes,
		&svc.Price,
		&svc.IsActive,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %v", ErrScanRow, err)
	}

	svc.CreatedAt = createdAt.Time
	svc.UpdatedAt = updatedAt.Time

	return &svc, nil
}

// ListActive получает все активные услуги салона
func (r *Repository) ListActive(ctx context.Context) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		var svc domain.Service
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&svc.ID,
			&svc.Name,
			&svc.Description,
			&svc.DurationMinutes,
			&svc.Price,
			&svc.IsActive,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan row: %v", ErrScanRow, err)
		}

		svc.CreatedAt = createdAt.Time
		svc.UpdatedAt = updatedAt.Time

		services = append(services, &svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// GetOverride получает переопределение услуги для стилиста
// Возвращает ErrOverrideNotFound, если пара (стилист, услуга) не настроена
func (r *Repository) GetOverride(ctx context.Context, stylistID, serviceID int64) (*domain.StylistService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"stylist_id",
		"service_id",
		"duration_minutes",
		"price_override",
		"is_available",
		"created_at",
		"updated_at",
	).
		From("stylist_services").
		Where(squirrel.Eq{"stylist_id": stylistID}).
		Where(squirrel.Eq{"service_id": serviceID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOverride - build select query: %v", ErrBuildQuery, err)
	}

	var override domain.StylistService
	var priceOverride decimal.NullDecimal
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&override.ID,
		&override.StylistID,
		&override.ServiceID,
		&override.DurationMinutes,
		&priceOverride,
		&override.IsAvailable,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrOverrideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverride - scan override: %v", ErrScanRow, err)
	}

	if priceOverride.Valid {
		override.PriceOverride = &priceOverride.Decimal
	}

	override.CreatedAt = createdAt.Time
	override.UpdatedAt = updatedAt.Time

	return &override, nil
}

var serviceColumns = []string{
	"id",
	"name",
	"description",
	"duration_minutes",
	"price",
	"is_active",
	"created_at",
	"updated_at",
}
