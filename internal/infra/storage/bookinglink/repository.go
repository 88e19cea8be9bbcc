package bookinglink

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с персональными ссылками для записи
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория ссылок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает ссылку для стилиста
func (r *Repository) Create(ctx context.Context, link *domain.BookingLink) (*domain.BookingLink, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_links").
		Columns(
			"stylist_id",
			"code",
			"is_active",
			"max_advance_days",
			"allow_guest_booking",
		).
		Values(
			link.StylistID,
			link.Code,
			link.IsActive,
			link.MaxAdvanceDays,
			link.AllowGuestBooking,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&link.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	link.CreatedAt = createdAt.Time
	link.UpdatedAt = updatedAt.Time

	return link, nil
}

// GetByStylistID получает ссылку стилиста
func (r *Repository) GetByStylistID(ctx context.Context, stylistID int64) (*domain.BookingLink, error) {
	return r.getOne(ctx, squirrel.Eq{"stylist_id": stylistID}, "GetByStylistID")
}

// GetByCode получает ссылку по коду
// Код уникален, поиск не ограничен активными ссылками: деактивация
// обрабатывается на уровне usecase с внятной ошибкой
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.BookingLink, error) {
	return r.getOne(ctx, squirrel.Eq{"code": code}, "GetByCode")
}

// UpdateCode заменяет код ссылки
// Старый код сразу перестает действовать, существующие записи не затрагиваются
func (r *Repository) UpdateCode(ctx context.Context, stylistID int64, code string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("booking_links").
		Set("code", code).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"stylist_id": stylistID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateCode - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateCode - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateCode - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrLinkNotFound
	}

	return nil
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, op string) (*domain.BookingLink, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"stylist_id",
		"code",
		"is_active",
		"max_advance_days",
		"allow_guest_booking",
		"created_at",
		"updated_at",
	).
		From("booking_links").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var link domain.BookingLink
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&link.ID,
		&link.StylistID,
		&link.Code,
		&link.IsActive,
		&link.MaxAdvanceDays,
		&link.AllowGuestBooking,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrLinkNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking link: %v", ErrScanRow, op, err)
	}

	link.CreatedAt = createdAt.Time
	link.UpdatedAt = updatedAt.Time

	return &link, nil
}
