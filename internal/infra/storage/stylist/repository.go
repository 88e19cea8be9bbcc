package stylist

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Repository репозиторий для работы со стилистами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория стилистов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// UpdateScheduleParams частичное обновление расписания и настроек стилиста
// nil-поля не изменяются
type UpdateScheduleParams struct {
	WorkingHoursStart *types.TimeString
	WorkingHoursEnd   *types.TimeString
	AcceptsWalkIns    *bool
	PriorityLevel     *int
	IsActive          *bool
}

// GetByID получает стилиста по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Stylist, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(stylistColumns...).
		From("stylists").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	st, err := scanStylist(row)
	if err == sql.ErrNoRows {
		return nil, ErrStylistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan stylist: %v", ErrScanRow, err)
	}

	return st, nil
}

// ListActive получает всех активных стилистов
func (r *Repository) ListActive(ctx context.Context) ([]*domain.Stylist, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(stylistColumns...).
		From("stylists").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("display_name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanStylists(rows)
}

// ListWalkInCandidates получает активных стилистов, принимающих записи без
// выбора мастера, в порядке приоритета.
//
// Порядок детерминирован: приоритет, затем имя, затем ID. От него зависит,
// кому из стилистов достанется клиент при прочих равных, поэтому ORDER BY
// здесь не декоративный.
func (r *Repository) ListWalkInCandidates(ctx context.Context) ([]*domain.Stylist, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(stylistColumns...).
		From("stylists").
		Where(squirrel.Eq{"is_active": true}).
		Where(squirrel.Eq{"accepts_walk_ins": true}).
		OrderBy("priority_level ASC", "display_name ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListWalkInCandidates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWalkInCandidates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanStylists(rows)
}

// UpdateSchedule частично обновляет расписание и настройки стилиста
func (r *Repository) UpdateSchedule(ctx context.Context, id int64, params UpdateScheduleParams) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("stylists").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if params.WorkingHoursStart != nil {
		updateBuilder = updateBuilder.Set("working_hours_start", *params.WorkingHoursStart)
	}
	if params.WorkingHoursEnd != nil {
		updateBuilder = updateBuilder.Set("working_hours_end", *params.WorkingHoursEnd)
	}
	if params.AcceptsWalkIns != nil {
		updateBuilder = updateBuilder.Set("accepts_walk_ins", *params.AcceptsWalkIns)
	}
	if params.PriorityLevel != nil {
		updateBuilder = updateBuilder.Set("priority_level", *params.PriorityLevel)
	}
	if params.IsActive != nil {
		updateBuilder = updateBuilder.Set("is_active", *params.IsActive)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStylistNotFound
	}

	return nil
}

var stylistColumns = []string{
	"id",
	"display_name",
	"bio",
	"experience_years",
	"working_hours_start",
	"working_hours_end",
	"accepts_walk_ins",
	"priority_level",
	"is_active",
	"created_at",
	"updated_at",
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanStylist(row rowScanner) (*domain.Stylist, error) {
	var st domain.Stylist
	var start, end sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&st.ID,
		&st.DisplayName,
		&st.Bio,
		&st.ExperienceYears,
		&start,
		&end,
		&st.AcceptsWalkIns,
		&st.PriorityLevel,
		&st.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if start.Valid {
		ts := types.TimeString(start.String)
		if len(ts) > 5 {
			ts = ts[:5]
		}
		st.WorkingHoursStart = &ts
	}
	if end.Valid {
		ts := types.TimeString(end.String)
		if len(ts) > 5 {
			ts = ts[:5]
		}
		st.WorkingHoursEnd = &ts
	}

	st.CreatedAt = createdAt.Time
	st.UpdatedAt = updatedAt.Time

	return &st, nil
}

// scanStylists сканирует результаты запроса в слайс стилистов
func (r *Repository) scanStylists(rows *sql.Rows) ([]*domain.Stylist, error) {
	stylists := make([]*domain.Stylist, 0)

	for rows.Next() {
		st, err := scanStylist(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanStylists - scan row: %v", ErrScanRow, err)
		}
		stylists = append(stylists, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanStylists - rows error: %v", ErrScanRow, err)
	}

	return stylists, nil
}
