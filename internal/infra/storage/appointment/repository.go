package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

// Код ошибки PostgreSQL для нарушения уникальности
const pgUniqueViolation = "23505"

// Repository репозиторий для работы с записями на услуги
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Иначе выполняет обычный запрос без транзакции.
//
// Частичный уникальный индекс по (stylist_id, booking_date, start_time) для
// активных статусов превращает гонку двух одновременных бронирований в
// ошибку 23505, которую мы мапим в ErrTimeSlotTaken.
func (r *Repository) Create(ctx context.Context, apt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"kind",
			"stylist_id",
			"customer_id",
			"customer_name",
			"customer_phone",
			"service_id",
			"booking_date",
			"start_time",
			"duration_minutes",
			"status",
			"requires_payment",
			"payment_intent_id",
			"total_amount",
			"service_name",
			"notes",
		).
		Values(
			apt.Kind,
			apt.StylistID,
			apt.CustomerID,
			apt.CustomerName,
			apt.CustomerPhone,
			apt.ServiceID,
			apt.BookingDate,
			apt.StartTime,
			apt.DurationMinutes,
			apt.Status,
			apt.RequiresPayment,
			apt.PaymentIntentID,
			apt.TotalAmount,
			apt.ServiceName,
			apt.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&apt.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, fmt.Errorf("%w: Create: %v", ErrTimeSlotTaken, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	apt.CreatedAt = createdAt.Time
	apt.UpdatedAt = updatedAt.Time

	return apt, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	apt, err := scanAppointment(row)
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return apt, nil
}

// GetByCustomerID получает список записей клиента
// Опционально фильтрует по статусу
func (r *Repository) GetByCustomerID(ctx context.Context, customerID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("booking_date DESC, start_time DESC")

	// Фильтрация по статусу, если указан
	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// GetByStylistWithFilter получает записи стилиста с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу и включению неактивных записей
func (r *Repository) GetByStylistWithFilter(ctx context.Context, filter domain.StylistAppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"stylist_id": filter.StylistID})

	// Фильтрация по периоду
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": *filter.EndDate})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		// Если не указан конкретный статус и не нужны неактивные - только занимающие слот
		blockingStatusStrings := make([]string, len(domain.BlockingStatuses))
		for i, s := range domain.BlockingStatuses {
			blockingStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": blockingStatusStrings})
	}

	// Для конкретной даты сортируем по времени начала, иначе сначала новые
	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate) {
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("booking_date DESC, start_time DESC")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStylistWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStylistWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// ListBlockingForDay получает активные записи стилиста на дату с актуальной
// длительностью каждой записи.
//
// Длительность не читается как есть: для записей с service_id она
// пересчитывается из текущего переопределения стилиста (или стандартной
// длительности услуги), поэтому правка переопределения задним числом двигает
// занятые интервалы. Записи без service_id (ручные) используют сохраненное
// значение.
//
// Если вызов происходит внутри транзакции, строки блокируются через
// FOR UPDATE (для usecase создания записи, защита от race condition).
func (r *Repository) ListBlockingForDay(ctx context.Context, stylistID int64, date time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	blockingStatusStrings := make([]string, len(domain.BlockingStatuses))
	for i, s := range domain.BlockingStatuses {
		blockingStatusStrings[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(
		"a.id",
		"a.kind",
		"a.stylist_id",
		"a.customer_id",
		"a.customer_name",
		"a.customer_phone",
		"a.service_id",
		"a.booking_date",
		"a.start_time",
		"COALESCE(ss.duration_minutes, s.duration_minutes, a.duration_minutes) AS duration_minutes",
		"a.status",
		"a.requires_payment",
		"a.payment_intent_id",
		"a.total_amount",
		"a.service_name",
		"a.notes",
		"a.cancellation_reason",
		"a.cancelled_at",
		"a.created_at",
		"a.updated_at",
	).
		From("appointments a").
		LeftJoin("services s ON s.id = a.service_id").
		LeftJoin("stylist_services ss ON ss.stylist_id = a.stylist_id AND ss.service_id = a.service_id").
		Where(squirrel.Eq{"a.stylist_id": stylistID}).
		Where(squirrel.Eq{"a.booking_date": date}).
		Where(squirrel.Eq{"a.status": blockingStatusStrings}).
		OrderBy("a.start_time ASC")

	// FOR UPDATE несовместим с nullable-стороной внешнего join,
	// блокируем только строки appointments
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF a")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockingForDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockingForDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// MarkPaid переводит запись в статус PAID и сохраняет идентификатор платежа
func (r *Repository) MarkPaid(ctx context.Context, id int64, paymentIntentID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusPaid).
		Set("payment_intent_id", paymentIntentID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkPaid - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkPaid - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkPaid - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// Cancel отменяет запись с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// Delete физически удаляет запись
// Используется как компенсация при ошибке создания платежной сессии,
// в остальных случаях предпочтителен Cancel для сохранения истории
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

var appointmentColumns = []string{
	"id",
	"kind",
	"stylist_id",
	"customer_id",
	"customer_name",
	"customer_phone",
	"service_id",
	"booking_date",
	"start_time",
	"duration_minutes",
	"status",
	"requires_payment",
	"payment_intent_id",
	"total_amount",
	"service_name",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var apt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&apt.ID,
		&apt.Kind,
		&apt.StylistID,
		&apt.CustomerID,
		&apt.CustomerName,
		&apt.CustomerPhone,
		&apt.ServiceID,
		&apt.BookingDate,
		&apt.StartTime,
		&apt.DurationMinutes,
		&apt.Status,
		&apt.RequiresPayment,
		&apt.PaymentIntentID,
		&apt.TotalAmount,
		&apt.ServiceName,
		&apt.Notes,
		&apt.CancellationReason,
		&apt.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	apt.CreatedAt = createdAt.Time
	apt.UpdatedAt = updatedAt.Time

	return &apt, nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		apt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, apt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
