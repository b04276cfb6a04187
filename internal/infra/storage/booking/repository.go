package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueBookingService/pkg/psqlbuilder"
)

// Колонки таблицы bookings в порядке сканирования
var bookingColumns = []string{
	"id",
	"hall_id",
	"customer_id",
	"event_type_id",
	"customer_name",
	"customer_phone",
	"event_date",
	"slot_id",
	"start_time",
	"end_time",
	"is_full_day",
	"total_amount",
	"paid_total",
	"status",
	"notes",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями залов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование вместе с календарными под-строками многодатной
// композиции. Если в контексте передана активная транзакция, использует её -
// создание с проверкой доступности слотов обязано идти в одной транзакции
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"hall_id",
			"customer_id",
			"event_type_id",
			"customer_name",
			"customer_phone",
			"event_date",
			"slot_id",
			"start_time",
			"end_time",
			"is_full_day",
			"total_amount",
			"paid_total",
			"status",
			"notes",
		).
		Values(
			booking.HallID,
			booking.CustomerID,
			booking.EventTypeID,
			booking.CustomerName,
			booking.CustomerPhone,
			booking.EventDate,
			booking.SlotID,
			booking.StartTime,
			booking.EndTime,
			booking.IsFullDay,
			booking.TotalAmount,
			booking.PaidTotal,
			booking.Status,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	// Календарные под-строки многодатного бронирования
	for i := range booking.Rows {
		row := &booking.Rows[i]
		row.BookingID = booking.ID

		rowQuery, rowArgs, err := psqlbuilder.Insert("booking_dates").
			Columns("booking_id", "date", "slot_id", "is_full_day").
			Values(row.BookingID, row.Date, row.SlotID, row.IsFullDay).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: Create - build date row insert: %v", ErrBuildQuery, err)
		}

		if err := executor.QueryRowContext(ctx, rowQuery, rowArgs...).Scan(&row.ID); err != nil {
			return nil, fmt.Errorf("%w: Create - insert date row: %v", ErrExecQuery, err)
		}
	}

	return booking, nil
}

// GetByID получает бронирование по ID вместе с календарными строками и оплатами
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	if err := r.loadDateRows(ctx, executor, []*domain.Booking{booking}); err != nil {
		return nil, err
	}

	return booking, nil
}

// GetPayments получает оплаты по бронированию в порядке внесения
func (r *Repository) GetPayments(ctx context.Context, bookingID int64) ([]domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "booking_id", "amount", "method", "paid_at").
		From("payments").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("paid_at ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetPayments - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetPayments - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	payments := make([]domain.Payment, 0)
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.BookingID, &p.Amount, &p.Method, &p.PaidAt); err != nil {
			return nil, fmt.Errorf("%w: GetPayments - scan payment: %v", ErrScanRow, err)
		}
		payments = append(payments, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetPayments - rows error: %v", ErrScanRow, err)
	}

	return payments, nil
}

// GetRange получает бронирования, занимающие хотя бы одну дату периода
// Попадание определяется и по основной дате, и по календарным под-строкам
// многодатных бронирований. Внутри транзакции с фильтром по залу строки
// блокируются (FOR UPDATE) - для сценария создания бронирования
func (r *Repository) GetRange(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(prefixColumns("b", bookingColumns)...).
		From("bookings b")

	if filter.HallID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.hall_id": *filter.HallID})
	}

	// Период: основная дата либо любая календарная под-строка внутри периода
	if filter.StartDate != nil && filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.And{
				squirrel.GtOrEq{"b.event_date": *filter.StartDate},
				squirrel.LtOrEq{"b.event_date": *filter.EndDate},
			},
			squirrel.Expr(
				"EXISTS (SELECT 1 FROM booking_dates bd WHERE bd.booking_id = b.id AND bd.date >= ? AND bd.date <= ?)",
				*filter.StartDate, *filter.EndDate,
			),
		})
	} else if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"b.event_date": *filter.StartDate})
	} else if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"b.event_date": *filter.EndDate})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.status": *filter.Status})
	} else if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"b.status": string(domain.StatusCancelled)})
	}

	selectBuilder = selectBuilder.OrderBy("b.event_date ASC, b.id ASC")

	// Блокировка строк при проверке доступности в транзакции создания
	if dbmetrics.IsInTransaction(ctx) && filter.HallID != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF b")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := r.scanBookings(rows)
	if err != nil {
		return nil, err
	}

	if err := r.loadDateRows(ctx, executor, bookings); err != nil {
		return nil, err
	}

	return bookings, nil
}

// GetByCustomer получает бронирования клиента, опционально по статусу
func (r *Repository) GetByCustomer(ctx context.Context, customerID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("event_date DESC, id DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomer - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomer - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := r.scanBookings(rows)
	if err != nil {
		return nil, err
	}

	if err := r.loadDateRows(ctx, executor, bookings); err != nil {
		return nil, err
	}

	return bookings, nil
}

// GetCancelledBetween получает бронирования, отменённые в указанном периоде
// Ось выборки - дата отмены, а не дата мероприятия: так отчёты показывают,
// когда клиенты отказались, независимо от того, на когда была бронь
func (r *Repository) GetCancelledBetween(ctx context.Context, from, to time.Time, hallID *int64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"status": string(domain.StatusCancelled)}).
		Where(squirrel.GtOrEq{"cancelled_at": from}).
		Where(squirrel.LtOrEq{"cancelled_at": to}).
		OrderBy("cancelled_at ASC, id ASC")

	if hallID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"hall_id": *hallID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetCancelledBetween - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetCancelledBetween - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// Cancel помечает бронирование отменённым и фиксирует дату отмены
// Физического удаления нет: отчёты фильтруют отменённые по дате отмены
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Cancel")
}

// Settle закрывает расчёт: выплачено = всего, статус settled
func (r *Repository) Settle(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("paid_total", squirrel.Expr("total_amount")).
		Set("status", domain.StatusSettled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Settle - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Settle")
}

// AddPayment добавляет оплату и обновляет агрегаты бронирования
// paidTotal и status вычисляются сервисным слоем (с клампом paid <= total)
func (r *Repository) AddPayment(ctx context.Context, payment *domain.Payment, paidTotal float64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertQuery, insertArgs, err := psqlbuilder.Insert("payments").
		Columns("booking_id", "amount", "method", "paid_at").
		Values(payment.BookingID, payment.Amount, payment.Method, payment.PaidAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: AddPayment - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, insertQuery, insertArgs...).Scan(&payment.ID); err != nil {
		return fmt.Errorf("%w: AddPayment - insert payment: %v", ErrExecQuery, err)
	}

	updateQuery, updateArgs, err := psqlbuilder.Update("bookings").
		Set("paid_total", paidTotal).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": payment.BookingID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: AddPayment - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, updateQuery, updateArgs, "AddPayment")
}

// Вспомогательные методы

func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.HallID,
		&booking.CustomerID,
		&booking.EventTypeID,
		&booking.CustomerName,
		&booking.CustomerPhone,
		&booking.EventDate,
		&booking.SlotID,
		&booking.StartTime,
		&booking.EndTime,
		&booking.IsFullDay,
		&booking.TotalAmount,
		&booking.PaidTotal,
		&booking.Status,
		&booking.Notes,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// loadDateRows догружает календарные под-строки для выбранных бронирований
func (r *Repository) loadDateRows(ctx context.Context, executor DBExecutor, bookings []*domain.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	ids := make([]int64, len(bookings))
	byID := make(map[int64]*domain.Booking, len(bookings))
	for i, b := range bookings {
		ids[i] = b.ID
		byID[b.ID] = b
	}

	query, args, err := psqlbuilder.Select("id", "booking_id", "date", "slot_id", "is_full_day").
		From("booking_dates").
		Where(squirrel.Eq{"booking_id": ids}).
		OrderBy("date ASC, id ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadDateRows - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadDateRows - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var row domain.BookingDate
		if err := rows.Scan(&row.ID, &row.BookingID, &row.Date, &row.SlotID, &row.IsFullDay); err != nil {
			return fmt.Errorf("%w: loadDateRows - scan row: %v", ErrScanRow, err)
		}
		if b, ok := byID[row.BookingID]; ok {
			b.Rows = append(b.Rows, row)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadDateRows - rows error: %v", ErrScanRow, err)
	}

	return nil
}

// prefixColumns добавляет алиас таблицы к именам колонок
func prefixColumns(alias string, columns []string) []string {
	prefixed := make([]string, len(columns))
	for i, c := range columns {
		prefixed[i] = alias + "." + c
	}
	return prefixed
}
