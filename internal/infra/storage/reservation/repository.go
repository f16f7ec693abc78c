package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtBookingService/pkg/psqlbuilder"
)

var reservationColumns = []string{
	"id",
	"court_id",
	"user_id",
	"start_time",
	"end_time",
	"subtotal_court",
	"subtotal_addons",
	"total_price",
	"amount_paid",
	"amount_pending",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями кортов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую бронь. Производные суммы (total_price, amount_pending)
// должны быть пересчитаны вызывающим кодом до вставки (Reservation.Recompute).
// Если в контексте есть активная транзакция, вставка выполняется внутри неё.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"court_id",
			"user_id",
			"start_time",
			"end_time",
			"subtotal_court",
			"subtotal_addons",
			"total_price",
			"amount_paid",
			"amount_pending",
			"status",
		).
		Values(
			res.CourtID,
			res.UserID,
			res.StartTime,
			res.EndTime,
			res.SubtotalCourt,
			res.SubtotalAddons,
			res.TotalPrice,
			res.AmountPaid,
			res.AmountPending,
			res.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID получает бронь по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate получает бронь по ID с эксклюзивной блокировкой строки.
// Обязан вызываться внутри транзакции: блокировка сериализует конкурентные
// вебхуки и ручные подтверждения платежей по одной и той же брони.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Reservation, error) {
	return r.getByID(ctx, id, true)
}

func (r *Repository) getByID(ctx context.Context, id int64, forUpdate bool) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id})

	if forUpdate && dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// UpdateTotals сохраняет пересчитанные суммы и статус брони.
// Единственный путь записи производных значений: вызывающий код обязан
// выполнить Reservation.Recompute перед сохранением.
func (r *Repository) UpdateTotals(ctx context.Context, res *domain.Reservation) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("subtotal_court", res.SubtotalCourt).
		Set("subtotal_addons", res.SubtotalAddons).
		Set("total_price", res.TotalPrice).
		Set("amount_paid", res.AmountPaid).
		Set("amount_pending", res.AmountPending).
		Set("status", res.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": res.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateTotals - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateTotals - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateTotals - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// ListByCourtAndDate получает занятые интервалы корта на календарную дату.
// Возвращаются только активные брони (voided не занимают корт).
// Чтение без блокировок: проекция доступности терпима к гонкам.
func (r *Repository) ListByCourtAndDate(ctx context.Context, courtID int64, date time.Time) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	statuses := make([]string, len(domain.ActiveReservationStatuses))
	for i, s := range domain.ActiveReservationStatuses {
		statuses[i] = string(s)
	}

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"court_id": courtID}).
		Where(squirrel.GtOrEq{"start_time": dayStart}).
		Where(squirrel.Lt{"start_time": dayEnd}).
		Where(squirrel.Eq{"status": statuses}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByCourtAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCourtAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByCourtAndDate - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByCourtAndDate - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.CourtID,
		&res.UserID,
		&res.StartTime,
		&res.EndTime,
		&res.SubtotalCourt,
		&res.SubtotalAddons,
		&res.TotalPrice,
		&res.AmountPaid,
		&res.AmountPending,
		&res.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}
