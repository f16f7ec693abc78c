package addon

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtBookingService/pkg/psqlbuilder"
)

// Repository репозиторий каталога дополнений и позиций брони
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория дополнений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает позицию каталога по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.AddOn, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"company_id",
		"name",
		"price",
		"stock_quantity",
		"is_active",
	).
		From("addons").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var a domain.AddOn
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&a.ID,
		&a.CompanyID,
		&a.Name,
		&a.Price,
		&a.StockQuantity,
		&a.IsActive,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAddOnNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan addon: %v", ErrScanRow, err)
	}

	return &a, nil
}

// CreateReservationAddOn создает позицию брони с зафиксированной ценой.
// price_snapshot записывается один раз и больше никогда не пересчитывается.
func (r *Repository) CreateReservationAddOn(ctx context.Context, item *domain.ReservationAddOn) (*domain.ReservationAddOn, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservation_addons").
		Columns(
			"reservation_id",
			"addon_id",
			"quantity",
			"price_snapshot",
		).
		Values(
			item.ReservationID,
			item.AddOnID,
			item.Quantity,
			item.PriceSnapshot,
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateReservationAddOn - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&item.ID); err != nil {
		return nil, fmt.Errorf("%w: CreateReservationAddOn - execute insert: %v", ErrExecQuery, err)
	}

	return item, nil
}

// ListByReservationID получает все позиции брони
func (r *Repository) ListByReservationID(ctx context.Context, reservationID int64) ([]*domain.ReservationAddOn, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"reservation_id",
		"addon_id",
		"quantity",
		"price_snapshot",
	).
		From("reservation_addons").
		Where(squirrel.Eq{"reservation_id": reservationID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByReservationID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByReservationID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]*domain.ReservationAddOn, 0)
	for rows.Next() {
		var item domain.ReservationAddOn
		err := rows.Scan(
			&item.ID,
			&item.ReservationID,
			&item.AddOnID,
			&item.Quantity,
			&item.PriceSnapshot,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByReservationID - scan row: %v", ErrScanRow, err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByReservationID - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}
