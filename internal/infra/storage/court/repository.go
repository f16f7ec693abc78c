package court

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtBookingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// Repository репозиторий для работы с кортами и их тарифами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория кортов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает корт по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"company_id",
		"court_type_id",
		"name",
		"is_active",
	).
		From("courts").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var court domain.Court
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&court.ID,
		&court.CompanyID,
		&court.CourtTypeID,
		&court.Name,
		&court.IsActive,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCourtNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan court: %v", ErrScanRow, err)
	}

	return &court, nil
}

// GetPrices получает тарифную таблицу для типа корта компании.
// Каждая строка приходит вместе со своим тарифным окном (time_slot).
func (r *Repository) GetPrices(ctx context.Context, companyID, courtTypeID int64) ([]*domain.CourtTypePrice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"p.id",
		"p.company_id",
		"p.court_type_id",
		"p.time_slot_id",
		"p.price_per_hour",
		"s.id",
		"s.company_id",
		"s.name",
		"s.start_time",
		"s.end_time",
	).
		From("court_type_prices p").
		Join("time_slots s ON s.id = p.time_slot_id").
		Where(squirrel.Eq{"p.company_id": companyID, "p.court_type_id": courtTypeID}).
		OrderBy("s.start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetPrices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetPrices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	prices := make([]*domain.CourtTypePrice, 0)
	for rows.Next() {
		var price domain.CourtTypePrice
		var startRaw, endRaw string

		err := rows.Scan(
			&price.ID,
			&price.CompanyID,
			&price.CourtTypeID,
			&price.TimeSlotID,
			&price.PricePerHour,
			&price.Slot.ID,
			&price.Slot.CompanyID,
			&price.Slot.Name,
			&startRaw,
			&endRaw,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetPrices - scan price row: %v", ErrScanRow, err)
		}

		if price.Slot.StartTime, err = types.ParseDBTime(startRaw); err != nil {
			return nil, fmt.Errorf("%w: GetPrices - parse slot start_time: %v", ErrScanRow, err)
		}
		if price.Slot.EndTime, err = types.ParseDBTime(endRaw); err != nil {
			return nil, fmt.Errorf("%w: GetPrices - parse slot end_time: %v", ErrScanRow, err)
		}

		prices = append(prices, &price)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetPrices - rows error: %v", ErrScanRow, err)
	}

	return prices, nil
}
