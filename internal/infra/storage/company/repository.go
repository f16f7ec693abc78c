package company

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtBookingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// Repository репозиторий для работы с компаниями и их расписанием
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория компаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает компанию по ID вместе с лицензией
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"c.id",
		"c.name",
		"c.advance_payment_percentage",
		"c.address",
		"c.created_at",
		"l.id",
		"l.license_key",
		"l.license_type",
		"l.status",
		"l.start_date",
		"l.end_date",
	).
		From("companies c").
		Join("licenses l ON l.id = c.license_id").
		Where(squirrel.Eq{"c.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var company domain.Company
	var license domain.License
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&company.ID,
		&company.Name,
		&company.AdvancePaymentPercentage,
		&company.Address,
		&createdAt,
		&license.ID,
		&license.LicenseKey,
		&license.LicenseType,
		&license.Status,
		&license.StartDate,
		&license.EndDate,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCompanyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan company: %v", ErrScanRow, err)
	}

	company.CreatedAt = createdAt.Time
	company.License = &license

	return &company, nil
}

// GetBusinessHour получает расписание компании на день недели.
// Отсутствие строки означает, что компания закрыта в этот день.
func (r *Repository) GetBusinessHour(ctx context.Context, companyID int64, weekday time.Weekday) (*domain.BusinessHour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"company_id",
		"weekday",
		"open_time",
		"close_time",
	).
		From("business_hours").
		Where(squirrel.Eq{"company_id": companyID, "weekday": int(weekday)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBusinessHour - build select query: %v", ErrBuildQuery, err)
	}

	var hour domain.BusinessHour
	var weekdayInt int
	var openRaw, closeRaw string

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&hour.ID,
		&hour.CompanyID,
		&weekdayInt,
		&openRaw,
		&closeRaw,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBusinessHourNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBusinessHour - scan business hour: %v", ErrScanRow, err)
	}

	hour.Weekday = time.Weekday(weekdayInt)

	// Колонки TIME приходят из PostgreSQL как HH:MM:SS
	if hour.OpenTime, err = types.ParseDBTime(openRaw); err != nil {
		return nil, fmt.Errorf("%w: GetBusinessHour - parse open_time: %v", ErrScanRow, err)
	}
	if hour.CloseTime, err = types.ParseDBTime(closeRaw); err != nil {
		return nil, fmt.Errorf("%w: GetBusinessHour - parse close_time: %v", ErrScanRow, err)
	}

	return &hour, nil
}
