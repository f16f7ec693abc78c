package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

// CompanyRepository интерфейс репозитория компаний
type CompanyRepository interface {
	GetBusinessHour(ctx context.Context, companyID int64, weekday time.Weekday) (*domain.BusinessHour, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	ListByCourtAndDate(ctx context.Context, courtID int64, date time.Time) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
