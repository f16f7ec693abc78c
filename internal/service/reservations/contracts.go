package reservations

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Reservation, error)
	UpdateTotals(ctx context.Context, res *domain.Reservation) error
}

// AddOnRepository интерфейс репозитория доп. услуг
type AddOnRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.AddOn, error)
	CreateReservationAddOn(ctx context.Context, item *domain.ReservationAddOn) (*domain.ReservationAddOn, error)
	ListByReservationID(ctx context.Context, reservationID int64) ([]*domain.ReservationAddOn, error)
}

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

// CompanyRepository интерфейс репозитория компаний
type CompanyRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Company, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
