package record_payment

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

type PaymentService interface {
	Record(ctx context.Context, reservationID int64, amount decimal.Decimal, method domain.PaymentMethod) (*domain.Payment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
