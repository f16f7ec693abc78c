package approve_payment

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

type PaymentService interface {
	Approve(ctx context.Context, paymentID int64, approverID int64) (*domain.Payment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
