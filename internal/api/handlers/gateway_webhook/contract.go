package gateway_webhook

import (
	"context"

	settleWebhook "github.com/m04kA/SMC-CourtBookingService/internal/usecase/settle_webhook"
)

type SettleWebhookUseCase interface {
	Execute(ctx context.Context, ev *settleWebhook.Event) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
