package quote

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CourtBookingService/internal/service/pricing"
)

// Request модель запроса на расчёт стоимости
type Request struct {
	CourtID   int64
	StartTime time.Time
	EndTime   time.Time
}

// Response модель ответа с расчётом стоимости
type Response struct {
	CourtName     string
	TotalPrice    decimal.Decimal
	Currency      string
	DurationHours float64
	Breakdown     []pricing.BreakdownEntry
}
