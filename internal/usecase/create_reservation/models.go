package create_reservation

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request модель запроса на создание брони.
// Временные метки уже нормализованы к канонической зоне (UTC) на уровне handler.
type Request struct {
	CourtID   int64
	UserID    int64
	UserEmail string
	StartTime time.Time
	EndTime   time.Time
}

// Response модель ответа: созданная бронь плюс данные платёжного шлюза
type Response struct {
	ID      int64
	CourtID int64
	UserID  int64

	StartTime time.Time
	EndTime   time.Time

	SubtotalCourt  decimal.Decimal
	SubtotalAddons decimal.Decimal
	TotalPrice     decimal.Decimal
	AmountPaid     decimal.Decimal
	AmountPending  decimal.Decimal

	Status    string
	CreatedAt time.Time

	PreferenceID string
	PaymentURL   string
}
