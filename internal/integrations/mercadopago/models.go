package mercadopago

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// PreferenceItem позиция платёжного запроса
type PreferenceItem struct {
	Title      string      `json:"title"`
	Quantity   int         `json:"quantity"`
	CurrencyID string      `json:"currency_id"`
	UnitPrice  json.Number `json:"unit_price"`
}

// PreferencePayer плательщик
type PreferencePayer struct {
	Email string `json:"email"`
}

// BackURLs адреса возврата после оплаты
type BackURLs struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending"`
}

// PreferenceRequest запрос на создание платёжной preference.
// external_reference — ID брони: шлюз вернёт его в данных платежа,
// по нему вебхук находит бронь для зачисления.
type PreferenceRequest struct {
	Items             []PreferenceItem `json:"items"`
	Payer             PreferencePayer  `json:"payer"`
	BackURLs          BackURLs         `json:"back_urls"`
	AutoReturn        string           `json:"auto_return"`
	ExternalReference string           `json:"external_reference"`
	NotificationURL   string           `json:"notification_url"`
}

// Preference ответ шлюза на создание preference
type Preference struct {
	ID               string `json:"id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point"`
}

// PaymentInfo данные платежа из шлюза
type PaymentInfo struct {
	ID                json.Number     `json:"id"`
	Status            string          `json:"status"`
	ExternalReference string          `json:"external_reference"`
	TransactionAmount decimal.Decimal `json:"transaction_amount"`
}

// StatusApproved статус одобренного платежа в терминах шлюза
const StatusApproved = "approved"

// IsApproved возвращает true для одобренного платежа
func (p *PaymentInfo) IsApproved() bool {
	return p.Status == StatusApproved
}
