package record_payment

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// RecordPaymentRequest HTTP request model
type RecordPaymentRequest struct {
	Amount string `json:"amount"` // "150.00"
	Method string `json:"method"` // transfer | card | cash
}

// PaymentResponse HTTP response model
type PaymentResponse struct {
	ID            int64  `json:"id"`
	ReservationID int64  `json:"reservationId"`
	Amount        string `json:"amount"`
	Method        string `json:"method"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
}

// FromDomainPayment конвертирует доменный платёж в HTTP response
func FromDomainPayment(p *domain.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:            p.ID,
		ReservationID: p.ReservationID,
		Amount:        p.Amount.StringFixed(domain.MoneyScale),
		Method:        string(p.Method),
		Status:        string(p.Status),
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
}
