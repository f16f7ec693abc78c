package approve_payment

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/pkg/ptr"
)

// PaymentResponse HTTP response model
type PaymentResponse struct {
	ID            int64   `json:"id"`
	ReservationID int64   `json:"reservationId"`
	Amount        string  `json:"amount"`
	Method        string  `json:"method"`
	Status        string  `json:"status"`
	ApprovedBy    *int64  `json:"approvedBy,omitempty"`
	ApprovedAt    *string `json:"approvedAt,omitempty"`
	CreatedAt     string  `json:"createdAt"`
}

// FromDomainPayment конвертирует доменный платёж в HTTP response
func FromDomainPayment(p *domain.Payment) *PaymentResponse {
	resp := &PaymentResponse{
		ID:            p.ID,
		ReservationID: p.ReservationID,
		Amount:        p.Amount.StringFixed(domain.MoneyScale),
		Method:        string(p.Method),
		Status:        string(p.Status),
		ApprovedBy:    p.ApprovedBy,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
	if p.ApprovedAt != nil {
		resp.ApprovedAt = ptr.Ptr(p.ApprovedAt.Format(time.RFC3339))
	}
	return resp
}
