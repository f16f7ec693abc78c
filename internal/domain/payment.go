package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the status of a payment attempt
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentApproved PaymentStatus = "approved"
	PaymentRejected PaymentStatus = "rejected"
)

// PaymentMethod способ оплаты
type PaymentMethod string

const (
	MethodTransfer PaymentMethod = "transfer"
	MethodCard     PaymentMethod = "card"
	MethodCash     PaymentMethod = "cash"
	MethodGateway  PaymentMethod = "gateway"
)

// Payment is one payment attempt (manual or gateway) against a reservation.
//
// TransactionID holds the external gateway payment identifier for gateway
// payments and is the idempotency key for webhook-driven settlement.
// Approving a payment increments the owning reservation's paid balance;
// there is no reversal path once approved.
type Payment struct {
	ID            int64
	ReservationID int64
	Amount        decimal.Decimal
	Method        PaymentMethod
	Status        PaymentStatus
	TransactionID string

	CreatedAt  time.Time
	ApprovedAt *time.Time
	ApprovedBy *int64
}

// IsApproved returns true if the payment has been approved
func (p *Payment) IsApproved() bool {
	return p.Status == PaymentApproved
}
