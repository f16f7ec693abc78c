package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ReservationStatus represents the lifecycle state of a reservation
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCompleted ReservationStatus = "completed"
	ReservationVoided    ReservationStatus = "voided"
)

var (
	// ErrInvalidTimeRange возвращается, когда start_time >= end_time
	ErrInvalidTimeRange = errors.New("domain: start_time must be before end_time")
)

// Reservation is the transactional aggregate of the booking core.
//
// TotalPrice and AmountPending are derived values: every mutating operation
// must call Recompute before persisting, callers never set them directly.
// The pending -> confirmed transition is a one-way ratchet performed
// inside Recompute; completed and voided are terminal administrative states.
type Reservation struct {
	ID      int64
	CourtID int64
	UserID  int64

	StartTime time.Time
	EndTime   time.Time

	SubtotalCourt  decimal.Decimal
	SubtotalAddons decimal.Decimal
	TotalPrice     decimal.Decimal

	AmountPaid    decimal.Decimal
	AmountPending decimal.Decimal

	Status    ReservationStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the time-range invariant
func (r *Reservation) Validate() error {
	if !r.StartTime.Before(r.EndTime) {
		return ErrInvalidTimeRange
	}
	return nil
}

// Recompute derives TotalPrice and AmountPending from the subtotals and the
// paid balance, then evaluates the auto-confirmation rule.
//
// The rule only fires while the reservation is pending: the paid amount must
// cover advancePaymentPercentage of the total and the total must be positive.
// A confirmed reservation never reverts to pending here, even if totals grow
// later (e.g. add-ons added after confirmation).
func (r *Reservation) Recompute(advancePaymentPercentage int64) {
	r.TotalPrice = r.SubtotalCourt.Add(r.SubtotalAddons)
	r.AmountPending = r.TotalPrice.Sub(r.AmountPaid)

	if r.Status != ReservationPending {
		return
	}

	requiredAdvance := r.TotalPrice.
		Mul(decimal.NewFromInt(advancePaymentPercentage)).
		Div(decimal.NewFromInt(100))

	if r.AmountPaid.GreaterThanOrEqual(requiredAdvance) && r.TotalPrice.IsPositive() {
		r.Status = ReservationConfirmed
	}
}

// IsTerminal returns true if no further lifecycle transitions are allowed
func (r *Reservation) IsTerminal() bool {
	return r.Status == ReservationCompleted || r.Status == ReservationVoided
}

// IsActive returns true if the reservation occupies its court on the calendar
func (r *Reservation) IsActive() bool {
	return r.Status != ReservationVoided
}

// DurationHours returns the reservation length in hours
func (r *Reservation) DurationHours() float64 {
	return r.EndTime.Sub(r.StartTime).Hours()
}
