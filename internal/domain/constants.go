package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default configuration values
const (
	DefaultAdvancePaymentPercentage = 50
	MaxAdvancePaymentPercentage     = 100
)

// MoneyScale number of decimal places kept on monetary values
const MoneyScale = 2

// ActiveReservationStatuses reservations that occupy a court on the calendar.
// Used by the availability projection (voided reservations release the slot).
var ActiveReservationStatuses = []ReservationStatus{
	ReservationPending,
	ReservationConfirmed,
	ReservationCompleted,
}
