package domain

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// CourtType groups courts of a company that share one price table
type CourtType struct {
	ID        int64
	CompanyID int64
	Name      string
}

// Court is a bookable unit belonging to one company
type Court struct {
	ID          int64
	CompanyID   int64
	CourtTypeID int64
	Name        string
	IsActive    bool
}

// TimeSlot is a named time-of-day window [StartTime, EndTime) scoped to a company.
// Slots may overlap each other; pricing treats every overlapping slot additively.
type TimeSlot struct {
	ID        int64
	CompanyID int64
	Name      string
	StartTime types.TimeString
	EndTime   types.TimeString
}

// CourtTypePrice is the price per hour for a (court type, time slot) pair.
// At most one price exists per pair.
type CourtTypePrice struct {
	ID           int64
	CompanyID    int64
	CourtTypeID  int64
	TimeSlotID   int64
	PricePerHour decimal.Decimal
	Slot         TimeSlot
}
