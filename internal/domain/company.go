package domain

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// LicenseStatus represents the status of a company license
type LicenseStatus string

const (
	LicenseActive    LicenseStatus = "active"
	LicenseExpired   LicenseStatus = "expired"
	LicenseSuspended LicenseStatus = "suspended"
)

// License represents the subscription license owned by a company.
// A company cannot accept reservations while its license is not valid.
type License struct {
	ID          int64
	LicenseKey  string
	LicenseType string
	Status      LicenseStatus
	StartDate   time.Time
	EndDate     time.Time
}

// IsValid returns true if the license is active and today falls inside its validity window
func (l *License) IsValid(today time.Time) bool {
	if l.Status != LicenseActive {
		return false
	}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	start := time.Date(l.StartDate.Year(), l.StartDate.Month(), l.StartDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(l.EndDate.Year(), l.EndDate.Month(), l.EndDate.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(start) && !day.After(end)
}

// Company is the tenant root: it owns courts, pricing, business hours and the
// advance-payment percentage that drives automatic reservation confirmation.
type Company struct {
	ID                       int64
	Name                     string
	AdvancePaymentPercentage int64 // 0..100, minimum paid fraction to auto-confirm
	Address                  string
	License                  *License
	CreatedAt                time.Time
}

// BusinessHour is the company's opening window for one weekday.
// Weekday follows time.Weekday (Sunday=0).
type BusinessHour struct {
	ID        int64
	CompanyID int64
	Weekday   time.Weekday
	OpenTime  types.TimeString
	CloseTime types.TimeString
}
