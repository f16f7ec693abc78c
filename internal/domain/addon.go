package domain

import (
	"github.com/shopspring/decimal"
)

// AddOn is an optional catalog item a company sells alongside court time
type AddOn struct {
	ID            int64
	CompanyID     int64
	Name          string
	Price         decimal.Decimal
	StockQuantity int64
	IsActive      bool
}

// ReservationAddOn is a line item on a reservation.
//
// PriceSnapshot freezes the catalog price at the moment the line item is
// created. It is an immutable historical record: later catalog price changes
// never touch it.
type ReservationAddOn struct {
	ID            int64
	ReservationID int64
	AddOnID       int64
	Quantity      int64
	PriceSnapshot decimal.Decimal
}

// LineTotal returns quantity × frozen unit price
func (ra *ReservationAddOn) LineTotal() decimal.Decimal {
	return ra.PriceSnapshot.Mul(decimal.NewFromInt(ra.Quantity))
}

// SumAddOnLines returns the add-on subtotal for a reservation's line items
func SumAddOnLines(items []*ReservationAddOn) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total
}
