package get_reservation

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/reservations"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// AddOnLineResponse позиция доп. услуги на бронировании
type AddOnLineResponse struct {
	ID            int64  `json:"id"`
	AddOnID       int64  `json:"addonId"`
	Quantity      int64  `json:"quantity"`
	PriceSnapshot string `json:"priceSnapshot"`
	LineTotal     string `json:"lineTotal"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID      int64 `json:"id"`
	CourtID int64 `json:"courtId"`
	UserID  int64 `json:"userId"`

	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`

	SubtotalCourt  string `json:"subtotalCourt"`
	SubtotalAddons string `json:"subtotalAddons"`
	TotalPrice     string `json:"totalPrice"`
	AmountPaid     string `json:"amountPaid"`
	AmountPending  string `json:"amountPending"`

	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`

	AddOns []AddOnLineResponse `json:"addons"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(details *reservations.ReservationDetails) *ReservationResponse {
	res := details.Reservation

	addons := make([]AddOnLineResponse, 0, len(details.AddOns))
	for _, item := range details.AddOns {
		addons = append(addons, AddOnLineResponse{
			ID:            item.ID,
			AddOnID:       item.AddOnID,
			Quantity:      item.Quantity,
			PriceSnapshot: item.PriceSnapshot.StringFixed(domain.MoneyScale),
			LineTotal:     item.LineTotal().StringFixed(domain.MoneyScale),
		})
	}

	return &ReservationResponse{
		ID:             res.ID,
		CourtID:        res.CourtID,
		UserID:         res.UserID,
		Date:           res.StartTime.Format(domain.DateFormat),
		StartTime:      types.NewTimeString(res.StartTime).String(),
		EndTime:        types.NewTimeString(res.EndTime).String(),
		SubtotalCourt:  res.SubtotalCourt.StringFixed(domain.MoneyScale),
		SubtotalAddons: res.SubtotalAddons.StringFixed(domain.MoneyScale),
		TotalPrice:     res.TotalPrice.StringFixed(domain.MoneyScale),
		AmountPaid:     res.AmountPaid.StringFixed(domain.MoneyScale),
		AmountPending:  res.AmountPending.StringFixed(domain.MoneyScale),
		Status:         string(res.Status),
		CreatedAt:      res.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      res.UpdatedAt.Format(time.RFC3339),
		AddOns:         addons,
	}
}
