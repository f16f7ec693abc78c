package add_reservation_addon

import (
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/reservations"
)

// AddAddOnRequest HTTP request model
type AddAddOnRequest struct {
	AddOnID  int64 `json:"addonId"`
	Quantity int64 `json:"quantity"`
}

// AddOnLineResponse позиция доп. услуги на бронировании
type AddOnLineResponse struct {
	ID            int64  `json:"id"`
	AddOnID       int64  `json:"addonId"`
	Quantity      int64  `json:"quantity"`
	PriceSnapshot string `json:"priceSnapshot"`
	LineTotal     string `json:"lineTotal"`
}

// AddAddOnResponse HTTP response model: пересчитанные суммы брони и позиции
type AddAddOnResponse struct {
	ReservationID  int64               `json:"reservationId"`
	SubtotalAddons string              `json:"subtotalAddons"`
	TotalPrice     string              `json:"totalPrice"`
	AmountPending  string              `json:"amountPending"`
	Status         string              `json:"status"`
	AddOns         []AddOnLineResponse `json:"addons"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(details *reservations.ReservationDetails) *AddAddOnResponse {
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

	return &AddAddOnResponse{
		ReservationID:  res.ID,
		SubtotalAddons: res.SubtotalAddons.StringFixed(domain.MoneyScale),
		TotalPrice:     res.TotalPrice.StringFixed(domain.MoneyScale),
		AmountPending:  res.AmountPending.StringFixed(domain.MoneyScale),
		Status:         string(res.Status),
		AddOns:         addons,
	}
}
