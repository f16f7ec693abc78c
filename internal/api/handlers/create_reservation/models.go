package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	createReservation "github.com/m04kA/SMC-CourtBookingService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	CourtID   int64  `json:"courtId"`
	Date      string `json:"date"`      // "2025-10-15"
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "12:00"
	Email     string `json:"email,omitempty"`
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

	PreferenceID string `json:"preferenceId"`
	PaymentURL   string `json:"paymentUrl"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(userID int64) (*createReservation.Request, error) {
	day, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	startMinutes, err := start.Minutes()
	if err != nil {
		return nil, err
	}
	endMinutes, err := end.Minutes()
	if err != nil {
		return nil, err
	}

	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	return &createReservation.Request{
		CourtID:   r.CourtID,
		UserID:    userID,
		UserEmail: r.Email,
		StartTime: midnight.Add(time.Duration(startMinutes) * time.Minute),
		EndTime:   midnight.Add(time.Duration(endMinutes) * time.Minute),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:             resp.ID,
		CourtID:        resp.CourtID,
		UserID:         resp.UserID,
		Date:           resp.StartTime.Format(domain.DateFormat),
		StartTime:      types.NewTimeString(resp.StartTime).String(),
		EndTime:        types.NewTimeString(resp.EndTime).String(),
		SubtotalCourt:  resp.SubtotalCourt.StringFixed(domain.MoneyScale),
		SubtotalAddons: resp.SubtotalAddons.StringFixed(domain.MoneyScale),
		TotalPrice:     resp.TotalPrice.StringFixed(domain.MoneyScale),
		AmountPaid:     resp.AmountPaid.StringFixed(domain.MoneyScale),
		AmountPending:  resp.AmountPending.StringFixed(domain.MoneyScale),
		Status:         resp.Status,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		PreferenceID:   resp.PreferenceID,
		PaymentURL:     resp.PaymentURL,
	}
}
