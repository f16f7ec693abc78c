package quote

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	quoteUC "github.com/m04kA/SMC-CourtBookingService/internal/usecase/quote"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// QuoteRequest HTTP request model
type QuoteRequest struct {
	CourtID   int64  `json:"courtId"`
	Date      string `json:"date"`      // "2025-10-15"
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "12:00"
}

// BreakdownEntryResponse строка детализации стоимости
type BreakdownEntryResponse struct {
	SlotName     string `json:"slotName"`
	PricePerHour string `json:"pricePerHour"`
	Hours        string `json:"hours"`
	Subtotal     string `json:"subtotal"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	CourtName     string                   `json:"courtName"`
	TotalPrice    string                   `json:"totalPrice"`
	Currency      string                   `json:"currency"`
	DurationHours float64                  `json:"durationHours"`
	Breakdown     []BreakdownEntryResponse `json:"breakdown"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest() (*quoteUC.Request, error) {
	start, end, err := parseInterval(r.Date, r.StartTime, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &quoteUC.Request{
		CourtID:   r.CourtID,
		StartTime: start,
		EndTime:   end,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quoteUC.Response) *QuoteResponse {
	breakdown := make([]BreakdownEntryResponse, 0, len(resp.Breakdown))
	for _, entry := range resp.Breakdown {
		breakdown = append(breakdown, BreakdownEntryResponse{
			SlotName:     entry.SlotName,
			PricePerHour: entry.PricePerHour.StringFixed(domain.MoneyScale),
			Hours:        entry.Hours.String(),
			Subtotal:     entry.Subtotal.StringFixed(domain.MoneyScale),
		})
	}

	return &QuoteResponse{
		CourtName:     resp.CourtName,
		TotalPrice:    resp.TotalPrice.StringFixed(domain.MoneyScale),
		Currency:      resp.Currency,
		DurationHours: resp.DurationHours,
		Breakdown:     breakdown,
	}
}

// parseInterval собирает пару timestamp из даты и времён HH:MM (UTC)
func parseInterval(date, startTime, endTime string) (time.Time, time.Time, error) {
	day, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	start, err := types.NewTimeStringFromString(startTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := types.NewTimeStringFromString(endTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	startMinutes, err := start.Minutes()
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endMinutes, err := end.Minutes()
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return midnight.Add(time.Duration(startMinutes) * time.Minute),
		midnight.Add(time.Duration(endMinutes) * time.Minute), nil
}
