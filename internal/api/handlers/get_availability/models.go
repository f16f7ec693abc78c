package get_availability

import (
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	getAvailability "github.com/m04kA/SMC-CourtBookingService/internal/usecase/get_availability"
	"github.com/m04kA/SMC-CourtBookingService/pkg/ptr"
)

// BusinessHoursResponse рабочие часы на запрошенный день
type BusinessHoursResponse struct {
	Open   *string `json:"open,omitempty"`
	Close  *string `json:"close,omitempty"`
	IsOpen bool    `json:"isOpen"`
}

// BookedSlotResponse занятый интервал корта
type BookedSlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	CourtID       int64                 `json:"courtId"`
	Date          string                `json:"date"`
	BusinessHours BusinessHoursResponse `json:"businessHours"`
	BookedSlots   []BookedSlotResponse  `json:"bookedSlots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	hours := BusinessHoursResponse{IsOpen: resp.BusinessHours.IsOpen}
	if resp.BusinessHours.Open != nil {
		hours.Open = ptr.Ptr(resp.BusinessHours.Open.String())
	}
	if resp.BusinessHours.Close != nil {
		hours.Close = ptr.Ptr(resp.BusinessHours.Close.String())
	}

	booked := make([]BookedSlotResponse, 0, len(resp.BookedSlots))
	for _, slot := range resp.BookedSlots {
		booked = append(booked, BookedSlotResponse{
			StartTime: slot.Start.String(),
			EndTime:   slot.End.String(),
			Status:    slot.Status,
		})
	}

	return &AvailabilityResponse{
		CourtID:       resp.CourtID,
		Date:          resp.Date.Format(domain.DateFormat),
		BusinessHours: hours,
		BookedSlots:   booked,
	}
}
