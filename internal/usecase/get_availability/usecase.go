package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	companyRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/company"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// UseCase use case получения занятости корта на дату (только чтение)
type UseCase struct {
	courtRepo       CourtRepository
	companyRepo     CompanyRepository
	reservationRepo ReservationRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	courtRepo CourtRepository,
	companyRepo CompanyRepository,
	reservationRepo ReservationRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		courtRepo:       courtRepo,
		companyRepo:     companyRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.CourtID <= 0 {
		return nil, fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	uc.logger.Info("GetAvailability: court=%d, date=%s", req.CourtID, req.Date.Format(domain.DateFormat))

	court, err := uc.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("GetAvailability: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("GetAvailability: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	// Занятые интервалы: все брони на дату, кроме voided
	reservations, err := uc.reservationRepo.ListByCourtAndDate(ctx, req.CourtID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list reservations for court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	booked := make([]BookedSlot, 0, len(reservations))
	for _, res := range reservations {
		booked = append(booked, BookedSlot{
			Start:  types.NewTimeString(res.StartTime),
			End:    types.NewTimeString(res.EndTime),
			Status: string(res.Status),
		})
	}

	// Рабочие часы на день недели; отсутствие строки = закрыто
	hours := BusinessHours{IsOpen: false}
	businessHour, err := uc.companyRepo.GetBusinessHour(ctx, court.CompanyID, req.Date.Weekday())
	if err != nil && !errors.Is(err, companyRepo.ErrBusinessHourNotFound) {
		uc.logger.Error("GetAvailability: failed to get business hours for company id=%d: %v", court.CompanyID, err)
		return nil, fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
	}
	if businessHour != nil {
		hours = BusinessHours{
			Open:   &businessHour.OpenTime,
			Close:  &businessHour.CloseTime,
			IsOpen: true,
		}
	}

	uc.logger.Info("GetAvailability: court=%d, date=%s, booked=%d, open=%v",
		req.CourtID, req.Date.Format(domain.DateFormat), len(booked), hours.IsOpen)

	return &Response{
		CourtID:       req.CourtID,
		Date:          req.Date,
		BusinessHours: hours,
		BookedSlots:   booked,
	}, nil
}
