package quote

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/pricing"
)

// UseCase use case расчёта стоимости брони.
// Ничего не сохраняет: только читает тарифы и считает цену.
type UseCase struct {
	courtRepo CourtRepository
	currency  string
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(courtRepo CourtRepository, currency string, logger Logger) *UseCase {
	return &UseCase{
		courtRepo: courtRepo,
		currency:  currency,
		logger:    logger,
	}
}

// Execute выполняет расчёт стоимости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.CourtID <= 0 {
		return nil, fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}
	if !req.StartTime.Before(req.EndTime) {
		return nil, ErrInvalidTimeRange
	}

	court, err := uc.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("Quote: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("Quote: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	prices, err := uc.courtRepo.GetPrices(ctx, court.CompanyID, court.CourtTypeID)
	if err != nil {
		uc.logger.Error("Quote: failed to get prices for court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get prices: %v", ErrInternal, err)
	}

	total, breakdown, err := pricing.Quote(prices, req.StartTime, req.EndTime)
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidTimeRange) {
			return nil, ErrInvalidTimeRange
		}
		uc.logger.Error("Quote: pricing failed for court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: pricing failed: %v", ErrInternal, err)
	}

	uc.logger.Info("Quote: court=%d, total=%s, entries=%d",
		req.CourtID, total.StringFixed(domain.MoneyScale), len(breakdown))

	return &Response{
		CourtName:     court.Name,
		TotalPrice:    total,
		Currency:      uc.currency,
		DurationHours: req.EndTime.Sub(req.StartTime).Hours(),
		Breakdown:     breakdown,
	}, nil
}
