package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/pricing"
)

// UseCase use case создания брони.
//
// Критическая секция целиком выполняется в одной транзакции: поиск корта,
// расчёт цены, вставка брони и создание платёжной preference в шлюзе.
// Сетевой вызов шлюза сознательно находится внутри транзакции — его отказ
// обязан откатить вставку, иначе останется висящая pending-бронь без
// пути оплаты.
type UseCase struct {
	courtRepo       CourtRepository
	companyRepo     CompanyRepository
	reservationRepo ReservationRepository
	gateway         GatewayClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	courtRepo CourtRepository,
	companyRepo CompanyRepository,
	reservationRepo ReservationRepository,
	gateway GatewayClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		courtRepo:       courtRepo,
		companyRepo:     companyRepo,
		reservationRepo: reservationRepo,
		gateway:         gateway,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания брони
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: court=%d, user=%d, start=%s, end=%s",
		req.CourtID, req.UserID, req.StartTime.Format("2006-01-02 15:04"), req.EndTime.Format("2006-01-02 15:04"))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Reservation
	var preferenceID, paymentURL string

	// 2. Всё создание — одна атомарная транзакция
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Корт должен существовать и быть активным
		court, err := uc.courtRepo.GetByID(txCtx, req.CourtID)
		if err != nil {
			if errors.Is(err, courtRepo.ErrCourtNotFound) {
				uc.logger.Warn("CreateReservation: court id=%d not found", req.CourtID)
				return ErrCourtNotFound
			}
			uc.logger.Error("CreateReservation: failed to get court id=%d: %v", req.CourtID, err)
			return fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
		}

		if !court.IsActive {
			uc.logger.Warn("CreateReservation: court id=%d is not active", req.CourtID)
			return ErrCourtInactive
		}

		// 2.2. Компания и действующая лицензия
		company, err := uc.companyRepo.GetByID(txCtx, court.CompanyID)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get company id=%d: %v", court.CompanyID, err)
			return fmt.Errorf("%w: failed to get company: %v", ErrInternal, err)
		}

		if company.License == nil || !company.License.IsValid(uc.timeProvider.Now()) {
			uc.logger.Warn("CreateReservation: company id=%d has no valid license", company.ID)
			return ErrLicenseInvalid
		}

		// 2.3. Расчёт стоимости по тарифной таблице типа корта
		prices, err := uc.courtRepo.GetPrices(txCtx, court.CompanyID, court.CourtTypeID)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get prices for court id=%d: %v", req.CourtID, err)
			return fmt.Errorf("%w: failed to get prices: %v", ErrInternal, err)
		}

		total, _, err := pricing.Quote(prices, req.StartTime, req.EndTime)
		if err != nil {
			if errors.Is(err, pricing.ErrInvalidTimeRange) {
				return ErrInvalidTimeRange
			}
			uc.logger.Error("CreateReservation: pricing failed for court id=%d: %v", req.CourtID, err)
			return fmt.Errorf("%w: pricing failed: %v", ErrInternal, err)
		}

		// 2.4. Бронь создается в pending с нулевой оплатой;
		// производные суммы пересчитываются перед каждой записью
		reservation := &domain.Reservation{
			CourtID:        court.ID,
			UserID:         req.UserID,
			StartTime:      req.StartTime,
			EndTime:        req.EndTime,
			SubtotalCourt:  total,
			SubtotalAddons: decimal.Zero,
			AmountPaid:     decimal.Zero,
			Status:         domain.ReservationPending,
		}

		if err := reservation.Validate(); err != nil {
			return ErrInvalidTimeRange
		}

		reservation.Recompute(company.AdvancePaymentPercentage)

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		// 2.5. Платёжная preference в шлюзе; отказ откатывает вставку
		prefReq := uc.gateway.BuildPreferenceRequest(
			"Reserva: "+court.Name,
			created.TotalPrice.StringFixed(domain.MoneyScale),
			req.UserEmail,
			strconv.FormatInt(created.ID, 10),
		)

		pref, err := uc.gateway.CreatePreference(txCtx, prefReq)
		if err != nil {
			uc.logger.Error("CreateReservation: gateway preference failed for reservation id=%d: %v",
				created.ID, err)
			return fmt.Errorf("%w: %v", ErrGatewayFailed, err)
		}

		result = created
		preferenceID = pref.ID
		paymentURL = uc.gateway.PaymentURL(pref)
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: created reservation id=%d, status=%s, total=%s, preference=%s",
		result.ID, result.Status, result.TotalPrice.StringFixed(domain.MoneyScale), preferenceID)

	return &Response{
		ID:             result.ID,
		CourtID:        result.CourtID,
		UserID:         result.UserID,
		StartTime:      result.StartTime,
		EndTime:        result.EndTime,
		SubtotalCourt:  result.SubtotalCourt,
		SubtotalAddons: result.SubtotalAddons,
		TotalPrice:     result.TotalPrice,
		AmountPaid:     result.AmountPaid,
		AmountPending:  result.AmountPending,
		Status:         string(result.Status),
		CreatedAt:      result.CreatedAt,
		PreferenceID:   preferenceID,
		PaymentURL:     paymentURL,
	}, nil
}
