package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	paymentRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/payment"
	reservationRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/reservation"
)

// Service сервис учёта платежей.
//
// Ручные платежи (перевод, карта, наличные) регистрируются в статусе
// pending и подтверждаются администратором; подтверждение увеличивает
// оплаченный баланс брони и пересчитывает её суммы. Обратного пути
// после подтверждения нет.
type Service struct {
	paymentRepo     PaymentRepository
	reservationRepo ReservationRepository
	courtRepo       CourtRepository
	companyRepo     CompanyRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса платежей
func NewService(
	paymentRepo PaymentRepository,
	reservationRepo ReservationRepository,
	courtRepo CourtRepository,
	companyRepo CompanyRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		paymentRepo:     paymentRepo,
		reservationRepo: reservationRepo,
		courtRepo:       courtRepo,
		companyRepo:     companyRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider устанавливает провайдер времени (для тестирования)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Record регистрирует ручной платёж по бронированию в статусе pending.
// Шлюзовые платежи сюда не попадают: их создаёт сверка вебхуков.
func (s *Service) Record(ctx context.Context, reservationID int64, amount decimal.Decimal, method domain.PaymentMethod) (*domain.Payment, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	switch method {
	case domain.MethodTransfer, domain.MethodCard, domain.MethodCash:
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidMethod, method)
	}

	s.logger.Info("Record: reservation=%d, amount=%s, method=%s",
		reservationID, amount.StringFixed(domain.MoneyScale), method)

	var payment *domain.Payment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		res, err := s.reservationRepo.GetByIDForUpdate(ctx, reservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: Record - failed to lock reservation: %v", ErrInternal, err)
		}

		if res.IsTerminal() {
			return ErrReservationClosed
		}

		payment, err = s.paymentRepo.Create(ctx, &domain.Payment{
			ReservationID: res.ID,
			Amount:        amount,
			Method:        method,
			Status:        domain.PaymentPending,
		})
		if err != nil {
			return fmt.Errorf("%w: Record - failed to create payment: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Record: payment id=%d created for reservation=%d", payment.ID, reservationID)
	return payment, nil
}

// Approve подтверждает pending-платёж от имени администратора.
//
// Платёж и бронирование блокируются в одной транзакции: штампуются
// approved_by/approved_at, оплаченный баланс брони увеличивается на сумму
// платежа и суммы пересчитываются (включая авто-подтверждение брони).
func (s *Service) Approve(ctx context.Context, paymentID int64, approverID int64) (*domain.Payment, error) {
	s.logger.Info("Approve: payment=%d, approver=%d", paymentID, approverID)

	var payment *domain.Payment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		payment, err = s.paymentRepo.GetByID(ctx, paymentID)
		if err != nil {
			if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
				return ErrPaymentNotFound
			}
			return fmt.Errorf("%w: Approve - failed to lock payment: %v", ErrInternal, err)
		}

		if payment.Status != domain.PaymentPending {
			return ErrAlreadySettled
		}

		res, err := s.reservationRepo.GetByIDForUpdate(ctx, payment.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: Approve - failed to lock reservation: %v", ErrInternal, err)
		}

		now := s.timeProvider.Now()
		if err := s.paymentRepo.Approve(ctx, payment.ID, approverID, now); err != nil {
			return fmt.Errorf("%w: Approve - failed to approve payment: %v", ErrInternal, err)
		}
		payment.Status = domain.PaymentApproved
		payment.ApprovedBy = &approverID
		payment.ApprovedAt = &now

		court, err := s.courtRepo.GetByID(ctx, res.CourtID)
		if err != nil {
			return fmt.Errorf("%w: Approve - failed to get court: %v", ErrInternal, err)
		}
		company, err := s.companyRepo.GetByID(ctx, court.CompanyID)
		if err != nil {
			return fmt.Errorf("%w: Approve - failed to get company: %v", ErrInternal, err)
		}

		res.AmountPaid = res.AmountPaid.Add(payment.Amount)
		res.Recompute(company.AdvancePaymentPercentage)

		if err := s.reservationRepo.UpdateTotals(ctx, res); err != nil {
			return fmt.Errorf("%w: Approve - failed to update reservation totals: %v", ErrInternal, err)
		}

		s.logger.Info("Approve: payment id=%d approved, reservation id=%d paid=%s status=%s",
			payment.ID, res.ID, res.AmountPaid.StringFixed(domain.MoneyScale), res.Status)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return payment, nil
}
