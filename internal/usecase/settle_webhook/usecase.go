package settle_webhook

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-CourtBookingService/internal/integrations/mercadopago"
)

// settleTimeout максимальное время ожидания блокировки брони при
// сверке платежа. Шлюз ретраит уведомления сам, поэтому лучше отпустить
// запрос, чем держать соединение.
const settleTimeout = 10 * time.Second

// UseCase use case сверки входящего уведомления платёжного шлюза.
//
// Уведомление обрабатывается идемпотентно: платёж с уже известным
// transaction_id подтверждается без изменений. Блокировка брони берётся
// до проверки идемпотентности, чтобы параллельные доставки одного
// уведомления сериализовались.
type UseCase struct {
	reservationRepo ReservationRepository
	paymentRepo     PaymentRepository
	courtRepo       CourtRepository
	companyRepo     CompanyRepository
	gateway         GatewayClient
	txManager       TransactionManager
	secret          string
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	paymentRepo PaymentRepository,
	courtRepo CourtRepository,
	companyRepo CompanyRepository,
	gateway GatewayClient,
	txManager TransactionManager,
	secret string,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		paymentRepo:     paymentRepo,
		courtRepo:       courtRepo,
		companyRepo:     companyRepo,
		gateway:         gateway,
		txManager:       txManager,
		secret:          secret,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider устанавливает провайдер времени (для тестирования)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute обрабатывает уведомление шлюза. Любой исход, кроме внутренней
// ошибки, считается успешной обработкой: handler всегда отвечает 200,
// иначе шлюз будет бесконечно ретраить уведомление.
func (uc *UseCase) Execute(ctx context.Context, ev *Event) error {
	// Подпись проверяется только при настроенном секрете (в sandbox его нет)
	if uc.secret != "" && !validateSignature(uc.secret, ev) {
		uc.logger.Warn("SettleWebhook: invalid signature, request-id=%s, dropping", ev.XRequestID)
		return nil
	}

	if ev.Type != EventTypePayment || ev.DataID == "" {
		uc.logger.Info("SettleWebhook: ignoring event type=%q", ev.Type)
		return nil
	}

	// Статус и сумму берём у шлюза, а не из тела уведомления —
	// телу доверять нельзя даже с валидной подписью
	info, err := uc.gateway.GetPayment(ctx, ev.DataID)
	if err != nil {
		if errors.Is(err, mercadopago.ErrPaymentNotFound) {
			uc.logger.Warn("SettleWebhook: payment id=%s not found in gateway", ev.DataID)
			return nil
		}
		uc.logger.Error("SettleWebhook: failed to fetch payment id=%s: %v", ev.DataID, err)
		return fmt.Errorf("%w: failed to fetch payment: %v", ErrInternal, err)
	}

	reservationID, err := strconv.ParseInt(info.ExternalReference, 10, 64)
	if err != nil || reservationID <= 0 {
		uc.logger.Warn("SettleWebhook: payment id=%s has no usable external_reference %q", ev.DataID, info.ExternalReference)
		return nil
	}

	txCtx, cancel := context.WithTimeout(ctx, settleTimeout)
	defer cancel()

	err = uc.txManager.Do(txCtx, func(ctx context.Context) error {
		// Лок брони до проверки идемпотентности: конкурентные доставки
		// одного уведомления встанут в очередь здесь
		res, err := uc.reservationRepo.GetByIDForUpdate(ctx, reservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("SettleWebhook: reservation id=%d not found, acking", reservationID)
				return nil
			}
			return fmt.Errorf("failed to lock reservation id=%d: %w", reservationID, err)
		}

		exists, err := uc.paymentRepo.ExistsByTransactionID(ctx, ev.DataID)
		if err != nil {
			return fmt.Errorf("failed to check transaction id=%s: %w", ev.DataID, err)
		}
		if exists {
			uc.logger.Info("SettleWebhook: transaction id=%s already settled, acking", ev.DataID)
			return nil
		}

		status := domain.PaymentRejected
		if info.IsApproved() {
			status = domain.PaymentApproved
		}

		payment := &domain.Payment{
			ReservationID: res.ID,
			Amount:        info.TransactionAmount,
			Method:        domain.MethodGateway,
			Status:        status,
			TransactionID: ev.DataID,
		}
		if _, err := uc.paymentRepo.Create(ctx, payment); err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}

		if status != domain.PaymentApproved {
			uc.logger.Info("SettleWebhook: payment id=%s recorded as rejected, reservation id=%d untouched",
				ev.DataID, res.ID)
			return nil
		}

		advance, err := uc.advancePercentage(ctx, res.CourtID)
		if err != nil {
			return err
		}

		res.AmountPaid = res.AmountPaid.Add(info.TransactionAmount)
		res.Recompute(advance)

		if err := uc.reservationRepo.UpdateTotals(ctx, res); err != nil {
			return fmt.Errorf("failed to update reservation id=%d: %w", res.ID, err)
		}

		uc.logger.Info("SettleWebhook: transaction id=%s settled, reservation id=%d, paid=%s, status=%s",
			ev.DataID, res.ID, res.AmountPaid.StringFixed(domain.MoneyScale), res.Status)
		return nil
	})
	if err != nil {
		uc.logger.Error("SettleWebhook: settlement failed for transaction id=%s: %v", ev.DataID, err)
		return fmt.Errorf("%w: settlement failed: %v", ErrInternal, err)
	}

	return nil
}

// advancePercentage возвращает процент предоплаты компании, владеющей кортом
func (uc *UseCase) advancePercentage(ctx context.Context, courtID int64) (int64, error) {
	court, err := uc.courtRepo.GetByID(ctx, courtID)
	if err != nil {
		return 0, fmt.Errorf("failed to get court id=%d: %w", courtID, err)
	}
	company, err := uc.companyRepo.GetByID(ctx, court.CompanyID)
	if err != nil {
		return 0, fmt.Errorf("failed to get company id=%d: %w", court.CompanyID, err)
	}
	return company.AdvancePaymentPercentage, nil
}
