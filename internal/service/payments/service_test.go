package payments

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	paymentRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/payment"
)

type fakePaymentRepo struct {
	payment    *domain.Payment
	created    *domain.Payment
	approvedID int64
	approvedBy int64
	approvedAt time.Time
}

func (f *fakePaymentRepo) Create(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
	p.ID = 5
	f.created = p
	return p, nil
}

func (f *fakePaymentRepo) GetByID(_ context.Context, id int64) (*domain.Payment, error) {
	if f.payment == nil || f.payment.ID != id {
		return nil, paymentRepo.ErrPaymentNotFound
	}
	return f.payment, nil
}

func (f *fakePaymentRepo) Approve(_ context.Context, id int64, approverID int64, approvedAt time.Time) error {
	f.approvedID = id
	f.approvedBy = approverID
	f.approvedAt = approvedAt
	return nil
}

type fakeReservationRepo struct {
	res     *domain.Reservation
	updated *domain.Reservation
}

func (f *fakeReservationRepo) GetByIDForUpdate(_ context.Context, _ int64) (*domain.Reservation, error) {
	return f.res, nil
}

func (f *fakeReservationRepo) UpdateTotals(_ context.Context, res *domain.Reservation) error {
	f.updated = res
	return nil
}

type fakeCourtRepo struct{}

func (fakeCourtRepo) GetByID(_ context.Context, _ int64) (*domain.Court, error) {
	return &domain.Court{ID: 7, CompanyID: 11}, nil
}

type fakeCompanyRepo struct{}

func (fakeCompanyRepo) GetByID(_ context.Context, _ int64) (*domain.Company, error) {
	return &domain.Company{ID: 11, AdvancePaymentPercentage: 50}, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func pendingReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:            42,
		CourtID:       7,
		UserID:        3,
		SubtotalCourt: decimal.RequireFromString("100.00"),
		AmountPaid:    decimal.Zero,
		Status:        domain.ReservationPending,
	}
}

func newService(payRepo *fakePaymentRepo, resRepo *fakeReservationRepo) *Service {
	svc := NewService(payRepo, resRepo, fakeCourtRepo{}, fakeCompanyRepo{}, fakeTxManager{}, nopLogger{})
	svc.WithTimeProvider(fixedTime{t: time.Date(2025, 10, 20, 15, 0, 0, 0, time.UTC)})
	return svc
}

func TestRecord_CreatesPendingManualPayment(t *testing.T) {
	payRepo := &fakePaymentRepo{}
	resRepo := &fakeReservationRepo{res: pendingReservation()}
	svc := newService(payRepo, resRepo)

	payment, err := svc.Record(context.Background(), 42, decimal.RequireFromString("30.00"), domain.MethodCash)
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentPending, payment.Status)
	assert.Equal(t, domain.MethodCash, payment.Method)
	assert.Equal(t, "30.00", payment.Amount.StringFixed(2))
	assert.Empty(t, payment.TransactionID)
	// Регистрация не трогает баланс брони, это делает только подтверждение
	assert.Nil(t, resRepo.updated)
}

func TestRecord_GatewayMethodRejected(t *testing.T) {
	svc := newService(&fakePaymentRepo{}, &fakeReservationRepo{res: pendingReservation()})

	_, err := svc.Record(context.Background(), 42, decimal.RequireFromString("30.00"), domain.MethodGateway)
	assert.ErrorIs(t, err, ErrInvalidMethod)
}

func TestRecord_NonPositiveAmountRejected(t *testing.T) {
	svc := newService(&fakePaymentRepo{}, &fakeReservationRepo{res: pendingReservation()})

	_, err := svc.Record(context.Background(), 42, decimal.Zero, domain.MethodCash)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRecord_ClosedReservationRejected(t *testing.T) {
	res := pendingReservation()
	res.Status = domain.ReservationVoided
	svc := newService(&fakePaymentRepo{}, &fakeReservationRepo{res: res})

	_, err := svc.Record(context.Background(), 42, decimal.RequireFromString("30.00"), domain.MethodCash)
	assert.ErrorIs(t, err, ErrReservationClosed)
}

func TestApprove_SettlesPaymentAndConfirmsReservation(t *testing.T) {
	payRepo := &fakePaymentRepo{
		payment: &domain.Payment{
			ID:            5,
			ReservationID: 42,
			Amount:        decimal.RequireFromString("50.00"),
			Method:        domain.MethodTransfer,
			Status:        domain.PaymentPending,
		},
	}
	resRepo := &fakeReservationRepo{res: pendingReservation()}
	svc := newService(payRepo, resRepo)

	payment, err := svc.Approve(context.Background(), 5, 99)
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentApproved, payment.Status)
	require.NotNil(t, payment.ApprovedBy)
	assert.Equal(t, int64(99), *payment.ApprovedBy)
	require.NotNil(t, payment.ApprovedAt)

	assert.Equal(t, int64(5), payRepo.approvedID)
	assert.Equal(t, int64(99), payRepo.approvedBy)

	require.NotNil(t, resRepo.updated)
	assert.Equal(t, "50.00", resRepo.updated.AmountPaid.StringFixed(2))
	assert.Equal(t, domain.ReservationConfirmed, resRepo.updated.Status)
}

func TestApprove_AlreadySettledRejected(t *testing.T) {
	for _, status := range []domain.PaymentStatus{domain.PaymentApproved, domain.PaymentRejected} {
		payRepo := &fakePaymentRepo{
			payment: &domain.Payment{
				ID:            5,
				ReservationID: 42,
				Amount:        decimal.RequireFromString("50.00"),
				Status:        status,
			},
		}
		resRepo := &fakeReservationRepo{res: pendingReservation()}
		svc := newService(payRepo, resRepo)

		_, err := svc.Approve(context.Background(), 5, 99)
		assert.ErrorIs(t, err, ErrAlreadySettled)
		assert.Nil(t, resRepo.updated)
	}
}

func TestApprove_UnknownPayment(t *testing.T) {
	svc := newService(&fakePaymentRepo{}, &fakeReservationRepo{res: pendingReservation()})

	_, err := svc.Approve(context.Background(), 404, 99)
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}
