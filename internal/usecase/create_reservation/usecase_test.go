package create_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/integrations/mercadopago"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

type fakeCourtRepo struct {
	court  *domain.Court
	prices []*domain.CourtTypePrice
}

func (f *fakeCourtRepo) GetByID(_ context.Context, _ int64) (*domain.Court, error) {
	return f.court, nil
}

func (f *fakeCourtRepo) GetPrices(_ context.Context, _, _ int64) ([]*domain.CourtTypePrice, error) {
	return f.prices, nil
}

type fakeCompanyRepo struct {
	company *domain.Company
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, _ int64) (*domain.Company, error) {
	return f.company, nil
}

type fakeReservationRepo struct {
	created *domain.Reservation
}

func (f *fakeReservationRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	res.ID = 42
	res.CreatedAt = time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)
	f.created = res
	return res, nil
}

type fakeGateway struct {
	prefErr    error
	gotPrefReq *mercadopago.PreferenceRequest
}

func (f *fakeGateway) BuildPreferenceRequest(title, unitPrice, payerEmail, externalReference string) *mercadopago.PreferenceRequest {
	return &mercadopago.PreferenceRequest{
		Items: []mercadopago.PreferenceItem{{
			Title:     title,
			Quantity:  1,
			UnitPrice: "0",
		}},
		Payer:             mercadopago.PreferencePayer{Email: payerEmail},
		ExternalReference: externalReference,
	}
}

func (f *fakeGateway) CreatePreference(_ context.Context, prefReq *mercadopago.PreferenceRequest) (*mercadopago.Preference, error) {
	f.gotPrefReq = prefReq
	if f.prefErr != nil {
		return nil, f.prefErr
	}
	return &mercadopago.Preference{
		ID:               "pref-1",
		InitPoint:        "https://mp.example/init",
		SandboxInitPoint: "https://sandbox.mp.example/init",
	}, nil
}

func (f *fakeGateway) PaymentURL(pref *mercadopago.Preference) string {
	return pref.InitPoint
}

// fakeTxManager фиксирует, завершилась ли транзакция ошибкой (т.е. откатом)
type fakeTxManager struct {
	rolledBack bool
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		f.rolledBack = true
		return err
	}
	return nil
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validLicense() *domain.License {
	return &domain.License{
		Status:    domain.LicenseActive,
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
	}
}

func newDeps() (*fakeCourtRepo, *fakeCompanyRepo, *fakeReservationRepo, *fakeGateway, *fakeTxManager) {
	courtRepo := &fakeCourtRepo{
		court: &domain.Court{ID: 7, CompanyID: 11, CourtTypeID: 2, Name: "Cancha 1", IsActive: true},
		prices: []*domain.CourtTypePrice{{
			PricePerHour: decimal.RequireFromString("50.00"),
			Slot: domain.TimeSlot{
				Name:      "Todo el día",
				StartTime: types.TimeString("06:00"),
				EndTime:   types.TimeString("23:00"),
			},
		}},
	}
	companyRepo := &fakeCompanyRepo{
		company: &domain.Company{ID: 11, AdvancePaymentPercentage: 50, License: validLicense()},
	}
	return courtRepo, companyRepo, &fakeReservationRepo{}, &fakeGateway{}, &fakeTxManager{}
}

func validRequest() *Request {
	return &Request{
		CourtID:   7,
		UserID:    3,
		UserEmail: "user@example.com",
		StartTime: time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestExecute_CreatesPendingReservationWithPreference(t *testing.T) {
	courtRepo, companyRepo, resRepo, gateway, txMgr := newDeps()
	uc := NewUseCase(courtRepo, companyRepo, resRepo, gateway, txMgr, nopLogger{})
	uc.timeProvider = fixedTime{t: time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "100.00", resp.TotalPrice.StringFixed(2))
	assert.Equal(t, "100.00", resp.AmountPending.StringFixed(2))
	assert.True(t, resp.AmountPaid.IsZero())
	assert.Equal(t, string(domain.ReservationPending), resp.Status)
	assert.Equal(t, "pref-1", resp.PreferenceID)
	assert.Equal(t, "https://mp.example/init", resp.PaymentURL)

	// external_reference — ID созданной брони, по нему вебхук найдёт её
	require.NotNil(t, gateway.gotPrefReq)
	assert.Equal(t, "42", gateway.gotPrefReq.ExternalReference)
}

func TestExecute_GatewayFailureRollsBackCreation(t *testing.T) {
	courtRepo, companyRepo, resRepo, gateway, txMgr := newDeps()
	gateway.prefErr = mercadopago.ErrPreferenceFailed
	uc := NewUseCase(courtRepo, companyRepo, resRepo, gateway, txMgr, nopLogger{})
	uc.timeProvider = fixedTime{t: time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), validRequest())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrGatewayFailed)
	// Вставка выполнена внутри транзакции, отказ шлюза её откатывает
	assert.NotNil(t, resRepo.created)
	assert.True(t, txMgr.rolledBack)
}

func TestExecute_InactiveCourtRejected(t *testing.T) {
	courtRepo, companyRepo, resRepo, gateway, txMgr := newDeps()
	courtRepo.court.IsActive = false
	uc := NewUseCase(courtRepo, companyRepo, resRepo, gateway, txMgr, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCourtInactive)
	assert.Nil(t, resRepo.created)
}

func TestExecute_InvalidLicenseRejected(t *testing.T) {
	courtRepo, companyRepo, resRepo, gateway, txMgr := newDeps()
	companyRepo.company.License.Status = domain.LicenseSuspended
	uc := NewUseCase(courtRepo, companyRepo, resRepo, gateway, txMgr, nopLogger{})
	uc.timeProvider = fixedTime{t: time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrLicenseInvalid)
	assert.Nil(t, resRepo.created)
}

func TestExecute_ExpiredLicenseRejected(t *testing.T) {
	courtRepo, companyRepo, resRepo, gateway, txMgr := newDeps()
	uc := NewUseCase(courtRepo, companyRepo, resRepo, gateway, txMgr, nopLogger{})
	// Текущая дата за пределами окна действия лицензии
	uc.timeProvider = fixedTime{t: time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrLicenseInvalid)
}

func TestExecute_InvalidTimeRange(t *testing.T) {
	courtRepo, companyRepo, resRepo, gateway, txMgr := newDeps()
	uc := NewUseCase(courtRepo, companyRepo, resRepo, gateway, txMgr, nopLogger{})

	req := validRequest()
	req.StartTime, req.EndTime = req.EndTime, req.StartTime

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestExecute_ValidationErrors(t *testing.T) {
	courtRepo, companyRepo, resRepo, gateway, txMgr := newDeps()
	uc := NewUseCase(courtRepo, companyRepo, resRepo, gateway, txMgr, nopLogger{})

	cases := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero court", func(r *Request) { r.CourtID = 0 }},
		{"zero user", func(r *Request) { r.UserID = 0 }},
		{"missing times", func(r *Request) { r.StartTime = time.Time{}; r.EndTime = time.Time{} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.True(t, errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrInvalidTimeRange))
		})
	}
}
