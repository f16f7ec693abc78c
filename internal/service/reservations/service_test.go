package reservations

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	addonRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/addon"
	reservationRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/reservation"
)

type fakeReservationRepo struct {
	res     *domain.Reservation
	updated *domain.Reservation
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	if f.res == nil || f.res.ID != id {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return f.res, nil
}

func (f *fakeReservationRepo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Reservation, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeReservationRepo) UpdateTotals(_ context.Context, res *domain.Reservation) error {
	f.updated = res
	return nil
}

type fakeAddOnRepo struct {
	addon *domain.AddOn
	items []*domain.ReservationAddOn
}

func (f *fakeAddOnRepo) GetByID(_ context.Context, id int64) (*domain.AddOn, error) {
	if f.addon == nil || f.addon.ID != id {
		return nil, addonRepo.ErrAddOnNotFound
	}
	return f.addon, nil
}

func (f *fakeAddOnRepo) CreateReservationAddOn(_ context.Context, item *domain.ReservationAddOn) (*domain.ReservationAddOn, error) {
	item.ID = int64(len(f.items) + 1)
	f.items = append(f.items, item)
	return item, nil
}

func (f *fakeAddOnRepo) ListByReservationID(_ context.Context, _ int64) ([]*domain.ReservationAddOn, error) {
	return f.items, nil
}

type fakeCourtRepo struct {
	court *domain.Court
}

func (f *fakeCourtRepo) GetByID(_ context.Context, _ int64) (*domain.Court, error) {
	return f.court, nil
}

type fakeCompanyRepo struct {
	company *domain.Company
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, _ int64) (*domain.Company, error) {
	return f.company, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func confirmedReservation() *domain.Reservation {
	res := &domain.Reservation{
		ID:            42,
		CourtID:       7,
		UserID:        3,
		SubtotalCourt: decimal.RequireFromString("100.00"),
		AmountPaid:    decimal.RequireFromString("50.00"),
		Status:        domain.ReservationConfirmed,
	}
	res.Recompute(50)
	return res
}

func rentalRacket() *domain.AddOn {
	return &domain.AddOn{
		ID:            9,
		CompanyID:     11,
		Name:          "Alquiler de raqueta",
		Price:         decimal.RequireFromString("15.00"),
		StockQuantity: 10,
		IsActive:      true,
	}
}

func newFixture() (*Service, *fakeReservationRepo, *fakeAddOnRepo) {
	resRepo := &fakeReservationRepo{res: confirmedReservation()}
	addRepo := &fakeAddOnRepo{addon: rentalRacket()}
	svc := NewService(
		resRepo,
		addRepo,
		&fakeCourtRepo{court: &domain.Court{ID: 7, CompanyID: 11}},
		&fakeCompanyRepo{company: &domain.Company{ID: 11, AdvancePaymentPercentage: 50}},
		fakeTxManager{},
		nopLogger{},
	)
	return svc, resRepo, addRepo
}

func TestAddAddOn_FreezesPriceAndRecomputesTotals(t *testing.T) {
	svc, resRepo, addRepo := newFixture()

	details, err := svc.AddAddOn(context.Background(), 42, 3, 9, 2)
	require.NoError(t, err)

	require.Len(t, details.AddOns, 1)
	item := details.AddOns[0]
	assert.Equal(t, "15.00", item.PriceSnapshot.StringFixed(2))
	assert.Equal(t, "30.00", item.LineTotal().StringFixed(2))

	require.NotNil(t, resRepo.updated)
	assert.Equal(t, "30.00", resRepo.updated.SubtotalAddons.StringFixed(2))
	assert.Equal(t, "130.00", resRepo.updated.TotalPrice.StringFixed(2))
	assert.Equal(t, "80.00", resRepo.updated.AmountPending.StringFixed(2))
	// Подтверждённая бронь не откатывается в pending при росте суммы
	assert.Equal(t, domain.ReservationConfirmed, resRepo.updated.Status)

	// Позднее изменение каталожной цены не трогает снимок
	addRepo.addon.Price = decimal.RequireFromString("99.00")
	assert.Equal(t, "15.00", item.PriceSnapshot.StringFixed(2))
}

func TestAddAddOn_InactiveAddOnUnavailable(t *testing.T) {
	svc, _, addRepo := newFixture()
	addRepo.addon.IsActive = false

	_, err := svc.AddAddOn(context.Background(), 42, 3, 9, 1)
	assert.ErrorIs(t, err, ErrAddOnUnavailable)
}

func TestAddAddOn_ForeignCompanyAddOnUnavailable(t *testing.T) {
	svc, _, addRepo := newFixture()
	addRepo.addon.CompanyID = 999

	_, err := svc.AddAddOn(context.Background(), 42, 3, 9, 1)
	assert.ErrorIs(t, err, ErrAddOnUnavailable)
}

func TestAddAddOn_InsufficientStock(t *testing.T) {
	svc, _, addRepo := newFixture()
	addRepo.addon.StockQuantity = 1

	_, err := svc.AddAddOn(context.Background(), 42, 3, 9, 2)
	assert.ErrorIs(t, err, ErrOutOfStock)
}

func TestAddAddOn_ClosedReservation(t *testing.T) {
	svc, resRepo, _ := newFixture()
	resRepo.res.Status = domain.ReservationCompleted

	_, err := svc.AddAddOn(context.Background(), 42, 3, 9, 1)
	assert.ErrorIs(t, err, ErrReservationClosed)
}

func TestAddAddOn_OwnerOnly(t *testing.T) {
	svc, _, _ := newFixture()

	_, err := svc.AddAddOn(context.Background(), 42, 777, 9, 1)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestAddAddOn_InvalidQuantity(t *testing.T) {
	svc, _, _ := newFixture()

	_, err := svc.AddAddOn(context.Background(), 42, 3, 9, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByID_ReturnsReservationWithAddOns(t *testing.T) {
	svc, _, addRepo := newFixture()
	addRepo.items = []*domain.ReservationAddOn{{
		ID:            1,
		ReservationID: 42,
		AddOnID:       9,
		Quantity:      1,
		PriceSnapshot: decimal.RequireFromString("15.00"),
	}}

	details, err := svc.GetByID(context.Background(), 42, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(42), details.Reservation.ID)
	assert.Len(t, details.AddOns, 1)
}

func TestGetByID_AccessDeniedForStranger(t *testing.T) {
	svc, _, _ := newFixture()

	_, err := svc.GetByID(context.Background(), 42, 777)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _, _ := newFixture()

	_, err := svc.GetByID(context.Background(), 404, 3)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}
