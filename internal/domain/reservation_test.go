package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingReservation(subtotalCourt, paid string) *Reservation {
	return &Reservation{
		CourtID:        1,
		UserID:         1,
		StartTime:      time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC),
		EndTime:        time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC),
		SubtotalCourt:  decimal.RequireFromString(subtotalCourt),
		SubtotalAddons: decimal.Zero,
		AmountPaid:     decimal.RequireFromString(paid),
		Status:         ReservationPending,
	}
}

func TestRecompute_DerivesTotals(t *testing.T) {
	res := newPendingReservation("100.00", "0")
	res.SubtotalAddons = decimal.RequireFromString("25.50")

	res.Recompute(50)

	assert.Equal(t, "125.50", res.TotalPrice.StringFixed(2))
	assert.Equal(t, "125.50", res.AmountPending.StringFixed(2))
}

func TestRecompute_ConfirmsAtExactThreshold(t *testing.T) {
	res := newPendingReservation("100.00", "50.00")

	res.Recompute(50)

	assert.Equal(t, ReservationConfirmed, res.Status)
	assert.Equal(t, "50.00", res.AmountPending.StringFixed(2))
}

func TestRecompute_StaysPendingBelowThreshold(t *testing.T) {
	res := newPendingReservation("100.00", "49.99")

	res.Recompute(50)

	assert.Equal(t, ReservationPending, res.Status)
}

func TestRecompute_ZeroTotalNeverConfirms(t *testing.T) {
	// Порог 0% от нулевой суммы формально покрыт, но пустая бронь
	// не должна подтверждаться
	res := newPendingReservation("0", "0")

	res.Recompute(0)

	assert.Equal(t, ReservationPending, res.Status)
}

func TestRecompute_ConfirmationIsOneWay(t *testing.T) {
	res := newPendingReservation("100.00", "50.00")
	res.Recompute(50)
	require.Equal(t, ReservationConfirmed, res.Status)

	// Добавленная после подтверждения услуга поднимает порог,
	// но статус не откатывается
	res.SubtotalAddons = decimal.RequireFromString("200.00")
	res.Recompute(50)

	assert.Equal(t, ReservationConfirmed, res.Status)
	assert.Equal(t, "300.00", res.TotalPrice.StringFixed(2))
	assert.Equal(t, "250.00", res.AmountPending.StringFixed(2))
}

func TestRecompute_TerminalStatusesUntouched(t *testing.T) {
	for _, status := range []ReservationStatus{ReservationCompleted, ReservationVoided} {
		res := newPendingReservation("100.00", "100.00")
		res.Status = status

		res.Recompute(50)

		assert.Equal(t, status, res.Status)
	}
}

func TestRecompute_OverpaymentGoesNegativePending(t *testing.T) {
	res := newPendingReservation("100.00", "150.00")

	res.Recompute(50)

	assert.Equal(t, ReservationConfirmed, res.Status)
	assert.Equal(t, "-50.00", res.AmountPending.StringFixed(2))
}

func TestValidate_TimeRange(t *testing.T) {
	res := newPendingReservation("10.00", "0")
	require.NoError(t, res.Validate())

	res.EndTime = res.StartTime
	assert.ErrorIs(t, res.Validate(), ErrInvalidTimeRange)
}

func TestIsTerminalAndIsActive(t *testing.T) {
	res := newPendingReservation("10.00", "0")
	assert.False(t, res.IsTerminal())
	assert.True(t, res.IsActive())

	res.Status = ReservationVoided
	assert.True(t, res.IsTerminal())
	assert.False(t, res.IsActive())

	res.Status = ReservationCompleted
	assert.True(t, res.IsTerminal())
	assert.True(t, res.IsActive())
}
