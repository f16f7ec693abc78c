package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

func price(name, start, end string, perHour string) *domain.CourtTypePrice {
	return &domain.CourtTypePrice{
		PricePerHour: decimal.RequireFromString(perHour),
		Slot: domain.TimeSlot{
			Name:      name,
			StartTime: types.TimeString(start),
			EndTime:   types.TimeString(end),
		},
	}
}

func at(hour, minute int) time.Time {
	return time.Date(2025, 10, 15, hour, minute, 0, 0, time.UTC)
}

func TestQuote_SplitsAcrossWindows(t *testing.T) {
	prices := []*domain.CourtTypePrice{
		price("Mañana", "06:00", "12:00", "20.00"),
		price("Tarde", "12:00", "18:00", "30.00"),
	}

	// 10:00-14:00: 2 часа утреннего тарифа + 2 часа дневного
	total, breakdown, err := Quote(prices, at(10, 0), at(14, 0))
	require.NoError(t, err)

	assert.Equal(t, "100.00", total.StringFixed(2))
	require.Len(t, breakdown, 2)

	assert.Equal(t, "Mañana", breakdown[0].SlotName)
	assert.Equal(t, "2", breakdown[0].Hours.String())
	assert.Equal(t, "40.00", breakdown[0].Subtotal.StringFixed(2))

	assert.Equal(t, "Tarde", breakdown[1].SlotName)
	assert.Equal(t, "60.00", breakdown[1].Subtotal.StringFixed(2))
}

func TestQuote_OverlappingWindowsBillAdditively(t *testing.T) {
	prices := []*domain.CourtTypePrice{
		price("Base", "08:00", "22:00", "10.00"),
		price("Peak", "18:00", "21:00", "5.00"),
	}

	// 18:00-20:00 попадает в оба окна: 2*10 + 2*5
	total, breakdown, err := Quote(prices, at(18, 0), at(20, 0))
	require.NoError(t, err)

	assert.Equal(t, "30.00", total.StringFixed(2))
	assert.Len(t, breakdown, 2)
}

func TestQuote_PartialHoursRounding(t *testing.T) {
	prices := []*domain.CourtTypePrice{
		price("Base", "08:00", "22:00", "10.00"),
	}

	// 90 минут = 1.5 часа
	total, breakdown, err := Quote(prices, at(10, 0), at(11, 30))
	require.NoError(t, err)

	assert.Equal(t, "15.00", total.StringFixed(2))
	require.Len(t, breakdown, 1)
	assert.Equal(t, "1.5", breakdown[0].Hours.String())
}

func TestQuote_TotalAccumulatesUnrounded(t *testing.T) {
	// 10 минут по 10.00/час = 1.666... за окно; два окна дают 3.33 в сумме,
	// а не 1.67+1.67
	prices := []*domain.CourtTypePrice{
		price("A", "10:00", "10:10", "10.00"),
		price("B", "10:00", "10:10", "10.00"),
	}

	total, breakdown, err := Quote(prices, at(10, 0), at(10, 10))
	require.NoError(t, err)

	assert.Equal(t, "3.33", total.StringFixed(2))
	require.Len(t, breakdown, 2)
	assert.Equal(t, "1.67", breakdown[0].Subtotal.StringFixed(2))
}

func TestQuote_NoMatchingWindow(t *testing.T) {
	prices := []*domain.CourtTypePrice{
		price("Mañana", "06:00", "12:00", "20.00"),
	}

	total, breakdown, err := Quote(prices, at(13, 0), at(14, 0))
	require.NoError(t, err)

	assert.True(t, total.IsZero())
	assert.Empty(t, breakdown)
}

func TestQuote_InvalidTimeRange(t *testing.T) {
	_, _, err := Quote(nil, at(14, 0), at(10, 0))
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	_, _, err = Quote(nil, at(10, 0), at(10, 0))
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestQuote_InvalidSlotWindow(t *testing.T) {
	prices := []*domain.CourtTypePrice{
		price("Broken", "garbage", "12:00", "20.00"),
	}

	_, _, err := Quote(prices, at(10, 0), at(11, 0))
	assert.ErrorIs(t, err, ErrInvalidSlotWindow)
}
