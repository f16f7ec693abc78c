package pricing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// BreakdownEntry одна строка детализации стоимости: вклад одного тарифного окна
type BreakdownEntry struct {
	SlotName     string
	PricePerHour decimal.Decimal
	Hours        decimal.Decimal // округлено до 2 знаков
	Subtotal     decimal.Decimal // округлено до 2 знаков
}

// Quote вычисляет стоимость брони по пересечениям с тарифными окнами.
// Чистая функция: не ходит в БД, вся арифметика на decimal.
//
// Для каждого тарифа (court_type, time_slot) берётся пересечение времени суток
// запрошенного интервала с окном тарифа; часы пересечения умножаются на цену
// за час. Пересекающиеся тарифные окна складываются АДДИТИВНО: интервал,
// попавший в два окна, тарифицируется по обоим (зафиксированное поведение
// продукта, не менять без явного решения).
//
// Сравнение идёт только по времени суток: бронь через полночь корректно не
// считается (известное ограничение, сохранено как в продукте).
func Quote(prices []*domain.CourtTypePrice, start, end time.Time) (decimal.Decimal, []BreakdownEntry, error) {
	if !start.Before(end) {
		return decimal.Zero, nil, ErrInvalidTimeRange
	}

	reqStart := secondsOfDay(start)
	reqEnd := secondsOfDay(end)

	total := decimal.Zero
	breakdown := make([]BreakdownEntry, 0)

	for _, price := range prices {
		slotStart, err := slotSeconds(price.Slot.StartTime.String())
		if err != nil {
			return decimal.Zero, nil, err
		}
		slotEnd, err := slotSeconds(price.Slot.EndTime.String())
		if err != nil {
			return decimal.Zero, nil, err
		}

		overlapStart := maxInt(reqStart, slotStart)
		overlapEnd := minInt(reqEnd, slotEnd)

		if overlapStart >= overlapEnd {
			continue
		}

		hours := decimal.NewFromInt(int64(overlapEnd - overlapStart)).
			Div(decimal.NewFromInt(3600))
		cost := hours.Mul(price.PricePerHour)

		// Итог накапливается без округления, округляются только строки детализации
		total = total.Add(cost)

		breakdown = append(breakdown, BreakdownEntry{
			SlotName:     price.Slot.Name,
			PricePerHour: price.PricePerHour,
			Hours:        hours.Round(domain.MoneyScale),
			Subtotal:     cost.Round(domain.MoneyScale),
		})
	}

	return total.Round(domain.MoneyScale), breakdown, nil
}

// secondsOfDay возвращает секунды с начала суток для момента времени
func secondsOfDay(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

// slotSeconds парсит границу тарифного окна HH:MM в секунды с начала суток
func slotSeconds(hhmm string) (int, error) {
	parsed, err := time.Parse(domain.TimeFormat, hhmm)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSlotWindow, hhmm)
	}
	return parsed.Hour()*3600 + parsed.Minute()*60, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
