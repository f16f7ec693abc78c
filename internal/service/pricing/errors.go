package pricing

import "errors"

var (
	// ErrInvalidTimeRange возвращается, когда start_time >= end_time
	ErrInvalidTimeRange = errors.New("pricing: start_time must be before end_time")

	// ErrInvalidSlotWindow возвращается при некорректном тарифном окне
	ErrInvalidSlotWindow = errors.New("pricing: invalid time slot window")
)
