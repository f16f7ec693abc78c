package get_availability

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// Request модель запроса доступности корта на дату
type Request struct {
	CourtID int64
	Date    time.Time
}

// BusinessHours рабочие часы компании на день недели запрошенной даты
type BusinessHours struct {
	Open   *types.TimeString
	Close  *types.TimeString
	IsOpen bool
}

// BookedSlot занятый интервал корта
type BookedSlot struct {
	Start  types.TimeString
	End    types.TimeString
	Status string
}

// Response модель ответа: рабочие часы и занятые интервалы.
// Снимок текущего состояния без блокировок: параллельно создаваемая бронь
// может быть ещё не видна.
type Response struct {
	CourtID       int64
	Date          time.Time
	BusinessHours BusinessHours
	BookedSlots   []BookedSlot
}
