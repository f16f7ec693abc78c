package add_reservation_addon

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/service/reservations"
)

type ReservationService interface {
	AddAddOn(ctx context.Context, reservationID, userID, addOnID, quantity int64) (*reservations.ReservationDetails, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
