package gateway_webhook

import (
	"encoding/json"
	"net/http"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	settleWebhook "github.com/m04kA/SMC-CourtBookingService/internal/usecase/settle_webhook"
)

type Handler struct {
	useCase SettleWebhookUseCase
	logger  Logger
}

func NewHandler(useCase SettleWebhookUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/webhooks/mercadopago
//
// Контракт со шлюзом: всегда 200. Любой другой статус заставит шлюз
// ретраить уведомление; идемпотентность обеспечивает usecase.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ev := &settleWebhook.Event{
		XSignature: r.Header.Get("x-signature"),
		XRequestID: r.Header.Get("x-request-id"),
	}

	query := r.URL.Query()
	ev.QueryDataID = query.Get("data.id")

	// Новый формат присылает тело {type, data:{id}}, старый — query topic/id
	var body webhookBody
	if err := json.NewDecoder(r.Body).Decode(&body); err == nil && body.Type != "" {
		ev.Type = body.Type
		ev.DataID = body.Data.ID
	} else {
		ev.Type = query.Get("topic")
		ev.DataID = query.Get("id")
	}
	if ev.DataID == "" {
		ev.DataID = ev.QueryDataID
	}

	if err := h.useCase.Execute(r.Context(), ev); err != nil {
		// Ошибка только логируется, шлюзу всё равно отвечаем 200
		h.logger.Error("POST /webhooks/mercadopago - Settlement error: data_id=%s, error=%v", ev.DataID, err)
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
