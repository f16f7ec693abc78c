package settle_webhook

// EventTypePayment тип события шлюза, который обрабатывает этот usecase
const EventTypePayment = "payment"

// Event входящее уведомление шлюза, извлечённое из HTTP запроса.
// Поля заполняются handler'ом из тела ({type, data:{id}}) либо
// query-параметров (topic, id); подпись считается по query-параметру data.id.
type Event struct {
	Type        string // body.type или query topic
	DataID      string // body.data.id или query id
	QueryDataID string // query data.id — участвует в манифесте подписи
	XSignature  string // заголовок x-signature: "ts=<ts>,v1=<hexhmac>"
	XRequestID  string // заголовок x-request-id
}
