package gateway_webhook

// webhookBody тело уведомления шлюза (может отсутствовать)
type webhookBody struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}
