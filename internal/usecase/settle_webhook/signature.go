package settle_webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// validateSignature проверяет HMAC-SHA256 подпись уведомления шлюза.
//
// Шлюз подписывает манифест "id:{data.id};request-id:{x-request-id};ts:{ts};"
// секретным ключом; ts и v1 приходят в заголовке x-signature.
// Сравнение контраключа константное по времени.
func validateSignature(secret string, ev *Event) bool {
	if ev.XSignature == "" || ev.XRequestID == "" {
		return false
	}

	var ts, v1 string
	for _, part := range strings.Split(ev.XSignature, ",") {
		key, value, found := strings.Cut(part, "=")
		if !found {
			continue
		}
		switch strings.TrimSpace(key) {
		case "ts":
			ts = strings.TrimSpace(value)
		case "v1":
			v1 = strings.TrimSpace(value)
		}
	}

	if ts == "" || v1 == "" || ev.QueryDataID == "" {
		return false
	}

	manifest := fmt.Sprintf("id:%s;request-id:%s;ts:%s;", ev.QueryDataID, ev.XRequestID, ts)

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(manifest))
	calculated := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(calculated), []byte(v1))
}
