package settle_webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testSecret = "super-secret"

func signedEvent(secret, dataID, requestID, ts string) *Event {
	manifest := fmt.Sprintf("id:%s;request-id:%s;ts:%s;", dataID, requestID, ts)
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(manifest))
	v1 := hex.EncodeToString(mac.Sum(nil))

	return &Event{
		Type:        EventTypePayment,
		DataID:      dataID,
		QueryDataID: dataID,
		XSignature:  fmt.Sprintf("ts=%s,v1=%s", ts, v1),
		XRequestID:  requestID,
	}
}

func TestValidateSignature_Valid(t *testing.T) {
	ev := signedEvent(testSecret, "12345", "req-abc", "1700000000")
	assert.True(t, validateSignature(testSecret, ev))
}

func TestValidateSignature_SpacesAroundParts(t *testing.T) {
	ev := signedEvent(testSecret, "12345", "req-abc", "1700000000")
	// Некоторые доставки приходят с пробелами после запятой
	ev.XSignature = "ts=1700000000, v1=" + ev.XSignature[len("ts=1700000000,v1="):]
	assert.True(t, validateSignature(testSecret, ev))
}

func TestValidateSignature_WrongSecret(t *testing.T) {
	ev := signedEvent("other-secret", "12345", "req-abc", "1700000000")
	assert.False(t, validateSignature(testSecret, ev))
}

func TestValidateSignature_TamperedDataID(t *testing.T) {
	ev := signedEvent(testSecret, "12345", "req-abc", "1700000000")
	ev.QueryDataID = "99999"
	assert.False(t, validateSignature(testSecret, ev))
}

func TestValidateSignature_MissingParts(t *testing.T) {
	ev := signedEvent(testSecret, "12345", "req-abc", "1700000000")

	noSig := *ev
	noSig.XSignature = ""
	assert.False(t, validateSignature(testSecret, &noSig))

	noReqID := *ev
	noReqID.XRequestID = ""
	assert.False(t, validateSignature(testSecret, &noReqID))

	noDataID := *ev
	noDataID.QueryDataID = ""
	assert.False(t, validateSignature(testSecret, &noDataID))

	noTS := *ev
	noTS.XSignature = "v1=deadbeef"
	assert.False(t, validateSignature(testSecret, &noTS))
}
