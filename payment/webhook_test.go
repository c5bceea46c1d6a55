package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "whsec_test_secret"

// signPayload produces a Stripe-Signature header for the given body, using
// the provider's t=timestamp,v1=HMAC-SHA256("timestamp.body") scheme.
func signPayload(payload []byte, secret string) string {
	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts, payload)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

const completedPayload = `{
	"id": "evt_1",
	"type": "checkout.session.completed",
	"data": {
		"object": {
			"id": "cs_test_42",
			"amount_total": 4500,
			"metadata": {"userId": "1", "type": "cart-checkout"}
		}
	}
}`

func TestParseEventVerifiesAndDecodes(t *testing.T) {
	payload := []byte(completedPayload)

	event, err := ParseEvent(payload, signPayload(payload, testSecret), testSecret)
	require.NoError(t, err)
	assert.Equal(t, EventSessionCompleted, event.Type)
	assert.Equal(t, "cs_test_42", event.Session.ID)
	assert.Equal(t, int64(4500), event.Session.AmountTotal)
	assert.Equal(t, "cart-checkout", event.Session.Metadata["type"])
}

func TestParseEventRejectsBadSignature(t *testing.T) {
	payload := []byte(completedPayload)

	_, err := ParseEvent(payload, signPayload(payload, "whsec_other"), testSecret)
	assert.ErrorIs(t, err, ErrInvalidSignature)

	_, err = ParseEvent(payload, "t=0,v1=deadbeef", testSecret)
	assert.ErrorIs(t, err, ErrInvalidSignature)

	_, err = ParseEvent(payload, "", testSecret)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestParseEventRejectsTamperedPayload(t *testing.T) {
	payload := []byte(completedPayload)
	header := signPayload(payload, testSecret)

	tampered := []byte(`{"id":"evt_1","type":"checkout.session.completed","data":{"object":{"id":"cs_evil","amount_total":1}}}`)
	_, err := ParseEvent(tampered, header, testSecret)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestParseEventPassesThroughOtherTypes(t *testing.T) {
	payload := []byte(`{"id": "evt_2", "type": "payment_intent.created", "data": {"object": {}}}`)

	event, err := ParseEvent(payload, signPayload(payload, testSecret), testSecret)
	require.NoError(t, err)
	assert.Equal(t, "payment_intent.created", event.Type)
	assert.Empty(t, event.Session.ID)
}
