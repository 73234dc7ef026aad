package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifySignature(t *testing.T) {
	payload := []byte(`{"event":{"type":"RENEWAL"}}`)
	secret := "top-secret"

	valid := Sign(payload, secret)

	assert.True(t, VerifySignature(payload, valid, secret))
	assert.False(t, VerifySignature(payload, "deadbeef", secret), "wrong signature must fail")
	assert.False(t, VerifySignature(payload, "not-hex!", secret), "undecodable signature must fail")
	assert.False(t, VerifySignature(payload, valid, "other-secret"), "wrong secret must fail")
	assert.False(t, VerifySignature(payload, "", secret), "missing header must fail")
	assert.False(t, VerifySignature(payload, valid, ""), "missing secret must fail")
}
