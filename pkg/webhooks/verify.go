// Package webhooks verifies the authenticity of inbound provider events.
//
// The e-signature provider signs each delivery as base64(HMAC-SHA256(body,
// key)). Verification accepts a primary and an optional secondary key so a
// key rotation can be rolled out without dropping in-flight deliveries.
package webhooks

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
)

// Sign computes the base64 HMAC-SHA256 signature for a raw body. Used by
// tests and outbound tooling; the provider computes the same value.
func Sign(key string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(key))
	_, _ = mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks the header value against one key in constant time.
func VerifySignature(key string, body []byte, signatureHeader string) bool {
	sig := strings.TrimSpace(signatureHeader)
	if sig == "" || key == "" {
		return false
	}
	got, err := base64.StdEncoding.DecodeString(sig)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, []byte(key))
	_, _ = mac.Write(body)
	return hmac.Equal(got, mac.Sum(nil))
}

// VerifyWithRotation checks the signature against the primary key and, on
// mismatch, the secondary key. An empty primary key means signing is not
// configured and verification is skipped; this is an explicit degraded mode
// for non-production environments.
func VerifyWithRotation(primaryKey, secondaryKey string, body []byte, signatureHeader string) bool {
	if strings.TrimSpace(primaryKey) == "" {
		return true
	}
	if VerifySignature(primaryKey, body, signatureHeader) {
		return true
	}
	return VerifySignature(secondaryKey, body, signatureHeader)
}
