package webhooks

import "testing"

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"trigger":"SIGN_REQUEST.COMPLETED","source":{"id":"ext-1"}}`)

	t.Run("round trip", func(t *testing.T) {
		sig := Sign("key-1", body)
		if !VerifySignature("key-1", body, sig) {
			t.Fatalf("expected valid signature")
		}
	})

	t.Run("wrong key", func(t *testing.T) {
		sig := Sign("key-1", body)
		if VerifySignature("key-2", body, sig) {
			t.Fatalf("expected mismatch")
		}
	})

	t.Run("tampered body", func(t *testing.T) {
		sig := Sign("key-1", body)
		if VerifySignature("key-1", []byte(`{"trigger":"SIGN_REQUEST.COMPLETED","source":{"id":"ext-2"}}`), sig) {
			t.Fatalf("expected mismatch")
		}
	})

	t.Run("empty signature", func(t *testing.T) {
		if VerifySignature("key-1", body, "") {
			t.Fatalf("expected mismatch")
		}
	})

	t.Run("not base64", func(t *testing.T) {
		if VerifySignature("key-1", body, "%%%not-base64%%%") {
			t.Fatalf("expected mismatch")
		}
	})
}

func TestVerifyWithRotation(t *testing.T) {
	body := []byte(`{"trigger":"SIGN_REQUEST.DECLINED","source":{"id":"ext-1"}}`)

	t.Run("primary key matches", func(t *testing.T) {
		if !VerifyWithRotation("key-new", "key-old", body, Sign("key-new", body)) {
			t.Fatalf("expected valid")
		}
	})

	t.Run("secondary key matches during rotation", func(t *testing.T) {
		if !VerifyWithRotation("key-new", "key-old", body, Sign("key-old", body)) {
			t.Fatalf("expected valid")
		}
	})

	t.Run("neither key matches", func(t *testing.T) {
		if VerifyWithRotation("key-new", "key-old", body, Sign("key-stale", body)) {
			t.Fatalf("expected rejection")
		}
	})

	t.Run("unconfigured primary skips verification", func(t *testing.T) {
		if !VerifyWithRotation("", "key-old", body, "") {
			t.Fatalf("expected degraded-mode pass")
		}
	})
}
