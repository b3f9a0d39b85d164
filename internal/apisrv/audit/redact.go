package audit

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const redactedPlaceholder = "[redacted]"

// Top-level state fields that never belong in the audit trail verbatim.
var sensitiveFields = []string{
	"password",
	"secret",
	"api_key",
	"token",
	"access_token",
	"refresh_token",
}

// Redact replaces sensitive fields in a JSON state document with a
// placeholder. Unparseable input is passed through untouched; the recorder
// marshaled it, so that only happens for raw client-supplied state.
func Redact(raw []byte) []byte {
	if !gjson.ValidBytes(raw) {
		return raw
	}
	out := raw
	for _, field := range sensitiveFields {
		if gjson.GetBytes(out, field).Exists() {
			redacted, err := sjson.SetBytes(out, field, redactedPlaceholder)
			if err != nil {
				continue
			}
			out = redacted
		}
	}
	return out
}
