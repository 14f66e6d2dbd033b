// Package validate checks raw request payloads field by field. Each
// validator is pure: it returns the typed value or a *FieldError and
// never writes a response, leaving the caller in charge of producing
// exactly one reply per request.
package validate

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// FieldError describes why a request field was rejected. Its message is
// safe to return to the client.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return e.Field + " " + e.Reason
}

func invalid(field, reason string) *FieldError {
	return &FieldError{Field: field, Reason: reason}
}

// expirationPattern checks shape only. Calendar validity is deliberately
// not enforced: "2024-13-40" passes.
var expirationPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Name returns the item name from payload, trimmed of surrounding
// whitespace.
func Name(payload map[string]any) (string, *FieldError) {
	raw, ok := payload["name"]
	if !ok {
		return "", invalid("name", "is required")
	}
	name, ok := raw.(string)
	if !ok {
		return "", invalid("name", "must be a string")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", invalid("name", "must not be empty")
	}
	return name, nil
}

// Quantity returns the item quantity from payload. A quantity of 0 is
// present but out of range, not missing; the payload must be decoded
// with json.Decoder.UseNumber for the numeric check to work.
func Quantity(payload map[string]any) (int64, *FieldError) {
	raw, ok := payload["quantity"]
	if !ok {
		return 0, invalid("quantity", "is required")
	}
	num, ok := raw.(json.Number)
	if !ok {
		return 0, invalid("quantity", "must be a number")
	}
	qty, err := num.Int64()
	if err != nil {
		return 0, invalid("quantity", "must be a whole number")
	}
	if qty < 1 {
		return 0, invalid("quantity", "must be at least 1")
	}
	return qty, nil
}

// Expiration returns the expiration date string from payload.
func Expiration(payload map[string]any) (string, *FieldError) {
	raw, ok := payload["expiration"]
	if !ok {
		return "", invalid("expiration", "is required")
	}
	exp, ok := raw.(string)
	if !ok {
		return "", invalid("expiration", "must be a string")
	}
	if !expirationPattern.MatchString(exp) {
		return "", invalid("expiration", "must be a date in YYYY-MM-DD format")
	}
	return exp, nil
}

// ID parses an item id from a path parameter. The whole string must be
// a base-10 integer; trailing garbage is rejected.
func ID(raw string) (int64, *FieldError) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, invalid("id", "must be an integer")
	}
	return id, nil
}
