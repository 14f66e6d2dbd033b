package validate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	name, err := Name(map[string]any{"name": "Rice"})
	require.Nil(t, err)
	assert.Equal(t, "Rice", name)
}

func TestNameTrimsWhitespace(t *testing.T) {
	name, err := Name(map[string]any{"name": "  Rice  "})
	require.Nil(t, err)
	assert.Equal(t, "Rice", name)
}

func TestNameInvalid(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
	}{
		{"missing", map[string]any{}},
		{"not a string", map[string]any{"name": json.Number("5")}},
		{"empty", map[string]any{"name": ""}},
		{"whitespace only", map[string]any{"name": "   "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Name(tt.payload)
			require.NotNil(t, err)
			assert.Equal(t, "name", err.Field)
		})
	}
}

func TestQuantity(t *testing.T) {
	qty, err := Quantity(map[string]any{"quantity": json.Number("2")})
	require.Nil(t, err)
	assert.Equal(t, int64(2), qty)
}

func TestQuantityInvalid(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
		reason  string
	}{
		{"missing", map[string]any{}, "is required"},
		{"not a number", map[string]any{"quantity": "two"}, "must be a number"},
		{"fractional", map[string]any{"quantity": json.Number("2.5")}, "must be a whole number"},
		{"negative", map[string]any{"quantity": json.Number("-1")}, "must be at least 1"},
		// Zero is present, just out of range; it must not be reported
		// as missing.
		{"zero", map[string]any{"quantity": json.Number("0")}, "must be at least 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Quantity(tt.payload)
			require.NotNil(t, err)
			assert.Equal(t, "quantity", err.Field)
			assert.Equal(t, tt.reason, err.Reason)
		})
	}
}

func TestExpiration(t *testing.T) {
	exp, err := Expiration(map[string]any{"expiration": "2025-01-01"})
	require.Nil(t, err)
	assert.Equal(t, "2025-01-01", exp)
}

// The pattern checks shape only; impossible calendar dates pass.
func TestExpirationLenient(t *testing.T) {
	exp, err := Expiration(map[string]any{"expiration": "2024-13-40"})
	require.Nil(t, err)
	assert.Equal(t, "2024-13-40", exp)
}

func TestExpirationInvalid(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
	}{
		{"missing", map[string]any{}},
		{"not a string", map[string]any{"expiration": json.Number("20250101")}},
		{"slashes", map[string]any{"expiration": "2025/01/01"}},
		{"prose", map[string]any{"expiration": "Jan 1 2025"}},
		{"trailing garbage", map[string]any{"expiration": "2025-01-01x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Expiration(tt.payload)
			require.NotNil(t, err)
			assert.Equal(t, "expiration", err.Field)
		})
	}
}

func TestID(t *testing.T) {
	id, err := ID("42")
	require.Nil(t, err)
	assert.Equal(t, int64(42), id)
}

func TestIDInvalid(t *testing.T) {
	for _, raw := range []string{"", "abc", "5abc", "4.2"} {
		t.Run(raw, func(t *testing.T) {
			_, err := ID(raw)
			require.NotNil(t, err)
			assert.Equal(t, "id", err.Field)
		})
	}
}
