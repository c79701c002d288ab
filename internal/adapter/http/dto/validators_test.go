package dto

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

// --- SanitizeStruct tests ---

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	req := CashEntryRequest{
		EntryType: " manual_deposit ",
		Note:      "  wire 42  ",
	}
	SanitizeStruct(&req)

	assert.Equal(t, "manual_deposit", req.EntryType)
	assert.Equal(t, "wire 42", req.Note)
}

func TestSanitizeStruct_EscapesHTML(t *testing.T) {
	req := ReasonRequest{Reason: "assay <script>alert('x')</script> mismatch"}
	SanitizeStruct(&req)

	assert.Contains(t, req.Reason, "&lt;script&gt;")
	assert.NotContains(t, req.Reason, "<script>")
}

func TestSanitizeStruct_HandlesPointerString(t *testing.T) {
	url := "  https://example.com/hook  "
	req := CreateOrderRequest{CallbackURL: &url}
	SanitizeStruct(&req)

	assert.Equal(t, "https://example.com/hook", *req.CallbackURL)
}

func TestSanitizeStruct_NilPointerIsNoOp(t *testing.T) {
	req := CreateOrderRequest{UserID: "u"}
	SanitizeStruct(&req)
	assert.Nil(t, req.CallbackURL)
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	s := "hello"
	SanitizeStruct(s) // should not panic
}

// --- Custom Validator tests ---

func TestSafeID_Valid(t *testing.T) {
	cases := []string{
		"10g",
		"1KG",
		"a.b.c",
		"WG-2026_001",
	}
	for _, tc := range cases {
		assert.True(t, safeStringRe.MatchString(tc), "expected valid: %s", tc)
	}
}

func TestSafeID_Invalid(t *testing.T) {
	cases := []string{
		"10 g",     // space
		"10g<b>",   // angle brackets
		"10g;DROP", // semicolon
		"",         // empty
		"10g\n",    // newline
	}
	for _, tc := range cases {
		assert.False(t, safeStringRe.MatchString(tc), "expected invalid: %s", tc)
	}
}

func TestCreateOrderRequest_Binding(t *testing.T) {
	valid := "https://platform.example/callbacks/orders"
	invalid := "ftp://platform.example/x"
	tests := []struct {
		name    string
		req     CreateOrderRequest
		wantErr bool
	}{
		{"valid", CreateOrderRequest{UserID: "6f1c2b8e-7d43-4a8e-9b11-2d7a0f3c9e55", BarSize: "10g", BarCount: 5, CallbackURL: &valid}, false},
		{"missing user", CreateOrderRequest{BarSize: "10g", BarCount: 5}, true},
		{"user not uuid", CreateOrderRequest{UserID: "alice", BarSize: "10g", BarCount: 5}, true},
		{"zero bars", CreateOrderRequest{UserID: "6f1c2b8e-7d43-4a8e-9b11-2d7a0f3c9e55", BarSize: "10g"}, true},
		{"unsafe bar size", CreateOrderRequest{UserID: "6f1c2b8e-7d43-4a8e-9b11-2d7a0f3c9e55", BarSize: "10 g", BarCount: 1}, true},
		{"non-http callback", CreateOrderRequest{UserID: "6f1c2b8e-7d43-4a8e-9b11-2d7a0f3c9e55", BarSize: "10g", BarCount: 1, CallbackURL: &invalid}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(&tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
