package client

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeErrorTransportClasses(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"network", &APIError{Kind: KindNetwork, Err: errors.New("dial tcp: refused")}, "Unable to reach the server. Check your connection and try again."},
		{"parse", &APIError{Kind: KindParse, Err: errors.New("invalid json")}, "The server returned an unexpected response."},
		{"timeout", &APIError{Kind: KindTimeout, Err: errors.New("deadline exceeded")}, "The request timed out. Please try again."},
		{"plain error", errors.New("boom"), "boom"},
		{"nil", nil, "Something went wrong. Please try again."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NormalizeError(tt.err)
			assert.Equal(t, tt.want, n.Message)
			assert.Nil(t, n.FieldErrors)
		})
	}
}

func TestNormalizeErrorStatusDefaults(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{400, "Please check the highlighted fields."},
		{422, "Please check the highlighted fields."},
		{401, "Invalid email or password."},
		{403, "You do not have permission to perform this action."},
		{404, "The requested resource was not found."},
		{409, "This item conflicts with an existing one."},
		{500, "Server error. Please try again later."},
		{503, "Server error. Please try again later."},
	}
	for _, tt := range tests {
		n := NormalizeError(&APIError{Kind: KindHTTP, Status: tt.status})
		assert.Equal(t, tt.want, n.Message, "status %d", tt.status)
	}
}

func TestNormalizeErrorBodyMessageWinsOverDefault(t *testing.T) {
	n := NormalizeError(&APIError{
		Kind:   KindHTTP,
		Status: 404,
		Body:   map[string]any{"message": "Product no longer exists"},
	})
	assert.Equal(t, "Product no longer exists", n.Message)
}

func TestNormalizeErrorFieldErrorsArrayForm(t *testing.T) {
	n := NormalizeError(&APIError{
		Kind:   KindHTTP,
		Status: 422,
		Body: map[string]any{
			"errors": []any{
				map[string]any{"field": "name", "message": "Name is required"},
				map[string]any{"path": "price", "msg": "Price must be positive"},
				map[string]any{"param": "email", "error": "Invalid email"},
			},
		},
	})
	assert.Equal(t, "Please check the highlighted fields.", n.Message)
	assert.Equal(t, map[string]string{
		"name":  "Name is required",
		"price": "Price must be positive",
		"email": "Invalid email",
	}, n.FieldErrors)
}

func TestNormalizeErrorFieldErrorsObjectForm(t *testing.T) {
	n := NormalizeError(&APIError{
		Kind:   KindHTTP,
		Status: 400,
		Body: map[string]any{
			"errors": map[string]any{
				"name":  "Required",
				"price": map[string]any{"message": "Too low"},
			},
		},
	})
	assert.Equal(t, map[string]string{"name": "Required", "price": "Too low"}, n.FieldErrors)
}

func TestNormalizeError401PasswordCode(t *testing.T) {
	// Login returning 401 with {code:"INVALID_PASSWORD"} and no field
	// errors must hit the password-specific branch.
	err := &APIError{Kind: KindHTTP, Status: 401, Body: map[string]any{"code": "INVALID_PASSWORD"}}
	n := NormalizeError(err)
	assert.Equal(t, "Password is wrong.", n.Message)
	assert.Nil(t, n.FieldErrors)
}

func TestNormalizeError401PasswordViaErrorCodeString(t *testing.T) {
	err := &APIError{Kind: KindHTTP, Status: 401, Body: map[string]any{"error": "INVALID_PASSWORD"}}
	n := NormalizeError(err)
	assert.Equal(t, "Password is wrong.", n.Message)
}

func TestNormalizeError401PasswordFieldError(t *testing.T) {
	err := &APIError{
		Kind:   KindHTTP,
		Status: 401,
		Body: map[string]any{
			"errors": []any{map[string]any{"field": "password", "message": "wrong"}},
		},
	}
	n := NormalizeError(err)
	assert.Equal(t, "Password is wrong.", n.Message)
	assert.Equal(t, map[string]string{"password": "wrong"}, n.FieldErrors)
}

func TestNormalizeErrorIdempotent(t *testing.T) {
	err := &APIError{Kind: KindHTTP, Status: 401, Body: map[string]any{"code": "INVALID_PASSWORD"}}
	first := NormalizeError(err)
	second := NormalizeError(err)
	assert.Equal(t, first, second)
}
