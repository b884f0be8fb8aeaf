package client

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrKind classifies what went wrong before any HTTP status is known.
type ErrKind int

const (
	KindHTTP ErrKind = iota
	KindNetwork
	KindParse
	KindTimeout
)

// APIError is the raw failure of a remote call: a transport-class
// failure or an HTTP status plus whatever JSON body came back.
type APIError struct {
	Kind   ErrKind
	Status int
	Body   map[string]any
	Err    error
}

func (e *APIError) Error() string {
	switch e.Kind {
	case KindNetwork:
		return fmt.Sprintf("network error: %v", e.Err)
	case KindParse:
		return fmt.Sprintf("parse error: %v", e.Err)
	case KindTimeout:
		return fmt.Sprintf("timeout: %v", e.Err)
	}
	return fmt.Sprintf("api error: status %d", e.Status)
}

func (e *APIError) Unwrap() error { return e.Err }

// Normalized is the uniform, display-ready form of any remote-call
// failure. Message is never empty. FieldErrors is non-nil only when at
// least one field-level message was found in the response body.
type Normalized struct {
	Message     string
	FieldErrors map[string]string
}

const genericMessage = "Something went wrong. Please try again."

// NormalizeError converts any error raised by a remote call into a
// Normalized result. The mapping is deterministic: the same input
// always yields the same output.
func NormalizeError(err error) Normalized {
	if err == nil {
		return Normalized{Message: genericMessage}
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		msg := err.Error()
		if msg == "" {
			msg = genericMessage
		}
		return Normalized{Message: msg}
	}

	switch apiErr.Kind {
	case KindNetwork:
		return Normalized{Message: "Unable to reach the server. Check your connection and try again."}
	case KindParse:
		return Normalized{Message: "The server returned an unexpected response."}
	case KindTimeout:
		return Normalized{Message: "The request timed out. Please try again."}
	}

	msg := bodyMessage(apiErr.Body)
	fieldErrors := bodyFieldErrors(apiErr.Body)

	// Status defaults apply only when the body carried no message of
	// its own.
	if msg == "" {
		msg = statusMessage(apiErr.Status, apiErr.Body, fieldErrors)
	}
	if msg == "" {
		msg = genericMessage
	}

	n := Normalized{Message: msg}
	if len(fieldErrors) > 0 {
		n.FieldErrors = fieldErrors
	}
	return n
}

// bodyMessage extracts a human-readable message from the error body.
// Backend error codes (INVALID_PASSWORD and friends) are not messages;
// they feed the status-specific branch instead.
func bodyMessage(body map[string]any) string {
	if s, ok := body["message"].(string); ok && s != "" {
		return s
	}
	if s, ok := body["error"].(string); ok && s != "" && !isErrorCode(s) {
		return s
	}
	return ""
}

// isErrorCode reports whether a string looks like a machine code
// rather than display text (SCREAMING_SNAKE_CASE).
func isErrorCode(s string) bool {
	for _, r := range s {
		if !(r >= 'A' && r <= 'Z') && r != '_' && !(r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}

// bodyFieldErrors pulls field-level messages from a body "errors"
// value, which the backend has sent both as an array of objects
// ({field|path|param, message|msg|error}) and as an object keyed by
// field name.
func bodyFieldErrors(body map[string]any) map[string]string {
	out := map[string]string{}
	switch errs := body["errors"].(type) {
	case []any:
		for _, item := range errs {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			field := firstString(m, "field", "path", "param")
			msg := firstString(m, "message", "msg", "error")
			if field != "" && msg != "" {
				out[field] = msg
			}
		}
	case map[string]any:
		for field, v := range errs {
			switch t := v.(type) {
			case string:
				if t != "" {
					out[field] = t
				}
			case map[string]any:
				if msg := firstString(t, "message", "msg"); msg != "" {
					out[field] = msg
				}
			}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func statusMessage(status int, body map[string]any, fieldErrors map[string]string) string {
	switch {
	case status == http.StatusUnauthorized:
		// Two signals select the password-specific text: an explicit
		// backend code, or a field-level error on the password field.
		code := firstString(body, "code")
		if code == "" {
			if s, ok := body["error"].(string); ok && isErrorCode(s) {
				code = s
			}
		}
		if code == "INVALID_PASSWORD" || fieldErrors["password"] != "" {
			return "Password is wrong."
		}
		return "Invalid email or password."
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return "Please check the highlighted fields."
	case status == http.StatusForbidden:
		return "You do not have permission to perform this action."
	case status == http.StatusNotFound:
		return "The requested resource was not found."
	case status == http.StatusConflict:
		return "This item conflicts with an existing one."
	case status >= 500:
		return "Server error. Please try again later."
	}
	return ""
}
