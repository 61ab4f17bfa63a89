package utils

import (
	"encoding/json"
	"net/http"
)

// HTTPError defines a custom error structure that includes an HTTP status code,
// a message and optional extra fields carried alongside "error" in the response body.
type HTTPError struct {
	Code    int                    `json:"-"`
	Message string                 `json:"message"`
	Extras  map[string]interface{} `json:"-"`
}

// Implement the Error() method to satisfy the error interface
func (e *HTTPError) Error() string {
	return e.Message
}

// Payload builds the JSON body for the error response: {"error": message}
// merged with any extra fields.
func (e *HTTPError) Payload() map[string]interface{} {
	payload := map[string]interface{}{"error": e.Message}
	for k, v := range e.Extras {
		payload[k] = v
	}
	return payload
}

// NewHTTPError creates a new HTTPError instance with a custom status code and message
func NewHTTPError(code int, message string) error {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// NewHTTPErrorWithExtras creates an HTTPError carrying extra response fields
func NewHTTPErrorWithExtras(code int, message string, extras map[string]interface{}) error {
	return &HTTPError{
		Code:    code,
		Message: message,
		Extras:  extras,
	}
}

// BadRequest creates a 400 Bad Request error
func BadRequest(message string) error {
	return NewHTTPError(http.StatusBadRequest, message)
}

// NotFound creates a 404 Not Found error
func NotFound(message string) error {
	return NewHTTPError(http.StatusNotFound, message)
}

// MethodNotAllowed creates a 405 Method Not Allowed error
func MethodNotAllowed(message string) error {
	return NewHTTPError(http.StatusMethodNotAllowed, message)
}

// InternalServerError creates a 500 Internal Server Error
func InternalServerError(message string) error {
	return NewHTTPError(http.StatusInternalServerError, message)
}

// WriteError is a helper function to send the error response as JSON
func WriteError(w http.ResponseWriter, err error) {
	httpErr, ok := err.(*HTTPError)
	if !ok {
		httpErr = &HTTPError{
			Code:    http.StatusInternalServerError,
			Message: "Internal Server Error",
		}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(httpErr.Code)
	_ = json.NewEncoder(w).Encode(httpErr.Payload())
}
