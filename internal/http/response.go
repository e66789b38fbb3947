// Package http provides the HTTP server and handler implementations.
//
// This file implements the Builder Pattern for constructing JSON API
// responses: a consistent envelope carrying an optional user-facing
// notice plus operation data.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"hisab/internal/core"
	"hisab/internal/ledger"
)

// envelope is the wire shape of every JSON response.
type envelope struct {
	Title    string          `json:"title,omitempty"`
	Message  string          `json:"message,omitempty"`
	Severity ledger.Severity `json:"severity,omitempty"`
	Data     any             `json:"data,omitempty"`
}

// ResponseBuilder provides a fluent API for building JSON responses.
type ResponseBuilder struct {
	statusCode int
	envelope   envelope
	headers    map[string]string
}

// NewResponse creates a new response builder with default 200 status.
func NewResponse() *ResponseBuilder {
	return &ResponseBuilder{
		statusCode: http.StatusOK,
		headers:    make(map[string]string),
	}
}

// Status sets the HTTP status code for the response.
func (b *ResponseBuilder) Status(code int) *ResponseBuilder {
	b.statusCode = code
	return b
}

// Notice attaches the user-facing outcome to the envelope.
func (b *ResponseBuilder) Notice(n ledger.Notice) *ResponseBuilder {
	b.envelope.Title = n.Title
	b.envelope.Message = n.Message
	b.envelope.Severity = n.Severity
	return b
}

// Data attaches the operation payload to the envelope.
func (b *ResponseBuilder) Data(data any) *ResponseBuilder {
	b.envelope.Data = data
	return b
}

// Header adds a custom header to the response.
func (b *ResponseBuilder) Header(name, value string) *ResponseBuilder {
	b.headers[name] = value
	return b
}

// Write sends the built response to the http.ResponseWriter.
func (b *ResponseBuilder) Write(w http.ResponseWriter) {
	for name, value := range b.headers {
		w.Header().Set(name, value)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(b.statusCode)
	_ = json.NewEncoder(w).Encode(b.envelope)
}

// statusForError maps command errors to HTTP status codes.
func statusForError(err error) int {
	switch {
	case ledger.IsInvalidInput(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, core.ErrInvalidCategory):
		return http.StatusBadRequest
	case errors.Is(err, ledger.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrNotConfirmed):
		return http.StatusPreconditionRequired
	case errors.Is(err, ledger.ErrEmptyLedger):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// ErrorResponse builds the response for a failed command.
func ErrorResponse(op ledger.ChangeOp, err error) *ResponseBuilder {
	return NewResponse().
		Status(statusForError(err)).
		Notice(ledger.NoticeFor(op, err))
}

// MethodNotAllowedResponse creates a 405 response naming the allowed methods.
func MethodNotAllowedResponse(allowedMethods string) *ResponseBuilder {
	return NewResponse().
		Status(http.StatusMethodNotAllowed).
		Header("Allow", allowedMethods)
}
