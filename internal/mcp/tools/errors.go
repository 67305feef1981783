package tools

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/seven7ty/typeshi/internal/query"
	"github.com/seven7ty/typeshi/pkg/declaration"
	"github.com/seven7ty/typeshi/pkg/typeshi"
	"github.com/seven7ty/typeshi/pkg/valuetree"
)

// Codes carried by tool errors. INVALID_INPUT means the caller can fix the
// request; GENERATION_FAILED means the request was fine but typeshi could
// not produce a module for it.
const (
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeInvalidInput     = "INVALID_INPUT"
	ErrCodeGenerationFailed = "GENERATION_FAILED"
)

// CodedError is what tool handlers return. Its text starts with Code so
// clients can branch on it without parsing further.
type CodedError struct {
	Code    string
	Message string
	Cause   error
}

func (e *CodedError) Error() string {
	msg := e.Code + ": " + e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *CodedError) Unwrap() error { return e.Cause }

// codeFor maps a decode, select, option or render failure to its code.
func codeFor(err error) string {
	switch {
	case errors.Is(err, typeshi.ErrUnknownFormat),
		errors.Is(err, typeshi.ErrInputTooLarge),
		errors.Is(err, valuetree.ErrSyntax),
		errors.Is(err, valuetree.ErrNotMapping):
		return ErrCodeInvalidInput
	case errors.Is(err, query.ErrInvalidExpression),
		errors.Is(err, query.ErrNoMatch),
		errors.Is(err, query.ErrNotMapping):
		return ErrCodeInvalidInput
	case errors.Is(err, declaration.ErrWrapWidth),
		errors.Is(err, declaration.ErrNoHomeModule),
		errors.Is(err, declaration.ErrInvalidIdentifier):
		return ErrCodeInvalidInput
	default:
		return ErrCodeGenerationFailed
	}
}

// WrapGenerationError attaches a code and message to err and logs it.
// Errors that already carry a code pass through unchanged.
func WrapGenerationError(message string, err error) error {
	if err == nil {
		return nil
	}
	var coded *CodedError
	if errors.As(err, &coded) {
		return err
	}

	coded = &CodedError{Code: codeFor(err), Message: message, Cause: err}
	slog.Warn("tool call failed",
		slog.String("code", coded.Code),
		slog.String("message", message),
		slog.Any("error", err),
	)
	return coded
}

// ErrNotFound reports a missing resource, e.g. an evicted module.
func ErrNotFound(resource, id string) error {
	return &CodedError{Code: ErrCodeNotFound, Message: fmt.Sprintf("%s not found: %s", resource, id)}
}

// ErrInvalidInput reports a request the handler rejects before generating.
func ErrInvalidInput(message string) error {
	return &CodedError{Code: ErrCodeInvalidInput, Message: message}
}
