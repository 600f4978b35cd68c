// Package apierror provides the error envelope returned by every endpoint:
// {"ok": false, "err": {...}}. The err object is either a typed store error
// (ValidationError, CastError) or a plain {"message": "..."}.
package apierror

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Response is the canonical envelope for all 4xx/5xx HTTP responses.
type Response struct {
	OK  bool `json:"ok"`
	Err any  `json:"err"`
}

// Message is the payload used when there is no structured error to expose.
type Message struct {
	Message string `json:"message"`
}

func New(msg string) *Response {
	return &Response{OK: false, Err: Message{Message: msg}}
}

// FromError builds the envelope for err, keeping typed store errors intact.
func FromError(err error) *Response {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return &Response{OK: false, Err: ve}
	}
	var ce *CastError
	if errors.As(err, &ce) {
		return &Response{OK: false, Err: ce}
	}
	return New(err.Error())
}

// FieldError describes one failed field validation.
type FieldError struct {
	Message string `json:"message"`
	Kind    string `json:"kind"`
	Path    string `json:"path"`
}

// ValidationError wraps every field error found on a document.
type ValidationError struct {
	Name    string                `json:"name"`
	Message string                `json:"message"`
	Errors  map[string]FieldError `json:"errors"`
}

func NewValidation(modelo string, fields map[string]FieldError) *ValidationError {
	paths := make([]string, 0, len(fields))
	for path := range fields {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	parts := make([]string, 0, len(paths))
	for _, path := range paths {
		parts = append(parts, path+": "+fields[path].Message)
	}
	return &ValidationError{
		Name:    "ValidationError",
		Message: modelo + " validation failed: " + strings.Join(parts, ", "),
		Errors:  fields,
	}
}

func (e *ValidationError) Error() string { return e.Message }

// CastError reports a value that could not be converted to the type of a path,
// typically a malformed id.
type CastError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Kind    string `json:"kind"`
	Value   string `json:"value"`
	Path    string `json:"path"`
}

func NewCast(modelo, path, value string) *CastError {
	return &CastError{
		Name:    "CastError",
		Message: fmt.Sprintf("Cast to UUID failed for value %q at path %q for model %q", value, path, modelo),
		Kind:    "UUID",
		Value:   value,
		Path:    path,
	}
}

func (e *CastError) Error() string { return e.Message }
