// Package validation wraps go-playground/validator and separates the two ways
// input can be rejected: while decoding a request payload (RequestError) and
// when a domain value fails its own invariants afterwards (DomainError).
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RequestError is a malformed or invalid inbound payload.
type RequestError struct {
	Fields map[string]string
	Err    error
}

func (e *RequestError) Error() string {
	return "request validation failed: " + describe(e.Fields, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// DomainError is a value that violates its invariants after decoding.
type DomainError struct {
	Fields map[string]string
	Err    error
}

func (e *DomainError) Error() string {
	return "domain validation failed: " + describe(e.Fields, e.Err)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewRequestError wraps a decoding failure.
func NewRequestError(err error) *RequestError {
	return &RequestError{Err: err}
}

// NewDomainError reports a single invalid field.
func NewDomainError(field, message string) *DomainError {
	return &DomainError{Fields: map[string]string{field: message}}
}

// Validator validates structs using `validate` tags and reports fields by
// their json names.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// Request validates a decoded payload. Failures are *RequestError.
func (v *Validator) Request(i any) error {
	fields, err := v.check(i)
	if err != nil {
		return &RequestError{Fields: fields, Err: err}
	}
	return nil
}

// Domain validates a domain value. Failures are *DomainError.
func (v *Validator) Domain(i any) error {
	fields, err := v.check(i)
	if err != nil {
		return &DomainError{Fields: fields, Err: err}
	}
	return nil
}

func (v *Validator) check(i any) (map[string]string, error) {
	err := v.validate.Struct(i)
	if err == nil {
		return nil, nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, err
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		fields[fe.Field()] = message(fe)
	}
	return fields, err
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min", "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max", "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("failed on %q", fe.Tag())
	}
}

func describe(fields map[string]string, err error) string {
	if len(fields) == 0 {
		if err != nil {
			return err.Error()
		}
		return "invalid input"
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s %s", name, fields[name]))
	}
	return strings.Join(parts, "; ")
}

var std = New()

// ValidateRequest validates a decoded payload with the shared Validator.
func ValidateRequest(i any) error {
	return std.Request(i)
}

// ValidateDomain validates a domain value with the shared Validator.
func ValidateDomain(i any) error {
	return std.Domain(i)
}
