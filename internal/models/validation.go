package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json field names instead of Go field names
	v.RegisterTagNameFunc(jsonName)
	return v
}

func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// FieldIssue describes one rejected field of a request body.
type FieldIssue struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationError is returned when a request body cannot be turned into a valid record.
type ValidationError struct {
	Issues []FieldIssue
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", strings.Join(issue.Loc, "."), issue.Msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError builds a single-issue ValidationError.
func NewValidationError(loc []string, msg, typ string) *ValidationError {
	return &ValidationError{Issues: []FieldIssue{{Loc: loc, Msg: msg, Type: typ}}}
}

// Validate runs the struct tag rules of record.
func Validate(record any) error {
	err := validate.Struct(record)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	verr := &ValidationError{}
	for _, fe := range fieldErrs {
		verr.Issues = append(verr.Issues, FieldIssue{
			Loc:  []string{"body", fe.Field()},
			Msg:  issueMessage(fe),
			Type: fe.Tag(),
		})
	}
	return verr
}

func issueMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "email":
		return "value is not a valid email address"
	default:
		return fmt.Sprintf("failed on the %q rule", fe.Tag())
	}
}

// decodeInto decodes a JSON object over target, a struct pointer already carrying its
// defaults. Only keys present in the body are written, so absent fields keep their
// defaults. A field tagged required:"true" must be present; a non-pointer field must
// not be null. The value rules of Validate run last.
func decodeInto(r io.Reader, target any) error {
	dec := json.NewDecoder(r)

	var raw map[string]json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return decodeError(err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return NewValidationError([]string{"body"}, "unexpected data after JSON object", "json_invalid")
	}

	v := reflect.ValueOf(target).Elem()
	t := v.Type()

	verr := &ValidationError{}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := jsonName(field)
		if name == "" {
			continue
		}
		loc := []string{"body", name}

		value, ok := raw[name]
		if !ok {
			if field.Tag.Get("required") == "true" {
				verr.Issues = append(verr.Issues, FieldIssue{Loc: loc, Msg: "field required", Type: "missing"})
			}
			continue
		}

		if bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			if field.Type.Kind() == reflect.Ptr {
				v.Field(i).Set(reflect.Zero(field.Type))
				continue
			}
			verr.Issues = append(verr.Issues, FieldIssue{Loc: loc, Msg: "value must not be null", Type: "null_not_allowed"})
			continue
		}

		if err := json.Unmarshal(value, v.Field(i).Addr().Interface()); err != nil {
			verr.Issues = append(verr.Issues, fieldIssue(loc, err))
		}
	}
	if len(verr.Issues) > 0 {
		return verr
	}

	return Validate(target)
}

func fieldIssue(loc []string, err error) FieldIssue {
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &typeErr):
		return FieldIssue{Loc: loc, Msg: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value), Type: "type_error"}
	case errors.Is(err, ErrInvalidTimestamp):
		return FieldIssue{Loc: loc, Msg: err.Error(), Type: "datetime_parsing"}
	default:
		return FieldIssue{Loc: loc, Msg: err.Error(), Type: "value_error"}
	}
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return NewValidationError([]string{"body"},
			fmt.Sprintf("expected object, got %s", typeErr.Value), "type_error")
	}
	if errors.Is(err, io.EOF) {
		return NewValidationError([]string{"body"}, "field required", "missing")
	}
	return NewValidationError([]string{"body"}, err.Error(), "json_invalid")
}
