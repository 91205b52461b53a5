package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// FieldError describes one request field that failed validation.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

var registerFieldNames sync.Once

// useJSONFieldNames makes validation errors report JSON names instead of Go
// struct field names.
func useJSONFieldNames() {
	registerFieldNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
	})
}

// errMalformedBody is returned for bodies that are not a JSON object.
var errMalformedBody = errors.New("malformed request body")

// classifyBindError splits a binding failure into field errors (the request
// parsed but broke the schema) or errMalformedBody.
func classifyBindError(err error) ([]FieldError, error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, FieldError{
				Field:   fe.Field(),
				Rule:    fe.Tag(),
				Param:   fe.Param(),
				Message: ruleMessage(fe.Tag(), fe.Param()),
			})
		}
		return out, nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			return nil, errMalformedBody
		}
		return []FieldError{{
			Field:   field,
			Rule:    "type",
			Param:   typeErr.Type.String(),
			Message: fmt.Sprintf("must be %s, got %s", jsonKind(typeErr.Type), typeErr.Value),
		}}, nil
	}

	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: body is empty", errMalformedBody)
	}
	return nil, fmt.Errorf("%w: %v", errMalformedBody, err)
}

func ruleMessage(rule, param string) string {
	switch rule {
	case "required":
		return "field required"
	case "gt":
		return "must be greater than " + param
	case "gte":
		return "must be greater than or equal to " + param
	case "lt":
		return "must be less than " + param
	case "lte":
		return "must be less than or equal to " + param
	default:
		return "failed " + rule + " validation"
	}
}

func jsonKind(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	default:
		return "an object"
	}
}
