package helper

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Issue points at the part of the input that failed a shape check.
type Issue struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// ValidationError carries structured issues; failures without one are
// reported to the client without an issues list.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = issue.Path + " " + issue.Reason
	}
	return strings.Join(parts, "; ")
}

// Checks holds the optional shape checks for the three inbound surfaces.
// A check returns nil when its input conforms.
type Checks struct {
	Body   func(body []byte) error
	Params func(params map[string]string) error
	Query  func(query map[string]string) error
}

type invalidRequestResponse struct {
	Error  string  `json:"error"`
	Issues []Issue `json:"issues,omitempty"`
}

// ValidateRequest gates a handler behind the configured checks, run in
// body, params, query order, stopping at the first failure. On success
// the request passes through untouched; on failure the handler never
// runs and the client gets a 400.
func ValidateRequest(log *zap.Logger, checks Checks) fiber.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *fiber.Ctx) error {
		var err error
		if checks.Body != nil {
			err = checks.Body(c.Body())
		}
		if err == nil && checks.Params != nil {
			err = checks.Params(c.AllParams())
		}
		if err == nil && checks.Query != nil {
			err = checks.Query(c.Queries())
		}
		if err == nil {
			return c.Next()
		}

		log.Warn("request validation failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)

		var verr *ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(invalidRequestResponse{
				Error:  "Invalid request data",
				Issues: verr.Issues,
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(invalidRequestResponse{
			Error: "Invalid request data",
		})
	}
}

// Body builds a body check for T: strict JSON decode (unknown fields
// rejected) followed by struct validation.
func Body[T any]() func([]byte) error {
	return func(raw []byte) error {
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		var req T
		if err := dec.Decode(&req); err != nil {
			return decodeError(err)
		}
		if err := validate.Struct(&req); err != nil {
			return structError(err)
		}
		return nil
	}
}

// Params builds a params check requiring each named path parameter to be
// present and non-empty.
func Params(keys ...string) func(map[string]string) error {
	return func(params map[string]string) error {
		var issues []Issue
		for _, key := range keys {
			if params[key] == "" {
				issues = append(issues, Issue{Path: "$." + key, Reason: "is required"})
			}
		}
		if len(issues) > 0 {
			return &ValidationError{Issues: issues}
		}
		return nil
	}
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		path := "$"
		if typeErr.Field != "" {
			path = "$." + typeErr.Field
		}
		return &ValidationError{Issues: []Issue{{
			Path:   path,
			Reason: fmt.Sprintf("must be of type %s", typeErr.Type),
		}}}
	}
	if field, ok := unknownField(err); ok {
		return &ValidationError{Issues: []Issue{{
			Path:   "$." + field,
			Reason: "is not an expected field",
		}}}
	}
	// Malformed JSON carries no path to point at.
	return fmt.Errorf("malformed request body: %w", err)
}

func unknownField(err error) (string, bool) {
	msg := err.Error()
	const prefix = `json: unknown field "`
	if !strings.HasPrefix(msg, prefix) {
		return "", false
	}
	return strings.TrimSuffix(strings.TrimPrefix(msg, prefix), `"`), true
}

func structError(err error) error {
	var ferrs validator.ValidationErrors
	if !errors.As(err, &ferrs) {
		return err
	}
	issues := make([]Issue, 0, len(ferrs))
	for _, fe := range ferrs {
		issues = append(issues, Issue{Path: fieldPath(fe), Reason: reason(fe)})
	}
	return &ValidationError{Issues: issues}
}

func fieldPath(fe validator.FieldError) string {
	path := fe.Namespace()
	if i := strings.Index(path, "."); i >= 0 {
		path = path[i+1:]
	}
	return "$." + path
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "min":
		return "must have at least " + fe.Param()
	case "max":
		return "must have at most " + fe.Param()
	default:
		return "is invalid"
	}
}
