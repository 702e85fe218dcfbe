package helper

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

type errorBody struct {
	Error  string  `json:"error"`
	Issues []Issue `json:"issues"`
}

func decodeErrorBody(t *testing.T, body io.Reader) errorBody {
	t.Helper()
	var out errorBody
	if err := json.NewDecoder(body).Decode(&out); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	return out
}

func TestValidateRequestRunsChecksInOrder(t *testing.T) {
	var order []string
	checks := Checks{
		Body: func([]byte) error {
			order = append(order, "body")
			return nil
		},
		Params: func(map[string]string) error {
			order = append(order, "params")
			return nil
		},
		Query: func(map[string]string) error {
			order = append(order, "query")
			return nil
		},
	}

	app := fiber.New()
	app.Post("/t/:id", ValidateRequest(nil, checks), func(c *fiber.Ctx) error {
		order = append(order, "handler")
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/t/abc", strings.NewReader("{}")))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	want := []string{"body", "params", "query", "handler"}
	if strings.Join(order, ",") != strings.Join(want, ",") {
		t.Errorf("call order = %v, want %v", order, want)
	}
}

func TestValidateRequestShortCircuitsOnBodyFailure(t *testing.T) {
	paramsCalled := false
	checks := Checks{
		Body: func([]byte) error {
			return errors.New("broken")
		},
		Params: func(map[string]string) error {
			paramsCalled = true
			return nil
		},
	}

	app := fiber.New()
	app.Post("/t/:id", ValidateRequest(nil, checks), func(c *fiber.Ctx) error {
		t.Error("handler must not run after a failed check")
		return nil
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/t/abc", strings.NewReader("{}")))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if paramsCalled {
		t.Error("params check ran after body check failed")
	}
	body := decodeErrorBody(t, resp.Body)
	if body.Error != "Invalid request data" {
		t.Errorf("error = %q, want Invalid request data", body.Error)
	}
	if body.Issues != nil {
		t.Errorf("plain errors must not produce issues, got %v", body.Issues)
	}
}

type sample struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Kind  string `json:"kind" validate:"omitempty,oneof=A B"`
}

func TestBodyReportsValidationIssues(t *testing.T) {
	check := Body[sample]()
	err := check([]byte(`{"name":"","email":"not-an-email","kind":"C"}`))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want *ValidationError, got %v", err)
	}
	if len(verr.Issues) != 3 {
		t.Fatalf("issues = %+v, want 3", verr.Issues)
	}
	byPath := map[string]string{}
	for _, issue := range verr.Issues {
		byPath[issue.Path] = issue.Reason
	}
	if byPath["$.name"] != "is required" {
		t.Errorf("$.name reason = %q", byPath["$.name"])
	}
	if byPath["$.email"] != "must be a valid email address" {
		t.Errorf("$.email reason = %q", byPath["$.email"])
	}
	if byPath["$.kind"] != "must be one of: A B" {
		t.Errorf("$.kind reason = %q", byPath["$.kind"])
	}
}

func TestBodyRejectsUnknownFields(t *testing.T) {
	check := Body[sample]()
	err := check([]byte(`{"name":"x","email":"a@b.edu","extra":1}`))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want *ValidationError, got %v", err)
	}
	if len(verr.Issues) != 1 || verr.Issues[0].Path != "$.extra" {
		t.Errorf("issues = %+v", verr.Issues)
	}
}

func TestBodyReportsTypeMismatch(t *testing.T) {
	check := Body[sample]()
	err := check([]byte(`{"name":42,"email":"a@b.edu"}`))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want *ValidationError, got %v", err)
	}
	if len(verr.Issues) != 1 || verr.Issues[0].Path != "$.name" {
		t.Errorf("issues = %+v", verr.Issues)
	}
	if !strings.Contains(verr.Issues[0].Reason, "must be of type") {
		t.Errorf("reason = %q", verr.Issues[0].Reason)
	}
}

func TestBodyMalformedJSONHasNoIssues(t *testing.T) {
	check := Body[sample]()
	err := check([]byte(`{"name":`))
	if err == nil {
		t.Fatal("want error for malformed JSON")
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		t.Errorf("malformed JSON must not carry issues, got %+v", verr.Issues)
	}
}

func TestParamsRequiresNamedKeys(t *testing.T) {
	check := Params("id", "campusId")
	if err := check(map[string]string{"id": "a", "campusId": "b"}); err != nil {
		t.Errorf("complete params: %v", err)
	}

	err := check(map[string]string{"id": "a"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want *ValidationError, got %v", err)
	}
	if len(verr.Issues) != 1 || verr.Issues[0].Path != "$.campusId" {
		t.Errorf("issues = %+v", verr.Issues)
	}
}
