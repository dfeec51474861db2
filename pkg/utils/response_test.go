package utils

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func envelope(t *testing.T, handler fiber.Handler) (int, map[string]any) {
	t.Helper()

	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("unmarshal %q: %v", body, err)
	}
	return resp.StatusCode, got
}

func TestSuccessEnvelopeShape(t *testing.T) {
	status, got := envelope(t, func(c *fiber.Ctx) error {
		return SuccessResponse(c, map[string]string{"name": "inbox"})
	})
	if status != http.StatusOK {
		t.Errorf("status = %d, want 200", status)
	}
	if got["success"] != true {
		t.Errorf("success = %v, want true", got["success"])
	}
	if _, ok := got["data"]; !ok {
		t.Error("data missing from envelope")
	}
	// only success/data appear on a plain success
	for _, key := range []string{"warnings", "error", "messages"} {
		if _, ok := got[key]; ok {
			t.Errorf("unexpected key %q in envelope: %v", key, got)
		}
	}
}

func TestWarningsEnvelopeShape(t *testing.T) {
	status, got := envelope(t, func(c *fiber.Ctx) error {
		return SuccessResponseWithWarnings(c, []string{}, []string{"outlook: token expired"})
	})
	if status != http.StatusOK {
		t.Errorf("status = %d, want 200", status)
	}
	warnings, ok := got["warnings"].([]any)
	if !ok || len(warnings) != 1 {
		t.Fatalf("warnings = %v, want one entry", got["warnings"])
	}
	if warnings[0] != "outlook: token expired" {
		t.Errorf("warnings[0] = %v", warnings[0])
	}
}

func TestErrorEnvelopeShape(t *testing.T) {
	status, got := envelope(t, func(c *fiber.Ctx) error {
		return NotFoundResponse(c, "task not found")
	})
	if status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", status)
	}
	if got["success"] != false {
		t.Errorf("success = %v, want false", got["success"])
	}
	errInfo, ok := got["error"].(map[string]any)
	if !ok {
		t.Fatalf("error = %v, want object", got["error"])
	}
	if errInfo["code"] != ErrCodeNotFound {
		t.Errorf("code = %v, want %s", errInfo["code"], ErrCodeNotFound)
	}
	if errInfo["message"] != "task not found" {
		t.Errorf("message = %v", errInfo["message"])
	}
}
