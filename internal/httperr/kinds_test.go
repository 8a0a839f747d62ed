package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func writeAndRecord(t *testing.T, err error) (*httptest.ResponseRecorder, HTTPError) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	WriteError(c, err)

	var body HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not the error envelope: %s", w.Body.String())
	}
	return w, body
}

func TestWriteError_Mapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", Validation("reason", "must not be blank"), http.StatusUnprocessableEntity, "validation_failed"},
		{"permission", PermissionError{Resource: "client", Action: "update"}, http.StatusForbidden, "permission_denied"},
		{"not found", NotFoundError{Resource: "animal", ID: 3}, http.StatusNotFound, "not_found"},
		{"conflict", ConflictError{Resource: "user", Field: "email"}, http.StatusConflict, "conflict"},
		{"illegal state", IllegalStateError{Value: "cancelled"}, http.StatusBadRequest, "invalid_status"},
		{"unknown", errors.New("database exploded"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := writeAndRecord(t, tt.err)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if body.Code != tt.wantCode {
				t.Fatalf("error_code = %q, want %q", body.Code, tt.wantCode)
			}
		})
	}
}

func TestWriteError_WrappedErrorsStillMap(t *testing.T) {
	wrapped := fmt.Errorf("loading record: %w", NotFoundError{Resource: "client", ID: 9})
	w, body := writeAndRecord(t, wrapped)
	if w.Code != http.StatusNotFound || body.Code != "not_found" {
		t.Fatalf("wrapped error lost its kind: status=%d code=%q", w.Code, body.Code)
	}
}

func TestWriteError_InternalHidesDetail(t *testing.T) {
	_, body := writeAndRecord(t, errors.New("password for db is hunter2"))
	if body.Message != "internal error" {
		t.Fatalf("internal detail leaked: %q", body.Message)
	}
}

func TestWriteError_ValidationCarriesFields(t *testing.T) {
	_, body := writeAndRecord(t, ValidationError{Fields: map[string]string{
		"price":        "must be positive",
		"duration_min": "must be positive",
	}})
	if len(body.Fields) != 2 {
		t.Fatalf("fields lost: %v", body.Fields)
	}
	if body.Fields["price"] != "must be positive" {
		t.Fatalf("unexpected field detail: %v", body.Fields)
	}
}
