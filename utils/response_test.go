package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/svdpmukherjee/memory-game-backend/models"
	"github.com/svdpmukherjee/memory-game-backend/responses"
)

func TestHandleErrorAPIError(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, responses.NotFoundError{Msg: "Session not found."})

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	var body models.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	if body.Error != "Session not found." {
		t.Errorf("error = %q", body.Error)
	}
}

func TestHandleErrorInternal(t *testing.T) {
	// Anything that is not an APIError becomes a generic 500; the raw error
	// text must never reach the client.
	rec := httptest.NewRecorder()
	HandleError(rec, errors.New("mongo: connection refused at 10.0.0.5:27017"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	var body models.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	if body.Error != "Internal Server Error" {
		t.Errorf("error = %q, internal detail must not leak", body.Error)
	}
}
