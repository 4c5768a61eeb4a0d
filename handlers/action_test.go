package handlers

import (
	"net/http"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"

	"github.com/svdpmukherjee/memory-game-backend/idempotency"
	"github.com/svdpmukherjee/memory-game-backend/models"
)

func actionRequest(sessionID string) models.LogActionRequest {
	return models.LogActionRequest{
		SessionID:  sessionID,
		ProlificID: "P1",
		Timestamp:  "2024-01-01T00:01:00Z",
		GamePhase:  "memorization",
		Action: map[string]interface{}{
			"type":      "icon_placed",
			"icon":      "🌟",
			"position":  float64(3),
			"fromIndex": nil,
		},
	}
}

func TestLogAction(t *testing.T) {
	store, router := newTestEnv(t)
	id := createTestSession(t, store, "P1")

	rec := doRequest(t, router, "POST", "/api/actions", actionRequest(id), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp models.InsertedResponse
	decodeResponse(t, rec, &resp)
	if resp.Status != "success" || resp.ID == "" {
		t.Errorf("response = %+v", resp)
	}

	actions := store.Actions()
	if len(actions) != 1 {
		t.Fatalf("stored actions = %d, want 1", len(actions))
	}
	got := actions[0]
	if got.SessionID != id || got.GamePhase != "memorization" {
		t.Errorf("stored action = %+v", got)
	}
	if got.Timestamp.IsZero() {
		t.Error("server receipt timestamp not stamped")
	}
	if got.Action["type"] != "icon_placed" {
		t.Errorf("free-form payload not preserved: %v", got.Action)
	}
}

func TestLogActionForFinalizedSession(t *testing.T) {
	// Late-arriving telemetry is accepted for terminal sessions.
	store, router := newTestEnv(t)
	id := createTestSession(t, store, "P1")

	if rec := doRequest(t, router, "POST", "/api/sessions/terminate", models.SessionTerminateRequest{SessionID: id}, nil); rec.Code != http.StatusOK {
		t.Fatalf("terminate: status = %d", rec.Code)
	}

	rec := doRequest(t, router, "POST", "/api/actions", actionRequest(id), nil)
	if rec.Code != http.StatusOK {
		t.Errorf("late action: status = %d, want 200", rec.Code)
	}
}

func TestLogActionValidation(t *testing.T) {
	store, router := newTestEnv(t)
	id := createTestSession(t, store, "P1")

	tests := []struct {
		name   string
		mutate func(*models.LogActionRequest)
	}{
		{"missing sessionId", func(r *models.LogActionRequest) { r.SessionID = "" }},
		{"missing prolificId", func(r *models.LogActionRequest) { r.ProlificID = "" }},
		{"missing gamePhase", func(r *models.LogActionRequest) { r.GamePhase = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := actionRequest(id)
			tt.mutate(&body)
			rec := doRequest(t, router, "POST", "/api/actions", body, nil)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}

	if got := len(store.Actions()); got != 0 {
		t.Errorf("rejected requests stored %d actions", got)
	}
}

func TestLogActionIdempotencyReplay(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	guard := idempotency.NewFromClient(client)

	store, router := newTestEnvWithGuard(t, guard, testConfig())
	id := createTestSession(t, store, "P1")
	headers := map[string]string{"Idempotency-Key": "act-001"}

	first := doRequest(t, router, "POST", "/api/actions", actionRequest(id), headers)
	if first.Code != http.StatusOK {
		t.Fatalf("first write: status = %d", first.Code)
	}
	var firstResp models.InsertedResponse
	decodeResponse(t, first, &firstResp)

	second := doRequest(t, router, "POST", "/api/actions", actionRequest(id), headers)
	if second.Code != http.StatusOK {
		t.Fatalf("replay: status = %d", second.Code)
	}
	var secondResp models.InsertedResponse
	decodeResponse(t, second, &secondResp)

	if !secondResp.Replayed {
		t.Error("replay not flagged")
	}
	if secondResp.ID != firstResp.ID {
		t.Errorf("replay id = %q, want %q", secondResp.ID, firstResp.ID)
	}
	if got := len(store.Actions()); got != 1 {
		t.Errorf("stored actions = %d, want 1 (no duplicate write)", got)
	}

	// A different key is a different logical write.
	third := doRequest(t, router, "POST", "/api/actions", actionRequest(id), map[string]string{"Idempotency-Key": "act-002"})
	if third.Code != http.StatusOK {
		t.Fatalf("second key: status = %d", third.Code)
	}
	if got := len(store.Actions()); got != 2 {
		t.Errorf("stored actions = %d, want 2", got)
	}
}

func TestIdempotencyKeyScopedPerEndpoint(t *testing.T) {
	// The same client key on two different endpoints must not replay one
	// endpoint's cached id as the other's response.
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	guard := idempotency.NewFromClient(client)

	store, router := newTestEnvWithGuard(t, guard, testConfig())
	id := createTestSession(t, store, "P1")
	headers := map[string]string{"Idempotency-Key": "shared-001"}

	first := doRequest(t, router, "POST", "/api/actions", actionRequest(id), headers)
	if first.Code != http.StatusOK {
		t.Fatalf("action write: status = %d", first.Code)
	}
	var actionResp models.InsertedResponse
	decodeResponse(t, first, &actionResp)

	second := doRequest(t, router, "POST", "/api/game-results", resultRequest(id, 15), headers)
	if second.Code != http.StatusOK {
		t.Fatalf("result write: status = %d", second.Code)
	}
	var resultResp models.InsertedResponse
	decodeResponse(t, second, &resultResp)

	if resultResp.Replayed {
		t.Error("result write flagged as replay of the action key")
	}
	if resultResp.ID == actionResp.ID {
		t.Errorf("result id = action id %q, want a fresh document", resultResp.ID)
	}
	if got := len(store.Results()); got != 1 {
		t.Errorf("stored results = %d, want 1", got)
	}
}

func TestLogActionWithoutKeyUnguarded(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	guard := idempotency.NewFromClient(client)

	store, router := newTestEnvWithGuard(t, guard, testConfig())
	id := createTestSession(t, store, "P1")

	for i := 0; i < 2; i++ {
		if rec := doRequest(t, router, "POST", "/api/actions", actionRequest(id), nil); rec.Code != http.StatusOK {
			t.Fatalf("write %d: status = %d", i, rec.Code)
		}
	}
	if got := len(store.Actions()); got != 2 {
		t.Errorf("stored actions = %d, want 2 (no key, no dedupe)", got)
	}
}
