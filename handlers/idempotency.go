package handlers

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/svdpmukherjee/memory-game-backend/models"
	"github.com/svdpmukherjee/memory-game-backend/utils"
)

// claimIdempotency handles the optional Idempotency-Key header on the
// append-only write endpoints. Keys are namespaced by scope, so the same
// client key sent to two endpoints is two independent writes. When the key
// was already claimed it writes the replay response and reports
// handled=true. claimed=true means the caller owns the key and must settle
// it with settleIdempotency. A guard failure is logged and the write
// proceeds unguarded; availability wins over dedupe here.
func (h *Handler) claimIdempotency(ctx context.Context, w http.ResponseWriter, r *http.Request, scope string) (key string, claimed, handled bool) {
	if h.idem == nil {
		return "", false, false
	}
	key = r.Header.Get("Idempotency-Key")
	if key == "" {
		return "", false, false
	}
	key = "idem:" + scope + ":" + key

	first, cachedID, err := h.idem.Claim(ctx, key)
	if err != nil {
		logrus.WithError(err).Warn("idempotency claim failed, proceeding without guard")
		return "", false, false
	}
	if first {
		return key, true, false
	}

	utils.HandleSuccess(w, http.StatusOK, models.InsertedResponse{
		Status:   statusSuccess,
		ID:       cachedID,
		Replayed: true,
	})
	return key, false, true
}

// settleIdempotency records the produced document id, or releases the key
// when the write failed so the client can retry.
func (h *Handler) settleIdempotency(ctx context.Context, key, id string, writeErr error) {
	if writeErr != nil {
		h.idem.Release(ctx, key)
		return
	}
	if err := h.idem.Record(ctx, key, id); err != nil {
		logrus.WithError(err).Warn("failed to record idempotency key")
	}
}
