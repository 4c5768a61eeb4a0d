package handlers

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/svdpmukherjee/memory-game-backend/models"
	"github.com/svdpmukherjee/memory-game-backend/responses"
	"github.com/svdpmukherjee/memory-game-backend/utils"
)

// SaveGameResult appends the final scored outcome of one game round, then
// flags the referenced session and denormalizes the score onto it. The two
// writes are not transactional: the result is inserted first so a recorded
// outcome is never lost, and if the session lookup then fails the orphaned
// result stays behind for reconciliation and the client gets a 404.
func (h *Handler) SaveGameResult(w http.ResponseWriter, r *http.Request) {
	var req models.GameResultRequest
	if err := decodeBody(r, &req); err != nil {
		utils.HandleError(w, responses.BadRequestError{Msg: "Invalid request body."})
		return
	}
	if req.SessionID == "" {
		utils.HandleError(w, responses.BadRequestError{Msg: "sessionId is required."})
		return
	}
	if req.ProlificID == "" {
		utils.HandleError(w, responses.BadRequestError{Msg: "prolificId is required."})
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	key, claimed, handled := h.claimIdempotency(ctx, w, r, "game-results")
	if handled {
		return
	}

	now := time.Now().UTC()
	result := &models.GameResult{
		SessionID:  req.SessionID,
		ProlificID: req.ProlificID,
		GameData:   req.GameData,
		Timestamp:  now,
	}
	id, err := h.store.InsertResult(ctx, result)
	if claimed {
		h.settleIdempotency(ctx, key, id, err)
	}
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	if err := h.store.MarkGameCompleted(ctx, req.SessionID, req.GameData.Score, now); err != nil {
		logrus.WithFields(logrus.Fields{
			"sessionId": req.SessionID,
			"resultId":  id,
		}).WithError(err).Warn("game result stored but session update failed")
		handleStoreError(w, err, "Session not found.")
		return
	}

	utils.HandleSuccess(w, http.StatusOK, models.InsertedResponse{Status: statusSuccess, ID: id})
}
