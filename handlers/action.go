package handlers

import (
	"net/http"
	"time"

	"github.com/svdpmukherjee/memory-game-backend/models"
	"github.com/svdpmukherjee/memory-game-backend/responses"
	"github.com/svdpmukherjee/memory-game-backend/utils"
)

// LogAction appends one immutable gameplay event. The stored timestamp is
// the server receipt time; the client-reported timestamp travels inside the
// free-form action payload if the frontend includes it there. Actions for
// already-finalized sessions are accepted — late-arriving telemetry is
// intentional.
func (h *Handler) LogAction(w http.ResponseWriter, r *http.Request) {
	var req models.LogActionRequest
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
	if req.GamePhase == "" {
		utils.HandleError(w, responses.BadRequestError{Msg: "gamePhase is required."})
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	key, claimed, handled := h.claimIdempotency(ctx, w, r, "actions")
	if handled {
		return
	}

	action := &models.GameAction{
		SessionID:  req.SessionID,
		ProlificID: req.ProlificID,
		Timestamp:  time.Now().UTC(),
		GamePhase:  req.GamePhase,
		Action:     req.Action,
	}
	id, err := h.store.InsertAction(ctx, action)
	if claimed {
		h.settleIdempotency(ctx, key, id, err)
	}
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.HandleSuccess(w, http.StatusOK, models.InsertedResponse{Status: statusSuccess, ID: id})
}
