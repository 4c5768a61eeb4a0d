package handlers

import (
	"net/http"
	"time"

	"github.com/svdpmukherjee/memory-game-backend/models"
	"github.com/svdpmukherjee/memory-game-backend/responses"
	"github.com/svdpmukherjee/memory-game-backend/utils"
)

// InitializeSession creates a new active session for a participant. The same
// prolificId may open multiple sessions; multiplicity is allowed by design.
func (h *Handler) InitializeSession(w http.ResponseWriter, r *http.Request) {
	var req models.SessionInitRequest
	if err := decodeBody(r, &req); err != nil {
		utils.HandleError(w, responses.BadRequestError{Msg: "Invalid request body."})
		return
	}
	if req.ProlificID == "" {
		utils.HandleError(w, responses.BadRequestError{Msg: "prolificId is required."})
		return
	}
	if req.StartTime == "" {
		utils.HandleError(w, responses.BadRequestError{Msg: "startTime is required."})
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	session := &models.Session{
		ProlificID: req.ProlificID,
		StartTime:  req.StartTime,
		Metadata:   req.Metadata,
		Status:     models.StatusActive,
		CreatedAt:  time.Now().UTC(),
	}
	sessionID, err := h.store.CreateSession(ctx, session)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.HandleSuccess(w, http.StatusOK, models.SessionInitResponse{
		SessionID: sessionID,
		Status:    statusSuccess,
	})
}

// CompleteSession moves a session to its completed terminal state and stores
// the client-reported timing snapshot.
func (h *Handler) CompleteSession(w http.ResponseWriter, r *http.Request) {
	var req models.SessionCompleteRequest
	if err := decodeBody(r, &req); err != nil {
		utils.HandleError(w, responses.BadRequestError{Msg: "Invalid request body."})
		return
	}
	if req.SessionID == "" {
		utils.HandleError(w, responses.BadRequestError{Msg: "sessionId is required."})
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	data := models.CompletionData{
		StartTime:      req.SessionData.StartTime,
		CompletionTime: req.SessionData.CompletionTime,
		TotalDuration:  req.SessionData.TotalDuration,
		CompletedAt:    time.Now().UTC(),
	}
	if err := h.store.CompleteSession(ctx, req.SessionID, data); err != nil {
		handleStoreError(w, err, "Session not found.")
		return
	}

	utils.HandleSuccess(w, http.StatusOK, models.StatusResponse{Status: statusSuccess})
}

// TerminateSession moves a session to its terminated terminal state.
func (h *Handler) TerminateSession(w http.ResponseWriter, r *http.Request) {
	var req models.SessionTerminateRequest
	if err := decodeBody(r, &req); err != nil {
		utils.HandleError(w, responses.BadRequestError{Msg: "Invalid request body."})
		return
	}
	if req.SessionID == "" {
		utils.HandleError(w, responses.BadRequestError{Msg: "sessionId is required."})
		return
	}
	if req.Reason == "" {
		req.Reason = models.DefaultTerminationReason
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	if err := h.store.TerminateSession(ctx, req.SessionID, req.Reason, time.Now().UTC()); err != nil {
		handleStoreError(w, err, "Session not found.")
		return
	}

	utils.HandleSuccess(w, http.StatusOK, models.StatusResponse{Status: statusSuccess})
}
