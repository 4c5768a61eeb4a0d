package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/svdpmukherjee/memory-game-backend/models"
	"github.com/svdpmukherjee/memory-game-backend/responses"
	"github.com/svdpmukherjee/memory-game-backend/utils"
)

const (
	defaultSessionListLimit = 50
	maxSessionListLimit     = 500
)

// AdminLogin authenticates a researcher against the configured password hash
// and issues a signed token for the admin surface.
func (h *Handler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	if !h.cfg.AdminEnabled() {
		utils.HandleError(w, responses.ServiceUnavailableError{Msg: "Admin access is not configured."})
		return
	}

	var req models.AdminLoginRequest
	if err := decodeBody(r, &req); err != nil {
		utils.HandleError(w, responses.BadRequestError{Msg: "Invalid request body."})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.cfg.AdminPasswordHash), []byte(req.Password)); err != nil {
		utils.HandleError(w, responses.UnauthorizedError{Msg: "Invalid password."})
		return
	}

	now := time.Now()
	claims := models.ResearcherClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   models.RoleResearcher,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(h.cfg.TokenTTL)),
		},
		Role: models.RoleResearcher,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		utils.HandleError(w, fmt.Errorf("failed to sign token: %w", err))
		return
	}

	utils.HandleSuccess(w, http.StatusOK, models.AdminLoginResponse{Token: token})
}

// ResetCounts sets every theory's shown_count back to 0. Operational utility
// for between-pilot resets.
func (h *Handler) ResetCounts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	modified, err := h.store.ResetTheoryCounts(ctx)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.HandleSuccess(w, http.StatusOK, models.ResetCountsResponse{
		Status:  statusSuccess,
		Message: fmt.Sprintf("Reset %d theories", modified),
	})
}

// ListSessions gives researchers a recency-ordered view over recorded
// sessions, optionally filtered by status.
func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	switch status {
	case "", models.StatusActive, models.StatusCompleted, models.StatusTerminated:
	default:
		utils.HandleError(w, responses.BadRequestError{Msg: "status must be active, completed or terminated."})
		return
	}

	limit := int64(defaultSessionListLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 1 || parsed > maxSessionListLimit {
			utils.HandleError(w, responses.BadRequestError{Msg: fmt.Sprintf("limit must be between 1 and %d.", maxSessionListLimit)})
			return
		}
		limit = parsed
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	sessions, err := h.store.ListSessions(ctx, status, limit)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.HandleSuccess(w, http.StatusOK, models.SessionListResponse{
		Sessions: sessions,
		Count:    len(sessions),
	})
}
