package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/svdpmukherjee/memory-game-backend/config"
	"github.com/svdpmukherjee/memory-game-backend/idempotency"
	"github.com/svdpmukherjee/memory-game-backend/repository"
	"github.com/svdpmukherjee/memory-game-backend/responses"
	"github.com/svdpmukherjee/memory-game-backend/utils"
)

const statusSuccess = "success"

// Handler carries the shared dependencies for every endpoint: the store
// handle, configuration, the bundled seed (game-config fallback) and the
// optional idempotency guard (nil when Redis is not configured).
type Handler struct {
	store repository.Store
	cfg   *config.Config
	seed  *config.SeedData
	idem  *idempotency.Guard
}

// New wires a handler set. idem may be nil.
func New(store repository.Store, cfg *config.Config, seed *config.SeedData, idem *idempotency.Guard) *Handler {
	return &Handler{store: store, cfg: cfg, seed: seed, idem: idem}
}

// requestContext bounds every store call with the configured timeout.
func (h *Handler) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), h.cfg.RequestTimeout)
}

// decodeBody parses the JSON request body into v.
func decodeBody(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// handleStoreError maps repository sentinel errors onto the API taxonomy.
// Anything else falls through to a generic 500 (logged, not leaked).
func handleStoreError(w http.ResponseWriter, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		utils.HandleError(w, responses.NotFoundError{Msg: notFoundMsg})
	case errors.Is(err, repository.ErrInvalidState):
		utils.HandleError(w, responses.ConflictError{Msg: "Session is already completed or terminated."})
	default:
		utils.HandleError(w, err)
	}
}
