package handlers

import (
	"net/http"

	"github.com/svdpmukherjee/memory-game-backend/repository"
	"github.com/svdpmukherjee/memory-game-backend/utils"
)

// GetGameConfig returns the singleton game configuration. A missing document
// falls back to the bundled default, so the frontend keeps working even
// against an unseeded database.
func (h *Handler) GetGameConfig(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	cfg, err := h.store.GameConfig(ctx)
	if err == repository.ErrNotFound {
		utils.HandleSuccess(w, http.StatusOK, h.seed.GameConfig)
		return
	}
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.HandleSuccess(w, http.StatusOK, cfg)
}
