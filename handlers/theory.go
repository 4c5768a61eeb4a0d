package handlers

import (
	"net/http"

	"github.com/svdpmukherjee/memory-game-backend/utils"
)

// GetNextTheory hands out the least-shown theory and advances its counter.
// The response is the pre-increment snapshot without the internal id, so a
// participant sees the count as it was when they were selected.
func (h *Handler) GetNextTheory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	theory, err := h.store.NextTheory(ctx)
	if err != nil {
		handleStoreError(w, err, "No theories found.")
		return
	}

	utils.HandleSuccess(w, http.StatusOK, theory)
}
