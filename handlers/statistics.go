package handlers

import (
	"net/http"

	"github.com/svdpmukherjee/memory-game-backend/models"
	"github.com/svdpmukherjee/memory-game-backend/utils"
)

// GetStatistics computes the study snapshot. Each field is its own query, so
// the numbers may be momentarily inconsistent with each other under a burst
// of concurrent writes; that is accepted for a monitoring view.
func (h *Handler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	total, err := h.store.CountSessions(ctx, "")
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	completed, err := h.store.CountSessions(ctx, models.StatusCompleted)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	active, err := h.store.CountSessions(ctx, models.StatusActive)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	terminated, err := h.store.CountSessions(ctx, models.StatusTerminated)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	distribution, err := h.store.TheoryDistribution(ctx)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	completedGames, avgScore, err := h.store.CompletedGameStats(ctx)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.HandleSuccess(w, http.StatusOK, models.Statistics{
		TotalParticipants:  total,
		CompletedSessions:  completed,
		ActiveSessions:     active,
		TerminatedSessions: terminated,
		TheoryDistribution: distribution,
		CompletedGames:     completedGames,
		AverageScore:       avgScore,
	})
}
