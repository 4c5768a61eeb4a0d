package handlers

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/svdpmukherjee/memory-game-backend/models"
	"github.com/svdpmukherjee/memory-game-backend/responses"
	"github.com/svdpmukherjee/memory-game-backend/utils"
)

// Health reports whether the store is reachable.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		logrus.WithError(err).Error("health check failed")
		utils.HandleError(w, responses.ServiceUnavailableError{Msg: "Database connection failed."})
		return
	}

	utils.HandleSuccess(w, http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
	})
}
