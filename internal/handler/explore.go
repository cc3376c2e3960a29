package handler

import (
	"net/http"

	"github.com/windrow/farmstead/internal/game"
	"github.com/windrow/farmstead/internal/logger"
)

// ExploreRequest represents the request to forage for seeds
type ExploreRequest struct {
	OwnerID string `json:"owner_id" validate:"required,max=100"`
}

// HandleExplore sends a player exploring for seeds
func HandleExplore(gameSvc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req ExploreRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Explore"); err != nil {
			return
		}

		result, err := gameSvc.ExploreForSeeds(r.Context(), req.OwnerID)
		if err != nil {
			log.Error("Explore failed", "error", err, "ownerID", req.OwnerID)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		log.Info("Explore successful", "ownerID", req.OwnerID, "seed", result.SeedName, "quantity", result.Quantity)
		respondJSON(w, http.StatusOK, result)
	}
}
