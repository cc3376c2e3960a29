package handler

import (
	"net/http"

	"github.com/windrow/farmstead/internal/game"
	"github.com/windrow/farmstead/internal/logger"
)

// CreatePlayerRequest represents the request to register a new player
type CreatePlayerRequest struct {
	OwnerID string `json:"owner_id" validate:"required,max=100"`
}

// HandleCreatePlayer registers a new player with the starting inventory
func HandleCreatePlayer(gameSvc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CreatePlayerRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create player"); err != nil {
			return
		}

		player, err := gameSvc.CreatePlayer(r.Context(), req.OwnerID)
		if err != nil {
			log.Error("Create player failed", "error", err, "ownerID", req.OwnerID)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		log.Info("Player created", "ownerID", req.OwnerID, "playerID", player.ID)
		respondJSON(w, http.StatusCreated, player)
	}
}

// HandleGetInventory returns a player's inventory grouped by category
func HandleGetInventory(gameSvc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		ownerID, ok := GetQueryParam(r, w, "owner_id")
		if !ok {
			return
		}

		report, err := gameSvc.GetPlayerInventory(r.Context(), ownerID)
		if err != nil {
			log.Error("Get inventory failed", "error", err, "ownerID", ownerID)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, report)
	}
}
