package handler

import (
	"net/http"

	"github.com/windrow/farmstead/internal/game"
	"github.com/windrow/farmstead/internal/logger"
)

// MapDimensionsResponse describes the world map size
type MapDimensionsResponse struct {
	Width  uint `json:"width"`
	Height uint `json:"height"`
}

// HandleGetMap returns the world map dimensions
func HandleGetMap(gameSvc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		width, height := gameSvc.GetMapDimensions(r.Context())
		respondJSON(w, http.StatusOK, MapDimensionsResponse{Width: width, Height: height})
	}
}

// HandleGetLand returns the state of one tile
func HandleGetLand(gameSvc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		x, y, ok := GetCoordParams(r, w)
		if !ok {
			return
		}

		info, err := gameSvc.GetLandInfo(r.Context(), x, y)
		if err != nil {
			log.Error("Get land failed", "error", err, "x", x, "y", y)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, info)
	}
}
