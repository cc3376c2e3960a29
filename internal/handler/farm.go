package handler

import (
	"net/http"

	"github.com/windrow/farmstead/internal/game"
	"github.com/windrow/farmstead/internal/logger"
)

// CultivateRequest represents the request to turn cultivable land into farmland
type CultivateRequest struct {
	OwnerID string `json:"owner_id" validate:"required,max=100"`
	X       uint   `json:"x"`
	Y       uint   `json:"y"`
}

// PlantRequest represents the request to plant a seed on farmland
type PlantRequest struct {
	OwnerID  string `json:"owner_id" validate:"required,max=100"`
	X        uint   `json:"x"`
	Y        uint   `json:"y"`
	SeedName string `json:"seed_name" validate:"required,itemname,max=60"`
}

// TendRequest represents a watering or growth-check request on one tile
type TendRequest struct {
	OwnerID string `json:"owner_id" validate:"required,max=100"`
	X       uint   `json:"x"`
	Y       uint   `json:"y"`
}

// FertilizeRequest represents the request to apply fertilizer to a crop
type FertilizeRequest struct {
	OwnerID        string `json:"owner_id" validate:"required,max=100"`
	X              uint   `json:"x"`
	Y              uint   `json:"y"`
	FertilizerName string `json:"fertilizer_name" validate:"required,itemname,max=60"`
}

// HandleCultivate turns a cultivable tile into farmland
func HandleCultivate(gameSvc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CultivateRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Cultivate land"); err != nil {
			return
		}

		if err := gameSvc.CultivateLand(r.Context(), req.OwnerID, req.X, req.Y); err != nil {
			log.Error("Cultivate failed", "error", err, "ownerID", req.OwnerID, "x", req.X, "y", req.Y)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgLandCultivatedSuccess})
	}
}

// HandlePlant plants a seed from the player's inventory
func HandlePlant(gameSvc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req PlantRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Plant seed"); err != nil {
			return
		}

		crop, err := gameSvc.PlantSeed(r.Context(), req.OwnerID, req.X, req.Y, req.SeedName)
		if err != nil {
			log.Error("Plant failed", "error", err, "ownerID", req.OwnerID, "seed", req.SeedName)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, crop)
	}
}

// HandleWater waters the crop on one tile
func HandleWater(gameSvc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req TendRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Water plant"); err != nil {
			return
		}

		crop, err := gameSvc.WaterPlant(r.Context(), req.OwnerID, req.X, req.Y)
		if err != nil {
			log.Error("Water failed", "error", err, "ownerID", req.OwnerID, "x", req.X, "y", req.Y)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, crop)
	}
}

// HandleFertilize applies one unit of fertilizer to the crop on one tile
func HandleFertilize(gameSvc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req FertilizeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Fertilize plant"); err != nil {
			return
		}

		crop, err := gameSvc.FertilizePlant(r.Context(), req.OwnerID, req.X, req.Y, req.FertilizerName)
		if err != nil {
			log.Error("Fertilize failed", "error", err, "ownerID", req.OwnerID, "fertilizer", req.FertilizerName)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, crop)
	}
}

// HandleCheckGrowth recomputes and returns the growth stage of one tile's crop
func HandleCheckGrowth(gameSvc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		x, y, ok := GetCoordParams(r, w)
		if !ok {
			return
		}

		crop, err := gameSvc.CheckGrowth(r.Context(), x, y)
		if err != nil {
			log.Error("Check growth failed", "error", err, "x", x, "y", y)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, crop)
	}
}

// HandleHarvest harvests a mature crop and credits the yield
func HandleHarvest(gameSvc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req TendRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Harvest"); err != nil {
			return
		}

		result, err := gameSvc.Harvest(r.Context(), req.OwnerID, req.X, req.Y)
		if err != nil {
			log.Error("Harvest failed", "error", err, "ownerID", req.OwnerID, "x", req.X, "y", req.Y)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		log.Info("Harvest successful", "ownerID", req.OwnerID, "crop", result.CropName, "yield", result.Yield)
		respondJSON(w, http.StatusOK, result)
	}
}
