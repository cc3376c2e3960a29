package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/windrow/farmstead/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first; headers are already sent on failure
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."

	ErrMsgPlayerNotFoundError     = "Player not found"
	ErrMsgPlayerExistsError       = "Player already registered"
	ErrMsgInvalidCoordinateError  = "That location is outside the map"
	ErrMsgLandNotCultivableError  = "That land cannot be cultivated"
	ErrMsgLandNotFarmlandError    = "That land is not farmland. Cultivate it first"
	ErrMsgLandOccupiedError       = "Something is already growing there"
	ErrMsgLandEmptyError          = "There is nothing planted there"
	ErrMsgCropNotMatureError      = "The crop is not ready to harvest yet"
	ErrMsgInsufficientItemsError  = "Not enough items"
	ErrMsgMissingToolError        = "You are missing the required tool"
	ErrMsgMerchantNotFoundError   = "Merchant not found"
	ErrMsgInvalidOfferError       = "That offer does not exist"
	ErrMsgInsufficientPaymentErr  = "You cannot afford that offer"
	ErrMsgOnCooldownError         = "Action is on cooldown. Try again later"
	ErrMsgWorldInitializedError   = "The world is already initialized"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses so internal error details never reach clients.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, ErrMsgPlayerNotFoundError
	case errors.Is(err, domain.ErrPlayerAlreadyExists):
		return http.StatusConflict, ErrMsgPlayerExistsError
	case errors.Is(err, domain.ErrInvalidCoordinate):
		return http.StatusBadRequest, ErrMsgInvalidCoordinateError
	case errors.Is(err, domain.ErrLandNotCultivable):
		return http.StatusBadRequest, ErrMsgLandNotCultivableError
	case errors.Is(err, domain.ErrLandNotFarmland):
		return http.StatusBadRequest, ErrMsgLandNotFarmlandError
	case errors.Is(err, domain.ErrLandOccupied):
		return http.StatusConflict, ErrMsgLandOccupiedError
	case errors.Is(err, domain.ErrLandEmpty):
		return http.StatusBadRequest, ErrMsgLandEmptyError
	case errors.Is(err, domain.ErrCropNotMature):
		return http.StatusBadRequest, ErrMsgCropNotMatureError
	case errors.Is(err, domain.ErrInsufficientQuantity):
		return http.StatusBadRequest, ErrMsgInsufficientItemsError
	case errors.Is(err, domain.ErrMissingTool):
		return http.StatusBadRequest, ErrMsgMissingToolError
	case errors.Is(err, domain.ErrMerchantNotFound):
		return http.StatusNotFound, ErrMsgMerchantNotFoundError
	case errors.Is(err, domain.ErrInvalidOffer):
		return http.StatusBadRequest, ErrMsgInvalidOfferError
	case errors.Is(err, domain.ErrInsufficientPayment):
		return http.StatusBadRequest, ErrMsgInsufficientPaymentErr
	case errors.Is(err, domain.ErrOnCooldown):
		return http.StatusTooManyRequests, ErrMsgOnCooldownError
	case errors.Is(err, domain.ErrWorldAlreadyInitialized):
		return http.StatusConflict, ErrMsgWorldInitializedError
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
