package handler

import (
	"net/http"

	"github.com/windrow/farmstead/internal/game"
	"github.com/windrow/farmstead/internal/logger"
)

// TradeRequest represents the request to accept a merchant offer
type TradeRequest struct {
	OwnerID    string `json:"owner_id" validate:"required,max=100"`
	MerchantID string `json:"merchant_id" validate:"required,max=100"`
	OfferIndex int    `json:"offer_index" validate:"min=0"`
}

// HandleRefreshMerchant triggers a merchant rotation check. Within the
// refresh interval this is a no-op and reports that nothing changed.
func HandleRefreshMerchant(gameSvc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		merchant, refreshed, err := gameSvc.RefreshMerchant(r.Context())
		if err != nil {
			log.Error("Merchant refresh failed", "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		if !refreshed {
			respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgNoMerchantRefresh})
			return
		}

		respondJSON(w, http.StatusOK, merchant)
	}
}

// HandleGetMerchants lists the currently available merchants
func HandleGetMerchants(gameSvc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, gameSvc.GetMerchantsInfo(r.Context()))
	}
}

// HandleGetOffers lists one merchant's offers
func HandleGetOffers(gameSvc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		merchantID, ok := GetQueryParam(r, w, "merchant_id")
		if !ok {
			return
		}

		offers, err := gameSvc.GetMerchantOffers(r.Context(), merchantID)
		if err != nil {
			log.Error("Get offers failed", "error", err, "merchantID", merchantID)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, offers)
	}
}

// HandleTrade accepts a merchant offer on behalf of a player
func HandleTrade(gameSvc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req TradeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Trade"); err != nil {
			return
		}

		result, err := gameSvc.TradeWithMerchant(r.Context(), req.OwnerID, req.MerchantID, req.OfferIndex)
		if err != nil {
			log.Error("Trade failed", "error", err, "ownerID", req.OwnerID, "merchantID", req.MerchantID)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		log.Info("Trade completed", "ownerID", req.OwnerID, "item", result.Item)
		respondJSON(w, http.StatusOK, result)
	}
}
