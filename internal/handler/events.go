package handler

import (
	"net/http"
	"strconv"

	"github.com/windrow/farmstead/internal/eventlog"
	"github.com/windrow/farmstead/internal/logger"
)

const defaultEventLimit = 50

// HandleGetEvents returns recent event log entries, optionally filtered
// by owner_id and type
func HandleGetEvents(logSvc eventlog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		filter := eventlog.Filter{Limit: defaultEventLimit}

		if ownerID := r.URL.Query().Get("owner_id"); ownerID != "" {
			filter.OwnerID = &ownerID
		}
		if eventType := r.URL.Query().Get("type"); eventType != "" {
			filter.EventType = &eventType
		}
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			limit, err := strconv.Atoi(limitStr)
			if err != nil || limit <= 0 {
				http.Error(w, ErrMsgInvalidLimitParam, http.StatusBadRequest)
				return
			}
			filter.Limit = limit
		}

		entries, err := logSvc.RecentEntries(r.Context(), filter)
		if err != nil {
			log.Error("Get events failed", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
			return
		}

		if entries == nil {
			entries = []eventlog.Entry{}
		}
		respondJSON(w, http.StatusOK, entries)
	}
}
