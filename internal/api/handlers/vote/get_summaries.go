package vote

import (
	"net/http"
	"strconv"
	"strings"

	"Shibaboard/internal/api/handlers"
	"Shibaboard/internal/api/middleware"
	"Shibaboard/internal/core/ratings"
)

// GetSummariesHandler handles batch vote summary lookups
type GetSummariesHandler struct {
	service ratings.Service
}

// NewGetSummariesHandler creates a new summaries handler
func NewGetSummariesHandler(service ratings.Service) *GetSummariesHandler {
	return &GetSummariesHandler{service: service}
}

// HandleGetSummaries returns aggregates plus the viewer's own vote per target
// GET /api/votes/summaries?kind=post&ids=1,2,3
//
// Anonymous viewers get myRating = null on every row.
func (h *GetSummariesHandler) HandleGetSummaries(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("kind")
	idsParam := r.URL.Query().Get("ids")
	if idsParam == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "ids is required")
		return
	}

	ids, err := parseIDs(idsParam)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "ids must be a comma-separated list of integers")
		return
	}

	var viewerID *int64
	if viewer := middleware.GetViewer(r); viewer != nil {
		viewerID = &viewer.UserID
	}

	summaries, err := h.service.GetSummaries(r.Context(), kind, ids, viewerID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"summaries": summaries,
	})
}

func parseIDs(param string) ([]int64, error) {
	parts := strings.Split(param, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
