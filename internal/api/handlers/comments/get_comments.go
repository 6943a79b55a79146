package comments

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Shibaboard/internal/api/handlers"
	"Shibaboard/internal/api/middleware"
	"Shibaboard/internal/core/visibility"
)

// GetCommentsHandler handles gated comment listings
type GetCommentsHandler struct {
	service visibility.Service
}

// NewGetCommentsHandler creates a new get comments handler
func NewGetCommentsHandler(service visibility.Service) *GetCommentsHandler {
	return &GetCommentsHandler{service: service}
}

// HandleGetComments returns the post's comments after the visibility gate
// GET /api/posts/{postID}/comments?sort=latest|oldest|popular|ratio
//
// A blocked viewer gets a 200 with allowed=false and the block reason;
// only missing posts and bad input produce error statuses.
func (h *GetCommentsHandler) HandleGetComments(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil || postID <= 0 {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid post id")
		return
	}

	var viewer *visibility.Viewer
	if v := middleware.GetViewer(r); v != nil {
		viewer = &visibility.Viewer{UserID: v.UserID, Premium: v.Premium}
	}

	response, err := h.service.GetVisibleComments(r.Context(), postID, viewer, r.URL.Query().Get("sort"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, response)
}
