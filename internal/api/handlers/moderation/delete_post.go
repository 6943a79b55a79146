package moderation

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Shibaboard/internal/api/handlers"
	"Shibaboard/internal/api/middleware"
	"Shibaboard/internal/core/moderation"
)

// DeletePostHandler handles admin post removal
type DeletePostHandler struct {
	service moderation.Service
}

// NewDeletePostHandler creates a new delete post handler
func NewDeletePostHandler(service moderation.Service) *DeletePostHandler {
	return &DeletePostHandler{service: service}
}

// HandleDeletePost cascades a soft delete over the post and its comments
// DELETE /api/moderation/posts/{postID}
//
// Deleting an already-deleted or missing post returns 404; the audit log
// records only deletions that actually happened.
func (h *DeletePostHandler) HandleDeletePost(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil || postID <= 0 {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid post id")
		return
	}

	admin := middleware.GetViewer(r)
	result, err := h.service.DeletePost(r.Context(), admin.UserID, postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, result)
}
