package moderation

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Shibaboard/internal/api/handlers"
	"Shibaboard/internal/api/middleware"
	"Shibaboard/internal/core/moderation"
)

// DeleteCommentHandler handles admin comment removal
type DeleteCommentHandler struct {
	service moderation.Service
}

// NewDeleteCommentHandler creates a new delete comment handler
func NewDeleteCommentHandler(service moderation.Service) *DeleteCommentHandler {
	return &DeleteCommentHandler{service: service}
}

// HandleDeleteComment soft-deletes a single comment
// DELETE /api/moderation/comments/{commentID}
func (h *DeleteCommentHandler) HandleDeleteComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := strconv.ParseInt(chi.URLParam(r, "commentID"), 10, 64)
	if err != nil || commentID <= 0 {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid comment id")
		return
	}

	admin := middleware.GetViewer(r)
	result, err := h.service.DeleteComment(r.Context(), admin.UserID, commentID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, result)
}
