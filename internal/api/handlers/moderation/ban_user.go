package moderation

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Shibaboard/internal/api/handlers"
	"Shibaboard/internal/api/middleware"
	"Shibaboard/internal/core/moderation"
)

// BanUserHandler handles admin account sanctions
type BanUserHandler struct {
	service moderation.Service
}

// NewBanUserHandler creates a new ban handler
func NewBanUserHandler(service moderation.Service) *BanUserHandler {
	return &BanUserHandler{service: service}
}

// HandleBanUser sanctions an account
// POST /api/moderation/users/{userID}/ban
func (h *BanUserHandler) HandleBanUser(w http.ResponseWriter, r *http.Request) {
	h.setBanned(w, r, true)
}

// HandleUnbanUser lifts an account sanction
// POST /api/moderation/users/{userID}/unban
func (h *BanUserHandler) HandleUnbanUser(w http.ResponseWriter, r *http.Request) {
	h.setBanned(w, r, false)
}

func (h *BanUserHandler) setBanned(w http.ResponseWriter, r *http.Request, banned bool) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil || userID <= 0 {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid user id")
		return
	}

	admin := middleware.GetViewer(r)

	if banned {
		err = h.service.BanUser(r.Context(), admin.UserID, userID)
	} else {
		err = h.service.UnbanUser(r.Context(), admin.UserID, userID)
	}
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"userId": userID,
		"banned": banned,
	})
}
