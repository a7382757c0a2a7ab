package http

import (
	"net/http"
	"strconv"

	"potluck-backend/internal/domain"
	"potluck-backend/internal/service"

	"github.com/gorilla/mux"
)

type NotificationHandler struct {
	notifications service.NotificationService
}

func NewNotificationHandler(notifications service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

type listNotificationsResponse struct {
	Notifications []domain.Notification `json:"notifications"`
	Total         int32                 `json:"total"`
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	q := r.URL.Query()
	limit := parseInt32(q.Get("limit"), 0)
	offset := parseInt32(q.Get("offset"), 0)

	notes, total, err := h.notifications.GetNotifications(r.Context(), actor.UserID, limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}
	if notes == nil {
		notes = []domain.Notification{}
	}
	writeJSON(w, http.StatusOK, listNotificationsResponse{Notifications: notes, Total: total})
}

func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["notificationID"], 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid notification id"})
		return
	}

	if err := h.notifications.MarkAsRead(r.Context(), actor.UserID, id); err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "notification not found"})
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
