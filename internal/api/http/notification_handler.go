package http

import (
	"net/http"
	"strconv"

	"rma-portal-backend/internal/service"
)

// NotificationHandler serves the caller's in-app notification feed.
type NotificationHandler struct {
	notifications service.NotificationService
}

func NewNotificationHandler(notifications service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFromContext(r.Context())
	var limit, offset int32
	if v, err := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 32); err == nil && v > 0 {
		limit = int32(v)
	}
	if v, err := strconv.ParseInt(r.URL.Query().Get("offset"), 10, 32); err == nil && v > 0 {
		offset = int32(v)
	}
	notifications, unread, err := h.notifications.List(r.Context(), actor.ID, actor.Role, limit, offset)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, map[string]interface{}{"notifications": notifications, "unread": unread})
}

func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFromContext(r.Context())
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	if err := h.notifications.MarkAsRead(r.Context(), id, actor.ID); err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, map[string]int32{"read": id})
}
