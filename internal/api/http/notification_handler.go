package http

import (
	"net/http"

	"erp-cars-backend/internal/service"
)

// NotificationHandler serves a user's in-app notification feed.
type NotificationHandler struct {
	notificationService service.NotificationService
}

func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	page, pageSize := pagination(r)

	notifications, total, err := h.notificationService.GetNotifications(r.Context(), claims.UserID, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "notifications retrieved", listData{
		Items:    notifications,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeValidationError(w, err.Error())
		return
	}

	claims := claimsFromContext(r.Context())
	if err := h.notificationService.MarkAsRead(r.Context(), claims.UserID, id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "notification marked as read", nil)
}
