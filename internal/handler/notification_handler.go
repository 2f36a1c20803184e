package handler

import (
	"net/http"

	"property-service/internal/scope"
	"property-service/internal/workflow"
	"property-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ListNotifications returns the current user's notifications, newest first.
func ListNotifications(c echo.Context) error {
	log := logger.FromContext(c)
	user := currentUser(c)

	state, err := records().Load()
	if err != nil {
		log.Error("Failed to load state", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve notifications"})
	}

	return c.JSON(http.StatusOK, scope.Notifications(user, state))
}

// MarkNotificationRead flips one notification to read.
func MarkNotificationRead(c echo.Context) error {
	user := currentUser(c)
	id := c.Param("id")

	if err := workflow.MarkNotificationRead(records(), user.ID, id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "notification marked read"})
}

// MarkAllNotificationsRead marks every notification for the current user.
func MarkAllNotificationsRead(c echo.Context) error {
	user := currentUser(c)

	if err := workflow.MarkAllNotificationsRead(records(), user.ID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "all notifications marked read"})
}

// DeleteNotification removes one of the current user's notifications.
func DeleteNotification(c echo.Context) error {
	log := logger.FromContext(c)
	user := currentUser(c)
	id := c.Param("id")

	if err := workflow.DeleteNotification(records(), user.ID, id); err != nil {
		return respondError(c, err)
	}

	log.Info("Notification deleted", zap.String("notification_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "notification deleted"})
}
