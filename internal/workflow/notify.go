package workflow

import (
	"time"

	"property-service/internal/model"
	"property-service/internal/store"
	"property-service/pkg/logger"
	"property-service/prometheus"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Publisher fans a freshly emitted notification out to an external delivery
// channel. Publishing is best effort; a failure never fails the workflow
// that emitted the notification.
type Publisher interface {
	PublishNotification(n model.Notification) error
}

var publisher Publisher

// SetPublisher installs the optional notification event publisher
func SetPublisher(p Publisher) {
	publisher = p
}

// notify appends a notification for the recipient, newest first, and hands
// it to the publisher when one is configured.
func notify(state *model.AppState, userID, title, message string, typ model.NotificationType, linkTo string) model.Notification {
	n := model.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      typ,
		Timestamp: time.Now().UTC(),
		IsRead:    false,
		LinkTo:    linkTo,
	}
	state.Notifications = append([]model.Notification{n}, state.Notifications...)
	prometheus.RecordNotification(string(typ))

	if publisher != nil {
		if err := publisher.PublishNotification(n); err != nil {
			logger.GetLogger().Warn("Failed to publish notification event",
				zap.String("notification_id", n.ID),
				zap.Error(err))
		}
	}
	return n
}

// MarkNotificationRead flips one of the user's notifications to read.
func MarkNotificationRead(st store.Store, userID, notificationID string) error {
	state, err := st.Load()
	if err != nil {
		return err
	}

	for i := range state.Notifications {
		if state.Notifications[i].ID == notificationID && state.Notifications[i].UserID == userID {
			state.Notifications[i].IsRead = true
			return st.Save(state)
		}
	}
	return ErrNotificationNotFound
}

// MarkAllNotificationsRead marks every notification addressed to the user
// as read. Other users' notifications are untouched.
func MarkAllNotificationsRead(st store.Store, userID string) error {
	state, err := st.Load()
	if err != nil {
		return err
	}

	for i := range state.Notifications {
		if state.Notifications[i].UserID == userID {
			state.Notifications[i].IsRead = true
		}
	}
	return st.Save(state)
}

// DeleteNotification removes one of the recipient's own notifications.
func DeleteNotification(st store.Store, userID, notificationID string) error {
	state, err := st.Load()
	if err != nil {
		return err
	}

	for i := range state.Notifications {
		if state.Notifications[i].ID == notificationID {
			if state.Notifications[i].UserID != userID {
				return ErrForbidden
			}
			state.Notifications = append(state.Notifications[:i], state.Notifications[i+1:]...)
			return st.Save(state)
		}
	}
	return ErrNotificationNotFound
}
