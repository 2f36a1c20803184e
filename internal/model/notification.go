package model

import "time"

// NotificationType is the severity/flavor of a notification.
type NotificationType string

const (
	NotifyInfo    NotificationType = "INFO"
	NotifyWarning NotificationType = "WARNING"
	NotifyError   NotificationType = "ERROR"
	NotifySuccess NotificationType = "SUCCESS"
)

// Notification is an in-app message for one recipient, created as a side
// effect of workflow transitions. Only IsRead ever changes; the recipient
// may delete it.
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Timestamp time.Time        `json:"timestamp"`
	IsRead    bool             `json:"is_read"`
	LinkTo    string           `json:"link_to,omitempty"`
}
