package models

// NotificationType classifies how a notification is rendered
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

// Notification is a single dashboard notification entry
type Notification struct {
	ID          int              `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Time        string           `json:"time"`
	Unread      bool             `json:"unread"`
	Type        NotificationType `json:"type"`
}

// DefaultNotifications returns the entries a fresh dashboard starts with
func DefaultNotifications() []Notification {
	return []Notification{
		{
			ID:          1,
			Title:       "Welcome to HR Dashboard",
			Description: "Your dashboard is ready to use",
			Time:        "Just now",
			Unread:      true,
			Type:        NotificationInfo,
		},
		{
			ID:          2,
			Title:       "Performance Review Due",
			Description: "5 employees need performance reviews",
			Time:        "1 hour ago",
			Unread:      true,
			Type:        NotificationWarning,
		},
		{
			ID:          3,
			Title:       "System Update",
			Description: "Dashboard updated successfully",
			Time:        "2 hours ago",
			Unread:      false,
			Type:        NotificationSuccess,
		},
	}
}
