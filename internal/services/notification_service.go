package services

import (
	"sync"

	"github.com/alimgiray/hrboard/internal/models"
	"github.com/alimgiray/hrboard/internal/repositories"
	"github.com/alimgiray/hrboard/pkg/logger"
)

type notificationSnapshot struct {
	Notifications []models.Notification `json:"notifications"`
	UnreadCount   int                   `json:"unreadCount"`
}

// NotificationService holds the dashboard notification feed, newest first,
// persisted in the notifications slot. A fresh store starts with the default
// welcome entries.
type NotificationService struct {
	mu            sync.Mutex
	snapshots     repositories.SnapshotStore
	allocator     IDAllocator
	notifications []models.Notification
	unreadCount   int
}

func NewNotificationService(snapshots repositories.SnapshotStore, allocator IDAllocator) *NotificationService {
	s := &NotificationService{
		snapshots: snapshots,
		allocator: allocator,
	}

	var snap notificationSnapshot
	found, err := snapshots.Load(repositories.SlotNotifications, &snap)
	if err != nil {
		logger.WithError(err).Warnf("Failed to restore notification snapshot")
	}

	if found {
		s.notifications = snap.Notifications
		s.unreadCount = snap.UnreadCount
	} else {
		s.notifications = models.DefaultNotifications()
		s.unreadCount = s.countUnread()
	}

	max := 0
	for i := range s.notifications {
		if s.notifications[i].ID > max {
			max = s.notifications[i].ID
		}
	}
	s.allocator.Reserve(max + 1)

	return s
}

// Notifications returns the feed, newest first
func (s *NotificationService) Notifications() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// UnreadCount returns the number of unread entries
func (s *NotificationService) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unreadCount
}

// Add prepends a new unread notification and returns it
func (s *NotificationService) Add(title, description string, notificationType models.NotificationType) models.Notification {
	notification := models.Notification{
		ID:          s.allocator.Next(),
		Title:       title,
		Description: description,
		Time:        "Just now",
		Unread:      true,
		Type:        notificationType,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifications = append([]models.Notification{notification}, s.notifications...)
	s.unreadCount++
	s.persistLocked()
	return notification
}

// MarkRead marks one notification as read; unknown ids are a no-op
func (s *NotificationService) MarkRead(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Unread = false
		}
	}

	s.unreadCount = s.countUnread()
	s.persistLocked()
}

// MarkAllRead marks the entire feed as read
func (s *NotificationService) MarkAllRead() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		s.notifications[i].Unread = false
	}

	s.unreadCount = 0
	s.persistLocked()
}

// Remove deletes one notification from the feed
func (s *NotificationService) Remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := s.notifications[:0]
	for _, notification := range s.notifications {
		if notification.ID != id {
			filtered = append(filtered, notification)
		}
	}

	s.notifications = filtered
	s.unreadCount = s.countUnread()
	s.persistLocked()
}

// ClearAll empties the feed
func (s *NotificationService) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifications = nil
	s.unreadCount = 0
	s.persistLocked()
}

// countUnread recounts unread entries; the caller holds the lock
func (s *NotificationService) countUnread() int {
	count := 0
	for i := range s.notifications {
		if s.notifications[i].Unread {
			count++
		}
	}
	return count
}

func (s *NotificationService) persistLocked() {
	snap := notificationSnapshot{
		Notifications: s.notifications,
		UnreadCount:   s.unreadCount,
	}
	if err := s.snapshots.Save(repositories.SlotNotifications, snap); err != nil {
		logger.WithError(err).Errorf("Failed to persist notification snapshot")
	}
}
