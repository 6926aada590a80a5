package services

import (
	"testing"

	"github.com/alimgiray/hrboard/internal/models"
	"github.com/alimgiray/hrboard/internal/repositories"
	"github.com/stretchr/testify/assert"
)

func newTestNotificationService(snapshots repositories.SnapshotStore) *NotificationService {
	return NewNotificationService(snapshots, NewCounterAllocator(1))
}

func TestNotificationDefaults(t *testing.T) {
	service := newTestNotificationService(repositories.NewMemorySnapshotStore())

	notifications := service.Notifications()
	assert.Len(t, notifications, 3, "a fresh store starts with the welcome feed")
	assert.Equal(t, 2, service.UnreadCount())
}

func TestNotificationAdd(t *testing.T) {
	service := newTestNotificationService(repositories.NewMemorySnapshotStore())

	added := service.Add("Report Ready", "Quarterly report is available", models.NotificationInfo)

	notifications := service.Notifications()
	assert.Equal(t, added.ID, notifications[0].ID, "new entries go to the front")
	assert.True(t, notifications[0].Unread)
	assert.Equal(t, 3, service.UnreadCount())
	assert.Greater(t, added.ID, 3, "allocated id clears the default entries")
}

func TestNotificationMarkRead(t *testing.T) {
	service := newTestNotificationService(repositories.NewMemorySnapshotStore())

	service.MarkRead(1)
	assert.Equal(t, 1, service.UnreadCount())

	t.Run("Unknown id is a no-op", func(t *testing.T) {
		service.MarkRead(999)
		assert.Equal(t, 1, service.UnreadCount())
	})

	t.Run("Mark all", func(t *testing.T) {
		service.MarkAllRead()
		assert.Equal(t, 0, service.UnreadCount())
		for _, notification := range service.Notifications() {
			assert.False(t, notification.Unread)
		}
	})
}

func TestNotificationRemove(t *testing.T) {
	service := newTestNotificationService(repositories.NewMemorySnapshotStore())

	service.Remove(2) // one of the unread defaults
	assert.Len(t, service.Notifications(), 2)
	assert.Equal(t, 1, service.UnreadCount(), "unread count follows removals")
}

func TestNotificationClearAll(t *testing.T) {
	service := newTestNotificationService(repositories.NewMemorySnapshotStore())

	service.ClearAll()
	assert.Empty(t, service.Notifications())
	assert.Equal(t, 0, service.UnreadCount())
}

func TestNotificationPersistence(t *testing.T) {
	snapshots := repositories.NewMemorySnapshotStore()

	first := newTestNotificationService(snapshots)
	first.Add("Persisted", "Still here after restart", models.NotificationSuccess)

	second := newTestNotificationService(snapshots)
	assert.Len(t, second.Notifications(), 4)
	assert.Equal(t, "Persisted", second.Notifications()[0].Title)
	assert.Equal(t, 3, second.UnreadCount())
}
