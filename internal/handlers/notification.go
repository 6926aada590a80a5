package handlers

import (
	"net/http"
	"strconv"

	"github.com/alimgiray/hrboard/internal/models"
	"github.com/alimgiray/hrboard/internal/services"
	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationService *services.NotificationService
}

func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

type createNotificationRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Type        string `json:"type"`
}

// List returns the feed and the unread count
func (h *NotificationHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"notifications": h.notificationService.Notifications(),
		"unreadCount":   h.notificationService.UnreadCount(),
	})
}

// Create pushes a new notification onto the feed
func (h *NotificationHandler) Create(c *gin.Context) {
	var req createNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and description are required"})
		return
	}

	notificationType := models.NotificationType(req.Type)
	switch notificationType {
	case models.NotificationInfo, models.NotificationSuccess, models.NotificationWarning, models.NotificationError:
	default:
		notificationType = models.NotificationInfo
	}

	notification := h.notificationService.Add(req.Title, req.Description, notificationType)
	c.JSON(http.StatusCreated, gin.H{"notification": notification})
}

// MarkRead marks one notification as read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification id"})
		return
	}

	h.notificationService.MarkRead(id)
	c.JSON(http.StatusOK, gin.H{"unreadCount": h.notificationService.UnreadCount()})
}

// MarkAllRead marks the whole feed as read
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	h.notificationService.MarkAllRead()
	c.JSON(http.StatusOK, gin.H{"unreadCount": 0})
}

// Remove deletes one notification
func (h *NotificationHandler) Remove(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification id"})
		return
	}

	h.notificationService.Remove(id)
	c.JSON(http.StatusOK, gin.H{"unreadCount": h.notificationService.UnreadCount()})
}

// Clear empties the feed
func (h *NotificationHandler) Clear(c *gin.Context) {
	h.notificationService.ClearAll()
	c.JSON(http.StatusOK, gin.H{"unreadCount": 0})
}
