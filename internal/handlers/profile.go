package handlers

import (
	"net/http"

	"github.com/alimgiray/hrboard/internal/models"
	"github.com/alimgiray/hrboard/internal/services"
	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileService *services.ProfileService
}

func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

type avatarRequest struct {
	Avatar string `json:"avatar" binding:"required"`
}

// Get returns the current profile
func (h *ProfileHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"profile": h.profileService.Profile()})
}

// Update merges a partial edit into the profile
func (h *ProfileHandler) Update(c *gin.Context) {
	var update models.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile payload"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": h.profileService.UpdateProfile(update)})
}

// UpdateAvatar replaces just the avatar
func (h *ProfileHandler) UpdateAvatar(c *gin.Context) {
	var req avatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "avatar is required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": h.profileService.UpdateAvatar(req.Avatar)})
}
