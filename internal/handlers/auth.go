package handlers

import (
	"net/http"

	"github.com/alimgiray/hrboard/internal/middleware"
	"github.com/alimgiray/hrboard/internal/models"
	"github.com/alimgiray/hrboard/internal/services"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService    *services.AuthService
	profileService *services.ProfileService
}

func NewAuthHandler(authService *services.AuthService, profileService *services.ProfileService) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		profileService: profileService,
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// Login validates credentials, opens a session and resets the profile for
// the logged-in user
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	result := h.authService.Login(req.Email, req.Password)
	if !result.Success {
		c.JSON(http.StatusUnauthorized, gin.H{"error": result.Message})
		return
	}

	if err := middleware.SetSession(c, result.User.ID, result.User.Name, result.User.Email, result.User.Role); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	// Login owns the profile: the dashboard always shows the profile of
	// whoever logged in last.
	firstName, lastName := services.SplitName(result.User.Name)
	h.profileService.Reset(firstName, lastName, result.User.Email, result.User.Role)

	c.JSON(http.StatusOK, gin.H{
		"message": result.Message,
		"user":    result.User,
	})
}

// Register creates an account and logs it straight in
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, email, password and role are required"})
		return
	}

	result := h.authService.Register(req.Name, req.Email, req.Password, req.Role)
	if !result.Success {
		c.JSON(http.StatusConflict, gin.H{"error": result.Message})
		return
	}

	if err := middleware.SetSession(c, result.User.ID, result.User.Name, result.User.Email, result.User.Role); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	firstName, lastName := services.SplitName(result.User.Name)
	h.profileService.Reset(firstName, lastName, result.User.Email, result.User.Role)

	c.JSON(http.StatusCreated, gin.H{
		"message": result.Message,
		"user":    result.User,
	})
}

// Logout clears the session cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSession(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me returns the currently authenticated user
func (h *AuthHandler) Me(c *gin.Context) {
	session := middleware.GetSession(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": models.User{
			ID:    session.UserID,
			Email: session.Email,
			Name:  session.Name,
			Role:  session.Role,
		},
	})
}
