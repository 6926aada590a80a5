package middleware

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alimgiray/hrboard/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func sessionCookie(t *testing.T, data SessionData) *http.Cookie {
	t.Helper()

	encoded, err := json.Marshal(data)
	assert.NoError(t, err)

	encodedData := base64.URLEncoding.EncodeToString(encoded)
	signature := createSignature(encodedData)

	return &http.Cookie{
		Name:  "session",
		Value: signature + "." + encodedData,
	}
}

func newSessionRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(SessionMiddleware())
	router.GET("/whoami", func(c *gin.Context) {
		session := GetSession(c)
		if session == nil {
			c.JSON(http.StatusOK, gin.H{"user_id": ""})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": session.UserID})
	})
	return router
}

func TestSessionValidCookie(t *testing.T) {
	config.Load()
	router := newSessionRouter()

	req, _ := http.NewRequest("GET", "/whoami", nil)
	req.AddCookie(sessionCookie(t, SessionData{
		UserID:    "1",
		Name:      "Admin User",
		Email:     "admin@company.com",
		Role:      "HR Manager",
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"1"`)
}

func TestSessionTamperedCookie(t *testing.T) {
	config.Load()
	router := newSessionRouter()

	cookie := sessionCookie(t, SessionData{
		UserID:    "1",
		ExpiresAt: time.Now().Add(1 * time.Hour),
	})
	// Flip a character in the signed payload
	cookie.Value = cookie.Value[:len(cookie.Value)-2] + "xx"

	req, _ := http.NewRequest("GET", "/whoami", nil)
	req.AddCookie(cookie)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":""`, "tampered cookie should not produce a session")
}

func TestSessionExpiredCookie(t *testing.T) {
	config.Load()
	router := newSessionRouter()

	req, _ := http.NewRequest("GET", "/whoami", nil)
	req.AddCookie(sessionCookie(t, SessionData{
		UserID:    "1",
		ExpiresAt: time.Now().Add(-1 * time.Minute),
	}))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":""`, "expired cookie should not produce a session")
}

func TestAuthRequired(t *testing.T) {
	config.Load()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(SessionMiddleware())
	router.GET("/protected", AuthRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})

	t.Run("without session", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/protected", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "authentication required")
	})

	t.Run("with session", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.AddCookie(sessionCookie(t, SessionData{
			UserID:    "1",
			ExpiresAt: time.Now().Add(1 * time.Hour),
		}))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
