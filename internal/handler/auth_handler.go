package handler

import (
	"net/http"

	"orchid/config"
	"orchid/internal/middleware"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// Login checks the submitted password against the shared admin secret and,
// on match, issues the session cookie for 30 days.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request"})
		return
	}
	if req.Password != h.cfg.Admin.Password {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid password"})
		return
	}

	secure := h.cfg.Server.Env == "production"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookie, middleware.AuthCookieValue,
		int(h.cfg.Admin.CookieMaxAge.Seconds()), "/", "", secure, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Check lets the admin UI probe whether its session cookie is still valid.
func (h *AuthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"authenticated": middleware.IsAuthenticated(c)})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	secure := h.cfg.Server.Env == "production"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookie, "", -1, "/", "", secure, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
