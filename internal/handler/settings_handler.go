package handler

import (
	"log"
	"net/http"

	"orchid/internal/repository"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	repo *repository.SettingRepository
}

func NewSettingsHandler(repo *repository.SettingRepository) *SettingsHandler {
	return &SettingsHandler{repo: repo}
}

// Get serves both the public navbar fetch and the admin form; missing or
// unreadable settings come back as the defaults.
func (h *SettingsHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.repo.Get(c.Request.Context()))
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req repository.SettingsUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.repo.Update(c.Request.Context(), req)
	if err != nil {
		log.Printf("settings: update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
		return
	}
	c.JSON(http.StatusOK, updated)
}
