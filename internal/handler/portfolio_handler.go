package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"orchid/internal/models"
	"orchid/internal/repository"

	"github.com/gin-gonic/gin"
)

type PortfolioHandler struct {
	repo *repository.PortfolioRepository
}

func NewPortfolioHandler(repo *repository.PortfolioRepository) *PortfolioHandler {
	return &PortfolioHandler{repo: repo}
}

// PublicList serves the paginated tournament archive for the marketing pages.
func (h *PortfolioHandler) PublicList(c *gin.Context) {
	offset, limit := pageParams(c)
	list, info := paginate(h.repo.List(c.Request.Context()), offset, limit)
	c.JSON(http.StatusOK, gin.H{"list": list, "pageInfo": info})
}

func (h *PortfolioHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"list": h.repo.List(c.Request.Context())})
}

type createVideoRequest struct {
	Name        string `json:"Name" binding:"required"`
	Description string `json:"description"`
	LinkYT      string `json:"linkyt"`
	BgLink      string `json:"bglink"`
	Game        string `json:"Game"`
}

func (h *PortfolioHandler) Create(c *gin.Context) {
	var req createVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.repo.Add(c.Request.Context(), models.Video{
		Name:        req.Name,
		Description: req.Description,
		LinkYT:      req.LinkYT,
		BgLink:      req.BgLink,
		Game:        req.Game,
	})
	if err != nil {
		log.Printf("portfolio: create failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create portfolio item"})
		return
	}
	c.JSON(http.StatusOK, created)
}

type updateVideoRequest struct {
	Id int `json:"Id"`
	repository.VideoUpdate
}

func (h *PortfolioHandler) Update(c *gin.Context) {
	var req updateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Id is required"})
		return
	}
	updated, err := h.repo.Update(c.Request.Context(), req.Id, req.VideoUpdate)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
		return
	}
	if err != nil {
		log.Printf("portfolio: update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update portfolio item"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *PortfolioHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Id is required"})
		return
	}
	removed, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		log.Printf("portfolio: delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete portfolio item"})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
