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

type TournamentHandler struct {
	repo *repository.TournamentRepository
}

func NewTournamentHandler(repo *repository.TournamentRepository) *TournamentHandler {
	return &TournamentHandler{repo: repo}
}

func (h *TournamentHandler) PublicList(c *gin.Context) {
	offset, limit := pageParams(c)
	list, info := paginate(h.repo.List(c.Request.Context()), offset, limit)
	c.JSON(http.StatusOK, gin.H{"list": list, "pageInfo": info})
}

func (h *TournamentHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"list": h.repo.List(c.Request.Context())})
}

type createTournamentRequest struct {
	Name    string   `json:"Name" binding:"required"`
	Price   *float64 `json:"Price"`
	Date    string   `json:"Date"`
	Game    string   `json:"Game"`
	Comands *int     `json:"Comands"`
}

func (h *TournamentHandler) Create(c *gin.Context) {
	var req createTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.repo.Add(c.Request.Context(), models.Tournament{
		Name:    req.Name,
		Price:   req.Price,
		Date:    req.Date,
		Game:    req.Game,
		Comands: req.Comands,
	})
	if err != nil {
		log.Printf("tournaments: create failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tournament"})
		return
	}
	c.JSON(http.StatusOK, created)
}

type updateTournamentRequest struct {
	Id int `json:"Id"`
	repository.TournamentUpdate
}

func (h *TournamentHandler) Update(c *gin.Context) {
	var req updateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Id is required"})
		return
	}
	updated, err := h.repo.Update(c.Request.Context(), req.Id, req.TournamentUpdate)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tournament not found"})
		return
	}
	if err != nil {
		log.Printf("tournaments: update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tournament"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *TournamentHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Id is required"})
		return
	}
	removed, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		log.Printf("tournaments: delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tournament"})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tournament not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
