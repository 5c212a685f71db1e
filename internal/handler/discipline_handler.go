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

// DisciplineHandler predates the other admin handlers and kept its own
// response shape: `message` instead of `error`, 201 on create.
type DisciplineHandler struct {
	repo *repository.DisciplineRepository
}

func NewDisciplineHandler(repo *repository.DisciplineRepository) *DisciplineHandler {
	return &DisciplineHandler{repo: repo}
}

// PublicList feeds the public pages; failures degrade to an empty list
// inside the repository, never an error page.
func (h *DisciplineHandler) PublicList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"list": h.repo.List(c.Request.Context())})
}

func (h *DisciplineHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"list": h.repo.List(c.Request.Context())})
}

type createDisciplineRequest struct {
	Name             string `json:"Name" binding:"required"`
	RegistrationLink string `json:"RegistrationLink"`
}

func (h *DisciplineHandler) Create(c *gin.Context) {
	var req createDisciplineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	created, err := h.repo.Add(c.Request.Context(), models.Discipline{
		Name:             req.Name,
		RegistrationLink: req.RegistrationLink,
	})
	if err != nil {
		log.Printf("disciplines: create failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create discipline"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

type updateDisciplineRequest struct {
	Id int `json:"Id"`
	repository.DisciplineUpdate
}

func (h *DisciplineHandler) Update(c *gin.Context) {
	var req updateDisciplineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if req.Id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID is required"})
		return
	}
	updated, err := h.repo.Update(c.Request.Context(), req.Id, req.DisciplineUpdate)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Discipline not found"})
		return
	}
	if err != nil {
		log.Printf("disciplines: update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update discipline"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *DisciplineHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID is required"})
		return
	}
	removed, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		log.Printf("disciplines: delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete discipline"})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"message": "Discipline not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
