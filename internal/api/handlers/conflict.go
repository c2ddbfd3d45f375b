package handlers

import (
	"net/http"

	"community-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ConflictHandler handles HTTP requests for task conflicts
type ConflictHandler struct {
	conflictService service.ConflictServiceInterface
}

// NewConflictHandler creates a new conflict handler
func NewConflictHandler(conflictService service.ConflictServiceInterface) *ConflictHandler {
	return &ConflictHandler{conflictService: conflictService}
}

// CreateConflict godoc
// @Summary Register a task conflict
// @Description Declares two tasks mutually exclusive on the given days
// @Tags conflicts
// @Accept json
// @Produce json
// @Param request body service.CreateConflictRequest true "Conflict"
// @Success 201 {object} service.ConflictResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /conflicts [post]
func (h *ConflictHandler) CreateConflict(c *gin.Context) {
	var req service.CreateConflictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	resp, err := h.conflictService.CreateConflict(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetConflict godoc
// @Summary Get a conflict
// @Tags conflicts
// @Produce json
// @Param id path string true "Conflict ID"
// @Success 200 {object} service.ConflictResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /conflicts/{id} [get]
func (h *ConflictHandler) GetConflict(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid conflict id"})
		return
	}
	resp, err := h.conflictService.GetConflict(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListConflicts godoc
// @Summary List conflicts
// @Tags conflicts
// @Produce json
// @Success 200 {array} service.ConflictResponse
// @Security BearerAuth
// @Router /conflicts [get]
func (h *ConflictHandler) ListConflicts(c *gin.Context) {
	resp, err := h.conflictService.ListConflicts()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateConflict godoc
// @Summary Update a conflict
// @Tags conflicts
// @Accept json
// @Produce json
// @Param id path string true "Conflict ID"
// @Param request body service.UpdateConflictRequest true "Changes"
// @Success 200 {object} service.ConflictResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /conflicts/{id} [put]
func (h *ConflictHandler) UpdateConflict(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid conflict id"})
		return
	}
	var req service.UpdateConflictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	resp, err := h.conflictService.UpdateConflict(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteConflict godoc
// @Summary Delete a conflict
// @Tags conflicts
// @Param id path string true "Conflict ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /conflicts/{id} [delete]
func (h *ConflictHandler) DeleteConflict(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid conflict id"})
		return
	}
	if err := h.conflictService.DeleteConflict(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
