package handlers

import (
	"net/http"

	"community-scheduler-backend/internal/auth"
	"community-scheduler-backend/internal/database/models"
	"community-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ObstacleHandler handles HTTP requests for the obstacle lifecycle
type ObstacleHandler struct {
	obstacleService service.ObstacleServiceInterface
}

// NewObstacleHandler creates a new obstacle handler
func NewObstacleHandler(obstacleService service.ObstacleServiceInterface) *ObstacleHandler {
	return &ObstacleHandler{obstacleService: obstacleService}
}

// CreateObstacle godoc
// @Summary Submit an obstacle request
// @Description The request always enters the AWAITING state. Filing for another user takes a supervisor.
// @Tags obstacles
// @Accept json
// @Produce json
// @Param request body service.CreateObstacleRequest true "Obstacle"
// @Success 201 {object} service.ObstacleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /obstacles [post]
func (h *ObstacleHandler) CreateObstacle(c *gin.Context) {
	callerID, ok := auth.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing authentication"})
		return
	}
	var req service.CreateObstacleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	resp, err := h.obstacleService.CreateObstacle(callerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetObstacle godoc
// @Summary Get an obstacle
// @Tags obstacles
// @Produce json
// @Param id path string true "Obstacle ID"
// @Success 200 {object} service.ObstacleResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /obstacles/{id} [get]
func (h *ObstacleHandler) GetObstacle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid obstacle id"})
		return
	}
	resp, err := h.obstacleService.GetObstacle(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListObstacles godoc
// @Summary List obstacles
// @Description Upcoming obstacles first, then past ones
// @Tags obstacles
// @Produce json
// @Success 200 {array} service.ObstacleResponse
// @Security BearerAuth
// @Router /obstacles [get]
func (h *ObstacleHandler) ListObstacles(c *gin.Context) {
	resp, err := h.obstacleService.ListObstacles()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListObstaclesByUser godoc
// @Summary List a user's obstacles
// @Tags obstacles
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} service.ObstacleResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /obstacles/users/{userId} [get]
func (h *ObstacleHandler) ListObstaclesByUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
		return
	}
	resp, err := h.obstacleService.ListObstaclesByUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListObstaclesByTask godoc
// @Summary List the obstacles citing a task
// @Tags obstacles
// @Produce json
// @Param taskId path string true "Task ID"
// @Success 200 {array} service.ObstacleResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /obstacles/tasks/{taskId} [get]
func (h *ObstacleHandler) ListObstaclesByTask(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("taskId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid task id"})
		return
	}
	resp, err := h.obstacleService.ListObstaclesByTask(taskID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CountObstaclesByStatus godoc
// @Summary Count obstacles in a status
// @Tags obstacles
// @Produce json
// @Param status query string true "Obstacle status"
// @Success 200 {object} service.ObstacleCountResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /obstacles/count [get]
func (h *ObstacleHandler) CountObstaclesByStatus(c *gin.Context) {
	status := models.ObstacleStatus(c.Query("status"))
	resp, err := h.obstacleService.CountObstaclesByStatus(status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PatchObstacle godoc
// @Summary Decide an obstacle
// @Description Supervisor approves or rejects an AWAITING obstacle; terminal states are immutable
// @Tags obstacles
// @Accept json
// @Produce json
// @Param id path string true "Obstacle ID"
// @Param request body service.PatchObstacleRequest true "Decision"
// @Success 200 {object} service.ObstacleResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /obstacles/{id} [patch]
func (h *ObstacleHandler) PatchObstacle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid obstacle id"})
		return
	}
	callerID, ok := auth.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing authentication"})
		return
	}
	var req service.PatchObstacleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	resp, err := h.obstacleService.PatchObstacle(id, callerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteObstacle godoc
// @Summary Withdraw an obstacle
// @Description Only the applicant may withdraw, and only while AWAITING
// @Tags obstacles
// @Param id path string true "Obstacle ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /obstacles/{id} [delete]
func (h *ObstacleHandler) DeleteObstacle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid obstacle id"})
		return
	}
	callerID, ok := auth.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing authentication"})
		return
	}
	if err := h.obstacleService.DeleteObstacle(id, callerID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
