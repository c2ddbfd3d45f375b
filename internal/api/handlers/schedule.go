package handlers

import (
	"net/http"

	"community-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ScheduleHandler handles HTTP requests for schedules
type ScheduleHandler struct {
	scheduleService service.ScheduleServiceInterface
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(scheduleService service.ScheduleServiceInterface) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// CreateSchedule godoc
// @Summary Create one manual assignment
// @Description Validates day fit, role fit, obstacles, capacity and conflicts
// @Tags schedules
// @Accept json
// @Produce json
// @Param request body service.CreateScheduleRequest true "Assignment"
// @Success 201 {object} service.ScheduleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /schedules [post]
func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	var req service.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	resp, err := h.scheduleService.CreateSchedule(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AssignWeek godoc
// @Summary Assign a user to a task for a whole week
// @Description The period must run Monday through Sunday
// @Tags schedules
// @Accept json
// @Produce json
// @Param request body service.WeekAssignmentRequest true "Assignment"
// @Success 201 {array} service.ScheduleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /schedules/week [post]
func (h *ScheduleHandler) AssignWeek(c *gin.Context) {
	var req service.WeekAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	resp, err := h.scheduleService.AssignWeek(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// UnassignWeek godoc
// @Summary Remove a user's task assignments for a whole week
// @Tags schedules
// @Accept json
// @Param request body service.WeekAssignmentRequest true "Removal"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /schedules/week [delete]
func (h *ScheduleHandler) UnassignWeek(c *gin.Context) {
	var req service.WeekAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	if err := h.scheduleService.UnassignWeek(&req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListSchedulesInWeek godoc
// @Summary List a week's schedule
// @Tags schedules
// @Produce json
// @Param from query string true "Monday (YYYY-MM-DD)"
// @Param to query string true "Sunday (YYYY-MM-DD)"
// @Success 200 {array} service.ScheduleResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /schedules [get]
func (h *ScheduleHandler) ListSchedulesInWeek(c *gin.Context) {
	resp, err := h.scheduleService.ListSchedulesInWeek(c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListSchedulesByUser godoc
// @Summary List a user's schedule entries
// @Tags schedules
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} service.ScheduleResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /schedules/users/{userId} [get]
func (h *ScheduleHandler) ListSchedulesByUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
		return
	}
	resp, err := h.scheduleService.ListSchedulesByUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteSchedule godoc
// @Summary Delete one assignment
// @Tags schedules
// @Param id path string true "Schedule ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /schedules/{id} [delete]
func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid schedule id"})
		return
	}
	if err := h.scheduleService.DeleteSchedule(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetWeekRevision godoc
// @Summary Get a week's revision
// @Description Returns the optimistic concurrency revision generation runs state
// @Tags schedules
// @Produce json
// @Param weekStart query string true "Monday (YYYY-MM-DD)"
// @Success 200 {object} service.WeekRevisionResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /schedules/week-revision [get]
func (h *ScheduleHandler) GetWeekRevision(c *gin.Context) {
	resp, err := h.scheduleService.GetWeekRevision(c.Query("weekStart"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GenerateWeek godoc
// @Summary Generate a week's schedule
// @Description Replaces the week's generated entries; manual edits survive. Rejected with 409 when the week changed since the stated revision.
// @Tags schedules
// @Accept json
// @Produce json
// @Param request body service.GenerateWeekRequest true "Generation request"
// @Success 200 {object} service.GenerationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /schedules/generate [post]
func (h *ScheduleHandler) GenerateWeek(c *gin.Context) {
	var req service.GenerateWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	resp, err := h.scheduleService.GenerateWeek(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListAvailableTasks godoc
// @Summary List the tasks a user's roles allow
// @Tags schedules
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} service.TaskResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /schedules/users/{userId}/available-tasks [get]
func (h *ScheduleHandler) ListAvailableTasks(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
		return
	}
	resp, err := h.scheduleService.ListAvailableTasks(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetUserDependencies godoc
// @Summary Get a user's task feasibility for a week
// @Description Role fit, obstacles, conflicts and fairness standing per task
// @Tags schedules
// @Produce json
// @Param userId path string true "User ID"
// @Param from query string true "Monday (YYYY-MM-DD)"
// @Param to query string true "Sunday (YYYY-MM-DD)"
// @Success 200 {array} service.UserTaskDependency
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /schedules/users/{userId}/dependencies [get]
func (h *ScheduleHandler) GetUserDependencies(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
		return
	}
	resp, err := h.scheduleService.GetUserDependencies(userID, c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetUserDependenciesDaily godoc
// @Summary Get a user's task feasibility per day of a week
// @Description Conflict, obstacle and assignment flags widened to the days on which they hold
// @Tags schedules
// @Produce json
// @Param userId path string true "User ID"
// @Param from query string true "Monday (YYYY-MM-DD)"
// @Param to query string true "Sunday (YYYY-MM-DD)"
// @Success 200 {array} service.UserTaskDependencyDaily
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /schedules/users/{userId}/dependencies/daily [get]
func (h *ScheduleHandler) GetUserDependenciesDaily(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
		return
	}
	resp, err := h.scheduleService.GetUserDependenciesDaily(userID, c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetWeekShortInfoByUsers godoc
// @Summary Summarize a week per user
// @Tags schedules
// @Produce json
// @Param from query string true "Monday (YYYY-MM-DD)"
// @Param to query string true "Sunday (YYYY-MM-DD)"
// @Success 200 {array} service.UserShortInfo
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /schedules/week/by-users [get]
func (h *ScheduleHandler) GetWeekShortInfoByUsers(c *gin.Context) {
	resp, err := h.scheduleService.GetWeekShortInfoByUsers(c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetWeekShortInfoByTasks godoc
// @Summary Summarize a week per task
// @Tags schedules
// @Produce json
// @Param from query string true "Monday (YYYY-MM-DD)"
// @Param to query string true "Sunday (YYYY-MM-DD)"
// @Success 200 {array} service.TaskShortInfo
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /schedules/week/by-tasks [get]
func (h *ScheduleHandler) GetWeekShortInfoByTasks(c *gin.Context) {
	resp, err := h.scheduleService.GetWeekShortInfoByTasks(c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
