package handlers

import (
	"net/http"

	"community-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SpecialDateHandler handles HTTP requests for special dates
type SpecialDateHandler struct {
	specialDateService service.SpecialDateServiceInterface
}

// NewSpecialDateHandler creates a new special date handler
func NewSpecialDateHandler(specialDateService service.SpecialDateServiceInterface) *SpecialDateHandler {
	return &SpecialDateHandler{specialDateService: specialDateService}
}

// CreateSpecialDate godoc
// @Summary Mark a calendar date as special
// @Description FEAST dates are excluded from schedule generation
// @Tags special-dates
// @Accept json
// @Produce json
// @Param request body service.CreateSpecialDateRequest true "Special date"
// @Success 201 {object} service.SpecialDateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /special-dates [post]
func (h *SpecialDateHandler) CreateSpecialDate(c *gin.Context) {
	var req service.CreateSpecialDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	resp, err := h.specialDateService.CreateSpecialDate(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListSpecialDates godoc
// @Summary List special dates
// @Tags special-dates
// @Produce json
// @Success 200 {array} service.SpecialDateResponse
// @Security BearerAuth
// @Router /special-dates [get]
func (h *SpecialDateHandler) ListSpecialDates(c *gin.Context) {
	resp, err := h.specialDateService.ListSpecialDates()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteSpecialDate godoc
// @Summary Remove a special date marker
// @Tags special-dates
// @Param id path string true "Special date ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /special-dates/{id} [delete]
func (h *SpecialDateHandler) DeleteSpecialDate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid special date id"})
		return
	}
	if err := h.specialDateService.DeleteSpecialDate(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
