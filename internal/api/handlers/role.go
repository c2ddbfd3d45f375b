package handlers

import (
	"net/http"

	"community-scheduler-backend/internal/database/models"
	"community-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RoleHandler handles HTTP requests for roles
type RoleHandler struct {
	roleService service.RoleServiceInterface
}

// NewRoleHandler creates a new role handler
func NewRoleHandler(roleService service.RoleServiceInterface) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

// CreateRole godoc
// @Summary Create a role
// @Description Creates a role; the sort order is assigned within its type
// @Tags roles
// @Accept json
// @Produce json
// @Param request body service.CreateRoleRequest true "Role"
// @Success 201 {object} service.RoleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /roles [post]
func (h *RoleHandler) CreateRole(c *gin.Context) {
	var req service.CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	resp, err := h.roleService.CreateRole(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetRole godoc
// @Summary Get a role
// @Tags roles
// @Produce json
// @Param id path string true "Role ID"
// @Success 200 {object} service.RoleResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /roles/{id} [get]
func (h *RoleHandler) GetRole(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid role id"})
		return
	}
	resp, err := h.roleService.GetRole(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListRoles godoc
// @Summary List roles
// @Description Lists roles ordered by sort order, optionally filtered by type
// @Tags roles
// @Produce json
// @Param type query string false "Role type filter"
// @Success 200 {array} service.RoleResponse
// @Security BearerAuth
// @Router /roles [get]
func (h *RoleHandler) ListRoles(c *gin.Context) {
	var roleType *models.RoleType
	if t := c.Query("type"); t != "" {
		parsed := models.RoleType(t)
		roleType = &parsed
	}
	resp, err := h.roleService.ListRoles(roleType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateRole godoc
// @Summary Update a role
// @Description Updates a role; SYSTEM roles accept only display metadata
// @Tags roles
// @Accept json
// @Produce json
// @Param id path string true "Role ID"
// @Param request body service.UpdateRoleRequest true "Changes"
// @Success 200 {object} service.RoleResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /roles/{id} [put]
func (h *RoleHandler) UpdateRole(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid role id"})
		return
	}
	var req service.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	resp, err := h.roleService.UpdateRole(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateSortOrders godoc
// @Summary Bulk update role sort orders
// @Tags roles
// @Accept json
// @Produce json
// @Param request body []service.RoleSortOrderUpdate true "Updates"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /roles/sort-orders [put]
func (h *RoleHandler) UpdateSortOrders(c *gin.Context) {
	var updates []service.RoleSortOrderUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	if err := h.roleService.UpdateSortOrders(updates); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateVisibilities godoc
// @Summary Bulk update role print visibility
// @Tags roles
// @Accept json
// @Produce json
// @Param request body []service.RoleVisibilityUpdate true "Updates"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /roles/visibilities [put]
func (h *RoleHandler) UpdateVisibilities(c *gin.Context) {
	var updates []service.RoleVisibilityUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	if err := h.roleService.UpdateVisibilities(updates); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteRole godoc
// @Summary Delete a role
// @Description Refused while tasks or users still reference the role
// @Tags roles
// @Param id path string true "Role ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /roles/{id} [delete]
func (h *RoleHandler) DeleteRole(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid role id"})
		return
	}
	if err := h.roleService.DeleteRole(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
