package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"scholaris/internal/app/models/dto"
	"scholaris/internal/app/services"
	"scholaris/internal/middleware"
)

// RoleController handles role-related operations
type RoleController struct {
	roleService *services.RoleService
}

// NewRoleController creates a new RoleController
func NewRoleController(roleService *services.RoleService) *RoleController {
	return &RoleController{roleService: roleService}
}

// CreateRole handles role creation
// @Summary Create a new role
// @Tags roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RoleRequest true "Role information"
// @Success 201 {object} dto.APIResponse{data=dto.RoleResponse} "Role created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Role already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /roles [post]
func (c *RoleController) CreateRole(ctx *gin.Context) {
	var req dto.RoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid role data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	role, err := c.roleService.CreateRole(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      role,
		Timestamp: time.Now(),
	})
}

// GetRoles retrieves all roles
// @Summary List roles
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.RoleResponse} "Roles retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /roles [get]
func (c *RoleController) GetRoles(ctx *gin.Context) {
	roles, err := c.roleService.GetAllRoles(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      roles,
		Timestamp: time.Now(),
	})
}

// DeleteRole deletes a role by name
// @Summary Delete a role
// @Description Deletes a role and detaches it from every user holding it
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Param name path string true "Role name"
// @Success 204 "Role deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Role not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /roles/{name} [delete]
func (c *RoleController) DeleteRole(ctx *gin.Context) {
	name := ctx.Param("name")

	if err := c.roleService.DeleteRoleByName(ctx, name); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusNoContent, dto.APIResponse{Timestamp: time.Now()})
}
