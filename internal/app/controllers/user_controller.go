package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"scholaris/internal/app/models/dto"
	"scholaris/internal/app/services"
	"scholaris/internal/middleware"
	"scholaris/internal/pkg/helpers"
)

// UserController handles user-related operations
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// RegisterUser handles user registration
// @Summary Register a new user
// @Description Registers a user with the requested roles; every role must already exist
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UserRequest true "User information"
// @Success 201 {object} dto.APIResponse "User registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Role not found"
// @Failure 409 {object} dto.ErrorResponse "Username already taken"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users [post]
func (c *UserController) RegisterUser(ctx *gin.Context) {
	var req dto.UserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid user data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.userService.RegisterUser(ctx, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Timestamp: time.Now()})
}

// GetUsers retrieves a page of users
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PagedResponse} "Users retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users [get]
func (c *UserController) GetUsers(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	users, pagination, err := c.userService.GetAllUsers(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.PagedResponse{Items: users, Pagination: pagination},
		Timestamp: time.Now(),
	})
}

// GetUser retrieves a user by ID
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "User retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id", "Invalid user ID")
	if !ok {
		return
	}

	user, err := c.userService.FindUserByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      user,
		Timestamp: time.Now(),
	})
}

// DeleteUser deletes a user
// @Summary Delete a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 204 "User deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id", "Invalid user ID")
	if !ok {
		return
	}

	if err := c.userService.DeleteUser(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusNoContent, dto.APIResponse{Timestamp: time.Now()})
}

// AssignRole adds a role to a user's role set
// @Summary Assign a role to a user
// @Description Adds a role to the user's role set; assigning an already-held role is a no-op
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param username path string true "Username"
// @Param role path string true "Role name"
// @Success 200 {object} dto.APIResponse "Role assigned successfully"
// @Failure 404 {object} dto.ErrorResponse "User or role not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{username}/roles/{role} [post]
func (c *UserController) AssignRole(ctx *gin.Context) {
	username := ctx.Param("id")
	roleName := ctx.Param("role")

	if err := c.userService.AssignRoleToUser(ctx, username, roleName); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Timestamp: time.Now()})
}

// RemoveRole removes a role from a user's role set
// @Summary Remove a role from a user
// @Description Removes a role from the user's role set; removing an absent role is a no-op
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param username path string true "Username"
// @Param role path string true "Role name"
// @Success 200 {object} dto.APIResponse "Role removed successfully"
// @Failure 404 {object} dto.ErrorResponse "User or role not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{username}/roles/{role} [delete]
func (c *UserController) RemoveRole(ctx *gin.Context) {
	username := ctx.Param("id")
	roleName := ctx.Param("role")

	if err := c.userService.RemoveRoleFromUser(ctx, username, roleName); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Timestamp: time.Now()})
}
