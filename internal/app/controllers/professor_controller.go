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

// ProfessorController handles professor-related operations
type ProfessorController struct {
	professorService *services.ProfessorService
}

// NewProfessorController creates a new ProfessorController
func NewProfessorController(professorService *services.ProfessorService) *ProfessorController {
	return &ProfessorController{professorService: professorService}
}

// AddProfessor handles professor registration
// @Summary Register a new professor
// @Description Registers a professor in an existing department and creates a fresh course per title
// @Tags professors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ProfessorRequest true "Professor information"
// @Success 201 {object} dto.APIResponse "Professor registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Failure 409 {object} dto.ErrorResponse "Professor or course already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /professors [post]
func (c *ProfessorController) AddProfessor(ctx *gin.Context) {
	var req dto.ProfessorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid professor data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.professorService.AddProfessor(ctx, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Timestamp: time.Now()})
}

// GetProfessors retrieves a page of professors
// @Summary List professors
// @Tags professors
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PagedResponse} "Professors retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /professors [get]
func (c *ProfessorController) GetProfessors(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	professors, pagination, err := c.professorService.GetProfessors(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.PagedResponse{Items: professors, Pagination: pagination},
		Timestamp: time.Now(),
	})
}

// GetProfessor retrieves a professor by ID
// @Summary Get professor by ID
// @Tags professors
// @Produce json
// @Param id path string true "Professor ID"
// @Success 200 {object} dto.APIResponse{data=dto.ProfessorResponse} "Professor retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid professor ID"
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /professors/{id} [get]
func (c *ProfessorController) GetProfessor(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id", "Invalid professor ID")
	if !ok {
		return
	}

	professor, err := c.professorService.GetProfessor(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      professor,
		Timestamp: time.Now(),
	})
}

// UpdateProfessor overwrites a professor's contact details and department
// @Summary Update a professor
// @Tags professors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Professor ID"
// @Param request body dto.ProfessorUpdateRequest true "Updated contact details"
// @Success 200 {object} dto.APIResponse "Professor updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Professor or department not found"
// @Failure 409 {object} dto.ErrorResponse "Email or phone number already in use"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /professors/{id} [put]
func (c *ProfessorController) UpdateProfessor(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id", "Invalid professor ID")
	if !ok {
		return
	}

	var req dto.ProfessorUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid professor data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.professorService.UpdateProfessorDetails(ctx, id, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Timestamp: time.Now()})
}

// DeleteProfessor deletes a professor
// @Summary Delete a professor
// @Description Deletes a professor; their courses survive with the professor reference cleared
// @Tags professors
// @Produce json
// @Security BearerAuth
// @Param id path string true "Professor ID"
// @Success 204 "Professor deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid professor ID"
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /professors/{id} [delete]
func (c *ProfessorController) DeleteProfessor(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id", "Invalid professor ID")
	if !ok {
		return
	}

	if err := c.professorService.DeleteProfessor(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusNoContent, dto.APIResponse{Timestamp: time.Now()})
}
