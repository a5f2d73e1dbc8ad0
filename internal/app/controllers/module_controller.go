package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ethos-training/ethos/internal/app/models/dto"
	"github.com/ethos-training/ethos/internal/app/services"
	"github.com/ethos-training/ethos/internal/middleware"
)

// ModuleController handles training module management
type ModuleController struct {
	moduleService *services.ModuleService
	logger        zerolog.Logger
}

// NewModuleController creates a new ModuleController
func NewModuleController(moduleService *services.ModuleService, logger zerolog.Logger) *ModuleController {
	return &ModuleController{
		moduleService: moduleService,
		logger:        logger,
	}
}

// parseModuleID parses the :id path parameter. A non-UUID value is reported
// as not found rather than bad request; module identifiers are opaque.
func parseModuleID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Training module not found")
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(errorDetail))
		return uuid.Nil, false
	}
	return id, true
}

// ListModules returns training modules
// @Summary List training modules
// @Description Lists active modules ordered by display order. Admins may pass includeInactive=true to include soft-deleted modules.
// @Tags modules
// @Produce json
// @Security BearerAuth
// @Param includeInactive query bool false "Include inactive modules (admin only)"
// @Success 200 {object} dto.APIResponse{data=[]models.TrainingModule}
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Router /modules [get]
func (c *ModuleController) ListModules(ctx *gin.Context) {
	includeInactive, _ := strconv.ParseBool(ctx.Query("includeInactive"))

	modules, err := c.moduleService.ListModules(ctx.Request.Context(), includeInactive, middleware.CurrentRole(ctx))
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list modules")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(modules, ""))
}

// GetModule returns one training module
// @Summary Get a training module
// @Tags modules
// @Produce json
// @Security BearerAuth
// @Param id path string true "Module ID" format(uuid)
// @Success 200 {object} dto.APIResponse{data=models.TrainingModule}
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Failure 404 {object} dto.APIResponse "Module not found"
// @Router /modules/{id} [get]
func (c *ModuleController) GetModule(ctx *gin.Context) {
	id, ok := parseModuleID(ctx)
	if !ok {
		return
	}

	module, err := c.moduleService.GetModuleByID(ctx.Request.Context(), id, middleware.CurrentRole(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(module, ""))
}

// CreateModule creates a training module
// @Summary Create a training module
// @Tags modules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateModuleRequest true "Module definition"
// @Success 201 {object} dto.APIResponse{data=models.TrainingModule} "Module created"
// @Failure 400 {object} dto.APIResponse "Invalid request payload"
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Failure 403 {object} dto.APIResponse "Admin role required"
// @Router /modules [post]
func (c *ModuleController) CreateModule(ctx *gin.Context) {
	var req dto.CreateModuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse("Invalid request format", dto.HandleValidationError(err)))
		return
	}

	module, err := c.moduleService.CreateModule(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to create module")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("moduleId", module.ID.String()).Str("title", module.Title).Msg("Module created")
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(module, "Module created"))
}

// UpdateModule updates a training module
// @Summary Update a training module
// @Tags modules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Module ID" format(uuid)
// @Param request body dto.UpdateModuleRequest true "Module definition"
// @Success 200 {object} dto.APIResponse{data=models.TrainingModule} "Module updated"
// @Failure 400 {object} dto.APIResponse "Invalid request payload"
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Failure 403 {object} dto.APIResponse "Admin role required"
// @Failure 404 {object} dto.APIResponse "Module not found"
// @Router /modules/{id} [put]
func (c *ModuleController) UpdateModule(ctx *gin.Context) {
	id, ok := parseModuleID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateModuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse("Invalid request format", dto.HandleValidationError(err)))
		return
	}

	module, err := c.moduleService.UpdateModule(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("moduleId", module.ID.String()).Msg("Module updated")
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(module, "Module updated"))
}

// DeleteModule deactivates a training module
// @Summary Delete a training module
// @Description Soft delete: clears the active flag. Modules are never removed from the database.
// @Tags modules
// @Produce json
// @Security BearerAuth
// @Param id path string true "Module ID" format(uuid)
// @Success 200 {object} dto.APIResponse "Module deactivated"
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Failure 403 {object} dto.APIResponse "Admin role required"
// @Failure 404 {object} dto.APIResponse "Module not found"
// @Router /modules/{id} [delete]
func (c *ModuleController) DeleteModule(ctx *gin.Context) {
	id, ok := parseModuleID(ctx)
	if !ok {
		return
	}

	if err := c.moduleService.DeleteModule(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("moduleId", id.String()).Msg("Module deactivated")
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Module deactivated"))
}
