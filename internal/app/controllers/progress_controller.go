package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ethos-training/ethos/internal/app/models/dto"
	"github.com/ethos-training/ethos/internal/app/services"
	"github.com/ethos-training/ethos/internal/middleware"
	"github.com/ethos-training/ethos/internal/pkg/export"
)

// ProgressController handles progress tracking and reporting
type ProgressController struct {
	progressService *services.ProgressService
	logger          zerolog.Logger
}

// NewProgressController creates a new ProgressController
func NewProgressController(progressService *services.ProgressService, logger zerolog.Logger) *ProgressController {
	return &ProgressController{
		progressService: progressService,
		logger:          logger,
	}
}

func parseProgressModuleID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("moduleId"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Training module not found")
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(errorDetail))
		return uuid.Nil, false
	}
	return id, true
}

// StartModule creates the caller's progress row for a module
// @Summary Start a training module
// @Description Lazily creates the progress row. Starting an already-started module is a no-op returning the existing row.
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param moduleId path string true "Module ID" format(uuid)
// @Success 200 {object} dto.APIResponse{data=models.UserProgress}
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Failure 404 {object} dto.APIResponse "Module not found or inactive"
// @Router /progress/{moduleId}/start [post]
func (c *ProgressController) StartModule(ctx *gin.Context) {
	moduleID, ok := parseProgressModuleID(ctx)
	if !ok {
		return
	}
	userID := ctx.GetInt64(middleware.ContextUserIDKey)

	progress, err := c.progressService.StartModule(ctx.Request.Context(), userID, moduleID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("userId", userID).Str("moduleId", moduleID.String()).Msg("Module started")
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(progress, "Module started"))
}

// UpdateProgress updates the caller's progress for a module
// @Summary Update progress on a module
// @Description Requires an existing progress row (start first). Status is inferred from the percentage unless explicitly supplied. Concurrent updates are detected via the row version and rejected with 409.
// @Tags progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param moduleId path string true "Module ID" format(uuid)
// @Param request body dto.UpdateProgressRequest true "Progress update"
// @Success 200 {object} dto.APIResponse{data=models.UserProgress}
// @Failure 400 {object} dto.APIResponse "Invalid request payload"
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Failure 404 {object} dto.APIResponse "No progress record for this module"
// @Failure 409 {object} dto.APIResponse "Progress was modified concurrently"
// @Router /progress/{moduleId} [put]
func (c *ProgressController) UpdateProgress(ctx *gin.Context) {
	moduleID, ok := parseProgressModuleID(ctx)
	if !ok {
		return
	}
	userID := ctx.GetInt64(middleware.ContextUserIDKey)

	var req dto.UpdateProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse("Invalid request format", dto.HandleValidationError(err)))
		return
	}

	progress, err := c.progressService.UpdateProgress(ctx.Request.Context(), userID, moduleID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(progress, "Progress updated"))
}

// GetModuleProgress returns the caller's progress for one module
// @Summary Get progress on a module
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param moduleId path string true "Module ID" format(uuid)
// @Success 200 {object} dto.APIResponse{data=models.UserProgress}
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Failure 404 {object} dto.APIResponse "No progress record for this module"
// @Router /progress/{moduleId} [get]
func (c *ProgressController) GetModuleProgress(ctx *gin.Context) {
	moduleID, ok := parseProgressModuleID(ctx)
	if !ok {
		return
	}
	userID := ctx.GetInt64(middleware.ContextUserIDKey)

	progress, err := c.progressService.GetModuleProgress(ctx.Request.Context(), userID, moduleID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(progress, ""))
}

// ListProgress returns the caller's progress rows
// @Summary List own progress
// @Description Lists the caller's progress rows for active modules, each with the module attached.
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.UserProgress}
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Router /progress [get]
func (c *ProgressController) ListProgress(ctx *gin.Context) {
	userID := ctx.GetInt64(middleware.ContextUserIDKey)

	rows, err := c.progressService.GetUserProgress(ctx.Request.Context(), userID)
	if err != nil {
		c.logger.Error().Err(err).Int64("userId", userID).Msg("Failed to list progress")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(rows, ""))
}

// GetSummary returns the caller's aggregate completion numbers
// @Summary Get own progress summary
// @Description Aggregates across all active modules. With no modules the overall completion percentage is 0, not an error.
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ProgressSummaryResponse}
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Router /progress/summary [get]
func (c *ProgressController) GetSummary(ctx *gin.Context) {
	userID := ctx.GetInt64(middleware.ContextUserIDKey)

	summary, err := c.progressService.GetSummary(ctx.Request.Context(), userID)
	if err != nil {
		c.logger.Error().Err(err).Int64("userId", userID).Msg("Failed to build progress summary")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(summary, ""))
}

// GetAdminOverview returns per-user aggregates for all employees
// @Summary Admin progress overview
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.AdminOverviewRow}
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Failure 403 {object} dto.APIResponse "Admin role required"
// @Router /progress/admin/overview [get]
func (c *ProgressController) GetAdminOverview(ctx *gin.Context) {
	rows, err := c.progressService.GetAdminOverview(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to build admin overview")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(rows, ""))
}

// ExportProgress streams the full progress report as a file attachment
// @Summary Export progress report
// @Description Produces one row per user/module pair with a fixed column order. Defaults to CSV; pass format=xlsx for a spreadsheet.
// @Tags progress
// @Produce text/csv
// @Security BearerAuth
// @Param format query string false "Export format" Enums(csv, xlsx)
// @Success 200 {file} file "Report attachment"
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Failure 403 {object} dto.APIResponse "Admin role required"
// @Router /progress/admin/export [get]
func (c *ProgressController) ExportProgress(ctx *gin.Context) {
	rows, err := c.progressService.GetExportRows(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to collect export rows")
		middleware.HandleAPIError(ctx, err)
		return
	}

	stamp := time.Now().Format("2006-01-02")

	if ctx.Query("format") == "xlsx" {
		var buf bytes.Buffer
		if err := export.WriteXLSX(&buf, rows); err != nil {
			c.logger.Error().Err(err).Msg("Failed to write XLSX export")
			middleware.HandleAPIError(ctx, err)
			return
		}
		filename := fmt.Sprintf("training-progress-%s.xlsx", stamp)
		ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		ctx.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, rows); err != nil {
		c.logger.Error().Err(err).Msg("Failed to write CSV export")
		middleware.HandleAPIError(ctx, err)
		return
	}
	filename := fmt.Sprintf("training-progress-%s.csv", stamp)
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, "text/csv", buf.Bytes())
}
