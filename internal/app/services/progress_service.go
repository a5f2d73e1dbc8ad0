package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ethos-training/ethos/internal/app/models"
	"github.com/ethos-training/ethos/internal/app/models/dto"
	"github.com/ethos-training/ethos/internal/app/repositories"
	"github.com/ethos-training/ethos/internal/pkg/apperrors"
)

// ProgressService handles per-user module progress
type ProgressService struct {
	progressRepo *repositories.ProgressRepository
	moduleRepo   *repositories.ModuleRepository
}

// NewProgressService creates a new progress service instance
func NewProgressService(progressRepo *repositories.ProgressRepository, moduleRepo *repositories.ModuleRepository) *ProgressService {
	return &ProgressService{
		progressRepo: progressRepo,
		moduleRepo:   moduleRepo,
	}
}

// StartModule lazily creates the progress row for the pair. Calling it again
// is a no-op returning the existing row; started_at never changes after the
// first call.
func (s *ProgressService) StartModule(ctx context.Context, userID int64, moduleID uuid.UUID) (*models.UserProgress, error) {
	module, err := s.moduleRepo.GetByID(ctx, moduleID)
	if err != nil {
		return nil, err
	}
	if !module.IsActive {
		return nil, apperrors.ErrModuleNotFound
	}

	if _, err := s.progressRepo.CreateStarted(ctx, userID, moduleID); err != nil {
		return nil, err
	}

	progress, err := s.progressRepo.GetByUserAndModule(ctx, userID, moduleID)
	if err != nil {
		return nil, fmt.Errorf("error reading progress after start: %w", err)
	}

	return progress, nil
}

// UpdateProgress applies a progress update to an existing row. The effective
// status comes from models.InferStatus; reported time is added to the running
// total. The write is guarded by a version compare-and-swap: the client's
// version when supplied, otherwise the one just read, so concurrent writers
// surface as conflicts instead of silently overwriting each other.
func (s *ProgressService) UpdateProgress(ctx context.Context, userID int64, moduleID uuid.UUID, req *dto.UpdateProgressRequest) (*models.UserProgress, error) {
	progress, err := s.progressRepo.GetByUserAndModule(ctx, userID, moduleID)
	if err != nil {
		return nil, err
	}

	status := models.InferStatus(req.ProgressPercentage, req.Status)

	progress.Status = status
	progress.ProgressPercentage = req.ProgressPercentage
	progress.TimeSpentSeconds += req.TimeSpentSeconds

	switch status {
	case models.StatusCompleted:
		if progress.CompletedAt == nil {
			now := time.Now()
			progress.CompletedAt = &now
		}
	default:
		// Explicit regressions clear the completion timestamp
		progress.CompletedAt = nil
	}

	expectedVersion := progress.Version
	if req.Version != nil {
		expectedVersion = *req.Version
	}

	if err := s.progressRepo.Update(ctx, progress, &expectedVersion); err != nil {
		return nil, err
	}

	return progress, nil
}

// GetUserProgress lists the caller's progress rows with modules attached.
func (s *ProgressService) GetUserProgress(ctx context.Context, userID int64) ([]*models.UserProgress, error) {
	return s.progressRepo.ListByUser(ctx, userID)
}

// GetModuleProgress retrieves the caller's progress for one module.
func (s *ProgressService) GetModuleProgress(ctx context.Context, userID int64, moduleID uuid.UUID) (*models.UserProgress, error) {
	return s.progressRepo.GetByUserAndModule(ctx, userID, moduleID)
}

// GetSummary aggregates the caller's progress across all active modules.
func (s *ProgressService) GetSummary(ctx context.Context, userID int64) (*dto.ProgressSummaryResponse, error) {
	return s.progressRepo.GetSummary(ctx, userID)
}

// GetAdminOverview returns per-user aggregates for the admin dashboard.
func (s *ProgressService) GetAdminOverview(ctx context.Context) ([]dto.AdminOverviewRow, error) {
	return s.progressRepo.GetAdminOverview(ctx)
}

// GetExportRows returns the flattened report rows for the admin export.
func (s *ProgressService) GetExportRows(ctx context.Context) ([]dto.ProgressExportRow, error) {
	return s.progressRepo.GetExportRows(ctx)
}
