package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ethos-training/ethos/internal/app/models"
	"github.com/ethos-training/ethos/internal/app/models/dto"
	"github.com/ethos-training/ethos/internal/app/repositories"
	"github.com/ethos-training/ethos/internal/pkg/apperrors"
)

// ModuleService handles training-module operations
type ModuleService struct {
	moduleRepo *repositories.ModuleRepository
}

// NewModuleService creates a new module service instance
func NewModuleService(moduleRepo *repositories.ModuleRepository) *ModuleService {
	return &ModuleService{
		moduleRepo: moduleRepo,
	}
}

// CreateModule creates a new training module
func (s *ModuleService) CreateModule(ctx context.Context, req *dto.CreateModuleRequest) (*models.TrainingModule, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.NewBadRequestError("module title cannot be empty")
	}

	module := &models.TrainingModule{
		Title:            req.Title,
		Description:      req.Description,
		Content:          req.Content,
		DisplayOrder:     req.DisplayOrder,
		EstimatedMinutes: req.EstimatedMinutes,
		IsRequired:       req.IsRequired,
		IsActive:         true,
	}

	if err := s.moduleRepo.Create(ctx, module); err != nil {
		return nil, fmt.Errorf("error creating module: %w", err)
	}

	return module, nil
}

// GetModuleByID retrieves a module. Inactive modules are hidden from
// non-admin callers.
func (s *ModuleService) GetModuleByID(ctx context.Context, id uuid.UUID, role models.RoleType) (*models.TrainingModule, error) {
	module, err := s.moduleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !module.IsActive && role != models.RoleAdmin {
		return nil, apperrors.ErrModuleNotFound
	}

	return module, nil
}

// ListModules retrieves modules in display order. includeInactive is only
// honored for admins.
func (s *ModuleService) ListModules(ctx context.Context, includeInactive bool, role models.RoleType) ([]*models.TrainingModule, error) {
	if role != models.RoleAdmin {
		includeInactive = false
	}

	modules, err := s.moduleRepo.GetAll(ctx, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("error listing modules: %w", err)
	}

	return modules, nil
}

// UpdateModule updates an existing module
func (s *ModuleService) UpdateModule(ctx context.Context, id uuid.UUID, req *dto.UpdateModuleRequest) (*models.TrainingModule, error) {
	module, err := s.moduleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	module.Title = req.Title
	module.Description = req.Description
	module.Content = req.Content
	module.DisplayOrder = req.DisplayOrder
	module.EstimatedMinutes = req.EstimatedMinutes
	module.IsRequired = req.IsRequired
	if req.IsActive != nil {
		module.IsActive = *req.IsActive
	}

	if err := s.moduleRepo.Update(ctx, module); err != nil {
		return nil, err
	}

	return module, nil
}

// DeleteModule soft-deletes a module by clearing its active flag.
func (s *ModuleService) DeleteModule(ctx context.Context, id uuid.UUID) error {
	return s.moduleRepo.SoftDelete(ctx, id)
}
