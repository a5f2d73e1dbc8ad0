package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ethos-training/ethos/internal/app/models"
	"github.com/ethos-training/ethos/internal/db"
	"github.com/ethos-training/ethos/internal/pkg/apperrors"
)

const moduleColumns = `id, title, description, content, display_order, estimated_minutes, is_required, is_active, created_at, updated_at`

// ModuleRepository handles database operations for training modules
type ModuleRepository struct {
	db db.Pool
}

// NewModuleRepository creates a new module repository
func NewModuleRepository(db db.Pool) *ModuleRepository {
	return &ModuleRepository{
		db: db,
	}
}

// Create inserts a new training module
func (r *ModuleRepository) Create(ctx context.Context, module *models.TrainingModule) error {
	query := `
		INSERT INTO training_modules (id, title, description, content, display_order, estimated_minutes, is_required, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	if module.ID == uuid.Nil {
		module.ID = uuid.New()
	}

	err := r.db.QueryRow(ctx, query,
		module.ID, module.Title, module.Description, module.Content,
		module.DisplayOrder, module.EstimatedMinutes, module.IsRequired, module.IsActive,
	).Scan(&module.CreatedAt, &module.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error creating training module: %w", err)
	}

	return nil
}

// GetByID retrieves a module by ID
func (r *ModuleRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.TrainingModule, error) {
	query := `SELECT ` + moduleColumns + ` FROM training_modules WHERE id = $1`

	module, err := r.scanModule(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrModuleNotFound
		}
		return nil, fmt.Errorf("error retrieving training module: %w", err)
	}

	return module, nil
}

// GetAll retrieves modules ordered by display order. Inactive modules are
// included only when includeInactive is set.
func (r *ModuleRepository) GetAll(ctx context.Context, includeInactive bool) ([]*models.TrainingModule, error) {
	query := `SELECT ` + moduleColumns + ` FROM training_modules`
	if !includeInactive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY display_order, title`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var modules []*models.TrainingModule
	for rows.Next() {
		module, err := r.scanModule(rows)
		if err != nil {
			return nil, err
		}
		modules = append(modules, module)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return modules, nil
}

// Update updates an existing module
func (r *ModuleRepository) Update(ctx context.Context, module *models.TrainingModule) error {
	query := `
		UPDATE training_modules
		SET title = $1, description = $2, content = $3, display_order = $4,
		    estimated_minutes = $5, is_required = $6, is_active = $7, updated_at = NOW()
		WHERE id = $8
	`

	cmdTag, err := r.db.Exec(ctx, query,
		module.Title, module.Description, module.Content, module.DisplayOrder,
		module.EstimatedMinutes, module.IsRequired, module.IsActive, module.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating training module: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrModuleNotFound
	}

	return nil
}

// SoftDelete clears the active flag. Modules are never hard-deleted.
func (r *ModuleRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE training_modules
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1
	`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deactivating training module: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrModuleNotFound
	}

	return nil
}

// scanModule scans a full module row.
func (r *ModuleRepository) scanModule(row pgx.Row) (*models.TrainingModule, error) {
	var module models.TrainingModule
	err := row.Scan(
		&module.ID,
		&module.Title,
		&module.Description,
		&module.Content,
		&module.DisplayOrder,
		&module.EstimatedMinutes,
		&module.IsRequired,
		&module.IsActive,
		&module.CreatedAt,
		&module.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &module, nil
}
