package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ethos-training/ethos/internal/app/models"
	"github.com/ethos-training/ethos/internal/app/models/dto"
	"github.com/ethos-training/ethos/internal/db"
	"github.com/ethos-training/ethos/internal/pkg/apperrors"
)

const progressColumns = `id, user_id, module_id, status, progress_percentage, started_at, completed_at, time_spent_seconds, version`

// ProgressRepository handles database operations for user progress rows
type ProgressRepository struct {
	db db.Pool
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(db db.Pool) *ProgressRepository {
	return &ProgressRepository{
		db: db,
	}
}

// GetByUserAndModule retrieves the progress row for a user/module pair
func (r *ProgressRepository) GetByUserAndModule(ctx context.Context, userID int64, moduleID uuid.UUID) (*models.UserProgress, error) {
	query := `SELECT ` + progressColumns + ` FROM user_progress WHERE user_id = $1 AND module_id = $2`

	progress, err := r.scanProgress(r.db.QueryRow(ctx, query, userID, moduleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProgressNotFound
		}
		return nil, fmt.Errorf("error retrieving progress: %w", err)
	}

	return progress, nil
}

// CreateStarted lazily creates an in_progress row for the pair. When a row
// already exists (including a concurrent insert) it is left untouched and
// created is false; the caller re-reads the existing row. started_at is
// therefore set exactly once.
func (r *ProgressRepository) CreateStarted(ctx context.Context, userID int64, moduleID uuid.UUID) (created bool, err error) {
	query := `
		INSERT INTO user_progress (user_id, module_id, status, progress_percentage, started_at)
		VALUES ($1, $2, $3, 0, NOW())
		ON CONFLICT (user_id, module_id) DO NOTHING
	`

	cmdTag, err := r.db.Exec(ctx, query, userID, moduleID, models.StatusInProgress)
	if err != nil {
		return false, fmt.Errorf("error creating progress row: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}

// Update writes a progress row. When expectedVersion is non-nil the write is
// guarded by a version compare-and-swap; zero rows affected then means either
// a missing row or a concurrent writer, which the caller disambiguates.
func (r *ProgressRepository) Update(ctx context.Context, progress *models.UserProgress, expectedVersion *int64) error {
	query := `
		UPDATE user_progress
		SET status = $1, progress_percentage = $2, completed_at = $3,
		    time_spent_seconds = $4, version = version + 1
		WHERE user_id = $5 AND module_id = $6
	`
	args := []interface{}{
		progress.Status, progress.ProgressPercentage, progress.CompletedAt,
		progress.TimeSpentSeconds, progress.UserID, progress.ModuleID,
	}

	if expectedVersion != nil {
		query += ` AND version = $7`
		args = append(args, *expectedVersion)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error updating progress: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		if expectedVersion != nil {
			// Distinguish a missing row from a lost CAS race
			if _, getErr := r.GetByUserAndModule(ctx, progress.UserID, progress.ModuleID); getErr == nil {
				return apperrors.ErrProgressConflict
			}
		}
		return apperrors.ErrProgressNotFound
	}

	progress.Version++
	return nil
}

// ListByUser retrieves a user's progress rows with their modules attached,
// ordered by module display order.
func (r *ProgressRepository) ListByUser(ctx context.Context, userID int64) ([]*models.UserProgress, error) {
	query := `
		SELECT up.id, up.user_id, up.module_id, up.status, up.progress_percentage,
		       up.started_at, up.completed_at, up.time_spent_seconds, up.version,
		       m.id, m.title, m.description, m.content, m.display_order,
		       m.estimated_minutes, m.is_required, m.is_active, m.created_at, m.updated_at
		FROM user_progress up
		JOIN training_modules m ON m.id = up.module_id
		WHERE up.user_id = $1 AND m.is_active = TRUE
		ORDER BY m.display_order, m.title
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.UserProgress
	for rows.Next() {
		var progress models.UserProgress
		var module models.TrainingModule
		err := rows.Scan(
			&progress.ID, &progress.UserID, &progress.ModuleID, &progress.Status,
			&progress.ProgressPercentage, &progress.StartedAt, &progress.CompletedAt,
			&progress.TimeSpentSeconds, &progress.Version,
			&module.ID, &module.Title, &module.Description, &module.Content,
			&module.DisplayOrder, &module.EstimatedMinutes, &module.IsRequired,
			&module.IsActive, &module.CreatedAt, &module.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		progress.Module = &module
		result = append(result, &progress)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// GetSummary aggregates a user's progress across all active modules.
func (r *ProgressRepository) GetSummary(ctx context.Context, userID int64) (*dto.ProgressSummaryResponse, error) {
	query := `
		SELECT
			COUNT(m.id),
			COUNT(*) FILTER (WHERE up.status = 'completed'),
			COUNT(*) FILTER (WHERE up.status = 'in_progress'),
			COUNT(*) FILTER (WHERE m.is_required),
			COUNT(*) FILTER (WHERE m.is_required AND up.status = 'completed'),
			COALESCE(SUM(up.time_spent_seconds), 0)
		FROM training_modules m
		LEFT JOIN user_progress up ON up.module_id = m.id AND up.user_id = $1
		WHERE m.is_active = TRUE
	`

	var summary dto.ProgressSummaryResponse
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&summary.TotalModules,
		&summary.CompletedModules,
		&summary.InProgressModules,
		&summary.RequiredModules,
		&summary.RequiredCompleted,
		&summary.TotalTimeSpentSeconds,
	)
	if err != nil {
		return nil, fmt.Errorf("error aggregating progress summary: %w", err)
	}

	if summary.TotalModules > 0 {
		summary.OverallCompletionPercentage = float64(summary.CompletedModules) / float64(summary.TotalModules) * 100
	}

	return &summary, nil
}

// GetAdminOverview returns per-user completion aggregates across all active
// modules, ordered by user name.
func (r *ProgressRepository) GetAdminOverview(ctx context.Context) ([]dto.AdminOverviewRow, error) {
	query := `
		SELECT u.id, u.employee_id, u.first_name, u.last_name, u.email, u.department,
			COUNT(m.id),
			COUNT(*) FILTER (WHERE up.status = 'completed'),
			COUNT(*) FILTER (WHERE m.is_required),
			COUNT(*) FILTER (WHERE m.is_required AND up.status = 'completed')
		FROM users u
		CROSS JOIN training_modules m
		LEFT JOIN user_progress up ON up.user_id = u.id AND up.module_id = m.id
		WHERE m.is_active = TRUE AND u.is_active = TRUE
		GROUP BY u.id, u.employee_id, u.first_name, u.last_name, u.email, u.department
		ORDER BY u.last_name, u.first_name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []dto.AdminOverviewRow
	for rows.Next() {
		var row dto.AdminOverviewRow
		var firstName, lastName string
		var totalModules int
		err := rows.Scan(
			&row.UserID, &row.EmployeeID, &firstName, &lastName, &row.Email, &row.Department,
			&totalModules, &row.CompletedModules, &row.RequiredModules, &row.RequiredCompleted,
		)
		if err != nil {
			return nil, err
		}
		row.Name = firstName + " " + lastName
		if totalModules > 0 {
			row.CompletionPercent = float64(row.CompletedModules) / float64(totalModules) * 100
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// GetExportRows returns one flattened row per user/module pair for the admin
// report, ordered by user name then module display order. Pairs without a
// progress row render as not_started.
func (r *ProgressRepository) GetExportRows(ctx context.Context) ([]dto.ProgressExportRow, error) {
	query := `
		SELECT u.employee_id, u.first_name, u.last_name, u.email, u.department,
			m.title, m.display_order, m.is_required,
			COALESCE(up.status, 'not_started'), COALESCE(up.progress_percentage, 0),
			up.started_at, up.completed_at, COALESCE(up.time_spent_seconds, 0)
		FROM users u
		CROSS JOIN training_modules m
		LEFT JOIN user_progress up ON up.user_id = u.id AND up.module_id = m.id
		WHERE m.is_active = TRUE AND u.is_active = TRUE
		ORDER BY u.last_name, u.first_name, m.display_order
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []dto.ProgressExportRow
	for rows.Next() {
		var row dto.ProgressExportRow
		var firstName, lastName string
		err := rows.Scan(
			&row.EmployeeID, &firstName, &lastName, &row.Email, &row.Department,
			&row.ModuleTitle, &row.DisplayOrder, &row.IsRequired,
			&row.Status, &row.Percentage, &row.StartedAt, &row.CompletedAt, &row.TimeSpent,
		)
		if err != nil {
			return nil, err
		}
		row.Name = firstName + " " + lastName
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// GetOverdueRequired returns, per active employee, the titles of required
// active modules they have not completed. Used by the reminder job.
func (r *ProgressRepository) GetOverdueRequired(ctx context.Context) (map[int64][]string, error) {
	query := `
		SELECT u.id, m.title
		FROM users u
		CROSS JOIN training_modules m
		LEFT JOIN user_progress up ON up.user_id = u.id AND up.module_id = m.id
		WHERE m.is_active = TRUE AND m.is_required = TRUE
		  AND u.is_active = TRUE AND u.role = 'employee'
		  AND (up.status IS NULL OR up.status <> 'completed')
		ORDER BY u.id, m.display_order
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[int64][]string)
	for rows.Next() {
		var userID int64
		var title string
		if err := rows.Scan(&userID, &title); err != nil {
			return nil, err
		}
		result[userID] = append(result[userID], title)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// scanProgress scans a full progress row.
func (r *ProgressRepository) scanProgress(row pgx.Row) (*models.UserProgress, error) {
	var progress models.UserProgress
	err := row.Scan(
		&progress.ID,
		&progress.UserID,
		&progress.ModuleID,
		&progress.Status,
		&progress.ProgressPercentage,
		&progress.StartedAt,
		&progress.CompletedAt,
		&progress.TimeSpentSeconds,
		&progress.Version,
	)
	if err != nil {
		return nil, err
	}
	return &progress, nil
}
