package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethos-training/ethos/internal/app/models"
	"github.com/ethos-training/ethos/internal/app/models/dto"
	"github.com/ethos-training/ethos/internal/app/repositories"
	"github.com/ethos-training/ethos/internal/app/services"
	"github.com/ethos-training/ethos/internal/pkg/apperrors"
)

var moduleTestColumns = []string{
	"id", "title", "description", "content", "display_order",
	"estimated_minutes", "is_required", "is_active", "created_at", "updated_at",
}

var progressTestColumns = []string{
	"id", "user_id", "module_id", "status", "progress_percentage",
	"started_at", "completed_at", "time_spent_seconds", "version",
}

func moduleRow(moduleID uuid.UUID, active bool) *pgxmock.Rows {
	now := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	return pgxmock.NewRows(moduleTestColumns).AddRow(
		moduleID, "Standards of Ethical Conduct", "Annual refresher", []byte(`{}`),
		1, 45, true, active, now, now,
	)
}

func newProgressService(mock pgxmock.PgxPoolIface) *services.ProgressService {
	return services.NewProgressService(
		repositories.NewProgressRepository(mock),
		repositories.NewModuleRepository(mock),
	)
}

func TestProgressService_StartModule(t *testing.T) {
	moduleID := uuid.New()
	startedAt := time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)

	t.Run("creates and returns the row", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("FROM training_modules WHERE id").
			WithArgs(moduleID).
			WillReturnRows(moduleRow(moduleID, true))
		mock.ExpectExec("INSERT INTO user_progress").
			WithArgs(int64(4), moduleID, models.StatusInProgress).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectQuery("FROM user_progress WHERE user_id").
			WithArgs(int64(4), moduleID).
			WillReturnRows(pgxmock.NewRows(progressTestColumns).AddRow(
				int64(11), int64(4), moduleID, models.StatusInProgress, 0,
				&startedAt, nil, int64(0), int64(1),
			))

		progress, err := newProgressService(mock).StartModule(context.Background(), 4, moduleID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusInProgress, progress.Status)
		assert.Equal(t, int64(1), progress.Version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("second start is a no-op", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("FROM training_modules WHERE id").
			WithArgs(moduleID).
			WillReturnRows(moduleRow(moduleID, true))
		mock.ExpectExec("INSERT INTO user_progress").
			WithArgs(int64(4), moduleID, models.StatusInProgress).
			WillReturnResult(pgxmock.NewResult("INSERT", 0))
		mock.ExpectQuery("FROM user_progress WHERE user_id").
			WithArgs(int64(4), moduleID).
			WillReturnRows(pgxmock.NewRows(progressTestColumns).AddRow(
				int64(11), int64(4), moduleID, models.StatusInProgress, 60,
				&startedAt, nil, int64(1800), int64(3),
			))

		progress, err := newProgressService(mock).StartModule(context.Background(), 4, moduleID)
		require.NoError(t, err)
		assert.Equal(t, 60, progress.ProgressPercentage)
		assert.Equal(t, startedAt, *progress.StartedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("inactive module reads as missing", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("FROM training_modules WHERE id").
			WithArgs(moduleID).
			WillReturnRows(moduleRow(moduleID, false))

		_, err = newProgressService(mock).StartModule(context.Background(), 4, moduleID)
		assert.ErrorIs(t, err, apperrors.ErrModuleNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProgressService_UpdateProgress(t *testing.T) {
	moduleID := uuid.New()
	startedAt := time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)

	existingRow := func() *pgxmock.Rows {
		return pgxmock.NewRows(progressTestColumns).AddRow(
			int64(11), int64(4), moduleID, models.StatusInProgress, 40,
			&startedAt, nil, int64(1200), int64(2),
		)
	}

	t.Run("completion stamps completed_at and bumps version", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("FROM user_progress WHERE user_id").
			WithArgs(int64(4), moduleID).
			WillReturnRows(existingRow())
		mock.ExpectExec("UPDATE user_progress").
			WithArgs(models.StatusCompleted, 100, pgxmock.AnyArg(),
				int64(1800), int64(4), moduleID, int64(2)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		progress, err := newProgressService(mock).UpdateProgress(context.Background(), 4, moduleID,
			&dto.UpdateProgressRequest{ProgressPercentage: 100, TimeSpentSeconds: 600})
		require.NoError(t, err)
		assert.Equal(t, models.StatusCompleted, progress.Status)
		require.NotNil(t, progress.CompletedAt)
		assert.Equal(t, int64(1800), progress.TimeSpentSeconds)
		assert.Equal(t, int64(3), progress.Version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("client version guards the write", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("FROM user_progress WHERE user_id").
			WithArgs(int64(4), moduleID).
			WillReturnRows(existingRow())
		// Stale client version: the guarded write misses, the re-read
		// still finds the row, so this is a conflict.
		mock.ExpectExec("UPDATE user_progress").
			WithArgs(models.StatusInProgress, 50, (*time.Time)(nil),
				int64(1500), int64(4), moduleID, int64(1)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectQuery("FROM user_progress WHERE user_id").
			WithArgs(int64(4), moduleID).
			WillReturnRows(existingRow())

		staleVersion := int64(1)
		_, err = newProgressService(mock).UpdateProgress(context.Background(), 4, moduleID,
			&dto.UpdateProgressRequest{ProgressPercentage: 50, TimeSpentSeconds: 300, Version: &staleVersion})
		assert.ErrorIs(t, err, apperrors.ErrProgressConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row is not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("FROM user_progress WHERE user_id").
			WithArgs(int64(4), moduleID).
			WillReturnError(apperrors.ErrProgressNotFound)

		_, err = newProgressService(mock).UpdateProgress(context.Background(), 4, moduleID,
			&dto.UpdateProgressRequest{ProgressPercentage: 10})
		assert.ErrorIs(t, err, apperrors.ErrProgressNotFound)
	})
}
