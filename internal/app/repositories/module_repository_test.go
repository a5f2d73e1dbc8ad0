package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethos-training/ethos/internal/app/repositories"
	"github.com/ethos-training/ethos/internal/pkg/apperrors"
)

var moduleRows = []string{
	"id", "title", "description", "content", "display_order",
	"estimated_minutes", "is_required", "is_active", "created_at", "updated_at",
}

func TestModuleRepository_GetByID(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	moduleID := uuid.New()

	t.Run("found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		rows := pgxmock.NewRows(moduleRows).AddRow(
			moduleID, "Gifts and Gratuities", "Rules on gifts", []byte(`{}`),
			2, 25, true, true, now, now,
		)
		mock.ExpectQuery("SELECT id, title, description").
			WithArgs(moduleID).
			WillReturnRows(rows)

		repo := repositories.NewModuleRepository(mock)
		module, err := repo.GetByID(context.Background(), moduleID)
		require.NoError(t, err)
		assert.Equal(t, moduleID, module.ID)
		assert.Equal(t, "Gifts and Gratuities", module.Title)
		assert.True(t, module.IsRequired)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, title, description").
			WithArgs(moduleID).
			WillReturnError(pgx.ErrNoRows)

		repo := repositories.NewModuleRepository(mock)
		_, err = repo.GetByID(context.Background(), moduleID)
		assert.ErrorIs(t, err, apperrors.ErrModuleNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestModuleRepository_GetAll_FiltersInactive(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rows := pgxmock.NewRows(moduleRows).AddRow(
		uuid.New(), "Standards of Ethical Conduct", "", []byte(`{}`),
		1, 30, true, true, now, now,
	)
	mock.ExpectQuery("FROM training_modules WHERE is_active = TRUE").
		WillReturnRows(rows)

	repo := repositories.NewModuleRepository(mock)
	modules, err := repo.GetAll(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, modules, 1)
	assert.Equal(t, "Standards of Ethical Conduct", modules[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestModuleRepository_SoftDelete(t *testing.T) {
	moduleID := uuid.New()

	t.Run("deactivates", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("UPDATE training_modules").
			WithArgs(moduleID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		repo := repositories.NewModuleRepository(mock)
		require.NoError(t, repo.SoftDelete(context.Background(), moduleID))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown id", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("UPDATE training_modules").
			WithArgs(moduleID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		repo := repositories.NewModuleRepository(mock)
		err = repo.SoftDelete(context.Background(), moduleID)
		assert.ErrorIs(t, err, apperrors.ErrModuleNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
