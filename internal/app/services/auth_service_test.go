package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethos-training/ethos/internal/app/models"
	"github.com/ethos-training/ethos/internal/app/models/dto"
	"github.com/ethos-training/ethos/internal/app/repositories"
	"github.com/ethos-training/ethos/internal/app/services"
	"github.com/ethos-training/ethos/internal/pkg/apperrors"
	"github.com/ethos-training/ethos/internal/pkg/auth"
)

var userColumns = []string{
	"id", "email", "password_hash", "first_name", "last_name", "role",
	"department", "employee_id", "is_active", "last_login_at", "created_at", "updated_at",
}

func newAuthService(mock pgxmock.PgxPoolIface) *services.AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    24 * time.Hour,
		TokenIssuer: "ethos.training",
	})
	return services.NewAuthService(
		repositories.NewUserRepository(mock), jwtService, 4, zerolog.Nop(),
	)
}

func userRow(mock pgxmock.PgxPoolIface, hash string, active bool) *pgxmock.Rows {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	return pgxmock.NewRows(userColumns).AddRow(
		int64(1), "jane.doe@epa.gov", hash, "Jane", "Doe", models.RoleEmployee,
		"Office of General Counsel", "EPA-10433", active, nil, now, now,
	)
}

func TestAuthService_Login(t *testing.T) {
	hash, err := auth.HashPassword("Sup3rSecret!", 4)
	require.NoError(t, err)

	t.Run("issues token for valid credentials", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.MatchExpectationsInOrder(false)
		mock.ExpectQuery("SELECT id, email, password_hash").
			WithArgs("jane.doe@epa.gov").
			WillReturnRows(userRow(mock, hash, true))

		service := newAuthService(mock)
		resp, err := service.Login(context.Background(), &dto.LoginRequest{
			Email:    "jane.doe@epa.gov",
			Password: "Sup3rSecret!",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, int((24 * time.Hour).Seconds()), resp.ExpiresIn)
		assert.Equal(t, "jane.doe@epa.gov", resp.User.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, email, password_hash").
			WithArgs("jane.doe@epa.gov").
			WillReturnRows(userRow(mock, hash, true))

		service := newAuthService(mock)
		_, err = service.Login(context.Background(), &dto.LoginRequest{
			Email:    "jane.doe@epa.gov",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown email collapses to invalid credentials", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, email, password_hash").
			WithArgs("nobody@epa.gov").
			WillReturnError(pgx.ErrNoRows)

		service := newAuthService(mock)
		_, err = service.Login(context.Background(), &dto.LoginRequest{
			Email:    "nobody@epa.gov",
			Password: "Sup3rSecret!",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("inactive account", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, email, password_hash").
			WithArgs("jane.doe@epa.gov").
			WillReturnRows(userRow(mock, hash, false))

		service := newAuthService(mock)
		_, err = service.Login(context.Background(), &dto.LoginRequest{
			Email:    "jane.doe@epa.gov",
			Password: "Sup3rSecret!",
		})
		assert.ErrorIs(t, err, apperrors.ErrAccountInactive)
	})
}

func TestAuthService_Register_AlwaysEmployee(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	rows := pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
		AddRow(int64(9), now, now)
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("new.hire@epa.gov", pgxmock.AnyArg(), "New", "Hire",
			models.RoleEmployee, "Region 4", "EPA-30999", true).
		WillReturnRows(rows)

	service := newAuthService(mock)
	user, err := service.Register(context.Background(), &dto.RegisterRequest{
		Email:      "new.hire@epa.gov",
		Password:   "Sup3rSecret!",
		FirstName:  "New",
		LastName:   "Hire",
		Department: "Region 4",
		EmployeeID: "EPA-30999",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), user.ID)
	assert.Equal(t, models.RoleEmployee, user.Role)
	assert.True(t, user.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthService_ListUsers(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(42)))
	mock.ExpectQuery("FROM users ORDER BY last_name").
		WithArgs(20, uint64(20)).
		WillReturnRows(userRow(mock, "hash", true))

	users, pagination, err := newAuthService(mock).ListUsers(context.Background(), 2, 20)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, 2, pagination.CurrentPage)
	assert.Equal(t, 3, pagination.TotalPages)
	assert.Equal(t, int64(42), pagination.TotalItems)
	assert.NoError(t, mock.ExpectationsWereMet())
}
