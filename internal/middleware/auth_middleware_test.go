package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethos-training/ethos/internal/app/models"
	"github.com/ethos-training/ethos/internal/app/models/dto"
	"github.com/ethos-training/ethos/internal/app/repositories"
	"github.com/ethos-training/ethos/internal/middleware"
	"github.com/ethos-training/ethos/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newJWTService(tokenExp time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    tokenExp,
		TokenIssuer: "ethos.training",
	})
}

func testUser(active bool) *models.User {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	return &models.User{
		ID:        int64(5),
		Email:     "jane.doe@epa.gov",
		FirstName: "Jane",
		LastName:  "Doe",
		Role:      models.RoleEmployee,
		IsActive:  active,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func expectUserLookup(mock pgxmock.PgxPoolIface, user *models.User) {
	mock.ExpectQuery("FROM users WHERE id").
		WithArgs(user.ID).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "email", "password_hash", "first_name", "last_name", "role",
			"department", "employee_id", "is_active", "last_login_at", "created_at", "updated_at",
		}).AddRow(
			user.ID, user.Email, "hash", user.FirstName, user.LastName, user.Role,
			user.Department, user.EmployeeID, user.IsActive, nil, user.CreatedAt, user.UpdatedAt,
		))
}

// newProtectedRouter wires JWTAuth in front of a handler that reports the
// attached user's email.
func newProtectedRouter(mock pgxmock.PgxPoolIface, jwtService *auth.JWTService) *gin.Engine {
	authMiddleware := middleware.NewAuthMiddleware(
		jwtService, repositories.NewUserRepository(mock), zerolog.Nop(),
	)

	router := gin.New()
	router.GET("/protected", authMiddleware.JWTAuth(), func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"email": user.Email})
	})
	router.GET("/admin-only", authMiddleware.JWTAuth(), authMiddleware.RoleRequired(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func errorCodeOf(t *testing.T, body []byte) dto.ErrorCode {
	t.Helper()
	var envelope struct {
		Success bool             `json:"success"`
		Error   *dto.ErrorDetail `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	return envelope.Error.Code
}

func TestJWTAuth(t *testing.T) {
	jwtService := newJWTService(24 * time.Hour)

	t.Run("missing header", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/protected", nil)
		newProtectedRouter(mock, jwtService).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Equal(t, dto.ErrorCodeNoToken, errorCodeOf(t, recorder.Body.Bytes()))
	})

	t.Run("wrong scheme", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/protected", nil)
		request.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		newProtectedRouter(mock, jwtService).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Equal(t, dto.ErrorCodeInvalidFormat, errorCodeOf(t, recorder.Body.Bytes()))
	})

	t.Run("expired token", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		expiredService := newJWTService(-time.Hour)
		token, _, err := expiredService.GenerateToken(testUser(true))
		require.NoError(t, err)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/protected", nil)
		request.Header.Set("Authorization", "Bearer "+token)
		newProtectedRouter(mock, jwtService).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Equal(t, dto.ErrorCodeExpiredToken, errorCodeOf(t, recorder.Body.Bytes()))
	})

	t.Run("deactivated user", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		user := testUser(false)
		token, _, err := jwtService.GenerateToken(user)
		require.NoError(t, err)
		expectUserLookup(mock, user)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/protected", nil)
		request.Header.Set("Authorization", "Bearer "+token)
		newProtectedRouter(mock, jwtService).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Equal(t, dto.ErrorCodeUserInactive, errorCodeOf(t, recorder.Body.Bytes()))
	})

	t.Run("user deleted after token issue", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		user := testUser(true)
		token, _, err := jwtService.GenerateToken(user)
		require.NoError(t, err)
		mock.ExpectQuery("FROM users WHERE id").
			WithArgs(user.ID).
			WillReturnError(pgx.ErrNoRows)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/protected", nil)
		request.Header.Set("Authorization", "Bearer "+token)
		newProtectedRouter(mock, jwtService).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Equal(t, dto.ErrorCodeUserInactive, errorCodeOf(t, recorder.Body.Bytes()))
	})

	t.Run("valid token reaches the handler", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.MatchExpectationsInOrder(false)
		user := testUser(true)
		token, _, err := jwtService.GenerateToken(user)
		require.NoError(t, err)
		expectUserLookup(mock, user)
		// The last-login touch runs asynchronously and may or may not land
		// before the response is written.
		mock.ExpectExec("UPDATE users").
			WithArgs(pgxmock.AnyArg(), user.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/protected", nil)
		request.Header.Set("Authorization", "Bearer "+token)
		newProtectedRouter(mock, jwtService).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "jane.doe@epa.gov")
	})
}

func TestRoleRequired(t *testing.T) {
	jwtService := newJWTService(24 * time.Hour)

	t.Run("employee on an admin route", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.MatchExpectationsInOrder(false)
		user := testUser(true)
		token, _, err := jwtService.GenerateToken(user)
		require.NoError(t, err)
		expectUserLookup(mock, user)
		mock.ExpectExec("UPDATE users").
			WithArgs(pgxmock.AnyArg(), user.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
		request.Header.Set("Authorization", "Bearer "+token)
		newProtectedRouter(mock, jwtService).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.Equal(t, dto.ErrorCodeForbidden, errorCodeOf(t, recorder.Body.Bytes()))
	})

	t.Run("missing role context", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		authMiddleware := middleware.NewAuthMiddleware(
			jwtService, repositories.NewUserRepository(mock), zerolog.Nop(),
		)
		router := gin.New()
		// RoleRequired without JWTAuth in front never sees a role.
		router.GET("/orphaned", authMiddleware.RoleRequired(models.RoleAdmin), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/orphaned", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
