// Package bootstrap wires configuration, database, and application
// dependencies together for the server.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/ethos-training/ethos/internal/app/controllers"
	appMigrations "github.com/ethos-training/ethos/internal/app/migrations"
	appRepos "github.com/ethos-training/ethos/internal/app/repositories"
	appRoutes "github.com/ethos-training/ethos/internal/app/routes"
	appServices "github.com/ethos-training/ethos/internal/app/services"
	"github.com/ethos-training/ethos/internal/config"
	"github.com/ethos-training/ethos/internal/db"
	appMiddleware "github.com/ethos-training/ethos/internal/middleware"
	pkgAuth "github.com/ethos-training/ethos/internal/pkg/auth"
	"github.com/ethos-training/ethos/internal/pkg/email"
	"github.com/ethos-training/ethos/internal/pkg/helpers"
	"github.com/ethos-training/ethos/internal/pkg/logger"
	"github.com/ethos-training/ethos/internal/pkg/ratelimit"
	"github.com/ethos-training/ethos/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService     *appServices.AuthService
	ModuleService   *appServices.ModuleService
	ProgressService *appServices.ProgressService
	QuizService     *appServices.QuizService
	ReminderService *appServices.ReminderService

	AuthController     *appControllers.AuthController
	ModuleController   *appControllers.ModuleController
	ProgressController *appControllers.ProgressController
	QuizController     *appControllers.QuizController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	APILimiter     *ratelimit.Limiter
	LoginLimiter   *ratelimit.Limiter
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database, lgr)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), database.Pool, cfg.Security.BcryptRounds, lgr); err != nil {
		// Log but keep starting; a partially seeded database is usable
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.ExpiresIn, 24*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.APILimiter = ratelimit.NewLimiter(
		cfg.RateLimit.Requests,
		helpers.ParseDuration(cfg.RateLimit.Window, time.Minute),
	)
	deps.LoginLimiter = ratelimit.NewLimiter(
		cfg.RateLimit.LoginRequests,
		helpers.ParseDuration(cfg.RateLimit.LoginWindow, time.Minute),
	)

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.JWTService,
		cfg.Security.BcryptRounds,
		lgr,
	)
	deps.ModuleService = appServices.NewModuleService(deps.Repos.ModuleRepository)
	deps.ProgressService = appServices.NewProgressService(deps.Repos.ProgressRepository, deps.Repos.ModuleRepository)
	deps.QuizService = appServices.NewQuizService(deps.Repos.QuizRepository, deps.Repos.ModuleRepository)

	emailService := email.NewService(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
	}, lgr)

	deps.ReminderService = appServices.NewReminderService(
		deps.Repos.ProgressRepository,
		deps.Repos.UserRepository,
		emailService,
		cfg.Reminder.Schedule,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.UserRepository, lgr)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.ModuleController = appControllers.NewModuleController(deps.ModuleService, lgr)
	deps.ProgressController = appControllers.NewProgressController(deps.ProgressService, lgr)
	deps.QuizController = appControllers.NewQuizController(deps.QuizService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()
	router.Use(appMiddleware.CORS(cfg.AllowedOriginList()))

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ModuleController,
		deps.ProgressController,
		deps.QuizController,
		deps.AuthMiddleware,
		deps.APILimiter,
		deps.LoginLimiter,
	)

	return router
}
