// Package seed creates the default data a fresh deployment needs.
package seed

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/ethos-training/ethos/internal/app/models"
	appRepos "github.com/ethos-training/ethos/internal/app/repositories"
	"github.com/ethos-training/ethos/internal/pkg/apperrors"
	"github.com/ethos-training/ethos/internal/pkg/auth"
)

const defaultAdminEmail = "admin@ethos.training"

// CreateDefaultData creates the default admin account and the starter set of
// training modules if they don't exist. Errors are collected rather than
// aborting the run; a partially seeded database is still usable.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, bcryptRounds int, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	moduleRepo := appRepos.NewModuleRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	// --- Default admin account --- //
	exists, err := userRepo.EmailExists(ctx, defaultAdminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		finalErr = errors.Join(finalErr, err)
	} else if !exists {
		lgr.Info().Msg("Creating default admin user...")

		hashed, err := auth.HashPassword("Admin123!", bcryptRounds)
		if err != nil {
			lgr.Error().Err(err).Msg("Error hashing admin password")
			finalErr = errors.Join(finalErr, err)
		} else {
			admin := &appModels.User{
				Email:      defaultAdminEmail,
				Password:   hashed,
				FirstName:  "System",
				LastName:   "Administrator",
				Role:       appModels.RoleAdmin,
				Department: "Office of the Administrator",
				EmployeeID: "EPA-00001",
				IsActive:   true,
			}

			if err := userRepo.Create(ctx, admin); err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
				lgr.Error().Err(err).Msg("Error creating admin user")
				finalErr = errors.Join(finalErr, err)
			} else {
				lgr.Info().Int64("adminID", admin.ID).Msg("Default admin user created successfully")
			}
		}
	} else {
		lgr.Info().Msg("Admin user already exists, skipping creation")
	}

	// --- Starter training modules --- //
	existing, err := moduleRepo.GetAll(ctx, true)
	if err != nil {
		lgr.Error().Err(err).Msg("Error listing training modules")
		return errors.Join(finalErr, err)
	}
	if len(existing) > 0 {
		lgr.Info().Int("count", len(existing)).Msg("Training modules already present, skipping seed")
		return finalErr
	}

	for _, module := range defaultModules() {
		if err := moduleRepo.Create(ctx, module); err != nil {
			lgr.Error().Err(err).Str("title", module.Title).Msg("Error creating training module")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		lgr.Info().Str("title", module.Title).Msg("Training module created")
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}

func defaultModules() []*appModels.TrainingModule {
	content := func(sections ...string) json.RawMessage {
		raw, _ := json.Marshal(map[string]interface{}{"sections": sections})
		return raw
	}

	return []*appModels.TrainingModule{
		{
			Title:            "Standards of Ethical Conduct",
			Description:      "The fourteen principles of ethical conduct for federal employees.",
			Content:          content("Principles overview", "Conflicts of interest", "Impartiality"),
			DisplayOrder:     1,
			EstimatedMinutes: 30,
			IsRequired:       true,
			IsActive:         true,
		},
		{
			Title:            "Gifts and Gratuities",
			Description:      "Rules on accepting gifts from outside sources and between employees.",
			Content:          content("Gifts from outside sources", "Gifts between employees", "Exceptions"),
			DisplayOrder:     2,
			EstimatedMinutes: 25,
			IsRequired:       true,
			IsActive:         true,
		},
		{
			Title:            "Outside Activities and Employment",
			Description:      "When prior approval is needed for work outside the agency.",
			Content:          content("Approval requirements", "Teaching and writing", "Fundraising"),
			DisplayOrder:     3,
			EstimatedMinutes: 20,
			IsRequired:       false,
			IsActive:         true,
		},
	}
}
